package controller

import (
	"context"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/repository"
)

// ItemController interface
type ItemController interface {
	ListItems(ctx context.Context, email string) ([]entity.Item, error)
	CreateItem(ctx context.Context, item *entity.Item, email string) (*entity.Item, error)
	DeleteItem(ctx context.Context, id, email string) error
}

// itemController struct
type itemController struct {
	itemRepository repository.ItemRepository
	userRepository repository.UserRepository
}

// NewItemController creates and returns a new ItemController
func NewItemController(itemRepository *repository.ItemRepository, userRepository *repository.UserRepository) ItemController {
	return &itemController{
		itemRepository: *itemRepository,
		userRepository: *userRepository,
	}
}

// ListItems returns the items owned by email
func (c *itemController) ListItems(ctx context.Context, email string) ([]entity.Item, error) {
	items, err := c.itemRepository.ListItemsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem validates the item and stores it for the given owner. The
// owner must already be registered.
func (c *itemController) CreateItem(ctx context.Context, item *entity.Item, email string) (*entity.Item, error) {
	if email == "" {
		return nil, &entity.ValidationError{Field: "email", Reason: "is required"}
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	// Reject items for emails that were never registered
	if _, err := c.userRepository.GetUserByEmail(ctx, email); err != nil {
		return nil, err
	}

	created, err := c.itemRepository.CreateItem(ctx, item, email)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteItem removes an item scoped by (id, email) jointly
func (c *itemController) DeleteItem(ctx context.Context, id, email string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Reason: "is required"}
	}
	if email == "" {
		return &entity.ValidationError{Field: "email", Reason: "is required"}
	}
	return c.itemRepository.DeleteItem(ctx, id, email)
}
