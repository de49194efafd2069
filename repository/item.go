package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/mapper"
	"github.com/MauItu/inventario-alimentos/model"
)

// ItemRepository is a struct that holds the database connection.
type ItemRepository struct {
	DB *gorm.DB
}

// NewItemRepository creates and returns a new ItemRepository.
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{
		DB: db,
	}
}

// CreateItem stores a new item owned by email and returns the canonical
// stored form, including the store-assigned id.
func (r *ItemRepository) CreateItem(ctx context.Context, item *entity.Item, email string) (*entity.Item, error) {
	foodModel := mapper.ItemEntityToModel(item, email)
	if err := r.DB.WithContext(ctx).Create(foodModel).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return mapper.ItemModelToEntity(foodModel), nil
}

// ListItemsByEmail returns every item owned by email, oldest first.
func (r *ItemRepository) ListItemsByEmail(ctx context.Context, email string) ([]entity.Item, error) {
	var foodModels []model.Food
	if err := r.DB.WithContext(ctx).Where("email = ?", email).Order("created_at").Find(&foodModels).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return mapper.ItemModelsToEntities(foodModels), nil
}

// DeleteItem removes the item only when both id and owner email match.
// A delete that matches zero rows returns ErrNotFound, so an id owned by a
// different email can never be removed.
func (r *ItemRepository) DeleteItem(ctx context.Context, id, email string) error {
	result := r.DB.WithContext(ctx).Where("id = ? AND email = ?", id, email).Delete(&model.Food{})
	if result.Error != nil {
		return fmt.Errorf("delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
