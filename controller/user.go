package controller

import (
	"context"
	"errors"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/repository"
)

// UserController interface
type UserController interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.Identity, error)
	CreateUser(ctx context.Context, email string) (*entity.Identity, error)
	ListUsers(ctx context.Context) ([]entity.Identity, error)
}

// userController struct
type userController struct {
	userRepository repository.UserRepository
}

// NewUserController creates and returns a new UserController
func NewUserController(userRepository *repository.UserRepository) UserController {
	return &userController{
		userRepository: *userRepository,
	}
}

// GetUserByEmail retrieves a single user by the email business key
func (c *userController) GetUserByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	identity, err := c.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// CreateUser registers a new user. A second registration with the same
// email is a conflict, never a silent success.
func (c *userController) CreateUser(ctx context.Context, email string) (*entity.Identity, error) {
	if email == "" {
		return nil, &entity.ValidationError{Field: "email", Reason: "is required"}
	}

	// Check whether the email is already taken before attempting the insert
	_, err := c.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, repository.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	identity, err := c.userRepository.CreateUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// ListUsers returns every registered user
func (c *userController) ListUsers(ctx context.Context) ([]entity.Identity, error) {
	return c.userRepository.ListUsers(ctx)
}
