package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/mapper"
	"github.com/MauItu/inventario-alimentos/model"
)

// UserRepository is a struct that holds the database connection.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// CreateUser creates a new user and fills in the store-assigned id.
// Returns ErrDuplicateEmail when the email is already registered.
func (r *UserRepository) CreateUser(ctx context.Context, email string) (*entity.Identity, error) {
	userModel := &model.User{Email: email}
	if err := r.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return mapper.UserModelToEntity(userModel), nil
}

// GetUserByEmail fetches a user by the email business key.
// Returns ErrNotFound when no such user exists.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// ListUsers returns every registered user.
func (r *UserRepository) ListUsers(ctx context.Context) ([]entity.Identity, error) {
	var userModels []model.User
	if err := r.DB.WithContext(ctx).Order("created_at").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	identities := make([]entity.Identity, 0, len(userModels))
	for i := range userModels {
		identities = append(identities, *mapper.UserModelToEntity(&userModels[i]))
	}
	return identities, nil
}
