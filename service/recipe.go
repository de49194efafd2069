package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MauItu/inventario-alimentos/controller"
	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/llm"
	"github.com/MauItu/inventario-alimentos/logger"
	"github.com/MauItu/inventario-alimentos/pdf"
	"github.com/MauItu/inventario-alimentos/repository"
)

// RecipeService turns a user's pantry into a weekly recipe plan with a
// rendered document.
type RecipeService interface {
	Generate(ctx context.Context, email string) (*entity.RecipeResult, error)
}

type recipeService struct {
	itemController controller.ItemController
	llmClient      *llm.Client
}

// NewRecipeService creates and returns a new RecipeService.
func NewRecipeService(itemController controller.ItemController, llmClient *llm.Client) RecipeService {
	return &recipeService{
		itemController: itemController,
		llmClient:      llmClient,
	}
}

// Generate lists the user's items, asks the model for a plan and renders
// the PDF. A user without items is a not-found failure, not a crash.
func (s *recipeService) Generate(ctx context.Context, email string) (*entity.RecipeResult, error) {
	items, err := s.itemController.ListItems(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}

	recipes, err := s.llmClient.GenerateRecipes(ctx, items)
	if err != nil {
		logger.Error("recipe generation failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	document, err := pdf.Render(recipes)
	if err != nil {
		return nil, err
	}

	logger.Info("recipe plan generated",
		zap.String("email", email),
		zap.Int("items", len(items)),
		zap.Int("recipes", len(recipes)))

	return &entity.RecipeResult{Recipes: recipes, Document: document}, nil
}
