package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MauItu/inventario-alimentos/controller"
	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/llm"
	"github.com/MauItu/inventario-alimentos/model"
	"github.com/MauItu/inventario-alimentos/repository"
)

func newService(t *testing.T, llmURL string) (RecipeService, controller.UserController, controller.ItemController) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.User{}, &model.Food{}))

	userRepo := repository.NewUserRepository(gdb)
	itemRepo := repository.NewItemRepository(gdb)
	userController := controller.NewUserController(userRepo)
	itemController := controller.NewItemController(itemRepo, userRepo)

	llmClient := llm.NewClient(entity.OpenAIConfig{APIKey: "test-key", BaseURL: llmURL, Model: "gpt-4o"})
	return NewRecipeService(itemController, llmClient), userController, itemController
}

func TestGenerateProducesPlanAndDocument(t *testing.T) {
	plan := `{"recipes":[{"day":"Monday","title":"Arroz con pollo","ingredients":["rice"],"steps":["cook"]}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := llm.ChatResponse{Choices: []llm.Choice{{Message: llm.Message{Content: plan}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	svc, users, items := newService(t, srv.URL)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, "a@x.com")
	require.NoError(t, err)

	expires := time.Now().AddDate(0, 0, 9)
	_, err = items.CreateItem(ctx, &entity.Item{
		Name:           "Rice",
		Category:       entity.CategoryGranos,
		Perishable:     true,
		Quantity:       1,
		Unit:           entity.UnitKg,
		EntryDate:      time.Now(),
		ExpirationDate: &expires,
	}, "a@x.com")
	require.NoError(t, err)

	result, err := svc.Generate(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "Arroz con pollo", result.Recipes[0].Title)
	require.NotEmpty(t, result.Document)
	assert.Equal(t, "%PDF", string(result.Document[:4]))
}

func TestGenerateWithEmptyPantryIsNotFound(t *testing.T) {
	svc, users, _ := newService(t, "http://unused")
	ctx := context.Background()

	_, err := users.CreateUser(ctx, "a@x.com")
	require.NoError(t, err)

	_, err = svc.Generate(ctx, "a@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
