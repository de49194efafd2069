package route

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MauItu/inventario-alimentos/controller"
	"github.com/MauItu/inventario-alimentos/db"
	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/handler"
	"github.com/MauItu/inventario-alimentos/llm"
	"github.com/MauItu/inventario-alimentos/middleware"
	"github.com/MauItu/inventario-alimentos/repository"
	"github.com/MauItu/inventario-alimentos/service"
)

// SetupRoutes connects the database and wires the full API surface.
func SetupRoutes(r *gin.Engine, config *entity.Config) error {
	if err := db.InitDB(config); err != nil {
		return err
	}
	gormDbInstance := db.GetDBInstance()

	userRepository := repository.NewUserRepository(gormDbInstance)
	itemRepository := repository.NewItemRepository(gormDbInstance)

	userController := controller.NewUserController(userRepository)
	itemController := controller.NewItemController(itemRepository, userRepository)

	llmClient := llm.NewClient(config.OpenAI)
	recipeService := service.NewRecipeService(itemController, llmClient)

	userHandler := handler.NewUserHandler(userController)
	itemHandler := handler.NewItemHandler(itemController)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	api := r.Group("/api")
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.Create)
	api.GET("/users/:email", userHandler.GetUser)

	api.GET("/products", itemHandler.ListItems)
	api.POST("/products", itemHandler.Create)
	api.DELETE("/products", itemHandler.DeleteItem)

	api.POST("/recipes", recipeHandler.Generate)

	return nil
}
