package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/service"
)

type RecipeHandler interface {
	Generate(c *gin.Context)
}

type recipeHandler struct {
	recipeService service.RecipeService
}

func NewRecipeHandler(recipeService service.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

// Generate handles the weekly recipe plan request for a user's pantry
func (h *recipeHandler) Generate(c *gin.Context) {
	var req entity.RecipeRequest

	// Bind the incoming JSON to the request struct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.Fail("email is required"))
		return
	}

	result, err := h.recipeService.Generate(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	// Return the recipes together with the base64-encoded document
	c.JSON(http.StatusOK, entity.OK(result))
}
