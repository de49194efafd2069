package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MauItu/inventario-alimentos/controller"
	"github.com/MauItu/inventario-alimentos/entity"
)

type ItemHandler interface {
	Create(c *gin.Context)
	ListItems(c *gin.Context)
	DeleteItem(c *gin.Context)
}

type itemHandler struct {
	itemController controller.ItemController
}

func NewItemHandler(itemController controller.ItemController) ItemHandler {
	return &itemHandler{
		itemController: itemController,
	}
}

// Create handles the creation of a new pantry item
func (h *itemHandler) Create(c *gin.Context) {
	var req entity.CreateItemRequest

	// Bind the incoming JSON to the request struct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.Fail("invalid item payload: "+err.Error()))
		return
	}

	created, err := h.itemController.CreateItem(c.Request.Context(), &req.Item, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	// Return the canonical stored item with its server-assigned id
	c.JSON(http.StatusCreated, entity.OK(created))
}

// ListItems handles fetching every item owned by the email in the query
func (h *itemHandler) ListItems(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, entity.Fail("email is required"))
		return
	}

	items, err := h.itemController.ListItems(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.OK(items))
}

// DeleteItem handles removal scoped by (id, email) jointly
func (h *itemHandler) DeleteItem(c *gin.Context) {
	id := c.Query("id")
	email := c.Query("email")

	err := h.itemController.DeleteItem(c.Request.Context(), id, email)
	if err != nil {
		respondError(c, err)
		return
	}

	// Return a success message with a 200 OK status code
	c.JSON(http.StatusOK, entity.OK(entity.DeleteResult{Message: "item deleted successfully"}))
}
