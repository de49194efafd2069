package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MauItu/inventario-alimentos/controller"
	"github.com/MauItu/inventario-alimentos/entity"
)

type UserHandler interface {
	Create(c *gin.Context)
	GetUser(c *gin.Context)
	ListUsers(c *gin.Context)
}

type userHandler struct {
	userController controller.UserController
}

func NewUserHandler(userController controller.UserController) UserHandler {
	return &userHandler{
		userController: userController,
	}
}

// Create handles the registration of a new user
func (h *userHandler) Create(c *gin.Context) {
	var req entity.CreateUserRequest

	// Bind the incoming JSON to the request struct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.Fail("email is required"))
		return
	}

	identity, err := h.userController.CreateUser(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	// Return the created user with a 201 Created status code
	c.JSON(http.StatusCreated, entity.OK(identity))
}

// GetUser handles the email lookup that stands in for login
func (h *userHandler) GetUser(c *gin.Context) {
	email := c.Param("email") // Get the email from the URL parameter

	identity, err := h.userController.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	// Return the user with a 200 OK status code
	c.JSON(http.StatusOK, entity.OK(identity))
}

// ListUsers handles fetching every registered user
func (h *userHandler) ListUsers(c *gin.Context) {
	identities, err := h.userController.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.OK(identities))
}
