package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/repository"
)

// respondError maps the error taxonomy onto HTTP statuses and writes a
// failed envelope. Nothing here is fatal to the process.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case entity.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		status = http.StatusConflict
	}
	c.JSON(status, entity.Fail(err.Error()))
}
