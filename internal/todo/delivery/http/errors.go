package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/todo"
	"karobar-dashboard/internal/todo/repository"
	"karobar-dashboard/pkg/response"
)

// respondError translates domain/repository errors into HTTP responses.
// Store failures are upstream failures (502); validation and gating are 400.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, todo.ErrEmptyTitle), errors.Is(err, todo.ErrTierLimit):
		response.Error(c, err, nil)
	case errors.Is(err, todo.ErrTodoNotFound):
		response.NotFound(c, err)
	case errors.Is(err, repository.ErrFailedToList),
		errors.Is(err, repository.ErrFailedToCreate),
		errors.Is(err, repository.ErrFailedToUpdate):
		response.BadGateway(c, err)
	default:
		response.InternalError(c, err)
	}
}
