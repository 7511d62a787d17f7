package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/budget"
	"karobar-dashboard/pkg/response"
)

// respondError translates budget domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, budget.ErrBudgetNotFound),
		errors.Is(err, budget.ErrCategoryNotFound):
		response.NotFound(c, err)
	case errors.Is(err, budget.ErrEmptyName),
		errors.Is(err, budget.ErrInvalidAmount),
		errors.Is(err, budget.ErrNoCategories),
		errors.Is(err, budget.ErrDuplicateCategory):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
