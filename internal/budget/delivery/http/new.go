package http

import (
	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/budget"
	"karobar-dashboard/pkg/log"
)

// Handler is the public interface for the budget HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	AddCategory(c *gin.Context)
	UpdateCategory(c *gin.Context)
	DeleteCategory(c *gin.Context)
	ExportReport(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc budget.UseCase
}

// New creates a new HTTP handler for the budget domain.
func New(l log.Logger, uc budget.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
