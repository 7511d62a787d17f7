package http

import (
	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/payment"
	"karobar-dashboard/pkg/log"
)

// Handler is the public interface for the payment HTTP delivery layer.
type Handler interface {
	Checkout(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc payment.UseCase
}

// New creates a new HTTP handler for the payment domain.
func New(l log.Logger, uc payment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
