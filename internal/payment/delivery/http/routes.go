package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Checkout is
// mounted behind the payment rate limiter by the server.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, limiter gin.HandlerFunc) {
	payments := rg.Group("/payments")
	{
		payments.POST("/checkout", limiter, h.Checkout)
	}
}
