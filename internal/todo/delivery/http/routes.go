package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	todos := rg.Group("/todos")
	{
		todos.GET("", h.List)
		todos.POST("", h.Create)
		todos.GET("/stats", h.Stats)
		todos.PUT("/:id", h.Update)
		todos.PATCH("/:id/toggle", h.Toggle)
		todos.DELETE("/:id", h.Delete)
	}
}
