package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.List)
		budgets.POST("", h.Create)
		budgets.GET("/:id", h.Detail)
		budgets.GET("/:id/report", h.ExportReport)
		budgets.POST("/:id/categories", h.AddCategory)
		budgets.PUT("/:id/categories/:name", h.UpdateCategory)
		budgets.DELETE("/:id/categories/:name", h.DeleteCategory)
	}
}
