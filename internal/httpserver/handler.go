package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	budgetHTTP "karobar-dashboard/internal/budget/delivery/http"
	"karobar-dashboard/internal/middleware"
	paymentHTTP "karobar-dashboard/internal/payment/delivery/http"
	reportHTTP "karobar-dashboard/internal/report/delivery/http"
	tierHTTP "karobar-dashboard/internal/tier/delivery/http"
	todoHTTP "karobar-dashboard/internal/todo/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.Cors(srv.cors))

	ctx := context.Background()
	if len(srv.cors) == 0 {
		srv.l.Infof(ctx, "CORS: all origins allowed (%s)", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS: %d allowed origins", len(srv.cors))
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	todoHTTP.RegisterRoutes(api, srv.todoHandler)
	budgetHTTP.RegisterRoutes(api, srv.budgetHandler)
	reportHTTP.RegisterRoutes(api, srv.reportHandler)
	paymentHTTP.RegisterRoutes(api, srv.paymentHandler, mw.PaymentRateLimit(srv.paymentPerMin))
	tierHTTP.RegisterRoutes(api, tierHTTP.New(srv.l, srv.tiers))

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
