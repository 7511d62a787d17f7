package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	budgetHTTP "karobar-dashboard/internal/budget/delivery/http"
	paymentHTTP "karobar-dashboard/internal/payment/delivery/http"
	reportHTTP "karobar-dashboard/internal/report/delivery/http"
	"karobar-dashboard/internal/tier"
	todoHTTP "karobar-dashboard/internal/todo/delivery/http"
	"karobar-dashboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	cors           []string
	paymentPerMin  int
	todoHandler    todoHTTP.Handler
	budgetHandler  budgetHTTP.Handler
	reportHandler  reportHTTP.Handler
	paymentHandler paymentHTTP.Handler
	tiers          tier.Manager
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// AllowedOrigins restricts CORS in production; empty allows all.
	AllowedOrigins []string
	// PaymentRatePerMin throttles POST /api/v1/payments/checkout.
	PaymentRatePerMin int

	TodoHandler    todoHTTP.Handler
	BudgetHandler  budgetHTTP.Handler
	ReportHandler  reportHTTP.Handler
	PaymentHandler paymentHTTP.Handler
	TierManager    tier.Manager
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		cors:           cfg.AllowedOrigins,
		paymentPerMin:  cfg.PaymentRatePerMin,
		todoHandler:    cfg.TodoHandler,
		budgetHandler:  cfg.BudgetHandler,
		reportHandler:  cfg.ReportHandler,
		paymentHandler: cfg.PaymentHandler,
		tiers:          cfg.TierManager,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoHandler == nil {
		return errors.New("todo handler is required")
	}
	if srv.budgetHandler == nil {
		return errors.New("budget handler is required")
	}
	if srv.reportHandler == nil {
		return errors.New("report handler is required")
	}
	if srv.paymentHandler == nil {
		return errors.New("payment handler is required")
	}
	if srv.tiers == nil {
		return errors.New("tier manager is required")
	}
	return nil
}
