package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"karobar-dashboard/config"
	_ "karobar-dashboard/docs" // Swagger docs
	budgetHTTP "karobar-dashboard/internal/budget/delivery/http"
	budgetRepo "karobar-dashboard/internal/budget/repository"
	budgetMemory "karobar-dashboard/internal/budget/repository/memory"
	budgetPostgre "karobar-dashboard/internal/budget/repository/postgre"
	budgetUC "karobar-dashboard/internal/budget/usecase"
	"karobar-dashboard/internal/httpserver"
	paymentHTTP "karobar-dashboard/internal/payment/delivery/http"
	paymentMemory "karobar-dashboard/internal/payment/repository/memory"
	paymentUC "karobar-dashboard/internal/payment/usecase"
	reportHTTP "karobar-dashboard/internal/report/delivery/http"
	reportRepo "karobar-dashboard/internal/report/repository"
	reportMemory "karobar-dashboard/internal/report/repository/memory"
	reportPostgre "karobar-dashboard/internal/report/repository/postgre"
	reportUC "karobar-dashboard/internal/report/usecase"
	"karobar-dashboard/internal/tier"
	todoHTTP "karobar-dashboard/internal/todo/delivery/http"
	"karobar-dashboard/internal/todo/repository/taskstore"
	todoUC "karobar-dashboard/internal/todo/usecase"
	"karobar-dashboard/pkg/easypaisa"
	"karobar-dashboard/pkg/gcalendar"
	"karobar-dashboard/pkg/jazzcash"
	"karobar-dashboard/pkg/log"
)

// @title       Karobar Dashboard API
// @description Business productivity dashboard: todos (external task store), budgets, project reports, tier gating, and mocked JazzCash/EasyPaisa checkout.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Karobar Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store URL: %s", cfg.TaskStore.URL)

	// 3. Optional postgres for budgets/projects
	var (
		budgetRepository  budgetRepo.BudgetRepository
		projectRepository reportRepo.ProjectRepository
	)
	if cfg.Postgres.Enabled {
		db, dbErr := sql.Open("postgres", cfg.Postgres.DSN)
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to open postgres: %v", dbErr)
			return
		}
		defer db.Close()
		if pingErr := db.PingContext(ctx); pingErr != nil {
			logger.Errorf(ctx, "Failed to ping postgres: %v", pingErr)
			return
		}
		budgetRepository = budgetPostgre.New(db, logger)
		projectRepository = reportPostgre.New(db, logger)
		logger.Info(ctx, "Postgres repositories enabled")
	} else {
		budgetRepository = budgetMemory.New()
		projectRepository = reportMemory.New()
		logger.Info(ctx, "In-memory repositories enabled")
	}

	// 4. Tier service
	tiers := tier.New(
		tier.DefaultLimits(cfg.Tier.StarterTasks, cfg.Tier.ProTasks),
		tier.NewFileStore(cfg.Tier.StatePath),
		logger,
	)

	// 5. Optional Google Calendar due-date sync
	var calendarClient todoUC.CalendarClient
	if cfg.Calendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar due-date sync enabled")
		}
	}

	// 6. Todo domain
	taskRepo := taskstore.New(taskstore.NewClient(cfg.TaskStore.URL, cfg.TaskStore.APIKey), logger)
	todoUseCase := todoUC.New(logger, taskRepo, tiers, calendarClient, cfg.Calendar.CalendarID, cfg.Calendar.Timezone)
	todoHandler := todoHTTP.New(logger, todoUseCase)

	// 7. Budget domain
	budgetUseCase := budgetUC.New(budgetRepository, logger)
	budgetHandler := budgetHTTP.New(logger, budgetUseCase)

	// 8. Report domain
	reportUseCase := reportUC.New(projectRepository, logger)
	reportHandler := reportHTTP.New(logger, reportUseCase)

	// 9. Payment domain (mocked gateways)
	paymentUseCase := paymentUC.New(
		logger,
		paymentMemory.New(),
		tiers,
		jazzcash.NewClient(cfg.Payment.JazzCash.BaseURL, cfg.Payment.JazzCash.MerchantID, cfg.Payment.JazzCash.Password, cfg.Payment.JazzCash.ReturnURL),
		easypaisa.NewClient(cfg.Payment.EasyPaisa.BaseURL, cfg.Payment.EasyPaisa.StoreID, cfg.Payment.EasyPaisa.ReturnURL),
		paymentUC.Config{
			SimulatedDelay: time.Duration(cfg.Payment.SimulatedDelayMS) * time.Millisecond,
			FailureRate:    cfg.Payment.FailureRate,
		},
	)
	paymentHandler := paymentHTTP.New(logger, paymentUseCase)

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		AllowedOrigins:    cfg.HTTPServer.AllowedOrigins,
		PaymentRatePerMin: cfg.Payment.RateLimitPerMin,
		TodoHandler:       todoHandler,
		BudgetHandler:     budgetHandler,
		ReportHandler:     reportHandler,
		PaymentHandler:    paymentHandler,
		TierManager:       tiers,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
