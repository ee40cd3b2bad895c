package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-mirror/config"
	_ "calendar-mirror/docs" // Swagger docs
	calendarRepo "calendar-mirror/internal/calendar/repository/postgre"
	"calendar-mirror/internal/database"
	"calendar-mirror/internal/httpserver"
	"calendar-mirror/internal/scheduler"
	"calendar-mirror/internal/sync"
	"calendar-mirror/pkg/gcalendar"
	"calendar-mirror/pkg/log"
)

// @title       Calendar Mirror API
// @description Local mirror of Google Calendar with diff-based reconciliation.
// @version     1
// @host        localhost:4042
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

	logger.Info(ctx, "Starting Calendar Mirror...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database (migrations run on open)
	db, err := database.Open(cfg.Postgres.URL)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// 4. Google Calendar client
	gcal, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, gcalendar.Options{
		RateLimit: cfg.GoogleCalendar.RateLimit,
		RateBurst: cfg.GoogleCalendar.RateBurst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar client: ", err)
		return
	}

	// 5. Reconciliation engine (shared by the scheduler and the HTTP trigger)
	engine := sync.NewEngine(gcal, calendarRepo.New(db, logger), sync.Config{
		Workers:             cfg.Sync.Workers,
		MaxAttempts:         cfg.Sync.MaxAttempts,
		RetryBaseDelay:      cfg.Sync.RetryBaseDelay,
		IncrementalLookback: cfg.Sync.IncrementalLookback,
		IncrementalHorizon:  cfg.Sync.IncrementalHorizon,
	}, logger)

	// 6. Scheduler
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(engine, scheduler.Config{
			IncrementalSpec: cfg.Scheduler.IncrementalSpec,
			FullSpec:        cfg.Scheduler.FullSpec,
		}, logger)
		if err := sched.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start scheduler: ", err)
			return
		}
		defer sched.Stop()
	} else {
		logger.Warn(ctx, "Scheduler disabled, sync runs only via POST /api/v1/sync")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Remote:      gcal,
		Engine:      engine,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
