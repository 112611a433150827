package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-task-manager/config"
	_ "smart-task-manager/docs" // Swagger docs
	"smart-task-manager/internal/httpserver"
	"smart-task-manager/internal/middleware"
	taskRepo "smart-task-manager/internal/task/repository/sqlite"
	"smart-task-manager/internal/task/usecase"
	"smart-task-manager/pkg/gcalendar"
	"smart-task-manager/pkg/llmprovider"
	"smart-task-manager/pkg/log"
)

// @title       Smart Task Manager API
// @description Natural-language task extraction with LLM providers, SQLite storage and optional Google Calendar mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
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

	logger.Info(ctx, "Starting Smart Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task store
	db, err := taskRepo.Open(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %q: %v", cfg.Database.Path, err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. LLM providers (priority order, retry and fallback)
	llm, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}

	// 5. Google Calendar (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.Enabled {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate a token")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	loc, err := time.LoadLocation(cfg.Extraction.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Extraction.Timezone, err)
		return
	}

	if len(cfg.Auth.Tokens) == 0 {
		logger.Warn(ctx, "No auth tokens configured, every API request will be rejected")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Verifier:       middleware.NewStaticTokenVerifier(cfg.Auth.Tokens),
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Burst:          cfg.RateLimit.Burst,
		DB:             db,
		LLM:            llm,
		Calendar:       calendar,
		TaskOptions: usecase.Options{
			Location:        loc,
			MaxInputChars:   cfg.Extraction.MaxInputChars,
			MaxOutputTokens: cfg.Extraction.MaxOutputTokens,
			Temperature:     &cfg.Extraction.Temperature,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
