package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"collab-assistant/config"
	_ "collab-assistant/docs" // Swagger docs
	gcalRepo "collab-assistant/internal/command/repository/gcal"
	"collab-assistant/internal/command/repository/workspace"
	"collab-assistant/internal/command/usecase"
	"collab-assistant/internal/httpserver"
	"collab-assistant/internal/middleware"
	"collab-assistant/internal/responder"
	"collab-assistant/internal/router"
	"collab-assistant/pkg/datemath"
	"collab-assistant/pkg/gcalendar"
	"collab-assistant/pkg/gemini"
	"collab-assistant/pkg/log"
)

// @title       Collab Assistant API
// @description Korean natural-language command interpreter for the collaboration suite: calendar events, tasks, notes, and conversational fallback.
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

	logger.Info(ctx, "Starting Collab Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Workspace URL: %s", cfg.Workspace.URL)

	// 3. Temporal resolver
	parser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	// 4. Stores
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar: ", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	calendarID := cfg.GoogleCalendar.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	eventRepo := gcalRepo.New(calendarClient, calendarID, cfg.Assistant.Timezone, logger)

	wsClient := workspace.NewClient(cfg.Workspace.URL, cfg.Workspace.APIKey)
	taskRepo := workspace.NewTaskRepository(wsClient, logger)
	noteRepo := workspace.NewNoteRepository(wsClient, logger)

	// 5. Conversational fallback
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	rsp := responder.New(geminiClient, logger)

	// 6. Command interpreter
	commandUC := usecase.New(
		logger,
		router.New(logger),
		parser,
		eventRepo,
		taskRepo,
		noteRepo,
		rsp,
	)

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		CommandUC:   commandUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
