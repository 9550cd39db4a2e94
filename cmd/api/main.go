package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daybalance/config"
	_ "daybalance/docs" // Swagger docs
	coachDelivery "daybalance/internal/coach/delivery/http"
	"daybalance/internal/coach/stream"
	coachUsecase "daybalance/internal/coach/usecase"
	"daybalance/internal/httpserver"
	"daybalance/internal/middleware"
	"daybalance/internal/model"
	taskDelivery "daybalance/internal/task/delivery/http"
	"daybalance/internal/task/repository/sqlite"
	taskUsecase "daybalance/internal/task/usecase"
	"daybalance/pkg/gcalendar"
	"daybalance/pkg/llmprovider"
	"daybalance/pkg/log"
	"daybalance/pkg/requestqueue"
)

// @title       Day Balance API
// @description Task tracking across life-balance categories with an AI coach.
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

	logger.Info(ctx, "Starting Day Balance...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	taskRepo, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open task store: ", err)
		return
	}
	defer taskRepo.Close()
	logger.Infof(ctx, "Task store ready at %s", cfg.SQLite.Path)

	taskUC := taskUsecase.New(logger, taskRepo)

	// 4. LLM backend
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	queue := requestqueue.New(logger,
		requestqueue.WithDispatchGap(parseDuration(cfg.Coach.DispatchGap, 2*time.Second)),
		requestqueue.WithCacheTTL(parseDuration(cfg.Coach.CacheTTL, 5*time.Minute)),
		requestqueue.WithMaxRetries(cfg.Coach.MaxRetries),
	)

	// 5. Coach stream hub
	hub := stream.NewHub(logger)
	go hub.Run()

	// 6. Google Calendar (optional)
	var calendar coachUsecase.Calendar
	if cfg.GoogleCalendar.Enabled {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Coach domain
	coachUC := coachUsecase.New(logger, taskUC, manager, queue, hub, calendar, model.Preferences{
		SleepStart: cfg.Coach.SleepStart,
		SleepEnd:   cfg.Coach.SleepEnd,
		Timezone:   cfg.Coach.Timezone,
	})

	// 8. Delivery
	taskHandler := taskDelivery.New(logger, taskUC)
	coachHandler := coachDelivery.New(logger, coachUC)
	mw := middleware.New(logger, cfg.Coach.RateLimitPerMin)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		TaskHandler:  taskHandler,
		CoachHandler: coachHandler,
		Hub:          hub,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
