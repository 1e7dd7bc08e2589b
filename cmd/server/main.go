package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emberwell/assess-api/internal/config"
	"github.com/emberwell/assess-api/internal/database"
	"github.com/emberwell/assess-api/internal/handler"
	"github.com/emberwell/assess-api/internal/jobs"
	"github.com/emberwell/assess-api/internal/middleware"
	"github.com/emberwell/assess-api/internal/model"
	"github.com/emberwell/assess-api/internal/repository"
	"github.com/emberwell/assess-api/internal/service"
)

// statePruner is satisfied by both state store implementations.
type statePruner interface {
	service.StateStore
	jobs.StatePruner
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging; development runs log at debug
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Load and validate the questionnaire definition
	quiz, err := model.LoadQuestionnaireFile(cfg.Quiz.DefinitionPath)
	if err != nil {
		slog.Error("failed to load questionnaire",
			slog.String("path", cfg.Quiz.DefinitionPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	slog.Info("loaded questionnaire",
		slog.String("version", quiz.Version),
		slog.Int("questions", len(quiz.Questions)),
	)

	// Initialize the session state store
	var store statePruner
	var pinger handler.Pinger
	switch cfg.Database.Driver {
	case "memory":
		store = repository.NewMemoryStateStore()
		slog.Info("using in-memory session store")
	default:
		db := database.NewSurrealDB(database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		})

		if err := db.Connect(context.Background()); err != nil {
			slog.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()

		slog.Info("connected to database",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Database),
		)
		store = repository.NewSurrealStateStore(db)
		pinger = db
	}

	// Initialize services
	scoringService := service.NewScoringService()
	profileService := service.NewProfileService()
	sessionService := service.NewSessionService(service.SessionServiceConfig{
		Questionnaire: quiz,
		Store:         store,
		Scoring:       scoringService,
		Profiles:      profileService,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100,
		Window: time.Minute,
		Burst:  20,
	})
	defer rateLimiter.Stop()

	// Start the session sweeper
	sweeper := jobs.NewSessionSweeper(store, jobs.SessionSweeperConfig{
		TTL:      cfg.Quiz.SessionTTL,
		Interval: cfg.Quiz.SweepInterval,
	})
	sweeper.Start()
	defer sweeper.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(pinger)
	quizHandler := handler.NewQuizHandler(quiz, scoringService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Questionnaire endpoints
	mux.HandleFunc("GET /v1/quiz", quizHandler.Meta)
	mux.HandleFunc("GET /v1/quiz/questions", quizHandler.ListQuestions)

	// Session endpoints
	mux.HandleFunc("POST /v1/sessions", sessionHandler.Create)
	mux.HandleFunc("GET /v1/sessions/{sessionId}", sessionHandler.Get)
	mux.HandleFunc("DELETE /v1/sessions/{sessionId}", sessionHandler.Delete)
	mux.HandleFunc("PUT /v1/sessions/{sessionId}/answers/{questionId}", sessionHandler.PutAnswer)
	mux.HandleFunc("PUT /v1/sessions/{sessionId}/profile", sessionHandler.PutProfile)
	mux.HandleFunc("PUT /v1/sessions/{sessionId}/step", sessionHandler.PutStep)
	mux.HandleFunc("GET /v1/sessions/{sessionId}/progress", sessionHandler.GetProgress)
	mux.HandleFunc("GET /v1/sessions/{sessionId}/result", sessionHandler.GetResult)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
