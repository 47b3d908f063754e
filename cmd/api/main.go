package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"docqa/internal/config"
	"docqa/internal/database"
	"docqa/internal/database/migration"
	"docqa/internal/extractor"
	"docqa/internal/gemini"
	handlers "docqa/internal/http/handler"
	"docqa/internal/http/middleware"
	"docqa/internal/logger"
	"docqa/internal/otel"
	"docqa/internal/repository"
	"docqa/internal/repository/postgres"
	"docqa/internal/service"
	"docqa/internal/storage"
)

const (
	// multipart framing on top of the file itself
	multipartSlack  = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// @title Document Q&A API
// @version 1.0
// @description Upload PDF or Excel documents and ask questions about their content.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal("failed to initialize scratch storage", zap.Error(err))
	}

	// The activity ledger is optional; without DB_HOST the service runs stateless.
	var (
		db       *sql.DB
		activity repository.ActivityRepository
	)
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		activity = postgres.NewActivityPostgres(db)
	} else {
		log.Info("activity ledger disabled: DB_HOST not set")
	}

	if cfg.Gemini.APIKey == "" {
		log.Warn("Gemini API key not configured: /api/ask will fail until API_KEY is set")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	svcMetrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatal("failed to register service metrics", zap.Error(err))
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	docSvc := service.NewDocumentService(
		store,
		extractor.New(),
		gemini.NewClient(cfg.Gemini, log),
		service.Options{
			MaxUploadBytes: cfg.Upload.MaxBytes,
			Activity:       activity,
			Metrics:        svcMetrics,
			Logger:         log,
		},
	)

	env := handlers.Env{
		Name:           cfg.Env,
		StartedAt:      time.Now(),
		MaxUploadBytes: cfg.Upload.MaxBytes,
		Log:            log,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(env),
		BodyLimit:             int(cfg.Upload.MaxBytes) + multipartSlack,
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(httpMetrics.Handler())
	app.Use(middleware.Logger(log))
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsDevelopment()}))
	app.Use(middleware.CORS(cfg.CORS))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterSwagger(app, cfg.AppHost)
	handlers.RegisterRoutes(app, db, docSvc, env)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		errCh <- app.Listen(addr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if n, err := store.Purge(shutdownCtx); err != nil {
		log.Error("scratch purge", zap.Error(err))
	} else if n > 0 {
		log.Info("scratch purged", zap.Int("objects", n))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown", zap.Error(err))
	}
}
