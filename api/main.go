package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"amharic.dev/analyzer/api/adapters/aaa"
	"amharic.dev/analyzer/api/adapters/analysis"
	"amharic.dev/analyzer/api/adapters/db"
	"amharic.dev/analyzer/api/adapters/documents"
	"amharic.dev/analyzer/api/adapters/events"
	"amharic.dev/analyzer/api/adapters/rest"
	"amharic.dev/analyzer/api/adapters/rest/middleware"
	"amharic.dev/analyzer/api/config"
	"amharic.dev/analyzer/api/core"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	log.Info("starting api server", "address", cfg.HTTPServer.Address)
	log.Debug("debug messages are enabled")

	// DB
	if err := db.Migrate(log, cfg.DBAddress); err != nil {
		return fmt.Errorf("failed to migrate db: %w", err)
	}
	storage, err := db.New(log, cfg.DBAddress)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close db", "error", err)
		}
	}()

	// analysis
	analysisClient, err := analysis.NewClient(cfg.AnalysisAddress, int(cfg.Limits.MaxDocumentBytes), log)
	if err != nil {
		return fmt.Errorf("failed to create analysis client: %w", err)
	}
	defer func() {
		if err := analysisClient.Close(); err != nil {
			log.Error("failed to close analysis client", "error", err)
		}
	}()

	// events
	publisher, err := events.NewNatsPublisher(cfg.BrokerAddress, log)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("failed to close broker connection", "error", err)
		}
	}()

	// auth
	auth, err := aaa.New(cfg.Auth.AdminUser, cfg.Auth.AdminPassword, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, log)
	if err != nil {
		return fmt.Errorf("failed to create auth: %w", err)
	}

	// service
	library := documents.NewLibrary(log, cfg.Batch.Root)
	service, err := core.NewService(log, storage, analysisClient, documents.Extractor{}, library, publisher, cfg.Batch.Concurrency)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	limits := cfg.Limits
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Auth(h, auth)
	}
	upload := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Rate(middleware.Concurrency(h, limits.UploadConcurrency), limits.UploadRate, limits.UploadBurst)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /ping", rest.NewPingHandler(log, map[string]core.Pinger{
		"analysis": analysisClient,
		"db":       storage,
		"broker":   publisher,
	}))
	mux.Handle("POST /api/login", rest.NewLoginHandler(log, auth))
	mux.Handle("POST /api/analyze", upload(rest.NewAnalyzeHandler(log, service, limits.MaxDocumentBytes)))
	mux.Handle("POST /api/documents", upload(rest.NewUploadHandler(log, service, limits.MaxDocumentBytes)))
	mux.Handle("GET /api/documents", rest.NewListHandler(log, service))
	mux.Handle("GET /api/documents/{id}", rest.NewDetailHandler(log, service))
	mux.Handle("GET /api/documents/{id}/visualize", rest.NewVisualizeHandler(log, service))
	mux.Handle("DELETE /api/documents/{id}", admin(rest.NewDeleteHandler(log, service)))
	mux.Handle("POST /api/batch", admin(rest.NewBatchHandler(log, service)))

	server := &http.Server{
		Addr:              cfg.HTTPServer.Address,
		Handler:           mux,
		ReadTimeout:       cfg.HTTPServer.Timeout,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout,
		WriteTimeout:      cfg.HTTPServer.Timeout,
		IdleTimeout:       2 * cfg.HTTPServer.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("erroneous shutdown", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server closed unexpectedly: %w", err)
	}
	return nil
}

func mustMakeLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "INFO":
		slogLevel = slog.LevelInfo
	case "WARN", "WARNING":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		panic("unknown log level: " + level)
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: false,
	}))
}
