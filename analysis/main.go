package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	analysisgrpc "amharic.dev/analyzer/analysis/adapters/grpc"
	"amharic.dev/analyzer/analysis/config"
	"amharic.dev/analyzer/amharic"
	analysispb "amharic.dev/analyzer/proto/analysis"
)

// room for the request envelope around the text
const messageOverhead = 4 << 10

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

	log.Info("starting analysis server", "address", cfg.Address)
	log.Debug("debug messages are enabled")

	analyzer, err := amharic.New(amharic.Options{
		UpperPercentile: cfg.UpperPercentile,
		LowerPercentile: cfg.LowerPercentile,
	})
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	var opts []grpc.ServerOption
	if cfg.MaxTextBytes > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxTextBytes+messageOverhead))
	}
	s := grpc.NewServer(opts...)
	analysispb.RegisterAnalysisServer(s, analysisgrpc.NewServer(log, analyzer, cfg.MaxTextBytes))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(analysispb.Analysis_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down analysis server")
		healthServer.Shutdown()
		s.GracefulStop()
	}()

	if err := s.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(strings.TrimSpace(logLevel)) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	return slog.New(handler)
}
