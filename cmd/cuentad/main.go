package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cuenta/internal/api"
	"cuenta/internal/bootstrap"
	"cuenta/internal/config"
	"cuenta/internal/health"
	"cuenta/internal/metrics"
	"cuenta/internal/signup"
	"cuenta/internal/trace"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file to load")
	port := flag.String("port", "", "listen port (overrides PORT)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Load(*envFile)
	if *port != "" {
		cfg.Port = *port
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("cuentad: exit", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	exporter, err := trace.NewOTLPExporter(ctx, trace.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Insecure:    true,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = exporter.Shutdown(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	controller := signup.NewController(deps.Provider,
		signup.WithLogger(logger),
		signup.WithTracer(exporter.Tracer("cuenta/signup")),
		signup.WithMetrics(metrics.NewSignUp(reg)),
		signup.WithHomeRoute(cfg.HomeRoute),
	)

	app := api.NewApp(logger)
	api.Register(app,
		api.NewSignUpHandler(controller, logger),
		api.NewHealthHandler(health.NewService(deps.Checkers...)),
		reg,
	)

	errc := make(chan error, 1)
	go func() {
		logger.Info("cuentad: listening", slog.String("port", cfg.Port), slog.String("provider", cfg.Provider))
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("cuentad: shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
