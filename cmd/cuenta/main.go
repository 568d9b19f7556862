package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cuenta/internal/bootstrap"
	"cuenta/internal/config"
	"cuenta/internal/signup"
	"cuenta/internal/trace"
	"cuenta/internal/ui"
)

// options holds the parsed CLI flags.
type options struct {
	envFile  string
	logFile  string
	provider string
	verbose  bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.envFile, "env", ".env", "optional .env file to load")
	flag.StringVar(&opts.logFile, "log", "cuenta.log", "log file (the terminal is taken by the UI)")
	flag.StringVar(&opts.provider, "provider", "", "identity provider: local or firebase (overrides CUENTA_PROVIDER)")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cuenta [flags]\n\n")
		fmt.Fprintf(os.Stderr, "cuenta opens the account sign-up screen in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run(opts options) error {
	f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("log file %q: %w", opts.logFile, err)
	}
	defer f.Close()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Load(opts.envFile)
	if opts.provider != "" {
		cfg.Provider = opts.provider
	}

	ctx := context.Background()
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
		if err := exporter.Shutdown(sctx); err != nil {
			logger.Warn("cuenta: trace shutdown", slog.Any("err", err))
		}
	}()

	controller := signup.NewController(deps.Provider,
		signup.WithLogger(logger),
		signup.WithTracer(exporter.Tracer("cuenta/signup")),
		signup.WithHomeRoute(cfg.HomeRoute),
	)

	model := ui.NewAppModel(controller, logger)
	if cfg.HomeRoute != signup.HomeRoute {
		model.Routes[cfg.HomeRoute] = model.Routes[signup.HomeRoute]
		model.Keys.BindForRoutes("q", tea.Quit, "salir", []string{cfg.HomeRoute})
	}
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	model.Attach(p.Send)

	logger.Info("cuenta: start", slog.String("provider", cfg.Provider))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "cuenta: %v\n", err)
		os.Exit(1)
	}
}
