// apiserver exposes the CHEMKIN kinetics parser over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	appkin "github.com/turtacn/MechParse/internal/application/kinetics"
	"github.com/turtacn/MechParse/internal/config"
	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
	monprom "github.com/turtacn/MechParse/internal/infrastructure/monitoring/prometheus"
	apihttp "github.com/turtacn/MechParse/internal/interfaces/http"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	var metrics monprom.ParserMetrics
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		metrics = monprom.NewParserMetrics(registry)
	} else {
		metrics = monprom.NewNoopMetrics()
	}

	svc := appkin.NewService(appkin.Options{
		Workers:  cfg.Parser.Workers,
		FailFast: cfg.Parser.FailFast,
	}, logger, metrics)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Service:  svc,
		Logger:   logger,
		Metrics:  metrics,
		Gatherer: registry,
		Config:   cfg,
		Version:  version,
	})

	if configPath != "" {
		err := config.Watch(configPath,
			func(next *config.Config) {
				logger.Info("configuration file changed",
					logging.String("path", configPath),
					logging.String("log_level", next.Log.Level))
			},
			func(err error) {
				logger.Warn("configuration reload failed", logging.Err(err))
			})
		if err != nil {
			return err
		}
	}

	srv := apihttp.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("signal received", logging.String("signal", sig.String()))
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return <-errCh
}
