package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/proxystack/tlstriage/internal/api"
	"github.com/proxystack/tlstriage/internal/cache"
	"github.com/proxystack/tlstriage/internal/config"
	"github.com/proxystack/tlstriage/internal/engine"
	"github.com/proxystack/tlstriage/internal/metrics"
	"github.com/proxystack/tlstriage/internal/patterns"
	"github.com/proxystack/tlstriage/internal/repo"
	"github.com/proxystack/tlstriage/internal/reporter"
	"github.com/proxystack/tlstriage/internal/services"
	"github.com/proxystack/tlstriage/internal/utils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	logger.Info("starting tlstriage", slog.String("address", cfg.Server.Address))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	// Dedup cache: Valkey when configured, otherwise in-process. A failed
	// Valkey connection degrades to the in-process cache rather than
	// aborting startup.
	var cacheProvider cache.Provider = cache.NewMemoryProvider()
	var valkeyCloser cache.Provider
	if cfg.Cache.Valkey && cfg.Cache.Addr != "" {
		provider, err := cache.NewValkeyProvider(cache.ValkeyConfig{
			Addr:         cfg.Cache.Addr,
			Username:     cfg.Cache.Username,
			Password:     cfg.Cache.Password,
			DB:           cfg.Cache.DB,
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
			MaxRetries:   cfg.Cache.MaxRetries,
			TLS:          cfg.Cache.TLS,
		})
		if err != nil {
			logger.Warn("valkey cache unavailable, using in-process dedup", slog.Any("error", err))
		} else {
			cacheProvider = provider
			valkeyCloser = provider
		}
	}
	if valkeyCloser != nil {
		defer valkeyCloser.Close()
	}

	rulePack, err := engine.LoadRulePack(cfg.Rules.Path, logger)
	if err != nil {
		logger.Error("failed to load rule pack", slog.Any("error", err))
		os.Exit(1)
	}
	indicators := engine.NewIndicatorSet(rulePack.ExtraIndicators()...)
	advisor := engine.NewAdvisor(rulePack.AdviceOverrides())

	emitters := reporter.MultiEmitter{reporter.NewSlogEmitter(logger)}
	if cfg.Collector.Endpoint != "" {
		emitters = append(emitters, repo.NewCollectorClient(
			cfg.Collector.Endpoint,
			cfg.Collector.APIKey,
			cfg.Collector.Timeout,
		))
		logger.Info("forwarding reports to collector", slog.String("endpoint", cfg.Collector.Endpoint))
	}

	history := patterns.NewHistory(cfg.History.MaxEntries)
	rep := reporter.NewReporter(
		logger,
		indicators,
		advisor,
		emitters,
		cacheProvider,
		cfg.Cache.DedupTTL,
		history,
	)

	triageService := services.NewTriageService(logger, rep, history)

	server, err := api.NewServer(cfg.Server, triageService)
	if err != nil {
		logger.Error("failed to create gRPC server", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.Server.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:         cfg.Server.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", slog.String("address", cfg.Server.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server exited", slog.Any("error", err))
				stop()
			}
		}()
	}

	go func() {
		if serveErr := server.Start(); serveErr != nil {
			logger.Error("gRPC server exited", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()
	server.Shutdown(shutdownCtx)

	if metricsServer != nil {
		metricsCtx, cancelMetrics := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(metricsCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
		cancelMetrics()
	}

	// Give remaining goroutines time to finish logging
	time.Sleep(100 * time.Millisecond)
	logger.Info("tlstriage stopped")
}
