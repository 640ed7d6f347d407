package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"ip-service/internal"
)

const (
	ipCacheTTL      = time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := internal.NewLogger(cfg)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver := internal.NewResolver(cfg.ShowLocalhostIPs, ipCacheTTL)
	collector := internal.NewCollector(logger)
	collector.Start(ctx)

	handler := internal.NewHandler(cfg, logger, resolver, collector)
	router := internal.NewServer(cfg, logger, handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.Int("port", cfg.Port),
			zap.String("log_level", string(cfg.LogLevel)),
			zap.Bool("cors_enabled", cfg.CORSEnabled),
			zap.String("version", internal.Version),
		)
		errc <- server.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
	case s := <-sig:
		logger.Info("shutting down", zap.String("signal", s.String()))
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown incomplete", zap.Error(err))
		}
	}
}
