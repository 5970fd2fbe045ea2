package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kasuganosora/covidsample/pkg/api"
	"github.com/kasuganosora/covidsample/pkg/config"
	"github.com/kasuganosora/covidsample/server/httpapi"
)

func main() {
	cfg := config.LoadConfigOrDefault()
	logger := api.NewDefaultLogger(api.ParseLogLevel(cfg.Log.Level))
	logger.Info("config loaded: address=%s default_percent=%d", cfg.GetListenAddress(), cfg.Sample.DefaultPercent)

	svc := api.NewService(logger, api.CacheConfig{
		Enabled: cfg.Cache.Enabled,
		TTL:     cfg.Cache.TTL,
		MaxSize: cfg.Cache.MaxSize,
	})
	server := httpapi.NewServer(svc, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed: %v", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited: %v", err)
			os.Exit(1)
		}
	}
}
