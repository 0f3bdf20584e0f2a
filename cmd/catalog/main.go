package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bitechx.com/catalog/internal/catalog/config"
	"bitechx.com/catalog/internal/catalog/logger"
	"bitechx.com/catalog/internal/httpserver"
)

func gracefulShutdown(srv *http.Server, log *zap.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
	done <- true
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting catalog dashboard",
		zap.String("env", cfg.Server.Env),
		zap.String("addr", cfg.Server.Addr),
		zap.String("api_base_url", cfg.API.BaseURL),
	)

	server, err := httpserver.New(httpserver.Config{
		Addr:                cfg.Server.Addr,
		APIBaseURL:          cfg.API.BaseURL,
		SessionHashKey:      []byte(cfg.Session.HashKey),
		SessionBlockKey:     blockKey(cfg.Session.BlockKey),
		SessionCookieName:   cfg.Session.CookieName,
		SessionCookieSecure: cfg.Session.CookieSecure,
		ProductPageSize:     cfg.Pages.ProductPageSize,
		CategoryPageSize:    cfg.Pages.CategoryPageSize,
		Logger:              log,
		HTTPClient:          &http.Client{Timeout: 15 * time.Second},
	})
	if err != nil {
		log.Fatal("Failed to build server", zap.Error(err))
	}

	srv := server.HTTPServer()

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}

// blockKey passes an empty key through as nil so encryption stays optional.
func blockKey(key string) []byte {
	if key == "" {
		return nil
	}
	return []byte(key)
}
