package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/user/demo-dashboard-api/internal/auth"
	"github.com/user/demo-dashboard-api/internal/config"
	"github.com/user/demo-dashboard-api/internal/server"
	"github.com/user/demo-dashboard-api/internal/store"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	tokens := auth.NewService([]byte(cfg.JWTSecret), cfg.AppName, cfg.Version, cfg.TokenTTL, logger)

	st := store.New()
	st.Seed(3)

	// The shutdown endpoint and OS signals share one stop channel.
	stop := make(chan struct{})
	var stopOnce sync.Once
	requestStop := func() {
		stopOnce.Do(func() { close(stop) })
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(cfg, st, tokens, logger, requestStop)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("server starting", "app", cfg.AppName, "version", cfg.Version, "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case <-stop:
	}
	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
