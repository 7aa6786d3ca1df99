package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saturnhq/purchase-orders/internal/config"
	"github.com/saturnhq/purchase-orders/internal/mockstore"
	"github.com/saturnhq/purchase-orders/internal/pkg/telemetry"
)

const serviceName = "po-mockstore"

func main() {
	telemetry.InitLogger(serviceName)

	cfg, err := config.ParseMockstore()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := mockstore.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if cfg.Seed {
		if err := mockstore.Seed(ctx, store); err != nil {
			log.Fatalf("seed store: %v", err)
		}
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mockstore.NewRouter(store),
	}

	go func() {
		slog.Info("mockstore listening", "addr", cfg.Addr, "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
