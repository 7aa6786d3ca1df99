package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saturnhq/purchase-orders/internal/adapters/rest"
	"github.com/saturnhq/purchase-orders/internal/auth"
	"github.com/saturnhq/purchase-orders/internal/config"
	"github.com/saturnhq/purchase-orders/internal/engine"
	"github.com/saturnhq/purchase-orders/internal/gateway/httpx"
	"github.com/saturnhq/purchase-orders/internal/gateway/httpx/middlewares"
	"github.com/saturnhq/purchase-orders/internal/pkg/cache"
	"github.com/saturnhq/purchase-orders/internal/pkg/telemetry"
)

const serviceName = "po-gateway"

func main() {
	telemetry.InitLogger(serviceName)

	cfg, err := config.ParseGateway()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, serviceName)
	if err != nil {
		log.Fatalf("setup tracer: %v", err)
	}
	defer shutdownTracer(context.Background())

	var c cache.Cache
	if cfg.RedisAddr != "" {
		c = cache.NewRedisCache(cfg.RedisAddr, serviceName)
	} else {
		c = cache.NewMemoryCache(serviceName)
	}

	client := rest.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.RequestTimeout})
	orders := rest.NewOrderStore(client)
	catalog := rest.NewCatalogStore(client, c, cfg.CatalogCacheTTL)
	products := rest.NewProductStore(client)
	suppliers := rest.NewSupplierStore(client)

	authService := auth.NewService(suppliers, c, cfg.SessionTTL)
	loader := engine.NewLoader(orders, catalog)

	handler := httpx.NewHandler(loader, orders, products, suppliers, authService)
	router := httpx.NewRouter(handler, middlewares.NewAuth(authService))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		slog.Info("gateway listening", "addr", cfg.Addr, "backend", cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
