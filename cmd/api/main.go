package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/douceurdz/storefront-backend/api/routes"
	"github.com/douceurdz/storefront-backend/internal/cart"
	"github.com/douceurdz/storefront-backend/internal/catalog"
	"github.com/douceurdz/storefront-backend/internal/checkout"
	"github.com/douceurdz/storefront-backend/internal/session"
	"github.com/douceurdz/storefront-backend/pkg/config"
	"github.com/douceurdz/storefront-backend/pkg/kv"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := kv.NewClient(context.Background(), cfg.Store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open store", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing store", err)
		}
	}()

	cat, err := catalog.Default()
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	backend := kv.NewGormBackend(store.DB())
	sessions := session.NewService(backend, cfg.Reset, logg)
	carts := cart.NewService(backend, logg)

	checkoutService, err := checkout.NewService(nil, carts, cfg.Checkout, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, store, cat, sessions, carts, checkoutService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
