package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartmart/smartmart-dashboard/internal/apiclient"
	"github.com/smartmart/smartmart-dashboard/internal/app"
	"github.com/smartmart/smartmart-dashboard/internal/categories"
	"github.com/smartmart/smartmart-dashboard/internal/dashboard"
	"github.com/smartmart/smartmart-dashboard/internal/observability"
	"github.com/smartmart/smartmart-dashboard/internal/platform/cache"
	"github.com/smartmart/smartmart-dashboard/internal/products"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/sales"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
	"github.com/smartmart/smartmart-dashboard/internal/view"
	"github.com/smartmart/smartmart-dashboard/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Default().Warn("load .env", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "smartmart_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}
	pages := view.NewResponder(logger, templates, csrfManager)
	metrics := observability.NewMetrics()

	api := apiclient.NewClient(cfg.APIBaseURL, cfg.APITimeout, apiclient.WithObserver(metrics))
	categoryAPI := apiclient.NewResource[retail.Category, retail.NoFilter](api, "categories")
	productAPI := apiclient.NewResource[retail.Product, retail.ProductFilter](api, "products")
	saleAPI := apiclient.NewResource[retail.Sale, retail.SaleFilter](api, "sales")

	ordering := cfg.Ordering()
	categoriesHandler := categories.NewHandler(logger, categories.NewService(categoryAPI, ordering), pages)
	productsHandler := products.NewHandler(logger, products.NewService(productAPI, categoryAPI, ordering), pages)
	salesHandler := sales.NewHandler(logger, sales.NewService(saleAPI, productAPI, ordering), pages)

	reportClient := report.NewClient(cfg.GotenbergURL, 0)
	if reportClient.Enabled() {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := reportClient.Ping(pingCtx); err != nil {
			logger.Warn("gotenberg ping", slog.Any("error", err))
		}
		cancel()
	}
	dashboardHandler := dashboard.NewHandler(logger, dashboard.NewService(apiclient.NewDashboard(api)), pages, templates, reportClient)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		CSRFManager:       csrfManager,
		Metrics:           metrics,
		DashboardHandler:  dashboardHandler,
		CategoriesHandler: categoriesHandler,
		ProductsHandler:   productsHandler,
		SalesHandler:      salesHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("api", api.BaseURL()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
