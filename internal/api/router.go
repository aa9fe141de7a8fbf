package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/quickshop/storefront-api/docs"
	"github.com/quickshop/storefront-api/internal/api/handler"
	"github.com/quickshop/storefront-api/internal/api/middleware"
	"github.com/quickshop/storefront-api/internal/core/service"
	"github.com/quickshop/storefront-api/internal/infrastructure/config"
	"github.com/quickshop/storefront-api/internal/infrastructure/storage"
)

// NewRouter wires repositories, services, and handlers, and returns the
// Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	if err := storage.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}

	// --- Repositories (file-backed collections) ---
	productRepo := storage.NewProductRepository(cfg.DataDir)
	orderRepo := storage.NewOrderRepository(cfg.DataDir)
	userRepo := storage.NewUserRepository(cfg.DataDir)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(productRepo)
	ledger := service.NewInventoryLedger(productRepo)
	orderService := service.NewOrderService(ledger, productRepo, orderRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	healthHandler := handler.NewHealthHandler(cfg.DataDir)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Catalog routes (no auth, stale reads tolerated) ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)

	// --- Order routes (authenticated) ---
	authMiddleware := middleware.Auth(authService)
	e.POST("/api/orders", orderHandler.Create, authMiddleware)
	e.GET("/api/orders", orderHandler.List, authMiddleware)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
