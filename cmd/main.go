package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"finboard/internal/caching"
	"finboard/internal/config"
	"finboard/internal/handlers"
	"finboard/internal/jobs"
	"finboard/internal/repositories"
	"finboard/internal/services"
	"finboard/pkg/database"
	"finboard/pkg/logger"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		// No .env file: rely on the system environment.
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Database connection pool
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.ClosePool(pool)

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET not set, using a generated secret")
	}

	// Cache and object storage
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	storageSvc, err := services.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	// Repositories
	revenueRepo := repositories.NewRevenueRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	userRepo := repositories.NewUserRepo(pool)

	// Services
	dashboardSvc := services.NewDashboardService(revenueRepo, invoiceRepo, customerRepo, cacheSvc, cfg.SlowQueryDelay, log)
	invoiceSvc := services.NewInvoiceService(invoiceRepo, customerRepo, cacheSvc, log)
	customerSvc := services.NewCustomerService(customerRepo, log)
	authSvc := services.NewAuthService(userRepo, jwtSecret, log)
	receiptSvc := services.NewReceiptService(invoiceRepo, storageSvc, log)

	// Background jobs
	scheduler, err := jobs.NewScheduler(dashboardSvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create job scheduler")
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Warn().Err(err).Msg("job scheduler shutdown failed")
		}
	}()

	// Handlers
	dashboardHandlers := handlers.NewDashboardHandlers(dashboardSvc)
	invoiceHandlers := handlers.NewInvoiceHandlers(invoiceSvc, receiptSvc)
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	authHandlers := handlers.NewAuthHandlers(authSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	v1 := e.Group("/v1")

	// Authentication routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandlers.Login)

	// Protected routes (require JWT)
	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(jwtSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}))

	// Dashboard routes
	protected.GET("/dashboard/overview", dashboardHandlers.GetOverview)
	protected.GET("/dashboard/cards", dashboardHandlers.GetCards)

	// Invoice routes
	protected.GET("/invoices", invoiceHandlers.ListInvoices)
	protected.GET("/invoices/:id/edit", invoiceHandlers.GetEditData)
	protected.POST("/invoices", invoiceHandlers.CreateInvoice)
	protected.PUT("/invoices/:id", invoiceHandlers.UpdateInvoice)
	protected.DELETE("/invoices/:id", invoiceHandlers.DeleteInvoice)
	protected.GET("/invoices/:id/receipt", invoiceHandlers.GetReceipt)

	// Customer routes
	protected.GET("/customers", customerHandlers.ListCustomers)
	protected.GET("/customers/names", customerHandlers.ListCustomerNames)

	log.Info().Str("port", cfg.Port).Msg("finboard server starting")

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
