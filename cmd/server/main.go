package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	billingapp "github.com/granhotel/backend/internal/application/billing"
	catalogapp "github.com/granhotel/backend/internal/application/catalog"
	inventoryapp "github.com/granhotel/backend/internal/application/inventory"
	procurementapp "github.com/granhotel/backend/internal/application/procurement"
	"github.com/granhotel/backend/internal/infrastructure/auth"
	"github.com/granhotel/backend/internal/infrastructure/config"
	"github.com/granhotel/backend/internal/infrastructure/logger"
	"github.com/granhotel/backend/internal/infrastructure/persistence"
	"github.com/granhotel/backend/internal/interfaces/http/handler"
	"github.com/granhotel/backend/internal/interfaces/http/middleware"
	"github.com/granhotel/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting GranHotel Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	inventoryItemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	stockMovementRepo := persistence.NewGormStockMovementRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	guestFolioRepo := persistence.NewGormGuestFolioRepository(db.DB)
	guestDirectory := persistence.NewGormGuestDirectory(db.DB)

	// Transaction scopes, one per bounded context
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	procurementScope := persistence.NewGormProcurementTransactionScope(db.DB)
	billingScope := persistence.NewGormBillingTransactionScope(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo)
	stockService := inventoryapp.NewStockService(inventoryScope, inventoryItemRepo, stockMovementRepo)
	supplierService := procurementapp.NewSupplierService(supplierRepo, purchaseOrderRepo)
	purchaseOrderService := procurementapp.NewPurchaseOrderService(procurementScope, purchaseOrderRepo, supplierRepo, productRepo)
	folioService := billingapp.NewFolioService(billingScope, guestFolioRepo, guestDirectory)

	// HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	inventoryHandler := handler.NewInventoryHandler(stockService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService)
	folioHandler := handler.NewFolioHandler(folioService)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(1 << 20))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT authentication for API routes; system probes stay public
	verifier := auth.NewTokenVerifier(cfg.JWT)
	jwtConfig := middleware.JWTMiddlewareConfig{
		Verifier: verifier,
		SkipPaths: []string{
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Catalog domain (products)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.POST("/products/:id/activate", productHandler.Activate)
	catalogRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)

	// Inventory domain (stock levels and movement ledger)
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.POST("/items", inventoryHandler.Provision)
	inventoryRoutes.POST("/stock-updates", inventoryHandler.UpdateStock)
	inventoryRoutes.GET("/low-stock", inventoryHandler.ListLowStock)
	inventoryRoutes.GET("/products/:product_id", inventoryHandler.GetByProduct)
	inventoryRoutes.PUT("/products/:product_id/threshold", inventoryHandler.SetThreshold)
	inventoryRoutes.GET("/products/:product_id/movements", inventoryHandler.MovementHistory)
	inventoryRoutes.GET("/products/:product_id/audit", inventoryHandler.Audit)

	// Procurement domain (suppliers, purchase orders)
	procurementRoutes := router.NewDomainGroup("procurement", "/procurement")
	procurementRoutes.POST("/suppliers", supplierHandler.Create)
	procurementRoutes.GET("/suppliers", supplierHandler.List)
	procurementRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	procurementRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	procurementRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)
	procurementRoutes.POST("/purchase-orders", purchaseOrderHandler.Create)
	procurementRoutes.GET("/purchase-orders", purchaseOrderHandler.List)
	procurementRoutes.GET("/purchase-orders/:id", purchaseOrderHandler.GetByID)
	procurementRoutes.PUT("/purchase-orders/:id/status", purchaseOrderHandler.UpdateStatus)
	procurementRoutes.POST("/purchase-orders/items/:item_id/receive", purchaseOrderHandler.ReceiveItem)

	// Billing domain (guest folios)
	billingRoutes := router.NewDomainGroup("billing", "/billing")
	billingRoutes.POST("/folios", folioHandler.GetOrCreate)
	billingRoutes.GET("/folios/:id", folioHandler.GetDetails)
	billingRoutes.POST("/folios/:id/transactions", folioHandler.AddTransaction)
	billingRoutes.PUT("/folios/:id/status", folioHandler.UpdateStatus)
	billingRoutes.GET("/guests/:guest_id/folios", folioHandler.ListForGuest)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(catalogRoutes).
		Register(inventoryRoutes).
		Register(procurementRoutes).
		Register(billingRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports service and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
