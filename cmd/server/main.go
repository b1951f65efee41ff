package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/catalog"
	identityapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/identity"
	orderingapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/ordering"
	reportapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/report"
	storefrontapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/storefront"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/infrastructure/auth"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/infrastructure/config"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/infrastructure/logger"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/infrastructure/persistence"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/infrastructure/storage"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/handler"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/middleware"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Bangazon API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	paymentTypeRepo := persistence.NewGormPaymentTypeRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	ratingRepo := persistence.NewGormRatingRepository(db.DB)
	likeRepo := persistence.NewGormLikeRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	lineItemRepo := persistence.NewGormLineItemRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	favoriteRepo := persistence.NewGormFavoriteRepository(db.DB)
	recommendationRepo := persistence.NewGormRecommendationRepository(db.DB)

	// Token blacklist backs logout. Redis is preferred; a single-node
	// in-memory fallback keeps development working without it.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		log.Info("Redis token blacklist connected")
	}

	// Product image storage backend
	var imageStorage catalogapp.ImageStorage
	switch cfg.Storage.Backend {
	case "s3":
		s3Storage, err := storage.NewS3ImageStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		imageStorage = s3Storage
		log.Info("S3 image storage ready", zap.String("bucket", cfg.Storage.Bucket))
	default:
		localStorage, err := storage.NewLocalImageStorage(cfg.Storage.LocalDir)
		if err != nil {
			log.Fatal("Failed to initialize local storage", zap.Error(err))
		}
		imageStorage = localStorage
		log.Info("Local image storage ready", zap.String("dir", cfg.Storage.LocalDir))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, customerRepo, jwtService, blacklist)
	paymentTypeService := identityapp.NewPaymentTypeService(paymentTypeRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, ratingRepo, likeRepo, imageStorage)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	cartService := orderingapp.NewCartService(orderRepo, lineItemRepo, productRepo)
	orderService := orderingapp.NewOrderService(orderRepo, paymentTypeRepo)
	storeService := storefrontapp.NewStoreService(storeRepo, favoriteRepo, productRepo)
	favoriteService := storefrontapp.NewFavoriteService(favoriteRepo, storeRepo)
	recommendationService := storefrontapp.NewRecommendationService(recommendationRepo, customerRepo, productRepo)
	profileService := storefrontapp.NewProfileService(customerRepo, paymentTypeRepo, storeRepo, favoriteRepo, recommendationRepo)
	reportService := reportapp.NewReportService(orderRepo, productRepo, customerRepo)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, recommendationService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	storeHandler := handler.NewStoreHandler(storeService)
	profileHandler := handler.NewProfileHandler(profileService, cartService, favoriteService)
	orderHandler := handler.NewOrderHandler(orderService, cartService)
	paymentTypeHandler := handler.NewPaymentTypeHandler(paymentTypeService)
	reportHandler := handler.NewReportHandler(reportService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
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

	// Body size limit. Product images ride the JSON payload as base64,
	// so the default is generous.
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint
	engine.GET("/health", healthHandler(db, log))

	// All routes except the public skip paths require a valid token
	r := router.NewRouter(engine)
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Authentication
	authRoutes := router.NewDomainGroup("auth", "/")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/auth/logout", authHandler.Logout)

	// Products
	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.POST("", productHandler.Create)
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/liked", productHandler.ListLiked)
	productRoutes.GET("/:id", productHandler.GetByID)
	productRoutes.PUT("/:id", productHandler.Update)
	productRoutes.DELETE("/:id", productHandler.Delete)
	productRoutes.POST("/:id/rate_product", productHandler.Rate)
	productRoutes.POST("/:id/like", productHandler.Like)
	productRoutes.DELETE("/:id/like", productHandler.Unlike)
	productRoutes.POST("/:id/recommend", productHandler.Recommend)

	// Product categories
	categoryRoutes := router.NewDomainGroup("productcategories", "/productcategories")
	categoryRoutes.GET("", categoryHandler.List)
	categoryRoutes.POST("", categoryHandler.Create)
	categoryRoutes.GET("/:id", categoryHandler.GetByID)

	// Stores
	storeRoutes := router.NewDomainGroup("stores", "/stores")
	storeRoutes.GET("", storeHandler.List)
	storeRoutes.POST("", storeHandler.Create)
	storeRoutes.GET("/:id", storeHandler.GetByID)
	storeRoutes.PUT("/:id", storeHandler.Update)

	// Profile (aggregate view, cart, favorite sellers)
	profileRoutes := router.NewDomainGroup("profile", "/profile")
	profileRoutes.GET("", profileHandler.GetProfile)
	profileRoutes.GET("/cart", profileHandler.GetCart)
	profileRoutes.POST("/cart", profileHandler.AddToCart)
	profileRoutes.DELETE("/cart", profileHandler.ClearCart)
	profileRoutes.GET("/favoritesellers", profileHandler.ListFavoriteSellers)
	profileRoutes.POST("/favoritesellers", profileHandler.FavoriteSeller)
	profileRoutes.DELETE("/unfavorite/:store_id", profileHandler.UnfavoriteSeller)

	// Orders and line items
	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.PUT("/:id", orderHandler.Complete)

	lineItemRoutes := router.NewDomainGroup("lineitems", "/lineitems")
	lineItemRoutes.DELETE("/:id", orderHandler.RemoveLineItem)

	// Payment types
	paymentTypeRoutes := router.NewDomainGroup("paymenttypes", "/paymenttypes")
	paymentTypeRoutes.GET("", paymentTypeHandler.List)
	paymentTypeRoutes.POST("", paymentTypeHandler.Create)
	paymentTypeRoutes.GET("/:id", paymentTypeHandler.GetByID)
	paymentTypeRoutes.DELETE("/:id", paymentTypeHandler.Delete)

	// Reports are public HTML pages. Claims are still attached when a
	// token is presented so report access shows up attributed in logs.
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.Use(middleware.OptionalJWTAuthMiddleware(jwtService))
	reportRoutes.GET("/orders", reportHandler.Orders)
	reportRoutes.GET("/inexpensiveproducts", reportHandler.InexpensiveProducts)

	r.Register(authRoutes).
		Register(productRoutes).
		Register(categoryRoutes).
		Register(storeRoutes).
		Register(profileRoutes).
		Register(orderRoutes).
		Register(lineItemRoutes).
		Register(paymentTypeRoutes).
		Register(reportRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
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
