package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tehnoshop/storefront-api/internal/cache"
	"github.com/tehnoshop/storefront-api/internal/config"
	"github.com/tehnoshop/storefront-api/internal/database"
	"github.com/tehnoshop/storefront-api/internal/gateway"
	"github.com/tehnoshop/storefront-api/internal/handler"
	"github.com/tehnoshop/storefront-api/internal/middleware"
	"github.com/tehnoshop/storefront-api/internal/repository"
	"github.com/tehnoshop/storefront-api/internal/service"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// main is the application entrypoint for the storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting storefront api")

	utils.SetJWTSecret(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis. The cache is an optimization: when Redis is down
	// the storefront reads go straight to the database.
	var redisClient *cache.RedisClient
	var catalogCache *cache.CatalogCache
	redisClient, err = cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis connection failed - catalog cache disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
		catalogCache = cache.NewCatalogCache(redisClient, cfg.Cache.CatalogTTL)
		log.Info().Msg("redis connected successfully")
	}

	// 4. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 5. Initialize services
	notificationSvc := service.NewNotificationService(notificationRepo)
	catalogSvc := service.NewCatalogService(productRepo, categoryRepo, catalogCache)
	bannerSvc := service.NewBannerService(bannerRepo, catalogCache)
	promotionSvc := service.NewPromotionService(promotionRepo)
	adminAuthSvc := service.NewAdminAuthService(adminRepo, notificationSvc)

	// 5a. Seed the first admin account if configured and missing.
	if err := seedAdmin(cfg, adminRepo, adminAuthSvc); err != nil {
		log.Error().Err(err).Msg("admin seeding failed")
		fmt.Fprintf(os.Stderr, "admin seeding failed: %v\n", err)
		os.Exit(1)
	}

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:            handler.NewHealthHandler(db, redisClient),
		Product:           handler.NewProductHandler(catalogSvc),
		ProductManagement: handler.NewProductManagementHandler(catalogSvc),
		Category:          handler.NewCategoryHandler(catalogSvc),
		Banner:            handler.NewBannerHandler(bannerSvc),
		Promotion:         handler.NewPromotionHandler(promotionSvc),
		Notification:      handler.NewNotificationHandler(notificationSvc),
		Auth:              handler.NewAuthHandler(adminAuthSvc),
		Gateway:           gateway.NewHandler(gateway.NewSQLExecutor(db)),
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health            *handler.HealthHandler
	Product           *handler.ProductHandler
	ProductManagement *handler.ProductManagementHandler
	Category          *handler.CategoryHandler
	Banner            *handler.BannerHandler
	Promotion         *handler.PromotionHandler
	Notification      *handler.NotificationHandler
	Auth              *handler.AuthHandler
	Gateway           *gateway.Handler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Query gateway. The method gate runs before authentication so the verb
	// contract (405 for anything but POST) holds for every caller.
	router.Any("/api/db", handlers.Gateway.MethodGate(), jwtMiddleware.Handle(), handlers.Gateway.Execute)

	// Public storefront routes
	store := router.Group("/v1")
	{
		store.GET("/products", handlers.Product.GetProducts)
		store.GET("/products/search", handlers.Product.SearchProducts)
		store.GET("/products/:id", handlers.Product.GetProduct)
		store.GET("/products/:id/related", handlers.Product.GetRelatedProducts)
		store.GET("/categories", handlers.Category.GetCategories)
		store.GET("/categories/:slug", handlers.Category.GetCategoryBySlug)
		store.GET("/banners", handlers.Banner.GetBanners)
		store.GET("/promotions", handlers.Promotion.GetPromotions)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Product Management
		admin.GET("/products", handlers.ProductManagement.ListProducts)
		admin.POST("/products", handlers.ProductManagement.CreateProduct)
		admin.GET("/products/:id", handlers.ProductManagement.GetProduct)
		admin.PUT("/products/:id", handlers.ProductManagement.UpdateProduct)
		admin.DELETE("/products/:id", handlers.ProductManagement.DeleteProduct)

		// Category Management
		admin.GET("/categories", handlers.Category.ListCategories)
		admin.POST("/categories", handlers.Category.CreateCategory)
		admin.PUT("/categories/:id", handlers.Category.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.Category.DeleteCategory)

		// Banner Management
		admin.GET("/banners", handlers.Banner.ListBanners)
		admin.POST("/banners", handlers.Banner.CreateBanner)
		admin.PUT("/banners/:id", handlers.Banner.UpdateBanner)
		admin.DELETE("/banners/:id", handlers.Banner.DeleteBanner)

		// Promotion Management
		admin.GET("/promotions", handlers.Promotion.ListPromotions)
		admin.POST("/promotions", handlers.Promotion.CreatePromotion)
		admin.PUT("/promotions/:id", handlers.Promotion.UpdatePromotion)
		admin.DELETE("/promotions/:id", handlers.Promotion.DeletePromotion)

		// Notifications
		admin.GET("/notifications", handlers.Notification.ListNotifications)
		admin.POST("/notifications", handlers.Notification.CreateNotification)
		admin.POST("/notifications/read-all", handlers.Notification.MarkAllRead)
		admin.POST("/notifications/:id/read", handlers.Notification.MarkRead)
		admin.DELETE("/notifications/:id", handlers.Notification.DeleteNotification)
	}
}

// seedAdmin creates the configured administrator account when it does not
// exist yet. Disabled when ADMIN_EMAIL is unset.
func seedAdmin(cfg *config.Config, adminRepo *repository.AdminUserRepository, authSvc *service.AdminAuthService) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := adminRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if err := authSvc.CreateAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		return err
	}
	log.Info().Str("email", cfg.Admin.Email).Msg("seeded admin account")
	return nil
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
