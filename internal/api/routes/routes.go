package routes

import (
	"log"
	"time"

	"shortlink-backend/internal/api/handlers"
	"shortlink-backend/internal/api/middleware"
	"shortlink-backend/internal/auth"
	"shortlink-backend/internal/config"
	"shortlink-backend/internal/repository"
	"shortlink-backend/internal/service"
	"shortlink-backend/internal/shortid"
	"shortlink-backend/internal/shorturl"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	shortURLRepo := repository.NewShortURLRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize domain collaborators
	generator := shortid.NewGenerator(cfg.ShortIDLength)
	builder := shorturl.NewBuilder(cfg.BaseURL)
	qrEncoder := shorturl.NewQRCodeEncoder(0)

	// Initialize services
	shortURLService := service.NewShortURLService(shortURLRepo, generator, builder, qrEncoder, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config, using defaults: %v", err)
		authConfig = auth.DefaultConfig()
	}
	authService := auth.NewAuthService(authConfig, cfg.JWTSecret, userRepo, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shortURLHandler := handlers.NewShortURLHandler(shortURLService)
	redirectHandler := handlers.NewRedirectHandler(shortURLService)

	// Admission gates, applied before requests reach the services
	shortenLimiter := middleware.RateLimit(
		time.Duration(cfg.ShortenRateWindowMinutes)*time.Minute, cfg.ShortenRateMax)
	loginLimiter := middleware.RateLimit(
		time.Duration(cfg.LoginRateWindowMinutes)*time.Minute, cfg.LoginRateMax)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", loginLimiter, authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		urls := v1.Group("/urls")
		{
			// Create is open to anonymous callers; ownership attaches when a
			// valid principal is present.
			urls.POST("", shortenLimiter, authMiddleware.OptionalAuth(), shortURLHandler.CreateShortURL)
			urls.GET("", authMiddleware.RequireAuth(), shortURLHandler.ListShortURLs)
			urls.DELETE("/:id", authMiddleware.RequireAuth(), shortURLHandler.DeleteShortURL)
			urls.GET("/:id/qrcode", authMiddleware.RequireAuth(), shortURLHandler.GetQRCode)
		}
	}

	// Public redirect path
	router.GET("/:shortId", redirectHandler.Redirect)

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
