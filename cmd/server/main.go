package main

import (
	"log"
	"time"

	"gratitude-be/internal/cache"
	"gratitude-be/internal/config"
	"gratitude-be/internal/controllers"
	"gratitude-be/internal/database"
	"gratitude-be/internal/jwt"
	"gratitude-be/internal/middleware"
	"gratitude-be/internal/repository"
	"gratitude-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration (fatal if required secrets are missing)
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue uncached if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dailyRepo := repository.NewDailyRepository(db)
	weeklyRepo := repository.NewWeeklyRepository(db)

	// Initialize JWT service for session tokens
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient, cfg.SuperuserName)
	dailyService := service.NewDailyService(dailyRepo, cacheClient)
	weeklyService := service.NewWeeklyService(weeklyRepo, cacheClient)
	adminService := service.NewAdminService(userRepo, dailyRepo, weeklyRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	dailyController := controllers.NewDailyController(dailyService)
	weeklyController := controllers.NewWeeklyController(weeklyService)
	adminController := controllers.NewAdminController(adminService)
	qrcodeController := controllers.NewQRCodeController(cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// QR code of the app link (public)
		api.GET("/qrcode", qrcodeController.AppLink)

		// Protected routes - require a session token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService, cfg.SuperuserName))
		{
			protected.GET("/daily", dailyController.History)
			protected.GET("/daily/today", dailyController.Today)
			protected.POST("/daily", dailyController.Submit)

			protected.GET("/weekly", weeklyController.History)
			protected.GET("/weekly/current", weeklyController.Current)
			protected.POST("/weekly", weeklyController.Submit)

			// Superuser-only unfiltered views
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireSuperuser())
			{
				admin.GET("/users", adminController.Users)
				admin.GET("/daily", adminController.DailyEntries)
				admin.GET("/weekly", adminController.WeeklyLetters)
			}
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
