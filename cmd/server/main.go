package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/railbook/train-booking-backend/internal/config"
	"github.com/railbook/train-booking-backend/internal/database"
	"github.com/railbook/train-booking-backend/internal/handlers"
	"github.com/railbook/train-booking-backend/internal/middleware"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Train Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize repositories
	trainRepository := database.NewTrainRepository(db)
	userRepository := database.NewUserRepository(db)
	bookingRepository := database.NewBookingRepository(db)
	reviewRepository := database.NewReviewRepository(db)

	// Initialize handlers
	trainHandler := handlers.NewTrainHandler(trainRepository)
	authHandler := handlers.NewAuthHandler(userRepository, cfg.Security.BcryptCost)
	profileHandler := handlers.NewProfileHandler(userRepository)
	stationHandler := handlers.NewStationHandler(trainRepository)
	bookingHandler := handlers.NewBookingHandler(bookingRepository)
	reviewHandler := handlers.NewReviewHandler(reviewRepository)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(middleware.RequestLogger(logger))
	}

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Root route
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Train Booking API!")
	})

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// API routes
	api := router.Group("/api")
	{
		api.GET("/trains", trainHandler.GetTrains)

		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)

		api.GET("/stations", stationHandler.SuggestStations)

		api.POST("/bookings", bookingHandler.CreateBooking)
		api.GET("/bookings", bookingHandler.GetBookings)
		api.DELETE("/bookings/train/:trainId", bookingHandler.DeleteBookingsByTrain)

		api.POST("/reviews", reviewHandler.CreateReview)
		api.GET("/reviews", reviewHandler.GetReviews)
		api.DELETE("/reviews/:id", reviewHandler.DeleteReview)
		api.POST("/reviews/:id/upvote", reviewHandler.UpvoteReview)
		api.POST("/reviews/:id/downvote", reviewHandler.DownvoteReview)
		api.POST("/reviews/:id/report", reviewHandler.ReportReview)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
