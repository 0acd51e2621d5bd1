package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petconnect/config"
	deliveryHttp "petconnect/internal/delivery/http"
	"petconnect/internal/delivery/http/handler"
	"petconnect/internal/delivery/http/middleware"
	"petconnect/internal/infrastructure/cache"
	"petconnect/internal/infrastructure/database"
	"petconnect/internal/repository"
	"petconnect/internal/usecase"
	"petconnect/pkg/jwt"
	"petconnect/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database migrated successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize token store
	tokenStore := cache.NewRedisTokenStore(redisClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	animalRepo := repository.NewAnimalRepository()
	adoptionRepo := repository.NewAdoptionRequestRepository()
	rescueRepo := repository.NewRescueRequestRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	donationRepo := repository.NewDonationRepository()
	notificationRepo := repository.NewNotificationRepository()
	productRepo := repository.NewProductRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, favoriteRepo, jwtService, tokenStore)
	animalUsecase := usecase.NewAnimalUsecase(db, log, animalRepo)
	adoptionUsecase := usecase.NewAdoptionUsecase(db, log, adoptionRepo, animalRepo, notificationRepo)
	rescueUsecase := usecase.NewRescueUsecase(db, log, rescueRepo, notificationRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, medicalRecordRepo, animalRepo, userRepo)
	favoriteUsecase := usecase.NewFavoriteUsecase(db, log, favoriteRepo, animalRepo)
	donationUsecase := usecase.NewDonationUsecase(db, log, donationRepo)
	productUsecase := usecase.NewProductUsecase(db, log, productRepo, userRepo, notificationRepo)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)
	statsUsecase := usecase.NewStatsUsecase(db, log, animalRepo, adoptionRepo, donationRepo, favoriteRepo)
	userAdminUsecase := usecase.NewUserAdminUsecase(db, log, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	animalHandler := handler.NewAnimalHandler(animalUsecase, customValidator)
	adoptionHandler := handler.NewAdoptionHandler(adoptionUsecase, customValidator)
	rescueHandler := handler.NewRescueHandler(rescueUsecase, customValidator)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUsecase, customValidator)
	donationHandler := handler.NewDonationHandler(donationUsecase, customValidator)
	productHandler := handler.NewProductHandler(productUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	statsHandler := handler.NewStatsHandler(statsUsecase)
	adminUserHandler := handler.NewAdminUserHandler(userAdminUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		animalHandler,
		adoptionHandler,
		rescueHandler,
		medicalRecordHandler,
		favoriteHandler,
		donationHandler,
		productHandler,
		notificationHandler,
		statsHandler,
		adminUserHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
