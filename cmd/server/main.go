package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moovsafe/internal/config"
	"moovsafe/internal/handlers"
	"moovsafe/internal/middleware"
	"moovsafe/internal/repositories/postgres"
	"moovsafe/internal/services"
	"moovsafe/internal/utils"
	"moovsafe/pkg/cache"
	"moovsafe/pkg/database"
	"moovsafe/pkg/logger"
	"moovsafe/pkg/storage"
	"moovsafe/routes"

	_ "moovsafe/docs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MoovSafe Fleet API
// @version 1.0
// @description Vehicle registry, inspection and maintenance tracking for small fleets.
// @BasePath /api
func main() {
	// Missing .env is fine in production; config falls back to the process env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&database.Config{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Debug:           cfg.App.Debug,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Postgres")
	}

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	storageProvider, err := newStorageProvider(cfg.Storage)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize storage provider")
	}
	log.WithField("provider", cfg.Storage.Provider).Info("Storage provider ready")

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			// The API works without the cache; don't refuse to start.
			log.WithError(err).Warn("Redis unavailable, continuing without cache")
			redisCache = nil
		}
	}

	// Repositories
	vehicleRepo := postgres.NewVehicleRepository(db, redisCache)
	inspectionRepo := postgres.NewInspectionRepository(db)
	maintenanceRepo := postgres.NewMaintenanceRepository(db)

	// Services
	mediaService := services.NewMediaService(storageProvider, log)
	vehicleService := services.NewVehicleService(vehicleRepo, services.DefaultStockImages(), log)
	inspectionService := services.NewInspectionService(inspectionRepo, vehicleRepo, mediaService, log)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, vehicleRepo, mediaService, log)

	// Handlers
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, log)
	inspectionHandler := handlers.NewInspectionHandler(inspectionService, log)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, log)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))

	api := router.Group("/api")
	{
		routes.SetupVehicleRoutes(api, vehicleHandler, log)
		routes.SetupInspectionRoutes(api, inspectionHandler)
		routes.SetupMaintenanceRoutes(api, maintenanceHandler, log)
	}

	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": utils.AppVersion,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorBody{Error: "Not found"})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
	if redisCache != nil {
		redisCache.Close()
	}
}

func newStorageProvider(cfg *config.StorageConfig) (storage.Provider, error) {
	switch cfg.Provider {
	case config.ProviderAWS:
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, cfg.AWS.CDNDomain)
	case config.ProviderGCP:
		return storage.NewGCPStorage(cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	case config.ProviderLocal:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
