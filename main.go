// File: serviceconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serviceconnect/config"
	"serviceconnect/database"
	categoryRepo "serviceconnect/database/repository/category"
	providerRepo "serviceconnect/database/repository/provider"
	"serviceconnect/handlers"
	"serviceconnect/middleware"
	"serviceconnect/routes"
	"serviceconnect/services/contact"
	"serviceconnect/services/directory"
	"serviceconnect/services/location"
	"serviceconnect/utils"
	"serviceconnect/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// providerStore picks the provider directory backend from configuration.
func providerStore(ctx context.Context, logger *zap.Logger) providerRepo.ProviderRepository {
	cfg := config.AppConfig
	var repo providerRepo.ProviderRepository = providerRepo.NewFixtureRepo()

	if cfg.UsesMongo() {
		if err := database.InitDB(logger); err != nil {
			logger.Fatal("main: failed to initialize database", zap.Error(err))
		}
		mongoRepo := providerRepo.NewMongoProviderRepo(database.MongoClient, cfg.DatabaseName, logger)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			logger.Warn("main: failed to ensure provider indexes", zap.Error(err))
		}
		if cfg.SeedFixtures {
			if err := mongoRepo.Seed(ctx, providerRepo.Fixtures()); err != nil {
				logger.Fatal("main: failed to seed providers", zap.Error(err))
			}
		}
		repo = mongoRepo
	}

	if cfg.CacheEnabled {
		if err := utils.InitCache(); err != nil {
			logger.Warn("main: provider cache disabled", zap.Error(err))
		} else {
			repo = providerRepo.NewCachedRepo(repo, utils.CacheClient, cfg.ProviderCacheTTL, logger)
		}
	}
	return repo
}

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	repo := providerStore(ctx, logger)
	utils.StartHealthMonitor(ctx, time.Minute, database.MongoClient, utils.CacheClient)

	// services.
	appName := config.AppConfig.AppName
	directoryService := directory.NewDefaultDirectoryService(repo, logger)
	dispatcher := contact.NewDispatcher(appName)
	detector := location.NewStubDetector(config.AppConfig.DetectCity, config.AppConfig.DetectPincode)

	homeHandler := handlers.NewHomeHandler(categoryRepo.NewStaticCatalog(), detector, appName)
	providerHandler := handlers.NewProviderHandler(directoryService, dispatcher)
	handlerBundle := handlers.NewHandlerBundle(homeHandler, providerHandler)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.SetHTMLTemplate(views.MustTemplates())

	routes.RegisterRoutes(router, handlerBundle, appName, config.AppConfig.AllowedOrigins())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Warn("main: failed to close database", zap.Error(err))
	}
	utils.CloseCache()

	logger.Sugar().Info("main: server stopped gracefully")
}
