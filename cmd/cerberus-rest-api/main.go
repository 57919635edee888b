// cmd/cerberus-rest-api/main.go
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

	v1 "cerberus_security_service/internal/api/rest/v1"
	"cerberus_security_service/internal/app"
	"cerberus_security_service/internal/domain/engineer"
	domainGateway "cerberus_security_service/internal/domain/gateway"
	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/infrastructure/detection"
	"cerberus_security_service/internal/infrastructure/feeds"
	"cerberus_security_service/internal/infrastructure/gateway"
	"cerberus_security_service/internal/infrastructure/persistence"
	"cerberus_security_service/internal/infrastructure/persistence/models"
	"cerberus_security_service/internal/infrastructure/scanrules"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
}

type appServices struct {
	promptAnalysis     watchman.PromptAnalysisService
	promptScreening    watchman.PromptScreeningService
	analysisMetadata   watchman.AnalysisMetadataService
	threatIntel        oracle.ThreatIntelService
	indicatorMetadata  oracle.IndicatorMetadataService
	scan               engineer.ScanService
	scanReportMetadata engineer.ScanReportMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.PromptAnalysisModel{}, &models.ThreatIndicatorModel{}, &models.ScanReportModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	analysisRepo, err := persistence.NewGormAnalysisRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis repository: %w", err)
	}

	indicatorRepo, err := persistence.NewGormIndicatorRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create indicator repository: %w", err)
	}

	scanRepo, err := persistence.NewGormScanRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan repository: %w", err)
	}

	// Initialize detector, gateway and feed connector
	detector, err := detection.NewInjectionDetector(&cfg.Detection, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create injection detector: %w", err)
	}

	modelGateway, err := gateway.NewModelGateway(&cfg.Gateway, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create model gateway: %w", err)
	}

	feedConnector, err := feeds.NewHTTPFeedConnector(&cfg.Feeds, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed connector: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(cfg, detector, modelGateway, feedConnector, analysisRepo, indicatorRepo, scanRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services: services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.promptAnalysis,
		deps.services.promptScreening,
		deps.services.analysisMetadata,
		deps.services.threatIntel,
		deps.services.indicatorMetadata,
		deps.services.scan,
		deps.services.scanReportMetadata,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	detector watchman.InjectionDetector,
	modelGateway domainGateway.ModelGateway,
	feedConnector oracle.ThreatFeedConnector,
	analysisRepo watchman.PromptAnalysisRepository,
	indicatorRepo oracle.ThreatIndicatorRepository,
	scanRepo engineer.ScanReportRepository,
	log logger.Logger,
) (*appServices, error) {
	promptAnalysisService, err := app.NewPromptAnalysisService(detector, analysisRepo, cfg.Detection.Threshold, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt analysis service: %w", err)
	}

	promptScreeningService, err := app.NewPromptScreeningService(promptAnalysisService, modelGateway, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt screening service: %w", err)
	}

	analysisMetadataService, err := app.NewAnalysisMetadataService(analysisRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis metadata service: %w", err)
	}

	threatIntelService, err := app.NewThreatIntelService(indicatorRepo, feedConnector, &cfg.Feeds, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create threat intel service: %w", err)
	}

	indicatorMetadataService, err := app.NewIndicatorMetadataService(indicatorRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create indicator metadata service: %w", err)
	}

	scanService, err := app.NewScanService(scanrules.DefaultRules(), scanRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan service: %w", err)
	}

	scanReportMetadataService, err := app.NewScanReportMetadataService(scanRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan report metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		promptAnalysis:     promptAnalysisService,
		promptScreening:    promptScreeningService,
		analysisMetadata:   analysisMetadataService,
		threatIntel:        threatIntelService,
		indicatorMetadata:  indicatorMetadataService,
		scan:               scanService,
		scanReportMetadata: scanReportMetadataService,
	}, nil
}
