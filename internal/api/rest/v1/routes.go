package v1

import (
	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/domain/watchman"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	promptAnalysisService watchman.PromptAnalysisService,
	promptScreeningService watchman.PromptScreeningService,
	analysisMetadataService watchman.AnalysisMetadataService,
	threatIntelService oracle.ThreatIntelService,
	indicatorMetadataService oracle.IndicatorMetadataService,
	scanService engineer.ScanService,
	scanReportMetadataService engineer.ScanReportMetadataService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Watchman Routes
	watchmanHandler := NewWatchmanHandler(promptAnalysisService, promptScreeningService, analysisMetadataService)
	v1.POST("/watchman/analyses", watchmanHandler.AnalyzePrompt)
	v1.POST("/watchman/screenings", watchmanHandler.ScreenPrompt)
	v1.GET("/watchman/analyses", watchmanHandler.ListAnalyses)
	v1.GET("/watchman/analyses/:id", watchmanHandler.GetAnalysisByID)
	v1.DELETE("/watchman/analyses/:id", watchmanHandler.DeleteAnalysisByID)

	// Oracle Routes
	oracleHandler := NewOracleHandler(threatIntelService, indicatorMetadataService)
	v1.POST("/oracle/indicators", oracleHandler.IngestIndicators)
	v1.POST("/oracle/assessments", oracleHandler.AssessThreat)
	v1.POST("/oracle/feeds/sync", oracleHandler.SyncFeeds)
	v1.GET("/oracle/indicators", oracleHandler.ListIndicators)
	v1.GET("/oracle/indicators/:id", oracleHandler.GetIndicatorByID)
	v1.DELETE("/oracle/indicators/:id", oracleHandler.DeleteIndicatorByID)

	// Engineer Routes
	engineerHandler := NewEngineerHandler(scanService, scanReportMetadataService)
	v1.POST("/engineer/scans", engineerHandler.RunScan)
	v1.GET("/engineer/scans", engineerHandler.ListScans)
	v1.GET("/engineer/scans/:id", engineerHandler.GetScanByID)
	v1.DELETE("/engineer/scans/:id", engineerHandler.DeleteScanByID)
}
