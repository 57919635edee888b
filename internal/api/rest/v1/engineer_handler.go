package v1

import (
	"fmt"
	"net/http"
	"time"

	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EngineerHandler defines the interface for handling hardening scan operations
type EngineerHandler interface {
	RunScan(ctx *gin.Context)
	ListScans(ctx *gin.Context)
	GetScanByID(ctx *gin.Context)
	DeleteScanByID(ctx *gin.Context)
}

// engineerHandler struct holds the services
type engineerHandler struct {
	scanService               engineer.ScanService
	scanReportMetadataService engineer.ScanReportMetadataService
}

// NewEngineerHandler creates a new EngineerHandler
func NewEngineerHandler(scanService engineer.ScanService, scanReportMetadataService engineer.ScanReportMetadataService) EngineerHandler {
	return &engineerHandler{
		scanService:               scanService,
		scanReportMetadataService: scanReportMetadataService,
	}
}

func toScanReportResponse(report *engineer.ScanReport) ScanReportResponse {
	findings := []FindingResponse{}
	for _, finding := range report.Findings {
		findings = append(findings, FindingResponse{
			ID:          finding.ID,
			RuleID:      finding.RuleID,
			Severity:    finding.Severity,
			Description: finding.Description,
			Remediation: finding.Remediation,
		})
	}

	return ScanReportResponse{
		ID:              report.ID,
		TargetName:      report.TargetName,
		Endpoint:        report.Endpoint,
		Findings:        findings,
		RiskScore:       report.RiskScore,
		DateTimeCreated: report.DateTimeCreated,
	}
}

// RunScan handles the POST request to run a hardening scan against a target
// @Summary Run a hardening scan against a target
// @Description Evaluate all hardening rules against the target profile and persist the resulting report.
// @Tags Engineer
// @Accept json
// @Produce json
// @Param requestBody body ScanTargetRequest true "Scan Target Data"
// @Success 201 {object} ScanReportResponse
// @Failure 400 {object} ErrorResponse
// @Router /engineer/scans [post]
func (handler *engineerHandler) RunScan(ctx *gin.Context) {

	var request ScanTargetRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid scan target data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	target := &engineer.ScanTarget{
		Name:            request.Name,
		Endpoint:        request.Endpoint,
		TLSEnabled:      request.TLSEnabled,
		AuthRequired:    request.AuthRequired,
		AllowedOrigins:  request.AllowedOrigins,
		MaxPromptLength: request.MaxPromptLength,
		LogsRawPrompts:  request.LogsRawPrompts,
		RateLimited:     request.RateLimited,
	}

	report, err := handler.scanService.Run(ctx, target)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error running scan: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toScanReportResponse(report))
}

// ListScans handles the GET request to list scan reports with optional query parameters
// @Summary List scan reports based on query parameters
// @Description Fetch a list of stored scan reports based on filters like target name, with pagination and sorting options.
// @Tags Engineer
// @Accept json
// @Produce json
// @Param targetName query string false "Target Name"
// @Param severity query string false "Severity floor (low/medium/high/critical)"
// @Param dateTimeCreated query string false "Report Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ScanReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /engineer/scans [get]
func (handler *engineerHandler) ListScans(ctx *gin.Context) {
	query := engineer.NewScanQuery()

	if targetName := ctx.Query("targetName"); len(targetName) > 0 {
		query.TargetName = targetName
	}

	if severity := ctx.Query("severity"); len(severity) > 0 {
		query.Severity = severity
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	reports, err := handler.scanReportMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []ScanReportResponse{}
	for _, report := range reports {
		listResponse = append(listResponse, toScanReportResponse(report))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetScanByID handles the GET request to retrieve a scan report by ID
// @Summary Retrieve a scan report by ID
// @Description Fetch a stored scan report by ID, including findings and risk score.
// @Tags Engineer
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ScanReportResponse
// @Failure 404 {object} ErrorResponse
// @Router /engineer/scans/{id} [get]
func (handler *engineerHandler) GetScanByID(ctx *gin.Context) {
	reportID := ctx.Param("id")

	report, err := handler.scanReportMetadataService.GetByID(ctx, reportID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("scan report with id %s not found", reportID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toScanReportResponse(report))
}

// DeleteScanByID handles the DELETE request to delete a scan report by ID
// @Summary Delete a scan report by ID
// @Description Delete a stored scan report by ID.
// @Tags Engineer
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /engineer/scans/{id} [delete]
func (handler *engineerHandler) DeleteScanByID(ctx *gin.Context) {
	reportID := ctx.Param("id")

	if err := handler.scanReportMetadataService.DeleteByID(ctx, reportID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting scan report with id %s", reportID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted scan report with id %s", reportID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
