package v1

import (
	"fmt"
	"net/http"
	"time"

	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WatchmanHandler defines the interface for handling prompt analysis operations
type WatchmanHandler interface {
	AnalyzePrompt(ctx *gin.Context)
	ScreenPrompt(ctx *gin.Context)
	ListAnalyses(ctx *gin.Context)
	GetAnalysisByID(ctx *gin.Context)
	DeleteAnalysisByID(ctx *gin.Context)
}

// watchmanHandler struct holds the services
type watchmanHandler struct {
	promptAnalysisService   watchman.PromptAnalysisService
	promptScreeningService  watchman.PromptScreeningService
	analysisMetadataService watchman.AnalysisMetadataService
}

// NewWatchmanHandler creates a new WatchmanHandler
func NewWatchmanHandler(promptAnalysisService watchman.PromptAnalysisService, promptScreeningService watchman.PromptScreeningService, analysisMetadataService watchman.AnalysisMetadataService) WatchmanHandler {
	return &watchmanHandler{
		promptAnalysisService:   promptAnalysisService,
		promptScreeningService:  promptScreeningService,
		analysisMetadataService: analysisMetadataService,
	}
}

func toAnalysisResponse(analysis *watchman.PromptAnalysis) PromptAnalysisResponse {
	return PromptAnalysisResponse{
		ID:              analysis.ID,
		SessionID:       analysis.SessionID,
		Prompt:          analysis.Prompt,
		Flagged:         analysis.Flagged,
		Confidence:      analysis.Confidence,
		Detector:        analysis.Detector,
		Details:         analysis.Details,
		DateTimeCreated: analysis.DateTimeCreated,
	}
}

// AnalyzePrompt handles the POST request to analyze a prompt for injection attempts
// @Summary Analyze a prompt for injection attempts
// @Description Run the configured injection detector against a prompt and persist the verdict.
// @Tags Watchman
// @Accept json
// @Produce json
// @Param requestBody body AnalyzePromptRequest true "Prompt Data"
// @Success 201 {object} PromptAnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Router /watchman/analyses [post]
func (handler *watchmanHandler) AnalyzePrompt(ctx *gin.Context) {

	var request AnalyzePromptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid prompt data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	analysis, err := handler.promptAnalysisService.Analyze(ctx, sessionID, request.Prompt)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error analyzing prompt: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toAnalysisResponse(analysis))
}

// ScreenPrompt handles the POST request to screen a prompt before it reaches the model
// @Summary Screen a prompt and forward it to the model
// @Description Analyze a prompt and, when it is clear, forward it to the downstream model gateway. Flagged prompts are blocked.
// @Tags Watchman
// @Accept json
// @Produce json
// @Param requestBody body AnalyzePromptRequest true "Prompt Data"
// @Success 200 {object} ScreeningResponse
// @Failure 400 {object} ErrorResponse
// @Router /watchman/screenings [post]
func (handler *watchmanHandler) ScreenPrompt(ctx *gin.Context) {

	var request AnalyzePromptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid prompt data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	result, err := handler.promptScreeningService.Screen(ctx, sessionID, request.Prompt)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error screening prompt: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	screeningResponse := ScreeningResponse{
		Analysis: toAnalysisResponse(result.Analysis),
		Blocked:  result.Blocked,
		Reply:    result.Reply,
	}

	ctx.JSON(http.StatusOK, screeningResponse)
}

// ListAnalyses handles the GET request to list prompt analyses with optional query parameters
// @Summary List prompt analyses based on query parameters
// @Description Fetch a list of stored prompt analyses based on filters like flagged state and detector, with pagination and sorting options.
// @Tags Watchman
// @Accept json
// @Produce json
// @Param flagged query bool false "Flagged state"
// @Param detector query string false "Detector name"
// @Param dateTimeCreated query string false "Analysis Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} PromptAnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /watchman/analyses [get]
func (handler *watchmanHandler) ListAnalyses(ctx *gin.Context) {
	query := watchman.NewPromptAnalysisQuery()

	if flagged := ctx.Query("flagged"); len(flagged) > 0 {
		flaggedValue := flagged == "true"
		query.Flagged = &flaggedValue
	}

	if detector := ctx.Query("detector"); len(detector) > 0 {
		query.Detector = detector
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

	analyses, err := handler.analysisMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []PromptAnalysisResponse{}
	for _, analysis := range analyses {
		listResponse = append(listResponse, toAnalysisResponse(analysis))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetAnalysisByID handles the GET request to retrieve a prompt analysis by ID
// @Summary Retrieve a prompt analysis by ID
// @Description Fetch a stored prompt analysis by ID, including verdict, confidence and detector.
// @Tags Watchman
// @Accept json
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} PromptAnalysisResponse
// @Failure 404 {object} ErrorResponse
// @Router /watchman/analyses/{id} [get]
func (handler *watchmanHandler) GetAnalysisByID(ctx *gin.Context) {
	analysisID := ctx.Param("id")

	analysis, err := handler.analysisMetadataService.GetByID(ctx, analysisID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("analysis with id %s not found", analysisID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toAnalysisResponse(analysis))
}

// DeleteAnalysisByID handles the DELETE request to delete a prompt analysis by ID
// @Summary Delete a prompt analysis by ID
// @Description Delete a stored prompt analysis by ID.
// @Tags Watchman
// @Accept json
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /watchman/analyses/{id} [delete]
func (handler *watchmanHandler) DeleteAnalysisByID(ctx *gin.Context) {
	analysisID := ctx.Param("id")

	if err := handler.analysisMetadataService.DeleteByID(ctx, analysisID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting analysis with id %s", analysisID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted analysis with id %s", analysisID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
