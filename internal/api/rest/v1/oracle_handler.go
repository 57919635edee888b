package v1

import (
	"fmt"
	"net/http"
	"time"

	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OracleHandler defines the interface for handling threat intelligence operations
type OracleHandler interface {
	IngestIndicators(ctx *gin.Context)
	AssessThreat(ctx *gin.Context)
	SyncFeeds(ctx *gin.Context)
	ListIndicators(ctx *gin.Context)
	GetIndicatorByID(ctx *gin.Context)
	DeleteIndicatorByID(ctx *gin.Context)
}

// oracleHandler struct holds the services
type oracleHandler struct {
	threatIntelService       oracle.ThreatIntelService
	indicatorMetadataService oracle.IndicatorMetadataService
}

// NewOracleHandler creates a new OracleHandler
func NewOracleHandler(threatIntelService oracle.ThreatIntelService, indicatorMetadataService oracle.IndicatorMetadataService) OracleHandler {
	return &oracleHandler{
		threatIntelService:       threatIntelService,
		indicatorMetadataService: indicatorMetadataService,
	}
}

func toIndicatorResponse(indicator *oracle.ThreatIndicator) IndicatorResponse {
	return IndicatorResponse{
		ID:              indicator.ID,
		Type:            indicator.Type,
		Value:           indicator.Value,
		Severity:        indicator.Severity,
		Confidence:      indicator.Confidence,
		Source:          indicator.Source,
		Description:     indicator.Description,
		DateTimeCreated: indicator.DateTimeCreated,
	}
}

// IngestIndicators handles the POST request to ingest a batch of threat indicators
// @Summary Ingest threat indicators
// @Description Validate and persist a batch of threat indicators.
// @Tags Oracle
// @Accept json
// @Produce json
// @Param requestBody body IngestIndicatorsRequest true "Indicator Data"
// @Success 201 {array} IndicatorResponse
// @Failure 400 {object} ErrorResponse
// @Router /oracle/indicators [post]
func (handler *oracleHandler) IngestIndicators(ctx *gin.Context) {

	var request IngestIndicatorsRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid indicator data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	indicators := make([]*oracle.ThreatIndicator, 0, len(request.Indicators))
	for _, indicatorRequest := range request.Indicators {
		indicators = append(indicators, &oracle.ThreatIndicator{
			Type:        indicatorRequest.Type,
			Value:       indicatorRequest.Value,
			Severity:    indicatorRequest.Severity,
			Confidence:  indicatorRequest.Confidence,
			Source:      indicatorRequest.Source,
			Description: indicatorRequest.Description,
		})
	}

	ingested, err := handler.threatIntelService.Ingest(ctx, indicators)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error ingesting indicators: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []IndicatorResponse{}
	for _, indicator := range ingested {
		listResponse = append(listResponse, toIndicatorResponse(indicator))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// AssessThreat handles the POST request to assess a value against the indicator corpus
// @Summary Assess a value against the indicator corpus
// @Description Match a value against the stored indicators and return the matches with an aggregate risk score.
// @Tags Oracle
// @Accept json
// @Produce json
// @Param requestBody body AssessThreatRequest true "Value Data"
// @Success 200 {object} ThreatAssessmentResponse
// @Failure 400 {object} ErrorResponse
// @Router /oracle/assessments [post]
func (handler *oracleHandler) AssessThreat(ctx *gin.Context) {

	var request AssessThreatRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid assessment data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	assessment, err := handler.threatIntelService.Assess(ctx, request.Value)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error assessing value: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	assessmentResponse := ThreatAssessmentResponse{
		Value:     assessment.Value,
		Matches:   []IndicatorResponse{},
		RiskScore: assessment.RiskScore,
	}
	for _, match := range assessment.Matches {
		assessmentResponse.Matches = append(assessmentResponse.Matches, toIndicatorResponse(match))
	}

	ctx.JSON(http.StatusOK, assessmentResponse)
}

// SyncFeeds handles the POST request to trigger a threat feed synchronization
// @Summary Synchronize configured threat feeds
// @Description Fetch all configured threat feeds and ingest their indicators. A failing feed does not abort the sync.
// @Tags Oracle
// @Accept json
// @Produce json
// @Success 200 {object} FeedSyncResponse
// @Failure 400 {object} ErrorResponse
// @Router /oracle/feeds/sync [post]
func (handler *oracleHandler) SyncFeeds(ctx *gin.Context) {
	ingested, err := handler.threatIntelService.SyncFeeds(ctx)

	syncResponse := FeedSyncResponse{
		Ingested: ingested,
	}
	if err != nil {
		syncResponse.Error = err.Error()
	}

	ctx.JSON(http.StatusOK, syncResponse)
}

// ListIndicators handles the GET request to list threat indicators with optional query parameters
// @Summary List threat indicators based on query parameters
// @Description Fetch a list of stored threat indicators based on filters like type, severity and source, with pagination and sorting options.
// @Tags Oracle
// @Accept json
// @Produce json
// @Param type query string false "Indicator Type"
// @Param severity query string false "Severity"
// @Param source query string false "Feed Source"
// @Param dateTimeCreated query string false "Indicator Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} IndicatorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oracle/indicators [get]
func (handler *oracleHandler) ListIndicators(ctx *gin.Context) {
	query := oracle.NewThreatIndicatorQuery()

	if indicatorType := ctx.Query("type"); len(indicatorType) > 0 {
		query.Type = indicatorType
	}

	if severity := ctx.Query("severity"); len(severity) > 0 {
		query.Severity = severity
	}

	if source := ctx.Query("source"); len(source) > 0 {
		query.Source = source
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

	indicators, err := handler.indicatorMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []IndicatorResponse{}
	for _, indicator := range indicators {
		listResponse = append(listResponse, toIndicatorResponse(indicator))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetIndicatorByID handles the GET request to retrieve a threat indicator by ID
// @Summary Retrieve a threat indicator by ID
// @Description Fetch a stored threat indicator by ID, including type, severity and source.
// @Tags Oracle
// @Accept json
// @Produce json
// @Param id path string true "Indicator ID"
// @Success 200 {object} IndicatorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oracle/indicators/{id} [get]
func (handler *oracleHandler) GetIndicatorByID(ctx *gin.Context) {
	indicatorID := ctx.Param("id")

	indicator, err := handler.indicatorMetadataService.GetByID(ctx, indicatorID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("indicator with id %s not found", indicatorID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toIndicatorResponse(indicator))
}

// DeleteIndicatorByID handles the DELETE request to delete a threat indicator by ID
// @Summary Delete a threat indicator by ID
// @Description Delete a stored threat indicator by ID.
// @Tags Oracle
// @Accept json
// @Produce json
// @Param id path string true "Indicator ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /oracle/indicators/{id} [delete]
func (handler *oracleHandler) DeleteIndicatorByID(ctx *gin.Context) {
	indicatorID := ctx.Param("id")

	if err := handler.indicatorMetadataService.DeleteByID(ctx, indicatorID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting indicator with id %s", indicatorID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted indicator with id %s", indicatorID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
