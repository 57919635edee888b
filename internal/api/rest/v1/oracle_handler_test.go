//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cerberus_security_service/internal/domain/oracle"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOracleHandler_IngestIndicators_Success(t *testing.T) {
	mockIntelService := new(MockThreatIntelService)
	mockMetadataService := new(MockIndicatorMetadataService)

	handler := NewOracleHandler(mockIntelService, mockMetadataService)

	indicator := &oracle.ThreatIndicator{
		ID:              "abc-123",
		Type:            oracle.IndicatorTypeIP,
		Value:           "198.51.100.23",
		Severity:        oracle.SeverityCritical,
		Confidence:      0.9,
		Source:          "internal-blocklist",
		DateTimeCreated: time.Now(),
	}

	requestBody := `{"indicators": [{"type": "ip", "value": "198.51.100.23", "severity": "critical", "confidence": 0.9, "source": "internal-blocklist"}]}`

	mockIntelService.
		On("Ingest", mock.Anything, mock.Anything).
		Return([]*oracle.ThreatIndicator{indicator}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/oracle/indicators", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.IngestIndicators(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockIntelService.AssertExpectations(t)
}

func TestOracleHandler_IngestIndicators_InvalidValue(t *testing.T) {
	mockIntelService := new(MockThreatIntelService)
	mockMetadataService := new(MockIndicatorMetadataService)

	handler := NewOracleHandler(mockIntelService, mockMetadataService)

	// An ip indicator whose value is not an IP address must fail validation
	requestBody := `{"indicators": [{"type": "ip", "value": "not-an-ip", "severity": "high", "confidence": 0.8, "source": "internal-blocklist"}]}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/oracle/indicators", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.IngestIndicators(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockIntelService.AssertNotCalled(t, "Ingest")
}

func TestOracleHandler_AssessThreat_Success(t *testing.T) {
	mockIntelService := new(MockThreatIntelService)
	mockMetadataService := new(MockIndicatorMetadataService)

	handler := NewOracleHandler(mockIntelService, mockMetadataService)

	assessment := &oracle.ThreatAssessment{
		Value: "198.51.100.23",
		Matches: []*oracle.ThreatIndicator{
			{
				ID:              "abc-123",
				Type:            oracle.IndicatorTypeIP,
				Value:           "198.51.100.23",
				Severity:        oracle.SeverityCritical,
				Confidence:      0.9,
				Source:          "internal-blocklist",
				DateTimeCreated: time.Now(),
			},
		},
		RiskScore: 0.9,
	}

	mockIntelService.
		On("Assess", mock.Anything, "198.51.100.23").
		Return(assessment, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/oracle/assessments", bytes.NewBufferString(`{"value": "198.51.100.23"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AssessThreat(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"risk_score":0.9`)
	mockIntelService.AssertExpectations(t)
}

func TestOracleHandler_SyncFeeds_PartialFailure(t *testing.T) {
	mockIntelService := new(MockThreatIntelService)
	mockMetadataService := new(MockIndicatorMetadataService)

	handler := NewOracleHandler(mockIntelService, mockMetadataService)

	mockIntelService.
		On("SyncFeeds", mock.Anything).
		Return(12, errors.New("failed to fetch feed https://feeds.example.com/iocs.json: status 500"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/oracle/feeds/sync", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.SyncFeeds(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ingested":12`)
	assert.Contains(t, w.Body.String(), "status 500")
	mockIntelService.AssertExpectations(t)
}

func TestOracleHandler_ListIndicators_Success(t *testing.T) {
	mockIntelService := new(MockThreatIntelService)
	mockMetadataService := new(MockIndicatorMetadataService)

	handler := NewOracleHandler(mockIntelService, mockMetadataService)

	indicator := &oracle.ThreatIndicator{
		ID:              "abc-123",
		Type:            oracle.IndicatorTypeDomain,
		Value:           "phishing.example.net",
		Severity:        oracle.SeverityHigh,
		Confidence:      0.7,
		Source:          "osint-feed",
		DateTimeCreated: time.Now(),
	}

	mockMetadataService.
		On("List", mock.Anything, mock.Anything).
		Return([]*oracle.ThreatIndicator{indicator}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/oracle/indicators?type=domain&severity=high", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListIndicators(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "phishing.example.net")
	mockMetadataService.AssertExpectations(t)
}

func TestOracleHandler_GetIndicatorByID_NotFound(t *testing.T) {
	mockIntelService := new(MockThreatIntelService)
	mockMetadataService := new(MockIndicatorMetadataService)

	handler := NewOracleHandler(mockIntelService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "missing-id").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/oracle/indicators/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}

	handler.GetIndicatorByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMetadataService.AssertExpectations(t)
}

func TestOracleHandler_DeleteIndicatorByID_Success(t *testing.T) {
	mockIntelService := new(MockThreatIntelService)
	mockMetadataService := new(MockIndicatorMetadataService)

	handler := NewOracleHandler(mockIntelService, mockMetadataService)

	mockMetadataService.
		On("DeleteByID", mock.Anything, "abc-123").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/oracle/indicators/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.DeleteIndicatorByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockMetadataService.AssertExpectations(t)
}
