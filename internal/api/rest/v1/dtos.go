package v1

import (
	"errors"
	"fmt"
	"time"

	"cerberus_security_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

// AnalyzePromptRequest is the payload for analyzing or screening a prompt
type AnalyzePromptRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,uuid4"`
	Prompt    string `json:"prompt" validate:"required,min=1"`
}

// Validate for validating AnalyzePromptRequest struct
func (r *AnalyzePromptRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// PromptAnalysisResponse represents a stored prompt analysis
type PromptAnalysisResponse struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	Prompt          string    `json:"prompt"`
	Flagged         bool      `json:"flagged"`
	Confidence      float64   `json:"confidence"`
	Detector        string    `json:"detector"`
	Details         string    `json:"details"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// ScreeningResponse represents the outcome of screening a prompt
type ScreeningResponse struct {
	Analysis PromptAnalysisResponse `json:"analysis"`
	Blocked  bool                   `json:"blocked"`
	Reply    string                 `json:"reply"`
}

// IndicatorRequest is a single indicator in an ingest payload
type IndicatorRequest struct {
	Type        string  `json:"type" validate:"required,oneof=ip domain url hash keyword"`
	Value       string  `json:"value" validate:"required,indicatorValueValidation"`
	Severity    string  `json:"severity" validate:"required,oneof=low medium high critical"`
	Confidence  float64 `json:"confidence" validate:"gte=0,lte=1"`
	Source      string  `json:"source" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"omitempty,max=1024"`
}

// IngestIndicatorsRequest is the payload for batch indicator ingestion
type IngestIndicatorsRequest struct {
	Indicators []IndicatorRequest `json:"indicators" validate:"required,min=1,dive"`
}

// Validate for validating IngestIndicatorsRequest struct
func (r *IngestIndicatorsRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("indicatorValueValidation", validators.IndicatorValueValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// IndicatorResponse represents a stored threat indicator
type IndicatorResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Value           string    `json:"value"`
	Severity        string    `json:"severity"`
	Confidence      float64   `json:"confidence"`
	Source          string    `json:"source"`
	Description     string    `json:"description,omitempty"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// AssessThreatRequest is the payload for assessing a value against the indicator corpus
type AssessThreatRequest struct {
	Value string `json:"value" validate:"required,min=1"`
}

// Validate for validating AssessThreatRequest struct
func (r *AssessThreatRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ThreatAssessmentResponse represents the outcome of assessing a value
type ThreatAssessmentResponse struct {
	Value     string              `json:"value"`
	Matches   []IndicatorResponse `json:"matches"`
	RiskScore float64             `json:"risk_score"`
}

// FeedSyncResponse reports the result of a feed synchronization
type FeedSyncResponse struct {
	Ingested int    `json:"ingested"`
	Error    string `json:"error,omitempty"`
}

// ScanTargetRequest is the payload for running a hardening scan
type ScanTargetRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=255"`
	Endpoint        string   `json:"endpoint" validate:"required,url"`
	TLSEnabled      bool     `json:"tls_enabled"`
	AuthRequired    bool     `json:"auth_required"`
	AllowedOrigins  []string `json:"allowed_origins" validate:"omitempty,dive,min=1"`
	MaxPromptLength int      `json:"max_prompt_length" validate:"omitempty,min=0"`
	LogsRawPrompts  bool     `json:"logs_raw_prompts"`
	RateLimited     bool     `json:"rate_limited"`
}

// Validate for validating ScanTargetRequest struct
func (r *ScanTargetRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// FindingResponse represents a single scan finding
type FindingResponse struct {
	ID          string `json:"id"`
	RuleID      string `json:"rule_id"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Remediation string `json:"remediation"`
}

// ScanReportResponse represents a stored scan report
type ScanReportResponse struct {
	ID              string            `json:"id"`
	TargetName      string            `json:"target_name"`
	Endpoint        string            `json:"endpoint"`
	Findings        []FindingResponse `json:"findings"`
	RiskScore       float64           `json:"risk_score"`
	DateTimeCreated time.Time         `json:"date_time_created"`
}
