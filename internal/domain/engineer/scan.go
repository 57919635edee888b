package engineer

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ScanTarget describes the AI deployment profile a hardening scan evaluates.
type ScanTarget struct {
	Name            string   `validate:"required,min=1,max=255"`
	Endpoint        string   `validate:"required,url"`
	TLSEnabled      bool
	AuthRequired    bool
	AllowedOrigins  []string `validate:"omitempty,dive,min=1"`
	MaxPromptLength int      `validate:"omitempty,min=0"`
	LogsRawPrompts  bool
	RateLimited     bool
}

// Validate for validating ScanTarget struct
func (t *ScanTarget) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
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

// Finding is a single hardening issue discovered during a scan.
type Finding struct {
	ID          string `validate:"required,uuid4"`
	RuleID      string `validate:"required,min=1,max=64"`
	Severity    string `validate:"required,oneof=low medium high critical"`
	Description string `validate:"required"`
	Remediation string `validate:"required"`
}

// ScanReport entity
type ScanReport struct {
	ID              string     `validate:"required,uuid4"`
	TargetName      string     `validate:"required,min=1,max=255"`
	Endpoint        string     `validate:"required,url"`
	Findings        []*Finding `validate:"omitempty,dive"`
	RiskScore       float64    `validate:"gte=0,lte=1"`
	DateTimeCreated time.Time  `validate:"required"`
}

// Validate for validating ScanReport struct
func (r *ScanReport) Validate() error {
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

// ScanQuery represents filter, pagination and sorting options when listing scan reports
type ScanQuery struct {
	TargetName      string `validate:"omitempty,max=255"`
	Severity        string `validate:"omitempty,oneof=low medium high critical"`
	DateTimeCreated time.Time

	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created risk_score"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewScanQuery creates a ScanQuery with default paging values
func NewScanQuery() *ScanQuery {
	return &ScanQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating ScanQuery struct
func (q *ScanQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
