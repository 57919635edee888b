package oracle

import (
	"errors"
	"fmt"
	"time"

	"cerberus_security_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ThreatIndicator entity
type ThreatIndicator struct {
	ID              string    `validate:"required,uuid4"`
	Type            string    `validate:"required,oneof=ip domain url hash keyword"`
	Value           string    `validate:"required,indicatorValueValidation"`
	Severity        string    `validate:"required,oneof=low medium high critical"`
	Confidence      float64   `validate:"gte=0,lte=1"`
	Source          string    `validate:"required,min=1,max=255"`
	Description     string    `validate:"omitempty,max=1024"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating ThreatIndicator struct
func (i *ThreatIndicator) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("indicatorValueValidation", validators.IndicatorValueValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(i)
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

// ThreatIndicatorQuery represents filter, pagination and sorting options
// when listing threat indicators
type ThreatIndicatorQuery struct {
	Type            string `validate:"omitempty,oneof=ip domain url hash keyword"`
	Severity        string `validate:"omitempty,oneof=low medium high critical"`
	Source          string `validate:"omitempty,max=255"`
	DateTimeCreated time.Time

	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created severity confidence"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewThreatIndicatorQuery creates a ThreatIndicatorQuery with default paging values
func NewThreatIndicatorQuery() *ThreatIndicatorQuery {
	return &ThreatIndicatorQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating ThreatIndicatorQuery struct
func (q *ThreatIndicatorQuery) Validate() error {
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

// ThreatAssessment is the result of assessing a value against the indicator corpus.
type ThreatAssessment struct {
	Value     string
	Matches   []*ThreatIndicator
	RiskScore float64
}
