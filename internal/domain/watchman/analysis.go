package watchman

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PromptAnalysis entity
type PromptAnalysis struct {
	ID              string    `validate:"required,uuid4"`
	SessionID       string    `validate:"required,uuid4"`
	Prompt          string    `validate:"required,min=1"`
	Flagged         bool      `validate:"omitempty"`
	Confidence      float64   `validate:"gte=0,lte=1"`
	Detector        string    `validate:"required,oneof=heuristic remote"`
	Details         string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating PromptAnalysis struct
func (a *PromptAnalysis) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
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

// PromptAnalysisQuery represents filter, pagination and sorting options
// when listing stored prompt analyses
type PromptAnalysisQuery struct {
	Flagged         *bool
	Detector        string    `validate:"omitempty,oneof=heuristic remote"`
	DateTimeCreated time.Time

	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created confidence"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewPromptAnalysisQuery creates a PromptAnalysisQuery with default paging values
func NewPromptAnalysisQuery() *PromptAnalysisQuery {
	return &PromptAnalysisQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating PromptAnalysisQuery struct
func (q *PromptAnalysisQuery) Validate() error {
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

// ScreeningResult is the outcome of screening a prompt before it is forwarded
// to the downstream model. Blocked screenings carry an empty reply.
type ScreeningResult struct {
	Analysis *PromptAnalysis
	Blocked  bool
	Reply    string
}
