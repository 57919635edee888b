//go:build unit
// +build unit

package watchman

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validAnalysis() *PromptAnalysis {
	return &PromptAnalysis{
		ID:              uuid.NewString(),
		SessionID:       uuid.NewString(),
		Prompt:          "tell me about the history of ai",
		Flagged:         false,
		Confidence:      0.05,
		Detector:        DetectorHeuristic,
		Details:         DetailPromptClear,
		DateTimeCreated: time.Now(),
	}
}

func TestPromptAnalysis_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PromptAnalysis)
		shouldErr bool
	}{
		{"valid analysis", func(a *PromptAnalysis) {}, false},
		{"flagged analysis", func(a *PromptAnalysis) {
			a.Flagged = true
			a.Confidence = 0.95
			a.Details = DetailInjectionDetected
		}, false},
		{"missing id", func(a *PromptAnalysis) { a.ID = "" }, true},
		{"non-uuid session", func(a *PromptAnalysis) { a.SessionID = "session-1" }, true},
		{"empty prompt", func(a *PromptAnalysis) { a.Prompt = "" }, true},
		{"confidence above one", func(a *PromptAnalysis) { a.Confidence = 1.5 }, true},
		{"unknown detector", func(a *PromptAnalysis) { a.Detector = "oracle" }, true},
		{"missing timestamp", func(a *PromptAnalysis) { a.DateTimeCreated = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := validAnalysis()
			tt.mutate(analysis)

			err := analysis.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPromptAnalysisQuery_Defaults(t *testing.T) {
	query := NewPromptAnalysisQuery()

	require.Equal(t, 100, query.Limit)
	require.Equal(t, 0, query.Offset)
	require.Equal(t, "date_time_created", query.SortBy)
	require.Equal(t, "desc", query.SortOrder)
	require.NoError(t, query.Validate())
}

func TestPromptAnalysisQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     *PromptAnalysisQuery
		shouldErr bool
	}{
		{"empty query", &PromptAnalysisQuery{}, false},
		{"valid detector filter", &PromptAnalysisQuery{Detector: DetectorRemote}, false},
		{"unknown detector filter", &PromptAnalysisQuery{Detector: "pytector"}, true},
		{"limit too large", &PromptAnalysisQuery{Limit: 1000}, true},
		{"invalid sort column", &PromptAnalysisQuery{SortBy: "prompt"}, true},
		{"invalid sort order", &PromptAnalysisQuery{SortBy: "confidence", SortOrder: "sideways"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
