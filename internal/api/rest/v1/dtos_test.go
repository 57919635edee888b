//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzePromptRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   AnalyzePromptRequest
		shouldErr bool
	}{
		{"Valid prompt", AnalyzePromptRequest{Prompt: "what is the capital of france?"}, false},
		{"Valid prompt with session", AnalyzePromptRequest{SessionID: "0b37e891-4a35-4b12-9c8e-2f3a4d5e6f70", Prompt: "hello"}, false},
		{"Empty prompt", AnalyzePromptRequest{}, true},
		{"Invalid session id", AnalyzePromptRequest{SessionID: "not-a-uuid", Prompt: "hello"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestIngestIndicatorsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   IngestIndicatorsRequest
		shouldErr bool
	}{
		{
			"Valid ip indicator",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "ip", Value: "198.51.100.23", Severity: "critical", Confidence: 0.9, Source: "internal-blocklist"},
			}},
			false,
		},
		{
			"Valid keyword indicator",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "keyword", Value: "free crypto airdrop", Severity: "medium", Confidence: 0.8, Source: "osint-feed"},
			}},
			false,
		},
		{
			"Valid hash indicator",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "hash", Value: "44d88612fea8a8f36de82e1278abb02f", Severity: "high", Confidence: 0.99, Source: "osint-feed"},
			}},
			false,
		},
		{
			"Empty batch",
			IngestIndicatorsRequest{},
			true,
		},
		{
			"Unknown type",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "email", Value: "a@b.com", Severity: "low", Confidence: 0.5, Source: "osint-feed"},
			}},
			true,
		},
		{
			"Ip indicator with invalid value",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "ip", Value: "not-an-ip", Severity: "high", Confidence: 0.8, Source: "osint-feed"},
			}},
			true,
		},
		{
			"Hash indicator with wrong length",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "hash", Value: "abcd", Severity: "high", Confidence: 0.8, Source: "osint-feed"},
			}},
			true,
		},
		{
			"Confidence out of range",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "ip", Value: "198.51.100.23", Severity: "high", Confidence: 1.5, Source: "osint-feed"},
			}},
			true,
		},
		{
			"Missing source",
			IngestIndicatorsRequest{Indicators: []IndicatorRequest{
				{Type: "ip", Value: "198.51.100.23", Severity: "high", Confidence: 0.8},
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestScanTargetRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ScanTargetRequest
		shouldErr bool
	}{
		{"Valid target", ScanTargetRequest{Name: "prod-assistant", Endpoint: "https://assistant.example.com"}, false},
		{"Missing name", ScanTargetRequest{Endpoint: "https://assistant.example.com"}, true},
		{"Invalid endpoint", ScanTargetRequest{Name: "x", Endpoint: "not-a-url"}, true},
		{"Empty origin entry", ScanTargetRequest{Name: "x", Endpoint: "https://assistant.example.com", AllowedOrigins: []string{""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "Operation successful",
	}

	require.Equal(t, "Operation successful", infoResp.Message)
}
