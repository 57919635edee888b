//go:build unit
// +build unit

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGateway_Generate_Success(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "explain quantum entanglement", req.Contents[0].Parts[0].Text)

		_ = json.NewEncoder(w).Encode(generateContentResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "entanglement is a correlation between particles"}}}},
			},
		})
	}))
	defer server.Close()

	gw, err := NewGeminiGateway(&config.GatewaySettings{
		APIKey:   "test-key",
		Model:    "gemini-1.5-flash",
		Endpoint: server.URL,
	}, log)
	require.NoError(t, err)

	reply, err := gw.Generate(context.Background(), "explain quantum entanglement")
	require.NoError(t, err)
	assert.Equal(t, "entanglement is a correlation between particles", reply)
}

func TestGeminiGateway_Generate_NoCandidates(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateContentResponse{})
	}))
	defer server.Close()

	gw, err := NewGeminiGateway(&config.GatewaySettings{
		APIKey:   "test-key",
		Model:    "gemini-1.5-flash",
		Endpoint: server.URL,
	}, log)
	require.NoError(t, err)

	_, err = gw.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiGateway_RequiresAPIKey(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	_, err := NewGeminiGateway(&config.GatewaySettings{
		Model:    "gemini-1.5-flash",
		Endpoint: "https://generativelanguage.googleapis.com/v1beta",
	}, log)
	require.Error(t, err)
}

func TestSimulatedGateway_Generate(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	gw, err := NewSimulatedGateway(log)
	require.NoError(t, err)

	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{"greeting", "Hello!", "Hello there! How can I assist you today?"},
		{"joke", "Tell me a joke", "Why don't scientists trust atoms? Because they make up everything!"},
		{"default", "Explain quantum entanglement.", "gemini processed: 'Explain quantum entanglement.' (simulated response)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := gw.Generate(context.Background(), tt.prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reply)
		})
	}
}

func TestNewModelGateway_Fallback(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	gw, err := NewModelGateway(&config.GatewaySettings{
		Model:    "gemini-1.5-flash",
		Endpoint: "https://generativelanguage.googleapis.com/v1beta",
	}, log)
	require.NoError(t, err)
	assert.Equal(t, SimulatedGatewayName, gw.Name())

	gw, err = NewModelGateway(&config.GatewaySettings{
		APIKey:   "test-key",
		Model:    "gemini-1.5-flash",
		Endpoint: "https://generativelanguage.googleapis.com/v1beta",
	}, log)
	require.NoError(t, err)
	assert.Equal(t, GeminiGatewayName, gw.Name())
}
