// Package gateway provides the model gateway implementations: an HTTP client for
// the Gemini generateContent API and a simulated gateway used when no API key is
// configured.
package gateway
