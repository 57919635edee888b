// Package detection provides the prompt injection detector implementations used
// by the Watchman head: a built-in heuristic detector based on a weighted phrase
// table and a client for an external model-backed scoring endpoint.
package detection
