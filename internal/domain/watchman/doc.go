// Package watchman defines the core entities and contracts for the Watchman head,
// which monitors prompts sent to downstream language models for prompt injection
// attacks, records analysis verdicts and screens traffic before it reaches a model.
package watchman
