// Package gateway defines the contract for forwarding screened prompts to a
// downstream language model.
package gateway
