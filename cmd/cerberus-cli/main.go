// Package main is the entry point for the cerberus-cli application.
// It initializes the root command and registers sub-commands for prompt
// analysis, threat assessment and hardening scans, then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "cerberus_security_service/cmd/cerberus-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cerberus-cli",
		Short: "AI security operations CLI tool",
		Long: `cerberus-cli is a command-line tool for AI security operations.
Supports prompt injection analysis, prompt screening against a simulated model,
threat assessment against indicator files and hardening scans of AI deployment
profiles. All commands run offline against the built-in heuristic detector and
rule set.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register watchman commands
	if err := commands.InitWatchmanCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize watchman commands: %w", err)
	}

	// Register oracle commands
	if err := commands.InitOracleCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize oracle commands: %w", err)
	}

	// Register engineer commands
	if err := commands.InitEngineerCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize engineer commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
