package commands

import (
	"context"
	"fmt"

	"cerberus_security_service/internal/domain/gateway"
	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/infrastructure/detection"
	infraGateway "cerberus_security_service/internal/infrastructure/gateway"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// WatchmanCommandHandler encapsulates logic for analyzing and screening prompts via CLI.
type WatchmanCommandHandler struct {
	detector     watchman.InjectionDetector
	modelGateway gateway.ModelGateway
	logger       logger.Logger
}

// NewWatchmanCommandHandler initializes and returns a WatchmanCommandHandler instance with
// configured logger, heuristic detector and simulated model gateway.
func NewWatchmanCommandHandler() (*WatchmanCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	detector, err := detection.NewInjectionDetector(&config.DetectionSettings{
		Threshold: config.DefaultInjectionThreshold,
	}, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create injection detector: %w", err)
	}

	modelGateway, err := infraGateway.NewModelGateway(&config.GatewaySettings{}, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create model gateway: %w", err)
	}

	return &WatchmanCommandHandler{
		detector:     detector,
		modelGateway: modelGateway,
		logger:       loggerInstance,
	}, nil
}

// AnalyzePromptCmd runs the injection detector against a prompt and prints the verdict
func (commandHandler *WatchmanCommandHandler) AnalyzePromptCmd(cmd *cobra.Command, _ []string) {
	prompt, err := cmd.Flags().GetString("prompt")
	if err != nil {
		commandHandler.logger.Error("invalid prompt flag ", err)
		return
	}
	threshold, err := cmd.Flags().GetFloat64("threshold")
	if err != nil {
		commandHandler.logger.Error("invalid threshold flag ", err)
		return
	}

	if prompt == "" {
		commandHandler.logger.Error("prompt must not be empty")
		return
	}

	hit, confidence, err := commandHandler.detector.Detect(context.Background(), prompt)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if hit && confidence >= threshold {
		commandHandler.logger.Warn(watchman.DetailInjectionDetected, " (confidence ", confidence, ")")
	} else {
		commandHandler.logger.Info(watchman.DetailPromptClear, " (confidence ", confidence, ")")
	}
}

// ScreenPromptCmd analyzes a prompt and forwards it to the simulated model when it is clear
func (commandHandler *WatchmanCommandHandler) ScreenPromptCmd(cmd *cobra.Command, _ []string) {
	prompt, err := cmd.Flags().GetString("prompt")
	if err != nil {
		commandHandler.logger.Error("invalid prompt flag ", err)
		return
	}

	if prompt == "" {
		commandHandler.logger.Error("prompt must not be empty")
		return
	}

	ctx := context.Background()

	hit, confidence, err := commandHandler.detector.Detect(ctx, prompt)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if hit && confidence >= config.DefaultInjectionThreshold {
		commandHandler.logger.Warn("Prompt blocked: ", watchman.DetailInjectionDetected, " (confidence ", confidence, ")")
		return
	}

	reply, err := commandHandler.modelGateway.Generate(ctx, prompt)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Model reply: ", reply)
}

// InitWatchmanCommands registers prompt analysis commands
func InitWatchmanCommands(rootCmd *cobra.Command) error {
	handler, err := NewWatchmanCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create watchman command handler %w", err)
	}

	var analyzePromptCmd = &cobra.Command{
		Use:   "analyze-prompt",
		Short: "Analyze a prompt for injection attempts",
		Run:   handler.AnalyzePromptCmd,
	}
	analyzePromptCmd.Flags().StringP("prompt", "", "", "Prompt text to analyze")
	analyzePromptCmd.Flags().Float64P("threshold", "", config.DefaultInjectionThreshold, "Confidence threshold above which a hit is flagged")
	rootCmd.AddCommand(analyzePromptCmd)

	var screenPromptCmd = &cobra.Command{
		Use:   "screen-prompt",
		Short: "Screen a prompt and forward it to the simulated model",
		Run:   handler.ScreenPromptCmd,
	}
	screenPromptCmd.Flags().StringP("prompt", "", "", "Prompt text to screen")
	rootCmd.AddCommand(screenPromptCmd)

	return nil
}
