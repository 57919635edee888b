package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/infrastructure/scanrules"
	"cerberus_security_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// targetDocument is the JSON shape of a scan target profile file.
type targetDocument struct {
	Name            string   `json:"name"`
	Endpoint        string   `json:"endpoint"`
	TLSEnabled      bool     `json:"tls_enabled"`
	AuthRequired    bool     `json:"auth_required"`
	AllowedOrigins  []string `json:"allowed_origins"`
	MaxPromptLength int      `json:"max_prompt_length"`
	LogsRawPrompts  bool     `json:"logs_raw_prompts"`
	RateLimited     bool     `json:"rate_limited"`
}

// EngineerCommandHandler encapsulates logic for running hardening scans via CLI.
type EngineerCommandHandler struct {
	rules  []engineer.HardeningRule
	logger logger.Logger
}

// NewEngineerCommandHandler initializes and returns an EngineerCommandHandler instance with
// configured logger and the built-in hardening rule set.
func NewEngineerCommandHandler() (*EngineerCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &EngineerCommandHandler{
		rules:  scanrules.DefaultRules(),
		logger: loggerInstance,
	}, nil
}

// ScanTargetCmd runs the hardening rules against a JSON target profile and prints the findings
func (commandHandler *EngineerCommandHandler) ScanTargetCmd(cmd *cobra.Command, _ []string) {
	targetFile, err := cmd.Flags().GetString("target-file")
	if err != nil {
		commandHandler.logger.Error("invalid target-file flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(targetFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var document targetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		commandHandler.logger.Error("failed to parse target file ", err)
		return
	}

	target := &engineer.ScanTarget{
		Name:            document.Name,
		Endpoint:        document.Endpoint,
		TLSEnabled:      document.TLSEnabled,
		AuthRequired:    document.AuthRequired,
		AllowedOrigins:  document.AllowedOrigins,
		MaxPromptLength: document.MaxPromptLength,
		LogsRawPrompts:  document.LogsRawPrompts,
		RateLimited:     document.RateLimited,
	}

	if err := target.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var findings []*engineer.Finding
	for _, rule := range commandHandler.rules {
		if finding := rule.Evaluate(target); finding != nil {
			findings = append(findings, finding)
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		return findings[i].RuleID < findings[j].RuleID
	})

	if len(findings) == 0 {
		commandHandler.logger.Info("No hardening findings for target ", target.Name)
		return
	}

	riskScore := 0.0
	for _, finding := range findings {
		if weight := engineer.SeverityWeight[finding.Severity]; weight > riskScore {
			riskScore = weight
		}
		commandHandler.logger.Warn("[", finding.Severity, "] ", finding.RuleID, ": ", finding.Description, " - ", finding.Remediation)
	}

	commandHandler.logger.Warn("Target ", target.Name, " has ", len(findings), " findings with risk score ", riskScore)
}

// InitEngineerCommands registers hardening scan commands
func InitEngineerCommands(rootCmd *cobra.Command) error {
	handler, err := NewEngineerCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create engineer command handler %w", err)
	}

	var scanTargetCmd = &cobra.Command{
		Use:   "scan-target",
		Short: "Run hardening rules against a target profile",
		Run:   handler.ScanTargetCmd,
	}
	scanTargetCmd.Flags().StringP("target-file", "", "", "Path to a JSON file describing the scan target")
	rootCmd.AddCommand(scanTargetCmd)

	return nil
}
