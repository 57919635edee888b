package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// indicatorDocument is the JSON shape of a single indicator in an indicators file.
type indicatorDocument struct {
	Type        string  `json:"type"`
	Value       string  `json:"value"`
	Severity    string  `json:"severity"`
	Confidence  float64 `json:"confidence"`
	Source      string  `json:"source"`
	Description string  `json:"description"`
}

// OracleCommandHandler encapsulates logic for assessing values against indicator files via CLI.
type OracleCommandHandler struct {
	logger logger.Logger
}

// NewOracleCommandHandler initializes and returns an OracleCommandHandler instance with
// a configured logger.
func NewOracleCommandHandler() (*OracleCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &OracleCommandHandler{
		logger: loggerInstance,
	}, nil
}

// AssessThreatCmd matches a value against indicators loaded from a JSON file and
// prints the matches with an aggregate risk score
func (commandHandler *OracleCommandHandler) AssessThreatCmd(cmd *cobra.Command, _ []string) {
	value, err := cmd.Flags().GetString("value")
	if err != nil {
		commandHandler.logger.Error("invalid value flag ", err)
		return
	}
	indicatorsFile, err := cmd.Flags().GetString("indicators-file")
	if err != nil {
		commandHandler.logger.Error("invalid indicators-file flag ", err)
		return
	}

	if value == "" {
		commandHandler.logger.Error("value must not be empty")
		return
	}

	data, err := os.ReadFile(filepath.Clean(indicatorsFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var documents []indicatorDocument
	if err := json.Unmarshal(data, &documents); err != nil {
		commandHandler.logger.Error("failed to parse indicators file ", err)
		return
	}

	matches := 0
	riskScore := 0.0
	for _, doc := range documents {
		matched := false
		if doc.Type == oracle.IndicatorTypeKeyword {
			matched = strings.Contains(strings.ToLower(value), strings.ToLower(doc.Value))
		} else {
			matched = strings.EqualFold(value, doc.Value)
		}
		if !matched {
			continue
		}

		matches++
		score := oracle.SeverityWeight[doc.Severity] * doc.Confidence
		if score > riskScore {
			riskScore = score
		}
		commandHandler.logger.Warn("Matched ", doc.Type, " indicator ", doc.Value, " from ", doc.Source)
	}

	if matches == 0 {
		commandHandler.logger.Info("No indicators matched for ", value)
		return
	}

	commandHandler.logger.Warn("Value ", value, " matched ", matches, " indicators with risk score ", riskScore)
}

// InitOracleCommands registers threat assessment commands
func InitOracleCommands(rootCmd *cobra.Command) error {
	handler, err := NewOracleCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create oracle command handler %w", err)
	}

	var assessThreatCmd = &cobra.Command{
		Use:   "assess-threat",
		Short: "Assess a value against an indicator file",
		Run:   handler.AssessThreatCmd,
	}
	assessThreatCmd.Flags().StringP("value", "", "", "Value to assess (ip, domain, url, hash or free text)")
	assessThreatCmd.Flags().StringP("indicators-file", "", "", "Path to a JSON file with threat indicators")
	rootCmd.AddCommand(assessThreatCmd)

	return nil
}
