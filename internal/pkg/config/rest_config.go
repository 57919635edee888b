package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RestConfig aggregates all settings required by the cerberus-rest-api application
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Detection DetectionSettings `mapstructure:"detection"`
	Gateway   GatewaySettings   `mapstructure:"gateway"`
	Feeds     FeedSettings      `mapstructure:"feeds"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Detection.Validate(); err != nil {
		return err
	}
	if err := c.Gateway.Validate(); err != nil {
		return err
	}
	if err := c.Feeds.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig loads the REST application configuration from the given
// YAML file. Environment variables prefixed with CERBERUS override file values,
// and a local .env file is loaded first when present.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	// Best effort; the .env file is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("CERBERUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", ":memory:")
	v.SetDefault("database.db_name", "cerberus")

	v.SetDefault("detection.threshold", DefaultInjectionThreshold)
	v.SetDefault("detection.request_timeout", 10)

	v.SetDefault("gateway.model", "gemini-1.5-flash")
	v.SetDefault("gateway.endpoint", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gateway.request_timeout", 30)

	v.SetDefault("feeds.worker_limit", 4)
	v.SetDefault("feeds.request_timeout", 15)
}
