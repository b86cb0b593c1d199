// Package config provides hierarchical configuration management: defaults,
// an optional YAML config file, and BUDGET_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var once sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		StateFile  string `mapstructure:"state_file" yaml:"state_file"`
		GroupsFile string `mapstructure:"groups_file" yaml:"groups_file"`
		ExportFile string `mapstructure:"export_file" yaml:"export_file"`
	} `mapstructure:"data" yaml:"data"`

	Matcher struct {
		FuzzyCutoff float64 `mapstructure:"fuzzy_cutoff" yaml:"fuzzy_cutoff"`
		MinScore    int     `mapstructure:"min_score" yaml:"min_score"`
	} `mapstructure:"matcher" yaml:"matcher"`
}

// Load initializes Viper configuration with hierarchical loading.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-chat")
	v.AddConfigPath(".budget-chat")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars, but tell the user.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.state_file", "data/budget_state.json")
	v.SetDefault("data.groups_file", "config/groups.yaml")
	v.SetDefault("data.export_file", "data/summary.csv")

	v.SetDefault("matcher.fuzzy_cutoff", 0.85)
	v.SetDefault("matcher.min_score", 2)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Data.StateFile == "" {
		return fmt.Errorf("data.state_file must not be empty")
	}

	if config.Matcher.FuzzyCutoff <= 0.0 || config.Matcher.FuzzyCutoff > 1.0 {
		return fmt.Errorf("matcher.fuzzy_cutoff must be in (0.0, 1.0], got: %f", config.Matcher.FuzzyCutoff)
	}

	if config.Matcher.MinScore < 1 {
		return fmt.Errorf("matcher.min_score must be at least 1, got: %d", config.Matcher.MinScore)
	}

	return nil
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv(logger *logrus.Logger) {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found, using environment variables")
			return
		}
		logger.Debug("Loaded environment variables from .env")
	})
}

// ConfigureLogging configures a logrus logger from the Config struct.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
