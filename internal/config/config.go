package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kaiolohia/roster/pkg/core/lineup"
)

// Config represents the application configuration
type Config struct {
	DatabaseURL     string   `yaml:"databaseURL" validate:"required"`
	HTTPAddr        string   `yaml:"httpAddr,omitempty"`
	DefaultPriority []string `yaml:"defaultPriority,omitempty"`
	FillPolicy      string   `yaml:"fillPolicy,omitempty"`
	AllowedOrigins  []string `yaml:"allowedOrigins,omitempty"`
	LineupSheetID   string   `yaml:"lineupSheetID,omitempty"`
	LineupTab       string   `yaml:"lineupTab,omitempty"`
	GmailUserID     string   `yaml:"gmailUserID,omitempty"`
	GmailSender     string   `yaml:"gmailSender,omitempty" validate:"omitempty,email"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from roster_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the lineup settings
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// The priority list must name known criteria with no repeats
	if _, err := lineup.ParsePriority(cfg.DefaultPriority); err != nil {
		return fmt.Errorf("invalid defaultPriority: %w", err)
	}

	if !lineup.FillPolicy(cfg.FillPolicy).IsValid() {
		return fmt.Errorf("invalid fillPolicy %q: must be %q or %q",
			cfg.FillPolicy, lineup.PolicySequential, lineup.PolicyRoundRobin)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.FillPolicy == "" {
		cfg.FillPolicy = string(lineup.PolicySequential)
	}
	if len(cfg.DefaultPriority) == 0 {
		cfg.DefaultPriority = []string{
			string(lineup.CriterionAbility),
			string(lineup.CriterionGender),
			string(lineup.CriterionType),
			string(lineup.CriterionSeatPreference),
		}
	}
}

// findConfigFile searches for roster_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "roster_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
