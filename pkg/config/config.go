package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssargent/maparr/pkg/gen"
	"gopkg.in/yaml.v3"
)

// Config represents the maparr tool configuration
type Config struct {
	Format        string  `yaml:"format"`
	Suffix        string  `yaml:"suffix"`
	Header        string  `yaml:"header,omitempty"`
	RuntimeImport string  `yaml:"runtime_import"`
	Logging       Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Format:        string(gen.FormatGoimports),
		Suffix:        gen.DefaultSuffix,
		RuntimeImport: gen.DefaultRuntimeImport,
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the values the generator cannot default.
func (c *Config) Validate() error {
	if _, err := gen.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Suffix != "" && filepath.Ext(c.Suffix) != ".go" {
		return fmt.Errorf("invalid config: suffix %q must end in .go", c.Suffix)
	}
	return nil
}

// GeneratorOptions converts the configuration into generator options
func (c *Config) GeneratorOptions() (gen.Options, error) {
	format, err := gen.ParseFormat(c.Format)
	if err != nil {
		return gen.Options{}, err
	}
	return gen.Options{
		Format:        format,
		Header:        c.Header,
		RuntimeImport: c.RuntimeImport,
		Suffix:        c.Suffix,
	}, nil
}

// BootstrapConfig writes a default configuration to configPath
func BootstrapConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path: .maparr.yaml
// in the working directory when present, the user config directory otherwise
func GetDefaultConfigPath() string {
	if ConfigExists(".maparr.yaml") {
		return ".maparr.yaml"
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.maparr.yaml"
	}

	// For Linux/macOS, use ~/.config/maparr/config.yaml
	configDir := filepath.Join(homeDir, ".config", "maparr")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
