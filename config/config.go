// Package config holds the YAML application configuration of the transport
// catalogue CLI: ingestion strictness, output formatting and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EngineConfig represents the complete engine configuration
type EngineConfig struct {
	Ingest  IngestSettings  `yaml:"ingest"`
	Output  OutputSettings  `yaml:"output"`
	Logging LoggingSettings `yaml:"logging"`
}

// IngestSettings contains catalogue ingestion settings
type IngestSettings struct {
	// StrictUnknownStops rejects a bus definition referencing an unknown
	// stop. When false, unresolved names are silently skipped (the
	// historical behaviour).
	StrictUnknownStops bool `yaml:"strictUnknownStops"`
}

// OutputSettings contains response output settings
type OutputSettings struct {
	// Pretty indents the JSON response array.
	Pretty bool `yaml:"pretty"`
	// Indent is the number of spaces per indentation level when Pretty
	// is enabled.
	Indent int `yaml:"indent"`
}

// LoggingSettings contains logging settings
type LoggingSettings struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		Ingest: IngestSettings{
			StrictUnknownStops: true,
		},
		Output: OutputSettings{
			Pretty: false,
			Indent: 4,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(configPath string) (*EngineConfig, error) {
	// Start with default config
	config := DefaultConfig()

	// If no config file specified, return default
	if configPath == "" {
		return config, nil
	}

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	// Validate file path to prevent path traversal
	if !filepath.IsAbs(configPath) && strings.Contains(configPath, "..") {
		return nil, fmt.Errorf("invalid config file path: %s", configPath)
	}

	// Read file
	data, err := os.ReadFile(configPath) //nolint:gosec // Path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a YAML file
func (c *EngineConfig) SaveConfig(configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	// Write file
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *EngineConfig) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	if c.Output.Indent < 0 {
		return fmt.Errorf("output indent cannot be negative")
	}

	return nil
}

// GenerateDefaultConfigFile writes a commented default configuration file
func GenerateDefaultConfigFile(configPath string) error {
	defaultConfig := `# Transport Catalogue Configuration
ingest:
  # Reject bus definitions that reference unknown stops.
  # Set to false to silently skip unresolved stop names instead.
  strictUnknownStops: true

output:
  # Indent the JSON response array.
  pretty: false
  indent: 4

logging:
  # Levels: debug, info, warn, error
  level: "info"
  # Formats: text, json
  format: "text"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
