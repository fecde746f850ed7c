package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Response ResponseConfig `yaml:"response"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Address     string `yaml:"address"`
	BufferSize  int    `yaml:"buffer_size"`
	EchoRequest bool   `yaml:"echo_request"`
}

// ResponseConfig holds the values of the outbound response: the
// transaction id plus the question record the reply carries. Type and
// class are RFC mnemonics such as "A" and "IN".
type ResponseConfig struct {
	ID     uint16 `yaml:"id"`
	Domain string `yaml:"domain"`
	Type   string `yaml:"type"`
	Class  string `yaml:"class"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json", "text"
	Output string `yaml:"output"` // "stdout", "stderr", or file path
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:     "127.0.0.1:2053",
			BufferSize:  1024,
			EchoRequest: false,
		},
		Response: ResponseConfig{
			ID:     1234,
			Domain: "example.com",
			Type:   "A",
			Class:  "IN",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Address == "" {
		return fmt.Errorf("server address cannot be empty")
	}

	if c.Server.BufferSize <= 0 {
		return fmt.Errorf("server buffer size must be positive")
	}

	// Validate response config
	if c.Response.Domain == "" {
		return fmt.Errorf("response domain cannot be empty")
	}

	// Validate logging config
	if c.Logging.Level != "debug" && c.Logging.Level != "info" && c.Logging.Level != "warn" && c.Logging.Level != "error" {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}
