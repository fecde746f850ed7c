package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading from multiple sources
type Loader struct {
	configPaths []string
	envPrefix   string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: []string{
			"./dnsling.yaml",
		},
		envPrefix: "DNSLING_",
	}
}

// Load loads configuration from all available sources
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	// Load from file
	if err := l.loadFromFile(config); err != nil {
		return nil, fmt.Errorf("failed to load config from file: %w", err)
	}

	// Override with environment variables
	if err := l.loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	// Validate configuration
	if err := NewValidator().ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadFromPath loads configuration from a specific file path
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Override with environment variables
	if err := l.loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	// Validate configuration
	if err := NewValidator().ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromFile attempts to load configuration from default file locations
func (l *Loader) loadFromFile(config *Config) error {
	for _, path := range l.configPaths {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read config file %s: %w", path, err)
			}

			err = yaml.Unmarshal(data, config)
			if err != nil {
				return fmt.Errorf("failed to parse config file %s: %w", path, err)
			}

			return nil
		}
	}

	// No config file found, use defaults
	return nil
}

// loadFromEnv loads configuration overrides from environment variables
func (l *Loader) loadFromEnv(config *Config) error {
	// Server configuration
	if addr := os.Getenv(l.envPrefix + "SERVER_ADDRESS"); addr != "" {
		config.Server.Address = addr
	}
	if size := os.Getenv(l.envPrefix + "SERVER_BUFFER_SIZE"); size != "" {
		if i, err := strconv.Atoi(size); err == nil {
			config.Server.BufferSize = i
		}
	}
	if echo := os.Getenv(l.envPrefix + "SERVER_ECHO_REQUEST"); echo != "" {
		if b, err := strconv.ParseBool(echo); err == nil {
			config.Server.EchoRequest = b
		}
	}

	// Response configuration
	if id := os.Getenv(l.envPrefix + "RESPONSE_ID"); id != "" {
		if n, err := strconv.ParseUint(id, 10, 16); err == nil {
			config.Response.ID = uint16(n)
		}
	}
	if domain := os.Getenv(l.envPrefix + "RESPONSE_DOMAIN"); domain != "" {
		config.Response.Domain = domain
	}
	if recordType := os.Getenv(l.envPrefix + "RESPONSE_TYPE"); recordType != "" {
		config.Response.Type = recordType
	}
	if class := os.Getenv(l.envPrefix + "RESPONSE_CLASS"); class != "" {
		config.Response.Class = class
	}

	// Logging configuration
	if level := os.Getenv(l.envPrefix + "LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv(l.envPrefix + "LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv(l.envPrefix + "LOG_OUTPUT"); output != "" {
		config.Logging.Output = output
	}

	return nil
}

// SetConfigPaths sets the configuration file search paths
func (l *Loader) SetConfigPaths(paths []string) {
	l.configPaths = paths
}

// AddConfigPath adds a configuration file search path
func (l *Loader) AddConfigPath(path string) {
	l.configPaths = append(l.configPaths, path)
}

// SetEnvPrefix sets the environment variable prefix
func (l *Loader) SetEnvPrefix(prefix string) {
	l.envPrefix = prefix
}

// FindConfigFile searches for a configuration file in the configured paths
func (l *Loader) FindConfigFile() (string, error) {
	for _, path := range l.configPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no configuration file found in paths: %v", l.configPaths)
}

// CreateDefaultConfig creates a default configuration file
func (l *Loader) CreateDefaultConfig(path string) error {
	config := DefaultConfig()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return config.SaveToFile(path)
}
