package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/idna"

	"github.com/okastran/dnsling/pkg/dns"
)

// Validator handles configuration validation
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateConfig performs comprehensive validation of the configuration.
// The response domain is rewritten to its IDNA ASCII form as a side
// effect, so a Unicode domain in a config file encodes as punycode.
func (v *Validator) ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	// Validate server configuration
	if err := v.ValidateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	// Validate response configuration
	if err := v.ValidateResponseConfig(&config.Response); err != nil {
		return fmt.Errorf("response config validation failed: %w", err)
	}

	// Validate logging configuration
	if err := v.ValidateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

// ValidateServerConfig validates server-specific configuration
func (v *Validator) ValidateServerConfig(config *ServerConfig) error {
	// Validate address
	if config.Address == "" {
		return fmt.Errorf("server address cannot be empty")
	}

	host, port, err := net.SplitHostPort(config.Address)
	if err != nil {
		return fmt.Errorf("invalid server address format: %w", err)
	}

	if net.ParseIP(host) == nil && host != "localhost" && host != "" {
		return fmt.Errorf("invalid server host: %s", host)
	}

	// Port 0 lets the operating system pick one
	if portNum, err := strconv.Atoi(port); err != nil || portNum < 0 || portNum > 65535 {
		return fmt.Errorf("invalid server port: %s", port)
	}

	// Validate receive buffer
	if config.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive")
	}

	return nil
}

// ValidateResponseConfig validates the response values and normalizes the
// domain to its ASCII form
func (v *Validator) ValidateResponseConfig(config *ResponseConfig) error {
	if config.Domain == "" {
		return fmt.Errorf("response domain cannot be empty")
	}

	domain := strings.TrimSuffix(config.Domain, ".")

	// IDNA maps Unicode names to punycode; ASCII names skip the lookup
	// profile so underscore labels stay usable.
	if !isASCII(domain) {
		ascii, err := idna.Lookup.ToASCII(domain)
		if err != nil {
			return fmt.Errorf("invalid response domain %q: %w", config.Domain, err)
		}
		domain = ascii
	}

	if !v.isValidDomainName(domain) {
		return fmt.Errorf("invalid response domain: %s", config.Domain)
	}
	config.Domain = domain

	// Validate record type mnemonic
	if _, err := dns.DNSTypeFromString(config.Type); err != nil {
		return fmt.Errorf("invalid response type: %w", err)
	}

	// Validate class mnemonic
	if _, err := dns.DNSClassFromString(config.Class); err != nil {
		return fmt.Errorf("invalid response class: %w", err)
	}

	return nil
}

// ValidateLoggingConfig validates logging-specific configuration
func (v *Validator) ValidateLoggingConfig(config *LoggingConfig) error {
	// Validate log level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[config.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.Level)
	}

	// Validate log format
	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[config.Format] {
		return fmt.Errorf("invalid log format: %s (must be json or text)", config.Format)
	}

	// Validate output (basic check)
	if config.Output == "" {
		return fmt.Errorf("log output cannot be empty")
	}

	return nil
}

// isValidDomainName performs basic domain name validation
func (v *Validator) isValidDomainName(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		// Check for valid characters (simplified)
		for _, r := range label {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
				return false
			}
		}
		// Label cannot start or end with hyphen
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}

	return true
}

// isASCII reports whether s contains only ASCII characters
func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
