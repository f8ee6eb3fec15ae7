// config.go - Configuration management for the UTXO circuit build demo.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// BuildConfig represents the demo binary's configuration.
type BuildConfig struct {
	// Circuit shape.
	NonFeeInputSize int `json:"non_fee_input_size"`

	// File paths.
	ProvingKeyPath    string `json:"proving_key_path"`
	VerifyingKeyPath  string `json:"verifying_key_path"`

	// Logging.
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *BuildConfig {
	return &BuildConfig{
		NonFeeInputSize:  2,
		ProvingKeyPath:   "utxo.pk",
		VerifyingKeyPath: "utxo.vk",
		LogLevel:         "info",
		LogFile:          "",
	}
}

// LoadConfig loads configuration from file or creates default.
func LoadConfig(configPath string) (*BuildConfig, error) {
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		var config BuildConfig
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		return &config, nil
	}

	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}
	return config, nil
}

// SaveConfig saves configuration to file.
func SaveConfig(config *BuildConfig, configPath string) error {
	dir := filepath.Dir(configPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks the configuration is internally consistent.
func (c *BuildConfig) Validate() error {
	if c.NonFeeInputSize < 0 {
		return fmt.Errorf("non_fee_input_size must be non-negative")
	}
	if c.ProvingKeyPath == "" {
		return fmt.Errorf("proving_key_path must be set")
	}
	if c.VerifyingKeyPath == "" {
		return fmt.Errorf("verifying_key_path must be set")
	}
	return nil
}
