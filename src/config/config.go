package config

import (
	"fmt"
	"os"

	"solar-observer/src/helpers"
	"solar-observer/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Validate performs configuration validation. The data directory check runs
// here, before any processing begins.
func (c *Config) Validate() error {
	// Validate App configuration
	if c.Name == "" {
		return helpers.NewConfigurationError("application name cannot be empty")
	}

	// Validate Server configuration (only when serving is requested)
	if c.ServeStats {
		if c.Host == "" {
			return helpers.NewConfigurationError("server host cannot be empty")
		}
		if c.Port <= 1024 || c.Port > 65535 {
			return helpers.NewConfigurationError("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
		}
		if c.RescanIntervalSeconds < 0 {
			return helpers.NewConfigurationError("rescan interval cannot be negative")
		}
	}

	// Validate DataSource configuration
	if c.DataSource.DataDirectory == "" {
		return helpers.NewConfigurationError("data directory cannot be empty")
	}
	info, err := os.Stat(c.DataSource.DataDirectory)
	if err != nil {
		return helpers.NewConfigurationError("data directory '%s' is not readable: %v", c.DataSource.DataDirectory, err)
	}
	if !info.IsDir() {
		return helpers.NewConfigurationError("data directory '%s' is not a directory", c.DataSource.DataDirectory)
	}

	// Validate Network configuration (used by the downloader only)
	if c.Download.Enabled {
		if c.Network.RequestTimeout <= 0 {
			return helpers.NewConfigurationError("request timeout must be greater than 0")
		}
		if c.Network.MaxRetries <= 0 {
			return helpers.NewConfigurationError("max retries must be greater than 0")
		}
		if c.Download.APIKey == "" {
			return helpers.NewConfigurationError("download requires an api_key")
		}
		if len(c.Download.Years) == 0 {
			return helpers.NewConfigurationError("download requires at least one year")
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
