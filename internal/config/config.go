// Package config loads and validates application configuration from YAML
// files and environment variables using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/careplan-rule-engine/internal/domain"
)

// Manager loads and holds the application configuration.
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from file, environment, and defaults.
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/careplan-engine/")

	viper.SetEnvPrefix("CAREPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars cover a full setup.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values.
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")

	// Clinical threshold defaults. Overridable so guideline updates do not
	// require a rebuild, but the shipped values are the sourced ones.
	defaults := domain.DefaultThresholds()
	viper.SetDefault("thresholds.risk_moderate", defaults.RiskModerate)
	viper.SetDefault("thresholds.risk_high", defaults.RiskHigh)
	viper.SetDefault("thresholds.risk_urgent", defaults.RiskUrgent)
	viper.SetDefault("thresholds.systolic_crisis", defaults.SystolicCrisis)
	viper.SetDefault("thresholds.diastolic_crisis", defaults.DiastolicCrisis)
	viper.SetDefault("thresholds.glucose_severe", defaults.GlucoseSevere)
	viper.SetDefault("thresholds.systolic_uncontrolled", defaults.SystolicUncontrolled)

	// Enrichment defaults (disabled until a collaborator URL is configured)
	viper.SetDefault("enrichment.enabled", false)
	viper.SetDefault("enrichment.base_url", "")
	viper.SetDefault("enrichment.timeout", "10s")
	viper.SetDefault("enrichment.max_failures", 5)
	viper.SetDefault("enrichment.open_timeout", "60s")

	// Rate limit defaults
	viper.SetDefault("rate_limit.requests_per_second", 50)
	viper.SetDefault("rate_limit.burst", 100)
}

// GetConfig returns the complete configuration.
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetThresholds returns the clinical threshold configuration.
func (m *Manager) GetThresholds() domain.Thresholds {
	return m.config.Thresholds
}

// GetServerConfig returns the server configuration.
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// Validate validates the configuration.
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	t := config.Thresholds
	if !(t.RiskModerate > 0 && t.RiskModerate < t.RiskHigh && t.RiskHigh <= t.RiskUrgent && t.RiskUrgent <= 1) {
		return fmt.Errorf("invalid risk thresholds: moderate=%.2f high=%.2f urgent=%.2f",
			t.RiskModerate, t.RiskHigh, t.RiskUrgent)
	}
	if t.SystolicCrisis <= 0 || t.DiastolicCrisis <= 0 || t.GlucoseSevere <= 0 || t.SystolicUncontrolled <= 0 {
		return fmt.Errorf("acute vital thresholds must be positive")
	}
	if t.SystolicUncontrolled > t.SystolicCrisis {
		return fmt.Errorf("systolic_uncontrolled (%.0f) must not exceed systolic_crisis (%.0f)",
			t.SystolicUncontrolled, t.SystolicCrisis)
	}

	if config.Enrichment.Enabled && config.Enrichment.BaseURL == "" {
		return fmt.Errorf("enrichment base URL is required when enrichment is enabled")
	}

	if config.RateLimit.RequestsPerSecond <= 0 || config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}

	return nil
}
