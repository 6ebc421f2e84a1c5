// Package config defines runtime configuration and its loading order.
package config

import "time"

// SquiggleConfig controls how we talk to the Squiggle fixture/tips API.
type SquiggleConfig struct {
	// BaseURL is the API root, e.g. "https://api.squiggle.com.au".
	BaseURL string `koanf:"base_url"`
	// UserAgent identifies this service to the upstream operator.
	UserAgent string `koanf:"user_agent"`
	// Timeout bounds each outbound request.
	Timeout time.Duration `koanf:"timeout"`
}

// OddsConfig controls the third-party odds aggregator.
type OddsConfig struct {
	Enabled bool   `koanf:"enabled"`
	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`
	// SportKey selects the competition feed, e.g. "aussierules_afl".
	SportKey string        `koanf:"sport_key"`
	Region   string        `koanf:"region"`
	Market   string        `koanf:"market"`
	Timeout  time.Duration `koanf:"timeout"`
	// MinInterval spaces out aggregator calls to respect its quota.
	MinInterval time.Duration `koanf:"min_interval"`
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	ServiceName  string `koanf:"service_name"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

// Config holds runtime configuration for the server.
type Config struct {
	Port string `koanf:"port"`
	// RefreshIntervalSeconds drives the poller cadence; default 60s.
	RefreshIntervalSeconds int `koanf:"refresh_interval_seconds"`
	// Season is the fixture year; 0 means the current year at load time.
	Season int `koanf:"season"`
	// Provider selects the data source: "squiggle" or "fixture".
	Provider string `koanf:"provider"`
	// LogoBaseURL is the root for derived team logo URLs.
	LogoBaseURL string `koanf:"logo_base_url"`
	// AdminToken guards the manual-refresh endpoint; empty disables it.
	AdminToken string `koanf:"admin_token"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	Squiggle SquiggleConfig `koanf:"squiggle"`
	Odds     OddsConfig     `koanf:"odds"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// RefreshInterval returns the poller cadence as a duration.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshIntervalSeconds <= 0 {
		return defaultRefreshInterval
	}
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}
