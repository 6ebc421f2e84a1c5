package config

import "time"

const (
	defaultPort            = "4000"
	defaultRefreshInterval = 60 * time.Second
	defaultProvider        = "squiggle"

	defaultSquiggleBaseURL = "https://api.squiggle.com.au"
	defaultUserAgent       = "afl-tipping-service"
	defaultFetchTimeout    = 15 * time.Second

	defaultOddsBaseURL = "https://api.the-odds-api.com"
	defaultSportKey    = "aussierules_afl"
	defaultOddsRegion  = "au"
	defaultOddsMarket  = "h2h"
	// Conservative spacing; the aggregator's free tier has a small monthly quota.
	defaultOddsMinInterval = time.Minute

	defaultLogoBaseURL = "https://squiggle.com.au/wp-content/themes/squiggle/assets/images/logos/"

	defaultMetricsPort = "9090"
	defaultServiceName = "afl-tipping-service"
)

// Defaults returns the baseline configuration before file/env layering.
func Defaults(now time.Time) Config {
	return Config{
		Port:                   defaultPort,
		RefreshIntervalSeconds: int(defaultRefreshInterval / time.Second),
		Season:                 now.Year(),
		Provider:               defaultProvider,
		LogoBaseURL:            defaultLogoBaseURL,
		LogLevel:               "info",
		LogFormat:              "text",
		Squiggle: SquiggleConfig{
			BaseURL:   defaultSquiggleBaseURL,
			UserAgent: defaultUserAgent,
			Timeout:   defaultFetchTimeout,
		},
		Odds: OddsConfig{
			Enabled:     false,
			BaseURL:     defaultOddsBaseURL,
			SportKey:    defaultSportKey,
			Region:      defaultOddsRegion,
			Market:      defaultOddsMarket,
			Timeout:     defaultFetchTimeout,
			MinInterval: defaultOddsMinInterval,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Port:        defaultMetricsPort,
			ServiceName: defaultServiceName,
		},
	}
}
