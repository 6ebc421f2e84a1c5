package server

import (
	"log/slog"

	"afl-tipping-service/internal/config"
	"afl-tipping-service/internal/providers"
	"afl-tipping-service/internal/providers/fixture"
	"afl-tipping-service/internal/providers/squiggle"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "squiggle", "":
		return squiggle.NewClient(squiggle.Config{
			BaseURL:   cfg.Squiggle.BaseURL,
			UserAgent: cfg.Squiggle.UserAgent,
			Timeout:   cfg.Squiggle.Timeout,
		}, logger)
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// selectOddsProvider returns nil when the aggregator is not configured; the
// poller then builds the sheet without odds.
func selectOddsProvider(cfg config.Config, logger *slog.Logger) providers.OddsProvider {
	if cfg.Provider == "fixture" {
		return fixture.New()
	}
	if !cfg.Odds.Enabled || cfg.Odds.APIKey == "" {
		return nil
	}
	return theoddsClient(cfg, logger)
}
