package server

import (
	"log/slog"

	"afl-tipping-service/internal/config"
	"afl-tipping-service/internal/metrics"
	"afl-tipping-service/internal/providers"
	"afl-tipping-service/internal/providers/theodds"
)

// providerFactory assembles providers with shared decorators (retry, odds
// rate limiting).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

func (f providerFactory) buildOdds(cfg config.Config) providers.OddsProvider {
	base := selectOddsProvider(cfg, f.logger)
	if base == nil {
		return nil
	}
	// The aggregator quota is far smaller than the refresh cadence; cache
	// between calls instead of refetching every cycle.
	return providers.NewRateLimitedOdds(base, cfg.Odds.MinInterval, f.logger)
}

func theoddsClient(cfg config.Config, logger *slog.Logger) providers.OddsProvider {
	return theodds.NewClient(theodds.Config{
		BaseURL:  cfg.Odds.BaseURL,
		APIKey:   cfg.Odds.APIKey,
		SportKey: cfg.Odds.SportKey,
		Region:   cfg.Odds.Region,
		Market:   cfg.Odds.Market,
		Timeout:  cfg.Odds.Timeout,
	}, logger)
}
