package theodds

import (
	"strings"
	"time"

	"afl-tipping-service/internal/domain"
)

// mapEvents extracts home/away prices for the requested market. The first
// bookmaker carrying the market wins; events without usable prices or team
// names are dropped.
func mapEvents(events []eventResponse, market string) []domain.MatchOdds {
	odds := make([]domain.MatchOdds, 0, len(events))
	for _, ev := range events {
		home := strings.TrimSpace(ev.HomeTeam)
		away := strings.TrimSpace(ev.AwayTeam)
		if home == "" || away == "" {
			continue
		}

		homePrice, awayPrice, bookmaker, ok := extractPrices(ev, market)
		if !ok {
			continue
		}

		start, _ := time.Parse(time.RFC3339, ev.CommenceTime)

		odds = append(odds, domain.MatchOdds{
			HomeTeam:  home,
			AwayTeam:  away,
			Start:     start,
			HomeOdds:  homePrice,
			AwayOdds:  awayPrice,
			Bookmaker: bookmaker,
		})
	}
	return odds
}

func extractPrices(ev eventResponse, market string) (home, away float64, bookmaker string, ok bool) {
	for _, bk := range ev.Bookmakers {
		for _, mk := range bk.Markets {
			if !strings.EqualFold(mk.Key, market) {
				continue
			}
			var homePrice, awayPrice float64
			for _, out := range mk.Outcomes {
				switch {
				case strings.EqualFold(out.Name, ev.HomeTeam):
					homePrice = out.Price
				case strings.EqualFold(out.Name, ev.AwayTeam):
					awayPrice = out.Price
				}
			}
			if homePrice > 0 && awayPrice > 0 {
				name := bk.Title
				if name == "" {
					name = bk.Key
				}
				return homePrice, awayPrice, name, true
			}
		}
	}
	return 0, 0, "", false
}
