package squiggle

import "time"

const providerName = "squiggle"

const (
	defaultBaseURL = "https://api.squiggle.com.au"
	defaultTimeout = 15 * time.Second
)

const (
	queryTeams  = "teams"
	queryGames  = "games"
	queryTips   = "tips"
	queryScores = "scores"
)
