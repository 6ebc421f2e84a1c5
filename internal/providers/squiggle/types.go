package squiggle

// Envelope shapes for the Squiggle API: every query returns a single-key
// object named after the query kind.

type teamsResponse struct {
	Teams []teamRecord `json:"teams"`
}

type gamesResponse struct {
	Games []gameRecord `json:"games"`
}

type tipsResponse struct {
	Tips []tipRecord `json:"tips"`
}

type scoresResponse struct {
	Scores []scoreRecord `json:"scores"`
}

type teamRecord struct {
	ID     *int   `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

// gameRecord keeps required join fields as pointers so missing keys can be
// told apart from zero values.
type gameRecord struct {
	ID    *int   `json:"id"`
	Round *int   `json:"round"`
	Date  string `json:"date"`
	// TZ is the venue's utc offset ("+11:00"); Date is local to it.
	TZ         string `json:"tz"`
	Venue      string `json:"venue"`
	HomeTeamID *int   `json:"hteamid"`
	AwayTeamID *int   `json:"ateamid"`
	HomeTeam   string `json:"hteam"`
	AwayTeam   string `json:"ateam"`
	Preview    string `json:"preview"`
	Winner     string `json:"winner"`
	Complete   int    `json:"complete"`
}

type tipRecord struct {
	GameID     *int     `json:"gameid"`
	Source     string   `json:"source"`
	HomeTeam   string   `json:"hteam"`
	AwayTeam   string   `json:"ateam"`
	Tip        string   `json:"tip"`
	Confidence *float64 `json:"confidence"`
	Margin     *float64 `json:"margin"`
}

type scoreRecord struct {
	GameID    *int   `json:"gameid"`
	HomeScore *int   `json:"hscore"`
	AwayScore *int   `json:"ascore"`
	Complete  int    `json:"complete"`
	Winner    string `json:"winner"`
}
