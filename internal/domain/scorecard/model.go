package scorecard

// BatterRecord is one row of a batting block, immutable once parsed.
type BatterRecord struct {
	ID         string
	Name       string
	Team       string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
	IsOut      bool
}

// BowlerRecord is one row of a bowling block. Overs carry the legal-ball
// fraction in sixths, so "9.1" parses to 9 + 1/6.
type BowlerRecord struct {
	ID           string
	Name         string
	Team         string
	Overs        float64
	RunsConceded int
	Wickets      int
	Economy      float64
}

// MatchInfo is populated incrementally as matching lines are found.
// Fields stay at their zero values when the scorecard never mentions them.
type MatchInfo struct {
	Team1Name     string
	Team2Name     string
	Team1Score    string
	Team2Score    string
	Winner        string
	PlayerOfMatch string
	Date          string
}

// Parsed is the structured form of one scorecard.
type Parsed struct {
	Batters []BatterRecord
	Bowlers []BowlerRecord
	Info    MatchInfo
}

// Score is a decomposed "runs/wickets (overs)" team total.
type Score struct {
	Runs    int
	Wickets int
	Overs   float64
}
