package playerstats

// BestBowling orders innings figures by more wickets, then fewer runs
// conceded. On a full tie the earliest folded figures are kept, which makes
// repeated folds deterministic for a fixed fold order.
type BestBowling struct {
	Wickets int
	Runs    int
	Taken   bool
}

// BetterThan reports whether b beats other under the bowling ordering.
func (b BestBowling) BetterThan(other BestBowling) bool {
	if !b.Taken {
		return false
	}
	if !other.Taken {
		return true
	}
	if b.Wickets != other.Wickets {
		return b.Wickets > other.Wickets
	}
	return b.Runs < other.Runs
}

// Stats is one player's cumulative tournament record. It is keyed by player
// name; the same name on two teams collapses into one record, a known
// limitation of the source data.
type Stats struct {
	Name string
	Team string

	Runs           int
	Balls          int
	Fours          int
	Sixes          int
	HighestScore   int
	Centuries      int
	HalfCenturies  int
	BattingInnings int

	Wickets        int
	Overs          float64
	RunsGiven      int
	BestBowling    BestBowling
	BowlingInnings int

	Matches int

	StrikeRate     float64
	BattingAverage float64
	BowlingAverage float64
	Economy        float64
	FantasyPoints  int
}
