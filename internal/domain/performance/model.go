package performance

// Role tags which contributions a performance row carries. It is always
// derived from the contribution data itself, never set independently, so
// re-imports cannot leave a row claiming a role its counters do not back.
type Role string

const (
	RoleBatter     Role = "batter"
	RoleBowler     Role = "bowler"
	RoleAllRounder Role = "all-rounder"
)

// Batting is the batting half of a performance.
type Batting struct {
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
	IsOut      bool
}

// Bowling is the bowling half of a performance. Overs carry the legal-ball
// fraction in sixths.
type Bowling struct {
	Wickets      int
	Overs        float64
	RunsConceded int
	Economy      float64
}

// Performance is one player's contribution to one match. Batting and
// Bowling are nil when that half is absent; at least one is always set for
// a stored row.
type Performance struct {
	ID           int64
	MatchID      int64
	TournamentID int64
	TeamID       int64
	PlayerName   string
	Batting      *Batting
	Bowling      *Bowling
	Date         string
}

// Role reports the row's role from its contributions.
func (p Performance) Role() Role {
	switch {
	case p.Batting != nil && p.Bowling != nil:
		return RoleAllRounder
	case p.Bowling != nil:
		return RoleBowler
	default:
		return RoleBatter
	}
}

func (p Performance) HasBatting() bool { return p.Batting != nil }
func (p Performance) HasBowling() bool { return p.Bowling != nil }
