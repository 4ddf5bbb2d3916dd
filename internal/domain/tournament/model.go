package tournament

import "fmt"

// Format selects how the match list is generated.
type Format string

const (
	FormatRoundRobin Format = "RoundRobin"
	FormatGroups     Format = "Groups"
)

// MatchType tags how a match was scheduled.
type MatchType string

const (
	MatchTypeRoundRobin MatchType = "RoundRobin"
	MatchTypeGroup      MatchType = "Group"
)

type Tournament struct {
	ID     int64
	Name   string
	Format Format
}

type Team struct {
	ID           int64
	TournamentID int64
	Name         string
	GroupName    string
}

// Match references teams by their store-assigned ids. WinnerTeamID is zero
// until a result is imported.
type Match struct {
	ID           int64
	TournamentID int64
	TeamAID      int64
	TeamBID      int64
	MatchType    MatchType
	WinnerTeamID int64
}

// MatchResult is one imported scorecard outcome. Scores keep the raw
// "runs/wickets (overs)" strings from the export.
type MatchResult struct {
	ID            int64
	MatchID       int64
	TournamentID  int64
	Team1ID       int64
	Team2ID       int64
	Team1Score    string
	Team2Score    string
	WinnerTeamID  int64
	PlayerOfMatch string
	Date          string
	MatchType     MatchType
}

func (t Tournament) ValidateBasic() error {
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	switch t.Format {
	case FormatRoundRobin, FormatGroups:
	default:
		return fmt.Errorf("unknown tournament format %q", t.Format)
	}
	return nil
}
