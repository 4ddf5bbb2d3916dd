package tournament

import "context"

// Repository owns the tournament entity graph. The store assigns ids on
// insert and callers must treat them as stable once returned: teams and
// matches are inserted before any result or performance that references
// their ids.
type Repository interface {
	CreateTournament(ctx context.Context, t Tournament) (int64, error)
	ListTournaments(ctx context.Context) ([]Tournament, error)
	GetTournament(ctx context.Context, id int64) (Tournament, bool, error)

	InsertTeams(ctx context.Context, teams []Team) ([]int64, error)
	ListTeams(ctx context.Context, tournamentID int64) ([]Team, error)

	InsertMatches(ctx context.Context, matches []Match) error
	ListMatches(ctx context.Context, tournamentID int64) ([]Match, error)
	GetMatch(ctx context.Context, matchID int64) (Match, bool, error)
	SetMatchWinner(ctx context.Context, matchID, winnerTeamID int64) error

	UpsertMatchResult(ctx context.Context, result MatchResult) error
	ListMatchResults(ctx context.Context, tournamentID int64) ([]MatchResult, error)
}
