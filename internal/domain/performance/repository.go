package performance

import "context"

// Repository persists performance rows. Upsert must reconcile by
// (matchID, playerName): when a row already exists the incoming contribution
// is folded in with Merge instead of inserting a duplicate.
type Repository interface {
	Upsert(ctx context.Context, p Performance) error
	ListByTournament(ctx context.Context, tournamentID int64) ([]Performance, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Performance, error)
}
