package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/crichub/handcricket-stats/internal/domain/performance"
)

type PerformanceRepository struct {
	db *sqlx.DB
}

func NewPerformanceRepository(db *sqlx.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// Upsert reconciles by (match_id, player_name): an existing row is folded
// with the incoming contribution under the domain merge before writing back.
// The read and write run in one transaction with the row locked, so two
// imports of the same match cannot interleave their merges.
func (r *PerformanceRepository) Upsert(ctx context.Context, p performance.Performance) error {
	const selectQuery = `
		SELECT * FROM player_performances
		WHERE match_id = $1 AND player_name = $2
		FOR UPDATE`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin upsert performance")
	}
	defer func() { _ = tx.Rollback() }()

	var row performanceTableModel
	err = tx.GetContext(ctx, &row, selectQuery, p.MatchID, p.PlayerName)
	switch {
	case err == nil:
		merged := performance.Merge(performanceFromRow(row), p)
		merged.ID = row.ID
		if err := updatePerformance(ctx, tx, merged); err != nil {
			return err
		}
	case isNotFound(err):
		if err := insertPerformance(ctx, tx, p); err != nil {
			return err
		}
	default:
		return crerr.Wrap(err, "get performance")
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit upsert performance")
	}
	return nil
}

func insertPerformance(ctx context.Context, tx *sqlx.Tx, p performance.Performance) error {
	const query = `
		INSERT INTO player_performances (
			match_id, tournament_id, team_id, player_name,
			runs, balls, fours, sixes, strike_rate, is_out, has_batting,
			wickets, overs, runs_conceded, economy, has_bowling,
			played_on
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	args := performanceArgs(p)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "insert performance for %s", p.PlayerName)
	}
	return nil
}

func updatePerformance(ctx context.Context, tx *sqlx.Tx, p performance.Performance) error {
	const query = `
		UPDATE player_performances SET
			team_id = $3,
			runs = $5, balls = $6, fours = $7, sixes = $8,
			strike_rate = $9, is_out = $10, has_batting = $11,
			wickets = $12, overs = $13, runs_conceded = $14,
			economy = $15, has_bowling = $16,
			played_on = $17,
			updated_at = NOW()
		WHERE match_id = $1 AND player_name = $4 AND tournament_id = $2`

	args := performanceArgs(p)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "update performance for %s", p.PlayerName)
	}
	return nil
}

func performanceArgs(p performance.Performance) []any {
	args := []any{
		p.MatchID,
		p.TournamentID,
		int64ToNullInt64(p.TeamID),
		p.PlayerName,
	}
	if b := p.Batting; b != nil {
		args = append(args, b.Runs, b.Balls, b.Fours, b.Sixes, b.StrikeRate, b.IsOut, true)
	} else {
		args = append(args, nil, nil, nil, nil, nil, nil, false)
	}
	if w := p.Bowling; w != nil {
		args = append(args, w.Wickets, w.Overs, w.RunsConceded, w.Economy, true)
	} else {
		args = append(args, nil, nil, nil, nil, false)
	}
	return append(args, stringToNullString(p.Date))
}

func (r *PerformanceRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]performance.Performance, error) {
	const query = `SELECT * FROM player_performances WHERE tournament_id = $1 ORDER BY id`

	var rows []performanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, crerr.Wrap(err, "select performances")
	}
	return performancesFromRows(rows), nil
}

func (r *PerformanceRepository) ListByMatch(ctx context.Context, matchID int64) ([]performance.Performance, error) {
	const query = `SELECT * FROM player_performances WHERE match_id = $1 ORDER BY id`

	var rows []performanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID); err != nil {
		return nil, crerr.Wrap(err, "select performances by match")
	}
	return performancesFromRows(rows), nil
}

func performancesFromRows(rows []performanceTableModel) []performance.Performance {
	out := make([]performance.Performance, 0, len(rows))
	for _, row := range rows {
		out = append(out, performanceFromRow(row))
	}
	return out
}

func performanceFromRow(row performanceTableModel) performance.Performance {
	p := performance.Performance{
		ID:           row.ID,
		MatchID:      row.MatchID,
		TournamentID: row.TournamentID,
		TeamID:       nullInt64ToInt64(row.TeamID),
		PlayerName:   row.PlayerName,
		Date:         nullStringToString(row.PlayedOn),
	}
	if row.HasBatting {
		p.Batting = &performance.Batting{
			Runs:       int(nullInt64ToInt64(row.Runs)),
			Balls:      int(nullInt64ToInt64(row.Balls)),
			Fours:      int(nullInt64ToInt64(row.Fours)),
			Sixes:      int(nullInt64ToInt64(row.Sixes)),
			StrikeRate: row.StrikeRate.Float64,
			IsOut:      row.IsOut.Bool,
		}
	}
	if row.HasBowling {
		p.Bowling = &performance.Bowling{
			Wickets:      int(nullInt64ToInt64(row.Wickets)),
			Overs:        row.Overs.Float64,
			RunsConceded: int(nullInt64ToInt64(row.RunsConceded)),
			Economy:      row.Economy.Float64,
		}
	}
	return p
}
