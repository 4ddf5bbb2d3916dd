package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/crichub/handcricket-stats/internal/domain/tournament"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) CreateTournament(ctx context.Context, t tournament.Tournament) (int64, error) {
	const query = `
		INSERT INTO tournaments (name, format)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	if err := r.db.GetContext(ctx, &id, query, t.Name, string(t.Format)); err != nil {
		return 0, crerr.Wrap(err, "insert tournament")
	}
	return id, nil
}

func (r *TournamentRepository) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	const query = `SELECT * FROM tournaments ORDER BY id`

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "select tournaments")
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournament.Tournament{
			ID:     row.ID,
			Name:   row.Name,
			Format: tournament.Format(row.Format),
		})
	}
	return out, nil
}

func (r *TournamentRepository) GetTournament(ctx context.Context, id int64) (tournament.Tournament, bool, error) {
	const query = `SELECT * FROM tournaments WHERE id = $1`

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, crerr.Wrap(err, "get tournament")
	}
	return tournament.Tournament{
		ID:     row.ID,
		Name:   row.Name,
		Format: tournament.Format(row.Format),
	}, true, nil
}

func (r *TournamentRepository) InsertTeams(ctx context.Context, teams []tournament.Team) ([]int64, error) {
	const query = `
		INSERT INTO teams (tournament_id, name, group_name)
		VALUES ($1, $2, $3)
		RETURNING id`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "begin insert teams")
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]int64, 0, len(teams))
	for _, team := range teams {
		var id int64
		if err := tx.GetContext(ctx, &id, query, team.TournamentID, team.Name, stringToNullString(team.GroupName)); err != nil {
			return nil, crerr.Wrapf(err, "insert team %s", team.Name)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, crerr.Wrap(err, "commit insert teams")
	}
	return ids, nil
}

func (r *TournamentRepository) ListTeams(ctx context.Context, tournamentID int64) ([]tournament.Team, error) {
	const query = `SELECT * FROM teams WHERE tournament_id = $1 ORDER BY id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, crerr.Wrap(err, "select teams")
	}

	out := make([]tournament.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournament.Team{
			ID:           row.ID,
			TournamentID: row.TournamentID,
			Name:         row.Name,
			GroupName:    nullStringToString(row.GroupName),
		})
	}
	return out, nil
}

func (r *TournamentRepository) InsertMatches(ctx context.Context, matches []tournament.Match) error {
	const query = `
		INSERT INTO matches (tournament_id, team_a_id, team_b_id, match_type)
		VALUES ($1, $2, $3, $4)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin insert matches")
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range matches {
		if _, err := tx.ExecContext(ctx, query, m.TournamentID, m.TeamAID, m.TeamBID, string(m.MatchType)); err != nil {
			return crerr.Wrapf(err, "insert match %d vs %d", m.TeamAID, m.TeamBID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit insert matches")
	}
	return nil
}

func (r *TournamentRepository) ListMatches(ctx context.Context, tournamentID int64) ([]tournament.Match, error) {
	const query = `SELECT * FROM matches WHERE tournament_id = $1 ORDER BY id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]tournament.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *TournamentRepository) GetMatch(ctx context.Context, matchID int64) (tournament.Match, bool, error) {
	const query = `SELECT * FROM matches WHERE id = $1`

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return tournament.Match{}, false, nil
		}
		return tournament.Match{}, false, crerr.Wrap(err, "get match")
	}
	return matchFromRow(row), true, nil
}

func (r *TournamentRepository) SetMatchWinner(ctx context.Context, matchID, winnerTeamID int64) error {
	const query = `UPDATE matches SET winner_team_id = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, matchID, int64ToNullInt64(winnerTeamID)); err != nil {
		return crerr.Wrap(err, "set match winner")
	}
	return nil
}

func (r *TournamentRepository) UpsertMatchResult(ctx context.Context, result tournament.MatchResult) error {
	const query = `
		INSERT INTO match_results (
			match_id, tournament_id, team1_id, team2_id,
			team1_score, team2_score, winner_team_id,
			player_of_match, played_on, match_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (match_id) DO UPDATE SET
			team1_id = EXCLUDED.team1_id,
			team2_id = EXCLUDED.team2_id,
			team1_score = EXCLUDED.team1_score,
			team2_score = EXCLUDED.team2_score,
			winner_team_id = EXCLUDED.winner_team_id,
			player_of_match = EXCLUDED.player_of_match,
			played_on = EXCLUDED.played_on,
			match_type = EXCLUDED.match_type,
			updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		result.MatchID,
		result.TournamentID,
		result.Team1ID,
		result.Team2ID,
		result.Team1Score,
		result.Team2Score,
		int64ToNullInt64(result.WinnerTeamID),
		stringToNullString(result.PlayerOfMatch),
		stringToNullString(result.Date),
		string(result.MatchType),
	)
	if err != nil {
		return crerr.Wrap(err, "upsert match result")
	}
	return nil
}

func (r *TournamentRepository) ListMatchResults(ctx context.Context, tournamentID int64) ([]tournament.MatchResult, error) {
	const query = `SELECT * FROM match_results WHERE tournament_id = $1 ORDER BY match_id`

	var rows []matchResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, crerr.Wrap(err, "select match results")
	}

	out := make([]tournament.MatchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournament.MatchResult{
			ID:            row.ID,
			MatchID:       row.MatchID,
			TournamentID:  row.TournamentID,
			Team1ID:       row.Team1ID,
			Team2ID:       row.Team2ID,
			Team1Score:    row.Team1Score,
			Team2Score:    row.Team2Score,
			WinnerTeamID:  nullInt64ToInt64(row.WinnerTeamID),
			PlayerOfMatch: nullStringToString(row.PlayerOfMatch),
			Date:          nullStringToString(row.PlayedOn),
			MatchType:     tournament.MatchType(row.MatchType),
		})
	}
	return out, nil
}

func matchFromRow(row matchTableModel) tournament.Match {
	return tournament.Match{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		TeamAID:      row.TeamAID,
		TeamBID:      row.TeamBID,
		MatchType:    tournament.MatchType(row.MatchType),
		WinnerTeamID: nullInt64ToInt64(row.WinnerTeamID),
	}
}
