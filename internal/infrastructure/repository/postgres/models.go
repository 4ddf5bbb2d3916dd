package postgres

import (
	"database/sql"
	"time"
)

type tournamentTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Format    string    `db:"format"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamTableModel struct {
	ID           int64          `db:"id"`
	TournamentID int64          `db:"tournament_id"`
	Name         string         `db:"name"`
	GroupName    sql.NullString `db:"group_name"`
	CreatedAt    time.Time      `db:"created_at"`
}

type matchTableModel struct {
	ID           int64         `db:"id"`
	TournamentID int64         `db:"tournament_id"`
	TeamAID      int64         `db:"team_a_id"`
	TeamBID      int64         `db:"team_b_id"`
	MatchType    string        `db:"match_type"`
	WinnerTeamID sql.NullInt64 `db:"winner_team_id"`
	CreatedAt    time.Time     `db:"created_at"`
}

type matchResultTableModel struct {
	ID            int64          `db:"id"`
	MatchID       int64          `db:"match_id"`
	TournamentID  int64          `db:"tournament_id"`
	Team1ID       int64          `db:"team1_id"`
	Team2ID       int64          `db:"team2_id"`
	Team1Score    string         `db:"team1_score"`
	Team2Score    string         `db:"team2_score"`
	WinnerTeamID  sql.NullInt64  `db:"winner_team_id"`
	PlayerOfMatch sql.NullString `db:"player_of_match"`
	PlayedOn      sql.NullString `db:"played_on"`
	MatchType     string         `db:"match_type"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type performanceTableModel struct {
	ID           int64           `db:"id"`
	MatchID      int64           `db:"match_id"`
	TournamentID int64           `db:"tournament_id"`
	TeamID       sql.NullInt64   `db:"team_id"`
	PlayerName   string          `db:"player_name"`
	Runs         sql.NullInt64   `db:"runs"`
	Balls        sql.NullInt64   `db:"balls"`
	Fours        sql.NullInt64   `db:"fours"`
	Sixes        sql.NullInt64   `db:"sixes"`
	StrikeRate   sql.NullFloat64 `db:"strike_rate"`
	IsOut        sql.NullBool    `db:"is_out"`
	HasBatting   bool            `db:"has_batting"`
	Wickets      sql.NullInt64   `db:"wickets"`
	Overs        sql.NullFloat64 `db:"overs"`
	RunsConceded sql.NullInt64   `db:"runs_conceded"`
	Economy      sql.NullFloat64 `db:"economy"`
	HasBowling   bool            `db:"has_bowling"`
	PlayedOn     sql.NullString  `db:"played_on"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type dictionaryTableModel struct {
	ID         int64     `db:"id"`
	Serialized string    `db:"serialized"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func nullInt64ToInt64(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

func nullStringToString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func int64ToNullInt64(v int64) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

func stringToNullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
