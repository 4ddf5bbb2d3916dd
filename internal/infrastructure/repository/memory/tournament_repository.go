package memory

import (
	"context"
	"sync"

	"github.com/crichub/handcricket-stats/internal/domain/tournament"
)

// TournamentRepository keeps the tournament graph in process memory. Ids are
// assigned once on insert and never reused, matching the stability contract
// the aggregator depends on.
type TournamentRepository struct {
	mu sync.RWMutex

	nextID int64

	tournaments     map[int64]tournament.Tournament
	tournamentOrder []int64

	teams     map[int64]tournament.Team
	teamOrder []int64

	matches    map[int64]tournament.Match
	matchOrder []int64

	// results keyed by match id, one reconciled row per match.
	results     map[int64]tournament.MatchResult
	resultOrder []int64
}

func NewTournamentRepository() *TournamentRepository {
	return &TournamentRepository{
		tournaments: make(map[int64]tournament.Tournament),
		teams:       make(map[int64]tournament.Team),
		matches:     make(map[int64]tournament.Match),
		results:     make(map[int64]tournament.MatchResult),
	}
}

func (r *TournamentRepository) allocateID() int64 {
	r.nextID++
	return r.nextID
}

func (r *TournamentRepository) CreateTournament(_ context.Context, t tournament.Tournament) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.allocateID()
	r.tournaments[t.ID] = t
	r.tournamentOrder = append(r.tournamentOrder, t.ID)
	return t.ID, nil
}

func (r *TournamentRepository) ListTournaments(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.tournamentOrder))
	for _, id := range r.tournamentOrder {
		out = append(out, r.tournaments[id])
	}
	return out, nil
}

func (r *TournamentRepository) GetTournament(_ context.Context, id int64) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tournaments[id]
	return t, ok, nil
}

func (r *TournamentRepository) InsertTeams(_ context.Context, teams []tournament.Team) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(teams))
	for _, team := range teams {
		team.ID = r.allocateID()
		r.teams[team.ID] = team
		r.teamOrder = append(r.teamOrder, team.ID)
		ids = append(ids, team.ID)
	}
	return ids, nil
}

func (r *TournamentRepository) ListTeams(_ context.Context, tournamentID int64) ([]tournament.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []tournament.Team
	for _, id := range r.teamOrder {
		if team := r.teams[id]; team.TournamentID == tournamentID {
			out = append(out, team)
		}
	}
	return out, nil
}

func (r *TournamentRepository) InsertMatches(_ context.Context, matches []tournament.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range matches {
		m.ID = r.allocateID()
		r.matches[m.ID] = m
		r.matchOrder = append(r.matchOrder, m.ID)
	}
	return nil
}

func (r *TournamentRepository) ListMatches(_ context.Context, tournamentID int64) ([]tournament.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []tournament.Match
	for _, id := range r.matchOrder {
		if m := r.matches[id]; m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *TournamentRepository) GetMatch(_ context.Context, matchID int64) (tournament.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	return m, ok, nil
}

func (r *TournamentRepository) SetMatchWinner(_ context.Context, matchID, winnerTeamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.matches[matchID]
	if !ok {
		return nil
	}
	m.WinnerTeamID = winnerTeamID
	r.matches[matchID] = m
	return nil
}

func (r *TournamentRepository) UpsertMatchResult(_ context.Context, result tournament.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.results[result.MatchID]
	if ok {
		result.ID = existing.ID
	} else {
		result.ID = r.allocateID()
		r.resultOrder = append(r.resultOrder, result.MatchID)
	}
	r.results[result.MatchID] = result
	return nil
}

func (r *TournamentRepository) ListMatchResults(_ context.Context, tournamentID int64) ([]tournament.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []tournament.MatchResult
	for _, matchID := range r.resultOrder {
		if res := r.results[matchID]; res.TournamentID == tournamentID {
			out = append(out, res)
		}
	}
	return out, nil
}
