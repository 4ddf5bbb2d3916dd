package memory

import (
	"context"
	"sync"

	"github.com/crichub/handcricket-stats/internal/domain/performance"
)

type performanceKey struct {
	matchID    int64
	playerName string
}

// PerformanceRepository keeps performance rows in process memory. Upserts
// reconcile by (match, player) with the domain merge, so re-imports fold
// into the existing row.
type PerformanceRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[performanceKey]performance.Performance
	order  []performanceKey
}

func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{items: make(map[performanceKey]performance.Performance)}
}

func (r *PerformanceRepository) Upsert(_ context.Context, p performance.Performance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := performanceKey{matchID: p.MatchID, playerName: p.PlayerName}
	if existing, ok := r.items[key]; ok {
		merged := performance.Merge(existing, p)
		merged.ID = existing.ID
		r.items[key] = merged
		return nil
	}

	r.nextID++
	p.ID = r.nextID
	r.items[key] = p
	r.order = append(r.order, key)
	return nil
}

func (r *PerformanceRepository) ListByTournament(_ context.Context, tournamentID int64) ([]performance.Performance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []performance.Performance
	for _, key := range r.order {
		if p := r.items[key]; p.TournamentID == tournamentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PerformanceRepository) ListByMatch(_ context.Context, matchID int64) ([]performance.Performance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []performance.Performance
	for _, key := range r.order {
		if key.matchID == matchID {
			out = append(out, r.items[key])
		}
	}
	return out, nil
}
