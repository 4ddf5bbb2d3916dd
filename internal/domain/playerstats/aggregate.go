package playerstats

import "github.com/crichub/handcricket-stats/internal/domain/scorecard"

// Aggregate folds per-match records into cumulative per-player Stats.
// Counters are added field by field, so the fold is commutative and
// associative; only the BestBowling full-tie keeps fold order relevant and
// that is pinned to "first seen wins". Records are rebuilt from scratch for
// every computation pass, never mutated across passes.
type Aggregate struct {
	byName map[string]*Stats
	order  []string
}

func NewAggregate() *Aggregate {
	return &Aggregate{byName: make(map[string]*Stats)}
}

func (a *Aggregate) stats(name, team string) *Stats {
	s, ok := a.byName[name]
	if !ok {
		s = &Stats{Name: name, Team: team}
		a.byName[name] = s
		a.order = append(a.order, name)
	}
	if s.Team == "" {
		s.Team = team
	}
	return s
}

// FoldBatter merges one batting record. Century and half-century thresholds
// are judged on the record alone, not on the cumulative total.
func (a *Aggregate) FoldBatter(rec scorecard.BatterRecord, hasMatch bool) {
	s := a.stats(rec.Name, rec.Team)

	s.Runs += rec.Runs
	s.Balls += rec.Balls
	s.Fours += rec.Fours
	s.Sixes += rec.Sixes
	s.BattingInnings++
	if rec.Runs > s.HighestScore {
		s.HighestScore = rec.Runs
	}
	switch {
	case rec.Runs >= 100:
		s.Centuries++
	case rec.Runs >= 50:
		s.HalfCenturies++
	}
	if hasMatch {
		s.Matches++
	}
}

// FoldBowler merges one bowling record.
func (a *Aggregate) FoldBowler(rec scorecard.BowlerRecord, hasMatch bool) {
	s := a.stats(rec.Name, rec.Team)

	s.Wickets += rec.Wickets
	s.Overs += rec.Overs
	s.RunsGiven += rec.RunsConceded
	s.BowlingInnings++

	candidate := BestBowling{Wickets: rec.Wickets, Runs: rec.RunsConceded, Taken: true}
	if candidate.BetterThan(s.BestBowling) {
		s.BestBowling = candidate
	}
	if hasMatch {
		s.Matches++
	}
}

// Finalize fills the derived fields and returns players in first-seen order.
func (a *Aggregate) Finalize() []Stats {
	out := make([]Stats, 0, len(a.order))
	for _, name := range a.order {
		s := *a.byName[name]
		s.StrikeRate = StrikeRate(s.Runs, s.Balls)
		s.BattingAverage = BattingAverage(s.Runs, s.BattingInnings)
		s.BowlingAverage = BowlingAverage(s.RunsGiven, s.Wickets)
		s.Economy = Economy(s.RunsGiven, s.Overs)
		out = append(out, s)
	}
	return out
}

// Get returns the cumulative record for a player name.
func (a *Aggregate) Get(name string) (Stats, bool) {
	s, ok := a.byName[name]
	if !ok {
		return Stats{}, false
	}
	return *s, true
}

func (a *Aggregate) Len() int {
	return len(a.byName)
}
