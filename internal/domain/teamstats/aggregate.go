package teamstats

import "github.com/crichub/handcricket-stats/internal/domain/scorecard"

// MatchOutcome is one completed match seen from both sides.
type MatchOutcome struct {
	Team1  string
	Team2  string
	Score1 scorecard.Score
	Score2 scorecard.Score
	// Winner is a team name, or empty when the scorecard never named one.
	Winner string
}

// Aggregate folds match outcomes into per-team standing lines. Both sides of
// a match are credited reciprocally: team1's runs for are team2's runs
// against, and so on.
type Aggregate struct {
	byName map[string]*Stats
	order  []string
}

func NewAggregate() *Aggregate {
	return &Aggregate{byName: make(map[string]*Stats)}
}

func (a *Aggregate) stats(name string) *Stats {
	s, ok := a.byName[name]
	if !ok {
		s = &Stats{Name: name}
		a.byName[name] = s
		a.order = append(a.order, name)
	}
	return s
}

// Fold merges one match into both teams' lines. A win is worth 2 points; a
// tie or a scorecard with no named winner is worth 1 point to each side.
func (a *Aggregate) Fold(m MatchOutcome) {
	t1 := a.stats(m.Team1)
	t2 := a.stats(m.Team2)

	t1.Matches++
	t2.Matches++

	t1.RunsFor += m.Score1.Runs
	t1.OversFaced += m.Score1.Overs
	t1.WicketsLost += m.Score1.Wickets
	t1.RunsAgainst += m.Score2.Runs
	t1.OversBowled += m.Score2.Overs
	t1.WicketsTaken += m.Score2.Wickets

	t2.RunsFor += m.Score2.Runs
	t2.OversFaced += m.Score2.Overs
	t2.WicketsLost += m.Score2.Wickets
	t2.RunsAgainst += m.Score1.Runs
	t2.OversBowled += m.Score1.Overs
	t2.WicketsTaken += m.Score1.Wickets

	switch m.Winner {
	case m.Team1:
		t1.Wins++
		t1.Points += 2
		t2.Losses++
	case m.Team2:
		t2.Wins++
		t2.Points += 2
		t1.Losses++
	default:
		t1.Points++
		t2.Points++
	}
}

// Finalize recomputes derived rates and returns teams in first-seen order.
func (a *Aggregate) Finalize() []Stats {
	out := make([]Stats, 0, len(a.order))
	for _, name := range a.order {
		s := *a.byName[name]
		s.NetRunRate = NetRunRate(s.RunsFor, s.OversFaced, s.RunsAgainst, s.OversBowled)
		out = append(out, s)
	}
	return out
}

// Get returns the standing line for one team name.
func (a *Aggregate) Get(name string) (Stats, bool) {
	s, ok := a.byName[name]
	if !ok {
		return Stats{}, false
	}
	s2 := *s
	s2.NetRunRate = NetRunRate(s2.RunsFor, s2.OversFaced, s2.RunsAgainst, s2.OversBowled)
	return s2, true
}
