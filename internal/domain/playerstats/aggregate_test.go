package playerstats

import (
	"math"
	"testing"

	"github.com/crichub/handcricket-stats/internal/domain/scorecard"
)

func batter(name string, runs, balls, fours, sixes int) scorecard.BatterRecord {
	return scorecard.BatterRecord{Name: name, Team: "India", Runs: runs, Balls: balls, Fours: fours, Sixes: sixes}
}

func bowler(name string, wickets, runs int, overs float64) scorecard.BowlerRecord {
	return scorecard.BowlerRecord{Name: name, Team: "India", Wickets: wickets, RunsConceded: runs, Overs: overs}
}

func TestFoldBatterAccumulates(t *testing.T) {
	t.Parallel()

	a := NewAggregate()
	a.FoldBatter(batter("virat", 62, 40, 5, 2), true)
	a.FoldBatter(batter("virat", 110, 55, 9, 6), true)
	a.FoldBatter(batter("virat", 4, 9, 0, 0), true)

	s, ok := a.Get("virat")
	if !ok {
		t.Fatal("expected virat to be tracked")
	}
	if s.Runs != 176 || s.Balls != 104 || s.Fours != 14 || s.Sixes != 8 {
		t.Fatalf("unexpected counters: %+v", s)
	}
	if s.HighestScore != 110 {
		t.Fatalf("expected highest score 110, got %d", s.HighestScore)
	}
	if s.Centuries != 1 || s.HalfCenturies != 1 {
		t.Fatalf("expected 1 century and 1 fifty, got %d/%d", s.Centuries, s.HalfCenturies)
	}
	if s.BattingInnings != 3 || s.Matches != 3 {
		t.Fatalf("expected 3 innings and 3 matches, got %d/%d", s.BattingInnings, s.Matches)
	}
}

func TestFoldOrderDoesNotChangeCounters(t *testing.T) {
	t.Parallel()

	recs := []scorecard.BatterRecord{
		batter("rohit", 45, 30, 6, 1),
		batter("rohit", 100, 61, 8, 4),
		batter("rohit", 0, 1, 0, 0),
	}

	forward := NewAggregate()
	for _, r := range recs {
		forward.FoldBatter(r, true)
	}
	backward := NewAggregate()
	for i := len(recs) - 1; i >= 0; i-- {
		backward.FoldBatter(recs[i], true)
	}

	f, _ := forward.Get("rohit")
	b, _ := backward.Get("rohit")
	if f != b {
		t.Fatalf("fold order changed result:\nforward  %+v\nbackward %+v", f, b)
	}
}

func TestBestBowlingPrefersFewerRunsOnEqualWickets(t *testing.T) {
	t.Parallel()

	a := NewAggregate()
	a.FoldBowler(bowler("bumrah", 3, 20, 4), true)
	a.FoldBowler(bowler("bumrah", 3, 15, 4), true)
	a.FoldBowler(bowler("bumrah", 2, 5, 4), true)

	s, _ := a.Get("bumrah")
	if s.BestBowling.Wickets != 3 || s.BestBowling.Runs != 15 {
		t.Fatalf("expected best 3/15, got %d/%d", s.BestBowling.Wickets, s.BestBowling.Runs)
	}
}

func TestBestBowlingFullTieKeepsFirstSeen(t *testing.T) {
	t.Parallel()

	a := NewAggregate()
	a.FoldBowler(bowler("shaheen", 3, 20, 4), true)
	a.FoldBowler(bowler("shaheen", 3, 20, 3), true)

	s, _ := a.Get("shaheen")
	if !s.BestBowling.Taken || s.BestBowling.Wickets != 3 || s.BestBowling.Runs != 20 {
		t.Fatalf("unexpected best bowling: %+v", s.BestBowling)
	}
}

func TestFinalizeDerivedRates(t *testing.T) {
	t.Parallel()

	a := NewAggregate()
	a.FoldBatter(batter("rizwan", 80, 50, 7, 2), true)
	a.FoldBowler(bowler("rizwan", 4, 24, 6), false)

	all := a.Finalize()
	if len(all) != 1 {
		t.Fatalf("expected one player, got %d", len(all))
	}
	s := all[0]
	if math.Abs(s.StrikeRate-160) > 1e-9 {
		t.Fatalf("expected strike rate 160, got %f", s.StrikeRate)
	}
	if math.Abs(s.BattingAverage-80) > 1e-9 {
		t.Fatalf("expected batting average 80, got %f", s.BattingAverage)
	}
	if math.Abs(s.BowlingAverage-6) > 1e-9 {
		t.Fatalf("expected bowling average 6, got %f", s.BowlingAverage)
	}
	if math.Abs(s.Economy-4) > 1e-9 {
		t.Fatalf("expected economy 4, got %f", s.Economy)
	}
	if s.Matches != 1 {
		t.Fatalf("expected 1 match, got %d", s.Matches)
	}
}

func TestZeroDenominatorsYieldZero(t *testing.T) {
	t.Parallel()

	if got := StrikeRate(10, 0); got != 0 {
		t.Fatalf("strike rate with zero balls: %f", got)
	}
	if got := BowlingAverage(30, 0); got != 0 {
		t.Fatalf("bowling average with zero wickets: %f", got)
	}
	if got := Economy(30, 0); got != 0 {
		t.Fatalf("economy with zero overs: %f", got)
	}
	if got := BattingAverage(25, 0); got != 25 {
		t.Fatalf("batting average clamps innings to 1, got %f", got)
	}
}
