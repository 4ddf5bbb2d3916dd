package fantasy

import (
	"testing"

	"github.com/crichub/handcricket-stats/internal/domain/performance"
	"github.com/crichub/handcricket-stats/internal/domain/playerstats"
)

func TestCumulativePointsBattingOnly(t *testing.T) {
	t.Parallel()

	s := playerstats.Stats{
		Runs:          120,
		Fours:         10,
		Sixes:         5,
		Centuries:     1,
		HalfCenturies: 0,
	}
	// 120 + 10 + 2*5 + 16; no overs so no economy bonus.
	if got := CumulativePoints(s, DefaultRules()); got != 156 {
		t.Fatalf("expected 156 points, got %d", got)
	}
}

func TestCumulativePointsEconomyTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		economy float64
		overs   float64
		want    int
	}{
		{"under six", 5.5, 10, 20},
		{"under eight", 7.9, 10, 10},
		{"between eight and ten", 9.0, 10, 0},
		{"over ten", 11.2, 10, -10},
		{"never bowled", 0, 0, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := playerstats.Stats{Overs: tc.overs, Economy: tc.economy}
			if got := CumulativePoints(s, DefaultRules()); got != tc.want {
				t.Fatalf("expected %d points, got %d", tc.want, got)
			}
		})
	}
}

func TestPerformancePointsBattingTiers(t *testing.T) {
	t.Parallel()

	p := performance.Performance{
		Batting: &performance.Batting{Runs: 105, Balls: 50, StrikeRate: 210},
	}
	// 105 runs + 50 century bonus + 20 strike-rate bonus.
	if got := PerformancePoints(p, DefaultPerformanceRules()); got != 175 {
		t.Fatalf("expected 175 points, got %d", got)
	}
}

func TestPerformancePointsStrikeRateNeedsBalls(t *testing.T) {
	t.Parallel()

	p := performance.Performance{
		Batting: &performance.Batting{Runs: 18, Balls: 6, StrikeRate: 300},
	}
	if got := PerformancePoints(p, DefaultPerformanceRules()); got != 18 {
		t.Fatalf("expected no strike-rate bonus under 10 balls, got %d", got)
	}
}

func TestPerformancePointsBowling(t *testing.T) {
	t.Parallel()

	p := performance.Performance{
		Bowling: &performance.Bowling{Wickets: 5, Overs: 4, RunsConceded: 18, Economy: 4.5},
	}
	// 5*25 + haul bonuses 20+30 (a five-for also clears the three-wicket
	// mark) + economy under six 25.
	if got := PerformancePoints(p, DefaultPerformanceRules()); got != 200 {
		t.Fatalf("expected 200 points, got %d", got)
	}
}

func TestPerformancePointsHaulBonusesStack(t *testing.T) {
	t.Parallel()

	p := performance.Performance{
		Bowling: &performance.Bowling{Wickets: 5, Overs: 1, RunsConceded: 5, Economy: 5},
	}
	// 5*25 + 20 + 30; under 2 overs so no economy bonus.
	if got := PerformancePoints(p, DefaultPerformanceRules()); got != 175 {
		t.Fatalf("expected 175 points, got %d", got)
	}
}

func TestPerformancePointsBoundaries(t *testing.T) {
	t.Parallel()

	p := performance.Performance{
		Batting: &performance.Batting{Runs: 20, Fours: 4, Sixes: 2},
	}
	// 20 runs + 4 fours + 2*2 sixes; under 30 runs so no milestone bonus.
	if got := PerformancePoints(p, DefaultPerformanceRules()); got != 28 {
		t.Fatalf("expected 28 points, got %d", got)
	}
}

func TestPerformancePointsEconomyNeedsOvers(t *testing.T) {
	t.Parallel()

	p := performance.Performance{
		Bowling: &performance.Bowling{Wickets: 1, Overs: 1, RunsConceded: 2, Economy: 2},
	}
	if got := PerformancePoints(p, DefaultPerformanceRules()); got != 25 {
		t.Fatalf("expected wicket points only under 2 overs, got %d", got)
	}
}

func TestPerformancePointsAllRounder(t *testing.T) {
	t.Parallel()

	p := performance.Performance{
		Batting: &performance.Batting{Runs: 34, Balls: 20, StrikeRate: 170},
		Bowling: &performance.Bowling{Wickets: 3, Overs: 4, RunsConceded: 30, Economy: 7.5},
	}
	// Batting: 34 + 10 + 15. Bowling: 75 + 20 + 15.
	if got := PerformancePoints(p, DefaultPerformanceRules()); got != 169 {
		t.Fatalf("expected 169 points, got %d", got)
	}
}
