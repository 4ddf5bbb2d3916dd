package fantasy

import (
	"github.com/crichub/handcricket-stats/internal/domain/performance"
	"github.com/crichub/handcricket-stats/internal/domain/playerstats"
)

// CumulativePoints scores a player's career totals with the given rules.
// The economy bonus only applies to players who have bowled at all.
func CumulativePoints(s playerstats.Stats, rules Rules) int {
	pts := s.Runs*rules.RunPoints +
		s.Fours*rules.FourPoints +
		s.Sixes*rules.SixPoints +
		s.Centuries*rules.CenturyPoints +
		s.HalfCenturies*rules.HalfCenturyPoints +
		s.Wickets*rules.WicketPoints

	if s.Overs > 0 {
		switch {
		case s.Economy < 6:
			pts += rules.EconomyUnderSix
		case s.Economy < 8:
			pts += rules.EconomyUnderEight
		case s.Economy > 10:
			pts += rules.EconomyOverTenMalus
		}
	}
	return pts
}

// PerformancePoints scores a single match performance with the given rules.
// Milestone, strike-rate and economy tiers are exclusive within their group;
// only the highest reached tier counts. Wicket-haul bonuses stack, so a
// five-for earns both the three-wicket and the five-wicket bonus.
func PerformancePoints(p performance.Performance, rules PerformanceRules) int {
	var pts int

	if b := p.Batting; b != nil {
		pts += b.Runs + b.Fours*rules.FourPoints + b.Sixes*rules.SixPoints
		switch {
		case b.Runs >= 100:
			pts += rules.CenturyBonus
		case b.Runs >= 50:
			pts += rules.HalfCenturyBonus
		case b.Runs >= 30:
			pts += rules.ThirtyBonus
		}
		if b.Balls >= rules.SRMinBalls {
			switch {
			case b.StrikeRate >= 200:
				pts += rules.SRTwoHundredBonus
			case b.StrikeRate >= 150:
				pts += rules.SROneFiftyBonus
			case b.StrikeRate >= 120:
				pts += rules.SROneTwentyBonus
			}
		}
	}

	if w := p.Bowling; w != nil {
		pts += w.Wickets * rules.WicketPoints
		if w.Wickets >= 3 {
			pts += rules.ThreeWicketBonus
		}
		if w.Wickets >= 5 {
			pts += rules.FiveWicketBonus
		}
		if w.Overs >= rules.EcoMinOvers {
			switch {
			case w.Economy < 6:
				pts += rules.EcoUnderSixBonus
			case w.Economy < 8:
				pts += rules.EcoUnderEightBonus
			case w.Economy < 10:
				pts += rules.EcoUnderTenBonus
			}
		}
	}

	return pts
}
