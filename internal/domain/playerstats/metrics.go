package playerstats

// Derived rates return exactly 0 whenever the denominator is zero so that
// players with no deliveries faced or bowled sort predictably instead of
// surfacing NaN or Inf.

func StrikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) / float64(balls) * 100
}

func BattingAverage(runs, innings int) float64 {
	if innings < 1 {
		innings = 1
	}
	return float64(runs) / float64(innings)
}

func BowlingAverage(runsGiven, wickets int) float64 {
	if wickets == 0 {
		return 0
	}
	return float64(runsGiven) / float64(wickets)
}

func Economy(runsGiven int, overs float64) float64 {
	if overs == 0 {
		return 0
	}
	return float64(runsGiven) / overs
}
