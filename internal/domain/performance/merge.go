package performance

// Merge folds a re-imported contribution into an existing row for the same
// (match, player). Counters are summed, strike rate and economy are
// recomputed from the new sums, and the role upgrades to all-rounder when
// both halves end up present. Team and date keep the existing values.
func Merge(existing, incoming Performance) Performance {
	merged := existing

	if incoming.Batting != nil {
		if merged.Batting == nil {
			b := *incoming.Batting
			merged.Batting = &b
		} else {
			b := *merged.Batting
			b.Runs += incoming.Batting.Runs
			b.Balls += incoming.Batting.Balls
			b.Fours += incoming.Batting.Fours
			b.Sixes += incoming.Batting.Sixes
			b.IsOut = b.IsOut || incoming.Batting.IsOut
			merged.Batting = &b
		}
		merged.Batting.StrikeRate = strikeRate(merged.Batting.Runs, merged.Batting.Balls)
	}

	if incoming.Bowling != nil {
		if merged.Bowling == nil {
			w := *incoming.Bowling
			merged.Bowling = &w
		} else {
			w := *merged.Bowling
			w.Wickets += incoming.Bowling.Wickets
			w.Overs += incoming.Bowling.Overs
			w.RunsConceded += incoming.Bowling.RunsConceded
			merged.Bowling = &w
		}
		merged.Bowling.Economy = economy(merged.Bowling.RunsConceded, merged.Bowling.Overs)
	}

	return merged
}

func strikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) / float64(balls) * 100
}

func economy(runsConceded int, overs float64) float64 {
	if overs == 0 {
		return 0
	}
	return float64(runsConceded) / overs
}
