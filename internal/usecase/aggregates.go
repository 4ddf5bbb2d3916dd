package usecase

import (
	"github.com/crichub/handcricket-stats/internal/domain/fantasy"
	"github.com/crichub/handcricket-stats/internal/domain/performance"
	"github.com/crichub/handcricket-stats/internal/domain/playerstats"
	"github.com/crichub/handcricket-stats/internal/domain/scorecard"
	"github.com/crichub/handcricket-stats/internal/domain/teamstats"
	"github.com/crichub/handcricket-stats/internal/domain/tournament"
)

// foldPlayerStats rebuilds the cumulative player collection from persisted
// performance rows. Rows arrive in store order, which is stable per
// tournament, so ties that fall back to insertion order stay deterministic.
// Fantasy points in the tournament scope are scored innings by innings, so
// milestone and rate bonuses reward each performance on its own.
func foldPlayerStats(rows []performance.Performance, teamNames map[int64]string) []playerstats.Stats {
	agg := playerstats.NewAggregate()
	perfRules := fantasy.DefaultPerformanceRules()
	points := make(map[string]int)
	for _, p := range rows {
		points[p.PlayerName] += fantasy.PerformancePoints(p, perfRules)
		team := teamNames[p.TeamID]
		countedMatch := false
		if b := p.Batting; b != nil {
			agg.FoldBatter(scorecard.BatterRecord{
				Name:       p.PlayerName,
				Team:       team,
				Runs:       b.Runs,
				Balls:      b.Balls,
				Fours:      b.Fours,
				Sixes:      b.Sixes,
				StrikeRate: b.StrikeRate,
				IsOut:      b.IsOut,
			}, true)
			countedMatch = true
		}
		if w := p.Bowling; w != nil {
			agg.FoldBowler(scorecard.BowlerRecord{
				Name:         p.PlayerName,
				Team:         team,
				Wickets:      w.Wickets,
				Overs:        w.Overs,
				RunsConceded: w.RunsConceded,
				Economy:      w.Economy,
			}, !countedMatch)
		}
	}

	players := agg.Finalize()
	for i := range players {
		players[i].FantasyPoints = points[players[i].Name]
	}
	return players
}

// foldTeamStats rebuilds the standings collection from imported match
// results.
func foldTeamStats(results []tournament.MatchResult, teamNames map[int64]string) []teamstats.Stats {
	agg := teamstats.NewAggregate()
	for _, r := range results {
		agg.Fold(teamstats.MatchOutcome{
			Team1:  teamNames[r.Team1ID],
			Team2:  teamNames[r.Team2ID],
			Score1: scorecard.ParseScore(r.Team1Score),
			Score2: scorecard.ParseScore(r.Team2Score),
			Winner: teamNames[r.WinnerTeamID],
		})
	}
	return agg.Finalize()
}

func teamNameIndex(teams []tournament.Team) map[int64]string {
	byID := make(map[int64]string, len(teams))
	for _, t := range teams {
		byID[t.ID] = t.Name
	}
	return byID
}
