package leaderboard

import (
	"sort"
	"strings"

	"github.com/crichub/handcricket-stats/internal/domain/playerstats"
	"github.com/crichub/handcricket-stats/internal/domain/teamstats"
)

// Eligibility floors for the rate categories. Small samples produce absurd
// rates, so players under these floors never rank.
const (
	minBallsForStrikeRate = 30
	minOversForEconomy    = 5
)

// Build produces every category from the cumulative collections. Sorting is
// stable, so ties beyond a category's stated keys keep insertion order.
func Build(players []playerstats.Stats, teams []teamstats.Stats) []Category {
	return []Category{
		TeamStandings(teams),
		TopRunScorers(players),
		Centuries(players),
		MostWickets(players),
		BestStrikeRate(players),
		BoundaryHitters(players),
		BestEconomy(players),
		FantasyPoints(players),
	}
}

// ByKey returns the single category matching key.
func ByKey(key string, players []playerstats.Stats, teams []teamstats.Stats) (Category, bool) {
	for _, c := range Build(players, teams) {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

func TeamStandings(teams []teamstats.Stats) Category {
	sorted := make([]teamstats.Stats, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Wins != sorted[j].Wins {
			return sorted[i].Wins > sorted[j].Wins
		}
		if sorted[i].NetRunRate != sorted[j].NetRunRate {
			return sorted[i].NetRunRate > sorted[j].NetRunRate
		}
		return runDifference(sorted[i]) > runDifference(sorted[j])
	})

	entries := make([]Entry, 0, len(sorted))
	for _, s := range sorted {
		entries = append(entries, Entry{Name: s.Name, Value: float64(s.Points), Details: standingDetails(s)})
	}
	return Category{
		Key:         KeyTeamStandings,
		Title:       "Team Standings",
		Description: "Points table with net run rate",
		Entries:     entries,
	}
}

func runDifference(s teamstats.Stats) int {
	return s.RunsFor - s.RunsAgainst
}

func TopRunScorers(players []playerstats.Stats) Category {
	filtered := filter(players, func(s playerstats.Stats) bool { return s.Runs > 0 })
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Runs > filtered[j].Runs })
	return Category{
		Key:         KeyTopRunScorers,
		Title:       "Top Run Scorers",
		Description: "Total runs across the tournament",
		Entries:     playerEntries(filtered, func(s playerstats.Stats) float64 { return float64(s.Runs) }, battingDetails),
	}
}

func Centuries(players []playerstats.Stats) Category {
	filtered := filter(players, func(s playerstats.Stats) bool { return s.Centuries+s.HalfCenturies > 0 })
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Centuries != filtered[j].Centuries {
			return filtered[i].Centuries > filtered[j].Centuries
		}
		if filtered[i].HalfCenturies != filtered[j].HalfCenturies {
			return filtered[i].HalfCenturies > filtered[j].HalfCenturies
		}
		return filtered[i].Runs > filtered[j].Runs
	})
	return Category{
		Key:         KeyCenturies,
		Title:       "Centuries & Half-Centuries",
		Description: "Most hundreds, then fifties",
		Entries:     playerEntries(filtered, func(s playerstats.Stats) float64 { return float64(s.Centuries) }, milestoneDetails),
	}
}

func MostWickets(players []playerstats.Stats) Category {
	filtered := filter(players, func(s playerstats.Stats) bool { return s.Wickets > 0 })
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Wickets != filtered[j].Wickets {
			return filtered[i].Wickets > filtered[j].Wickets
		}
		if filtered[i].RunsGiven != filtered[j].RunsGiven {
			return filtered[i].RunsGiven < filtered[j].RunsGiven
		}
		return filtered[i].Overs < filtered[j].Overs
	})
	return Category{
		Key:         KeyMostWickets,
		Title:       "Most Wickets",
		Description: "Wickets taken, fewest runs conceded breaks ties",
		Entries:     playerEntries(filtered, func(s playerstats.Stats) float64 { return float64(s.Wickets) }, bowlingDetails),
	}
}

func BestStrikeRate(players []playerstats.Stats) Category {
	filtered := filter(players, func(s playerstats.Stats) bool { return s.Balls >= minBallsForStrikeRate })
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].StrikeRate > filtered[j].StrikeRate })
	return Category{
		Key:         KeyStrikeRate,
		Title:       "Best Strike Rate",
		Description: "Minimum 30 balls faced",
		Entries:     playerEntries(filtered, func(s playerstats.Stats) float64 { return s.StrikeRate }, battingDetails),
	}
}

func BoundaryHitters(players []playerstats.Stats) Category {
	filtered := filter(players, func(s playerstats.Stats) bool { return s.Fours+s.Sixes > 0 })
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Fours+filtered[i].Sixes > filtered[j].Fours+filtered[j].Sixes
	})
	return Category{
		Key:         KeyBoundaries,
		Title:       "Boundary Hitters",
		Description: "Fours and sixes combined",
		Entries:     playerEntries(filtered, func(s playerstats.Stats) float64 { return float64(s.Fours + s.Sixes) }, boundaryDetails),
	}
}

func BestEconomy(players []playerstats.Stats) Category {
	filtered := filter(players, func(s playerstats.Stats) bool { return s.Overs >= minOversForEconomy })
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Economy < filtered[j].Economy })
	return Category{
		Key:         KeyEconomy,
		Title:       "Best Economy",
		Description: "Minimum 5 overs bowled, lower is better",
		Entries:     playerEntries(filtered, func(s playerstats.Stats) float64 { return s.Economy }, bowlingDetails),
	}
}

func FantasyPoints(players []playerstats.Stats) Category {
	sorted := make([]playerstats.Stats, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FantasyPoints > sorted[j].FantasyPoints })
	return Category{
		Key:         KeyFantasyPoints,
		Title:       "Fantasy Points",
		Description: "Total fantasy score",
		Entries:     playerEntries(sorted, func(s playerstats.Stats) float64 { return float64(s.FantasyPoints) }, fantasyDetails),
	}
}

// Search keeps the entries whose name or details contain q,
// case-insensitively. An empty q keeps everything.
func Search(c Category, q string) Category {
	if q == "" {
		return c
	}
	q = strings.ToLower(q)
	kept := make([]Entry, 0, len(c.Entries))
	for _, e := range c.Entries {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Details), q) {
			kept = append(kept, e)
		}
	}
	c.Entries = kept
	return c
}

func filter(players []playerstats.Stats, keep func(playerstats.Stats) bool) []playerstats.Stats {
	out := make([]playerstats.Stats, 0, len(players))
	for _, s := range players {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func playerEntries(players []playerstats.Stats, value func(playerstats.Stats) float64, details func(playerstats.Stats) string) []Entry {
	entries := make([]Entry, 0, len(players))
	for _, s := range players {
		entries = append(entries, Entry{Name: s.Name, Value: value(s), Details: details(s)})
	}
	return entries
}
