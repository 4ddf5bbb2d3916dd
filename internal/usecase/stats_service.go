package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sourcegraph/conc/pool"

	"github.com/crichub/handcricket-stats/internal/domain/fantasy"
	"github.com/crichub/handcricket-stats/internal/domain/leaderboard"
	"github.com/crichub/handcricket-stats/internal/domain/performance"
	"github.com/crichub/handcricket-stats/internal/domain/playerstats"
	"github.com/crichub/handcricket-stats/internal/domain/scorecard"
	"github.com/crichub/handcricket-stats/internal/domain/teamdict"
	"github.com/crichub/handcricket-stats/internal/domain/teamstats"
	"github.com/crichub/handcricket-stats/internal/domain/tournament"
	"github.com/crichub/handcricket-stats/internal/platform/cache"
)

const (
	leaderboardSummaryTop = 8
	previewMaxParsers     = 4
)

// StatsService computes leaderboards and standings. Tournament-scoped
// computations are cached; an import invalidates the tournament's entries so
// readers never see aggregates missing a just-imported match.
type StatsService struct {
	tournaments  tournament.Repository
	performances performance.Repository
	dictionaries teamdict.Repository
	cache        *cache.Store
}

func NewStatsService(
	tournaments tournament.Repository,
	performances performance.Repository,
	dictionaries teamdict.Repository,
	store *cache.Store,
) *StatsService {
	return &StatsService{
		tournaments:  tournaments,
		performances: performances,
		dictionaries: dictionaries,
		cache:        store,
	}
}

type tournamentAggregates struct {
	Players []playerstats.Stats
	Teams   []teamstats.Stats
}

func leaderboardCacheKey(tournamentID int64) string {
	return "leaderboards:" + strconv.FormatInt(tournamentID, 10)
}

// Invalidate drops the cached aggregates for a tournament.
func (s *StatsService) Invalidate(ctx context.Context, tournamentID int64) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, leaderboardCacheKey(tournamentID))
}

func (s *StatsService) aggregates(ctx context.Context, tournamentID int64) (tournamentAggregates, error) {
	load := func(ctx context.Context) (any, error) {
		return s.computeAggregates(ctx, tournamentID)
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return tournamentAggregates{}, err
		}
		return value.(tournamentAggregates), nil
	}

	value, err := s.cache.GetOrLoad(ctx, leaderboardCacheKey(tournamentID), load)
	if err != nil {
		return tournamentAggregates{}, err
	}
	return value.(tournamentAggregates), nil
}

func (s *StatsService) computeAggregates(ctx context.Context, tournamentID int64) (tournamentAggregates, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.computeAggregates")
	defer span.End()

	if _, exists, err := s.tournaments.GetTournament(ctx, tournamentID); err != nil {
		return tournamentAggregates{}, fmt.Errorf("get tournament: %w", err)
	} else if !exists {
		return tournamentAggregates{}, fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
	}

	teams, err := s.tournaments.ListTeams(ctx, tournamentID)
	if err != nil {
		return tournamentAggregates{}, fmt.Errorf("list teams: %w", err)
	}
	names := teamNameIndex(teams)

	rows, err := s.performances.ListByTournament(ctx, tournamentID)
	if err != nil {
		return tournamentAggregates{}, fmt.Errorf("list performances: %w", err)
	}
	results, err := s.tournaments.ListMatchResults(ctx, tournamentID)
	if err != nil {
		return tournamentAggregates{}, fmt.Errorf("list match results: %w", err)
	}

	return tournamentAggregates{
		Players: foldPlayerStats(rows, names),
		Teams:   foldTeamStats(results, names),
	}, nil
}

// LeaderboardSummary returns every category bounded to the summary top-N.
func (s *StatsService) LeaderboardSummary(ctx context.Context, tournamentID int64) ([]leaderboard.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.LeaderboardSummary")
	defer span.End()

	agg, err := s.aggregates(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	categories := leaderboard.Build(agg.Players, agg.Teams)
	for i := range categories {
		categories[i].Entries = categories[i].Top(leaderboardSummaryTop)
	}
	return categories, nil
}

// LeaderboardCategory returns one full, optionally filtered, category.
func (s *StatsService) LeaderboardCategory(ctx context.Context, tournamentID int64, key, query string) (leaderboard.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.LeaderboardCategory")
	defer span.End()

	agg, err := s.aggregates(ctx, tournamentID)
	if err != nil {
		return leaderboard.Category{}, err
	}

	category, ok := leaderboard.ByKey(key, agg.Players, agg.Teams)
	if !ok {
		return leaderboard.Category{}, fmt.Errorf("%w: leaderboard category %q", ErrNotFound, key)
	}
	return leaderboard.Search(category, query), nil
}

// Standings returns the points table, ranked by wins, net run rate, then run
// difference.
func (s *StatsService) Standings(ctx context.Context, tournamentID int64) ([]teamstats.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Standings")
	defer span.End()

	agg, err := s.aggregates(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	ranked := leaderboard.TeamStandings(agg.Teams)
	byName := make(map[string]teamstats.Stats, len(agg.Teams))
	for _, t := range agg.Teams {
		byName[t.Name] = t
	}
	out := make([]teamstats.Stats, 0, len(ranked.Entries))
	for _, e := range ranked.Entries {
		out = append(out, byName[e.Name])
	}
	return out, nil
}

type PreviewFile struct {
	Name  string
	Lines []string
}

// Preview computes leaderboards straight from raw scorecards, without a
// tournament. Team labels are resolved through the player dictionary.
// Parsing fans out across a bounded pool; the fold runs single-goroutine in
// ascending file order so tie-breaking stays deterministic.
func (s *StatsService) Preview(ctx context.Context, files []PreviewFile) ([]leaderboard.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Preview")
	defer span.End()

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: at least one file is required", ErrInvalidInput)
	}

	dict, err := s.loadDictionary(ctx)
	if err != nil {
		return nil, err
	}

	parsed := make([]scorecard.Parsed, len(files))
	parsers := pool.New().WithMaxGoroutines(previewMaxParsers)
	for i := range files {
		i := i
		parsers.Go(func() {
			parsed[i] = scorecard.Parse(files[i].Lines)
		})
	}
	parsers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	players := playerstats.NewAggregate()
	teams := teamstats.NewAggregate()
	for _, p := range parsed {
		foldPreviewFile(p, dict, players, teams)
	}

	ranked := players.Finalize()
	rules := fantasy.DefaultRules()
	for i := range ranked {
		ranked[i].FantasyPoints = fantasy.CumulativePoints(ranked[i], rules)
	}
	return leaderboard.Build(ranked, teams.Finalize()), nil
}

func (s *StatsService) loadDictionary(ctx context.Context) (teamdict.Dictionary, error) {
	if s.dictionaries == nil {
		return teamdict.Default(), nil
	}
	serialized, ok, err := s.dictionaries.Load(ctx)
	if err != nil {
		return teamdict.Dictionary{}, fmt.Errorf("load team dictionary: %w", err)
	}
	if !ok {
		return teamdict.Default(), nil
	}
	return teamdict.ParseSerialized(serialized), nil
}

// foldPreviewFile resolves each side's team from its batter names, then
// folds every row. Header labels name the acting side in both batting and
// bowling blocks, so one label→resolved-team lookup covers everything.
func foldPreviewFile(p scorecard.Parsed, dict teamdict.Dictionary, players *playerstats.Aggregate, teams *teamstats.Aggregate) {
	if len(p.Batters) == 0 && len(p.Bowlers) == 0 {
		return
	}

	var side1Names, side2Names []string
	for _, b := range p.Batters {
		if b.Team == p.Info.Team1Name {
			side1Names = append(side1Names, b.Name)
		} else {
			side2Names = append(side2Names, b.Name)
		}
	}
	resolved1 := dict.Resolve(side1Names)
	resolved2 := dict.Resolve(side2Names)

	resolve := func(label string) string {
		if label == p.Info.Team1Name {
			return resolved1
		}
		return resolved2
	}

	// Each file counts as one match per player, whichever discipline the
	// player shows up in first.
	counted := make(map[string]bool, len(p.Batters)+len(p.Bowlers))
	for _, b := range p.Batters {
		b.Team = resolve(b.Team)
		players.FoldBatter(b, !counted[b.Name])
		counted[b.Name] = true
	}
	for _, w := range p.Bowlers {
		w.Team = resolve(w.Team)
		players.FoldBowler(w, !counted[w.Name])
		counted[w.Name] = true
	}

	if p.Info.Team1Name != "" && p.Info.Team2Name != "" {
		teams.Fold(teamstats.MatchOutcome{
			Team1:  resolved1,
			Team2:  resolved2,
			Score1: scorecard.ParseScore(p.Info.Team1Score),
			Score2: scorecard.ParseScore(p.Info.Team2Score),
			Winner: resolveWinner(p.Info.Winner, p.Info.Team1Name, p.Info.Team2Name, resolved1, resolved2),
		})
	}
}

func resolveWinner(winner, label1, label2, resolved1, resolved2 string) string {
	switch winner {
	case label1:
		return resolved1
	case label2:
		return resolved2
	default:
		return ""
	}
}
