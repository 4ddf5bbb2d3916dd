package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/crichub/handcricket-stats/internal/domain/performance"
	"github.com/crichub/handcricket-stats/internal/domain/scorecard"
	"github.com/crichub/handcricket-stats/internal/domain/tournament"
	"github.com/crichub/handcricket-stats/internal/platform/logging"
)

// statsInvalidator drops cached aggregates for a tournament after an import
// changes its underlying rows.
type statsInvalidator interface {
	Invalidate(ctx context.Context, tournamentID int64)
}

type ImportService struct {
	tournaments  tournament.Repository
	performances performance.Repository
	stats        statsInvalidator
	maxWorkers   int
	logger       *logging.Logger
}

// NewImportService builds the import path. maxWorkers bounds batch imports
// whose request does not pick its own worker count; values below 1 fall back
// to the package default.
func NewImportService(
	tournaments tournament.Repository,
	performances performance.Repository,
	stats statsInvalidator,
	maxWorkers int,
	logger *logging.Logger,
) *ImportService {
	if maxWorkers < 1 {
		maxWorkers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		tournaments:  tournaments,
		performances: performances,
		stats:        stats,
		maxWorkers:   maxWorkers,
		logger:       logger,
	}
}

type ImportInput struct {
	TournamentID int64
	MatchID      int64
	Lines        []string
	// SwapSides maps the scorecard's first batting side onto the match's
	// team B instead of team A.
	SwapSides bool
}

type ImportReport struct {
	MatchID      int64  `json:"match_id"`
	Batters      int    `json:"batters"`
	Bowlers      int    `json:"bowlers"`
	Performances int    `json:"performances"`
	WinnerTeamID int64  `json:"winner_team_id,omitempty"`
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
}

// ImportScorecard parses one scorecard and reconciles it into the match.
// Re-importing the same match merges rows instead of duplicating them.
func (s *ImportService) ImportScorecard(ctx context.Context, input ImportInput) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportScorecard")
	defer span.End()

	match, exists, err := s.tournaments.GetMatch(ctx, input.MatchID)
	if err != nil {
		return ImportReport{}, fmt.Errorf("get match: %w", err)
	}
	if !exists || match.TournamentID != input.TournamentID {
		return ImportReport{}, fmt.Errorf("%w: match=%d in tournament=%d", ErrNotFound, input.MatchID, input.TournamentID)
	}

	parsed := scorecard.Parse(input.Lines)
	if len(parsed.Batters) == 0 && len(parsed.Bowlers) == 0 {
		return ImportReport{}, fmt.Errorf("%w: no recognizable scorecard rows", ErrInvalidInput)
	}

	side1, side2 := match.TeamAID, match.TeamBID
	if input.SwapSides {
		side1, side2 = side2, side1
	}
	sides := sideMapping{
		label1: parsed.Info.Team1Name,
		label2: parsed.Info.Team2Name,
		side1:  side1,
		side2:  side2,
	}

	winnerID := sides.side(parsed.Info.Winner)
	result := tournament.MatchResult{
		MatchID:       match.ID,
		TournamentID:  match.TournamentID,
		Team1ID:       side1,
		Team2ID:       side2,
		Team1Score:    parsed.Info.Team1Score,
		Team2Score:    parsed.Info.Team2Score,
		WinnerTeamID:  winnerID,
		PlayerOfMatch: parsed.Info.PlayerOfMatch,
		Date:          parsed.Info.Date,
		MatchType:     match.MatchType,
	}
	if err := s.tournaments.UpsertMatchResult(ctx, result); err != nil {
		return ImportReport{}, fmt.Errorf("upsert match result: %w", err)
	}
	if winnerID != 0 {
		if err := s.tournaments.SetMatchWinner(ctx, match.ID, winnerID); err != nil {
			return ImportReport{}, fmt.Errorf("set match winner: %w", err)
		}
	}

	rows := buildPerformances(parsed, sides, match)
	for _, p := range rows {
		if err := s.performances.Upsert(ctx, p); err != nil {
			return ImportReport{}, fmt.Errorf("upsert performance for %s: %w", p.PlayerName, err)
		}
	}

	if s.stats != nil {
		s.stats.Invalidate(ctx, match.TournamentID)
	}

	s.logger.InfoContext(ctx, "scorecard imported",
		"tournament_id", match.TournamentID,
		"match_id", match.ID,
		"batters", len(parsed.Batters),
		"bowlers", len(parsed.Bowlers),
	)

	return ImportReport{
		MatchID:      match.ID,
		Batters:      len(parsed.Batters),
		Bowlers:      len(parsed.Bowlers),
		Performances: len(rows),
		WinnerTeamID: winnerID,
		Team1:        parsed.Info.Team1Name,
		Team2:        parsed.Info.Team2Name,
	}, nil
}

// sideMapping joins the scorecard's team labels to the match's team ids.
// Batting and bowling headers both name the acting side, so one direct
// lookup covers every block.
type sideMapping struct {
	label1, label2 string
	side1, side2   int64
}

func (m sideMapping) side(label string) int64 {
	if label == "" || strings.EqualFold(m.label1, m.label2) {
		return 0
	}
	switch {
	case strings.EqualFold(label, m.label1):
		return m.side1
	case strings.EqualFold(label, m.label2):
		return m.side2
	default:
		return 0
	}
}

// Rows whose label maps to neither side still need a team: batters default
// to the first batting side, bowlers to the second.
func (m sideMapping) batterSide(label string) int64 {
	if id := m.side(label); id != 0 {
		return id
	}
	return m.side1
}

func (m sideMapping) bowlerSide(label string) int64 {
	if id := m.side(label); id != 0 {
		return id
	}
	return m.side2
}

// buildPerformances folds batting and bowling rows into one performance per
// player. A player seen in both disciplines keeps the batting-derived side.
func buildPerformances(parsed scorecard.Parsed, sides sideMapping, match tournament.Match) []performance.Performance {
	byPlayer := make(map[string]*performance.Performance)
	var order []string

	row := func(name string) *performance.Performance {
		p, ok := byPlayer[name]
		if !ok {
			p = &performance.Performance{
				MatchID:      match.ID,
				TournamentID: match.TournamentID,
				PlayerName:   name,
				Date:         parsed.Info.Date,
			}
			byPlayer[name] = p
			order = append(order, name)
		}
		return p
	}

	for _, b := range parsed.Batters {
		p := row(b.Name)
		p.TeamID = sides.batterSide(b.Team)
		p.Batting = &performance.Batting{
			Runs:       b.Runs,
			Balls:      b.Balls,
			Fours:      b.Fours,
			Sixes:      b.Sixes,
			StrikeRate: b.StrikeRate,
			IsOut:      b.IsOut,
		}
	}
	for _, w := range parsed.Bowlers {
		p := row(w.Name)
		if p.Batting == nil {
			p.TeamID = sides.bowlerSide(w.Team)
		}
		p.Bowling = &performance.Bowling{
			Wickets:      w.Wickets,
			Overs:        w.Overs,
			RunsConceded: w.RunsConceded,
			Economy:      w.Economy,
		}
	}

	out := make([]performance.Performance, 0, len(order))
	for _, name := range order {
		out = append(out, *byPlayer[name])
	}
	return out
}

const (
	importStatusSuccess = "success"
	importStatusFailed  = "failed"

	defaultImportWorkers = 4
)

type BatchFile struct {
	Name      string
	MatchID   int64
	Lines     []string
	SwapSides bool
}

type BatchImportInput struct {
	TournamentID int64
	Files        []BatchFile
	MaxWorkers   int
}

type BatchImportResult struct {
	FileCount    int               `json:"file_count"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	WorkerCount  int               `json:"worker_count"`
	Files        []BatchFileResult `json:"files"`
}

type BatchFileResult struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	MatchID    int64  `json:"match_id"`
	Status     string `json:"status"`
	Batters    int    `json:"batters"`
	Bowlers    int    `json:"bowlers"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// ImportBatch runs one import per file on a bounded worker pool. Each file
// fails in isolation: a bad scorecard yields a failed row while every other
// file still lands, and the aggregate result always completes.
func (s *ImportService) ImportBatch(ctx context.Context, input BatchImportInput) (BatchImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportBatch")
	defer span.End()

	if len(input.Files) == 0 {
		return BatchImportResult{}, fmt.Errorf("%w: at least one file is required", ErrInvalidInput)
	}
	if _, exists, err := s.tournaments.GetTournament(ctx, input.TournamentID); err != nil {
		return BatchImportResult{}, fmt.Errorf("get tournament: %w", err)
	} else if !exists {
		return BatchImportResult{}, fmt.Errorf("%w: tournament=%d", ErrNotFound, input.TournamentID)
	}

	workerCount := input.MaxWorkers
	if workerCount < 1 {
		workerCount = s.maxWorkers
	}
	if workerCount > len(input.Files) {
		workerCount = len(input.Files)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan BatchFileResult, len(input.Files))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for i, file := range input.Files {
		i, file := i, file
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := BatchFileResult{Index: i, Name: file.Name, MatchID: file.MatchID}

			report, importErr := s.ImportScorecard(ctx, ImportInput{
				TournamentID: input.TournamentID,
				MatchID:      file.MatchID,
				Lines:        file.Lines,
				SwapSides:    file.SwapSides,
			})
			row.DurationMs = time.Since(start).Milliseconds()
			if importErr != nil {
				row.Status = importStatusFailed
				row.Message = importErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = importStatusSuccess
				row.Batters = report.Batters
				row.Bowlers = report.Bowlers
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return BatchImportResult{}, fmt.Errorf("submit file to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	result := BatchImportResult{
		FileCount:   len(input.Files),
		WorkerCount: workerCount,
		Files:       make([]BatchFileResult, 0, len(input.Files)),
	}
	for row := range results {
		result.Files = append(result.Files, row)
	}
	sort.SliceStable(result.Files, func(i, j int) bool {
		return result.Files[i].Index < result.Files[j].Index
	})
	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "batch import finished",
		"tournament_id", input.TournamentID,
		"files", result.FileCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)

	return result, nil
}
