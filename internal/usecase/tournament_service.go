package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/crichub/handcricket-stats/internal/domain/tournament"
)

type TournamentService struct {
	repo tournament.Repository
}

func NewTournamentService(repo tournament.Repository) *TournamentService {
	return &TournamentService{repo: repo}
}

type CreateTournamentInput struct {
	Name       string
	Format     tournament.Format
	TeamNames  []string
	GroupCount int
}

type CreatedTournament struct {
	Tournament tournament.Tournament
	Teams      []tournament.Team
	Matches    []tournament.Match
}

// Create persists a tournament with its teams and full schedule. Teams are
// inserted before matches so every fixture can reference store-assigned ids.
func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (CreatedTournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	t := tournament.Tournament{
		Name:   strings.TrimSpace(input.Name),
		Format: input.Format,
	}
	if err := t.ValidateBasic(); err != nil {
		return CreatedTournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	names := make([]string, 0, len(input.TeamNames))
	seen := make(map[string]struct{}, len(input.TeamNames))
	for _, raw := range input.TeamNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return CreatedTournament{}, fmt.Errorf("%w: duplicate team name %q", ErrInvalidInput, name)
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	if len(names) < 2 {
		return CreatedTournament{}, fmt.Errorf("%w: at least two teams are required", ErrInvalidInput)
	}

	var groups []string
	var fixtures []tournament.Fixture
	switch t.Format {
	case tournament.FormatRoundRobin:
		fixtures = tournament.RoundRobinFixtures(len(names))
	case tournament.FormatGroups:
		groupCount := input.GroupCount
		if groupCount < 1 {
			return CreatedTournament{}, fmt.Errorf("%w: group count must be at least 1", ErrInvalidInput)
		}
		if groupCount > len(names)/2 {
			return CreatedTournament{}, fmt.Errorf("%w: %d groups cannot seat %d teams two apiece", ErrInvalidInput, groupCount, len(names))
		}
		groups = tournament.GroupAssignments(len(names), groupCount)
		fixtures = tournament.GroupFixtures(groups)
	}

	tournamentID, err := s.repo.CreateTournament(ctx, t)
	if err != nil {
		return CreatedTournament{}, fmt.Errorf("create tournament: %w", err)
	}
	t.ID = tournamentID

	teams := make([]tournament.Team, 0, len(names))
	for i, name := range names {
		team := tournament.Team{TournamentID: tournamentID, Name: name}
		if groups != nil {
			team.GroupName = groups[i]
		}
		teams = append(teams, team)
	}
	teamIDs, err := s.repo.InsertTeams(ctx, teams)
	if err != nil {
		return CreatedTournament{}, fmt.Errorf("insert teams: %w", err)
	}
	if len(teamIDs) != len(teams) {
		return CreatedTournament{}, fmt.Errorf("insert teams: expected %d ids, got %d", len(teams), len(teamIDs))
	}
	for i := range teams {
		teams[i].ID = teamIDs[i]
	}

	matches := make([]tournament.Match, 0, len(fixtures))
	for _, f := range fixtures {
		matches = append(matches, tournament.Match{
			TournamentID: tournamentID,
			TeamAID:      teams[f.TeamAIndex].ID,
			TeamBID:      teams[f.TeamBIndex].ID,
			MatchType:    f.MatchType,
		})
	}
	if err := s.repo.InsertMatches(ctx, matches); err != nil {
		return CreatedTournament{}, fmt.Errorf("insert matches: %w", err)
	}

	stored, err := s.repo.ListMatches(ctx, tournamentID)
	if err != nil {
		return CreatedTournament{}, fmt.Errorf("list matches: %w", err)
	}

	return CreatedTournament{Tournament: t, Teams: teams, Matches: stored}, nil
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := s.repo.ListTournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Get(ctx context.Context, tournamentID int64) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Get")
	defer span.End()

	t, exists, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
	}
	return t, nil
}

// MatchView joins a match with its team names for presentation.
type MatchView struct {
	Match      tournament.Match
	TeamAName  string
	TeamBName  string
	WinnerName string
}

func (s *TournamentService) ListMatches(ctx context.Context, tournamentID int64) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListMatches")
	defer span.End()

	if _, err := s.Get(ctx, tournamentID); err != nil {
		return nil, err
	}

	teams, err := s.repo.ListTeams(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	byID := make(map[int64]string, len(teams))
	for _, team := range teams {
		byID[team.ID] = team.Name
	}

	matches, err := s.repo.ListMatches(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, MatchView{
			Match:      m,
			TeamAName:  byID[m.TeamAID],
			TeamBName:  byID[m.TeamBID],
			WinnerName: byID[m.WinnerTeamID],
		})
	}
	return views, nil
}
