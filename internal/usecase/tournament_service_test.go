package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/crichub/handcricket-stats/internal/domain/tournament"
	"github.com/crichub/handcricket-stats/internal/infrastructure/repository/memory"
)

func TestTournamentService_Create_RoundRobin(t *testing.T) {
	t.Parallel()

	service := NewTournamentService(memory.NewTournamentRepository())

	created, err := service.Create(context.Background(), CreateTournamentInput{
		Name:      "Street Cup",
		Format:    tournament.FormatRoundRobin,
		TeamNames: []string{"India", "Pakistan", "Australia", "England"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(created.Teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(created.Teams))
	}
	// 4 teams round robin: C(4,2) = 6 matches.
	if len(created.Matches) != 6 {
		t.Fatalf("expected 6 matches, got %d", len(created.Matches))
	}
	for _, m := range created.Matches {
		if m.MatchType != tournament.MatchTypeRoundRobin {
			t.Fatalf("expected round-robin match type, got %q", m.MatchType)
		}
		if m.TeamAID == 0 || m.TeamBID == 0 || m.TeamAID == m.TeamBID {
			t.Fatalf("invalid pairing: %+v", m)
		}
	}

	pairs := make(map[[2]int64]int)
	for _, m := range created.Matches {
		a, b := m.TeamAID, m.TeamBID
		if a > b {
			a, b = b, a
		}
		pairs[[2]int64{a, b}]++
	}
	if len(pairs) != 6 {
		t.Fatalf("expected every pair exactly once, got %v", pairs)
	}
}

func TestTournamentService_Create_OddTeamCountGetsBye(t *testing.T) {
	t.Parallel()

	service := NewTournamentService(memory.NewTournamentRepository())

	created, err := service.Create(context.Background(), CreateTournamentInput{
		Name:      "Tri Series",
		Format:    tournament.FormatRoundRobin,
		TeamNames: []string{"India", "Pakistan", "Australia"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.Matches) != 3 {
		t.Fatalf("expected 3 matches for 3 teams, got %d", len(created.Matches))
	}
}

func TestTournamentService_Create_Groups(t *testing.T) {
	t.Parallel()

	repo := memory.NewTournamentRepository()
	service := NewTournamentService(repo)

	created, err := service.Create(context.Background(), CreateTournamentInput{
		Name:       "World Cup",
		Format:     tournament.FormatGroups,
		TeamNames:  []string{"India", "Pakistan", "Australia", "England", "New Zealand", "South Africa"},
		GroupCount: 2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	groups := make(map[string][]int64)
	for _, team := range created.Teams {
		if team.GroupName == "" {
			t.Fatalf("team %s has no group", team.Name)
		}
		groups[team.GroupName] = append(groups[team.GroupName], team.ID)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// 3 teams per group, C(3,2) matches each.
	if len(created.Matches) != 6 {
		t.Fatalf("expected 6 matches, got %d", len(created.Matches))
	}
	sameGroup := func(a, b int64) bool {
		for _, members := range groups {
			inA, inB := false, false
			for _, id := range members {
				if id == a {
					inA = true
				}
				if id == b {
					inB = true
				}
			}
			if inA || inB {
				return inA && inB
			}
		}
		return false
	}
	for _, m := range created.Matches {
		if m.MatchType != tournament.MatchTypeGroup {
			t.Fatalf("expected group match type, got %q", m.MatchType)
		}
		if !sameGroup(m.TeamAID, m.TeamBID) {
			t.Fatalf("cross-group pairing: %+v", m)
		}
	}
}

func TestTournamentService_Create_Validation(t *testing.T) {
	t.Parallel()

	service := NewTournamentService(memory.NewTournamentRepository())
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateTournamentInput
	}{
		{"missing name", CreateTournamentInput{Format: tournament.FormatRoundRobin, TeamNames: []string{"A", "B"}}},
		{"bad format", CreateTournamentInput{Name: "Cup", Format: "Knockout", TeamNames: []string{"A", "B"}}},
		{"one team", CreateTournamentInput{Name: "Cup", Format: tournament.FormatRoundRobin, TeamNames: []string{"A"}}},
		{"duplicate team", CreateTournamentInput{Name: "Cup", Format: tournament.FormatRoundRobin, TeamNames: []string{"A", "a"}}},
		{"no groups", CreateTournamentInput{Name: "Cup", Format: tournament.FormatGroups, TeamNames: []string{"A", "B"}}},
		{"too many groups", CreateTournamentInput{Name: "Cup", Format: tournament.FormatGroups, TeamNames: []string{"A", "B", "C"}, GroupCount: 2}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := service.Create(ctx, tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestTournamentService_ListMatches_NamesJoined(t *testing.T) {
	t.Parallel()

	service := NewTournamentService(memory.NewTournamentRepository())
	ctx := context.Background()

	created, err := service.Create(ctx, CreateTournamentInput{
		Name:      "Duo",
		Format:    tournament.FormatRoundRobin,
		TeamNames: []string{"India", "Pakistan"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	views, err := service.ListMatches(ctx, created.Tournament.ID)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 match, got %d", len(views))
	}
	v := views[0]
	if v.TeamAName == "" || v.TeamBName == "" || v.TeamAName == v.TeamBName {
		t.Fatalf("team names not joined: %+v", v)
	}
	if v.WinnerName != "" {
		t.Fatalf("expected no winner before import, got %q", v.WinnerName)
	}
}

func TestTournamentService_Get_NotFound(t *testing.T) {
	t.Parallel()

	service := NewTournamentService(memory.NewTournamentRepository())
	if _, err := service.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
