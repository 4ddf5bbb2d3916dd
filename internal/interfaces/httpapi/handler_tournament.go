package httpapi

import (
	"net/http"

	"github.com/crichub/handcricket-stats/internal/domain/teamstats"
	"github.com/crichub/handcricket-stats/internal/domain/tournament"
	"github.com/crichub/handcricket-stats/internal/usecase"
)

type createTournamentRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Format     string   `json:"format" validate:"required,oneof=RoundRobin Groups"`
	Teams      []string `json:"teams" validate:"required,min=2,dive,required"`
	GroupCount int      `json:"group_count" validate:"omitempty,min=1"`
}

type tournamentDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Format string `json:"format"`
}

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	GroupName string `json:"group_name,omitempty"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	TeamAID      int64  `json:"team_a_id"`
	TeamBID      int64  `json:"team_b_id"`
	TeamAName    string `json:"team_a_name,omitempty"`
	TeamBName    string `json:"team_b_name,omitempty"`
	MatchType    string `json:"match_type"`
	WinnerTeamID int64  `json:"winner_team_id,omitempty"`
	WinnerName   string `json:"winner_name,omitempty"`
}

type createdTournamentDTO struct {
	Tournament tournamentDTO `json:"tournament"`
	Teams      []teamDTO     `json:"teams"`
	Matches    []matchDTO    `json:"matches"`
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.tournamentService.Create(ctx, usecase.CreateTournamentInput{
		Name:       req.Name,
		Format:     tournament.Format(req.Format),
		TeamNames:  req.Teams,
		GroupCount: req.GroupCount,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]teamDTO, 0, len(created.Teams))
	for _, t := range created.Teams {
		teams = append(teams, teamDTO{ID: t.ID, Name: t.Name, GroupName: t.GroupName})
	}
	matches := make([]matchDTO, 0, len(created.Matches))
	for _, m := range created.Matches {
		matches = append(matches, matchDTO{
			ID:        m.ID,
			TeamAID:   m.TeamAID,
			TeamBID:   m.TeamBID,
			MatchType: string(m.MatchType),
		})
	}

	writeSuccess(ctx, w, http.StatusCreated, createdTournamentDTO{
		Tournament: tournamentDTO{
			ID:     created.Tournament.ID,
			Name:   created.Tournament.Name,
			Format: string(created.Tournament.Format),
		},
		Teams:   teams,
		Matches: matches,
	})
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	items, err := h.tournamentService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, t := range items {
		out = append(out, tournamentDTO{ID: t.ID, Name: t.Name, Format: string(t.Format)})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.tournamentService.ListMatches(ctx, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(views))
	for _, v := range views {
		out = append(out, matchDTO{
			ID:           v.Match.ID,
			TeamAID:      v.Match.TeamAID,
			TeamBID:      v.Match.TeamBID,
			TeamAName:    v.TeamAName,
			TeamBName:    v.TeamBName,
			MatchType:    string(v.Match.MatchType),
			WinnerTeamID: v.Match.WinnerTeamID,
			WinnerName:   v.WinnerName,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

type standingsDTO struct {
	Standings []teamstats.Stats `json:"standings"`
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.statsService.Standings(ctx, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsDTO{Standings: standings})
}
