package httpapi

import (
	"fmt"
	"net/http"

	"github.com/crichub/handcricket-stats/internal/usecase"
)

type importRequest struct {
	// Either pre-split lines or the raw file content must be supplied.
	Lines     []string `json:"lines"`
	Content   string   `json:"content"`
	SwapSides bool     `json:"swap_sides"`
}

func (h *Handler) ImportScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportScorecard")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req importRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	lines := splitLines(req.Lines, req.Content)
	if len(lines) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: scorecard content is required", usecase.ErrInvalidInput))
		return
	}

	report, err := h.importService.ImportScorecard(ctx, usecase.ImportInput{
		TournamentID: tournamentID,
		MatchID:      matchID,
		Lines:        lines,
		SwapSides:    req.SwapSides,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "scorecard import failed",
			"tournament_id", tournamentID,
			"match_id", matchID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, report)
}

type batchImportFileRequest struct {
	Name      string   `json:"name" validate:"required"`
	MatchID   int64    `json:"match_id" validate:"required,min=1"`
	Lines     []string `json:"lines"`
	Content   string   `json:"content"`
	SwapSides bool     `json:"swap_sides"`
}

type batchImportRequest struct {
	Files      []batchImportFileRequest `json:"files" validate:"required,min=1,dive"`
	MaxWorkers int                      `json:"max_workers" validate:"omitempty,min=1,max=64"`
}

func (h *Handler) ImportBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportBatch")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req batchImportRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	files := make([]usecase.BatchFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, usecase.BatchFile{
			Name:      f.Name,
			MatchID:   f.MatchID,
			Lines:     splitLines(f.Lines, f.Content),
			SwapSides: f.SwapSides,
		})
	}

	result, err := h.importService.ImportBatch(ctx, usecase.BatchImportInput{
		TournamentID: tournamentID,
		Files:        files,
		MaxWorkers:   req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "batch import failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}
