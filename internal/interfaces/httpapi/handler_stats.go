package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/crichub/handcricket-stats/internal/usecase"
)

func (h *Handler) GetLeaderboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboardSummary")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	categories, err := h.statsService.LeaderboardSummary(ctx, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *Handler) GetLeaderboardCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboardCategory")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	key := strings.TrimSpace(r.PathValue("category"))
	if key == "" {
		writeError(ctx, w, fmt.Errorf("%w: category is required", usecase.ErrInvalidInput))
		return
	}

	category, err := h.statsService.LeaderboardCategory(ctx, tournamentID, key, r.URL.Query().Get("q"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, category)
}

type previewFileRequest struct {
	Name    string   `json:"name" validate:"required"`
	Lines   []string `json:"lines"`
	Content string   `json:"content"`
}

type previewRequest struct {
	Files []previewFileRequest `json:"files" validate:"required,min=1,dive"`
}

func (h *Handler) PreviewStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewStats")
	defer span.End()

	var req previewRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	files := make([]usecase.PreviewFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, usecase.PreviewFile{
			Name:  f.Name,
			Lines: splitLines(f.Lines, f.Content),
		})
	}

	categories, err := h.statsService.Preview(ctx, files)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"categories": categories})
}
