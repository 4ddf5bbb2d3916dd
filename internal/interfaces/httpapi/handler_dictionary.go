package httpapi

import (
	"net/http"

	"github.com/crichub/handcricket-stats/internal/domain/teamdict"
)

type dictionaryEntryDTO struct {
	Player string `json:"player"`
	Team   string `json:"team"`
}

type dictionaryDTO struct {
	Serialized string               `json:"serialized"`
	Entries    []dictionaryEntryDTO `json:"entries"`
}

func dictionaryToDTO(d teamdict.Dictionary) dictionaryDTO {
	entries := d.Entries()
	out := dictionaryDTO{
		Serialized: d.Serialize(),
		Entries:    make([]dictionaryEntryDTO, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, dictionaryEntryDTO{Player: e.Player, Team: e.Team})
	}
	return out
}

func (h *Handler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDictionary")
	defer span.End()

	dict, err := h.dictionaryService.Get(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, dictionaryToDTO(dict))
}

type updateDictionaryRequest struct {
	Serialized string `json:"serialized" validate:"required"`
}

func (h *Handler) UpdateDictionary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDictionary")
	defer span.End()

	var req updateDictionaryRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dict, err := h.dictionaryService.Update(ctx, req.Serialized)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, dictionaryToDTO(dict))
}
