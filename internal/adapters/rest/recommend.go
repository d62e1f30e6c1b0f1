package rest

import (
	"encoding/json"
	"net/http"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

// Recommend handles POST /api/recommend
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	// 1. Decode the Request Body
	var raw json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		respondError(w, r, err)
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		respondError(w, r, &domain.ValidationError{Reason: "expected a list of song records"})
		return
	}

	// 2. Validate Input
	cands, err := domain.ParseCandidates(items)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// 3. Rank
	writeJSON(w, http.StatusOK, h.svc.Recommend(cands))
}
