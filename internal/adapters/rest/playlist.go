package rest

import (
	"net/http"
	"strings"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

type playlistGenresRequest struct {
	PlaylistURL *string `json:"playlist_url"`
}

// PlaylistGenres handles POST /api/playlist-genres
func (h *Handler) PlaylistGenres(w http.ResponseWriter, r *http.Request) {
	var req playlistGenresRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.PlaylistURL == nil || strings.TrimSpace(*req.PlaylistURL) == "" {
		respondError(w, r, domain.MissingFields("playlist_url"))
		return
	}

	report, err := h.svc.PlaylistGenres(r.Context(), strings.TrimSpace(*req.PlaylistURL))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
