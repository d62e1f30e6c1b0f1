package rest

import (
	"net/http"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/services"
)

type generateSongResponse struct {
	ID0       string `json:"id_0"`
	AudioURL0 string `json:"audio_url_0"`
	ID1       string `json:"id_1"`
	AudioURL1 string `json:"audio_url_1"`
}

type songAnalysisResponse struct {
	Genre                string   `json:"genre"`
	TrackName            string   `json:"track_name"`
	ArtistName           string   `json:"artist_name"`
	SpotifyURL           string   `json:"spotify_url"`
	MoodScore            int      `json:"mood_score"`
	RelevanceScore       int      `json:"relevance_score"`
	Summary              string   `json:"summary"`
	MoodExplanation      string   `json:"mood_explanation"`
	RelevanceExplanation string   `json:"relevance_explanation"`
	ParseError           bool     `json:"parse_error,omitempty"`
	PreviewEnergy        *float64 `json:"preview_energy,omitempty"`
}

// GenerateSong handles POST /api/generate-song
func (h *Handler) GenerateSong(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	clips, err := h.svc.GenerateSong(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateSongResponse{
		ID0:       clips[0].ID,
		AudioURL0: clips[0].AudioURL,
		ID1:       clips[1].ID,
		AudioURL1: clips[1].AudioURL,
	})
}

// AnalyzeSongs handles POST /api/analyze-songs
func (h *Handler) AnalyzeSongs(w http.ResponseWriter, r *http.Request) {
	var req services.AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	analyses, err := h.svc.AnalyzeSongs(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]songAnalysisResponse, 0, len(analyses))
	for _, a := range analyses {
		// Unparseable replies keep the sentinel record so the shape stays stable.
		la := a.Result.OrSentinel()
		resp = append(resp, songAnalysisResponse{
			Genre:                a.Genre,
			TrackName:            a.Track.Title,
			ArtistName:           a.Track.Artist,
			SpotifyURL:           a.Track.SpotifyURL,
			MoodScore:            la.MoodScore,
			RelevanceScore:       la.RelevanceScore,
			Summary:              la.Summary,
			MoodExplanation:      la.MoodExplanation,
			RelevanceExplanation: la.RelevanceExplanation,
			ParseError:           !a.Result.OK(),
			PreviewEnergy:        a.PreviewEnergy,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
