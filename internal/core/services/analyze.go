package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

// MaxAnalyzedGenres caps how many of the requested genres are searched.
const MaxAnalyzedGenres = 5

// AnalyzeRequest asks for catalog songs of some genres to be scored against a
// listener's mood and activity.
type AnalyzeRequest struct {
	Genres   []string `json:"genres"`
	Mood     string   `json:"mood"`
	Activity string   `json:"activity"`
}

func (r AnalyzeRequest) Validate() error {
	if len(r.Genres) == 0 || strings.TrimSpace(r.Mood) == "" || strings.TrimSpace(r.Activity) == "" {
		return domain.MissingFields("genres", "mood", "activity")
	}
	return nil
}

// SongAnalysis is the verdict for one catalog track.
type SongAnalysis struct {
	Genre         string
	Track         domain.Track
	Result        domain.AnalysisResult
	LyricsFound   bool
	PreviewEnergy *float64
}

// AnalyzeLyrics scores lyrics against a mood and activity. A reply that cannot
// be parsed is reported through the result, not as an error; only a failed
// call to the language model returns an error.
func (o *Orchestrator) AnalyzeLyrics(ctx context.Context, lyrics, mood, activity string) (domain.AnalysisResult, error) {
	prompt := domain.BuildAnalysisPrompt(lyrics, mood, activity)

	reply, err := o.llm.Complete(ctx, prompt.System, prompt.User)
	if err != nil {
		return domain.AnalysisResult{}, external(serviceLLM, err)
	}

	result := domain.ParseLyricAnalysis(reply)
	if !result.OK() {
		log.Printf("WARN service: %v", result.Err)
	}
	return result, nil
}

// AnalyzeSongs searches the catalog for each of the first MaxAnalyzedGenres
// genres and analyzes the lyrics of the results. Near-duplicate tracks found
// under several genres are analyzed once.
func (o *Orchestrator) AnalyzeSongs(ctx context.Context, req AnalyzeRequest) ([]SongAnalysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	genres := req.Genres
	if len(genres) > MaxAnalyzedGenres {
		genres = genres[:MaxAnalyzedGenres]
	}

	analyses := make([]SongAnalysis, 0, len(genres)*o.tracksPerGenre)
	var selected []domain.Track

	for _, genre := range genres {
		genre = strings.TrimSpace(genre)
		if genre == "" {
			continue
		}

		tracks, err := o.catalog.SearchTracks(ctx, fmt.Sprintf("genre:%q", genre), o.tracksPerGenre)
		if err != nil {
			return nil, external(serviceCatalog, err)
		}

		for _, track := range tracks {
			if isDuplicate(selected, track) {
				log.Printf("DEBUG service: skipping duplicate %q by %s", track.Title, track.Artist)
				continue
			}
			selected = append(selected, track)

			analysis, err := o.analyzeTrack(ctx, genre, track, req)
			if err != nil {
				return nil, err
			}
			analyses = append(analyses, analysis)
		}
	}

	return analyses, nil
}

func (o *Orchestrator) analyzeTrack(ctx context.Context, genre string, track domain.Track, req AnalyzeRequest) (SongAnalysis, error) {
	lyrics, found := o.fetchLyrics(ctx, track)

	result, err := o.AnalyzeLyrics(ctx, lyrics, req.Mood, req.Activity)
	if err != nil {
		return SongAnalysis{}, err
	}

	analysis := SongAnalysis{
		Genre:       genre,
		Track:       track,
		Result:      result,
		LyricsFound: found,
	}

	if o.previews != nil && track.PreviewURL != "" {
		energy, err := o.previews.Energy(ctx, track.PreviewURL)
		if err != nil {
			log.Printf("WARN service: preview analysis failed for track %s: %v", track.ID, err)
		} else {
			analysis.PreviewEnergy = &energy
		}
	}

	return analysis, nil
}

// fetchLyrics returns the lyrics of a track, or a stand-in text naming the
// song when none can be retrieved.
func (o *Orchestrator) fetchLyrics(ctx context.Context, track domain.Track) (string, bool) {
	placeholder := fmt.Sprintf("(Lyrics unavailable. Judge the song %q by %s from its title and artist.)", track.Title, track.Artist)
	if o.lyrics == nil {
		return placeholder, false
	}

	artist := track.PrimaryArtist
	if artist == "" {
		artist = track.Artist
	}

	lyrics, err := o.lyrics.Lyrics(ctx, artist, track.LookupTitle())
	switch {
	case errors.Is(err, ports.ErrLyricsNotFound):
		log.Printf("INFO service: no lyrics for %q by %s", track.Title, artist)
		return placeholder, false
	case err != nil:
		log.Printf("WARN service: lyrics lookup failed for %q by %s: %v", track.Title, artist, err)
		return placeholder, false
	case strings.TrimSpace(lyrics) == "":
		return placeholder, false
	}
	return lyrics, true
}

func isDuplicate(selected []domain.Track, track domain.Track) bool {
	for _, s := range selected {
		if domain.SameRecording(s, track) {
			return true
		}
	}
	return false
}
