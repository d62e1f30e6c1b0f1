package services

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

// maxPlaylistPages bounds pagination against a catalog that never stops
// returning a next cursor.
const maxPlaylistPages = 1000

// PlaylistGenres fetches every track of a playlist, looks up the genres of all
// credited artists and returns the most frequent ones.
func (o *Orchestrator) PlaylistGenres(ctx context.Context, playlistRef string) (domain.GenreReport, error) {
	playlistID := domain.PlaylistIDFromRef(playlistRef)
	if playlistID == "" {
		return domain.GenreReport{}, &domain.ValidationError{
			Field:  "playlist_url",
			Reason: "playlist_url does not contain a playlist id",
		}
	}

	// 1. Walk all pages, collecting artist ids in first-seen order
	totalTracks := 0
	var artistIDs []string
	seen := make(map[string]struct{})

	cursor := ""
	for pages := 0; ; pages++ {
		if pages == maxPlaylistPages {
			return domain.GenreReport{}, fmt.Errorf("service: playlist %s exceeded %d pages: %w", playlistID, maxPlaylistPages, domain.ErrMalformedResponse)
		}

		page, err := o.catalog.PlaylistTracksPage(ctx, playlistID, cursor)
		if err != nil {
			return domain.GenreReport{}, external(serviceCatalog, err)
		}

		totalTracks += page.Items
		for _, track := range page.Tracks {
			for _, id := range track.ArtistIDs {
				if _, dup := seen[id]; dup || id == "" {
					continue
				}
				seen[id] = struct{}{}
				artistIDs = append(artistIDs, id)
			}
		}

		if page.Next == "" {
			break
		}
		cursor = page.Next
	}

	// 2. Look up artists in catalog-sized batches and count their genres
	counts := domain.GenreCount{}
	for batch := range slices.Chunk(artistIDs, domain.MaxArtistBatch) {
		artists, err := o.catalog.Artists(ctx, batch)
		if err != nil {
			return domain.GenreReport{}, external(serviceCatalog, err)
		}
		for _, a := range artists {
			counts.Add(a.Genres...)
		}
	}

	log.Printf("INFO service: playlist %s has %d tracks, %d artists, %d genres", playlistID, totalTracks, len(artistIDs), len(counts))

	return domain.GenreReport{
		PlaylistID:  playlistID,
		TotalTracks: totalTracks,
		Genres:      counts.Top(domain.TopGenreLimit),
	}, nil
}
