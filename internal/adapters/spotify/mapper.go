package spotify

import (
	"strings"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

// mapTrackToDomain converts a raw Spotify track to a clean Domain track.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	// 1. Flatten Artists (List -> String), keeping ids in credit order
	artistNames := make([]string, 0, len(st.Artists))
	artistIDs := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		artistNames = append(artistNames, a.Name)
		if a.ID != "" {
			artistIDs = append(artistIDs, a.ID)
		}
	}

	primary := ""
	if len(artistNames) > 0 {
		primary = artistNames[0]
	}

	return domain.Track{
		ID:            st.ID,
		Title:         st.Name,
		Artist:        strings.Join(artistNames, ", "),
		PrimaryArtist: primary,
		ArtistIDs:     artistIDs,
		SpotifyURL:    st.ExternalURLs.Spotify,
		PreviewURL:    st.PreviewURL,
	}
}

// mapPageToDomain converts a playlist page. Items without a track still count
// toward Items but yield no Track.
func mapPageToDomain(page playlistTracksPage) domain.TrackPage {
	tracks := make([]domain.Track, 0, len(page.Items))
	for _, item := range page.Items {
		if item.Track == nil {
			continue
		}
		tracks = append(tracks, mapTrackToDomain(*item.Track))
	}

	next := ""
	if page.Next != nil {
		next = *page.Next
	}

	return domain.TrackPage{
		Tracks: tracks,
		Items:  len(page.Items),
		Next:   next,
	}
}

func mapArtistToDomain(sa spotifyArtist) domain.Artist {
	return domain.Artist{
		ID:     sa.ID,
		Name:   sa.Name,
		Genres: sa.Genres,
	}
}
