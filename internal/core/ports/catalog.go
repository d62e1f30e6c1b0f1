package ports

import (
	"context"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

// CatalogProvider is the music catalog collaborator.
type CatalogProvider interface {
	// PlaylistTracksPage returns one page of a playlist. An empty cursor
	// requests the first page; the returned page's Next feeds the following call.
	PlaylistTracksPage(ctx context.Context, playlistID, cursor string) (domain.TrackPage, error)
	// Artists looks up at most domain.MaxArtistBatch artists in one call.
	Artists(ctx context.Context, ids []string) ([]domain.Artist, error)
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)
}
