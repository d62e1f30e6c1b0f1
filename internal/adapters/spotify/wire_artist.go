package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

// Artists looks up at most domain.MaxArtistBatch artists in one request.
// Ids the API does not know are skipped.
func (c *Client) Artists(ctx context.Context, ids []string) ([]domain.Artist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > domain.MaxArtistBatch {
		return nil, fmt.Errorf("spotify adapter: %d artist ids exceed the batch limit of %d", len(ids), domain.MaxArtistBatch)
	}

	artistsURL, err := url.Parse(fmt.Sprintf("%s/artists", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid artists url: %w", err)
	}
	query := artistsURL.Query()
	query.Set("ids", strings.Join(ids, ","))
	artistsURL.RawQuery = query.Encode()

	var body artistsResponse
	if err := c.getJSON(ctx, artistsURL.String(), &body); err != nil {
		return nil, fmt.Errorf("spotify adapter: artists: %w", err)
	}

	artists := make([]domain.Artist, 0, len(body.Artists))
	for _, a := range body.Artists {
		if a == nil { // Spotify returns null for unknown ids
			continue
		}
		artists = append(artists, mapArtistToDomain(*a))
	}

	return artists, nil
}
