package spotify

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

const maxSearchLimit = 50

// SearchTracks runs a track search and returns up to limit results in the
// order the API ranks them.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	limit = max(1, min(limit, maxSearchLimit))

	searchURL, err := url.Parse(fmt.Sprintf("%s/search", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", "track")
	q.Set("limit", strconv.Itoa(limit))
	searchURL.RawQuery = q.Encode()

	log.Printf("DEBUG spotify adapter: search request URL: %s", searchURL.String()) // #nosec G706 -- URL is built from the configured baseURL

	var body searchResponse
	if err := c.getJSON(ctx, searchURL.String(), &body); err != nil {
		return nil, fmt.Errorf("spotify adapter: search %q: %w", query, err)
	}
	if body.Tracks == nil {
		return nil, fmt.Errorf("spotify adapter: search %q: reply has no tracks: %w", query, domain.ErrMalformedResponse)
	}

	tracks := make([]domain.Track, 0, len(body.Tracks.Items))
	for _, st := range body.Tracks.Items {
		if st == nil || st.ID == "" {
			continue
		}
		tracks = append(tracks, mapTrackToDomain(*st))
		if len(tracks) == limit {
			break
		}
	}

	return tracks, nil
}
