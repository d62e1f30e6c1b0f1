package spotify

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

const (
	playlistPageLimit = 100
	// only the fields genre counting needs
	playlistFields = "items(track(id,name,artists(id,name))),next"
)

// PlaylistTracksPage fetches one page of a playlist. An empty cursor starts at
// the first page; otherwise the cursor is the next URL returned by the
// previous page.
func (c *Client) PlaylistTracksPage(ctx context.Context, playlistID, cursor string) (domain.TrackPage, error) {
	pageURL, err := c.playlistPageURL(playlistID, cursor)
	if err != nil {
		return domain.TrackPage{}, fmt.Errorf("spotify adapter: playlist %s: %w", playlistID, err)
	}

	log.Printf("DEBUG spotify adapter: playlist page URL: %s", pageURL) // #nosec G706 -- URL is built from the configured baseURL

	var page playlistTracksPage
	if err := c.getJSON(ctx, pageURL, &page); err != nil {
		return domain.TrackPage{}, fmt.Errorf("spotify adapter: playlist %s: %w", playlistID, err)
	}

	return mapPageToDomain(page), nil
}

func (c *Client) playlistPageURL(playlistID, cursor string) (string, error) {
	if cursor != "" {
		// Never follow a next link off the configured API host.
		if !strings.HasPrefix(cursor, c.baseURL+"/") {
			return "", fmt.Errorf("next link %q outside %s: %w", cursor, c.baseURL, domain.ErrMalformedResponse)
		}
		return cursor, nil
	}

	u, err := url.Parse(fmt.Sprintf("%s/playlists/%s/tracks", c.baseURL, url.PathEscape(playlistID)))
	if err != nil {
		return "", fmt.Errorf("invalid playlist url: %w", err)
	}
	query := u.Query()
	query.Set("limit", fmt.Sprint(playlistPageLimit))
	query.Set("fields", playlistFields)
	u.RawQuery = query.Encode()

	return u.String(), nil
}
