package ports

import (
	"context"
	"errors"
)

// ErrLyricsNotFound indicates the lyrics collaborator has no text for a song.
var ErrLyricsNotFound = errors.New("lyrics not found")

type LyricsProvider interface {
	Lyrics(ctx context.Context, artist, title string) (string, error)
}
