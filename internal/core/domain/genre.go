package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

const (
	// MaxArtistBatch is the catalog's limit on ids per artist lookup.
	MaxArtistBatch = 50
	TopGenreLimit  = 10
)

const playlistURIPrefix = "spotify:playlist:"

// PlaylistIDFromRef extracts a playlist id from a share URL, a catalog URI or
// a bare id. Malformed references are not rejected; they simply yield
// whatever substring results.
func PlaylistIDFromRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, playlistURIPrefix) {
		return strings.TrimPrefix(ref, playlistURIPrefix)
	}
	segment := ref[strings.LastIndex(ref, "/")+1:]
	id, _, _ := strings.Cut(segment, "?")
	return id
}

// GenreCount maps a genre label to the number of times it was seen.
type GenreCount map[string]int

// Add counts one occurrence of each genre.
func (gc GenreCount) Add(genres ...string) {
	for _, g := range genres {
		gc[g]++
	}
}

// GenreTally is one entry of a GenreRanking.
type GenreTally struct {
	Genre string
	Count int
}

// Top returns at most n genres, highest count first. Equal counts are ordered
// by genre name so output is deterministic.
func (gc GenreCount) Top(n int) GenreRanking {
	ranking := make(GenreRanking, 0, len(gc))
	for g, c := range gc {
		ranking = append(ranking, GenreTally{Genre: g, Count: c})
	}
	slices.SortFunc(ranking, func(a, b GenreTally) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Genre, b.Genre)
	})
	if n >= 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// GenreRanking is an ordered genre histogram. It encodes as a JSON object
// whose keys appear in rank order.
type GenreRanking []GenreTally

func (r GenreRanking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t.Genre)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(t.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Counts returns the ranking as a plain map.
func (r GenreRanking) Counts() map[string]int {
	m := make(map[string]int, len(r))
	for _, t := range r {
		m[t.Genre] = t.Count
	}
	return m
}

// GenreReport is the result of aggregating a playlist's genres.
type GenreReport struct {
	PlaylistID  string       `json:"playlist_id"`
	TotalTracks int          `json:"total_tracks"`
	Genres      GenreRanking `json:"genres"`
}
