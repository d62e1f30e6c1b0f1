package spotify

// spotifyArtistRef is the simplified artist embedded in track objects.
type spotifyArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// spotifyTrack represents the Spotify API response for a track.
type spotifyTrack struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Artists      []spotifyArtistRef `json:"artists"`
	PreviewURL   string             `json:"preview_url"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// playlistItem wraps a track inside a playlist. Track is null for tracks
// that are no longer available.
type playlistItem struct {
	Track *spotifyTrack `json:"track"`
}

// playlistTracksPage is one page of GET /playlists/{id}/tracks.
type playlistTracksPage struct {
	Items []playlistItem `json:"items"`
	Next  *string        `json:"next"`
}

// spotifyArtist is the full artist object carrying genre tags.
type spotifyArtist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}

// artistsResponse is the reply of GET /artists. Unknown ids come back as null.
type artistsResponse struct {
	Artists []*spotifyArtist `json:"artists"`
}

// searchResponse is the reply of GET /search?type=track.
type searchResponse struct {
	Tracks *struct {
		Items []*spotifyTrack `json:"items"`
	} `json:"tracks"`
}
