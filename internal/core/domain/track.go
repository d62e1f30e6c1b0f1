package domain

// Track represents a catalog track in the domain layer.
type Track struct {
	ID            string
	Title         string
	Artist        string   // display names, comma separated
	PrimaryArtist string   // first credited artist
	ArtistIDs     []string // catalog ids in credit order
	SpotifyURL    string
	PreviewURL    string // optional 30s clip
}

// LookupTitle returns the title without release suffixes such as
// "- Remastered 2011" or "(Live)", keeping the original casing.
func (t Track) LookupTitle() string {
	if stripped := stripCommonSuffixes(t.Title); stripped != "" {
		return stripped
	}
	return t.Title
}

// TrackPage is one page of playlist items.
type TrackPage struct {
	Tracks []Track
	Items  int    // playlist items on this page, including unavailable tracks
	Next   string // opaque cursor of the following page, empty on the last one
}

// Artist carries the genre tags the catalog knows for an artist.
type Artist struct {
	ID     string
	Name   string
	Genres []string
}
