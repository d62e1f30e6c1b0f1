package domain

import (
	"fmt"
	"strings"
)

// GenerationVariants is the number of clips a generation must yield.
const GenerationVariants = 2

// GenerationRequest describes the listener a song should be generated for.
type GenerationRequest struct {
	Mood            string `json:"mood"`
	Activity        string `json:"activity"`
	PersonalDetails string `json:"personal_details"`
}

func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Mood) == "" ||
		strings.TrimSpace(r.Activity) == "" ||
		strings.TrimSpace(r.PersonalDetails) == "" {
		return MissingFields("mood", "activity", "personal_details")
	}
	return nil
}

// Prompt renders the text sent to the song generator.
func (r GenerationRequest) Prompt() string {
	return fmt.Sprintf(
		"Write a song for someone who is feeling %s while %s. Personal details: %s",
		strings.TrimSpace(r.Mood),
		strings.TrimSpace(r.Activity),
		strings.TrimSpace(r.PersonalDetails),
	)
}

// GeneratedClip is one rendered variant of a generated song.
type GeneratedClip struct {
	ID       string
	AudioURL string
}
