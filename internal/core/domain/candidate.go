package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

const (
	MinScore           = 0
	MaxScore           = 10
	TopRecommendations = 5
)

// Wire keys of a candidate record.
const (
	keySongName      = "song_name"
	keyMoodScore     = "mood_relevance_score"
	keyActivityScore = "activity_relevance_score"
	keyPersonalScore = "personal_relevance_score"
)

var candidateKeys = []string{keySongName, keyMoodScore, keyActivityScore, keyPersonalScore}

// SongCandidate is one caller-scored song.
type SongCandidate struct {
	Name          string  `json:"song_name"`
	MoodScore     float64 `json:"mood_relevance_score"`
	ActivityScore float64 `json:"activity_relevance_score"`
	PersonalScore float64 `json:"personal_relevance_score"`
}

// ParseCandidates validates raw wire records and converts them into typed candidates.
// The first violation aborts parsing; nothing is ranked on failure.
func ParseCandidates(items []json.RawMessage) ([]SongCandidate, error) {
	cands := make([]SongCandidate, 0, len(items))
	for _, item := range items {
		c, err := parseCandidate(item)
		if err != nil {
			return nil, err
		}
		cands = append(cands, c)
	}
	return cands, nil
}

func parseCandidate(item json.RawMessage) (SongCandidate, error) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return SongCandidate{}, &ValidationError{Reason: "expected a list of song records"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return SongCandidate{}, &ValidationError{Reason: "expected a list of song records"}
	}

	for _, key := range candidateKeys {
		if _, ok := fields[key]; !ok {
			return SongCandidate{}, &ValidationError{
				Field:  key,
				Reason: "missing required fields (" + key + ")",
			}
		}
	}

	var name string
	if err := json.Unmarshal(fields[keySongName], &name); err != nil || strings.TrimSpace(name) == "" {
		return SongCandidate{}, &ValidationError{Field: keySongName, Reason: keySongName + " must be a non-empty string"}
	}

	c := SongCandidate{Name: name}
	scores := []struct {
		key string
		dst *float64
	}{
		{keyMoodScore, &c.MoodScore},
		{keyActivityScore, &c.ActivityScore},
		{keyPersonalScore, &c.PersonalScore},
	}
	for _, s := range scores {
		v, err := parseScore(s.key, fields[s.key])
		if err != nil {
			return SongCandidate{}, err
		}
		*s.dst = v
	}

	return c, nil
}

func parseScore(key string, raw json.RawMessage) (float64, error) {
	var v float64
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, &ValidationError{Field: key, Reason: key + " must be a number"}
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, &ValidationError{Field: key, Reason: key + " must be a number"}
	}
	if v < MinScore || v > MaxScore {
		return 0, &ValidationError{
			Field:  key,
			Reason: fmt.Sprintf("%s must be between %d and %d", key, MinScore, MaxScore),
		}
	}
	return v, nil
}

// Rank orders candidates by mood, then personal, then activity score (all
// descending) and returns the names of the top TopRecommendations. The sort is
// stable, so full ties keep their input order.
func Rank(cands []SongCandidate) []string {
	sorted := slices.Clone(cands)
	slices.SortStableFunc(sorted, func(a, b SongCandidate) int {
		if c := compareDesc(a.MoodScore, b.MoodScore); c != 0 {
			return c
		}
		if c := compareDesc(a.PersonalScore, b.PersonalScore); c != 0 {
			return c
		}
		return compareDesc(a.ActivityScore, b.ActivityScore)
	})

	n := min(TopRecommendations, len(sorted))
	names := make([]string, 0, n)
	for _, c := range sorted[:n] {
		names = append(names, c.Name)
	}
	return names
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
