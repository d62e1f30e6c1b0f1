package domain

import (
	"strings"
	"unicode"
)

// DuplicateThreshold is the similarity above which two tracks are treated as
// the same recording (e.g. an original and its remaster).
const DuplicateThreshold = 0.9

var suffixTokens = map[string]struct{}{
	"clean":      {},
	"deluxe":     {},
	"edition":    {},
	"edit":       {},
	"explicit":   {},
	"feat":       {},
	"featuring":  {},
	"ft":         {},
	"live":       {},
	"mix":        {},
	"mono":       {},
	"radio":      {},
	"remaster":   {},
	"remastered": {},
	"stereo":     {},
	"version":    {},
}

// Normalize cleans a title or artist string for comparison.
func Normalize(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	lowered := strings.ToLower(strings.TrimSpace(input))
	trimmed := stripCommonSuffixes(lowered)
	cleaned := cleanSeparators(trimmed)

	return strings.Join(strings.Fields(cleaned), " ")
}

// ScoreResult returns a similarity score in [0,1] between two artist+title pairs.
func ScoreResult(targetArtist, targetTitle, actualArtist, actualTitle string) float64 {
	target := Normalize(strings.TrimSpace(targetArtist + " " + targetTitle))
	actual := Normalize(strings.TrimSpace(actualArtist + " " + actualTitle))
	if target == "" || actual == "" {
		return 0
	}

	return similarity(target, actual)
}

// SameRecording reports whether two tracks are near-duplicates.
func SameRecording(a, b Track) bool {
	if a.ID != "" && a.ID == b.ID {
		return true
	}
	return ScoreResult(a.Artist, a.Title, b.Artist, b.Title) >= DuplicateThreshold
}

func stripCommonSuffixes(input string) string {
	trimmed := strings.TrimSpace(input)
	for {
		next := trimBracketedSuffix(trimmed)
		next = trimDashSuffix(next)
		if next == trimmed {
			return trimmed
		}
		trimmed = strings.TrimSpace(next)
	}
}

func trimBracketedSuffix(input string) string {
	trimmed := strings.TrimSpace(input)
	for _, pair := range [][2]string{{"(", ")"}, {"[", "]"}} {
		if !strings.HasSuffix(trimmed, pair[1]) {
			continue
		}
		if idx := strings.LastIndex(trimmed, pair[0]); idx != -1 && idx < len(trimmed)-1 {
			if suffixHasToken(trimmed[idx+1 : len(trimmed)-1]) {
				return strings.TrimSpace(trimmed[:idx])
			}
		}
	}

	return input
}

func trimDashSuffix(input string) string {
	trimmed := strings.TrimSpace(input)
	idx := strings.LastIndex(trimmed, " - ")
	if idx == -1 {
		return input
	}

	if suffixHasToken(trimmed[idx+3:]) {
		return strings.TrimSpace(trimmed[:idx])
	}

	return input
}

func suffixHasToken(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	for _, token := range strings.Fields(cleanSeparators(strings.ToLower(input))) {
		if _, ok := suffixTokens[token]; ok {
			return true
		}
	}

	return false
}

func cleanSeparators(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			out.WriteRune(' ')
			lastSpace = true
		}
	}

	return out.String()
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

func levenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		copy(prev, curr)
	}

	return prev[len(rb)]
}
