package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ParseErrorMarker fills the text fields of the sentinel analysis.
const ParseErrorMarker = "parsing error"

// ErrUnparseableAnalysis is carried by an AnalysisResult whose reply could not be parsed.
var ErrUnparseableAnalysis = errors.New("unparseable lyric analysis")

// LyricAnalysis is the structured verdict of the language model on a song's lyrics.
type LyricAnalysis struct {
	MoodScore            int    `json:"mood_score"`
	RelevanceScore       int    `json:"relevance_score"`
	Summary              string `json:"summary"`
	MoodExplanation      string `json:"mood_explanation"`
	RelevanceExplanation string `json:"relevance_explanation"`
}

// SentinelAnalysis is substituted when a reply cannot be parsed.
func SentinelAnalysis() LyricAnalysis {
	return LyricAnalysis{
		Summary:              ParseErrorMarker,
		MoodExplanation:      ParseErrorMarker,
		RelevanceExplanation: ParseErrorMarker,
	}
}

// AnalysisResult holds either a parsed analysis or the reason it could not be parsed.
type AnalysisResult struct {
	Analysis LyricAnalysis
	Err      error
}

func (r AnalysisResult) OK() bool {
	return r.Err == nil
}

// OrSentinel returns the parsed analysis, or SentinelAnalysis when unparseable.
func (r AnalysisResult) OrSentinel() LyricAnalysis {
	if r.Err != nil {
		return SentinelAnalysis()
	}
	return r.Analysis
}

// wireAnalysis uses pointers so absent keys can be told apart from zero values.
type wireAnalysis struct {
	MoodScore            *json.Number `json:"mood_score"`
	RelevanceScore       *json.Number `json:"relevance_score"`
	Summary              *string      `json:"summary"`
	MoodExplanation      *string      `json:"mood_explanation"`
	RelevanceExplanation *string      `json:"relevance_explanation"`
}

// ParseLyricAnalysis decodes a model reply. It never panics or returns a
// partially populated analysis: either every field is valid or Err is set.
func ParseLyricAnalysis(text string) AnalysisResult {
	body := stripCodeFence(text)

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var w wireAnalysis
	if err := dec.Decode(&w); err != nil {
		return unparseable("decode reply: %v", err)
	}

	if w.MoodScore == nil || w.RelevanceScore == nil || w.Summary == nil ||
		w.MoodExplanation == nil || w.RelevanceExplanation == nil {
		return unparseable("reply is missing required keys")
	}

	mood, err := scoreFromNumber(*w.MoodScore)
	if err != nil {
		return unparseable("mood_score: %v", err)
	}
	relevance, err := scoreFromNumber(*w.RelevanceScore)
	if err != nil {
		return unparseable("relevance_score: %v", err)
	}

	return AnalysisResult{Analysis: LyricAnalysis{
		MoodScore:            mood,
		RelevanceScore:       relevance,
		Summary:              *w.Summary,
		MoodExplanation:      *w.MoodExplanation,
		RelevanceExplanation: *w.RelevanceExplanation,
	}}
}

func unparseable(format string, args ...any) AnalysisResult {
	return AnalysisResult{
		Analysis: SentinelAnalysis(),
		Err:      fmt.Errorf("%w: %s", ErrUnparseableAnalysis, fmt.Sprintf(format, args...)),
	}
}

func scoreFromNumber(n json.Number) (int, error) {
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("not an integer: %s", n)
	}
	if v < MinScore || v > MaxScore {
		return 0, fmt.Errorf("%d outside [%d,%d]", v, MinScore, MaxScore)
	}
	return int(v), nil
}

// stripCodeFence removes a surrounding Markdown fence such as ```json ... ```.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl != -1 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// AnalysisPrompt holds the two prompt halves sent to the language model.
type AnalysisPrompt struct {
	System string
	User   string
}

const analysisSystemPrompt = "You are a music analyst. You read song lyrics and judge how well they fit a listener's mood and activity. " +
	"Respond with ONLY a JSON object, no prose and no Markdown."

// BuildAnalysisPrompt renders the fixed-shape prompt for one song.
func BuildAnalysisPrompt(lyrics, mood, activity string) AnalysisPrompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following song lyrics for a listener who is feeling %q while %q.\n\n", mood, activity)
	b.WriteString("Lyrics:\n")
	b.WriteString(lyrics)
	b.WriteString("\n\nReturn strict JSON with exactly these keys:\n")
	b.WriteString(`{"mood_score": <integer 0-10, how well the song matches the mood>, `)
	b.WriteString(`"relevance_score": <integer 0-10, how well the song suits the activity>, `)
	b.WriteString(`"summary": "<one or two sentence summary of the lyrics>", `)
	b.WriteString(`"mood_explanation": "<why the mood score was given>", `)
	b.WriteString(`"relevance_explanation": "<why the relevance score was given>"}`)
	return AnalysisPrompt{System: analysisSystemPrompt, User: b.String()}
}
