package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func rawItems(t *testing.T, body string) []json.RawMessage {
	t.Helper()
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return items
}

func TestParseCandidates(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantField string
		wantMsg   string
		wantErr   bool
	}{
		{
			name:    "empty list",
			body:    `[]`,
			wantLen: 0,
		},
		{
			name:    "valid records",
			body:    `[{"song_name":"A","mood_relevance_score":1,"activity_relevance_score":2.5,"personal_relevance_score":10}]`,
			wantLen: 1,
		},
		{
			name:      "missing personal score",
			body:      `[{"song_name":"Invalid","mood_relevance_score":5,"activity_relevance_score":5}]`,
			wantErr:   true,
			wantField: "personal_relevance_score",
			wantMsg:   "missing required fields",
		},
		{
			name:      "mood score above range",
			body:      `[{"song_name":"Invalid","mood_relevance_score":11,"activity_relevance_score":5,"personal_relevance_score":5}]`,
			wantErr:   true,
			wantField: "mood_relevance_score",
			wantMsg:   "must be between 0 and 10",
		},
		{
			name:      "activity score below range",
			body:      `[{"song_name":"Invalid","mood_relevance_score":1,"activity_relevance_score":-0.5,"personal_relevance_score":5}]`,
			wantErr:   true,
			wantField: "activity_relevance_score",
			wantMsg:   "activity_relevance_score must be between 0 and 10",
		},
		{
			name:      "score is a string",
			body:      `[{"song_name":"X","mood_relevance_score":"high","activity_relevance_score":5,"personal_relevance_score":5}]`,
			wantErr:   true,
			wantField: "mood_relevance_score",
			wantMsg:   "must be a number",
		},
		{
			name:      "score is null",
			body:      `[{"song_name":"X","mood_relevance_score":1,"activity_relevance_score":5,"personal_relevance_score":null}]`,
			wantErr:   true,
			wantField: "personal_relevance_score",
			wantMsg:   "must be a number",
		},
		{
			name:      "blank name",
			body:      `[{"song_name":" ","mood_relevance_score":1,"activity_relevance_score":5,"personal_relevance_score":5}]`,
			wantErr:   true,
			wantField: "song_name",
		},
		{
			name:    "element is not a record",
			body:    `["song_name", 3]`,
			wantErr: true,
			wantMsg: "expected a list of song records",
		},
		{
			name: "later bad element fails the whole list",
			body: `[{"song_name":"A","mood_relevance_score":1,"activity_relevance_score":2,"personal_relevance_score":3},
			        {"song_name":"B","mood_relevance_score":1,"activity_relevance_score":20,"personal_relevance_score":3}]`,
			wantErr:   true,
			wantField: "activity_relevance_score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCandidates(rawItems(t, tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if !tt.wantErr {
				if len(got) != tt.wantLen {
					t.Fatalf("len: got %d, want %d", len(got), tt.wantLen)
				}
				return
			}
			if got != nil {
				t.Fatalf("expected no candidates on error, got %v", got)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field: got %q, want %q", vErr.Field, tt.wantField)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("message %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name  string
		cands []SongCandidate
		want  []string
	}{
		{
			name:  "empty input",
			cands: nil,
			want:  []string{},
		},
		{
			name: "composite key with top five cut",
			cands: []SongCandidate{
				{Name: "Happy", MoodScore: 8, ActivityScore: 6, PersonalScore: 7},
				{Name: "Sad", MoodScore: 3, ActivityScore: 4, PersonalScore: 2},
				{Name: "Energetic", MoodScore: 9, ActivityScore: 8, PersonalScore: 6},
				{Name: "Calm", MoodScore: 5, ActivityScore: 3, PersonalScore: 8},
				{Name: "Focused", MoodScore: 7, ActivityScore: 9, PersonalScore: 5},
				{Name: "Relaxed", MoodScore: 6, ActivityScore: 2, PersonalScore: 9},
				{Name: "Upbeat", MoodScore: 9, ActivityScore: 7, PersonalScore: 8},
			},
			want: []string{"Upbeat", "Energetic", "Happy", "Focused", "Relaxed"},
		},
		{
			name: "activity breaks mood and personal tie",
			cands: []SongCandidate{
				{Name: "Slow", MoodScore: 5, ActivityScore: 1, PersonalScore: 5},
				{Name: "Fast", MoodScore: 5, ActivityScore: 9, PersonalScore: 5},
			},
			want: []string{"Fast", "Slow"},
		},
		{
			name: "full tie keeps input order",
			cands: []SongCandidate{
				{Name: "First", MoodScore: 4, ActivityScore: 4, PersonalScore: 4},
				{Name: "Second", MoodScore: 4, ActivityScore: 4, PersonalScore: 4},
				{Name: "Third", MoodScore: 4, ActivityScore: 4, PersonalScore: 4},
			},
			want: []string{"First", "Second", "Third"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.cands)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Rank: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank_OutputIsSortedAndBounded(t *testing.T) {
	var cands []SongCandidate
	for i := 0; i < 23; i++ {
		cands = append(cands, SongCandidate{
			Name:          string(rune('a' + i)),
			MoodScore:     float64((i * 7) % 11),
			ActivityScore: float64((i * 3) % 11),
			PersonalScore: float64((i * 5) % 11),
		})
	}
	byName := make(map[string]SongCandidate, len(cands))
	for _, c := range cands {
		byName[c.Name] = c
	}

	for n := 0; n <= len(cands); n++ {
		got := Rank(cands[:n])
		if len(got) != min(TopRecommendations, n) {
			t.Fatalf("n=%d: got %d names", n, len(got))
		}
		for i := 1; i < len(got); i++ {
			a, b := byName[got[i-1]], byName[got[i]]
			ka := [3]float64{a.MoodScore, a.PersonalScore, a.ActivityScore}
			kb := [3]float64{b.MoodScore, b.PersonalScore, b.ActivityScore}
			for k := 0; k < 3; k++ {
				if ka[k] != kb[k] {
					if ka[k] < kb[k] {
						t.Fatalf("n=%d: %q ranked above %q", n, a.Name, b.Name)
					}
					break
				}
			}
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	cands := []SongCandidate{
		{Name: "Low", MoodScore: 1},
		{Name: "High", MoodScore: 9},
	}
	_ = Rank(cands)
	if cands[0].Name != "Low" {
		t.Fatalf("input reordered: %+v", cands)
	}
}
