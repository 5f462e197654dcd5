package transcript_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"podstats/internal/transcript"
)

type keywordSentiment struct{}

func (keywordSentiment) Compound(text string) float64 {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "good"):
		return 0.5
	case strings.Contains(lower, "bad"):
		return -0.5
	default:
		return 0
	}
}

type keywordProfanity struct{}

func (keywordProfanity) Predict(text string) bool {
	return strings.Contains(strings.ToLower(text), "darn")
}

func (p keywordProfanity) Probability(text string) float64 {
	if p.Predict(text) {
		return 0.9
	}
	return 0.1
}

func fakeScorer() transcript.Scorer {
	return transcript.Scorer{Sentiment: keywordSentiment{}, Profanity: keywordProfanity{}}
}

func parseString(t *testing.T, body string) *transcript.Conversation {
	t.Helper()
	conv, err := transcript.Parse(strings.NewReader(body), fakeScorer())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return conv
}

func TestParseHeader(t *testing.T) {
	conv := parseString(t, "Episode 12 - The One\n  Pilot Night  \n January 3, 2019 \nChris: Hello.\n")
	if conv.ID != 12 {
		t.Fatalf("ID = %d, want 12", conv.ID)
	}
	if conv.Title != "Pilot Night" {
		t.Fatalf("Title = %q", conv.Title)
	}
	if conv.Date != "January 3, 2019" {
		t.Fatalf("Date = %q", conv.Date)
	}
	if got := conv.String(); got != "<Episode 12: Pilot Night (January 3, 2019)>" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseMergesConsecutiveSpeakerLines(t *testing.T) {
	tests := []struct {
		name     string
		dialogue string
		speakers []string
		words    []string
	}{
		{
			name:     "single line",
			dialogue: "Chris: Only one line here.",
			speakers: []string{"Chris"},
			words:    []string{"Only one line here."},
		},
		{
			name:     "single speaker many lines",
			dialogue: "Chris: One.\nChris: Two.\nChris: Three.",
			speakers: []string{"Chris"},
			words:    []string{"One.\nTwo.\nThree."},
		},
		{
			name:     "alternating",
			dialogue: "Chris: Hi.\nCaller: Hey.\nChris: Bye.",
			speakers: []string{"Chris", "Caller", "Chris"},
			words:    []string{"Hi.", "Hey.", "Bye."},
		},
		{
			name:     "runs then change on last line",
			dialogue: "Chris: A.\nChris: B.\nCaller: C.\nCaller: D.\nChris: E.",
			speakers: []string{"Chris", "Caller", "Chris"},
			words:    []string{"A.\nB.", "C.\nD.", "E."},
		},
		{
			name:     "colon inside words",
			dialogue: "Chris: Time is 10:30.\nCaller:   Ratio 2:1  ",
			speakers: []string{"Chris", "Caller"},
			words:    []string{"Time is 10:30.", "Ratio 2:1"},
		},
		{
			name:     "empty words kept",
			dialogue: "Chris:\nCaller: Hello?",
			speakers: []string{"Chris", "Caller"},
			words:    []string{"", "Hello?"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := parseString(t, "Episode 1\nTitle\nDate\n"+tt.dialogue+"\n")
			if len(conv.Lines) != len(tt.speakers) {
				t.Fatalf("got %d lines, want %d: %v", len(conv.Lines), len(tt.speakers), conv.Lines)
			}
			for i, line := range conv.Lines {
				if line.Speaker != tt.speakers[i] {
					t.Errorf("line %d speaker = %q, want %q", i, line.Speaker, tt.speakers[i])
				}
				if line.Words != tt.words[i] {
					t.Errorf("line %d words = %q, want %q", i, line.Words, tt.words[i])
				}
			}
		})
	}
}

func TestParseLineCountIsSpeakerChangesPlusOne(t *testing.T) {
	speakers := []string{"A", "A", "B", "A", "B", "B", "B", "C", "A", "A"}
	var b strings.Builder
	b.WriteString("Episode 7\nT\nD\n")
	changes := 0
	for i, s := range speakers {
		if i > 0 && s != speakers[i-1] {
			changes++
		}
		b.WriteString(s + ": words\n")
	}
	conv := parseString(t, b.String())
	if len(conv.Lines) != changes+1 {
		t.Fatalf("got %d lines, want %d", len(conv.Lines), changes+1)
	}
	for i := 1; i < len(conv.Lines); i++ {
		if conv.Lines[i].Speaker == conv.Lines[i-1].Speaker {
			t.Fatalf("adjacent lines %d and %d share speaker %q", i-1, i, conv.Lines[i].Speaker)
		}
	}
}

func TestParseSkipsBlankRowsAndCRLF(t *testing.T) {
	conv := parseString(t, "\ufeffEpisode 3\r\nTitle\r\nDate\r\nChris: One.\r\n\r\nChris: Two.\r\n\r\n")
	if conv.ID != 3 {
		t.Fatalf("ID = %d", conv.ID)
	}
	if len(conv.Lines) != 1 || conv.Lines[0].Words != "One.\nTwo." {
		t.Fatalf("unexpected lines: %#v", conv.Lines)
	}
}

func TestParseScoresSentences(t *testing.T) {
	conv := parseString(t, "Episode 1\nT\nD\nChris: This is good. That was darn bad!\nCaller: Okay.\n")
	first := conv.Lines[0]
	if first.SentenceCount() != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", first.SentenceCount(), first.Sentences)
	}
	if first.Sentences[0].Sentiment != 0.5 || first.Sentences[1].Sentiment != -0.5 {
		t.Fatalf("unexpected sentiments: %v", first.Sentiments())
	}
	if !first.Sentences[1].IsProfane || first.Sentences[1].ProfanityProb != 0.9 {
		t.Fatalf("expected second sentence profane: %+v", first.Sentences[1])
	}
	if first.ProfanityCount() != 1 {
		t.Fatalf("ProfanityCount = %d", first.ProfanityCount())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"header only", "Episode 1\nTitle\n"},
		{"no dialogue", "Episode 1\nTitle\nDate\n\n"},
		{"bad id", "Episode one\nTitle\nDate\nA: hi\n"},
		{"no id", "Episode\nTitle\nDate\nA: hi\n"},
		{"missing colon", "Episode 1\nTitle\nDate\nA: hi\njust words\n"},
		{"blank speaker", "Episode 1\nTitle\nDate\nChris: one two three\n: four\n"},
		{"whitespace speaker", "Episode 1\nTitle\nDate\n   : four\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transcript.Parse(strings.NewReader(tt.body), transcript.Scorer{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, transcript.ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestParseFileRecordsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ba_01.txt")
	if err := os.WriteFile(path, []byte("Episode 1: Start\nTitle\nDate\nChris: Hi.\n"), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	conv, err := transcript.ParseFile(path, transcript.Scorer{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if conv.Source != path || conv.ID != 1 {
		t.Fatalf("unexpected conversation: %+v", conv)
	}

	if _, err := transcript.ParseFile(filepath.Join(t.TempDir(), "missing.txt"), transcript.Scorer{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
