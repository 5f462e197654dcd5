package transcript_test

import (
	"math"
	"reflect"
	"testing"
)

const sampleEpisode = `Episode 5 Fifth
The Fifth One
2019-05-05
Chris: Good morning. Welcome back.
Caller: That was bad. Darn it.
Chris: Good... okay.
Chris: Another line here
Caller: Bye.
`

func TestConversationAggregations(t *testing.T) {
	conv := parseString(t, sampleEpisode)

	if got := conv.Speakers(); !reflect.DeepEqual(got, []string{"Chris", "Caller"}) {
		t.Fatalf("Speakers() = %v", got)
	}
	if conv.LineCount("") != 4 {
		t.Fatalf("LineCount = %d, want 4", conv.LineCount(""))
	}
	if conv.LineCount("Chris") != 2 || conv.LineCount("Caller") != 2 {
		t.Fatalf("unexpected per-speaker line counts")
	}
	if conv.LineCount("Nobody") != 0 {
		t.Fatalf("expected no lines for unknown speaker")
	}

	// "Good morning. Welcome back." = 4, "Good... okay.\nAnother line here" = 5
	if got := conv.WordCount("Chris"); got != 9 {
		t.Fatalf("WordCount(Chris) = %d, want 9", got)
	}
	if got := conv.WordCount("Caller"); got != 6 {
		t.Fatalf("WordCount(Caller) = %d, want 6", got)
	}
	if conv.WordCount("") != 15 {
		t.Fatalf("WordCount() = %d, want 15", conv.WordCount(""))
	}

	if got := conv.ProfanityCount("Caller"); got != 1 {
		t.Fatalf("ProfanityCount(Caller) = %d, want 1", got)
	}
	if got := conv.ProfanityCount("Chris"); got != 0 {
		t.Fatalf("ProfanityCount(Chris) = %d, want 0", got)
	}
}

func TestConversationSentimentStats(t *testing.T) {
	conv := parseString(t, sampleEpisode)

	// Chris sentences: "Good morning." 0.5, "Welcome back." 0, "Good... okay." 0.5, "Another line here" 0
	byLine := conv.SentimentByLine("Chris")
	if len(byLine) != 2 || len(byLine[0]) != 2 || len(byLine[1]) != 2 {
		t.Fatalf("unexpected SentimentByLine shape: %v", byLine)
	}
	st := conv.SentimentStats("Chris")
	if math.Abs(st.CompoundAverage-0.25) > 1e-9 {
		t.Fatalf("CompoundAverage = %v, want 0.25", st.CompoundAverage)
	}
	if math.Abs(st.CompoundVariance-0.0625) > 1e-9 {
		t.Fatalf("CompoundVariance = %v, want 0.0625", st.CompoundVariance)
	}

	if got := conv.CountSentimentBetween("Chris", 0.1, 1); got != 2 {
		t.Fatalf("CountSentimentBetween = %d, want 2", got)
	}
	if got := conv.CountSentimentBetween("Chris", -1, 1); got != 4 {
		t.Fatalf("CountSentimentBetween full range = %d, want 4", got)
	}
}

func TestConversationProfanityStats(t *testing.T) {
	conv := parseString(t, sampleEpisode)

	// Caller sentences: "That was bad." 0.1, "Darn it." 0.9, "Bye." 0.1
	st := conv.ProfanityStats("Caller")
	if st.AllSentenceCount != 3 || st.ProfaneSentenceCount != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	wantMean := (0.1 + 0.9 + 0.1) / 3
	if math.Abs(st.ProbAverage-wantMean) > 1e-9 {
		t.Fatalf("ProbAverage = %v, want %v", st.ProbAverage, wantMean)
	}
	wantVar := (2*math.Pow(0.1-wantMean, 2) + math.Pow(0.9-wantMean, 2)) / 3
	if math.Abs(st.ProbVariance-wantVar) > 1e-9 {
		t.Fatalf("ProbVariance = %v, want %v", st.ProbVariance, wantVar)
	}

	all := conv.ProfanityStats("")
	if all.AllSentenceCount != 7 {
		t.Fatalf("AllSentenceCount = %d, want 7", all.AllSentenceCount)
	}
}

func TestLineHelpers(t *testing.T) {
	conv := parseString(t, sampleEpisode)
	line := conv.Lines[2]
	if line.Words != "Good... okay.\nAnother line here" {
		t.Fatalf("unexpected merged words %q", line.Words)
	}
	if math.Abs(line.AvgSentiment()-0.25) > 1e-9 {
		t.Fatalf("AvgSentiment = %v", line.AvgSentiment())
	}
	want := []string{"good", "okay", "another", "line", "here"}
	if got := line.CleanWords(); !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanWords = %v, want %v", got, want)
	}
	if got := line.String(); got != "<Chris: Good... okay.\nAnother line here>" {
		t.Fatalf("String() = %q", got)
	}
}
