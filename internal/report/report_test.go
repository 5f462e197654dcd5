package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"podstats/internal/corpus"
	"podstats/internal/report"
	"podstats/internal/testsupport"
	"podstats/internal/transcript"
)

var speakers = []string{"Chris", "Caller"}

func firstEpisode(t *testing.T) *transcript.Conversation {
	t.Helper()
	ep := testsupport.SampleEpisodes()[0]
	conv, err := transcript.Parse(strings.NewReader(ep.Render()), testsupport.FakeScorer())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return conv
}

func sampleList(t *testing.T) *corpus.List {
	t.Helper()
	var list corpus.List
	for _, ep := range testsupport.SampleEpisodes() {
		conv, err := transcript.Parse(strings.NewReader(ep.Render()), testsupport.FakeScorer())
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		list.Conversations = append(list.Conversations, conv)
	}
	return &list
}

func TestSummarizeWritesConsoleLayout(t *testing.T) {
	summary := report.Summarize(firstEpisode(t))

	if summary.LineCount != 4 || summary.TotalWords != 47 {
		t.Fatalf("lines=%d words=%d", summary.LineCount, summary.TotalWords)
	}
	var buf bytes.Buffer
	if err := summary.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := strings.Join([]string{
		"<Episode 101: Jobs and Pizza (March 3, 2019)>",
		"Line count: 4",
		"Chris word count: 24 (51.06%)",
		"Caller word count: 23 (48.94%)",
		"Total word count: 47",
		"Chris compound average: 0",
		"Caller compound average: 0.5",
		"Chris compound variance: 0.125",
		"Caller compound variance: 0.16666666666666666",
		"",
		"-----------",
		"",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("summary text:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestSummarizeEmptyTranscriptHasZeroShare(t *testing.T) {
	conv := &transcript.Conversation{ID: 1, Lines: []transcript.Line{{Speaker: "Chris", Words: "..."}}}
	summary := report.Summarize(conv)
	if len(summary.Speakers) != 1 || summary.Speakers[0].Share != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestJSONDocuments(t *testing.T) {
	conv := firstEpisode(t)

	tests := []struct {
		name string
		doc  any
		want string
	}{
		{
			name: "all sentiment",
			doc:  report.AllSentiment(conv),
			want: `{"id":101,"title":"Jobs and Pizza","date":"March 3, 2019","sentiment_counts":[["Chris",0],["Caller",0.25],["Chris",0],["Caller",1]]}`,
		},
		{
			name: "sentiment count",
			doc:  report.SentimentCount(conv, speakers, -1, 1),
			want: `{"id":101,"title":"Jobs and Pizza","date":"March 3, 2019","sentiment_counts":{"Caller":2,"Chris":4,"max_sentiment":1,"min_sentiment":-1}}`,
		},
		{
			name: "positive sentiment count",
			doc:  report.SentimentCount(conv, speakers, 0, 1),
			want: `{"id":101,"title":"Jobs and Pizza","date":"March 3, 2019","sentiment_counts":{"Caller":1,"Chris":1,"max_sentiment":1,"min_sentiment":0}}`,
		},
		{
			name: "word counts",
			doc:  report.WordCountSummary(conv, speakers),
			want: `{"id":101,"title":"Jobs and Pizza","date":"March 3, 2019","word_counts":{"Caller":23,"Chris":24}}`,
		},
		{
			name: "profanity counts",
			doc:  report.ProfanityCountSummary(conv, speakers),
			want: `{"id":101,"title":"Jobs and Pizza","date":"March 3, 2019","profanity_counts":{"Caller":1,"Chris":0}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.doc)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("json = %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestAllSentimentEncodesYAMLPairs(t *testing.T) {
	out, err := yaml.Marshal(report.AllSentiment(firstEpisode(t)))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "id: 101") || !strings.Contains(text, "- - Caller") || !strings.Contains(text, "- 0.25") {
		t.Fatalf("unexpected yaml:\n%s", text)
	}
}

func TestWriteFormats(t *testing.T) {
	doc := report.Build(sampleList(t), speakers, time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC))

	if len(doc.Speakers) != 2 || len(doc.Episodes) != 2 {
		t.Fatalf("unexpected document shape: %d speakers, %d episodes", len(doc.Speakers), len(doc.Episodes))
	}
	if doc.Speakers[0].Lines != 4 || len(doc.Speakers[0].Collocations) == 0 {
		t.Fatalf("unexpected Chris totals %+v", doc.Speakers[0])
	}

	tests := []struct {
		format string
		check  func(string) bool
	}{
		{report.FormatText, func(s string) bool { return strings.Contains(s, "Line count: 4") }},
		{report.FormatJSON, func(s string) bool { return strings.Contains(s, `"total_word_count": 47`) }},
		{report.FormatYAML, func(s string) bool { return strings.Contains(s, "title: Podcast transcript report") }},
		{report.FormatMarkdown, func(s string) bool {
			return strings.Contains(s, "## Episode 101: Jobs and Pizza") && strings.Contains(s, "| Chris | 24 | 51.06% |")
		}},
		{report.FormatHTML, func(s string) bool {
			return strings.HasPrefix(s, "<!DOCTYPE html>") && strings.Contains(s, "<table>") && strings.Contains(s, "<h2>Episode 102: Neighbours</h2>")
		}},
		{report.FormatPDF, func(s string) bool { return strings.HasPrefix(s, "%PDF-") }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := report.Write(&buf, doc, tt.format); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if !tt.check(buf.String()) {
				t.Fatalf("unexpected %s output:\n%.400s", tt.format, buf.String())
			}
		})
	}

	if err := report.Write(&bytes.Buffer{}, doc, "docx"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		report.FormatMarkdown: ".md",
		report.FormatText:     ".txt",
		report.FormatPDF:      ".pdf",
		report.FormatHTML:     ".html",
	}
	for format, want := range cases {
		if got := report.Extension(format); got != want {
			t.Fatalf("Extension(%s) = %s, want %s", format, got, want)
		}
	}
}
