package report

import (
	"fmt"
	"io"
	"strings"

	"podstats/internal/transcript"
)

// SpeakerSummary holds one speaker's share of an episode.
type SpeakerSummary struct {
	Name      string                    `json:"name" yaml:"name"`
	WordCount int                       `json:"word_count" yaml:"word_count"`
	Share     float64                   `json:"share" yaml:"share"`
	Sentiment transcript.SentimentStats `json:"sentiment" yaml:"sentiment"`
	Profanity transcript.ProfanityStats `json:"profanity" yaml:"profanity"`
}

// EpisodeSummary is the per-conversation overview.
type EpisodeSummary struct {
	ID         int              `json:"id" yaml:"id"`
	Title      string           `json:"title" yaml:"title"`
	Date       string           `json:"date" yaml:"date"`
	LineCount  int              `json:"line_count" yaml:"line_count"`
	TotalWords int              `json:"total_word_count" yaml:"total_word_count"`
	Speakers   []SpeakerSummary `json:"speakers" yaml:"speakers"`

	label string
}

// Summarize computes line and word counts and sentiment for every speaker in conv.
func Summarize(conv *transcript.Conversation) EpisodeSummary {
	total := conv.WordCount("")
	summary := EpisodeSummary{
		ID:         conv.ID,
		Title:      conv.Title,
		Date:       conv.Date,
		LineCount:  conv.LineCount(""),
		TotalWords: total,
		label:      conv.String(),
	}
	for _, speaker := range conv.Speakers() {
		words := conv.WordCount(speaker)
		share := 0.0
		if total > 0 {
			share = float64(words) / float64(total)
		}
		summary.Speakers = append(summary.Speakers, SpeakerSummary{
			Name:      speaker,
			WordCount: words,
			Share:     share,
			Sentiment: conv.SentimentStats(speaker),
			Profanity: conv.ProfanityStats(speaker),
		})
	}
	return summary
}

// WriteText prints the summary in the plain console layout.
func (s EpisodeSummary) WriteText(w io.Writer) error {
	var b strings.Builder
	label := s.label
	if label == "" {
		label = fmt.Sprintf("<Episode %d: %s (%s)>", s.ID, s.Title, s.Date)
	}
	b.WriteString(label + "\n")
	fmt.Fprintf(&b, "Line count: %d\n", s.LineCount)
	for _, sp := range s.Speakers {
		fmt.Fprintf(&b, "%s word count: %d (%.2f%%)\n", sp.Name, sp.WordCount, sp.Share*100)
	}
	fmt.Fprintf(&b, "Total word count: %d\n", s.TotalWords)
	for _, sp := range s.Speakers {
		fmt.Fprintf(&b, "%s compound average: %g\n", sp.Name, sp.Sentiment.CompoundAverage)
	}
	for _, sp := range s.Speakers {
		fmt.Fprintf(&b, "%s compound variance: %g\n", sp.Name, sp.Sentiment.CompoundVariance)
	}
	b.WriteString("\n-----------\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}
