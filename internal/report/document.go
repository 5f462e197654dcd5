package report

import (
	"time"

	"podstats/internal/corpus"
	"podstats/internal/transcript"
)

// SpeakerTotals aggregates one speaker across every episode.
type SpeakerTotals struct {
	Name         string                    `json:"name" yaml:"name"`
	Lines        int                       `json:"lines" yaml:"lines"`
	WordCount    int                       `json:"word_count" yaml:"word_count"`
	Sentiment    transcript.SentimentStats `json:"sentiment" yaml:"sentiment"`
	Profanity    transcript.ProfanityStats `json:"profanity" yaml:"profanity"`
	Collocations []string                  `json:"collocations,omitempty" yaml:"collocations,omitempty"`
}

// Document is a whole-corpus report.
type Document struct {
	Title       string           `json:"title" yaml:"title"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Speakers    []SpeakerTotals  `json:"speakers" yaml:"speakers"`
	Episodes    []EpisodeSummary `json:"episodes" yaml:"episodes"`
}

// Build assembles a report over list for the given speakers.
func Build(list *corpus.List, speakers []string, now time.Time) Document {
	doc := Document{Title: "Podcast transcript report", GeneratedAt: now.UTC()}
	for _, speaker := range speakers {
		doc.Speakers = append(doc.Speakers, speakerTotals(list, speaker))
	}
	for _, conv := range list.Conversations {
		doc.Episodes = append(doc.Episodes, Summarize(conv))
	}
	return doc
}

func speakerTotals(list *corpus.List, speaker string) SpeakerTotals {
	lines := list.AllLines(speaker)
	merged := &transcript.Conversation{Lines: lines}
	totals := SpeakerTotals{
		Name:      speaker,
		Lines:     len(lines),
		WordCount: merged.WordCount(""),
		Sentiment: merged.SentimentStats(""),
		Profanity: merged.ProfanityStats(""),
	}
	for _, c := range list.CollocationList(speaker, corpus.DefaultCollocations) {
		totals.Collocations = append(totals.Collocations, c.String())
	}
	return totals
}
