package report

import (
	"encoding/json"

	"podstats/internal/stats"
	"podstats/internal/transcript"
)

// Header identifies the episode a document describes.
type Header struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
}

func headerFor(conv *transcript.Conversation) Header {
	return Header{ID: conv.ID, Title: conv.Title, Date: conv.Date}
}

// LineSentiment is a speaker and the mean sentiment of one of their lines.
// It encodes as a two-element array.
type LineSentiment struct {
	Speaker   string
	Sentiment float64
}

func (l LineSentiment) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{l.Speaker, l.Sentiment})
}

func (l LineSentiment) MarshalYAML() (any, error) {
	return []any{l.Speaker, l.Sentiment}, nil
}

// AllSentimentDoc lists every line's speaker and mean sentiment in order.
type AllSentimentDoc struct {
	Header          `yaml:",inline"`
	SentimentCounts []LineSentiment `json:"sentiment_counts" yaml:"sentiment_counts"`
}

func AllSentiment(conv *transcript.Conversation) AllSentimentDoc {
	doc := AllSentimentDoc{Header: headerFor(conv), SentimentCounts: make([]LineSentiment, 0, len(conv.Lines))}
	for _, line := range conv.Lines {
		doc.SentimentCounts = append(doc.SentimentCounts, LineSentiment{
			Speaker:   line.Speaker,
			Sentiment: stats.Mean(line.Sentiments()),
		})
	}
	return doc
}

// SentimentCountDoc counts, per speaker, the sentences whose sentiment lies
// strictly between the bounds. The bounds are echoed back inside the counts.
type SentimentCountDoc struct {
	Header          `yaml:",inline"`
	SentimentCounts map[string]any `json:"sentiment_counts" yaml:"sentiment_counts"`
}

func SentimentCount(conv *transcript.Conversation, speakers []string, minSentiment, maxSentiment float64) SentimentCountDoc {
	counts := make(map[string]any, len(speakers)+2)
	for _, speaker := range speakers {
		counts[speaker] = conv.CountSentimentBetween(speaker, minSentiment, maxSentiment)
	}
	counts["min_sentiment"] = minSentiment
	counts["max_sentiment"] = maxSentiment
	return SentimentCountDoc{Header: headerFor(conv), SentimentCounts: counts}
}

// WordCountDoc holds word counts for the configured speakers.
type WordCountDoc struct {
	Header     `yaml:",inline"`
	WordCounts map[string]int `json:"word_counts" yaml:"word_counts"`
}

func WordCountSummary(conv *transcript.Conversation, speakers []string) WordCountDoc {
	counts := make(map[string]int, len(speakers))
	for _, speaker := range speakers {
		counts[speaker] = conv.WordCount(speaker)
	}
	return WordCountDoc{Header: headerFor(conv), WordCounts: counts}
}

// ProfanityCountDoc holds profane sentence counts for the configured speakers.
type ProfanityCountDoc struct {
	Header          `yaml:",inline"`
	ProfanityCounts map[string]int `json:"profanity_counts" yaml:"profanity_counts"`
}

func ProfanityCountSummary(conv *transcript.Conversation, speakers []string) ProfanityCountDoc {
	counts := make(map[string]int, len(speakers))
	for _, speaker := range speakers {
		counts[speaker] = conv.ProfanityCount(speaker)
	}
	return ProfanityCountDoc{Header: headerFor(conv), ProfanityCounts: counts}
}
