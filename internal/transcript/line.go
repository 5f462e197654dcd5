package transcript

import (
	"strings"

	"podstats/internal/stats"
)

// Sentiments returns the compound score of each sentence.
func (l Line) Sentiments() []float64 {
	out := make([]float64, len(l.Sentences))
	for i, s := range l.Sentences {
		out[i] = s.Sentiment
	}
	return out
}

// AvgSentiment is the mean compound score over the line's sentences.
func (l Line) AvgSentiment() float64 {
	return stats.Mean(l.Sentiments())
}

// ProfanityProbs returns the probability that each sentence is profane.
func (l Line) ProfanityProbs() []float64 {
	out := make([]float64, len(l.Sentences))
	for i, s := range l.Sentences {
		out[i] = s.ProfanityProb
	}
	return out
}

// ProfanityCount counts the sentences classified as profane.
func (l Line) ProfanityCount() int {
	n := 0
	for _, s := range l.Sentences {
		if s.IsProfane {
			n++
		}
	}
	return n
}

// WordCount counts whitespace-separated words, ignoring "..." markers.
func (l Line) WordCount() int {
	return len(strings.Fields(strings.ReplaceAll(l.Words, "...", "")))
}

func (l Line) SentenceCount() int {
	return len(l.Sentences)
}

// CleanWords returns the lower-cased, punctuation-free words of every sentence.
func (l Line) CleanWords() []string {
	var out []string
	for _, s := range l.Sentences {
		out = append(out, CleanWords(s.Words)...)
	}
	return out
}
