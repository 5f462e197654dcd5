package testsupport

import (
	"strings"

	"podstats/internal/transcript"
)

// KeywordSentiment scores "good" as +0.5 and "bad" as -0.5 per occurrence.
type KeywordSentiment struct{}

func (KeywordSentiment) Compound(text string) float64 {
	var score float64
	for _, w := range transcript.CleanWords(text) {
		switch w {
		case "good":
			score += 0.5
		case "bad":
			score -= 0.5
		}
	}
	return score
}

// KeywordProfanity flags any sentence containing "darn".
type KeywordProfanity struct{}

func (KeywordProfanity) Probability(text string) float64 {
	if strings.Contains(strings.ToLower(text), "darn") {
		return 0.9
	}
	return 0.1
}

func (k KeywordProfanity) Predict(text string) bool {
	return k.Probability(text) >= 0.5
}

// FakeScorer returns a deterministic scorer for parser and aggregation tests.
func FakeScorer() transcript.Scorer {
	return transcript.Scorer{Sentiment: KeywordSentiment{}, Profanity: KeywordProfanity{}}
}
