package transcript

import "podstats/internal/stats"

// SentimentStats summarises compound sentiment over a set of sentences.
type SentimentStats struct {
	CompoundAverage  float64 `json:"compound_average" yaml:"compound_average"`
	CompoundVariance float64 `json:"compound_variance" yaml:"compound_variance"`
}

// ProfanityStats summarises profanity probabilities over a set of sentences.
type ProfanityStats struct {
	ProbAverage          float64 `json:"profanity_prob_average" yaml:"profanity_prob_average"`
	ProbVariance         float64 `json:"profanity_prob_variance" yaml:"profanity_prob_variance"`
	ProfaneSentenceCount int     `json:"profane_sentence_count" yaml:"profane_sentence_count"`
	AllSentenceCount     int     `json:"all_sentence_count" yaml:"all_sentence_count"`
}

// The speaker argument of the methods below filters by exact speaker label;
// the empty string selects every line.

func matches(line Line, speaker string) bool {
	return speaker == "" || line.Speaker == speaker
}

// LinesBy returns every line spoken by speaker.
func (c *Conversation) LinesBy(speaker string) []Line {
	var out []Line
	for _, line := range c.Lines {
		if matches(line, speaker) {
			out = append(out, line)
		}
	}
	return out
}

func (c *Conversation) LineCount(speaker string) int {
	return len(c.LinesBy(speaker))
}

// Speakers returns the distinct speaker labels in order of first appearance.
func (c *Conversation) Speakers() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range c.Lines {
		if _, ok := seen[line.Speaker]; ok {
			continue
		}
		seen[line.Speaker] = struct{}{}
		out = append(out, line.Speaker)
	}
	return out
}

func (c *Conversation) WordCount(speaker string) int {
	n := 0
	for _, line := range c.LinesBy(speaker) {
		n += line.WordCount()
	}
	return n
}

func (c *Conversation) ProfanityCount(speaker string) int {
	n := 0
	for _, line := range c.LinesBy(speaker) {
		n += line.ProfanityCount()
	}
	return n
}

func (c *Conversation) SentenceCount(speaker string) int {
	n := 0
	for _, line := range c.LinesBy(speaker) {
		n += line.SentenceCount()
	}
	return n
}

// SentimentByLine returns one slice of sentence scores per line.
func (c *Conversation) SentimentByLine(speaker string) [][]float64 {
	lines := c.LinesBy(speaker)
	out := make([][]float64, len(lines))
	for i, line := range lines {
		out[i] = line.Sentiments()
	}
	return out
}

// ProfanityProbByLine returns one slice of sentence probabilities per line.
func (c *Conversation) ProfanityProbByLine(speaker string) [][]float64 {
	lines := c.LinesBy(speaker)
	out := make([][]float64, len(lines))
	for i, line := range lines {
		out[i] = line.ProfanityProbs()
	}
	return out
}

// SentimentStats aggregates sentence-level compound scores.
func (c *Conversation) SentimentStats(speaker string) SentimentStats {
	summary := stats.Summarize(stats.Flatten(c.SentimentByLine(speaker)))
	return SentimentStats{CompoundAverage: summary.Mean, CompoundVariance: summary.Variance}
}

// ProfanityStats aggregates sentence-level profanity probabilities.
func (c *Conversation) ProfanityStats(speaker string) ProfanityStats {
	summary := stats.Summarize(stats.Flatten(c.ProfanityProbByLine(speaker)))
	return ProfanityStats{
		ProbAverage:          summary.Mean,
		ProbVariance:         summary.Variance,
		ProfaneSentenceCount: c.ProfanityCount(speaker),
		AllSentenceCount:     c.SentenceCount(speaker),
	}
}

// CountSentimentBetween counts speaker sentences whose score lies strictly
// between lo and hi.
func (c *Conversation) CountSentimentBetween(speaker string, lo, hi float64) int {
	n := 0
	for _, line := range c.LinesBy(speaker) {
		for _, s := range line.Sentences {
			if lo < s.Sentiment && s.Sentiment < hi {
				n++
			}
		}
	}
	return n
}
