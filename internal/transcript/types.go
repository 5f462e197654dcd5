package transcript

import "fmt"

// SentimentAnalyzer produces a single compound polarity score in [-1, 1].
type SentimentAnalyzer interface {
	Compound(text string) float64
}

// ProfanityDetector classifies text as profane.
type ProfanityDetector interface {
	Predict(text string) bool
	Probability(text string) float64
}

// Scorer bundles the sentence scoring models. A nil model scores every
// sentence as zero / not profane.
type Scorer struct {
	Sentiment SentimentAnalyzer
	Profanity ProfanityDetector
}

// Sentence is the unit at which sentiment and profanity are scored.
type Sentence struct {
	Words         string  `json:"words"`
	Sentiment     float64 `json:"sentiment"`
	IsProfane     bool    `json:"is_profane"`
	ProfanityProb float64 `json:"profanity_prob"`
}

func (s Sentence) String() string {
	return fmt.Sprintf("<Sentence words=%q sentiment=%g>", Truncate(s.Words, 30), s.Sentiment)
}

// Line is a maximal run of consecutive text attributed to one speaker.
type Line struct {
	Speaker   string     `json:"speaker"`
	Words     string     `json:"words"`
	Sentences []Sentence `json:"sentences"`
}

func (l Line) String() string {
	return fmt.Sprintf("<%s: %s>", l.Speaker, Truncate(l.Words, 100))
}

// Conversation is one parsed episode transcript.
type Conversation struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Lines  []Line `json:"lines"`
	Source string `json:"source,omitempty"`
}

func (c *Conversation) String() string {
	return fmt.Sprintf("<Episode %d: %s (%s)>", c.ID, c.Title, c.Date)
}

func (s Scorer) score(text string) Sentence {
	sentence := Sentence{Words: text}
	if s.Sentiment != nil {
		sentence.Sentiment = s.Sentiment.Compound(text)
	}
	if s.Profanity != nil {
		sentence.IsProfane = s.Profanity.Predict(text)
		sentence.ProfanityProb = s.Profanity.Probability(text)
	}
	return sentence
}

// NewLine segments words into sentences and scores each one.
func NewLine(speaker, words string, scorer Scorer) Line {
	parts := SplitSentences(words)
	sentences := make([]Sentence, 0, len(parts))
	for _, part := range parts {
		sentences = append(sentences, scorer.score(part))
	}
	return Line{Speaker: speaker, Words: words, Sentences: sentences}
}

// Truncate shortens s to at most n runes, ending in "..." when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
