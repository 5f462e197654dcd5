// Package profanity provides the default word-list profanity detector used
// when scoring transcript sentences.
package profanity

import (
	"bufio"
	_ "embed"
	"math"
	"strings"
	"unicode"
)

//go:embed wordlist.txt
var defaultWordList string

// DefaultThreshold is the probability at which Predict reports profanity.
const DefaultThreshold = 0.5

// Logistic weights: a sentence with no listed terms scores ~0.08, and a
// single term in a short sentence clears the default threshold.
const (
	bias        = -2.5
	termWeight  = 4.0
	shareWeight = 3.0
)

// Detector flags text containing listed terms.
type Detector struct {
	threshold float64
	exact     map[string]struct{}
	stems     []string
}

// New returns a Detector backed by the embedded word list. A threshold
// outside (0, 1] falls back to DefaultThreshold.
func New(threshold float64) *Detector {
	return NewWithWords(threshold, ParseWordList(defaultWordList))
}

// NewWithWords returns a Detector for a caller-supplied term list using the
// same '*' stem convention as the embedded list.
func NewWithWords(threshold float64, terms []string) *Detector {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	d := &Detector{threshold: threshold, exact: make(map[string]struct{})}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if stem, ok := strings.CutSuffix(term, "*"); ok {
			if stem != "" {
				d.stems = append(d.stems, stem)
			}
			continue
		}
		if term != "" {
			d.exact[term] = struct{}{}
		}
	}
	return d
}

// ParseWordList returns the non-comment, non-blank rows of data.
func ParseWordList(data string) []string {
	var out []string
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Threshold reports the probability cut-off used by Predict.
func (d *Detector) Threshold() float64 {
	return d.threshold
}

// Probability estimates how likely text is to be profane.
func (d *Detector) Probability(text string) float64 {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	if len(words) == 0 {
		return sigmoid(bias)
	}
	hits := 0
	for _, word := range words {
		if d.isProfane(strings.Trim(word, "'")) {
			hits++
		}
	}
	share := float64(hits) / float64(len(words))
	return sigmoid(bias + termWeight*float64(hits) + shareWeight*share)
}

// Predict reports whether Probability reaches the detector threshold.
func (d *Detector) Predict(text string) bool {
	return d.Probability(text) >= d.threshold
}

func (d *Detector) isProfane(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := d.exact[word]; ok {
		return true
	}
	for _, stem := range d.stems {
		if strings.HasPrefix(word, stem) {
			return true
		}
	}
	return false
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
