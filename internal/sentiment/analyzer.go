// Package sentiment provides the default lexicon-based compound sentiment
// scorer used when scoring transcript sentences.
package sentiment

import (
	"bufio"
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

//go:embed lexicon.txt
var defaultLexicon string

const (
	// normalizationAlpha approximates the maximum expected raw score.
	normalizationAlpha = 15.0
	boosterIncrement   = 0.293
	capsIncrement      = 0.733
	negationScalar     = -0.74
	exclamationWeight  = 0.292
	questionWeight     = 0.18
	maxExclamations    = 4
	maxQuestions       = 3
	lookback           = 3
)

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "none": {}, "nobody": {}, "nothing": {},
	"neither": {}, "nor": {}, "cannot": {}, "cant": {}, "can't": {}, "dont": {},
	"don't": {}, "doesnt": {}, "doesn't": {}, "didnt": {}, "didn't": {}, "isnt": {},
	"isn't": {}, "wasnt": {}, "wasn't": {}, "wont": {}, "won't": {}, "aint": {},
	"ain't": {}, "without": {}, "hardly": {},
}

var boosters = map[string]float64{
	"absolutely": 1, "completely": 1, "extremely": 1, "really": 1, "so": 1,
	"totally": 1, "very": 1, "incredibly": 1, "super": 1, "most": 1, "more": 1,
	"barely": -1, "slightly": -1, "somewhat": -1, "kinda": -1, "little": -1,
	"less": -1, "marginally": -1,
}

// Analyzer scores text with a word→valence lexicon.
type Analyzer struct {
	lexicon map[string]float64
}

// New returns an Analyzer backed by the embedded lexicon.
func New() *Analyzer {
	lex, err := ParseLexicon(defaultLexicon)
	if err != nil {
		panic(fmt.Sprintf("sentiment: embedded lexicon: %v", err))
	}
	return &Analyzer{lexicon: lex}
}

// NewWithLexicon returns an Analyzer backed by a caller-supplied lexicon.
func NewWithLexicon(lexicon map[string]float64) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// ParseLexicon reads "word<TAB>valence" rows. Blank rows and rows starting
// with '#' are ignored.
func ParseLexicon(data string) (map[string]float64, error) {
	lex := make(map[string]float64)
	scanner := bufio.NewScanner(strings.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		fields := strings.Fields(row)
		if len(fields) != 2 {
			return nil, fmt.Errorf("lexicon line %d: expected word and valence", lineNo)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: %w", lineNo, err)
		}
		lex[strings.ToLower(fields[0])] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// Compound returns the normalized sentiment of text in [-1, 1].
func (a *Analyzer) Compound(text string) float64 {
	raw := strings.Fields(text)
	if len(raw) == 0 {
		return 0
	}
	words := make([]string, len(raw))
	for i, token := range raw {
		words[i] = strings.ToLower(strings.TrimFunc(token, isEdgePunct))
	}
	mixedCase := hasMixedCase(raw)

	valences := make([]float64, len(words))
	for i, word := range words {
		v, ok := a.lexicon[word]
		if !ok || v == 0 {
			continue
		}
		if _, isBooster := boosters[word]; isBooster && i+1 < len(words) {
			if _, nextScored := a.lexicon[words[i+1]]; nextScored {
				continue
			}
		}
		if mixedCase && isShouted(strings.TrimFunc(raw[i], isEdgePunct)) {
			v += math.Copysign(capsIncrement, v)
		}
		for dist := 1; dist <= lookback && i-dist >= 0; dist++ {
			prev := words[i-dist]
			if scale, ok := boosters[prev]; ok {
				damp := 1 - 0.05*float64(dist-1)
				v += math.Copysign(boosterIncrement*scale*damp, v)
			}
			if _, ok := negations[prev]; ok {
				v *= negationScalar
			}
		}
		valences[i] = v
	}
	applyButRule(words, valences)

	var sum float64
	for _, v := range valences {
		sum += v
	}
	if sum != 0 {
		sum += math.Copysign(punctuationEmphasis(text), sum)
	}
	return normalize(sum)
}

// applyButRule dampens sentiment before "but" and amplifies it after.
func applyButRule(words []string, valences []float64) {
	for i, word := range words {
		if word != "but" {
			continue
		}
		for j := range valences {
			switch {
			case j < i:
				valences[j] *= 0.5
			case j > i:
				valences[j] *= 1.5
			}
		}
		return
	}
}

func punctuationEmphasis(text string) float64 {
	exclamations := min(strings.Count(text, "!"), maxExclamations)
	emphasis := float64(exclamations) * exclamationWeight
	if questions := strings.Count(text, "?"); questions > 1 {
		emphasis += float64(min(questions, maxQuestions)) * questionWeight
	}
	return emphasis
}

func normalize(score float64) float64 {
	n := score / math.Sqrt(score*score+normalizationAlpha)
	return math.Max(-1, math.Min(1, n))
}

func hasMixedCase(tokens []string) bool {
	shouted := 0
	for _, token := range tokens {
		if isShouted(strings.TrimFunc(token, isEdgePunct)) {
			shouted++
		}
	}
	return shouted > 0 && shouted < len(tokens)
}

func isShouted(token string) bool {
	letters := 0
	for _, r := range token {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters > 1
}

func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) && r != '\''
}
