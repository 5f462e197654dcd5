package classifier

import (
	"fmt"
	"strconv"
	"strings"

	"podstats/internal/corpus"
	"podstats/internal/transcript"
)

const (
	DefaultVocabSize     = 2000
	DefaultLongLineWords = 50
)

// FeatureSet maps a feature name to its discrete value.
type FeatureSet map[string]string

// Vocab is the shared word and bigram vocabulary used for contains features.
type Vocab struct {
	Words         []string
	Bigrams       []string
	LongLineWords int
}

// BuildVocab collects the size most common words and word bigrams across lines.
func BuildVocab(lines []transcript.Line, size, longLineWords int) *Vocab {
	if size <= 0 {
		size = DefaultVocabSize
	}
	if longLineWords <= 0 {
		longLineWords = DefaultLongLineWords
	}
	words := corpus.NewFreqDist()
	bigrams := corpus.NewFreqDist()
	for _, line := range lines {
		for _, sent := range line.Sentences {
			clean := transcript.CleanWords(sent.Words)
			words.Update(clean...)
			bigrams.Update(corpus.Ngrams(clean, 2)...)
		}
	}
	return &Vocab{
		Words:         words.Samples(size),
		Bigrams:       bigrams.Samples(size),
		LongLineWords: longLineWords,
	}
}

func boolValue(b bool) string {
	return strconv.FormatBool(b)
}

// Features extracts the feature set for one line. Lines without words yield nil.
func Features(line transcript.Line, vocab *Vocab) FeatureSet {
	words := line.CleanWords()
	if len(words) == 0 || len(line.Sentences) == 0 {
		return nil
	}
	if vocab == nil {
		vocab = &Vocab{LongLineWords: DefaultLongLineWords}
	}

	freq := corpus.NewFreqDist(words...)
	mostCommon := freq.MostCommon(1)[0].Sample
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}
	bigramSet := make(map[string]struct{})
	for _, b := range corpus.Ngrams(words, 2) {
		bigramSet[b] = struct{}{}
	}
	repeated := 0
	for _, entry := range freq.MostCommon(0) {
		if entry.Count > 1 {
			repeated++
		}
	}
	avg := line.AvgSentiment()

	fs := FeatureSet{
		"most_common_word=" + mostCommon: mostCommon,
		"first_word":                     words[0],
		"has_profanity":                  boolValue(line.ProfanityCount() > 0),
		"sentiment_very_negative":        boolValue(avg < -0.5),
		"sentiment_negative":             boolValue(-0.5 < avg && avg < 0.05),
		"sentiment_neutral":              boolValue(-0.05 < avg && avg < 0.05),
		"sentiment_positive":             boolValue(0.05 < avg && avg < 0.5),
		"sentiment_very_positive":        boolValue(0.5 < avg),
		"long_line":                      boolValue(line.WordCount() > vocab.LongLineWords),
		"num_repeated_words":             strconv.Itoa(repeated),
		"asks_question":                  boolValue(strings.Contains(line.Words, "?")),
		"contains_nyc":                   boolValue(strings.Contains(strings.Join(words, " "), "new york city")),
	}
	for _, w := range vocab.Words {
		_, ok := wordSet[w]
		fs[fmt.Sprintf("contains(%s)", w)] = boolValue(ok)
	}
	for _, b := range vocab.Bigrams {
		_, ok := bigramSet[b]
		fs[fmt.Sprintf("contains_bigram(%s)", b)] = boolValue(ok)
	}
	return fs
}
