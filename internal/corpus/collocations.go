package corpus

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultCollocations is the number of collocations returned when the caller
// does not ask for a specific count.
const DefaultCollocations = 20

const (
	minBigramCount = 2
	minWordLength  = 3
	smallFloat     = 1e-20
)

// Collocation is a ranked word pair.
type Collocation struct {
	First  string  `json:"first" yaml:"first"`
	Second string  `json:"second" yaml:"second"`
	Count  int     `json:"count" yaml:"count"`
	Score  float64 `json:"score" yaml:"score"`
}

func (c Collocation) String() string {
	return c.First + " " + c.Second
}

// CollocationList ranks the speaker's adjacent word pairs by Dunning's
// log-likelihood ratio. Pairs seen fewer than twice, or containing a
// stopword or a word shorter than three characters, are dropped.
func (l *List) CollocationList(speaker string, num int) []Collocation {
	if num <= 0 {
		num = DefaultCollocations
	}
	var words []string
	for _, line := range l.AllLines(speaker) {
		words = append(words, line.CleanWords()...)
	}
	return RankCollocations(words, num)
}

// RankCollocations scores every bigram of words and returns the best num.
func RankCollocations(words []string, num int) []Collocation {
	if len(words) < 2 {
		return nil
	}
	unigrams := NewFreqDist(words...)
	type pair struct{ first, second string }
	bigrams := make(map[pair]int)
	var order []pair
	for i := 0; i+1 < len(words); i++ {
		p := pair{words[i], words[i+1]}
		if _, ok := bigrams[p]; !ok {
			order = append(order, p)
		}
		bigrams[p]++
	}

	total := float64(unigrams.Total())
	var out []Collocation
	for _, p := range order {
		count := bigrams[p]
		if count < minBigramCount || ignoredWord(p.first) || ignoredWord(p.second) {
			continue
		}
		out = append(out, Collocation{
			First:  p.first,
			Second: p.second,
			Count:  count,
			Score: likelihoodRatio(
				float64(count),
				float64(unigrams.Count(p.first)),
				float64(unigrams.Count(p.second)),
				total,
			),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	if len(out) > num {
		out = out[:num]
	}
	return out
}

func ignoredWord(word string) bool {
	return utf8.RuneCountInString(word) < minWordLength || isStopword(strings.ToLower(word))
}

// likelihoodRatio computes the G² statistic for a 2x2 contingency table built
// from the bigram count, the marginal counts of each word, and the corpus size.
func likelihoodRatio(nii, nix, nxi, nxx float64) float64 {
	noi := nxi - nii
	nio := nix - nii
	noo := nxx - nii - noi - nio
	observed := [4]float64{nii, noi, nio, noo}

	row := [2]float64{nii + nio, noi + noo}
	col := [2]float64{nii + noi, nio + noo}
	expected := [4]float64{
		col[0] * row[0] / nxx,
		col[0] * row[1] / nxx,
		col[1] * row[0] / nxx,
		col[1] * row[1] / nxx,
	}
	var sum float64
	for i, obs := range observed {
		if obs <= 0 {
			continue
		}
		sum += obs * math.Log(obs/(expected[i]+smallFloat)+smallFloat)
	}
	return 2 * sum
}
