package corpus

import (
	"math"
	"sort"

	"podstats/internal/transcript"
)

// EpisodePair scores how alike two episodes are in vocabulary.
type EpisodePair struct {
	First      int     `json:"first" yaml:"first"`
	Second     int     `json:"second" yaml:"second"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// fingerprint is a weighted term vector with its Euclidean norm cached.
type fingerprint struct {
	terms map[string]float64
	norm  float64
}

func newFingerprint(lines []transcript.Line) *fingerprint {
	terms := make(map[string]float64)
	for _, line := range lines {
		for _, word := range line.CleanWords() {
			if ignoredWord(word) {
				continue
			}
			terms[word]++
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return &fingerprint{terms: terms, norm: vectorNorm(terms)}
}

func vectorNorm(terms map[string]float64) float64 {
	var sum float64
	for _, w := range terms {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func (f *fingerprint) weighted(idf map[string]float64) *fingerprint {
	if f == nil {
		return nil
	}
	terms := make(map[string]float64, len(f.terms))
	for term, count := range f.terms {
		terms[term] = count * idf[term]
	}
	return &fingerprint{terms: terms, norm: vectorNorm(terms)}
}

func cosineSimilarity(a, b *fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	if len(b.terms) < len(a.terms) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a.terms {
		dot += w * b.terms[term]
	}
	return dot / (a.norm * b.norm)
}

// inverseDocumentFrequency uses the smoothed weight ln((N+1)/(df+1)) + 1 so
// terms shared by every episode still count.
func inverseDocumentFrequency(prints []*fingerprint) map[string]float64 {
	df := make(map[string]int)
	n := 0
	for _, fp := range prints {
		if fp == nil {
			continue
		}
		n++
		for term := range fp.terms {
			df[term]++
		}
	}
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(float64(n+1)/float64(count+1)) + 1
	}
	return idf
}

// SimilarEpisodes compares every pair of episodes by the TF-IDF weighted
// vocabulary of speaker (all speakers when empty). Stopwords and words under
// three characters are ignored. Pairs are ordered by similarity descending,
// then by episode id; num <= 0 returns every pair.
func (l *List) SimilarEpisodes(speaker string, num int) []EpisodePair {
	prints := make([]*fingerprint, len(l.Conversations))
	for i, conv := range l.Conversations {
		prints[i] = newFingerprint(conv.LinesBy(speaker))
	}
	idf := inverseDocumentFrequency(prints)
	for i := range prints {
		prints[i] = prints[i].weighted(idf)
	}

	var pairs []EpisodePair
	for i := 0; i < len(prints); i++ {
		for j := i + 1; j < len(prints); j++ {
			pairs = append(pairs, EpisodePair{
				First:      l.Conversations[i].ID,
				Second:     l.Conversations[j].ID,
				Similarity: cosineSimilarity(prints[i], prints[j]),
			})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].Similarity != pairs[b].Similarity {
			return pairs[a].Similarity > pairs[b].Similarity
		}
		if pairs[a].First != pairs[b].First {
			return pairs[a].First < pairs[b].First
		}
		return pairs[a].Second < pairs[b].Second
	})
	if num > 0 && len(pairs) > num {
		pairs = pairs[:num]
	}
	return pairs
}
