package corpus

import "sort"

// FreqEntry is one sample and its count.
type FreqEntry struct {
	Sample string `json:"sample" yaml:"sample"`
	Count  int    `json:"count" yaml:"count"`
}

// FreqDist counts string samples and remembers first-insertion order so
// ties sort deterministically.
type FreqDist struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFreqDist returns an empty distribution, optionally seeded with samples.
func NewFreqDist(samples ...string) *FreqDist {
	fd := &FreqDist{counts: make(map[string]int)}
	fd.Update(samples...)
	return fd
}

// Add increments sample by one.
func (fd *FreqDist) Add(sample string) {
	if _, ok := fd.counts[sample]; !ok {
		fd.order = append(fd.order, sample)
	}
	fd.counts[sample]++
	fd.total++
}

func (fd *FreqDist) Update(samples ...string) {
	for _, s := range samples {
		fd.Add(s)
	}
}

func (fd *FreqDist) Count(sample string) int {
	return fd.counts[sample]
}

// Total is the number of samples recorded, counting repeats.
func (fd *FreqDist) Total() int {
	return fd.total
}

// Len is the number of distinct samples.
func (fd *FreqDist) Len() int {
	return len(fd.order)
}

// MostCommon returns the k most frequent samples, or all of them when k <= 0.
func (fd *FreqDist) MostCommon(k int) []FreqEntry {
	entries := make([]FreqEntry, 0, len(fd.order))
	for _, s := range fd.order {
		entries = append(entries, FreqEntry{Sample: s, Count: fd.counts[s]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if k > 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries
}

// Samples returns the k most frequent sample keys.
func (fd *FreqDist) Samples(k int) []string {
	common := fd.MostCommon(k)
	out := make([]string, len(common))
	for i, e := range common {
		out[i] = e.Sample
	}
	return out
}
