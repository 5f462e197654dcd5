package classifier

import (
	"errors"
	"math/rand/v2"
	"strings"

	"podstats/internal/corpus"
	"podstats/internal/transcript"
)

const (
	DefaultTestSize    = 500
	DefaultTopFeatures = 50
)

// ErrNotEnoughLines is returned when fewer than two usable lines are labeled.
var ErrNotEnoughLines = errors.New("classifier: need at least two labeled lines")

// Options tunes Summary. Zero values fall back to the package defaults.
type Options struct {
	VocabSize     int
	LongLineWords int
	TopFeatures   int
}

// Result is the outcome of a train/evaluate round.
type Result struct {
	Labels      []string             `json:"labels" yaml:"labels"`
	TrainSize   int                  `json:"train_size" yaml:"train_size"`
	TestSize    int                  `json:"test_size" yaml:"test_size"`
	Accuracy    float64              `json:"accuracy" yaml:"accuracy"`
	Informative []InformativeFeature `json:"most_informative_features" yaml:"most_informative_features"`
}

// Summary labels every line spoken by speakers with the lower-cased speaker
// name, shuffles them with rng, holds out testSize lines, trains on the rest
// and reports accuracy and the most informative features. The hold-out is
// capped so at least one line is left for training.
func Summary(list *corpus.List, speakers []string, testSize int, rng *rand.Rand, opts Options) (*Result, error) {
	if testSize < 0 {
		testSize = DefaultTestSize
	}
	if opts.TopFeatures <= 0 {
		opts.TopFeatures = DefaultTopFeatures
	}

	var lines []transcript.Line
	for _, speaker := range speakers {
		for _, line := range list.AllLines(speaker) {
			if len(line.CleanWords()) == 0 {
				continue
			}
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrNotEnoughLines
	}

	vocab := BuildVocab(lines, opts.VocabSize, opts.LongLineWords)
	if rng != nil {
		rng.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
	}
	sets := make([]Labeled, len(lines))
	for i, line := range lines {
		sets[i] = Labeled{Features: Features(line, vocab), Label: strings.ToLower(line.Speaker)}
	}

	if testSize > len(sets)-1 {
		testSize = len(sets) - 1
	}
	test, train := sets[:testSize], sets[testSize:]
	model, err := Train(train)
	if err != nil {
		return nil, err
	}
	return &Result{
		Labels:      model.Labels(),
		TrainSize:   len(train),
		TestSize:    len(test),
		Accuracy:    model.Accuracy(test),
		Informative: model.MostInformativeFeatures(opts.TopFeatures),
	}, nil
}
