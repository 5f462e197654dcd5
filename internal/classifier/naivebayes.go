package classifier

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// ErrNoTrainingData is returned when Train receives no labeled feature sets.
var ErrNoTrainingData = errors.New("classifier: no training data")

// noneValue stands in for a feature that a feature set does not carry.
const noneValue = "<none>"

// Labeled pairs a feature set with its label.
type Labeled struct {
	Features FeatureSet
	Label    string
}

type labelFeature struct {
	label, feature string
}

// eleDist is a frequency distribution smoothed by adding 0.5 to every bin.
type eleDist struct {
	counts map[string]int
	order  []string
	total  int
	bins   int
}

func newELEDist() *eleDist {
	return &eleDist{counts: make(map[string]int)}
}

func (d *eleDist) add(value string, n int) {
	if _, ok := d.counts[value]; !ok {
		d.order = append(d.order, value)
	}
	d.counts[value] += n
	d.total += n
}

func (d *eleDist) prob(value string) float64 {
	return (float64(d.counts[value]) + 0.5) / (float64(d.total) + 0.5*float64(d.bins))
}

func (d *eleDist) has(value string) bool {
	_, ok := d.counts[value]
	return ok
}

// NaiveBayes is a trained Naive Bayes model over discrete feature values.
type NaiveBayes struct {
	labels   []string
	priors   *eleDist
	features map[labelFeature]*eleDist
	names    map[string]struct{}
}

// Train fits a model. Every label gets a smoothed distribution for every
// feature name seen in training; features absent from a feature set count as
// a separate "none" value, so no known feature value has zero probability.
func Train(labeled []Labeled) (*NaiveBayes, error) {
	if len(labeled) == 0 {
		return nil, ErrNoTrainingData
	}
	priors := newELEDist()
	freqs := make(map[labelFeature]*eleDist)
	values := make(map[string]map[string]struct{})

	for _, item := range labeled {
		priors.add(item.Label, 1)
		for name, value := range item.Features {
			key := labelFeature{item.Label, name}
			dist, ok := freqs[key]
			if !ok {
				dist = newELEDist()
				freqs[key] = dist
			}
			dist.add(value, 1)
			if values[name] == nil {
				values[name] = make(map[string]struct{})
			}
			values[name][value] = struct{}{}
		}
	}

	featureNames := make([]string, 0, len(values))
	for name := range values {
		featureNames = append(featureNames, name)
	}
	sort.Strings(featureNames)
	for _, label := range priors.order {
		for _, name := range featureNames {
			key := labelFeature{label, name}
			dist, ok := freqs[key]
			if !ok {
				dist = newELEDist()
				freqs[key] = dist
			}
			if missing := priors.counts[label] - dist.total; missing > 0 {
				dist.add(noneValue, missing)
				values[name][noneValue] = struct{}{}
			}
		}
	}

	priors.bins = len(priors.order)
	names := make(map[string]struct{}, len(values))
	for key, dist := range freqs {
		dist.bins = len(values[key.feature])
		names[key.feature] = struct{}{}
	}

	labels := append([]string(nil), priors.order...)
	sort.Strings(labels)
	return &NaiveBayes{labels: labels, priors: priors, features: freqs, names: names}, nil
}

// Labels returns the known labels in sorted order.
func (nb *NaiveBayes) Labels() []string {
	return append([]string(nil), nb.labels...)
}

func (nb *NaiveBayes) logProbs(fs FeatureSet) map[string]float64 {
	logp := make(map[string]float64, len(nb.labels))
	for _, label := range nb.labels {
		logp[label] = math.Log2(nb.priors.prob(label))
	}
	names := make([]string, 0, len(fs))
	for name := range fs {
		if _, ok := nb.names[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		value := fs[name]
		for _, label := range nb.labels {
			logp[label] += math.Log2(nb.features[labelFeature{label, name}].prob(value))
		}
	}
	return logp
}

// ProbClassify returns the posterior probability of every label.
func (nb *NaiveBayes) ProbClassify(fs FeatureSet) map[string]float64 {
	logp := nb.logProbs(fs)
	peak := math.Inf(-1)
	for _, v := range logp {
		peak = math.Max(peak, v)
	}
	out := make(map[string]float64, len(logp))
	var sum float64
	for label, v := range logp {
		p := math.Exp2(v - peak)
		out[label] = p
		sum += p
	}
	for label := range out {
		out[label] /= sum
	}
	return out
}

// Classify returns the most probable label. Ties go to the label that sorts first.
func (nb *NaiveBayes) Classify(fs FeatureSet) string {
	probs := nb.ProbClassify(fs)
	best := ""
	bestP := -1.0
	for _, label := range nb.labels {
		if probs[label] > bestP {
			best, bestP = label, probs[label]
		}
	}
	return best
}

// Accuracy is the share of test items whose predicted label matches.
func (nb *NaiveBayes) Accuracy(test []Labeled) float64 {
	if len(test) == 0 {
		return 0
	}
	correct := 0
	for _, item := range test {
		if nb.Classify(item.Features) == item.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(test))
}

// InformativeFeature is a feature value whose likelihood differs most across labels.
type InformativeFeature struct {
	Name  string  `json:"name" yaml:"name"`
	Value string  `json:"value" yaml:"value"`
	Best  string  `json:"best" yaml:"best"`
	Worst string  `json:"worst" yaml:"worst"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
}

// MostInformativeFeatures returns the n feature values with the highest ratio
// between their most and least likely label.
func (nb *NaiveBayes) MostInformativeFeatures(n int) []InformativeFeature {
	type fv struct{ name, value string }
	maxProb := make(map[fv]float64)
	minProb := make(map[fv]float64)
	best := make(map[fv]string)
	worst := make(map[fv]string)

	for _, label := range nb.labels {
		for key, dist := range nb.features {
			if key.label != label {
				continue
			}
			for _, value := range dist.order {
				f := fv{key.feature, value}
				p := dist.prob(value)
				if cur, ok := maxProb[f]; !ok || p > cur {
					maxProb[f] = p
					best[f] = label
				}
				if cur, ok := minProb[f]; !ok || p < cur {
					minProb[f] = p
					worst[f] = label
				}
			}
		}
	}

	out := make([]InformativeFeature, 0, len(maxProb))
	for f, hi := range maxProb {
		out = append(out, InformativeFeature{
			Name:  f.name,
			Value: f.value,
			Best:  best[f],
			Worst: worst[f],
			Ratio: hi / minProb[f],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ratio != out[j].Ratio {
			return out[i].Ratio > out[j].Ratio
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return strings.ToLower(out[i].Value) < strings.ToLower(out[j].Value)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
