// Package corpus aggregates many parsed transcripts and answers cross-episode
// questions: which lines a speaker said, which n-grams and phrases they repeat,
// which word pairs they use as collocations, and which episodes sound alike.
package corpus
