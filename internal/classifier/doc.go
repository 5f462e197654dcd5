// Package classifier predicts who said a transcript line. It turns lines into
// discrete feature sets and trains a Naive Bayes model with expected-likelihood
// smoothing over them.
package classifier
