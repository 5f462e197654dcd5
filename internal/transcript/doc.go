// Package transcript parses podcast transcript files into a
// Conversation → Line → Sentence hierarchy and exposes the per-line and
// per-speaker aggregations built on top of it.
//
// A transcript is line oriented: an "Episode <id> ..." header, the episode
// title, the release date, then one "<speaker>:<words>" dialogue line per
// row. Consecutive rows from the same speaker are merged into a single Line,
// which is then segmented into sentences. Each sentence is scored through the
// SentimentAnalyzer and ProfanityDetector carried by a Scorer; the scoring
// models themselves live in other packages and are opaque here.
package transcript
