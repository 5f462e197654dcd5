package store

import "time"

// Run is one ingest invocation.
type Run struct {
	ID        string    `json:"id" yaml:"id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	SourceDir string    `json:"source_dir" yaml:"source_dir"`
}

// Episode is a stored transcript header.
type Episode struct {
	ID         int       `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	Date       string    `json:"date" yaml:"date"`
	SourcePath string    `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	RunID      string    `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	IngestedAt time.Time `json:"ingested_at" yaml:"ingested_at"`
	LineCount  int       `json:"line_count" yaml:"line_count"`
	WordCount  int       `json:"word_count" yaml:"word_count"`
}

// LineRecord is a stored dialogue line with its derived counts.
type LineRecord struct {
	Ordinal       int     `json:"ordinal" yaml:"ordinal"`
	Speaker       string  `json:"speaker" yaml:"speaker"`
	Words         string  `json:"words" yaml:"words"`
	SentenceCount int     `json:"sentence_count" yaml:"sentence_count"`
	WordCount     int     `json:"word_count" yaml:"word_count"`
	AvgSentiment  float64 `json:"avg_sentiment" yaml:"avg_sentiment"`
	ProfaneCount  int     `json:"profane_count" yaml:"profane_count"`
}

// SpeakerStats is one speaker's aggregate for a stored episode.
type SpeakerStats struct {
	Speaker               string  `json:"speaker" yaml:"speaker"`
	WordCount             int     `json:"word_count" yaml:"word_count"`
	CompoundAverage       float64 `json:"compound_average" yaml:"compound_average"`
	CompoundVariance      float64 `json:"compound_variance" yaml:"compound_variance"`
	ProfanityProbAverage  float64 `json:"profanity_prob_average" yaml:"profanity_prob_average"`
	ProfanityProbVariance float64 `json:"profanity_prob_variance" yaml:"profanity_prob_variance"`
	ProfaneSentenceCount  int     `json:"profane_sentence_count" yaml:"profane_sentence_count"`
	SentenceCount         int     `json:"sentence_count" yaml:"sentence_count"`
}

// DatabaseHealth captures diagnostic information about the transcript database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	SchemaVersion    int
	Migrations       []string
	MissingTables    []string
	IntegrityCheck   bool
	TotalEpisodes    int
	TotalRuns        int
	Error            string
}
