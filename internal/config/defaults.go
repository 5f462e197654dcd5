package config

const (
	defaultEpisodesDir        = "episodes"
	defaultDataDir            = "~/.local/share/podstats"
	defaultOutputDir          = "~/.local/share/podstats/reports"
	defaultProfanityThreshold = 0.5
	defaultMinSentiment       = -1.0
	defaultMaxSentiment       = 1.0
	defaultLongLineWords      = 50
	defaultReportFormat       = "text"
	defaultClassifierTestSize = 500
	defaultClassifierSeed     = 1
	defaultVocabSize          = 2000
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

var defaultSpeakers = []string{"Chris", "Caller"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	speakers := make([]string, len(defaultSpeakers))
	copy(speakers, defaultSpeakers)
	return Config{
		Paths: Paths{
			EpisodesDir: defaultEpisodesDir,
			DataDir:     defaultDataDir,
			OutputDir:   defaultOutputDir,
		},
		Analysis: Analysis{
			ProfanityThreshold: defaultProfanityThreshold,
			MinSentiment:       defaultMinSentiment,
			MaxSentiment:       defaultMaxSentiment,
			LongLineWords:      defaultLongLineWords,
		},
		Report: Report{
			Speakers: speakers,
			Format:   defaultReportFormat,
		},
		Classifier: Classifier{
			TestSize:  defaultClassifierTestSize,
			Seed:      defaultClassifierSeed,
			VocabSize: defaultVocabSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
