package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"podstats/internal/logging"
	"podstats/internal/transcript"
)

var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// speakerFileName makes a speaker label safe to use as a file name.
func speakerFileName(speaker string) string {
	name := strings.TrimSpace(fileNameReplacer.Replace(strings.TrimSpace(speaker)))
	if name == "" || name == "." || name == ".." {
		return "speaker"
	}
	return name
}

// List is a collection of parsed conversations.
type List struct {
	Conversations []*transcript.Conversation
}

// Discover returns the *.txt transcripts in dir sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read episodes dir: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Load parses every path. The first malformed transcript aborts the load.
func Load(ctx context.Context, paths []string, scorer transcript.Scorer, logger *slog.Logger) (*List, error) {
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "corpus"))
	list := &List{Conversations: make([]*transcript.Conversation, 0, len(paths))}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		conv, err := transcript.ParseFile(path, scorer)
		if err != nil {
			return nil, err
		}
		logger.Debug("transcript parsed",
			logging.String(logging.FieldSource, path),
			logging.Int(logging.FieldEpisodeID, conv.ID),
			logging.Int("lines", len(conv.Lines)),
		)
		list.Conversations = append(list.Conversations, conv)
	}
	logger.Info("transcripts loaded", logging.Int("count", len(list.Conversations)))
	return list, nil
}

// AllLines returns every line by speaker across all conversations.
func (l *List) AllLines(speaker string) []transcript.Line {
	var out []transcript.Line
	for _, conv := range l.Conversations {
		out = append(out, conv.LinesBy(speaker)...)
	}
	return out
}

// Speakers returns every speaker label in order of first appearance.
func (l *List) Speakers() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, conv := range l.Conversations {
		for _, s := range conv.Speakers() {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// NgramFreq counts n-token phrases in the speaker's sentences.
func (l *List) NgramFreq(speaker string, n int) *FreqDist {
	freq := NewFreqDist()
	for _, line := range l.AllLines(speaker) {
		for _, sent := range line.Sentences {
			freq.Update(Ngrams(transcript.Tokenize(sent.Words), n)...)
		}
	}
	return freq
}

// MostCommonPhrases returns the speaker's phrases of phraseLength tokens that
// appear on average at least minPerConvo times per conversation, most
// frequent first.
func (l *List) MostCommonPhrases(speaker string, phraseLength int, minPerConvo float64) []FreqEntry {
	if len(l.Conversations) == 0 {
		return nil
	}
	convos := float64(len(l.Conversations))
	var out []FreqEntry
	for _, entry := range l.NgramFreq(speaker, phraseLength).MostCommon(0) {
		if float64(entry.Count)/convos >= minPerConvo {
			out = append(out, entry)
		}
	}
	return out
}

// WriteLinesToFile writes the speaker's lines, one per row, to
// dir/<speaker>.txt and returns the file path.
func (l *List) WriteLinesToFile(speaker, dir string) (string, error) {
	lines := l.AllLines(speaker)
	words := make([]string, len(lines))
	for i, line := range lines {
		words[i] = line.Words
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, speakerFileName(speaker)+".txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("write lines: %w", err)
	}
	return path, nil
}
