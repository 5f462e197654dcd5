package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed marks transcripts that do not follow the expected layout.
var ErrMalformed = errors.New("malformed transcript")

const headerLines = 3

// ParseFile opens path and parses it as a transcript.
func ParseFile(path string, scorer Scorer) (*Conversation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	conv, err := Parse(f, scorer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	conv.Source = path
	return conv, nil
}

// Parse reads a transcript and merges consecutive dialogue rows from the same
// speaker into one Line. The number of lines returned is the number of speaker
// changes plus one.
func Parse(r io.Reader, scorer Scorer) (*Conversation, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < headerLines {
		return nil, fmt.Errorf("%w: expected %d header lines, got %d", ErrMalformed, headerLines, len(rows))
	}

	id, err := parseEpisodeID(rows[0])
	if err != nil {
		return nil, err
	}
	conv := &Conversation{
		ID:    id,
		Title: strings.TrimSpace(rows[1]),
		Date:  strings.TrimSpace(rows[2]),
	}

	var (
		currentSpeaker string
		currentWords   []string
		started        bool
	)
	for idx, row := range rows[headerLines:] {
		if strings.TrimSpace(row) == "" {
			continue
		}
		speaker, words, ok := splitDialogue(row)
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no speaker separator", ErrMalformed, idx+headerLines+1)
		}
		if speaker == "" {
			return nil, fmt.Errorf("%w: line %d has no speaker label", ErrMalformed, idx+headerLines+1)
		}
		switch {
		case !started:
			currentSpeaker = speaker
			currentWords = []string{words}
			started = true
		case speaker == currentSpeaker:
			currentWords = append(currentWords, words)
		default:
			conv.Lines = append(conv.Lines, NewLine(currentSpeaker, strings.Join(currentWords, "\n"), scorer))
			currentSpeaker = speaker
			currentWords = []string{words}
		}
	}
	if !started {
		return nil, fmt.Errorf("%w: no dialogue lines", ErrMalformed)
	}
	conv.Lines = append(conv.Lines, NewLine(currentSpeaker, strings.Join(currentWords, "\n"), scorer))
	return conv, nil
}

func readRows(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	var rows []string
	for scanner.Scan() {
		rows = append(rows, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	if len(rows) > 0 {
		rows[0] = strings.TrimPrefix(rows[0], "\ufeff")
	}
	return rows, nil
}

// parseEpisodeID extracts the integer token that follows the first space of
// the header, tolerating trailing punctuation such as "Episode 12: ...".
func parseEpisodeID(header string) (int, error) {
	_, rest, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return 0, fmt.Errorf("%w: header %q has no episode number", ErrMalformed, header)
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: header %q has no episode number", ErrMalformed, header)
	}
	token := strings.TrimRight(fields[0], ":,.-#")
	id, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: episode number %q: %v", ErrMalformed, fields[0], err)
	}
	return id, nil
}

func splitDialogue(row string) (speaker, words string, ok bool) {
	speaker, words, ok = strings.Cut(row, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(speaker), strings.TrimSpace(words), true
}
