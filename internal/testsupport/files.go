package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Episode describes a transcript fixture.
type Episode struct {
	ID       int
	Title    string
	Date     string
	Dialogue []string
}

// Render formats the episode in the on-disk transcript layout.
func (e Episode) Render() string {
	title := e.Title
	if title == "" {
		title = fmt.Sprintf("Episode %d title", e.ID)
	}
	date := e.Date
	if date == "" {
		date = "January 1, 2019"
	}
	rows := []string{fmt.Sprintf("Episode %d - %s", e.ID, title), title, date}
	rows = append(rows, e.Dialogue...)
	return strings.Join(rows, "\n") + "\n"
}

// WriteTranscript writes the episode to dir/episode-<id>.txt and returns the path.
func WriteTranscript(t testing.TB, dir string, ep Episode) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("episode-%03d.txt", ep.ID))
	if err := os.WriteFile(path, []byte(ep.Render()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// SampleEpisodes returns two small call-in episodes with a host and callers.
func SampleEpisodes() []Episode {
	return []Episode{
		{
			ID:    101,
			Title: "Jobs and Pizza",
			Date:  "March 3, 2019",
			Dialogue: []string{
				"Chris: Welcome back to the show. You know what I mean?",
				"Caller: Hey Chris, good to talk to you.",
				"Caller: I have a darn problem with my job.",
				"Chris: You know what I mean, that is bad.",
				"Chris: New York City pizza is good.",
				"Caller: Good point, New York City pizza is good!",
			},
		},
		{
			ID:    102,
			Title: "Neighbours",
			Date:  "March 10, 2019",
			Dialogue: []string{
				"Chris: You know what I mean? Welcome back.",
				"Caller: My neighbour is bad. Really bad.",
				"Chris: New York City pizza fixes everything.",
				"Caller: Darn right.",
			},
		},
	}
}

// WriteSampleEpisodes writes SampleEpisodes into dir and returns the paths.
func WriteSampleEpisodes(t testing.TB, dir string) []string {
	t.Helper()

	var paths []string
	for _, ep := range SampleEpisodes() {
		paths = append(paths, WriteTranscript(t, dir, ep))
	}
	return paths
}
