package transcript

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"plain", "Hello there. How are you? Great!", []string{"Hello there.", "How are you?", "Great!"}},
		{"newlines", "First line\nSecond line.", []string{"First line", "Second line."}},
		{"abbreviation", "Mr. Smith called. He left.", []string{"Mr. Smith called.", "He left."}},
		{"dotted abbreviation", "We went to the U.S. and e.g. Canada.", []string{"We went to the U.S. and e.g. Canada."}},
		{"initial", "J. Smith is here.", []string{"J. Smith is here."}},
		{"decimal", "It cost 3.50 dollars. Cheap.", []string{"It cost 3.50 dollars.", "Cheap."}},
		{"ellipsis lower", "I was like... you know.", []string{"I was like... you know."}},
		{"ellipsis upper", "Wait... What?", []string{"Wait...", "What?"}},
		{"closing quote", `He said "stop." Then left.`, []string{`He said "stop."`, "Then left."}},
		{"repeated", "What?! No way.", []string{"What?!", "No way."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello, world!", []string{"Hello", ",", "world", "!"}},
		{"I don't know...", []string{"I", "don't", "know", "..."}},
		{"well-known fact", []string{"well-known", "fact"}},
		{"  ", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLowerAndRemovePunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "hello world"},
		{"Don't   STOP...", "dont stop"},
		{"New York City?", "new york city"},
		{"$100 & more", "100 more"},
	}
	for _, tt := range tests {
		if got := LowerAndRemovePunc(tt.input); got != tt.expected {
			t.Errorf("LowerAndRemovePunc(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"Hello world", 5, "He..."},
		{"Hello world", 30, "Hello world"},
		{"Hello world", 11, "Hello world"},
		{"Hello world", 10, "Hello w..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}
