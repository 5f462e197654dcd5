package transcript

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// abbreviations never end a sentence even when followed by whitespace.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "a.m": {}, "p.m": {},
	"u.s": {}, "u.k": {}, "inc": {}, "co": {}, "ltd": {}, "no": {}, "approx": {},
	"mt": {}, "ave": {}, "dept": {}, "est": {}, "fig": {}, "jan": {}, "feb": {},
	"aug": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// SplitSentences segments text into sentences. Newlines always end a sentence;
// runs of '.', '!' or '?' end one when followed by whitespace, unless the
// period closes a known abbreviation or an initial, or an ellipsis is followed
// by a lower-case word.
func SplitSentences(text string) []string {
	var sentences []string
	for _, para := range strings.Split(text, "\n") {
		sentences = append(sentences, splitParagraph(para)...)
	}
	return sentences
}

func splitParagraph(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var (
		out   []string
		start int
	)
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		end := i
		for end+1 < len(runes) && (isTerminator(runes[end+1]) || isCloser(runes[end+1])) {
			end++
		}
		next := end + 1
		if next < len(runes) && !unicode.IsSpace(runes[next]) {
			i = end
			continue
		}
		if !isBoundary(runes, start, i, end, next) {
			i = end
			continue
		}
		if s := strings.TrimSpace(string(runes[start : end+1])); s != "" {
			out = append(out, s)
		}
		start = next
		i = end
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isBoundary(runes []rune, start, term, end, next int) bool {
	if next >= len(runes) {
		return true
	}
	followerLower := false
	for j := next; j < len(runes); j++ {
		if unicode.IsSpace(runes[j]) {
			continue
		}
		followerLower = unicode.IsLower(runes[j])
		break
	}

	punct := string(runes[term : end+1])
	if strings.HasPrefix(punct, "...") || strings.HasPrefix(punct, "…") {
		return !followerLower
	}
	if runes[term] != '.' || (term+1 <= end && runes[term+1] == '.') {
		return true
	}

	// the token that the period closes
	wordStart := term
	for wordStart > start && !unicode.IsSpace(runes[wordStart-1]) {
		wordStart--
	}
	word := strings.ToLower(strings.TrimLeft(string(runes[wordStart:term]), "(\"'"))
	if _, ok := abbreviations[word]; ok {
		return false
	}
	if r := []rune(word); len(r) == 1 && unicode.IsLetter(r[0]) {
		return false
	}
	return true
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

// Tokenize splits a sentence into word tokens with punctuation runs split off
// as their own tokens. Apostrophes and hyphens inside a word are kept.
func Tokenize(text string) []string {
	var (
		tokens []string
		cur    []rune
		kind   int // 0 none, 1 word, 2 punct
	)
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
		kind = 0
	}
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if kind != 1 {
				flush()
				kind = 1
			}
			cur = append(cur, r)
		case (r == '\'' || r == '’' || r == '-') && kind == 1 && i+1 < len(runes) && (unicode.IsLetter(runes[i+1]) || unicode.IsDigit(runes[i+1])):
			cur = append(cur, r)
		default:
			if kind != 2 {
				flush()
				kind = 2
			}
			cur = append(cur, r)
		}
	}
	flush()
	return tokens
}

// LowerAndRemovePunc lower-cases text, strips punctuation and symbols, and
// collapses whitespace to single spaces.
func LowerAndRemovePunc(text string) string {
	lowered := cases.Lower(language.English).String(text)
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, lowered)
	return strings.Join(strings.Fields(stripped), " ")
}

// CleanWords returns the lower-cased, punctuation-free words of text.
func CleanWords(text string) []string {
	return strings.Fields(LowerAndRemovePunc(text))
}
