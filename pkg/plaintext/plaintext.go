// Package plaintext turns a markdown body into the plain-text view consumed
// by the linguistic extractors, and splits text into sentences.
package plaintext

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	codeFenceRe   = regexp.MustCompile("(?s)```.*?```")
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	imageRe       = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headingMarkRe = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	excessBlankRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips code fences, HTML/JSX tags, image syntax, link syntax
// (keeping anchor text), and heading markers, leaving prose for the
// linguistic analyzers.
func Normalize(body string) string {
	text := codeFenceRe.ReplaceAllString(body, "")
	text = htmlTagRe.ReplaceAllString(text, "")
	text = imageRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = headingMarkRe.ReplaceAllString(text, "")
	text = excessBlankRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Sentences splits text on sentence-ending punctuation followed by
// whitespace. The terminator stays attached to its sentence.
func Sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Swallow a run of terminators, then split on trailing whitespace.
		j := i
		for j+1 < len(runes) && (runes[j+1] == '.' || runes[j+1] == '!' || runes[j+1] == '?') {
			j++
		}
		if j+1 >= len(runes) || unicode.IsSpace(runes[j+1]) {
			s := strings.TrimSpace(string(runes[start : j+1]))
			if s != "" {
				out = append(out, s)
			}
			// Skip the whitespace run.
			k := j + 1
			for k < len(runes) && unicode.IsSpace(runes[k]) {
				k++
			}
			start = k
			i = k - 1
		} else {
			i = j
		}
	}
	if start < len(runes) {
		s := strings.TrimSpace(string(runes[start:]))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ContentSentences filters out fragments of two words or fewer, the noise
// threshold shared by every sentence-level metric.
func ContentSentences(text string) []string {
	var out []string
	for _, s := range Sentences(text) {
		if len(strings.Fields(s)) > 2 {
			out = append(out, s)
		}
	}
	return out
}
