// Package frontmatter parses the flat key:value metadata block that may lead
// a markdown/MDX document. The block is deliberately not treated as YAML:
// only single-line key:value pairs are recognized, unparseable lines are
// skipped, and a missing block is an empty map, never an error.
package frontmatter

import (
	"regexp"
	"strings"
)

var blockRe = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n`)

// Extract returns the frontmatter mapping from the start of content. Keys and
// values are trimmed of whitespace and surrounding quotes; empty values are
// dropped entirely so absence stays distinguishable from empty-string.
func Extract(content string) map[string]string {
	fm := make(map[string]string)
	m := blockRe.FindStringSubmatch(content)
	if m == nil {
		return fm
	}
	for _, line := range strings.Split(m[1], "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = trimQuotes(strings.TrimSpace(value))
		if value != "" {
			fm[key] = value
		}
	}
	return fm
}

// StripBlock removes the leading frontmatter block, returning the body.
func StripBlock(content string) string {
	if loc := blockRe.FindStringIndex(content); loc != nil && loc[0] == 0 {
		return content[loc[1]:]
	}
	return content
}

func trimQuotes(s string) string {
	s = strings.Trim(s, `"`)
	return strings.Trim(s, `'`)
}
