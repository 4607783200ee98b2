// Package classify infers a document's content type, which selects the
// word-count benchmark used by the depth sub-score.
package classify

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

var listicleTitleRe = regexp.MustCompile(`^\d+\s`)

// ContentType resolves the content type in fixed priority order: an explicit
// frontmatter type that matches a known benchmark, then title/category
// keyword matches, then default.
func ContentType(fm map[string]string, tables vocab.Tables) string {
	category := strings.ToLower(fm["category"])
	title := strings.ToLower(fm["title"])
	explicit := strings.ToLower(fm["type"])

	if explicit != "" && tables.KnownContentType(explicit) {
		return explicit
	}
	switch {
	case strings.Contains(title, "guide") || strings.Contains(category, "guide"):
		return "guide"
	case strings.Contains(title, "how to") || strings.Contains(category, "how-to"):
		return "how-to"
	case listicleTitleRe.MatchString(title) || strings.Contains(category, "listicle"):
		return "listicle"
	case strings.Contains(title, "review") || strings.Contains(category, "review"):
		return "review"
	case strings.Contains(title, "case study") || strings.Contains(category, "case-study"):
		return "case-study"
	case strings.Contains(category, "opinion"):
		return "opinion"
	case strings.Contains(category, "news"):
		return "news"
	}
	return "default"
}
