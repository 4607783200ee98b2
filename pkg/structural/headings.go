// Package structural contains the extractors that operate on the markdown
// body (or raw document where markup can live in frontmatter): headings,
// paragraphs, images, charts, citations, links, FAQ, schema, social meta,
// originality, engagement, structured data, and AI-citation markers. Every
// extractor is a pure function of its input text.
package structural

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/num"
)

var headingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

// AnalyzeHeadings scans markdown headings and derives the structure facts the
// scoring engine needs: level counts, question ratio, and hierarchy hygiene.
func AnalyzeHeadings(body string) *models.HeadingInfo {
	var headings []models.Heading
	for _, m := range headingRe.FindAllStringSubmatch(body, -1) {
		text := strings.TrimSpace(m[2])
		headings = append(headings, models.Heading{
			Level:      len(m[1]),
			Text:       text,
			IsQuestion: strings.HasSuffix(strings.TrimRight(text, " \t"), "?"),
		})
	}

	info := &models.HeadingInfo{
		Headings:       headings,
		HierarchyClean: true,
		Total:          len(headings),
	}
	for _, h := range headings {
		switch h.Level {
		case 1:
			info.H1Count++
		case 2:
			info.H2Count++
			if h.IsQuestion {
				info.H2QuestionCount++
			}
		case 3:
			info.H3Count++
		}
	}
	if info.H2Count > 0 {
		info.H2QuestionRatio = num.Round2(float64(info.H2QuestionCount) / float64(info.H2Count))
	}

	// A skip of more than one level after the first heading breaks hierarchy.
	prev := 0
	for _, h := range headings {
		if prev > 0 && h.Level > prev+1 {
			info.HierarchyClean = false
		}
		prev = h.Level
	}
	return info
}
