package structural

import (
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
)

// AnalyzeKeyword locates the primary keyword (first entry of the frontmatter
// keyword/keywords field) in the title, the first body paragraph, and the
// headings. An empty Keyword means none was defined.
func AnalyzeKeyword(fm map[string]string, body string, headings *models.HeadingInfo) *models.KeywordPlacement {
	raw := fm["keyword"]
	if raw == "" {
		raw = fm["keywords"]
	}
	keyword := strings.ToLower(strings.TrimSpace(strings.Split(raw, ",")[0]))
	info := &models.KeywordPlacement{Keyword: keyword}
	if keyword == "" {
		return info
	}

	info.InTitle = strings.Contains(strings.ToLower(fm["title"]), keyword)

	firstPara, _, _ := strings.Cut(body, "\n\n")
	info.InFirstParagraph = strings.Contains(strings.ToLower(firstPara), keyword)

	var sb strings.Builder
	for _, h := range headings.Headings {
		sb.WriteString(strings.ToLower(h.Text))
		sb.WriteString(" ")
	}
	info.InHeading = strings.Contains(sb.String(), keyword)
	return info
}
