package structural

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/num"
)

var (
	codeFenceRe   = regexp.MustCompile("(?s)```.*?```")
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	headingLineRe = regexp.MustCompile(`(?m)^#{1,6}\s+.*$`)
	mdImageRe     = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	blankSplitRe  = regexp.MustCompile(`\n\s*\n`)
)

// AnalyzeParagraphs computes paragraph-length statistics over the markdown
// body with code, tags, headings, and images stripped. Fragments under 5
// words are noise and excluded from every statistic.
func AnalyzeParagraphs(body string) *models.ParagraphStats {
	cleaned := codeFenceRe.ReplaceAllString(body, "")
	cleaned = htmlTagRe.ReplaceAllString(cleaned, "")
	cleaned = headingLineRe.ReplaceAllString(cleaned, "")
	cleaned = mdImageRe.ReplaceAllString(cleaned, "")

	stats := &models.ParagraphStats{}
	var counts []int
	for _, p := range blankSplitRe.Split(cleaned, -1) {
		words := len(strings.Fields(p))
		if words < 5 {
			continue
		}
		counts = append(counts, words)
		if words > 200 {
			stats.Over200Words++
		}
		if words > 150 {
			stats.Over150Words++
		}
		if words >= 40 && words <= 80 {
			stats.InIdealRange++
		}
	}

	stats.TotalParagraphs = len(counts)
	for _, c := range counts {
		stats.TotalWordCount += c
		if c > stats.MaxWordCount {
			stats.MaxWordCount = c
		}
	}
	if len(counts) > 0 {
		stats.AvgWordCount = num.Round1(float64(stats.TotalWordCount) / float64(len(counts)))
		stats.InRangeRatio = num.Round2(float64(stats.InIdealRange) / float64(len(counts)))
	}
	return stats
}
