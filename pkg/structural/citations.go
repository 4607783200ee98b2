package structural

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

var (
	statRe       = regexp.MustCompile(`[0-9]+\.?[0-9]*%`)
	inlineCiteRe = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)
	parenCiteRe  = regexp.MustCompile(`\(([^)]*20\d{2}[^)]*)\)`)
	inlineNearRe = regexp.MustCompile(`\[.+\]\(https?://`)
)

// AnalyzeCitations finds percentage statistics and checks whether each is
// sourced: an inline URL citation or a parenthetical year citation within
// the 200 characters that follow the statistic.
func AnalyzeCitations(body string, tables vocab.Tables) *models.CitationInfo {
	info := &models.CitationInfo{
		TierCounts: map[int]int{1: 0, 2: 0, 3: 0},
	}

	inline := inlineCiteRe.FindAllStringSubmatch(body, -1)
	info.InlineCitations = len(inline)
	info.ParenCitations = len(parenCiteRe.FindAllString(body, -1))

	unique := map[string]struct{}{}
	for _, m := range inline {
		unique[strings.ToLower(m[2])] = struct{}{}
		info.TierCounts[tables.ClassifySourceTier(m[2])]++
	}
	info.UniqueSources = len(unique)

	for _, loc := range statRe.FindAllStringIndex(body, -1) {
		info.TotalStatistics++
		end := loc[0] + 200
		if end > len(body) {
			end = len(body)
		}
		context := body[loc[0]:end]
		if inlineNearRe.MatchString(context) || parenCiteRe.MatchString(context) {
			info.SourcedStatistics++
		} else {
			info.UnsourcedStatistics++
		}
	}
	return info
}
