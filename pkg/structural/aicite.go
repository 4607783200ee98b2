package structural

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
)

var (
	questionHeadingRe = regexp.MustCompile(`^#{2,4}\s+.+\?`)
	entityDefRe       = regexp.MustCompile(`\*\*[^*]+\*\*\s*(?:is|are|refers to|means)`)
	tldrRe            = regexp.MustCompile(`(?i)(?:TL;?DR|key takeaway|summary|at a glance)`)
	tableRowRe        = regexp.MustCompile(`(?m)^\|.+\|$`)
	listItemRe        = regexp.MustCompile(`(?m)^[\s]*[-*+]\s`)
	robotsTokenRe     = regexp.MustCompile(`(?i)robots|noai|noindex`)
)

// AnalyzeAICitation measures how extractable the content is for downstream
// citation systems: passages in the 120-180 word band, question headings
// answered within four lines, bolded entity definitions, and summary or
// tabular structure. The robots scan runs over the raw content so a
// frontmatter noindex is not missed.
func AnalyzeAICitation(body, raw string) *models.AICitationInfo {
	info := &models.AICitationInfo{}

	for _, p := range blankSplitRe.Split(body, -1) {
		wc := len(strings.Fields(p))
		if wc >= 120 && wc <= 180 {
			info.CitablePassages++
		}
	}

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if !questionHeadingRe.MatchString(line) {
			continue
		}
		limit := i + 5
		if limit > len(lines) {
			limit = len(lines)
		}
		for j := i + 1; j < limit; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if !strings.HasPrefix(next, "#") {
				info.QAPairs++
			}
			break
		}
	}

	info.EntityDefinitions = len(entityDefRe.FindAllString(body, -1))
	info.HasTLDR = tldrRe.MatchString(body)
	info.TableCount = len(tableRowRe.FindAllString(body, -1))
	info.ListCount = len(listItemRe.FindAllString(body, -1))
	info.HasRobotsRestriction = robotsTokenRe.MatchString(raw)
	return info
}
