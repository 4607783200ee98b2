package structural

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

var mdLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// AnalyzeLinks classifies markdown links as internal (relative target) or
// external (http/https), skipping pure fragment links, and flags anchors on
// the generic-text denylist.
func AnalyzeLinks(body string, tables vocab.Tables) *models.LinkInfo {
	info := &models.LinkInfo{
		BadAnchorTexts:     []string{},
		ExternalTierCounts: map[int]int{1: 0, 2: 0, 3: 0},
	}

	for _, m := range mdLinkRe.FindAllStringSubmatch(body, -1) {
		anchor, target := m[1], m[2]
		external := strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
		if !external && strings.HasPrefix(target, "#") {
			continue
		}
		if external {
			info.ExternalCount++
			info.ExternalTierCounts[tables.ClassifySourceTier(target)]++
		} else {
			info.InternalCount++
		}
		if _, bad := vocab.BadAnchorTexts[strings.ToLower(strings.TrimSpace(anchor))]; bad {
			info.BadAnchorTexts = append(info.BadAnchorTexts, anchor)
		}
	}
	info.TotalLinks = info.InternalCount + info.ExternalCount
	return info
}
