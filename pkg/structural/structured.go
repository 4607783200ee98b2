package structural

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
)

var (
	tableSepRe    = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)
	orderedItemRe = regexp.MustCompile(`(?m)^[\s]*\d+\.\s`)
	blockquoteRe  = regexp.MustCompile(`(?m)^>\s`)
)

// AnalyzeStructuredData counts extraction-friendly markdown structures.
// Tables are estimated from header-separator rows, since each table has
// exactly one.
func AnalyzeStructuredData(body string) *models.StructuredDataInfo {
	info := &models.StructuredDataInfo{
		TableRows:          len(tableRowRe.FindAllString(body, -1)),
		UnorderedListItems: len(listItemRe.FindAllString(body, -1)),
		OrderedListItems:   len(orderedItemRe.FindAllString(body, -1)),
		CodeBlocks:         strings.Count(body, "```") / 2,
		Blockquotes:        len(blockquoteRe.FindAllString(body, -1)),
	}
	if info.TableRows > 0 {
		info.TableCount = len(tableSepRe.FindAllString(body, -1))
	}
	return info
}
