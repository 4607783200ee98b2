package structural

import (
	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/markup"
)

// AnalyzeSchema extracts JSON-LD @type values through the markup parser and
// flags the schema types the scoring engine cares about.
func AnalyzeSchema(raw string, parser markup.Parser) *models.SchemaInfo {
	types := parser.JSONLDTypes(raw)
	info := &models.SchemaInfo{
		SchemasFound: types,
		SchemaCount:  len(types),
	}
	for _, t := range types {
		switch t {
		case "BlogPosting", "Article":
			info.HasBlogPosting = true
		case "FAQPage":
			info.HasFAQPage = true
		case "Person":
			info.HasPerson = true
		}
	}
	return info
}
