package structural

import (
	"testing"

	"github.com/dtnitsch/blog-analyzer/pkg/markup"
)

const schemaDoc = `Intro text.

<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "BlogPosting", "headline": "Post"}
</script>

<script type="application/ld+json">
[{"@type": "FAQPage"}, {"@type": "Person", "name": "Jane"}]
</script>
`

func TestAnalyzeSchema(t *testing.T) {
	for _, degraded := range []bool{false, true} {
		info := AnalyzeSchema(schemaDoc, markup.Select(degraded))

		if info.SchemaCount != 3 {
			t.Errorf("degraded=%v: SchemaCount = %d, want 3", degraded, info.SchemaCount)
		}
		if !info.HasBlogPosting {
			t.Errorf("degraded=%v: HasBlogPosting = false, want true", degraded)
		}
		if !info.HasFAQPage {
			t.Errorf("degraded=%v: HasFAQPage = false, want true", degraded)
		}
		if !info.HasPerson {
			t.Errorf("degraded=%v: HasPerson = false, want true", degraded)
		}
	}
}

func TestAnalyzeSchema_MalformedBlockSkipped(t *testing.T) {
	doc := `<script type="application/ld+json">
{not valid json
</script>

<script type="application/ld+json">
{"@type": "Article"}
</script>
`

	info := AnalyzeSchema(doc, markup.Select(false))

	if info.SchemaCount != 1 {
		t.Fatalf("SchemaCount = %d, want 1 with the malformed block skipped", info.SchemaCount)
	}
	if !info.HasBlogPosting {
		t.Error("HasBlogPosting = false, want true for Article")
	}
}

func TestAnalyzeSchema_None(t *testing.T) {
	info := AnalyzeSchema("No structured data here.", markup.Select(false))

	if info.SchemaCount != 0 {
		t.Errorf("SchemaCount = %d, want 0", info.SchemaCount)
	}
}
