package structural

import (
	"testing"

	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

func TestAnalyzeLinks(t *testing.T) {
	body := `See [our testing guide](/guides/testing) and [setup notes](../setup.md).
External: [research](https://www.nih.gov/study) and [coverage](https://www.reuters.com/tech).
Jump to [the summary](#summary).
Also [click here](/promo) for more.
`

	info := AnalyzeLinks(body, vocab.DefaultTables())

	if info.InternalCount != 3 {
		t.Errorf("InternalCount = %d, want 3", info.InternalCount)
	}
	if info.ExternalCount != 2 {
		t.Errorf("ExternalCount = %d, want 2", info.ExternalCount)
	}
	if info.TotalLinks != 5 {
		t.Errorf("TotalLinks = %d, want 5", info.TotalLinks)
	}
	if info.ExternalTierCounts[1] != 1 || info.ExternalTierCounts[2] != 1 {
		t.Errorf("ExternalTierCounts = %v, want one tier-1 and one tier-2", info.ExternalTierCounts)
	}
	if len(info.BadAnchorTexts) != 1 || info.BadAnchorTexts[0] != "click here" {
		t.Errorf("BadAnchorTexts = %v, want [click here]", info.BadAnchorTexts)
	}
}

func TestAnalyzeLinks_FragmentOnlySkipped(t *testing.T) {
	info := AnalyzeLinks("Only [a fragment](#top) link.", vocab.DefaultTables())

	if info.TotalLinks != 0 {
		t.Errorf("TotalLinks = %d, want 0 for fragment-only links", info.TotalLinks)
	}
}
