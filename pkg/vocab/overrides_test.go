package vocab

import (
	"testing"

	"github.com/dtnitsch/blog-analyzer/models"
)

func TestTablesFromConfig_NilKeepsDefaults(t *testing.T) {
	tables := TablesFromConfig(nil)
	if got := tables.ClassifySourceTier("https://nih.gov/study"); got != 1 {
		t.Errorf("ClassifySourceTier(nih.gov) = %d, want 1", got)
	}
	if b := tables.BenchmarkFor("guide"); b.MinWords != 2500 || b.MaxWords != 5000 {
		t.Errorf("BenchmarkFor(guide) = %+v, want {2500 5000}", b)
	}
}

func TestTablesFromConfig_ReplaceAndAppend(t *testing.T) {
	cfg := &models.AnalyzerConfig{
		Tier1Domains:      []string{"internal.example.com"},
		ExtraTier2Domains: []string{"trusted.example.org"},
	}
	tables := TablesFromConfig(cfg)

	if got := tables.ClassifySourceTier("https://internal.example.com/report"); got != 1 {
		t.Errorf("replacement tier-1 domain classified as %d, want 1", got)
	}
	// The replacement list fully displaces the default tier-1 entries.
	if got := tables.ClassifySourceTier("https://nih.gov/study"); got != 3 {
		t.Errorf("nih.gov after replacement classified as %d, want 3", got)
	}
	if got := tables.ClassifySourceTier("https://trusted.example.org/post"); got != 2 {
		t.Errorf("appended tier-2 domain classified as %d, want 2", got)
	}
	// Appending to tier 2 leaves the defaults in place.
	if got := tables.ClassifySourceTier("https://reuters.com/article"); got != 2 {
		t.Errorf("reuters.com classified as %d, want 2", got)
	}
}

func TestTablesFromConfig_BenchmarkOverride(t *testing.T) {
	cfg := &models.AnalyzerConfig{
		Benchmarks: map[string]models.BenchmarkOverride{
			"guide":     {MinWords: 1000, MaxWords: 2000},
			"deep-dive": {MinWords: 3000, MaxWords: 8000},
		},
	}
	tables := TablesFromConfig(cfg)

	if b := tables.BenchmarkFor("guide"); b.MinWords != 1000 || b.MaxWords != 2000 {
		t.Errorf("overridden guide benchmark = %+v, want {1000 2000}", b)
	}
	if !tables.KnownContentType("deep-dive") {
		t.Error("deep-dive should be a known content type after override")
	}
	if b := tables.BenchmarkFor("how-to"); b.MinWords != 1500 {
		t.Errorf("untouched how-to benchmark = %+v, want min 1500", b)
	}
}
