package vocab

import "github.com/dtnitsch/blog-analyzer/models"

// TablesFromConfig merges config-file overrides into a copy of the default
// tables. Replacement lists win over the defaults; extra lists append to
// whichever list is in effect.
func TablesFromConfig(cfg *models.AnalyzerConfig) Tables {
	t := DefaultTables()
	if cfg == nil {
		return t
	}
	if len(cfg.Tier1Domains) > 0 {
		t.Tier1Domains = append([]string(nil), cfg.Tier1Domains...)
	}
	if len(cfg.Tier2Domains) > 0 {
		t.Tier2Domains = append([]string(nil), cfg.Tier2Domains...)
	}
	t.Tier1Domains = append(t.Tier1Domains, cfg.ExtraTier1Domains...)
	t.Tier2Domains = append(t.Tier2Domains, cfg.ExtraTier2Domains...)
	for name, b := range cfg.Benchmarks {
		t.Benchmarks[name] = Benchmark{MinWords: b.MinWords, MaxWords: b.MaxWords}
	}
	return t
}
