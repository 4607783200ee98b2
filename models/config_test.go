package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAnalyzerConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadAnalyzerConfig("")
	if err != nil {
		t.Fatalf("LoadAnalyzerConfig(\"\") error = %v", err)
	}
	if len(cfg.Tier1Domains) != 0 || len(cfg.Benchmarks) != 0 {
		t.Errorf("empty path should yield empty config, got %+v", cfg)
	}
}

func TestLoadAnalyzerConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analyzer.yaml")
	data := `tier1_domains:
  - internal.example.com
extra_tier2_domains:
  - trusted.example.org
benchmarks:
  guide:
    min_words: 1000
    max_words: 2000
workers: 8
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAnalyzerConfig(path)
	if err != nil {
		t.Fatalf("LoadAnalyzerConfig() error = %v", err)
	}
	if len(cfg.Tier1Domains) != 1 || cfg.Tier1Domains[0] != "internal.example.com" {
		t.Errorf("Tier1Domains = %v", cfg.Tier1Domains)
	}
	if len(cfg.ExtraTier2Domains) != 1 {
		t.Errorf("ExtraTier2Domains = %v", cfg.ExtraTier2Domains)
	}
	if b := cfg.Benchmarks["guide"]; b.MinWords != 1000 || b.MaxWords != 2000 {
		t.Errorf("Benchmarks[guide] = %+v, want {1000 2000}", b)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
}

func TestLoadAnalyzerConfig_MissingFile(t *testing.T) {
	if _, err := LoadAnalyzerConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadAnalyzerConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tier1_domains: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAnalyzerConfig(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
