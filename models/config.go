package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BenchmarkOverride is a word-count range override for one content type.
type BenchmarkOverride struct {
	MinWords int `yaml:"min_words"`
	MaxWords int `yaml:"max_words"`
}

// AnalyzerConfig holds optional overrides loaded from a YAML config file.
// Everything is additive: absent fields leave the built-in tables untouched.
type AnalyzerConfig struct {
	// Replace the built-in tier lists entirely.
	Tier1Domains []string `yaml:"tier1_domains"`
	Tier2Domains []string `yaml:"tier2_domains"`

	// Append to whichever tier lists are in effect.
	ExtraTier1Domains []string `yaml:"extra_tier1_domains"`
	ExtraTier2Domains []string `yaml:"extra_tier2_domains"`

	// Per content-type word-count benchmark overrides.
	Benchmarks map[string]BenchmarkOverride `yaml:"benchmarks"`

	// Batch worker count; flag takes precedence when set.
	Workers int `yaml:"workers"`
}

// LoadAnalyzerConfig reads a YAML config file. A missing path returns an
// empty config rather than an error so the flag can stay optional.
func LoadAnalyzerConfig(path string) (*AnalyzerConfig, error) {
	cfg := &AnalyzerConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
