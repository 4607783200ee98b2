package models

import (
	"encoding/json"
	"fmt"
)

// Category identifies which scoring category an issue belongs to.
type Category int

const (
	CategoryContent Category = iota
	CategorySEO
	CategoryEEAT
	CategoryTechnical
	CategoryAICitation
)

func (c Category) String() string {
	switch c {
	case CategoryContent:
		return "content"
	case CategorySEO:
		return "seo"
	case CategoryEEAT:
		return "eeat"
	case CategoryTechnical:
		return "technical"
	case CategoryAICitation:
		return "ai_citation"
	}
	return "unknown"
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "content":
		*c = CategoryContent
	case "seo":
		*c = CategorySEO
	case "eeat":
		*c = CategoryEEAT
	case "technical":
		*c = CategoryTechnical
	case "ai_citation":
		*c = CategoryAICitation
	default:
		return fmt.Errorf("unknown issue category %q", s)
	}
	return nil
}

func (c Category) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Severity ranks how urgently an issue should be addressed.
type Severity int

const (
	SeverityHigh Severity = iota
	SeverityMedium
	SeverityLow
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	}
	return "unknown"
}

// Rank returns the sort key for severity ordering: high sorts first.
func (s Severity) Rank() int { return int(s) }

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "high":
		*s = SeverityHigh
	case "medium":
		*s = SeverityMedium
	case "low":
		*s = SeverityLow
	default:
		return fmt.Errorf("unknown severity %q", str)
	}
	return nil
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Issue is a single actionable finding emitted during scoring.
type Issue struct {
	Category Category `json:"category" yaml:"category"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}
