package structural

import (
	"strings"
	"testing"
)

func TestAnalyzeAICitation(t *testing.T) {
	passage := words(150)
	body := `## What is burstiness?

Burstiness measures sentence length variation.

## How do we score it?

` + passage + `

**Burstiness** is the coefficient of variation of sentence lengths.

TL;DR: vary your sentences.

| Metric | Value |
|--------|-------|
| TTR | 0.5 |

- point one
- point two
`

	info := AnalyzeAICitation(body, body)

	if info.CitablePassages != 1 {
		t.Errorf("CitablePassages = %d, want 1", info.CitablePassages)
	}
	if info.QAPairs != 2 {
		t.Errorf("QAPairs = %d, want 2", info.QAPairs)
	}
	if info.EntityDefinitions != 1 {
		t.Errorf("EntityDefinitions = %d, want 1", info.EntityDefinitions)
	}
	if !info.HasTLDR {
		t.Error("HasTLDR = false, want true")
	}
	if info.TableCount != 3 {
		t.Errorf("TableCount = %d, want 3 rows", info.TableCount)
	}
	if info.ListCount != 2 {
		t.Errorf("ListCount = %d, want 2", info.ListCount)
	}
}

func TestAnalyzeAICitation_QuestionHeadingUnanswered(t *testing.T) {
	body := "## Why bother?\n\n## Next heading\n\nText.\n"

	info := AnalyzeAICitation(body, body)
	if info.QAPairs != 0 {
		t.Errorf("QAPairs = %d, want 0 when the next content line is a heading", info.QAPairs)
	}
}

func TestAnalyzeAICitation_RobotsOnRawOnly(t *testing.T) {
	raw := "---\nrobots: noindex\n---\n\nBody text.\n"
	body := "Body text.\n"

	info := AnalyzeAICitation(body, raw)
	if !info.HasRobotsRestriction {
		t.Error("HasRobotsRestriction = false, want true from frontmatter in raw content")
	}

	clean := AnalyzeAICitation(body, body)
	if clean.HasRobotsRestriction {
		t.Error("HasRobotsRestriction = true, want false without restriction tokens")
	}
}

func TestAnalyzeAICitation_PassageBoundaries(t *testing.T) {
	body := strings.Join([]string{words(119), words(120), words(180), words(181)}, "\n\n")

	info := AnalyzeAICitation(body, body)
	if info.CitablePassages != 2 {
		t.Errorf("CitablePassages = %d, want 2 (inclusive 120-180 band)", info.CitablePassages)
	}
}
