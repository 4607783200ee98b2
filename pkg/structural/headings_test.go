package structural

import "testing"

func TestAnalyzeHeadings(t *testing.T) {
	body := `# Main Title

## What Is Testing?

Some text.

## Approaches

### Unit Testing

## Tools
`

	info := AnalyzeHeadings(body)

	if info.Total != 5 {
		t.Fatalf("Total = %d, want 5", info.Total)
	}
	if info.H1Count != 1 {
		t.Errorf("H1Count = %d, want 1", info.H1Count)
	}
	if info.H2Count != 3 {
		t.Errorf("H2Count = %d, want 3", info.H2Count)
	}
	if info.H3Count != 1 {
		t.Errorf("H3Count = %d, want 1", info.H3Count)
	}
	if info.H2QuestionCount != 1 {
		t.Errorf("H2QuestionCount = %d, want 1", info.H2QuestionCount)
	}
	if info.H2QuestionRatio != 0.33 {
		t.Errorf("H2QuestionRatio = %g, want 0.33", info.H2QuestionRatio)
	}
	if !info.HierarchyClean {
		t.Error("HierarchyClean = false, want true")
	}
}

func TestAnalyzeHeadings_HierarchySkip(t *testing.T) {
	body := "# Title\n\n## Section\n\n#### Deep Dive\n"

	info := AnalyzeHeadings(body)
	if info.HierarchyClean {
		t.Error("HierarchyClean = true, want false for H2 to H4 skip")
	}
}

func TestAnalyzeHeadings_Empty(t *testing.T) {
	info := AnalyzeHeadings("No headings in this text.")

	if info.Total != 0 {
		t.Errorf("Total = %d, want 0", info.Total)
	}
	if !info.HierarchyClean {
		t.Error("HierarchyClean = false, want true for no headings")
	}
	if info.H2QuestionRatio != 0 {
		t.Errorf("H2QuestionRatio = %g, want 0", info.H2QuestionRatio)
	}
}
