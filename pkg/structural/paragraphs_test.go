package structural

import (
	"strings"
	"testing"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "word"
	}
	return strings.Join(parts, " ")
}

func TestAnalyzeParagraphs(t *testing.T) {
	body := "# Heading\n\n" +
		words(50) + "\n\n" + // ideal range
		words(10) + "\n\n" +
		words(160) + "\n\n" + // over 150
		"too short\n\n" + // dropped, under 5 words
		"```\n" + words(500) + "\n```\n"

	stats := AnalyzeParagraphs(body)

	if stats.TotalParagraphs != 3 {
		t.Fatalf("TotalParagraphs = %d, want 3", stats.TotalParagraphs)
	}
	if stats.TotalWordCount != 220 {
		t.Errorf("TotalWordCount = %d, want 220", stats.TotalWordCount)
	}
	if stats.MaxWordCount != 160 {
		t.Errorf("MaxWordCount = %d, want 160", stats.MaxWordCount)
	}
	if stats.Over150Words != 1 {
		t.Errorf("Over150Words = %d, want 1", stats.Over150Words)
	}
	if stats.Over200Words != 0 {
		t.Errorf("Over200Words = %d, want 0", stats.Over200Words)
	}
	if stats.InIdealRange != 1 {
		t.Errorf("InIdealRange = %d, want 1", stats.InIdealRange)
	}
	if stats.AvgWordCount != 73.3 {
		t.Errorf("AvgWordCount = %g, want 73.3", stats.AvgWordCount)
	}
	if stats.InRangeRatio != 0.33 {
		t.Errorf("InRangeRatio = %g, want 0.33", stats.InRangeRatio)
	}
}

func TestAnalyzeParagraphs_Empty(t *testing.T) {
	stats := AnalyzeParagraphs("")

	if stats.TotalParagraphs != 0 {
		t.Errorf("TotalParagraphs = %d, want 0", stats.TotalParagraphs)
	}
	if stats.AvgWordCount != 0 {
		t.Errorf("AvgWordCount = %g, want 0", stats.AvgWordCount)
	}
}
