package linguistic

import "testing"

func TestAnalyzeSentences(t *testing.T) {
	// Lengths: 4 and 8 words. Mean 6, population stddev 2, burstiness 0.33.
	text := "This has four words. This longer sentence contains exactly eight whole words."

	info := AnalyzeSentences(text)

	if info.Count != 2 {
		t.Fatalf("Count = %d, want 2", info.Count)
	}
	if info.AvgLength != 6 {
		t.Errorf("AvgLength = %g, want 6", info.AvgLength)
	}
	if info.MaxLength != 8 {
		t.Errorf("MaxLength = %d, want 8", info.MaxLength)
	}
	if info.StdDev != 2 {
		t.Errorf("StdDev = %g, want 2", info.StdDev)
	}
	if info.Burstiness != 0.33 {
		t.Errorf("Burstiness = %g, want 0.33", info.Burstiness)
	}
	if info.VeryLongCount != 0 || info.Over20Count != 0 || info.Over25Count != 0 {
		t.Errorf("long counts = (%d, %d, %d), want all 0",
			info.VeryLongCount, info.Over20Count, info.Over25Count)
	}
}

func TestAnalyzeSentences_FragmentsExcluded(t *testing.T) {
	text := "No. Yes. This one is long enough to count."

	info := AnalyzeSentences(text)
	if info.Count != 1 {
		t.Errorf("Count = %d, want 1 with two-word fragments dropped", info.Count)
	}
}

func TestAnalyzeSentences_Empty(t *testing.T) {
	info := AnalyzeSentences("")

	if info.Count != 0 {
		t.Errorf("Count = %d, want 0", info.Count)
	}
	if info.Burstiness != 0 {
		t.Errorf("Burstiness = %g, want 0", info.Burstiness)
	}
}
