package linguistic

import (
	"testing"

	"github.com/dtnitsch/blog-analyzer/models"
)

func TestAnalyzeTransitions(t *testing.T) {
	text := "However, the cache missed. The cache missed again today. " +
		"For example, reads stall under load. However, moreover, it still works fine."

	info := AnalyzeTransitions(text)

	if info.TotalSentences != 4 {
		t.Fatalf("TotalSentences = %d, want 4", info.TotalSentences)
	}
	// The last sentence holds two transition terms but counts once.
	if info.TransitionCount != 3 {
		t.Errorf("TransitionCount = %d, want 3", info.TransitionCount)
	}
	if info.TransitionPct != 75.0 {
		t.Errorf("TransitionPct = %g, want 75.0", info.TransitionPct)
	}
}

func TestAnalyzeTriggerWords(t *testing.T) {
	info := AnalyzeTriggerWords("We delve into robust systems. We delve deeper.")

	if info.TriggerCount != 3 {
		t.Errorf("TriggerCount = %d, want 3", info.TriggerCount)
	}
	if info.PerThousand != 375.0 {
		t.Errorf("PerThousand = %g, want 375.0", info.PerThousand)
	}
	want := []models.WordCount{{Word: "delve", Count: 2}, {Word: "robust", Count: 1}}
	if len(info.Found) != len(want) {
		t.Fatalf("Found has %d entries, want %d: %+v", len(info.Found), len(want), info.Found)
	}
	for i, w := range want {
		if info.Found[i] != w {
			t.Errorf("Found[%d] = %+v, want %+v", i, info.Found[i], w)
		}
	}
}

func TestAnalyzeTriggerWords_NoBoundaryBleed(t *testing.T) {
	// "delves" and "robustness" must not count as "delve"/"robust".
	info := AnalyzeTriggerWords("He delves into robustness questions.")
	if info.TriggerCount != 0 {
		t.Errorf("TriggerCount = %d, want 0: %+v", info.TriggerCount, info.Found)
	}
}

func TestAnalyzeTriggerWords_Empty(t *testing.T) {
	info := AnalyzeTriggerWords("")
	if info.TriggerCount != 0 || info.PerThousand != 0 {
		t.Errorf("got %+v, want zero counts", info)
	}
	if info.Found == nil {
		t.Error("Found should be an empty slice, not nil")
	}
}

func TestAnalyzeAISignals(t *testing.T) {
	text := "In conclusion, we leverage cutting-edge tools seamlessly."
	info := AnalyzeAISignals(text, &models.SentenceInfo{Burstiness: 0.5})

	if info.PhraseCount != 4 {
		t.Errorf("PhraseCount = %d, want 4: %+v", info.PhraseCount, info.PhrasesFound)
	}
	if info.VocabularyDiversityTTR != 1.0 {
		t.Errorf("VocabularyDiversityTTR = %g, want 1.0", info.VocabularyDiversityTTR)
	}
	if info.Burstiness != 0.5 {
		t.Errorf("Burstiness = %g, want 0.5", info.Burstiness)
	}
	if info.LikelyAI {
		t.Error("LikelyAI = true, want false for varied vocabulary")
	}
}

func TestAnalyzeAISignals_LowDiversityLowBurstiness(t *testing.T) {
	text := "the the the the cat cat cat cat sat sat"
	info := AnalyzeAISignals(text, &models.SentenceInfo{Burstiness: 0.2})

	if info.VocabularyDiversityTTR != 0.3 {
		t.Errorf("VocabularyDiversityTTR = %g, want 0.3", info.VocabularyDiversityTTR)
	}
	if !info.LikelyAI {
		t.Error("LikelyAI = false, want true")
	}
}
