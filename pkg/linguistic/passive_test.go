package linguistic

import "testing"

func TestAnalyzePassiveVoice(t *testing.T) {
	text := "The report was written by the intern. She writes clear reports every week. " +
		"Mistakes were quickly made during the rollout. The team ships on Friday."

	info := AnalyzePassiveVoice(text)

	if info.TotalSentences != 4 {
		t.Fatalf("TotalSentences = %d, want 4", info.TotalSentences)
	}
	if info.PassiveCount != 2 {
		t.Errorf("PassiveCount = %d, want 2", info.PassiveCount)
	}
	if info.PassivePct != 50.0 {
		t.Errorf("PassivePct = %g, want 50.0", info.PassivePct)
	}
}

func TestAnalyzePassiveVoice_ActiveOnly(t *testing.T) {
	info := AnalyzePassiveVoice("The compiler rejects the program. We fix the bug and move on.")
	if info.PassiveCount != 0 {
		t.Errorf("PassiveCount = %d, want 0", info.PassiveCount)
	}
	if info.PassivePct != 0 {
		t.Errorf("PassivePct = %g, want 0", info.PassivePct)
	}
}

func TestAnalyzePassiveVoice_Empty(t *testing.T) {
	info := AnalyzePassiveVoice("")
	if info.TotalSentences != 0 || info.PassiveCount != 0 || info.PassivePct != 0 {
		t.Errorf("got %+v, want zero values", info)
	}
}
