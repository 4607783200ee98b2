package models

import "testing"

func TestRatingFor(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{100, RatingExceptional},
		{90, RatingExceptional},
		{89, RatingStrong},
		{80, RatingStrong},
		{79, RatingAcceptable},
		{70, RatingAcceptable},
		{69, RatingBelowStandard},
		{60, RatingBelowStandard},
		{59, RatingRewrite},
		{0, RatingRewrite},
	}
	for _, tt := range tests {
		if got := RatingFor(tt.total); got != tt.want {
			t.Errorf("RatingFor(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestCategoryCapsSumTo100(t *testing.T) {
	sum := 0
	for _, key := range CategoryKeys {
		sum += MaxFor(key)
	}
	if sum != 100 {
		t.Errorf("category caps sum to %d, want 100", sum)
	}
}

func TestCategoryScoresSum(t *testing.T) {
	c := CategoryScores{
		ContentQuality:      21,
		SEOOptimization:     18,
		EEATSignals:         9,
		TechnicalElements:   11,
		AICitationReadiness: 7,
	}
	if got := c.Sum(); got != 66 {
		t.Errorf("Sum() = %d, want 66", got)
	}
}

func TestMaxFor_UnknownKey(t *testing.T) {
	if got := MaxFor("nonsense"); got != 0 {
		t.Errorf("MaxFor(nonsense) = %d, want 0", got)
	}
}
