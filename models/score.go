package models

// Category score caps. The five caps sum to 100.
const (
	MaxContentQuality      = 30
	MaxSEOOptimization     = 25
	MaxEEATSignals         = 15
	MaxTechnicalElements   = 15
	MaxAICitationReadiness = 15
)

// Rating bands for the total score.
const (
	RatingExceptional   = "Exceptional"
	RatingStrong        = "Strong"
	RatingAcceptable    = "Acceptable"
	RatingBelowStandard = "Below Standard"
	RatingRewrite       = "Rewrite"
)

// RatingFor maps a total score onto its rating band.
func RatingFor(total int) string {
	switch {
	case total >= 90:
		return RatingExceptional
	case total >= 80:
		return RatingStrong
	case total >= 70:
		return RatingAcceptable
	case total >= 60:
		return RatingBelowStandard
	default:
		return RatingRewrite
	}
}

// CategoryScores holds the five category sub-totals under the fixed keys the
// output contract requires.
type CategoryScores struct {
	ContentQuality      int `json:"content_quality" yaml:"content_quality"`
	SEOOptimization     int `json:"seo_optimization" yaml:"seo_optimization"`
	EEATSignals         int `json:"eeat_signals" yaml:"eeat_signals"`
	TechnicalElements   int `json:"technical_elements" yaml:"technical_elements"`
	AICitationReadiness int `json:"ai_citation_readiness" yaml:"ai_citation_readiness"`
}

// Sum returns the exact category total. The report invariant is
// Total == Sum(); no independent rounding happens anywhere.
func (c CategoryScores) Sum() int {
	return c.ContentQuality + c.SEOOptimization + c.EEATSignals +
		c.TechnicalElements + c.AICitationReadiness
}

// MaxFor returns the documented cap for a category key, 0 for unknown keys.
func MaxFor(key string) int {
	switch key {
	case "content_quality":
		return MaxContentQuality
	case "seo_optimization":
		return MaxSEOOptimization
	case "eeat_signals":
		return MaxEEATSignals
	case "technical_elements":
		return MaxTechnicalElements
	case "ai_citation_readiness":
		return MaxAICitationReadiness
	}
	return 0
}

// CategoryKeys lists the category keys in display order.
var CategoryKeys = []string{
	"content_quality",
	"seo_optimization",
	"eeat_signals",
	"technical_elements",
	"ai_citation_readiness",
}

// CategoryLabels maps category keys to human-readable names.
var CategoryLabels = map[string]string{
	"content_quality":       "Content Quality",
	"seo_optimization":      "SEO Optimization",
	"eeat_signals":          "E-E-A-T Signals",
	"technical_elements":    "Technical Elements",
	"ai_citation_readiness": "AI Citation Readiness",
}

// CategoryDetail is a per-category breakdown of sub-metric points.
type CategoryDetail struct {
	Score     int            `json:"score" yaml:"score"`
	Max       int            `json:"max" yaml:"max"`
	Breakdown map[string]int `json:"breakdown" yaml:"breakdown"`
}

// ScoreReport is the scoring engine's output: total, rating band, the five
// category scores, per-category breakdowns, and the severity-sorted issues.
type ScoreReport struct {
	Total           int                       `json:"total" yaml:"total"`
	Rating          string                    `json:"rating" yaml:"rating"`
	Categories      CategoryScores            `json:"categories" yaml:"categories"`
	CategoryDetails map[string]CategoryDetail `json:"category_details" yaml:"category_details"`
	Issues          []Issue                   `json:"issues" yaml:"issues"`
	ContentType     string                    `json:"content_type" yaml:"content_type"`
}
