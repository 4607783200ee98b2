package linguistic

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/num"
)

// Detector wraps the lingua language detector. Building the underlying
// models is expensive, so one Detector is created at startup and shared.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over the common European languages; a wider
// set costs memory without helping blog content.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English, lingua.Spanish, lingua.French, lingua.German,
				lingua.Italian, lingua.Portuguese, lingua.Dutch,
			).
			Build(),
	}
}

// Detect reports the most likely language of the text. Short or empty text
// yields an unknown result rather than a guess.
func (d *Detector) Detect(text string) *models.LanguageInfo {
	if len(strings.Fields(text)) < 10 {
		return &models.LanguageInfo{Language: "unknown"}
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return &models.LanguageInfo{Language: "unknown"}
	}
	confidence := d.detector.ComputeLanguageConfidence(text, lang)
	return &models.LanguageInfo{
		Language:   strings.ToLower(lang.String()),
		Confidence: num.Round2(confidence),
		English:    lang == lingua.English,
	}
}
