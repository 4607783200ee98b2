package linguistic

import (
	"regexp"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/num"
	"github.com/dtnitsch/blog-analyzer/pkg/plaintext"
)

// passiveRe flags auxiliary + optional adverb + participle constructions.
// The participle list is fixed; passives built on other participles are
// missed, which is accepted for a heuristic.
var passiveRe = regexp.MustCompile(
	`(?i)\b(was|were|been|being|is|are|am|get|got|gets|getting)\s+` +
		`(\w+ly\s+)?` +
		`(\w+ed|written|spoken|taken|given|made|done|seen|known|shown|built|sent|found|held|told|left|run|set|kept|brought|thought|put)\b`)

// AnalyzePassiveVoice estimates the share of sentences in passive voice.
func AnalyzePassiveVoice(text string) *models.PassiveVoiceInfo {
	sentences := plaintext.ContentSentences(text)
	info := &models.PassiveVoiceInfo{TotalSentences: len(sentences)}
	if len(sentences) == 0 {
		return info
	}
	for _, s := range sentences {
		if passiveRe.MatchString(s) {
			info.PassiveCount++
		}
	}
	info.PassivePct = num.Round1(float64(info.PassiveCount) / float64(len(sentences)) * 100)
	return info
}
