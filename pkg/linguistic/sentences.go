package linguistic

import (
	"math"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/num"
	"github.com/dtnitsch/blog-analyzer/pkg/plaintext"
)

// AnalyzeSentences computes sentence-length statistics and burstiness, the
// population standard deviation of sentence lengths over their mean.
func AnalyzeSentences(text string) *models.SentenceInfo {
	var lengths []int
	for _, s := range plaintext.ContentSentences(text) {
		lengths = append(lengths, len(strings.Fields(s)))
	}
	info := &models.SentenceInfo{Count: len(lengths)}
	if len(lengths) == 0 {
		return info
	}

	sum := 0
	for _, l := range lengths {
		sum += l
		if l > info.MaxLength {
			info.MaxLength = l
		}
		if l > 40 {
			info.VeryLongCount++
		}
		if l > 20 {
			info.Over20Count++
		}
		if l > 25 {
			info.Over25Count++
		}
	}
	mean := float64(sum) / float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		d := float64(l) - mean
		variance += d * d
	}
	stdDev := math.Sqrt(variance / float64(len(lengths)))

	info.AvgLength = num.Round1(mean)
	info.StdDev = num.Round1(stdDev)
	if mean > 0 {
		info.Burstiness = num.Round2(stdDev / mean)
	}
	info.Over20Pct = num.Round1(float64(info.Over20Count) / float64(len(lengths)) * 100)
	return info
}
