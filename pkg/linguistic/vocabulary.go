package linguistic

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/num"
	"github.com/dtnitsch/blog-analyzer/pkg/plaintext"
	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

// triggerWordRes is compiled once; word-boundary match per trigger word.
var triggerWordRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(vocab.AITriggerWords))
	for i, w := range vocab.AITriggerWords {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return res
}()

// AnalyzeTransitions reports the percentage of sentences containing at least
// one transition term. A sentence with several terms still counts once.
func AnalyzeTransitions(text string) *models.TransitionInfo {
	sentences := plaintext.ContentSentences(text)
	info := &models.TransitionInfo{TotalSentences: len(sentences)}
	if len(sentences) == 0 {
		return info
	}
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, tw := range vocab.TransitionWords {
			if strings.Contains(lower, tw) {
				info.TransitionCount++
				break
			}
		}
	}
	info.TransitionPct = num.Round1(float64(info.TransitionCount) / float64(len(sentences)) * 100)
	return info
}

// AnalyzeTriggerWords counts AI trigger words and reports density per 1,000
// words.
func AnalyzeTriggerWords(text string) *models.TriggerWordInfo {
	info := &models.TriggerWordInfo{Found: []models.WordCount{}}
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return info
	}
	lower := strings.ToLower(text)
	for i, re := range triggerWordRes {
		if n := len(re.FindAllString(lower, -1)); n > 0 {
			info.Found = append(info.Found, models.WordCount{Word: vocab.AITriggerWords[i], Count: n})
			info.TriggerCount += n
		}
	}
	info.PerThousand = num.Round1(float64(info.TriggerCount) / float64(wordCount) * 1000)
	return info
}

// AnalyzeAISignals combines phrase detection, vocabulary diversity, and
// burstiness into the machine-generation heuristic. It is a coarse signal,
// never authoritative on its own.
func AnalyzeAISignals(text string, sentences *models.SentenceInfo) *models.AISignals {
	info := &models.AISignals{
		PhrasesFound: []models.PhraseCount{},
		Burstiness:   sentences.Burstiness,
	}
	lower := strings.ToLower(text)
	for _, phrase := range vocab.AIPhrases {
		if n := strings.Count(lower, phrase); n > 0 {
			info.PhrasesFound = append(info.PhrasesFound, models.PhraseCount{Phrase: phrase, Count: n})
			info.PhraseCount += n
		}
	}

	words := strings.Fields(text)
	unique := map[string]struct{}{}
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
	}
	ttr := 0.0
	if len(words) > 0 {
		ttr = float64(len(unique)) / float64(len(words))
	}
	info.VocabularyDiversityTTR = num.Round3(ttr)
	info.LikelyAI = sentences.Burstiness < 0.3 && ttr < 0.4
	return info
}
