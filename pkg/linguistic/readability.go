// Package linguistic contains the extractors that operate on the plain-text
// view of a document: readability, sentence statistics, passive voice,
// transition density, AI trigger words and phrases, and language detection.
package linguistic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/num"
	"github.com/dtnitsch/blog-analyzer/pkg/plaintext"
)

// ReadabilityProvider computes readability metrics for plain text. The
// Estimated method is the capability flag downstream consumers use to
// discount accuracy; it is a property of the provider, not of any one result.
type ReadabilityProvider interface {
	Name() string
	Estimated() bool
	Analyze(text string) *models.ReadabilityInfo
}

// SelectReadability picks the provider once at startup. The estimator is the
// degraded path kept for environments where syllable counting is unwanted.
func SelectReadability(fast bool) ReadabilityProvider {
	if fast {
		return &EstimateProvider{}
	}
	return &SyllableProvider{}
}

// SyllableProvider computes Flesch Reading Ease, Flesch-Kincaid Grade, and
// Gunning Fog from vowel-group syllable counts.
type SyllableProvider struct{}

func (p *SyllableProvider) Name() string    { return "syllable" }
func (p *SyllableProvider) Estimated() bool { return false }

func (p *SyllableProvider) Analyze(text string) *models.ReadabilityInfo {
	words := strings.Fields(text)
	wordCount := len(words)
	sentenceCount := len(plaintext.Sentences(text))
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	syllables := 0
	complexWords := 0
	for _, w := range words {
		s := countSyllables(w)
		syllables += s
		if s >= 3 {
			complexWords++
		}
	}

	wc := float64(wordCount)
	if wc == 0 {
		wc = 1
	}
	avgSentenceLen := float64(wordCount) / float64(sentenceCount)
	syllablesPerWord := float64(syllables) / wc

	fre := 206.835 - 1.015*avgSentenceLen - 84.6*syllablesPerWord
	if fre < 0 {
		fre = 0
	}
	fkg := 0.39*avgSentenceLen + 11.8*syllablesPerWord - 15.59
	fog := 0.4 * (avgSentenceLen + 100*float64(complexWords)/wc)

	// 14.69ms per character, the convention for mixed technical prose.
	readingSeconds := float64(utf8.RuneCountInString(text)) * 14.69 / 1000

	return &models.ReadabilityInfo{
		FleschReadingEase:  num.Round1(fre),
		FleschKincaidGrade: num.Round1(fkg),
		GunningFog:         num.Round1(fog),
		ReadingTimeMinutes: num.Round1(readingSeconds / 60),
		AvgSentenceLength:  num.Round1(avgSentenceLen),
		Estimated:          false,
	}
}

// countSyllables counts vowel groups in a word, with a minimum of one and a
// silent trailing 'e' discounted.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}
	groups := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// EstimateProvider derives Flesch Reading Ease from average sentence length
// and an average-word-length syllable proxy, and reading time from the
// 238 words-per-minute convention. Cheap and deterministic.
type EstimateProvider struct{}

func (p *EstimateProvider) Name() string    { return "estimate" }
func (p *EstimateProvider) Estimated() bool { return true }

func (p *EstimateProvider) Analyze(text string) *models.ReadabilityInfo {
	words := strings.Fields(text)
	wordCount := len(words)
	sentenceCount := len(plaintext.Sentences(text))
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	avgSentenceLen := float64(wordCount) / float64(sentenceCount)

	wc := wordCount
	if wc == 0 {
		wc = 1
	}
	avgWordLen := float64(utf8.RuneCountInString(text)) / float64(wc)
	estSyllableRatio := avgWordLen / 4.7

	fre := 206.835 - 1.015*avgSentenceLen - 84.6*estSyllableRatio
	if fre < 0 {
		fre = 0
	}

	return &models.ReadabilityInfo{
		FleschReadingEase:  num.Round1(fre),
		ReadingTimeMinutes: num.Round1(float64(wordCount) / 238),
		AvgSentenceLength:  num.Round1(avgSentenceLen),
		Estimated:          true,
	}
}
