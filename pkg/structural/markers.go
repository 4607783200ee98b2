package structural

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/markup"
	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

var (
	originalDataRe = regexp.MustCompile(`(?i)\[ORIGINAL DATA\]`)
	personalExpRe  = regexp.MustCompile(`(?i)\[PERSONAL EXPERIENCE\]`)

	firstPersonRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bI\s+(?:found|discovered|tested|built|created|noticed|learned|experienced)\b`),
		regexp.MustCompile(`(?i)\b(?:we|our team)\s+(?:tested|built|ran|analyzed|measured|conducted|found|discovered)\b`),
		regexp.MustCompile(`(?i)\bin (?:my|our) experience\b`),
		regexp.MustCompile(`(?i)\bfrom (?:my|our) (?:testing|research|analysis|work)\b`),
	}

	examplePatternRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bfor example\b`),
		regexp.MustCompile(`(?i)\bfor instance\b`),
		regexp.MustCompile(`(?i)\bsuch as\b`),
		regexp.MustCompile(`(?i)\bconsider\b`),
		regexp.MustCompile(`(?i)\blet's say\b`),
		regexp.MustCompile(`(?i)\bimagine\b`),
		regexp.MustCompile(`(?i)\bhere's (?:an|a) example\b`),
	}

	bodyQuestionRe = regexp.MustCompile(`[^#]\?`)

	aboutRefRe     = regexp.MustCompile(`(?i)\babout\s+(?:us|the author|me)\b`)
	aboutPathRe    = regexp.MustCompile(`/about`)
	contactRefRe   = regexp.MustCompile(`(?i)\bcontact\b`)
	contactPathRe  = regexp.MustCompile(`/contact`)
	editorialRefRe = regexp.MustCompile(`(?i)\b(?:editorial|reviewed by|fact.?check|editor)\b`)

	promoRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)at \w+,\s+we`),
		regexp.MustCompile(`(?i)our (?:team|company|product|platform|solution)`),
		regexp.MustCompile(`(?i)we (?:offer|provide|deliver|help|specialize)`),
	}

	lazyLoadingRe = regexp.MustCompile(`loading=["']lazy["']`)
	responsiveRe  = regexp.MustCompile(`(?i)srcset|<picture`)
	schemaVocabRe = regexp.MustCompile(`(?i)json-ld|structured.?data|schema\.org`)
)

// AnalyzeOriginality detects originality tags and first-person experience
// language in the body.
func AnalyzeOriginality(body string) *models.OriginalityInfo {
	info := &models.OriginalityInfo{Markers: []string{}}
	if originalDataRe.MatchString(body) {
		info.Markers = append(info.Markers, "original_data_tag")
	}
	if personalExpRe.MatchString(body) {
		info.Markers = append(info.Markers, "personal_experience_tag")
	}
	for _, re := range firstPersonRes {
		info.FirstPersonCount += len(re.FindAllString(body, -1))
	}
	if info.FirstPersonCount > 0 {
		info.Markers = append(info.Markers, "first_person_experience")
	}
	info.MarkerCount = len(info.Markers)
	return info
}

// AnalyzeEngagement counts questions and example markers in body prose,
// excluding heading lines.
func AnalyzeEngagement(body string) *models.EngagementInfo {
	var prose []string
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "#") {
			prose = append(prose, line)
		}
	}
	bodyText := strings.Join(prose, "\n")

	info := &models.EngagementInfo{
		QuestionsInText: len(bodyQuestionRe.FindAllString(bodyText, -1)),
	}
	for _, re := range examplePatternRes {
		info.ExampleCount += len(re.FindAllString(body, -1))
	}
	return info
}

// AnalyzeTrust detects about/contact/editorial references in the body.
func AnalyzeTrust(body string) *models.TrustInfo {
	return &models.TrustInfo{
		AboutReference:     aboutRefRe.MatchString(body) || aboutPathRe.MatchString(body),
		ContactReference:   contactRefRe.MatchString(body) || contactPathRe.MatchString(body),
		EditorialReference: editorialRefRe.MatchString(body),
	}
}

// AnalyzeSelfPromotion counts promotional phrasing; more than one occurrence
// exceeds the limit.
func AnalyzeSelfPromotion(body string) *models.SelfPromotionInfo {
	count := 0
	for _, re := range promoRes {
		count += len(re.FindAllString(body, -1))
	}
	return &models.SelfPromotionInfo{Patterns: count, ExceedsLimit: count > 1}
}

// AnalyzeFreshness reports date metadata from the frontmatter.
func AnalyzeFreshness(fm map[string]string) *models.FreshnessInfo {
	_, hasDate := fm["date"]
	_, hasCamel := fm["lastUpdated"]
	_, hasSnake := fm["last_updated"]
	lastUpdated := fm["lastUpdated"]
	if lastUpdated == "" {
		lastUpdated = fm["last_updated"]
	}
	return &models.FreshnessInfo{
		HasDate:        hasDate,
		HasLastUpdated: hasCamel || hasSnake,
		Date:           fm["date"],
		LastUpdated:    lastUpdated,
	}
}

// AnalyzeSocialMeta counts og:/twitter: tags in the raw content and checks
// frontmatter for social image fields. A share image counts whether it is
// declared in frontmatter or as an og:image/twitter:image tag.
func AnalyzeSocialMeta(raw string, fm map[string]string, parser markup.Parser) *models.SocialMetaInfo {
	info := &models.SocialMetaInfo{
		OGTagsFound:               parser.MetaTagCount(raw),
		SocialFieldsInFrontmatter: []string{},
	}
	for _, field := range vocab.SocialImageFields {
		if _, ok := fm[field]; ok {
			info.SocialFieldsInFrontmatter = append(info.SocialFieldsInFrontmatter, field)
		}
	}
	info.HasSocialImage = len(info.SocialFieldsInFrontmatter) > 0 || parser.HasMetaImage(raw)
	return info
}

// AnalyzeTechnicalSignals scans the raw content for performance hints used
// by the technical scoring category.
func AnalyzeTechnicalSignals(raw string) *models.TechnicalSignals {
	return &models.TechnicalSignals{
		LazyLoading:         lazyLoadingRe.MatchString(raw),
		ResponsiveMarkup:    responsiveRe.MatchString(raw),
		MentionsSchemaVocab: schemaVocabRe.MatchString(raw),
	}
}
