// Package scoring turns an extracted feature set into the 100-point quality
// report. Score is a pure function: it reads the feature blocks on the
// result, never the document text, so identical features always produce an
// identical report.
package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/classify"
	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

// Slugs embedding long numeric runs usually mean auto-generated IDs.
var longNumericRe = regexp.MustCompile(`\d{8,}`)

// Score computes the five category sub-scores, total, rating band, and the
// severity-sorted issue list for one analyzed document. Every sub-score is
// clamped to its own maximum before summation and each category is re-clamped
// to its cap.
func Score(res *models.AnalysisResult, tables vocab.Tables) *models.ScoreReport {
	s := &scorer{res: res, tables: tables}
	report := &models.ScoreReport{
		CategoryDetails: make(map[string]models.CategoryDetail, 5),
		ContentType:     classify.ContentType(res.Frontmatter, tables),
	}

	report.Categories.ContentQuality = s.contentQuality(report)
	report.Categories.SEOOptimization = s.seoOptimization(report)
	report.Categories.EEATSignals = s.eeatSignals(report)
	report.Categories.TechnicalElements = s.technicalElements(report)
	report.Categories.AICitationReadiness = s.aiCitationReadiness(report)

	report.Total = report.Categories.Sum()
	report.Rating = models.RatingFor(report.Total)

	// Stable so equal-severity issues keep emission order across runs.
	sort.SliceStable(s.issues, func(i, j int) bool {
		return s.issues[i].Severity.Rank() < s.issues[j].Severity.Rank()
	})
	report.Issues = s.issues
	return report
}

type scorer struct {
	res    *models.AnalysisResult
	tables vocab.Tables
	issues []models.Issue
}

func (s *scorer) flag(cat models.Category, sev models.Severity, format string, args ...any) {
	s.issues = append(s.issues, models.Issue{
		Category: cat,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	return v
}

func (s *scorer) contentQuality(report *models.ScoreReport) int {
	cq := 0
	breakdown := make(map[string]int)
	paras := s.res.Paragraphs
	headings := s.res.Headings

	// Depth / comprehensiveness: 7 pts against the content-type benchmark.
	wordCount := paras.TotalWordCount
	bench := s.tables.BenchmarkFor(report.ContentType)
	var depth int
	switch {
	case wordCount >= bench.MinWords && wordCount <= bench.MaxWords:
		depth = 7
	case float64(wordCount) >= float64(bench.MinWords)*0.7:
		depth = 5
	case float64(wordCount) >= float64(bench.MinWords)*0.5:
		depth = 3
	default:
		depth = 1
		s.flag(models.CategoryContent, models.SeverityHigh,
			"Word count (%d) below benchmark (%d-%d) for %s",
			wordCount, bench.MinWords, bench.MaxWords, report.ContentType)
	}
	if float64(wordCount) > float64(bench.MaxWords)*1.5 {
		depth -= 2
		if depth < 1 {
			depth = 1
		}
		s.flag(models.CategoryContent, models.SeverityMedium,
			"Word count (%d) excessively long for %s", wordCount, report.ContentType)
	}
	cq += depth
	breakdown["depth"] = depth

	// Readability: 7 pts, Flesch 60-70 ideal.
	fre := s.res.Readability.FleschReadingEase
	var read int
	switch {
	case fre >= 60 && fre <= 70:
		read = 7
	case fre >= 55 && fre <= 75:
		read = 5
	case fre >= 45 && fre <= 80:
		read = 3
	default:
		read = 1
		s.flag(models.CategoryContent, models.SeverityMedium,
			"Flesch reading ease (%g) outside acceptable range (55-75)", fre)
	}
	cq += read
	breakdown["readability"] = read

	// Originality markers: 5 pts.
	orig := s.res.Originality
	fp := orig.FirstPersonCount
	if fp > 3 {
		fp = 3
	}
	origScore := clamp(orig.MarkerCount*2+fp, 5)
	if origScore == 0 {
		s.flag(models.CategoryContent, models.SeverityMedium,
			"No originality markers found — add [ORIGINAL DATA], personal experience, or first-person language")
	}
	cq += origScore
	breakdown["originality"] = origScore

	// Logical structure: 4 pts.
	structScore := 0
	switch {
	case headings.H2Count >= 3:
		structScore += 2
	case headings.H2Count >= 1:
		structScore++
	default:
		s.flag(models.CategoryContent, models.SeverityHigh,
			"No H2 headings — add section headings for structure")
	}
	if headings.HierarchyClean {
		structScore++
	} else {
		s.flag(models.CategoryContent, models.SeverityMedium,
			"Heading hierarchy has skips (e.g., H2 to H4)")
	}
	if paras.TotalParagraphs >= 5 && paras.MaxWordCount < 200 {
		structScore++
	}
	cq += structScore
	breakdown["structure"] = structScore

	// Engagement elements: 4 pts.
	eng := s.res.Engagement
	engScore := 0
	switch {
	case eng.QuestionsInText >= 2:
		engScore += 2
	case eng.QuestionsInText >= 1:
		engScore++
	}
	switch {
	case eng.ExampleCount >= 2:
		engScore += 2
	case eng.ExampleCount >= 1:
		engScore++
	}
	engScore = clamp(engScore, 4)
	if engScore < 2 {
		s.flag(models.CategoryContent, models.SeverityLow,
			"Low engagement — add questions and examples in body text")
	}
	cq += engScore
	breakdown["engagement"] = engScore

	// Grammar / anti-pattern: 3 pts.
	sentences := s.res.Sentences
	passivePct := s.res.PassiveVoice.PassivePct
	transitionPct := s.res.Transitions.TransitionPct
	triggerPer1K := s.res.TriggerWords.PerThousand
	gram := 0
	if sentences.Burstiness >= 0.4 && passivePct <= 15 {
		gram++
	}
	if passivePct > 15 {
		s.flag(models.CategoryContent, models.SeverityHigh,
			"Passive voice at %g%% — target ≤10%%, max 15%%", passivePct)
	} else if passivePct > 10 {
		s.flag(models.CategoryContent, models.SeverityLow,
			"Passive voice at %g%% — ideal is ≤10%%", passivePct)
	}
	if sentences.VeryLongCount == 0 && triggerPer1K <= 8 {
		gram++
	}
	if sentences.VeryLongCount > 0 {
		s.flag(models.CategoryContent, models.SeverityLow,
			"%d sentences over 40 words — consider splitting", sentences.VeryLongCount)
	}
	if triggerPer1K > 8 {
		s.flag(models.CategoryContent, models.SeverityHigh,
			"AI trigger words: %g/1K — target ≤5, max 8", triggerPer1K)
	} else if triggerPer1K > 5 {
		s.flag(models.CategoryContent, models.SeverityMedium,
			"AI trigger words: %g/1K — target ≤5", triggerPer1K)
	}
	if sentences.Count > 0 && sentences.AvgLength >= 12 && sentences.AvgLength <= 25 &&
		transitionPct >= 15 && transitionPct <= 35 {
		gram++
	}
	if transitionPct < 15 {
		s.flag(models.CategoryContent, models.SeverityMedium,
			"Transition words at %g%% — target 20-30%%", transitionPct)
	} else if transitionPct > 35 {
		s.flag(models.CategoryContent, models.SeverityMedium,
			"Transition words at %g%% — reads formulaic, target 20-30%%", transitionPct)
	}
	gram = clamp(gram, 3)
	cq += gram
	breakdown["grammar_antipattern"] = gram

	// The vocabulary tables assume English; flag but do not penalize.
	if lang := s.res.Language; lang != nil && !lang.English && lang.Language != "unknown" {
		s.flag(models.CategoryContent, models.SeverityLow,
			"Document language detected as %s — vocabulary heuristics assume English", lang.Language)
	}

	cq = clamp(cq, models.MaxContentQuality)
	report.CategoryDetails["content_quality"] = models.CategoryDetail{
		Score: cq, Max: models.MaxContentQuality, Breakdown: breakdown,
	}
	return cq
}

func (s *scorer) seoOptimization(report *models.ScoreReport) int {
	seo := 0
	breakdown := make(map[string]int)
	fm := s.res.Frontmatter
	headings := s.res.Headings

	// Title tag: 4 pts, 40-60 chars ideal.
	title := fm["title"]
	titleLen := len(title)
	titleScore := 0
	switch {
	case titleLen >= 40 && titleLen <= 60:
		titleScore = 4
	case titleLen >= 30 && titleLen <= 70:
		titleScore = 2
	case title != "":
		titleScore = 1
	}
	if title == "" {
		s.flag(models.CategorySEO, models.SeverityHigh, "Missing title in frontmatter")
	} else if titleLen < 40 || titleLen > 60 {
		s.flag(models.CategorySEO, models.SeverityMedium,
			"Title length (%d chars) outside ideal 40-60 range", titleLen)
	}
	seo += titleScore
	breakdown["title"] = titleScore

	// Heading hierarchy: 5 pts.
	headingScore := 0
	if headings.H1Count == 1 {
		headingScore++
	} else if headings.H1Count == 0 && title != "" {
		// Frontmatter title serves as the H1.
		headingScore++
	}
	switch {
	case headings.H2Count >= 3:
		headingScore += 2
	case headings.H2Count >= 1:
		headingScore++
	}
	if headings.HierarchyClean {
		headingScore++
	}
	if headings.H3Count >= 1 {
		headingScore++
	}
	headingScore = clamp(headingScore, 5)
	seo += headingScore
	breakdown["headings"] = headingScore

	// Keyword placement: 4 pts.
	kw := s.res.Keyword
	keywordScore := 0
	if kw != nil && kw.Keyword != "" {
		if kw.InTitle {
			keywordScore += 2
		}
		if kw.InFirstParagraph {
			keywordScore++
		}
		if kw.InHeading {
			keywordScore++
		}
	} else {
		// No keyword defined; give partial credit.
		keywordScore = 2
	}
	keywordScore = clamp(keywordScore, 4)
	seo += keywordScore
	breakdown["keyword_placement"] = keywordScore

	// Internal linking: 4 pts, 3-10 contextual links ideal.
	links := s.res.Links
	intScore := 0
	switch {
	case links.InternalCount >= 3 && links.InternalCount <= 10:
		intScore = 4
	case links.InternalCount >= 1:
		intScore = 2
	default:
		s.flag(models.CategorySEO, models.SeverityHigh,
			"No internal links — add 3-10 contextual internal links")
	}
	if len(links.BadAnchorTexts) > 0 {
		intScore--
		if intScore < 0 {
			intScore = 0
		}
		s.flag(models.CategorySEO, models.SeverityLow,
			"Bad anchor texts found: %s", strings.Join(links.BadAnchorTexts, ", "))
	}
	seo += intScore
	breakdown["internal_linking"] = intScore

	// Meta description: 3 pts, 150-160 chars ideal, bonus for a statistic.
	desc := fm["description"]
	if desc == "" {
		desc = fm["meta_description"]
	}
	descLen := len(desc)
	metaScore := 0
	switch {
	case descLen >= 150 && descLen <= 160:
		metaScore = 3
	case descLen >= 120 && descLen <= 170:
		metaScore = 2
	case desc != "":
		metaScore = 1
	default:
		s.flag(models.CategorySEO, models.SeverityHigh, "Missing meta description in frontmatter")
	}
	if desc != "" && strings.ContainsAny(desc, "0123456789") {
		metaScore = clamp(metaScore+1, 3)
	}
	seo += metaScore
	breakdown["meta_description"] = metaScore

	// External linking: 2 pts, tier-aware.
	extScore := 0
	if links.ExternalCount >= 2 {
		extScore++
	}
	if links.ExternalTierCounts[1] >= 1 || links.ExternalTierCounts[2] >= 1 {
		extScore++
	}
	seo += extScore
	breakdown["external_linking"] = extScore

	// URL structure: 3 pts from the frontmatter slug.
	slug := fm["slug"]
	if slug == "" {
		slug = fm["url"]
	}
	urlScore := 0
	if slug != "" {
		if len(slug) <= 60 {
			urlScore++
		}
		if strings.Contains(slug, "-") && !strings.Contains(slug, " ") {
			urlScore++
		}
		if !longNumericRe.MatchString(slug) {
			urlScore++
		}
	} else {
		// Partial credit; many static site generators auto-generate the slug.
		urlScore = 1
	}
	urlScore = clamp(urlScore, 3)
	seo += urlScore
	breakdown["url_structure"] = urlScore

	seo = clamp(seo, models.MaxSEOOptimization)
	report.CategoryDetails["seo_optimization"] = models.CategoryDetail{
		Score: seo, Max: models.MaxSEOOptimization, Breakdown: breakdown,
	}
	return seo
}

func (s *scorer) eeatSignals(report *models.ScoreReport) int {
	eeat := 0
	breakdown := make(map[string]int)
	fm := s.res.Frontmatter

	// Author attribution: 4 pts, generic names get a token point.
	author := fm["author"]
	if author == "" {
		author = fm["authors"]
	}
	authorScore := 0
	_, generic := vocab.GenericAuthors[strings.ToLower(author)]
	switch {
	case author != "" && !generic:
		authorScore = 4
	case author != "":
		authorScore = 1
		s.flag(models.CategoryEEAT, models.SeverityMedium,
			"Generic author name %q — use a real person name", author)
	default:
		s.flag(models.CategoryEEAT, models.SeverityHigh, "No author attribution in frontmatter")
	}
	eeat += authorScore
	breakdown["author"] = authorScore

	// Source citations: 4 pts, tier-aware.
	cit := s.res.Citations
	citScore := 0
	totalCitations := cit.InlineCitations + cit.ParenCitations
	switch {
	case totalCitations >= 5:
		citScore += 2
	case totalCitations >= 2:
		citScore++
	}
	if cit.TierCounts[1] >= 1 {
		citScore += 2
	} else if cit.TierCounts[2] >= 1 {
		citScore++
	}
	citScore = clamp(citScore, 4)
	if totalCitations == 0 {
		s.flag(models.CategoryEEAT, models.SeverityHigh,
			"No source citations — add inline citations to credible sources")
	}
	eeat += citScore
	breakdown["citations"] = citScore

	// Trust indicators: 4 pts.
	trust := s.res.Trust
	trustScore := 0
	if trust.AboutReference {
		trustScore += 2
	}
	if trust.ContactReference {
		trustScore++
	}
	if trust.EditorialReference {
		trustScore++
	}
	trustScore = clamp(trustScore, 4)
	eeat += trustScore
	breakdown["trust"] = trustScore

	// Experience signals: 3 pts.
	orig := s.res.Originality
	expScore := 0
	switch {
	case orig.FirstPersonCount >= 3:
		expScore = 3
	case orig.FirstPersonCount >= 1:
		expScore = 2
	case hasMarker(orig.Markers, "first_person_experience"):
		expScore = 1
	}
	if expScore == 0 {
		s.flag(models.CategoryEEAT, models.SeverityMedium,
			`No experience signals — add "we tested", "in our experience" language`)
	}
	eeat += expScore
	breakdown["experience"] = expScore

	eeat = clamp(eeat, models.MaxEEATSignals)
	report.CategoryDetails["eeat_signals"] = models.CategoryDetail{
		Score: eeat, Max: models.MaxEEATSignals, Breakdown: breakdown,
	}
	return eeat
}

func (s *scorer) technicalElements(report *models.ScoreReport) int {
	tech := 0
	breakdown := make(map[string]int)
	images := s.res.Images
	paras := s.res.Paragraphs
	signals := s.res.Technical

	// Schema markup: 4 pts.
	schema := s.res.Schema
	schemaScore := 0
	if schema.HasBlogPosting {
		schemaScore += 2
	}
	if schema.HasFAQPage {
		schemaScore++
	}
	if schema.HasPerson {
		schemaScore++
	}
	if schema.SchemaCount == 0 && signals.MentionsSchemaVocab {
		schemaScore = 1
	}
	schemaScore = clamp(schemaScore, 4)
	if schemaScore == 0 {
		s.flag(models.CategoryTechnical, models.SeverityMedium,
			"No JSON-LD schema markup detected — add BlogPosting schema")
	}
	tech += schemaScore
	breakdown["schema"] = schemaScore

	// Image optimization: 3 pts.
	imgScore := 0
	if images.Count > 0 {
		altRatio := float64(images.WithAltText) / float64(images.Count)
		if altRatio == 1.0 {
			imgScore += 2
		} else if altRatio >= 0.8 {
			imgScore++
		} else {
			s.flag(models.CategoryTechnical, models.SeverityMedium,
				"%d images missing alt text", images.WithoutAltText)
		}
		if images.ModernFormatCount > 0 {
			imgScore++
		}
	} else {
		// No images is acceptable for some content types.
		imgScore = 1
	}
	imgScore = clamp(imgScore, 3)
	tech += imgScore
	breakdown["images"] = imgScore

	// Structured data: 2 pts.
	sd := s.res.StructuredData
	sdataScore := 0
	if sd.TableCount >= 1 {
		sdataScore++
	}
	if sd.UnorderedListItems+sd.OrderedListItems >= 3 {
		sdataScore++
	}
	tech += sdataScore
	breakdown["structured_data"] = sdataScore

	// Page speed signals: 2 pts.
	speedScore := 0
	if signals.LazyLoading {
		speedScore++
	}
	if images.ModernFormatCount > 0 {
		speedScore++
	} else if images.Count == 0 {
		speedScore = 1
	}
	speedScore = clamp(speedScore, 2)
	tech += speedScore
	breakdown["page_speed"] = speedScore

	// Mobile-friendly: 2 pts.
	mobileScore := 0
	if paras.MaxWordCount <= 100 {
		mobileScore++
	}
	if signals.ResponsiveMarkup {
		mobileScore++
	} else if paras.TotalParagraphs > 0 {
		mobileScore++
	}
	mobileScore = clamp(mobileScore, 2)
	tech += mobileScore
	breakdown["mobile"] = mobileScore

	// OG/social meta tags: 2 pts.
	social := s.res.SocialMeta
	socialScore := 0
	if social.OGTagsFound >= 2 {
		socialScore++
	}
	if social.HasSocialImage {
		socialScore++
	}
	tech += socialScore
	breakdown["social_meta"] = socialScore

	tech = clamp(tech, models.MaxTechnicalElements)
	report.CategoryDetails["technical_elements"] = models.CategoryDetail{
		Score: tech, Max: models.MaxTechnicalElements, Breakdown: breakdown,
	}
	return tech
}

func (s *scorer) aiCitationReadiness(report *models.ScoreReport) int {
	ai := 0
	breakdown := make(map[string]int)
	ready := s.res.AICitation

	// Passage citability: 4 pts for 120-180 word sections.
	var citeScore int
	switch {
	case ready.CitablePassages >= 5:
		citeScore = 4
	case ready.CitablePassages >= 3:
		citeScore = 3
	case ready.CitablePassages >= 1:
		citeScore = 2
	default:
		s.flag(models.CategoryAICitation, models.SeverityMedium,
			"No passages in the 120-180 word sweet spot for AI citations")
	}
	ai += citeScore
	breakdown["citability"] = citeScore

	// Q&A sections: 3 pts.
	var qaScore int
	switch {
	case ready.QAPairs >= 5 || s.res.FAQ.HasFAQSection:
		qaScore = 3
	case ready.QAPairs >= 3:
		qaScore = 2
	case ready.QAPairs >= 1:
		qaScore = 1
	}
	ai += qaScore
	breakdown["qa_sections"] = qaScore

	// Entity clarity: 3 pts.
	var entScore int
	switch {
	case ready.EntityDefinitions >= 3:
		entScore = 3
	case ready.EntityDefinitions >= 1:
		entScore = 2
	default:
		s.flag(models.CategoryAICitation, models.SeverityLow,
			"No entity definitions found — use **term** is/are patterns")
	}
	ai += entScore
	breakdown["entity_clarity"] = entScore

	// Content structure for extraction: 3 pts.
	sd := s.res.StructuredData
	extScore := 0
	if ready.HasTLDR {
		extScore++
	}
	if ready.TableCount >= 3 {
		extScore++
	} else if ready.ListCount >= 5 {
		extScore++
	}
	if sd.TableCount >= 1 && sd.UnorderedListItems >= 3 {
		extScore++
	}
	extScore = clamp(extScore, 3)
	ai += extScore
	breakdown["extraction"] = extScore

	// AI crawler accessibility: 2 pts unless a restriction is present.
	crawlScore := 2
	if ready.HasRobotsRestriction {
		crawlScore = 0
		s.flag(models.CategoryAICitation, models.SeverityMedium,
			"Robots/noai restriction detected — may block AI crawlers")
	}
	ai += crawlScore
	breakdown["crawler_access"] = crawlScore

	ai = clamp(ai, models.MaxAICitationReadiness)
	report.CategoryDetails["ai_citation_readiness"] = models.CategoryDetail{
		Score: ai, Max: models.MaxAICitationReadiness, Breakdown: breakdown,
	}
	return ai
}

func hasMarker(markers []string, name string) bool {
	for _, m := range markers {
		if m == name {
			return true
		}
	}
	return false
}
