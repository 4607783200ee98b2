// Package render turns analysis records into the supported output formats:
// JSON, YAML, a markdown report, a compact table, a prioritized fix list,
// and a single-category breakdown. Renderers only read the record.
package render

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/blog-analyzer/models"
)

// JSON encodes any result value as indented JSON.
func JSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return string(out), nil
}

// YAML encodes any result value as YAML.
func YAML(v any) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding YAML: %w", err)
	}
	return string(out), nil
}

// Markdown renders the human-readable quality report.
func Markdown(res *models.AnalysisResult) string {
	if res.Failed() {
		return fmt.Sprintf("## Error\n\n%s", res.Error)
	}

	score := res.Score
	var lines []string
	filename := filepath.Base(res.File)

	lines = append(lines,
		fmt.Sprintf("## Blog Quality Report: %s", filename),
		"",
		fmt.Sprintf("### Overall Score: %d/100 — %s", score.Total, score.Rating),
		"",
		"| Category | Score | Max |",
		"|----------|------:|----:|",
	)
	cats := map[string]int{
		"content_quality":       score.Categories.ContentQuality,
		"seo_optimization":      score.Categories.SEOOptimization,
		"eeat_signals":          score.Categories.EEATSignals,
		"technical_elements":    score.Categories.TechnicalElements,
		"ai_citation_readiness": score.Categories.AICitationReadiness,
	}
	for _, key := range models.CategoryKeys {
		lines = append(lines, fmt.Sprintf("| %s | %d | %d |",
			models.CategoryLabels[key], cats[key], models.MaxFor(key)))
	}
	lines = append(lines, "")

	ai := res.AISignals
	burstLabel := "Flagged"
	switch {
	case ai.Burstiness >= 0.5:
		burstLabel = "Natural"
	case ai.Burstiness >= 0.3:
		burstLabel = "Borderline"
	}
	lines = append(lines,
		"### AI Content Detection",
		fmt.Sprintf("- Burstiness: %g (%s)", ai.Burstiness, burstLabel),
		fmt.Sprintf("- AI phrases: %d found", ai.PhraseCount),
		fmt.Sprintf("- Vocabulary diversity: %g", ai.VocabularyDiversityTTR),
	)
	if ai.LikelyAI {
		lines = append(lines, "- **WARNING: Content shows AI-generation signals**")
	}
	lines = append(lines, "")

	read := res.Readability
	lines = append(lines,
		"### Readability",
		fmt.Sprintf("- Flesch Reading Ease: %g (target: 60-70)", read.FleschReadingEase),
	)
	if read.FleschKincaidGrade != 0 {
		lines = append(lines, fmt.Sprintf("- Flesch-Kincaid Grade: %g (target: 7-8)", read.FleschKincaidGrade))
	}
	lines = append(lines,
		fmt.Sprintf("- Reading time: %g minutes", read.ReadingTimeMinutes),
		fmt.Sprintf("- Passive voice: %g%% (target: ≤10%%)", res.PassiveVoice.PassivePct),
		fmt.Sprintf("- Transition words: %g%% (target: 20-30%%)", res.Transitions.TransitionPct),
		fmt.Sprintf("- AI trigger words: %g/1K (target: ≤5)", res.TriggerWords.PerThousand),
		fmt.Sprintf("- Sentences over 20 words: %g%% (target: ≤25%%)", res.Sentences.Over20Pct),
	)
	if len(res.TriggerWords.Found) > 0 {
		found := res.TriggerWords.Found
		if len(found) > 5 {
			found = found[:5]
		}
		parts := make([]string, 0, len(found))
		for _, w := range found {
			parts = append(parts, fmt.Sprintf("%s(%d)", w.Word, w.Count))
		}
		lines = append(lines, "- Trigger words found: "+strings.Join(parts, ", "))
	}
	if read.Estimated {
		lines = append(lines, "- *(Estimated — rerun without --fast for accurate metrics)*")
	}
	lines = append(lines, "")

	lines = append(lines, "### Issues")
	if len(score.Issues) > 0 {
		for _, issue := range score.Issues {
			lines = append(lines, fmt.Sprintf("- [%s] %s",
				strings.ToUpper(issue.Severity.String()), issue.Message))
		}
	} else {
		lines = append(lines, "No issues detected.")
	}
	lines = append(lines, "")

	lines = append(lines,
		"### Content Info",
		fmt.Sprintf("- Word count: %d", res.Paragraphs.TotalWordCount),
		fmt.Sprintf("- Content type: %s", score.ContentType),
		fmt.Sprintf("- Sentences: %d", res.Sentences.Count),
		fmt.Sprintf("- Headings: %d", res.Headings.Total),
		fmt.Sprintf("- Internal links: %d", res.Links.InternalCount),
		fmt.Sprintf("- External links: %d", res.Links.ExternalCount),
		fmt.Sprintf("- Images: %d", res.Images.Count),
		"",
	)

	return strings.Join(lines, "\n")
}

// Table renders the compact two-line summary used by batch output.
func Table(res *models.AnalysisResult) string {
	if res.Failed() {
		return "ERROR: " + res.Error
	}

	score := res.Score
	cats := score.Categories
	lines := []string{
		fmt.Sprintf("%s  [%d/100 %s]", filepath.Base(res.File), score.Total, score.Rating),
		fmt.Sprintf("  Content: %d/30  SEO: %d/25  E-E-A-T: %d/15  Tech: %d/15  AI-Cite: %d/15",
			cats.ContentQuality, cats.SEOOptimization, cats.EEATSignals,
			cats.TechnicalElements, cats.AICitationReadiness),
	}

	var high []string
	for _, issue := range score.Issues {
		if issue.Severity == models.SeverityHigh {
			high = append(high, issue.Message)
		}
	}
	if len(high) > 0 {
		if len(high) > 3 {
			high = high[:3]
		}
		lines = append(lines, "  HIGH: "+strings.Join(high, "; "))
	}

	return strings.Join(lines, "\n")
}

// FixList renders the prioritized list of actionable fixes.
func FixList(res *models.AnalysisResult) string {
	if res.Failed() {
		return "ERROR: " + res.Error
	}

	score := res.Score
	lines := []string{
		fmt.Sprintf("Fixes for %s (Score: %d/100)", filepath.Base(res.File), score.Total),
		strings.Repeat("=", 60),
	}

	if len(score.Issues) == 0 {
		lines = append(lines, "No issues found — content meets all quality checks.")
		return strings.Join(lines, "\n")
	}

	for i, issue := range score.Issues {
		lines = append(lines, fmt.Sprintf("%d. [%s] (%s) %s",
			i+1,
			strings.ToUpper(issue.Severity.String()),
			titleCase(issue.Category.String()),
			issue.Message))
	}

	return strings.Join(lines, "\n")
}

// categoryAliases maps the short names accepted on the command line onto
// category detail keys.
var categoryAliases = map[string]string{
	"content":     "content_quality",
	"seo":         "seo_optimization",
	"eeat":        "eeat_signals",
	"technical":   "technical_elements",
	"tech":        "technical_elements",
	"ai":          "ai_citation_readiness",
	"ai_citation": "ai_citation_readiness",
	"citation":    "ai_citation_readiness",
}

// categoryForKey maps a detail key back to the issue category enum.
var categoryForKey = map[string]models.Category{
	"content_quality":       models.CategoryContent,
	"seo_optimization":      models.CategorySEO,
	"eeat_signals":          models.CategoryEEAT,
	"technical_elements":    models.CategoryTechnical,
	"ai_citation_readiness": models.CategoryAICitation,
}

// CategoryDetail renders the sub-score breakdown for one category. The
// category argument accepts both short aliases ("seo") and full keys.
func CategoryDetail(res *models.AnalysisResult, category string) string {
	if res.Failed() {
		return "ERROR: " + res.Error
	}

	key := strings.ToLower(category)
	if full, ok := categoryAliases[key]; ok {
		key = full
	}
	details, ok := res.Score.CategoryDetails[key]
	if !ok {
		aliases := make([]string, 0, len(categoryAliases))
		for a := range categoryAliases {
			aliases = append(aliases, a)
		}
		sort.Strings(aliases)
		return fmt.Sprintf("Unknown category: %q. Available: %s", category, strings.Join(aliases, ", "))
	}

	label := models.CategoryLabels[key]
	lines := []string{
		fmt.Sprintf("%s: %d/%d", label, details.Score, details.Max),
		strings.Repeat("-", 40),
	}

	subKeys := make([]string, 0, len(details.Breakdown))
	for k := range details.Breakdown {
		subKeys = append(subKeys, k)
	}
	sort.Strings(subKeys)
	for _, k := range subKeys {
		lines = append(lines, fmt.Sprintf("  %s: %d", titleCase(k), details.Breakdown[k]))
	}

	want := categoryForKey[key]
	var catIssues []models.Issue
	for _, issue := range res.Score.Issues {
		if issue.Category == want {
			catIssues = append(catIssues, issue)
		}
	}
	if len(catIssues) > 0 {
		lines = append(lines, "", "Issues:")
		for _, issue := range catIssues {
			lines = append(lines, fmt.Sprintf("  - [%s] %s",
				strings.ToUpper(issue.Severity.String()), issue.Message))
		}
	}

	return strings.Join(lines, "\n")
}

// titleCase turns a snake_case key into a display label.
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
