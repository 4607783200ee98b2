// Package analyzer assembles the complete analysis record for one document:
// it reads the file, runs every extractor, and attaches the score report.
package analyzer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/frontmatter"
	"github.com/dtnitsch/blog-analyzer/pkg/linguistic"
	"github.com/dtnitsch/blog-analyzer/pkg/markup"
	"github.com/dtnitsch/blog-analyzer/pkg/plaintext"
	"github.com/dtnitsch/blog-analyzer/pkg/scoring"
	"github.com/dtnitsch/blog-analyzer/pkg/structural"
	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

// Options selects the capability providers for one Analyzer.
type Options struct {
	// FastReadability skips syllable counting in favor of the cheap
	// length-based estimate.
	FastReadability bool
	// DegradedMarkup forces the regex markup parser instead of goquery.
	DegradedMarkup bool
	// Tables overrides the built-in vocabulary tables; zero value means defaults.
	Tables vocab.Tables
	// DetectLanguage enables the lingua-based language extractor.
	DetectLanguage bool
}

// Analyzer runs the full extractor pipeline. It is stateless apart from its
// injected providers and safe for concurrent use.
type Analyzer struct {
	readability linguistic.ReadabilityProvider
	markup      markup.Parser
	tables      vocab.Tables
	detector    *linguistic.Detector
}

// New builds an Analyzer with providers selected from opts.
func New(opts Options) *Analyzer {
	tables := opts.Tables
	if tables.Benchmarks == nil {
		tables = vocab.DefaultTables()
	}
	a := &Analyzer{
		readability: linguistic.SelectReadability(opts.FastReadability),
		markup:      markup.Select(opts.DegradedMarkup),
		tables:      tables,
	}
	if opts.DetectLanguage {
		a.detector = linguistic.NewDetector()
	}
	return a
}

// Tables exposes the active vocabulary tables, mainly for command wiring.
func (a *Analyzer) Tables() vocab.Tables { return a.tables }

// AnalyzeFile reads and analyzes a single document. Failures to read or
// ingest the file are reported in the result record, never as a Go error,
// so batch runs can carry on.
func (a *Analyzer) AnalyzeFile(path string) *models.AnalysisResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &models.AnalysisResult{
			File:      path,
			Error:     "File not found: " + path,
			ErrorType: "read_error",
		}
	}

	format := strings.ToLower(filepath.Ext(path))
	page := string(raw)
	content := page
	if format == ".html" || format == ".htm" {
		content, err = ingestHTML(path, page)
		if err != nil {
			return &models.AnalysisResult{
				File:      path,
				Format:    format,
				Error:     "HTML extraction failed: " + err.Error(),
				ErrorType: "ingest_error",
			}
		}
	}

	return a.analyze(path, format, content, page)
}

// AnalyzeContent runs every extractor over an in-memory document and scores
// the assembled result. The same input always yields the same record.
func (a *Analyzer) AnalyzeContent(path, format, content string) *models.AnalysisResult {
	return a.analyze(path, format, content, content)
}

// analyze assembles the record. content is the markdown-shaped document the
// body extractors read; page is the untouched input, which only the
// raw-markup extractors consult. For markdown input the two are identical;
// for HTML input, page is the original page and content the distilled
// article, keeping prose out of the word and sentence statistics.
func (a *Analyzer) analyze(path, format, content, page string) *models.AnalysisResult {
	fm := frontmatter.Extract(content)
	body := frontmatter.StripBlock(content)
	plain := plaintext.Normalize(body)

	headings := structural.AnalyzeHeadings(body)
	sentences := linguistic.AnalyzeSentences(plain)

	res := &models.AnalysisResult{
		File:        path,
		Format:      format,
		Frontmatter: fm,

		Headings:       headings,
		Paragraphs:     structural.AnalyzeParagraphs(body),
		Images:         structural.AnalyzeImages(content, a.markup),
		Charts:         structural.AnalyzeCharts(page),
		Citations:      structural.AnalyzeCitations(body, a.tables),
		FAQ:            structural.AnalyzeFAQ(body),
		Freshness:      structural.AnalyzeFreshness(fm),
		SelfPromotion:  structural.AnalyzeSelfPromotion(body),
		Readability:    a.readability.Analyze(plain),
		Sentences:      sentences,
		AISignals:      linguistic.AnalyzeAISignals(plain, sentences),
		PassiveVoice:   linguistic.AnalyzePassiveVoice(plain),
		Transitions:    linguistic.AnalyzeTransitions(plain),
		TriggerWords:   linguistic.AnalyzeTriggerWords(plain),
		Schema:         structural.AnalyzeSchema(page, a.markup),
		Links:          structural.AnalyzeLinks(body, a.tables),
		Originality:    structural.AnalyzeOriginality(body),
		Engagement:     structural.AnalyzeEngagement(body),
		AICitation:     structural.AnalyzeAICitation(body, page),
		SocialMeta:     structural.AnalyzeSocialMeta(page, fm, a.markup),
		StructuredData: structural.AnalyzeStructuredData(body),
		Trust:          structural.AnalyzeTrust(body),
		Keyword:        structural.AnalyzeKeyword(fm, body, headings),
		Technical:      structural.AnalyzeTechnicalSignals(page),
	}
	if a.detector != nil {
		res.Language = a.detector.Detect(plain)
	}

	res.Score = scoring.Score(res, a.tables)
	return res
}
