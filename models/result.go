package models

// AnalysisResult is the complete record for one analyzed document. It is
// assembled once per invocation and never mutated by formatters. A result
// for an unreadable path carries only the Error fields.
type AnalysisResult struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty" yaml:"error_type,omitempty"`

	Frontmatter map[string]string `json:"frontmatter,omitempty" yaml:"frontmatter,omitempty"`

	Headings       *HeadingInfo        `json:"headings,omitempty" yaml:"headings,omitempty"`
	Paragraphs     *ParagraphStats     `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Images         *ImageInfo          `json:"images,omitempty" yaml:"images,omitempty"`
	Charts         *ChartInfo          `json:"charts,omitempty" yaml:"charts,omitempty"`
	Citations      *CitationInfo       `json:"citations,omitempty" yaml:"citations,omitempty"`
	FAQ            *FAQInfo            `json:"faq,omitempty" yaml:"faq,omitempty"`
	Freshness      *FreshnessInfo      `json:"freshness,omitempty" yaml:"freshness,omitempty"`
	SelfPromotion  *SelfPromotionInfo  `json:"self_promotion,omitempty" yaml:"self_promotion,omitempty"`
	Readability    *ReadabilityInfo    `json:"readability,omitempty" yaml:"readability,omitempty"`
	Sentences      *SentenceInfo       `json:"sentences,omitempty" yaml:"sentences,omitempty"`
	AISignals      *AISignals          `json:"ai_signals,omitempty" yaml:"ai_signals,omitempty"`
	PassiveVoice   *PassiveVoiceInfo   `json:"passive_voice,omitempty" yaml:"passive_voice,omitempty"`
	Transitions    *TransitionInfo     `json:"transition_words,omitempty" yaml:"transition_words,omitempty"`
	TriggerWords   *TriggerWordInfo    `json:"ai_trigger_words,omitempty" yaml:"ai_trigger_words,omitempty"`
	Language       *LanguageInfo       `json:"language,omitempty" yaml:"language,omitempty"`
	Schema         *SchemaInfo         `json:"schema,omitempty" yaml:"schema,omitempty"`
	Links          *LinkInfo           `json:"links,omitempty" yaml:"links,omitempty"`
	Originality    *OriginalityInfo    `json:"originality,omitempty" yaml:"originality,omitempty"`
	Engagement     *EngagementInfo     `json:"engagement,omitempty" yaml:"engagement,omitempty"`
	AICitation     *AICitationInfo     `json:"ai_citation_readiness,omitempty" yaml:"ai_citation_readiness,omitempty"`
	SocialMeta     *SocialMetaInfo     `json:"social_meta,omitempty" yaml:"social_meta,omitempty"`
	StructuredData *StructuredDataInfo `json:"structured_data,omitempty" yaml:"structured_data,omitempty"`
	Trust          *TrustInfo          `json:"trust,omitempty" yaml:"trust,omitempty"`
	Keyword        *KeywordPlacement   `json:"keyword_placement,omitempty" yaml:"keyword_placement,omitempty"`
	Technical      *TechnicalSignals   `json:"technical_signals,omitempty" yaml:"technical_signals,omitempty"`

	Score *ScoreReport `json:"score,omitempty" yaml:"score,omitempty"`
}

// Failed reports whether the record is an error-only result.
func (r *AnalysisResult) Failed() bool { return r.Error != "" }

// WordCount is the document word total used for batch sorting.
func (r *AnalysisResult) WordCount() int {
	if r.Paragraphs == nil {
		return 0
	}
	return r.Paragraphs.TotalWordCount
}

// TotalScore is the score total used for batch sorting, 0 when absent.
func (r *AnalysisResult) TotalScore() int {
	if r.Score == nil {
		return 0
	}
	return r.Score.Total
}

// BatchResult wraps a directory run.
type BatchResult struct {
	Batch   bool              `json:"batch" yaml:"batch"`
	Count   int               `json:"count" yaml:"count"`
	Results []*AnalysisResult `json:"results" yaml:"results"`
}
