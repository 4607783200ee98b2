// Package models defines the data records produced by the analyzer: per-extractor
// feature blocks, the score report, and the assembled analysis result.
package models

// Heading is a single markdown heading with its derived question flag.
type Heading struct {
	Level      int    `json:"level" yaml:"level"`
	Text       string `json:"text" yaml:"text"`
	IsQuestion bool   `json:"is_question" yaml:"is_question"`
}

// HeadingInfo aggregates heading structure facts for one document.
type HeadingInfo struct {
	Headings        []Heading `json:"headings" yaml:"headings"`
	H1Count         int       `json:"h1_count" yaml:"h1_count"`
	H2Count         int       `json:"h2_count" yaml:"h2_count"`
	H3Count         int       `json:"h3_count" yaml:"h3_count"`
	H2QuestionCount int       `json:"h2_question_count" yaml:"h2_question_count"`
	H2QuestionRatio float64   `json:"h2_question_ratio" yaml:"h2_question_ratio"`
	HierarchyClean  bool      `json:"hierarchy_clean" yaml:"hierarchy_clean"`
	Total           int       `json:"total" yaml:"total"`
}

// ParagraphStats summarizes paragraph lengths. Fragments under 5 words are
// excluded before any statistic is computed.
type ParagraphStats struct {
	TotalParagraphs int     `json:"total_paragraphs" yaml:"total_paragraphs"`
	AvgWordCount    float64 `json:"avg_word_count" yaml:"avg_word_count"`
	Over150Words    int     `json:"over_150_words" yaml:"over_150_words"`
	Over200Words    int     `json:"over_200_words" yaml:"over_200_words"`
	InIdealRange    int     `json:"in_ideal_range" yaml:"in_ideal_range"`
	InRangeRatio    float64 `json:"in_range_ratio" yaml:"in_range_ratio"`
	MaxWordCount    int     `json:"max_word_count" yaml:"max_word_count"`
	TotalWordCount  int     `json:"total_word_count" yaml:"total_word_count"`
}

// Image is one discovered image reference, markdown or HTML.
type Image struct {
	Src       string `json:"src" yaml:"src"`
	HasAlt    bool   `json:"has_alt" yaml:"has_alt"`
	AltLength int    `json:"alt_length" yaml:"alt_length"`
	Format    string `json:"format" yaml:"format"`
	Source    string `json:"source" yaml:"source"`
}

// ImageInfo aggregates image inventory facts.
type ImageInfo struct {
	Count             int            `json:"count" yaml:"count"`
	WithAltText       int            `json:"with_alt_text" yaml:"with_alt_text"`
	WithoutAltText    int            `json:"without_alt_text" yaml:"without_alt_text"`
	ModernFormatCount int            `json:"modern_format_count" yaml:"modern_format_count"`
	Formats           []string       `json:"formats" yaml:"formats"`
	Sources           map[string]int `json:"sources" yaml:"sources"`
	Images            []Image        `json:"images,omitempty" yaml:"images,omitempty"`
}

// ChartInfo reports the two chart markup styles. SVG and figure tags are
// alternative representations of the same visual, so ChartCount takes the max.
type ChartInfo struct {
	SVGCount    int `json:"svg_count" yaml:"svg_count"`
	FigureCount int `json:"figure_count" yaml:"figure_count"`
	ChartCount  int `json:"chart_count" yaml:"chart_count"`
}

// CitationInfo reports statistics and how well they are sourced, plus the
// source-tier distribution of inline URL citations.
type CitationInfo struct {
	TotalStatistics     int         `json:"total_statistics" yaml:"total_statistics"`
	SourcedStatistics   int         `json:"sourced_statistics" yaml:"sourced_statistics"`
	UnsourcedStatistics int         `json:"unsourced_statistics" yaml:"unsourced_statistics"`
	InlineCitations     int         `json:"inline_citations" yaml:"inline_citations"`
	ParenCitations      int         `json:"paren_citations" yaml:"paren_citations"`
	UniqueSources       int         `json:"unique_sources" yaml:"unique_sources"`
	TierCounts          map[int]int `json:"tier_counts" yaml:"tier_counts"`
}

// LinkInfo reports internal/external link counts and anchor quality.
type LinkInfo struct {
	InternalCount      int         `json:"internal_count" yaml:"internal_count"`
	ExternalCount      int         `json:"external_count" yaml:"external_count"`
	TotalLinks         int         `json:"total_links" yaml:"total_links"`
	BadAnchorTexts     []string    `json:"bad_anchor_texts" yaml:"bad_anchor_texts"`
	ExternalTierCounts map[int]int `json:"external_tier_counts" yaml:"external_tier_counts"`
}

// FAQInfo reports FAQ section detection.
type FAQInfo struct {
	HasFAQSection bool `json:"has_faq_section" yaml:"has_faq_section"`
	HasFAQSchema  bool `json:"has_faq_schema" yaml:"has_faq_schema"`
	FAQItemCount  int  `json:"faq_item_count" yaml:"faq_item_count"`
}

// FreshnessInfo reports date metadata presence.
type FreshnessInfo struct {
	HasDate        bool   `json:"has_date" yaml:"has_date"`
	HasLastUpdated bool   `json:"has_last_updated" yaml:"has_last_updated"`
	Date           string `json:"date" yaml:"date"`
	LastUpdated    string `json:"last_updated" yaml:"last_updated"`
}

// SelfPromotionInfo counts promotional language patterns.
type SelfPromotionInfo struct {
	Patterns     int  `json:"self_promotion_patterns" yaml:"self_promotion_patterns"`
	ExceedsLimit bool `json:"exceeds_limit" yaml:"exceeds_limit"`
}

// ReadabilityInfo carries readability metrics. Estimated marks values derived
// from the cheap fallback formulas rather than syllable counting; grade-level
// fields are only present on the precise path.
type ReadabilityInfo struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade,omitempty" yaml:"flesch_kincaid_grade,omitempty"`
	GunningFog         float64 `json:"gunning_fog,omitempty" yaml:"gunning_fog,omitempty"`
	ReadingTimeMinutes float64 `json:"reading_time_minutes" yaml:"reading_time_minutes"`
	AvgSentenceLength  float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	Estimated          bool    `json:"estimated" yaml:"estimated"`
}

// SentenceInfo reports sentence-length statistics. Sentences of two words or
// fewer are treated as noise and excluded.
type SentenceInfo struct {
	Count         int     `json:"count" yaml:"count"`
	AvgLength     float64 `json:"avg_length" yaml:"avg_length"`
	MaxLength     int     `json:"max_length" yaml:"max_length"`
	Burstiness    float64 `json:"burstiness" yaml:"burstiness"`
	StdDev        float64 `json:"std_dev" yaml:"std_dev"`
	VeryLongCount int     `json:"very_long_count" yaml:"very_long_count"`
	Over20Count   int     `json:"over_20_count" yaml:"over_20_count"`
	Over20Pct     float64 `json:"over_20_pct" yaml:"over_20_pct"`
	Over25Count   int     `json:"over_25_count" yaml:"over_25_count"`
}

// PhraseCount pairs a detected phrase or word with its occurrence count.
type PhraseCount struct {
	Phrase string `json:"phrase" yaml:"phrase"`
	Count  int    `json:"count" yaml:"count"`
}

// WordCount pairs a detected word with its occurrence count.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// AISignals reports machine-generation heuristics. LikelyAI is deliberately
// crude: low burstiness combined with low vocabulary diversity.
type AISignals struct {
	PhrasesFound           []PhraseCount `json:"ai_phrases_found" yaml:"ai_phrases_found"`
	PhraseCount            int           `json:"ai_phrase_count" yaml:"ai_phrase_count"`
	VocabularyDiversityTTR float64       `json:"vocabulary_diversity_ttr" yaml:"vocabulary_diversity_ttr"`
	Burstiness             float64       `json:"burstiness" yaml:"burstiness"`
	LikelyAI               bool          `json:"likely_ai" yaml:"likely_ai"`
}

// PassiveVoiceInfo estimates passive-voice prevalence.
type PassiveVoiceInfo struct {
	PassiveCount   int     `json:"passive_count" yaml:"passive_count"`
	TotalSentences int     `json:"total_sentences" yaml:"total_sentences"`
	PassivePct     float64 `json:"passive_pct" yaml:"passive_pct"`
}

// TransitionInfo reports the share of sentences containing a transition term.
// Each sentence counts once even when it contains several.
type TransitionInfo struct {
	TransitionCount int     `json:"transition_count" yaml:"transition_count"`
	TotalSentences  int     `json:"total_sentences" yaml:"total_sentences"`
	TransitionPct   float64 `json:"transition_pct" yaml:"transition_pct"`
}

// TriggerWordInfo reports AI trigger-word density per 1,000 words.
type TriggerWordInfo struct {
	TriggerCount int         `json:"trigger_count" yaml:"trigger_count"`
	PerThousand  float64     `json:"per_1k" yaml:"per_1k"`
	Found        []WordCount `json:"found" yaml:"found"`
}

// LanguageInfo reports the detected document language.
type LanguageInfo struct {
	Language   string  `json:"language" yaml:"language"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	English    bool    `json:"english" yaml:"english"`
}

// SchemaInfo reports JSON-LD structured data types found in the document.
type SchemaInfo struct {
	SchemasFound   []string `json:"schemas_found" yaml:"schemas_found"`
	SchemaCount    int      `json:"schema_count" yaml:"schema_count"`
	HasBlogPosting bool     `json:"has_blogposting" yaml:"has_blogposting"`
	HasFAQPage     bool     `json:"has_faqpage" yaml:"has_faqpage"`
	HasPerson      bool     `json:"has_person" yaml:"has_person"`
}

// OriginalityInfo reports originality markers and first-person language.
type OriginalityInfo struct {
	Markers          []string `json:"markers" yaml:"markers"`
	MarkerCount      int      `json:"marker_count" yaml:"marker_count"`
	FirstPersonCount int      `json:"first_person_count" yaml:"first_person_count"`
}

// EngagementInfo counts reader-engagement markers in body text.
type EngagementInfo struct {
	QuestionsInText int `json:"questions_in_text" yaml:"questions_in_text"`
	ExampleCount    int `json:"example_count" yaml:"example_count"`
}

// AICitationInfo reports how extractable the content is for citation systems.
type AICitationInfo struct {
	CitablePassages      int  `json:"citable_passages" yaml:"citable_passages"`
	QAPairs              int  `json:"qa_pairs" yaml:"qa_pairs"`
	EntityDefinitions    int  `json:"entity_definitions" yaml:"entity_definitions"`
	HasTLDR              bool `json:"has_tldr" yaml:"has_tldr"`
	TableCount           int  `json:"table_count" yaml:"table_count"`
	ListCount            int  `json:"list_count" yaml:"list_count"`
	HasRobotsRestriction bool `json:"has_robots_restriction" yaml:"has_robots_restriction"`
}

// SocialMetaInfo reports Open Graph / Twitter tag presence.
type SocialMetaInfo struct {
	OGTagsFound               int      `json:"og_tags_found" yaml:"og_tags_found"`
	HasSocialImage            bool     `json:"has_social_image" yaml:"has_social_image"`
	SocialFieldsInFrontmatter []string `json:"social_fields_in_frontmatter" yaml:"social_fields_in_frontmatter"`
}

// StructuredDataInfo counts tables, lists, and other extraction-friendly markup.
type StructuredDataInfo struct {
	TableCount         int `json:"table_count" yaml:"table_count"`
	TableRows          int `json:"table_rows" yaml:"table_rows"`
	UnorderedListItems int `json:"unordered_list_items" yaml:"unordered_list_items"`
	OrderedListItems   int `json:"ordered_list_items" yaml:"ordered_list_items"`
	CodeBlocks         int `json:"code_blocks" yaml:"code_blocks"`
	Blockquotes        int `json:"blockquotes" yaml:"blockquotes"`
}

// TrustInfo reports trust-indicator references in body text.
type TrustInfo struct {
	AboutReference     bool `json:"about_reference" yaml:"about_reference"`
	ContactReference   bool `json:"contact_reference" yaml:"contact_reference"`
	EditorialReference bool `json:"editorial_reference" yaml:"editorial_reference"`
}

// KeywordPlacement reports where the primary keyword appears. Keyword is the
// first entry of the frontmatter keyword/keywords field, lowercased.
type KeywordPlacement struct {
	Keyword          string `json:"keyword" yaml:"keyword"`
	InTitle          bool   `json:"in_title" yaml:"in_title"`
	InFirstParagraph bool   `json:"in_first_paragraph" yaml:"in_first_paragraph"`
	InHeading        bool   `json:"in_heading" yaml:"in_heading"`
}

// TechnicalSignals reports raw-markup performance hints used by the
// technical-elements scoring category.
type TechnicalSignals struct {
	LazyLoading         bool `json:"lazy_loading" yaml:"lazy_loading"`
	ResponsiveMarkup    bool `json:"responsive_markup" yaml:"responsive_markup"`
	MentionsSchemaVocab bool `json:"mentions_schema_vocab" yaml:"mentions_schema_vocab"`
}
