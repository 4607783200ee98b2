// Package vocab holds the fixed vocabulary and classification tables the
// extractors and scoring engine consult. The lists are data, not logic: they
// are hand-curated, loaded once, and never mutated after startup.
package vocab

import "strings"

// AIPhrases are multi-word constructions that spiked in machine-generated
// prose. Matched as lowercase substrings.
var AIPhrases = []string{
	"in today's digital landscape", "it's important to note", "in conclusion",
	"dive into", "game-changer", "navigate the landscape", "revolutionize",
	"leverage", "comprehensive guide", "in the ever-evolving", "seamlessly",
	"cutting-edge", "harness the power", "at its core", "rich tapestry",
	"empower", "state-of-the-art",
}

// AITriggerWords are single words whose usage spiked sharply post-2022.
// Matched on word boundaries.
var AITriggerWords = []string{
	"delve", "tapestry", "multifaceted", "testament", "pivotal", "robust",
	"cutting-edge", "furthermore", "indeed", "moreover", "utilize", "leverage",
	"comprehensive", "landscape", "crucial", "foster", "illuminate", "underscore",
	"embark", "endeavor", "facilitate", "paramount", "nuanced", "intricate",
	"meticulous", "realm",
}

// TransitionWords are connective words and phrases counted toward the
// transition-density readability metric.
var TransitionWords = []string{
	"however", "therefore", "furthermore", "moreover", "additionally",
	"consequently", "nevertheless", "meanwhile", "similarly", "likewise",
	"nonetheless", "accordingly", "subsequently", "hence", "thus",
	"in contrast", "on the other hand", "for example", "for instance",
	"in addition", "as a result", "in other words", "that said",
	"in particular", "specifically", "alternatively", "conversely",
	"in fact", "notably", "importantly", "significantly",
}

// BadAnchorTexts is the denylist of generic link anchors, matched
// case-insensitively after trimming.
var BadAnchorTexts = map[string]struct{}{
	"click here":   {},
	"read more":    {},
	"this article": {},
	"here":         {},
	"link":         {},
	"this":         {},
}

// GenericAuthors are author values that carry no E-E-A-T weight.
var GenericAuthors = map[string]struct{}{
	"admin":         {},
	"administrator": {},
	"staff":         {},
	"team":          {},
	"":              {},
}

// SocialImageFields are frontmatter keys that indicate a social share image.
var SocialImageFields = []string{
	"image", "og_image", "ogImage", "twitter_image",
	"social_image", "thumbnail", "cover",
}

// Benchmark is an expected word-count range for a content type.
type Benchmark struct {
	MinWords int
	MaxWords int
}

// defaultBenchmarks maps content types to their word-count expectations.
var defaultBenchmarks = map[string]Benchmark{
	"guide":      {2500, 5000},
	"how-to":     {1500, 3000},
	"listicle":   {1200, 2500},
	"opinion":    {800, 1500},
	"case-study": {1500, 3000},
	"news":       {600, 1200},
	"review":     {1000, 2000},
	"default":    {1200, 3000},
}

// defaultTier1Domains are authoritative sources: government, academia, major
// journals, standards bodies. Substring matches, no domain normalization.
var defaultTier1Domains = []string{
	"nature.com", "science.org", "gov", "edu", "who.int", "nih.gov",
	"cdc.gov", "bls.gov", "census.gov", "europa.eu", "un.org",
	"ieee.org", "acm.org", "arxiv.org", "pubmed.ncbi",
}

// defaultTier2Domains are reputable outlets and analyst firms.
var defaultTier2Domains = []string{
	"reuters.com", "apnews.com", "bbc.com", "nytimes.com",
	"washingtonpost.com", "economist.com", "forbes.com", "hbr.org",
	"mckinsey.com", "gartner.com", "statista.com", "pew", "gallup.com",
}

// Tables bundles the configurable classification tables. A Tables value is
// built once at startup and shared read-only by every analysis.
type Tables struct {
	Tier1Domains []string
	Tier2Domains []string
	Benchmarks   map[string]Benchmark
}

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	bm := make(map[string]Benchmark, len(defaultBenchmarks))
	for k, v := range defaultBenchmarks {
		bm[k] = v
	}
	return Tables{
		Tier1Domains: append([]string(nil), defaultTier1Domains...),
		Tier2Domains: append([]string(nil), defaultTier2Domains...),
		Benchmarks:   bm,
	}
}

// ClassifySourceTier buckets a URL into tier 1 (authoritative), 2
// (reputable), or 3 (unclassified) by substring match against the lists.
func (t Tables) ClassifySourceTier(rawURL string) int {
	lower := strings.ToLower(rawURL)
	for _, domain := range t.Tier1Domains {
		if strings.Contains(lower, domain) {
			return 1
		}
	}
	for _, domain := range t.Tier2Domains {
		if strings.Contains(lower, domain) {
			return 2
		}
	}
	return 3
}

// BenchmarkFor returns the word-count range for a content type, falling back
// to the default range for unknown types.
func (t Tables) BenchmarkFor(contentType string) Benchmark {
	if b, ok := t.Benchmarks[contentType]; ok {
		return b
	}
	return t.Benchmarks["default"]
}

// KnownContentType reports whether a content type has its own benchmark.
func (t Tables) KnownContentType(contentType string) bool {
	_, ok := t.Benchmarks[contentType]
	return ok
}
