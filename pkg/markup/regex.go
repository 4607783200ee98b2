package markup

import (
	"regexp"
	"strings"
)

var (
	ldTypeRe    = regexp.MustCompile(`"@type"\s*:\s*"([^"]+)"`)
	metaTagRe   = regexp.MustCompile(`(?:og:|twitter:)\w+`)
	metaImageRe = regexp.MustCompile(`(?:og|twitter):image`)
	altAttrRe   = regexp.MustCompile(`alt=["']([^"']*)["']`)
)

// RegexParser is the degraded path: direct pattern matches over the raw
// content with no HTML structure awareness.
type RegexParser struct{}

func (p *RegexParser) Name() string   { return "regex" }
func (p *RegexParser) Degraded() bool { return true }

func (p *RegexParser) JSONLDTypes(content string) []string {
	var types []string
	for _, m := range ldTypeRe.FindAllStringSubmatch(content, -1) {
		types = append(types, m[1])
	}
	return types
}

func (p *RegexParser) MetaTagCount(content string) int {
	return len(metaTagRe.FindAllString(content, -1))
}

func (p *RegexParser) HasMetaImage(content string) bool {
	return metaImageRe.MatchString(content)
}

// ImageAlt searches a fixed-size window around the src occurrence for an alt
// attribute. Best-effort: a neighboring image's alt can win on dense markup.
func (p *RegexParser) ImageAlt(content, src string) (string, bool) {
	pos := strings.Index(content, src)
	if pos < 0 {
		return "", false
	}
	start := pos - 200
	if start < 0 {
		start = 0
	}
	end := pos + len(src)
	if end > len(content) {
		end = len(content)
	}
	m := altAttrRe.FindStringSubmatch(content[start:end])
	if m == nil {
		return "", false
	}
	return m[1], strings.TrimSpace(m[1]) != ""
}
