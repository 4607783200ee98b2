package markup

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocumentParser is the precise implementation backed by goquery. MDX content
// is parsed as an HTML fragment; markdown text outside tags is ignored by the
// selector queries, which is exactly what we want here.
type DocumentParser struct{}

func (p *DocumentParser) Name() string   { return "goquery" }
func (p *DocumentParser) Degraded() bool { return false }

func (p *DocumentParser) JSONLDTypes(content string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Fall back to the regex path rather than losing the signal.
		return (&RegexParser{}).JSONLDTypes(content)
	}

	var types []string
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		types = append(types, decodeLDTypes(s.Text())...)
	})
	return types
}

// decodeLDTypes pulls @type values out of one JSON-LD block, tolerating a
// top-level object or array. Malformed JSON skips the block.
func decodeLDTypes(raw string) []string {
	var node any
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		return nil
	}
	var types []string
	appendType := func(obj map[string]any) {
		switch v := obj["@type"].(type) {
		case string:
			types = append(types, v)
		case nil:
			types = append(types, "Unknown")
		}
	}
	switch v := node.(type) {
	case map[string]any:
		appendType(v)
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				appendType(obj)
			}
		}
	}
	return types
}

func (p *DocumentParser) MetaTagCount(content string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return (&RegexParser{}).MetaTagCount(content)
	}
	count := 0
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("property")
		if name == "" {
			name, _ = s.Attr("name")
		}
		if strings.HasPrefix(name, "og:") || strings.HasPrefix(name, "twitter:") {
			count++
		}
	})
	if count > 0 {
		return count
	}
	// Frontmatter-driven sites often reference og:/twitter: keys outside
	// <meta> tags; count raw mentions so the signal is not lost.
	return (&RegexParser{}).MetaTagCount(content)
}

func (p *DocumentParser) HasMetaImage(content string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return (&RegexParser{}).HasMetaImage(content)
	}
	found := false
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("property")
		if name == "" {
			name, _ = s.Attr("name")
		}
		if (name == "og:image" || name == "twitter:image") && s.AttrOr("content", "") != "" {
			found = true
			return false
		}
		return true
	})
	if found {
		return true
	}
	return (&RegexParser{}).HasMetaImage(content)
}

func (p *DocumentParser) ImageAlt(content, src string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return (&RegexParser{}).ImageAlt(content, src)
	}
	alt, found := "", false
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr("src"); v == src {
			alt, found = s.AttrOr("alt", ""), true
			return false
		}
		return true
	})
	if found {
		return alt, alt != ""
	}
	return (&RegexParser{}).ImageAlt(content, src)
}
