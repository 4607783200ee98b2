package analyzer

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// ingestHTML distills an HTML page into the frontmatter-plus-markdown form
// the body extractors expect. go-readability isolates the article; its title,
// byline, and excerpt become synthetic frontmatter. The original page is NOT
// part of the returned document: the raw-markup extractors (schema, meta
// tags, lazy loading) receive it separately, so article prose is never
// counted twice.
func ingestHTML(path, html string) (string, error) {
	pageURL, err := url.Parse("file://" + filepath.ToSlash(path))
	if err != nil {
		return "", fmt.Errorf("building page URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), pageURL)
	if err != nil {
		return "", fmt.Errorf("extracting article: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	writeField(&b, "title", article.Title)
	writeField(&b, "author", article.Byline)
	writeField(&b, "description", article.Excerpt)
	b.WriteString("---\n\n")

	md, err := articleToMarkdown(article.Content)
	if err != nil {
		return "", fmt.Errorf("converting article: %w", err)
	}
	b.WriteString(md)
	b.WriteString("\n")

	return b.String(), nil
}

func writeField(b *strings.Builder, key, value string) {
	value = strings.TrimSpace(strings.ReplaceAll(value, "\n", " "))
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", key, value)
}

// articleToMarkdown walks the readability-cleaned HTML and emits the markdown
// equivalents the structural extractors understand.
func articleToMarkdown(cleanHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cleanHTML))
	if err != nil {
		return "", err
	}

	var lines []string
	doc.Find("h1,h2,h3,h4,h5,h6,p,li,blockquote,img").Each(func(i int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		switch tag {
		case "img":
			src, _ := s.Attr("src")
			if src == "" {
				return
			}
			alt, _ := s.Attr("alt")
			lines = append(lines, fmt.Sprintf("![%s](%s)", alt, src))
		case "li":
			text := squashWhitespace(s.Text())
			if text != "" {
				lines = append(lines, "- "+text)
			}
		case "blockquote":
			text := squashWhitespace(s.Text())
			if text != "" {
				lines = append(lines, "> "+text)
			}
		case "p":
			text := squashWhitespace(s.Text())
			if text != "" {
				lines = append(lines, text)
			}
		default:
			text := squashWhitespace(s.Text())
			if text != "" {
				level := int(tag[1] - '0')
				lines = append(lines, strings.Repeat("#", level)+" "+text)
			}
		}
	})

	return strings.Join(lines, "\n\n"), nil
}

func squashWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
