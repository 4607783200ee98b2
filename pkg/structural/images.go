package structural

import (
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/markup"
)

var (
	mdImageCapRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	htmlImageRe  = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["'][^>]*>`)
)

var modernFormats = map[string]struct{}{
	".webp": {},
	".avif": {},
	".svg":  {},
}

// AnalyzeImages inventories markdown and HTML images over the raw content.
// HTML alt text is resolved through the markup parser; the degraded path
// searches a window of surrounding text, so it is best-effort only.
func AnalyzeImages(raw string, parser markup.Parser) *models.ImageInfo {
	var images []models.Image

	for _, m := range mdImageCapRe.FindAllStringSubmatch(raw, -1) {
		alt := strings.TrimSpace(m[1])
		images = append(images, models.Image{
			Src:       m[2],
			HasAlt:    alt != "",
			AltLength: len(alt),
			Format:    imageFormat(m[2]),
			Source:    imageSource(m[2]),
		})
	}

	for _, m := range htmlImageRe.FindAllStringSubmatch(raw, -1) {
		src := m[1]
		alt, hasAlt := parser.ImageAlt(raw, src)
		alt = strings.TrimSpace(alt)
		images = append(images, models.Image{
			Src:       src,
			HasAlt:    hasAlt && alt != "",
			AltLength: len(alt),
			Format:    imageFormat(src),
			Source:    imageSource(src),
		})
	}

	info := &models.ImageInfo{
		Count:   len(images),
		Sources: map[string]int{},
		Images:  images,
	}
	formatSet := map[string]struct{}{}
	for _, img := range images {
		if img.HasAlt {
			info.WithAltText++
		}
		if _, ok := modernFormats[img.Format]; ok {
			info.ModernFormatCount++
		}
		formatSet[img.Format] = struct{}{}
		info.Sources[img.Source]++
	}
	info.WithoutAltText = info.Count - info.WithAltText
	for f := range formatSet {
		info.Formats = append(info.Formats, f)
	}
	sort.Strings(info.Formats)
	return info
}

// imageFormat is the lowercase file extension with any query string removed.
func imageFormat(src string) string {
	src, _, _ = strings.Cut(src, "?")
	return strings.ToLower(path.Ext(src))
}

// imageSource buckets the URL into a known stock-photo provider or "other".
func imageSource(src string) string {
	switch {
	case strings.Contains(src, "pixabay"):
		return "pixabay"
	case strings.Contains(src, "unsplash"):
		return "unsplash"
	case strings.Contains(src, "pexels"):
		return "pexels"
	default:
		return "other"
	}
}
