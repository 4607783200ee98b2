package structural

import (
	"testing"

	"github.com/dtnitsch/blog-analyzer/pkg/markup"
)

func TestAnalyzeOriginality(t *testing.T) {
	body := `[ORIGINAL DATA] Our survey covered 500 teams.

We tested the tool for six weeks. In my experience the defaults are wrong.
I found three regressions along the way.
`

	info := AnalyzeOriginality(body)

	if info.MarkerCount != 2 {
		t.Errorf("MarkerCount = %d, want 2", info.MarkerCount)
	}
	if info.FirstPersonCount != 3 {
		t.Errorf("FirstPersonCount = %d, want 3", info.FirstPersonCount)
	}
}

func TestAnalyzeOriginality_None(t *testing.T) {
	info := AnalyzeOriginality("A dry report with no personal language at all.")

	if info.MarkerCount != 0 {
		t.Errorf("MarkerCount = %d, want 0", info.MarkerCount)
	}
	if len(info.Markers) != 0 {
		t.Errorf("Markers = %v, want empty", info.Markers)
	}
}

func TestAnalyzeEngagement(t *testing.T) {
	body := `## Why does this matter?

Have you measured it? For example, consider a slow build.

### Another heading?
`

	info := AnalyzeEngagement(body)

	// Only the body question counts; heading lines are excluded.
	if info.QuestionsInText != 1 {
		t.Errorf("QuestionsInText = %d, want 1", info.QuestionsInText)
	}
	// "for example" and "consider" both match.
	if info.ExampleCount != 2 {
		t.Errorf("ExampleCount = %d, want 2", info.ExampleCount)
	}
}

func TestAnalyzeTrust(t *testing.T) {
	body := "Read more [about us](/about-us). Reviewed by our senior editor. No way to reach us though."

	info := AnalyzeTrust(body)

	if !info.AboutReference {
		t.Error("AboutReference = false, want true")
	}
	if !info.EditorialReference {
		t.Error("EditorialReference = false, want true")
	}
	if info.ContactReference {
		t.Error("ContactReference = true, want false")
	}
}

func TestAnalyzeSelfPromotion(t *testing.T) {
	body := "At Acme, we move fast. Our platform scales. We deliver results."

	info := AnalyzeSelfPromotion(body)

	if info.Patterns != 3 {
		t.Errorf("Patterns = %d, want 3", info.Patterns)
	}
	if !info.ExceedsLimit {
		t.Error("ExceedsLimit = false, want true for more than one pattern")
	}
}

func TestAnalyzeFreshness(t *testing.T) {
	fm := map[string]string{"date": "2026-01-15", "last_updated": "2026-06-01"}

	info := AnalyzeFreshness(fm)

	if !info.HasDate || info.Date != "2026-01-15" {
		t.Errorf("date = (%v, %q), want (true, 2026-01-15)", info.HasDate, info.Date)
	}
	if !info.HasLastUpdated || info.LastUpdated != "2026-06-01" {
		t.Errorf("last updated = (%v, %q), want (true, 2026-06-01)", info.HasLastUpdated, info.LastUpdated)
	}
}

func TestAnalyzeSocialMeta(t *testing.T) {
	raw := `---
title: Post
image: /social/card.png
---

<meta property="og:title" content="Post">
<meta name="twitter:card" content="summary">
`
	fm := map[string]string{"title": "Post", "image": "/social/card.png"}

	info := AnalyzeSocialMeta(raw, fm, markup.Select(false))

	if info.OGTagsFound != 2 {
		t.Errorf("OGTagsFound = %d, want 2", info.OGTagsFound)
	}
	if !info.HasSocialImage {
		t.Error("HasSocialImage = false, want true")
	}
	if len(info.SocialFieldsInFrontmatter) != 1 || info.SocialFieldsInFrontmatter[0] != "image" {
		t.Errorf("SocialFieldsInFrontmatter = %v, want [image]", info.SocialFieldsInFrontmatter)
	}
}

func TestAnalyzeSocialMeta_OGImageTagOnly(t *testing.T) {
	raw := `<head>
<meta property="og:image" content="/img/card.png">
<meta name="twitter:card" content="summary_large_image">
</head>`

	for _, degraded := range []bool{false, true} {
		info := AnalyzeSocialMeta(raw, map[string]string{}, markup.Select(degraded))
		if !info.HasSocialImage {
			t.Errorf("degraded=%v: HasSocialImage = false, want true from og:image tag", degraded)
		}
		if len(info.SocialFieldsInFrontmatter) != 0 {
			t.Errorf("degraded=%v: SocialFieldsInFrontmatter = %v, want empty",
				degraded, info.SocialFieldsInFrontmatter)
		}
	}
}

func TestAnalyzeSocialMeta_NoImageAnywhere(t *testing.T) {
	raw := `<meta property="og:title" content="Post">`
	info := AnalyzeSocialMeta(raw, map[string]string{"title": "Post"}, markup.Select(false))
	if info.HasSocialImage {
		t.Error("HasSocialImage = true, want false without an image field or tag")
	}
}

func TestAnalyzeTechnicalSignals(t *testing.T) {
	raw := `<img src="a.jpg" loading="lazy" srcset="a-2x.jpg 2x">
We embed schema.org JSON-LD below.`

	info := AnalyzeTechnicalSignals(raw)

	if !info.LazyLoading {
		t.Error("LazyLoading = false, want true")
	}
	if !info.ResponsiveMarkup {
		t.Error("ResponsiveMarkup = false, want true")
	}
	if !info.MentionsSchemaVocab {
		t.Error("MentionsSchemaVocab = false, want true")
	}

	none := AnalyzeTechnicalSignals("plain text only")
	if none.LazyLoading || none.ResponsiveMarkup || none.MentionsSchemaVocab {
		t.Errorf("signals = %+v, want all false", none)
	}
}
