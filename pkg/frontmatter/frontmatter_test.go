package frontmatter

import "testing"

func TestExtract(t *testing.T) {
	content := `---
title: "My Great Post"
author: 'Jane Doe'
keywords: go, testing
empty:
---

Body text here.
`

	fm := Extract(content)

	if fm["title"] != "My Great Post" {
		t.Errorf("title = %q, want %q", fm["title"], "My Great Post")
	}
	if fm["author"] != "Jane Doe" {
		t.Errorf("author = %q, want %q", fm["author"], "Jane Doe")
	}
	if fm["keywords"] != "go, testing" {
		t.Errorf("keywords = %q, want %q", fm["keywords"], "go, testing")
	}
	if _, ok := fm["empty"]; ok {
		t.Error("empty value should be dropped, not stored as empty string")
	}
}

func TestExtract_NoBlock(t *testing.T) {
	for _, content := range []string{
		"Just a plain document.",
		"Text before\n---\nkey: value\n---\n",
		"",
	} {
		fm := Extract(content)
		if fm == nil {
			t.Fatal("Extract() returned nil, want empty map")
		}
		if len(fm) != 0 {
			t.Errorf("Extract(%q) = %v, want empty map", content, fm)
		}
	}
}

func TestExtract_ValueWithColon(t *testing.T) {
	content := "---\ntitle: Go 1.25: What Changed\n---\n\nBody.\n"

	fm := Extract(content)
	if fm["title"] != "Go 1.25: What Changed" {
		t.Errorf("title = %q, want split on first colon only", fm["title"])
	}
}

func TestExtract_DuplicateKeysLastWins(t *testing.T) {
	content := "---\nauthor: First\nauthor: Second\n---\n\nBody.\n"

	fm := Extract(content)
	if fm["author"] != "Second" {
		t.Errorf("author = %q, want last occurrence to win", fm["author"])
	}
}

func TestStripBlock(t *testing.T) {
	content := "---\ntitle: Post\n---\n\n# Heading\n"

	body := StripBlock(content)
	if body != "\n# Heading\n" {
		t.Errorf("StripBlock() = %q, want body without frontmatter", body)
	}

	plain := "No frontmatter here."
	if got := StripBlock(plain); got != plain {
		t.Errorf("StripBlock() = %q, want unchanged content", got)
	}
}
