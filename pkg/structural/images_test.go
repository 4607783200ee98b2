package structural

import (
	"testing"

	"github.com/dtnitsch/blog-analyzer/pkg/markup"
)

func TestAnalyzeImages(t *testing.T) {
	raw := `![Team photo](https://images.unsplash.com/photo-123.webp?w=800)

![](charts/growth.png)

<img src="diagram.svg" alt="Architecture diagram">
`

	info := AnalyzeImages(raw, markup.Select(false))

	if info.Count != 3 {
		t.Fatalf("Count = %d, want 3", info.Count)
	}
	if info.WithAltText != 2 {
		t.Errorf("WithAltText = %d, want 2", info.WithAltText)
	}
	if info.WithoutAltText != 1 {
		t.Errorf("WithoutAltText = %d, want 1", info.WithoutAltText)
	}
	if info.ModernFormatCount != 2 {
		t.Errorf("ModernFormatCount = %d, want 2 (.webp and .svg)", info.ModernFormatCount)
	}
	if info.Sources["unsplash"] != 1 {
		t.Errorf("Sources[unsplash] = %d, want 1", info.Sources["unsplash"])
	}
	if info.Sources["other"] != 2 {
		t.Errorf("Sources[other] = %d, want 2", info.Sources["other"])
	}
}

func TestImageFormat_StripsQuery(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"photo.webp?w=800&q=75", ".webp"},
		{"a/b/image.PNG", ".png"},
		{"noextension", ""},
	}
	for _, tt := range tests {
		if got := imageFormat(tt.src); got != tt.want {
			t.Errorf("imageFormat(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestAnalyzeImages_DegradedParser(t *testing.T) {
	// The regex fallback only scans the window before the src value, so the
	// alt attribute must precede src to be found.
	raw := `<img alt="Launch day" src="hero.jpg">` + "\n\n" + words(60) + "\n\n" +
		`<img src="later.jpg" alt="Missed">`

	info := AnalyzeImages(raw, markup.Select(true))

	if info.Count != 2 {
		t.Fatalf("Count = %d, want 2", info.Count)
	}
	if info.WithAltText != 1 {
		t.Errorf("WithAltText = %d, want 1 via the regex fallback", info.WithAltText)
	}
}
