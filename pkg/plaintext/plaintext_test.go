package plaintext

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	body := "# Title\n\nSome [linked text](https://example.com) here.\n\n" +
		"![alt](img.png)\n\n```go\nfmt.Println(\"ignored\")\n```\n\n<div>wrapped</div>\n"

	got := Normalize(body)

	want := "Title\n\nSome linked text here.\n\nwrapped"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic split",
			text: "First sentence. Second one! Third?",
			want: []string{"First sentence.", "Second one!", "Third?"},
		},
		{
			name: "terminator runs stay attached",
			text: "Really?! Ellipses split too... definitely.",
			want: []string{"Really?!", "Ellipses split too...", "definitely."},
		},
		{
			name: "decimal points do not split",
			text: "The rate hit 3.5 percent last year. Growth continued.",
			want: []string{"The rate hit 3.5 percent last year.", "Growth continued."},
		},
		{
			name: "no trailing terminator",
			text: "One done. Unfinished thought",
			want: []string{"One done.", "Unfinished thought"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestContentSentences(t *testing.T) {
	text := "OK. This sentence has many words in it. No."

	got := ContentSentences(text)
	want := []string{"This sentence has many words in it."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ContentSentences() = %v, want fragments dropped: %v", got, want)
	}
}
