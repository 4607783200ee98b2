package linguistic

import "testing"

func TestDetect(t *testing.T) {
	d := NewDetector()

	info := d.Detect("The quick brown fox jumps over the lazy dog near the riverbank every single morning.")
	if info.Language != "english" || !info.English {
		t.Errorf("got %+v, want english", info)
	}

	info = d.Detect("El zorro marrón salta sobre el perro perezoso cada mañana junto al río tranquilo.")
	if info.Language != "spanish" || info.English {
		t.Errorf("got %+v, want spanish", info)
	}
}

func TestDetect_ShortTextUnknown(t *testing.T) {
	d := NewDetector()
	info := d.Detect("Too short to judge.")
	if info.Language != "unknown" {
		t.Errorf("Language = %q, want unknown", info.Language)
	}
	if info.English {
		t.Error("English = true, want false for unknown")
	}
}
