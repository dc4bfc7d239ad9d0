package stage

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha orange
		0, 0, 0, 0, // transparent
		200, 200, 200, 100, // clamps at 255
	}
	img := unpremultiply(pixels, 2, 2)
	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
		255, 255, 255, 100,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	f := newFixture(t)
	f.stage.Screenshot("a")
	f.stage.Screenshot("b")
	if len(f.stage.screenshotQueue) != 2 || f.stage.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v", f.stage.screenshotQueue)
	}
}
