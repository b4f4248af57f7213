package twig

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	l := NewLoop(&testGame{}, &testHost{}, 60)
	l.Screenshot("a")
	l.Screenshot("b")
	l.Screenshot("c")
	if len(l.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(l.screenshotQueue))
	}
	if l.screenshotQueue[0] != "a" || l.screenshotQueue[1] != "b" || l.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", l.screenshotQueue)
	}
}

func TestScreenshotWithoutCaptureDropped(t *testing.T) {
	dir := t.TempDir()
	l, clk := newTestLoop(&testGame{}, &testHost{}, 60)
	l.ScreenshotDir = dir
	l.Start(clk.Now())
	l.Screenshot("ignored")
	l.Frame(clk.Now())

	if len(l.screenshotQueue) != 0 {
		t.Errorf("queue len = %d, want 0", len(l.screenshotQueue))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("wrote %d files, want none", len(entries))
	}
}

func TestPremultipliedToNRGBA(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent
		0, 0, 0, 0, // transparent
	}
	img := premultipliedToNRGBA(pixels, 3, 1)
	tests := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 0, 0, 255}},
		{1, color.NRGBA{127, 63, 0, 128}},
		{2, color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 0); got != tt.want {
			t.Errorf("pixel %d = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTerminalScreenshot(t *testing.T) {
	s := newSimScreen(t, 8, 4)
	h := &terminalHost{screen: s, renderer: NewTerminalRenderer(s, 1)}
	g := &testGame{}
	l, clk := newTestLoop(g, h, 60)
	dir := filepath.Join(t.TempDir(), "shots")
	l.ScreenshotDir = dir
	l.Background = ColorBlack
	clk.now = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	l.Start(clk.Now())
	l.Screenshot("first frame")
	l.Frame(clk.Now())

	path := filepath.Join(dir, "20240501_123000_first_frame.png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("bounds = %v, want 8x4", b)
	}

	// testGame fills the world unit square, the bottom-left cell.
	white := color.NRGBAModel.Convert(img.At(0, 3)).(color.NRGBA)
	if white != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("drawn cell = %v, want white", white)
	}
	black := color.NRGBAModel.Convert(img.At(5, 0)).(color.NRGBA)
	if black != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("blank cell = %v, want black", black)
	}
}
