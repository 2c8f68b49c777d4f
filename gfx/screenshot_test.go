package gfx

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/marquee"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-reverse", "after-reverse"},
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
	g := NewGame(marquee.NewScene(), RunConfig{})
	g.Screenshot("a")
	g.Screenshot("b")
	g.Screenshot("c")
	if len(g.shots.labels) != 3 {
		t.Fatalf("queue len = %d, want 3", len(g.shots.labels))
	}
	if g.shots.labels[0] != "a" || g.shots.labels[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", g.shots.labels)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	g := NewGame(marquee.NewScene(), RunConfig{})
	if g.shots.dir != "screenshots" {
		t.Errorf("dir = %q, want %q", g.shots.dir, "screenshots")
	}
}

func TestAttachScriptRoutesScreenshots(t *testing.T) {
	s := marquee.NewScene()
	g := NewGame(s, RunConfig{})
	script, err := marquee.LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "start"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.AttachScript(script)
	if err := s.Update(0); err != nil {
		t.Fatal(err)
	}
	if len(g.shots.labels) != 1 || g.shots.labels[0] != "start" {
		t.Errorf("queue = %v, want [start]", g.shots.labels)
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("PNG file is empty")
	}
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}
