package terminal

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	img.Set(0, 1, color.RGBA{B: 0xFF, A: 0xFF})

	out := string(Render(img))
	want := "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀"
	if !strings.HasPrefix(out, want) {
		t.Errorf("expected output to start with %q, got %q", want, out)
	}
	if strings.Count(out, "▀") != 2 {
		t.Errorf("expected 2 blocks, got %d", strings.Count(out, "▀"))
	}
	if !strings.HasSuffix(out, "\x1b[0m\r\n") {
		t.Errorf("expected output to end with a reset, got %q", out)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		cols, rows    int
		width, height int
	}{
		{200, 73, 160, 144},
		{80, 24, 51, 46},
		{40, 100, 40, 36},
		{0, 0, 1, 2},
	}
	for _, tt := range tests {
		w, h := Fit(tt.cols, tt.rows)
		if w != tt.width || h != tt.height {
			t.Errorf("Fit(%d, %d): expected %dx%d, got %dx%d", tt.cols, tt.rows, tt.width, tt.height, w, h)
		}
	}
}
