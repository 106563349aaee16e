package render

import (
	"image/color"
	"testing"
)

func TestFade(t *testing.T) {
	tests := []struct {
		name  string
		in    color.RGBA
		alpha float64
		want  color.RGBA
	}{
		{"opaque", color.RGBA{200, 100, 50, 255}, 1, color.RGBA{200, 100, 50, 255}},
		{"half", color.RGBA{200, 100, 50, 255}, 0.5, color.RGBA{100, 50, 25, 127}},
		{"zero", color.RGBA{200, 100, 50, 255}, 0, color.RGBA{}},
		{"negative", color.RGBA{200, 100, 50, 255}, -1, color.RGBA{}},
		{"over one", color.RGBA{10, 20, 30, 255}, 3, color.RGBA{10, 20, 30, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fade(tt.in, tt.alpha); got != tt.want {
				t.Errorf("Fade(%v, %v) = %v, want %v", tt.in, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	if got, want := HexColor(0x8B4513), (color.RGBA{0x8b, 0x45, 0x13, 0xff}); got != want {
		t.Errorf("HexColor = %v, want %v", got, want)
	}
}
