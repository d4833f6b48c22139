package imageview

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func pointsClose(a, b gg.Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestTransform(t *testing.T) {
	v := New(WithScale(2), WithImage(image.Rect(0, 0, 800, 600)))
	v.Allocate(Size{Width: 400, Height: 300})
	v.Translate(10, 20)

	tests := []struct {
		image  gg.Point
		screen gg.Point
	}{
		{gg.Pt(10, 20), gg.Pt(0, 0)},
		{gg.Pt(15, 20), gg.Pt(10, 0)},
		{gg.Pt(210, 170), gg.Pt(400, 300)},
	}
	for _, tt := range tests {
		if got := v.ImageToScreen(tt.image); !pointsClose(got, tt.screen) {
			t.Errorf("ImageToScreen(%v) = %v, want %v", tt.image, got, tt.screen)
		}
		if got := v.ScreenToImage(tt.screen); !pointsClose(got, tt.image) {
			t.Errorf("ScreenToImage(%v) = %v, want %v", tt.screen, got, tt.image)
		}
	}

	m := v.Transform()
	if m.A != 2 || m.E != 2 || m.B != 0 || m.D != 0 {
		t.Errorf("Transform() linear part = %+v, want uniform scale 2", m)
	}
	if m.C != -20 || m.F != -40 {
		t.Errorf("Transform() translation = (%v, %v), want (-20, -40)", m.C, m.F)
	}
}

func TestTransformCentered(t *testing.T) {
	v := NewWithImage(image.Rect(0, 0, 100, 100))
	v.Allocate(Size{Width: 400, Height: 200})

	// Fit scale 2, image centered horizontally: its left edge lands at 100.
	if got := v.ImageToScreen(gg.Pt(0, 0)); !pointsClose(got, gg.Pt(100, 0)) {
		t.Errorf("ImageToScreen(origin) = %v, want (100, 0)", got)
	}
}

func BenchmarkSetScaleAtPoint(b *testing.B) {
	v := New(WithScale(1), WithImage(image.Rect(0, 0, 4000, 3000)))
	v.Allocate(Size{Width: 1280, Height: 720})
	scales := [...]float64{1.1, 0.9}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		v.SetScaleAtPoint(v.Scale()*scales[i&1], 640, 360)
		i++
	}
}
