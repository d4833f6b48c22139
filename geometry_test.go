package imageview

import (
	"image"
	"testing"
)

func TestPlaceOnAxis(t *testing.T) {
	tests := []struct {
		name                string
		pos, extent, length float64
		want                float64
	}{
		{"inside", 100, 400, 800, 100},
		{"before start", -50, 400, 800, 0},
		{"past end", 1e6, 400, 800, 400},
		{"exact fit", 37, 800, 800, 0},
		{"viewport larger", 12, 1000, 800, -100},
		{"empty image", 5, 300, 0, -150},
		{"empty viewport", 900, 0, 800, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeOnAxis(tt.pos, tt.extent, tt.length)
			if got != tt.want {
				t.Errorf("placeOnAxis(%v, %v, %v) = %v, want %v", tt.pos, tt.extent, tt.length, got, tt.want)
			}
			if again := placeOnAxis(got, tt.extent, tt.length); again != got {
				t.Errorf("placeOnAxis not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestAdjustViewportPositionIdempotent(t *testing.T) {
	v := newFixedView(t, 800, 600, 1000, 300)
	for _, start := range []Viewport{
		{X: -1e4, Y: 1e4, Width: 1000, Height: 300},
		{X: 3, Y: -7, Width: 1000, Height: 300},
		{X: 999, Y: 299, Width: 1000, Height: 300},
	} {
		v.viewport = start
		v.adjustViewportPosition()
		once := v.viewport
		v.adjustViewportPosition()
		if v.viewport != once {
			t.Errorf("from %v: once %v, twice %v", start, once, v.viewport)
		}
		if once.X != -100 {
			t.Errorf("from %v: X = %v, want -100", start, once.X)
		}
		if once.Y < 0 || once.Y > 300 {
			t.Errorf("from %v: Y = %v outside [0,300]", start, once.Y)
		}
	}
}

func TestUpdateViewportSizePanicsOnBadScale(t *testing.T) {
	v := NewWithImage(image.Rect(0, 0, 10, 10))
	v.scale = 0
	defer func() {
		if recover() == nil {
			t.Error("updateViewportSize with zero scale did not panic")
		}
	}()
	v.updateViewportSize(Size{Width: 10, Height: 10})
}

func TestSizeString(t *testing.T) {
	if got := (Size{800, 600}).String(); got != "800x600" {
		t.Errorf("String() = %q, want %q", got, "800x600")
	}
	if got := (Viewport{X: -100, Y: 2.5, Width: 1000, Height: 300}).String(); got != "(-100,2.5 1000x300)" {
		t.Errorf("String() = %q", got)
	}
}
