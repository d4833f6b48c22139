package imageview

import (
	"fmt"
	"image"
)

// Image is the raster a View displays. Only its bounds are consulted;
// the View never reads pixels.
//
// Every image.Image satisfies Image, and so does image.Rectangle, which
// lets a host attach a dimensions-only placeholder.
type Image interface {
	Bounds() image.Rectangle
}

// Size is an integral on-screen or image size.
type Size struct {
	Width, Height int
}

// String returns a string representation like "800x600".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Viewport is the visible sub-rectangle of the image, in image pixels.
// X and Y are negative when the viewport is larger than the image and the
// image is centered inside it.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// String returns a string representation of the viewport.
func (vp Viewport) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", vp.X, vp.Y, vp.Width, vp.Height)
}

// MinimumSize returns the on-screen size needed to show the whole image at
// the current scale, truncated toward zero. It is zero without an image.
//
// For example an 800x600 image needs 400x300 pixels at scale 0.5.
func (v *View) MinimumSize() Size {
	if v.image == nil {
		return Size{}
	}
	return Size{
		Width:  int(v.scale * float64(v.imageSize.Width)),
		Height: int(v.scale * float64(v.imageSize.Height)),
	}
}

// NaturalSize returns the on-screen size needed to show the image unscaled.
// It is zero without an image.
func (v *View) NaturalSize() Size {
	if v.image == nil {
		return Size{}
	}
	return v.imageSize
}

// PreferredWidth returns the minimum and natural widths for layout
// negotiation.
func (v *View) PreferredWidth() (minimum, natural int) {
	return v.MinimumSize().Width, v.NaturalSize().Width
}

// PreferredHeight returns the minimum and natural heights for layout
// negotiation.
func (v *View) PreferredHeight() (minimum, natural int) {
	return v.MinimumSize().Height, v.NaturalSize().Height
}

// Viewport returns the visible image rectangle.
func (v *View) Viewport() Viewport {
	return v.viewport
}

// AllocatedSize returns the size last passed to Allocate.
func (v *View) AllocatedSize() Size {
	return v.allocation
}

// updateViewportSize derives the viewport size from an allocation. The
// result is always recomputed from the allocation, never adjusted
// incrementally, so repeated calls do not drift.
func (v *View) updateViewportSize(allocation Size) {
	if v.scale <= 0 {
		panic(fmt.Sprintf("imageview: viewport size requested with scale %g", v.scale))
	}
	v.viewport.Width = float64(allocation.Width) / v.scale
	v.viewport.Height = float64(allocation.Height) / v.scale
}

// adjustViewportPosition centers the image on every axis where the
// viewport covers it, and keeps the viewport inside the image elsewhere.
func (v *View) adjustViewportPosition() {
	size := v.NaturalSize()
	v.viewport.X = placeOnAxis(v.viewport.X, v.viewport.Width, float64(size.Width))
	v.viewport.Y = placeOnAxis(v.viewport.Y, v.viewport.Height, float64(size.Height))
}

// placeOnAxis returns the viewport origin on one axis for a viewport of
// length extent over an image of length length.
func placeOnAxis(pos, extent, length float64) float64 {
	if extent >= length {
		return (length - extent) / 2
	}
	return clamp(pos, 0, length-extent)
}

func clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}
