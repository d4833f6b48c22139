package imageview

import "math"

// Scale returns the ratio of screen pixels to image pixels.
func (v *View) Scale() float64 {
	return v.scale
}

// IsFitting reports whether the scale follows the allocation so the whole
// image stays visible.
func (v *View) IsFitting() bool {
	return v.fitting
}

// SetScale switches to fixed-scale mode at the given scale. Non-positive
// or infinite scales are ignored and leave the mode unchanged.
func (v *View) SetScale(scale float64) {
	if !validScale(scale) {
		Logger().Warn("imageview: ignoring non-positive scale", "scale", scale)
		return
	}
	v.fitting = false
	v.applyScale(scale)
}

// SetScaleToFit switches to fitting mode and picks the largest scale at
// which the whole image fits the allocation. Without an image, or with an
// image that has no area, only the mode changes.
func (v *View) SetScaleToFit() {
	v.fitting = true
	v.fit()
}

// SetScaleAtPoint switches to fixed-scale mode at the given scale while
// keeping the image point under the screen point (x, y) in place, as when
// zooming around the cursor. Non-positive or infinite scales are ignored.
//
// Holding screen point p fixed while the scale goes from s0 to s1 moves
// the viewport origin by p/s0 - p/s1 in image space.
func (v *View) SetScaleAtPoint(scale, x, y float64) {
	if !validScale(scale) {
		Logger().Warn("imageview: ignoring non-positive scale", "scale", scale)
		return
	}

	oldX, oldY := x/v.scale, y/v.scale
	newX, newY := x/scale, y/scale

	v.fitting = false
	v.scale = scale
	v.updateViewportSize(v.allocation)
	v.viewport.X += oldX - newX
	v.viewport.Y += oldY - newY

	v.adjustViewportPosition()
	v.resetAdjustments()
	v.queueDraw()
	Logger().Debug("imageview: scale changed at point", "scale", scale, "x", x, "y", y)
}

// fit derives the scale from the allocation and the image. It reports
// whether a scale was applied.
func (v *View) fit() bool {
	if v.image == nil {
		return false
	}
	if v.imageSize.Width == 0 || v.imageSize.Height == 0 {
		Logger().Warn("imageview: cannot fit image without area", "size", v.imageSize)
		return false
	}

	ratioX := float64(v.allocation.Width) / float64(v.imageSize.Width)
	ratioY := float64(v.allocation.Height) / float64(v.imageSize.Height)
	scale := math.Min(ratioX, ratioY)
	if !validScale(scale) {
		return false
	}
	v.applyScale(scale)
	return true
}

// applyScale sets the scale and brings the viewport, the adjustments and
// the screen in line with it.
func (v *View) applyScale(scale float64) {
	v.scale = scale
	v.updateViewportSize(v.allocation)
	v.adjustViewportPosition()
	v.resetAdjustments()
	v.queueDraw()
	Logger().Debug("imageview: scale changed", "scale", scale, "fitting", v.fitting)
}

func validScale(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 1)
}
