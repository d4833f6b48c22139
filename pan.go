package imageview

// Translate pans the viewport by (dx, dy) image pixels. It does nothing
// without an image.
//
// Along an axis where the image is larger than the viewport the new
// position is clamped into the image and pushed into that axis's
// adjustment. Along an axis where the viewport covers the image, the image
// stays centered and the delta is dropped.
func (v *View) Translate(dx, dy float64) {
	if v.image == nil {
		return
	}
	size := v.NaturalSize()

	if v.viewport.Width < float64(size.Width) {
		v.viewport.X = clamp(v.viewport.X+dx, 0, float64(size.Width)-v.viewport.Width)
		v.hadjustment.SetValue(v.viewport.X)
	} else {
		v.adjustViewportPosition()
	}

	if v.viewport.Height < float64(size.Height) {
		v.viewport.Y = clamp(v.viewport.Y+dy, 0, float64(size.Height)-v.viewport.Height)
		v.vadjustment.SetValue(v.viewport.Y)
	} else {
		v.adjustViewportPosition()
	}

	v.queueDraw()
}
