package imageview

import "github.com/gogpu/gg"

// Transform returns the matrix a painter applies before drawing the whole
// image at the origin: scale by Scale, then translate by the negated
// viewport origin.
//
//	dc.Push()
//	m := v.Transform()
//	dc.Scale(m.A, m.E)
//	dc.Translate(-v.Viewport().X, -v.Viewport().Y)
//	dc.DrawImage(img, 0, 0)
//	dc.Pop()
func (v *View) Transform() gg.Matrix {
	return gg.Scale(v.scale, v.scale).Multiply(gg.Translate(-v.viewport.X, -v.viewport.Y))
}

// ImageToScreen maps a point in image pixels to screen pixels.
func (v *View) ImageToScreen(p gg.Point) gg.Point {
	return v.Transform().TransformPoint(p)
}

// ScreenToImage maps a point in screen pixels to image pixels.
// It is the inverse of ImageToScreen.
func (v *View) ScreenToImage(p gg.Point) gg.Point {
	return p.Div(v.scale).Add(gg.Pt(v.viewport.X, v.viewport.Y))
}
