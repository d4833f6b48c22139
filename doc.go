// Package imageview provides the viewport and scale engine of a scrollable,
// zoomable image surface.
//
// # Overview
//
// A [View] tracks four things: the attached image, the on-screen size the
// host allocated, a scale factor, and the viewport, which is the part of
// the image currently visible, in image pixels. It keeps two scrollbar
// [Adjustment] values in step with the viewport, in both directions:
// geometry changes are published into the adjustments, and scrolling an
// adjustment moves the viewport.
//
// The package draws nothing and decodes nothing. Hosts supply events and
// read back state:
//
//	v := imageview.New(imageview.WithRedrawFunc(win.Invalidate))
//	v.SetImage(img)                        // any image.Image
//	v.Allocate(imageview.Size{Width: 400, Height: 300})
//
//	// Painter
//	dc.Scale(v.Scale(), v.Scale())
//	dc.Translate(-v.Viewport().X, -v.Viewport().Y)
//
// # Scale modes
//
// A new View is in fitting mode: every Allocate derives the scale anew so
// the whole image is visible. SetScale and SetScaleAtPoint switch to fixed
// mode, where the scale only changes on request; SetScaleToFit switches
// back.
//
// # Coordinates
//
// Viewport coordinates are image pixels. Along an axis where the viewport
// is at least as large as the image, the image is centered and the
// viewport origin is negative. Elsewhere the viewport stays inside the
// image. Adjustments use the scrollbar range [0, image size - page size];
// on a centered axis they report 0.
//
// # Concurrency
//
// A View belongs to one goroutine. Use [Serial] to drive it from several.
package imageview
