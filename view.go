package imageview

import "fmt"

// ScrollPolicy tells a scroll container how the View wants to be sized
// along an axis. The View stores it and reports it back; it has no
// geometric effect on the View itself.
type ScrollPolicy int

const (
	// ScrollMinimum asks the container to size the View to its minimum size.
	ScrollMinimum ScrollPolicy = iota
	// ScrollNatural asks the container to size the View to its natural size.
	ScrollNatural
)

// String returns the policy name.
func (p ScrollPolicy) String() string {
	switch p {
	case ScrollMinimum:
		return "minimum"
	case ScrollNatural:
		return "natural"
	default:
		return fmt.Sprintf("ScrollPolicy(%d)", int(p))
	}
}

// View is a scrollable, zoomable image surface. It keeps the viewport (the
// visible part of the image), the scale and two scrollbar adjustments
// consistent with each other whenever the allocation, the image, the scale
// or the scroll position changes.
//
// A View is driven by its host: the layout system calls Allocate, the
// image source calls SetImage, a scroll container supplies the adjustments,
// and the painter reads Scale and Viewport (or Transform) to draw.
//
// View is not safe for concurrent use. All methods, and the value-changed
// notifications of its adjustments, must run on one goroutine. Hosts that
// drive a View from several goroutines wrap it in a Serial.
type View struct {
	image     Image
	imageSize Size

	allocation Size
	viewport   Viewport
	scale      float64
	fitting    bool

	hadjustment *Adjustment
	vadjustment *Adjustment
	hhandler    HandlerID
	vhandler    HandlerID

	hpolicy ScrollPolicy
	vpolicy ScrollPolicy

	redraw func()
}

// New creates a View with scale 1 in fitting mode, an empty viewport and
// no image.
//
// Adjustments not supplied with WithHAdjustment or WithVAdjustment are
// created with a step increment of DefaultStepIncrement.
func New(opts ...Option) *View {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		scale:   1,
		fitting: true,
		hpolicy: o.hpolicy,
		vpolicy: o.vpolicy,
		redraw:  o.redraw,
	}
	if validScale(o.scale) {
		v.scale = o.scale
		v.fitting = false
	}

	hadj := o.hadjustment
	if hadj == nil {
		hadj = NewAdjustment(0, 0, 0, o.stepIncrement, 0, 0)
	}
	vadj := o.vadjustment
	if vadj == nil {
		vadj = NewAdjustment(0, 0, 0, o.stepIncrement, 0, 0)
	}
	v.SetHAdjustment(hadj)
	v.SetVAdjustment(vadj)

	if o.image != nil {
		v.SetImage(o.image)
	}
	return v
}

// NewWithImage creates a View displaying img.
func NewWithImage(img Image, opts ...Option) *View {
	return New(append(opts, WithImage(img))...)
}

// Image returns the attached image, or nil.
func (v *View) Image() Image {
	return v.image
}

// SetImage replaces the displayed image. Pass nil to detach.
//
// Scale and fitting mode are left alone; the viewport position and both
// adjustments are resynchronized immediately. A host that wants fitting
// mode to pick up the new image dimensions calls SetScaleToFit or
// Allocate afterwards.
func (v *View) SetImage(img Image) {
	v.image = img
	v.imageSize = Size{}
	if img != nil {
		b := img.Bounds()
		v.imageSize = Size{Width: b.Dx(), Height: b.Dy()}
	}
	Logger().Debug("imageview: image replaced", "size", v.imageSize, "attached", img != nil)

	v.adjustViewportPosition()
	v.resetAdjustments()
	v.queueDraw()
}

// Allocate tells the View how many on-screen pixels it may draw into.
// Negative dimensions are treated as zero.
//
// In fitting mode the scale is derived again from the new size alone. In
// fixed mode only the viewport and the adjustments follow; the scale is
// untouched.
func (v *View) Allocate(size Size) {
	size.Width = max(size.Width, 0)
	size.Height = max(size.Height, 0)
	v.allocation = size
	v.updateViewportSize(size)

	if v.fitting && v.fit() {
		return
	}
	v.adjustViewportPosition()
	v.resetAdjustments()
	v.queueDraw()
}

// HScrollPolicy returns the horizontal scroll policy.
func (v *View) HScrollPolicy() ScrollPolicy { return v.hpolicy }

// SetHScrollPolicy sets the horizontal scroll policy.
func (v *View) SetHScrollPolicy(p ScrollPolicy) { v.hpolicy = p }

// VScrollPolicy returns the vertical scroll policy.
func (v *View) VScrollPolicy() ScrollPolicy { return v.vpolicy }

// SetVScrollPolicy sets the vertical scroll policy.
func (v *View) SetVScrollPolicy(p ScrollPolicy) { v.vpolicy = p }

// Close disconnects the View from its adjustments and drops the image.
// The View must not be used afterwards. Close is safe to call twice.
func (v *View) Close() {
	if v.hadjustment != nil {
		v.hadjustment.Disconnect(v.hhandler)
		v.hadjustment = nil
		v.hhandler = 0
	}
	if v.vadjustment != nil {
		v.vadjustment.Disconnect(v.vhandler)
		v.vadjustment = nil
		v.vhandler = 0
	}
	v.image = nil
	v.imageSize = Size{}
	v.redraw = nil
}

// queueDraw asks the host to repaint.
func (v *View) queueDraw() {
	if v.redraw != nil {
		v.redraw()
	}
}
