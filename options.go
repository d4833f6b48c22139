package imageview

// Option configures a View during creation.
//
// Example:
//
//	// Fit-to-window view with default adjustments
//	v := imageview.New()
//
//	// Host-owned scrollbars and a redraw hook
//	v := imageview.New(
//	    imageview.WithHAdjustment(hadj),
//	    imageview.WithVAdjustment(vadj),
//	    imageview.WithRedrawFunc(window.Invalidate),
//	)
type Option func(*viewOptions)

// viewOptions holds optional configuration for View creation.
type viewOptions struct {
	hadjustment   *Adjustment
	vadjustment   *Adjustment
	image         Image
	scale         float64
	redraw        func()
	hpolicy       ScrollPolicy
	vpolicy       ScrollPolicy
	stepIncrement float64
}

// defaultOptions returns the default view options.
func defaultOptions() viewOptions {
	return viewOptions{
		hpolicy:       ScrollMinimum,
		vpolicy:       ScrollMinimum,
		stepIncrement: DefaultStepIncrement,
	}
}

// WithHAdjustment sets the horizontal adjustment the View publishes its
// horizontal range into. Without it, New creates one.
func WithHAdjustment(a *Adjustment) Option {
	return func(o *viewOptions) {
		o.hadjustment = a
	}
}

// WithVAdjustment sets the vertical adjustment the View publishes its
// vertical range into. Without it, New creates one.
func WithVAdjustment(a *Adjustment) Option {
	return func(o *viewOptions) {
		o.vadjustment = a
	}
}

// WithImage attaches an image at creation time.
func WithImage(img Image) Option {
	return func(o *viewOptions) {
		o.image = img
	}
}

// WithScale starts the View in fixed-scale mode at the given scale.
// Non-positive values are ignored and the View starts in fitting mode.
func WithScale(scale float64) Option {
	return func(o *viewOptions) {
		o.scale = scale
	}
}

// WithRedrawFunc sets the function the View calls whenever the visible
// content changed and the host should repaint. It must not block.
func WithRedrawFunc(fn func()) Option {
	return func(o *viewOptions) {
		o.redraw = fn
	}
}

// WithScrollPolicy sets the horizontal and vertical scroll policies.
func WithScrollPolicy(h, v ScrollPolicy) Option {
	return func(o *viewOptions) {
		o.hpolicy = h
		o.vpolicy = v
	}
}

// WithStepIncrement sets the step increment of the adjustments New
// creates. It has no effect on adjustments supplied by the host.
func WithStepIncrement(step float64) Option {
	return func(o *viewOptions) {
		o.stepIncrement = step
	}
}
