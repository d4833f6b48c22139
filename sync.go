package imageview

// HAdjustment returns the horizontal adjustment.
func (v *View) HAdjustment() *Adjustment {
	return v.hadjustment
}

// VAdjustment returns the vertical adjustment.
func (v *View) VAdjustment() *Adjustment {
	return v.vadjustment
}

// SetHAdjustment makes the View publish its horizontal range into a and
// follow a's value. The previous adjustment is disconnected. A nil or
// already attached adjustment is ignored.
func (v *View) SetHAdjustment(a *Adjustment) {
	v.setAdjustment(&v.hadjustment, &v.hhandler, a)
}

// SetVAdjustment makes the View publish its vertical range into a and
// follow a's value. The previous adjustment is disconnected. A nil or
// already attached adjustment is ignored.
func (v *View) SetVAdjustment(a *Adjustment) {
	v.setAdjustment(&v.vadjustment, &v.vhandler, a)
}

func (v *View) setAdjustment(slot **Adjustment, handler *HandlerID, a *Adjustment) {
	if a == nil || *slot == a {
		return
	}
	if old := *slot; old != nil {
		if !old.Disconnect(*handler) {
			panic("imageview: previous adjustment lost its value-changed handler")
		}
	}
	*slot = a
	*handler = a.OnValueChanged(v.onAdjustmentValueChanged)
	Logger().Debug("imageview: adjustment attached", "handlers", a.HandlerCount())

	v.onAdjustmentValueChanged(a)

	// The new adjustment still carries the host's range; publish ours.
	if v.hadjustment != nil && v.vadjustment != nil {
		v.resetAdjustments()
	}
}

// resetAdjustments publishes the viewport and image size into both
// adjustments. Without an image both collapse to an empty range.
//
// Writing the value notifies onAdjustmentValueChanged, which only reads
// back what was written here and never calls resetAdjustments itself.
func (v *View) resetAdjustments() {
	if v.hadjustment == nil || v.vadjustment == nil {
		panic("imageview: adjustments must be attached before the view changes geometry")
	}

	var value, upper, pageSize [2]float64
	if v.image != nil {
		size := v.NaturalSize()
		value[0] = clamp(v.viewport.X, 0, float64(size.Width)-v.viewport.Width)
		value[1] = clamp(v.viewport.Y, 0, float64(size.Height)-v.viewport.Height)
		upper[0] = float64(size.Width)
		upper[1] = float64(size.Height)
		pageSize[0] = v.viewport.Width
		pageSize[1] = v.viewport.Height
	}

	for i, a := range [2]*Adjustment{v.hadjustment, v.vadjustment} {
		a.Configure(value[i], a.Lower(), upper[i], a.StepIncrement(), pageSize[i]*0.5, pageSize[i])
	}
}

// onAdjustmentValueChanged moves the viewport to follow an adjustment,
// whether the host scrolled it or resetAdjustments just wrote it.
func (v *View) onAdjustmentValueChanged(a *Adjustment) {
	switch a {
	case v.hadjustment:
		v.viewport.X = a.Value()
	case v.vadjustment:
		v.viewport.Y = a.Value()
	default:
		return
	}
	v.adjustViewportPosition()
	v.queueDraw()
}
