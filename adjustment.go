package imageview

// DefaultStepIncrement is the step increment of adjustments created by New
// when the host does not supply its own.
const DefaultStepIncrement = 20.0

// HandlerID identifies a value-changed handler connected to an Adjustment.
// The zero HandlerID is never returned by OnValueChanged.
type HandlerID uint64

// Adjustment is a scrollbar range descriptor: a value inside
// [Lower, Upper-PageSize] plus the increments a scrollbar uses for
// stepping and paging.
//
// The host owns an Adjustment's lifetime and may move its value (for
// example when the user drags a scrollbar). A View owns every other field
// and rewrites them whenever its viewport or image changes.
//
// Value-changed handlers run synchronously, in connection order, before
// the call that changed the value returns. Adjustment is not safe for
// concurrent use.
type Adjustment struct {
	value         float64
	lower         float64
	upper         float64
	stepIncrement float64
	pageIncrement float64
	pageSize      float64

	nextID   HandlerID
	handlers []adjustmentHandler
}

type adjustmentHandler struct {
	id HandlerID
	fn func(*Adjustment)
}

// NewAdjustment creates an adjustment with the given fields.
// The value is clamped into the valid range.
func NewAdjustment(value, lower, upper, stepIncrement, pageIncrement, pageSize float64) *Adjustment {
	a := &Adjustment{
		lower:         lower,
		upper:         upper,
		stepIncrement: stepIncrement,
		pageIncrement: pageIncrement,
		pageSize:      pageSize,
	}
	a.value = a.clamp(value)
	return a
}

// Value returns the current value.
func (a *Adjustment) Value() float64 { return a.value }

// Lower returns the minimum value.
func (a *Adjustment) Lower() float64 { return a.lower }

// Upper returns the maximum extent of the range.
func (a *Adjustment) Upper() float64 { return a.upper }

// StepIncrement returns the step increment.
func (a *Adjustment) StepIncrement() float64 { return a.stepIncrement }

// PageIncrement returns the page increment.
func (a *Adjustment) PageIncrement() float64 { return a.pageIncrement }

// PageSize returns the size of the visible page.
func (a *Adjustment) PageSize() float64 { return a.pageSize }

// SetValue moves the value, clamped into [Lower, max(Lower, Upper-PageSize)].
// Handlers are notified only if the stored value actually changed.
func (a *Adjustment) SetValue(value float64) {
	value = a.clamp(value)
	if value == a.value {
		return
	}
	a.value = value
	a.emitValueChanged()
}

// Configure rewrites all fields at once. The value is clamped against the
// new range, and handlers are notified if it differs from the old value.
func (a *Adjustment) Configure(value, lower, upper, stepIncrement, pageIncrement, pageSize float64) {
	old := a.value

	a.lower = lower
	a.upper = upper
	a.stepIncrement = stepIncrement
	a.pageIncrement = pageIncrement
	a.pageSize = pageSize
	a.value = a.clamp(value)

	if a.value != old {
		a.emitValueChanged()
	}
}

// OnValueChanged connects fn to the value-changed notification and returns
// an ID that can be passed to Disconnect.
func (a *Adjustment) OnValueChanged(fn func(*Adjustment)) HandlerID {
	a.nextID++
	a.handlers = append(a.handlers, adjustmentHandler{id: a.nextID, fn: fn})
	return a.nextID
}

// Disconnect removes the handler with the given ID.
// It reports whether a handler was removed.
func (a *Adjustment) Disconnect(id HandlerID) bool {
	for i, h := range a.handlers {
		if h.id == id {
			a.handlers = append(a.handlers[:i], a.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// HandlerCount returns the number of connected value-changed handlers.
func (a *Adjustment) HandlerCount() int {
	return len(a.handlers)
}

func (a *Adjustment) clamp(value float64) float64 {
	return clamp(value, a.lower, max(a.lower, a.upper-a.pageSize))
}

func (a *Adjustment) emitValueChanged() {
	// Handlers may disconnect while running; iterate over a snapshot.
	handlers := make([]adjustmentHandler, len(a.handlers))
	copy(handlers, a.handlers)
	for _, h := range handlers {
		h.fn(a)
	}
}
