package gui

// FaderStep is the arrow-key increment in external (range) units.
const FaderStep float32 = 10

const (
	faderThickness float32 = 20
	faderKnob      float32 = 10
)

// Fader is a linear slider. The value is stored normalized to [0,1] and
// mapped to [min,max] on the way out.
type Fader struct {
	pos         Vec2 // anchor: left end (horizontal) or bottom end (vertical)
	length      float32
	orientation Orientation
	value       float32
	min, max    float32
	hovered     bool
}

// Bounds implements Widget. It is the knob at the current value.
func (f *Fader) Bounds() Rect {
	lerp := f.value * f.length
	if f.orientation == Vertical {
		return Rect{X: f.pos.X - faderThickness/2, Y: f.pos.Y - lerp - faderKnob/2, W: faderThickness, H: faderKnob}
	}
	return Rect{X: f.pos.X + lerp - faderKnob/2, Y: f.pos.Y - faderThickness/2, W: faderKnob, H: faderThickness}
}

// VisualBounds implements Widget. It covers the knob's full travel.
func (f *Fader) VisualBounds() Rect {
	if f.orientation == Vertical {
		return Rect{X: f.pos.X - faderThickness/2, Y: f.pos.Y - f.length, W: faderThickness, H: f.length}
	}
	return Rect{X: f.pos.X, Y: f.pos.Y - faderThickness/2, W: f.length, H: faderThickness}
}

// Shift implements Widget.
func (f *Fader) Shift(dx, dy float32) { f.pos = f.pos.Add(Vec2{X: dx, Y: dy}) }

// Value returns the value in the external range.
func (f *Fader) Value() float32 {
	return f.min + f.value*(f.max-f.min)
}

// Normalized returns the internal [0,1] value.
func (f *Fader) Normalized() float32 { return f.value }

// SetValue sets the value from the external range, clamped to [min,max].
func (f *Fader) SetValue(v float32) {
	f.value = clampf((v-f.min)/(f.max-f.min), 0, 1)
}

// Range returns the external (min, max).
func (f *Fader) Range() (float32, float32) { return f.min, f.max }

// Orientation returns the travel axis.
func (f *Fader) Orientation() Orientation { return f.orientation }

// Anchor returns the start of the travel axis and its length.
func (f *Fader) Anchor() (Vec2, float32) { return f.pos, f.length }

// Drag moves the knob to the projection of an absolute pointer position.
// Vertical faders grow upward while screen y grows downward.
func (f *Fader) Drag(x, y float32) {
	var v float32
	if f.orientation == Vertical {
		v = (f.pos.Y - y) / f.length
	} else {
		v = (x - f.pos.X) / f.length
	}
	f.value = clampf(v, 0, 1)
}

// Increment steps up by FaderStep. At the ceiling it does nothing.
func (f *Fader) Increment() {
	step := f.step()
	if f.value+step <= 1 {
		f.value += step
	}
}

// Decrement steps down by FaderStep. At the floor it does nothing.
func (f *Fader) Decrement() {
	step := f.step()
	if f.value-step >= 0 {
		f.value -= step
	}
}

func (f *Fader) step() float32 {
	return FaderStep / (f.max - f.min)
}

// SetHovered sets the hover flag.
func (f *Fader) SetHovered(v bool) { f.hovered = v }

// IsHovered reports the hover flag.
func (f *Fader) IsHovered() bool { return f.hovered }
