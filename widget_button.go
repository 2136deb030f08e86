package gui

// DefaultButtonColor is used when a button is built without a color.
var DefaultButtonColor = RGB(85, 85, 85)

// Button is a clickable rectangle carrying a host-defined payload.
type Button[T any] struct {
	rect     Rect
	label    string
	color    uint32
	callback T
	hovered  bool
	pressed  bool
}

// Bounds implements Widget.
func (b *Button[T]) Bounds() Rect { return b.rect }

// VisualBounds implements Widget.
func (b *Button[T]) VisualBounds() Rect { return b.rect }

// Shift implements Widget.
func (b *Button[T]) Shift(dx, dy float32) { b.rect = b.rect.Translate(dx, dy) }

// Click returns the stored payload. It does not check hover or press state;
// callers decide whether the click is meaningful.
func (b *Button[T]) Click() T { return b.callback }

// Label returns the button text.
func (b *Button[T]) Label() string { return b.label }

// SetLabel replaces the button text.
func (b *Button[T]) SetLabel(s string) { b.label = s }

// Color returns the packed fill color.
func (b *Button[T]) Color() uint32 { return b.color }

// SetHovered sets the hover flag.
func (b *Button[T]) SetHovered(v bool) { b.hovered = v }

// IsHovered reports the hover flag.
func (b *Button[T]) IsHovered() bool { return b.hovered }

// SetPressed sets the pressed flag.
func (b *Button[T]) SetPressed(v bool) { b.pressed = v }

// IsPressed reports the pressed flag.
func (b *Button[T]) IsPressed() bool { return b.pressed }
