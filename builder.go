package gui

import (
	"errors"
	"fmt"
)

// Construction errors. Builders wrap these so callers can use errors.Is.
var (
	ErrMissingField   = errors.New("missing mandatory field")
	ErrInvalidRange   = errors.New("invalid range")
	ErrNoOptions      = errors.New("dropdown has no options")
	ErrDuplicatePanel = errors.New("duplicate panel name")
	ErrUnknownLayout  = errors.New("unknown keyboard layout")
)

// ButtonBuilder declares a Button. Rect and Callback are mandatory.
//
//	btn, err := gui.NewButton[int]().Rect(20, 20, 60, 30).Label("OK").Callback(7).Build()
type ButtonBuilder[T any] struct {
	rect     *Rect
	label    string
	color    uint32
	callback T
	hasCB    bool
}

// NewButton starts a Button declaration.
func NewButton[T any]() *ButtonBuilder[T] {
	return &ButtonBuilder[T]{color: DefaultButtonColor}
}

// Rect sets the panel-relative rectangle.
func (b *ButtonBuilder[T]) Rect(x, y, w, h float32) *ButtonBuilder[T] {
	r := R(x, y, w, h)
	b.rect = &r
	return b
}

// Label sets the caption.
func (b *ButtonBuilder[T]) Label(s string) *ButtonBuilder[T] {
	b.label = s
	return b
}

// Color sets the packed fill color.
func (b *ButtonBuilder[T]) Color(c uint32) *ButtonBuilder[T] {
	b.color = c
	return b
}

// Callback sets the payload returned on click.
func (b *ButtonBuilder[T]) Callback(v T) *ButtonBuilder[T] {
	b.callback = v
	b.hasCB = true
	return b
}

// Build validates the declaration.
func (b *ButtonBuilder[T]) Build() (*Button[T], error) {
	if b.rect == nil {
		return nil, fmt.Errorf("button %q: %w: rect", b.label, ErrMissingField)
	}
	if !b.hasCB {
		return nil, fmt.Errorf("button %q: %w: callback", b.label, ErrMissingField)
	}
	return &Button[T]{
		rect:     *b.rect,
		label:    b.label,
		color:    b.color,
		callback: b.callback,
	}, nil
}

// TextFieldBuilder declares a TextField. Rect is mandatory.
type TextFieldBuilder struct {
	tf      TextField
	hasRect bool
}

// NewTextField starts a TextField declaration.
func NewTextField() *TextFieldBuilder {
	return &TextFieldBuilder{tf: TextField{align: AlignLeft(5)}}
}

// Rect sets the panel-relative rectangle.
func (b *TextFieldBuilder) Rect(x, y, w, h float32) *TextFieldBuilder {
	b.tf.rect = R(x, y, w, h)
	b.hasRect = true
	return b
}

// Label sets the caption drawn above the field.
func (b *TextFieldBuilder) Label(s string) *TextFieldBuilder {
	b.tf.label = s
	return b
}

// Content sets the initial text.
func (b *TextFieldBuilder) Content(s string) *TextFieldBuilder {
	b.tf.content = s
	return b
}

// Clickable lets the field receive focus and typed text.
func (b *TextFieldBuilder) Clickable() *TextFieldBuilder {
	b.tf.clickable = true
	return b
}

// Transparent suppresses the background fill.
func (b *TextFieldBuilder) Transparent() *TextFieldBuilder {
	b.tf.transparent = true
	return b
}

// Password masks the rendered content.
func (b *TextFieldBuilder) Password() *TextFieldBuilder {
	b.tf.password = true
	return b
}

// Align sets the text alignment.
func (b *TextFieldBuilder) Align(a TextAlign) *TextFieldBuilder {
	b.tf.align = a
	return b
}

// Build validates the declaration.
func (b *TextFieldBuilder) Build() (*TextField, error) {
	if !b.hasRect {
		return nil, fmt.Errorf("text field %q: %w: rect", b.tf.label, ErrMissingField)
	}
	tf := b.tf
	return &tf, nil
}

// FaderBuilder declares a Fader. Position and Length are mandatory.
type FaderBuilder struct {
	f       Fader
	initial *float32
	hasPos  bool
}

// NewFader starts a Fader declaration with range [0,1].
func NewFader() *FaderBuilder {
	return &FaderBuilder{f: Fader{min: 0, max: 1}}
}

// Position sets the anchor: the left end of a horizontal fader or the bottom
// end of a vertical one.
func (b *FaderBuilder) Position(x, y float32) *FaderBuilder {
	b.f.pos = Vec2{X: x, Y: y}
	b.hasPos = true
	return b
}

// Length sets the travel length in pixels.
func (b *FaderBuilder) Length(l float32) *FaderBuilder {
	b.f.length = l
	return b
}

// Vertical switches the travel axis.
func (b *FaderBuilder) Vertical() *FaderBuilder {
	b.f.orientation = Vertical
	return b
}

// Range sets the external value range.
func (b *FaderBuilder) Range(lo, hi float32) *FaderBuilder {
	b.f.min, b.f.max = lo, hi
	return b
}

// Initial sets the starting value in the external range.
func (b *FaderBuilder) Initial(v float32) *FaderBuilder {
	b.initial = &v
	return b
}

// Build validates the declaration.
func (b *FaderBuilder) Build() (*Fader, error) {
	if !b.hasPos {
		return nil, fmt.Errorf("fader: %w: position", ErrMissingField)
	}
	if b.f.length <= 0 {
		return nil, fmt.Errorf("fader: %w: length", ErrMissingField)
	}
	if b.f.max <= b.f.min {
		return nil, fmt.Errorf("fader: %w: [%g, %g]", ErrInvalidRange, b.f.min, b.f.max)
	}
	f := b.f
	if b.initial != nil {
		f.SetValue(*b.initial)
	}
	return &f, nil
}

// DropdownBuilder declares a Dropdown. Position and Options are mandatory.
type DropdownBuilder struct {
	d      Dropdown
	hasPos bool
}

// NewDropdown starts a Dropdown declaration.
func NewDropdown() *DropdownBuilder {
	return &DropdownBuilder{d: Dropdown{rect: Rect{W: DefaultDropdownWidth, H: DefaultDropdownRowHeight}}}
}

// Position sets the top-left corner of the closed button.
func (b *DropdownBuilder) Position(x, y float32) *DropdownBuilder {
	b.d.rect.X, b.d.rect.Y = x, y
	b.hasPos = true
	return b
}

// Width sets the button and list width.
func (b *DropdownBuilder) Width(w float32) *DropdownBuilder {
	b.d.rect.W = maxf(w, 0)
	return b
}

// RowHeight sets the height shared by the button and every option row.
func (b *DropdownBuilder) RowHeight(h float32) *DropdownBuilder {
	b.d.rect.H = maxf(h, 0)
	return b
}

// Options sets the option labels.
func (b *DropdownBuilder) Options(opts ...string) *DropdownBuilder {
	b.d.options = append([]string(nil), opts...)
	return b
}

// Build validates the declaration.
func (b *DropdownBuilder) Build() (*Dropdown, error) {
	if !b.hasPos {
		return nil, fmt.Errorf("dropdown: %w: position", ErrMissingField)
	}
	if len(b.d.options) == 0 {
		return nil, fmt.Errorf("dropdown: %w", ErrNoOptions)
	}
	d := b.d
	return &d, nil
}
