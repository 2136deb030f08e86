package gui

import "fmt"

// WidgetKind tags the variant of a widget. The declaration order is also the
// hit-test priority inside a panel: when widgets overlap, the earlier kind wins.
type WidgetKind uint8

const (
	KindButton WidgetKind = iota
	KindTextField
	KindFader
	KindDropdown
)

// String returns a human-readable name for the kind.
func (k WidgetKind) String() string {
	switch k {
	case KindButton:
		return "Button"
	case KindTextField:
		return "TextField"
	case KindFader:
		return "Fader"
	case KindDropdown:
		return "Dropdown"
	default:
		return "Unknown"
	}
}

// WidgetRef identifies one widget across the whole GUI.
// Index is the position within the panel's slice for that kind.
type WidgetRef struct {
	Panel string
	Kind  WidgetKind
	Index int
}

func (r WidgetRef) String() string {
	return fmt.Sprintf("%s/%s[%d]", r.Panel, r.Kind, r.Index)
}

// Widget is the geometry capability shared by every widget variant.
type Widget interface {
	// Bounds returns the authoritative interactive region.
	Bounds() Rect

	// VisualBounds returns the hit-testable region. It equals Bounds unless
	// the widget draws outside its resting footprint (a label above a text
	// field, an open dropdown list, a fader's full travel).
	VisualBounds() Rect

	// Shift translates stored geometry. Panels call it once at construction
	// to move panel-relative coordinates into window space.
	Shift(dx, dy float32)
}

// Direction is an arrow-key direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Orientation is the travel axis of a fader.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// TextAlign positions text inside a text field.
type TextAlign struct {
	Mode    AlignMode
	Padding float32
}

// AlignMode selects the anchor edge for TextAlign.
type AlignMode uint8

const (
	AlignModeLeft AlignMode = iota
	AlignModeCenter
	AlignModeRight
)

// AlignLeft anchors text to the left edge, pad pixels in.
func AlignLeft(pad float32) TextAlign { return TextAlign{Mode: AlignModeLeft, Padding: pad} }

// AlignCenter centers text horizontally.
func AlignCenter() TextAlign { return TextAlign{Mode: AlignModeCenter} }

// AlignRight anchors text to the right edge, pad pixels in.
func AlignRight(pad float32) TextAlign { return TextAlign{Mode: AlignModeRight, Padding: pad} }
