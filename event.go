package gui

import "fmt"

// InputKind tags a normalized input event produced by the Translator.
type InputKind uint8

const (
	InputNone InputKind = iota
	InputQuit
	// InputPanelChanged reports that the pointer entered a different panel
	// (or left every panel). Hover state is reset.
	InputPanelChanged
	// InputHover reports a new hover target. Moving straight from widget A to
	// widget B emits only Hover(B), never UnHover(A) first: consumers must
	// treat the hovered widget as a replaced reference, not a stack.
	InputHover
	InputUnHover
	InputClick
	InputClickBackground
	InputDrag
	InputPopChar
	InputTab
	InputShiftTab
	InputReturn
	InputEscape
	InputArrow
	InputText
	InputToggleDebug
)

var inputKindNames = [...]string{
	InputNone:            "None",
	InputQuit:            "Quit",
	InputPanelChanged:    "PanelChanged",
	InputHover:           "Hover",
	InputUnHover:         "UnHover",
	InputClick:           "Click",
	InputClickBackground: "ClickBackground",
	InputDrag:            "Drag",
	InputPopChar:         "PopChar",
	InputTab:             "Tab",
	InputShiftTab:        "ShiftTab",
	InputReturn:          "Return",
	InputEscape:          "Escape",
	InputArrow:           "Arrow",
	InputText:            "Text",
	InputToggleDebug:     "ToggleDebug",
}

func (k InputKind) String() string {
	if int(k) < len(inputKindNames) {
		return inputKindNames[k]
	}
	return "Unknown"
}

// InputEvent is one normalized event. Only the fields relevant to Kind are set.
type InputEvent struct {
	Kind   InputKind
	Widget WidgetRef // Hover, UnHover, Click, Drag
	X, Y   float32   // Hover, Drag: pointer position
	Text   string    // Text
	Dir    Direction // Arrow

	// PanelChanged: the panel left and the panel entered ("" = none).
	PrevPanel string
	Panel     string
}

func (e InputEvent) String() string {
	switch e.Kind {
	case InputHover, InputDrag:
		return fmt.Sprintf("%s(%s, %.0f, %.0f)", e.Kind, e.Widget, e.X, e.Y)
	case InputUnHover, InputClick:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Widget)
	case InputPanelChanged:
		return fmt.Sprintf("%s(%q -> %q)", e.Kind, e.PrevPanel, e.Panel)
	case InputText:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	case InputArrow:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Dir)
	default:
		return e.Kind.String()
	}
}

// HostEventKind tags the values returned to application code.
type HostEventKind uint8

const (
	EventNone HostEventKind = iota
	EventQuit
	EventCallback
	EventFaderUpdate
	EventDropdownUpdate
)

func (k HostEventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventCallback:
		return "Callback"
	case EventFaderUpdate:
		return "FaderUpdate"
	case EventDropdownUpdate:
		return "DropdownUpdate"
	default:
		return "Unknown"
	}
}

// HostEvent is what GUI.Poll hands back to the application.
//
//	Callback:       Panel, Callback
//	FaderUpdate:    Panel, Index, Value
//	DropdownUpdate: Panel, Index, Label
type HostEvent[T any] struct {
	Kind     HostEventKind
	Panel    string
	Index    int
	Value    float32
	Label    string
	Callback T
}

func (e HostEvent[T]) String() string {
	switch e.Kind {
	case EventCallback:
		return fmt.Sprintf("Callback(%s, %v)", e.Panel, e.Callback)
	case EventFaderUpdate:
		return fmt.Sprintf("FaderUpdate(%s, %d, %g)", e.Panel, e.Index, e.Value)
	case EventDropdownUpdate:
		return fmt.Sprintf("DropdownUpdate(%s, %d, %q)", e.Panel, e.Index, e.Label)
	default:
		return e.Kind.String()
	}
}

func callbackEvent[T any](panel string, v T) HostEvent[T] {
	return HostEvent[T]{Kind: EventCallback, Panel: panel, Callback: v}
}

func faderEvent[T any](panel string, index int, v float32) HostEvent[T] {
	return HostEvent[T]{Kind: EventFaderUpdate, Panel: panel, Index: index, Value: v}
}

func dropdownEvent[T any](panel string, index int, label string) HostEvent[T] {
	return HostEvent[T]{Kind: EventDropdownUpdate, Panel: panel, Index: index, Label: label}
}
