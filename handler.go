package gui

// HitTester is the view of a panel the Translator needs.
type HitTester interface {
	Name() string
	Bounds() Rect
	HitTest(x, y float32) (WidgetRef, bool)
}

// Translator turns raw platform events into normalized input events. It keeps
// just enough state to recognise hovers, clicks and drags: the widget under
// the pointer, the widget holding the left button, and the panel the pointer
// is in.
type Translator struct {
	keys        *KeyMap
	escapeQuits bool

	hovered     *WidgetRef
	pressed     *WidgetRef
	activePanel string // "" = pointer outside every panel
}

// NewTranslator creates a Translator decoding keys with km.
func NewTranslator(km *KeyMap, escapeQuits bool) *Translator {
	if km == nil {
		km = DefaultKeyMap()
	}
	return &Translator{keys: km, escapeQuits: escapeQuits}
}

// Hovered returns the widget under the pointer.
func (t *Translator) Hovered() (WidgetRef, bool) { return deref(t.hovered) }

// Pressed returns the widget holding the left button.
func (t *Translator) Pressed() (WidgetRef, bool) { return deref(t.pressed) }

// ActivePanel returns the panel under the pointer, or "".
func (t *Translator) ActivePanel() string { return t.activePanel }

// Reset forgets hover, press and panel state. Call it after the panel set
// changes underneath the pointer.
func (t *Translator) Reset() {
	t.hovered, t.pressed, t.activePanel = nil, nil, ""
}

func deref(r *WidgetRef) (WidgetRef, bool) {
	if r == nil {
		return WidgetRef{}, false
	}
	return *r, true
}

// Poll blocks on src for one raw event and translates it.
func (t *Translator) Poll(src EventSource, panels []HitTester) InputEvent {
	return t.Translate(src.WaitEvent(), panels)
}

// Translate consumes one raw event and returns at most one input event.
// panels are searched in order; the first whose bounds contain the pointer
// is the active panel.
func (t *Translator) Translate(ev RawEvent, panels []HitTester) InputEvent {
	var out InputEvent
	switch ev.Kind {
	case RawQuit:
		out = InputEvent{Kind: InputQuit}
	case RawMouseMove:
		out = t.move(ev.X, ev.Y, panels)
	case RawMouseDown:
		if ev.Button == MouseButtonLeft {
			t.down(ev.X, ev.Y, panels)
		}
	case RawMouseUp:
		if ev.Button == MouseButtonLeft {
			out = t.up(ev.X, ev.Y, panels)
		}
	case RawKeyDown:
		out = t.keys.Decode(ev.Key, ev.Mods)
		if out.Kind == InputEscape && t.escapeQuits {
			out = InputEvent{Kind: InputQuit}
		}
	}
	if out.Kind != InputNone {
		logger.Debug("input", "raw", ev.Kind.String(), "event", out.String())
	}
	return out
}

func (t *Translator) move(x, y float32, panels []HitTester) InputEvent {
	if t.pressed != nil {
		return InputEvent{Kind: InputDrag, Widget: *t.pressed, X: x, Y: y}
	}

	panel := panelAt(x, y, panels)
	name := ""
	if panel != nil {
		name = panel.Name()
	}
	if name != t.activePanel {
		prev := t.activePanel
		t.activePanel = name
		t.hovered = nil
		return InputEvent{Kind: InputPanelChanged, PrevPanel: prev, Panel: name}
	}
	if panel == nil {
		return InputEvent{}
	}

	hit, ok := panel.HitTest(x, y)
	switch {
	case !ok && t.hovered != nil:
		old := *t.hovered
		t.hovered = nil
		return InputEvent{Kind: InputUnHover, Widget: old}
	case !ok:
		return InputEvent{}
	case t.hovered != nil && *t.hovered == hit && hit.Kind != KindDropdown:
		return InputEvent{}
	}
	t.hovered = &hit
	return InputEvent{Kind: InputHover, Widget: hit, X: x, Y: y}
}

func (t *Translator) down(x, y float32, panels []HitTester) {
	panel := panelAt(x, y, panels)
	if panel == nil {
		return
	}
	t.activePanel = panel.Name()
	if hit, ok := panel.HitTest(x, y); ok {
		t.pressed = &hit
	}
}

func (t *Translator) up(x, y float32, panels []HitTester) InputEvent {
	pressed := t.pressed
	t.pressed = nil
	if pressed == nil {
		return InputEvent{Kind: InputClickBackground}
	}
	for _, p := range panels {
		if p.Name() != pressed.Panel {
			continue
		}
		if hit, ok := p.HitTest(x, y); ok && hit == *pressed {
			return InputEvent{Kind: InputClick, Widget: hit}
		}
		break
	}
	if t.hovered != nil && *t.hovered == *pressed {
		t.hovered = nil
	}
	return InputEvent{Kind: InputUnHover, Widget: *pressed}
}

func panelAt(x, y float32, panels []HitTester) HitTester {
	pt := Vec2{X: x, Y: y}
	for _, p := range panels {
		if p.Bounds().Contains(pt) {
			return p
		}
	}
	return nil
}
