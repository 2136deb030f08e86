package gui

import "fmt"

// GUI owns a set of panels and turns input into host events. T is the
// payload type buttons hand back on click.
//
// A GUI is single-goroutine: Poll blocks on the event source and every other
// method runs on the same goroutine between polls.
type GUI[T any] struct {
	panels  map[string]*Panel[T]
	order   []string // registration order
	visible map[string]bool

	focus      *WidgetRef
	translator *Translator

	source     EventSource
	painter    Painter
	style      Style
	background uint32
	debug      bool
}

// New registers panels in the given order, all visible. Panel names must be
// unique and non-empty.
func New[T any](panels []*Panel[T], opts ...Option) (*GUI[T], error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	g := &GUI[T]{
		panels:     make(map[string]*Panel[T], len(panels)),
		visible:    make(map[string]bool, len(panels)),
		translator: NewTranslator(s.keys, s.escapeQuits),
		source:     s.source,
		painter:    s.painter,
		style:      s.style,
		background: s.background,
		debug:      s.debug,
	}
	for _, p := range panels {
		if p.Name() == "" {
			return nil, fmt.Errorf("panel: %w: name", ErrMissingField)
		}
		if _, dup := g.panels[p.Name()]; dup {
			return nil, fmt.Errorf("panel %q: %w", p.Name(), ErrDuplicatePanel)
		}
		g.panels[p.Name()] = p
		g.order = append(g.order, p.Name())
		g.visible[p.Name()] = true
	}
	return g, nil
}

// Poll blocks for one platform event and returns the host event it caused,
// which is EventNone for most raw input. It panics without an event source.
func (g *GUI[T]) Poll() HostEvent[T] {
	if g.source == nil {
		panic("gui: Poll called without an event source")
	}
	return g.Handle(g.source.WaitEvent())
}

// Handle processes one raw event pumped by the host.
func (g *GUI[T]) Handle(ev RawEvent) HostEvent[T] {
	out := g.Dispatch(g.translator.Translate(ev, g.hitTesters()))
	g.syncPressed()
	return out
}

// Dispatch applies one normalized event to widgets and focus.
func (g *GUI[T]) Dispatch(ev InputEvent) HostEvent[T] {
	out := g.dispatch(ev)
	if out.Kind != EventNone {
		logger.Debug("host event", "input", ev.String(), "event", out.String())
	}
	return out
}

func (g *GUI[T]) dispatch(ev InputEvent) HostEvent[T] {
	switch ev.Kind {
	case InputQuit:
		return HostEvent[T]{Kind: EventQuit}

	case InputPanelChanged:
		if p, ok := g.panels[ev.PrevPanel]; ok {
			p.UnhoverAll()
		}

	case InputHover:
		g.Panel(ev.Widget.Panel).Hover(ev.Widget.Kind, ev.Widget.Index, ev.X, ev.Y)

	case InputUnHover:
		g.Panel(ev.Widget.Panel).Unhover(ev.Widget.Kind, ev.Widget.Index)

	case InputDrag:
		if out, ok := g.Panel(ev.Widget.Panel).Drag(ev.Widget.Kind, ev.Widget.Index, ev.X, ev.Y); ok {
			return out
		}

	case InputClick:
		return g.click(ev.Widget)

	case InputClickBackground, InputEscape:
		g.ClearFocus()

	case InputTab:
		g.traverse(true)

	case InputShiftTab:
		g.traverse(false)

	case InputReturn:
		if g.focus != nil {
			return g.click(*g.focus)
		}

	case InputArrow:
		if g.focus != nil {
			if out, ok := g.Panel(g.focus.Panel).ArrowKey(g.focus.Kind, g.focus.Index, ev.Dir); ok {
				return out
			}
		}

	case InputText:
		for _, p := range g.visiblePanels() {
			p.PushToActiveTextFields(ev.Text)
		}

	case InputPopChar:
		for _, p := range g.visiblePanels() {
			p.PopFromActiveTextFields()
		}

	case InputToggleDebug:
		g.debug = !g.debug
		logger.Info("debug overlay", "enabled", g.debug)
	}
	return HostEvent[T]{}
}

func (g *GUI[T]) click(ref WidgetRef) HostEvent[T] {
	if g.focus != nil && g.focus.Panel != ref.Panel {
		g.Panel(g.focus.Panel).DeselectActive()
	}
	g.focus = &ref
	if out, ok := g.Panel(ref.Panel).Click(ref.Kind, ref.Index); ok {
		return out
	}
	return HostEvent[T]{}
}

// traverse moves keyboard focus within the focused panel, or into the first
// visible panel with widgets when nothing is focused.
func (g *GUI[T]) traverse(forward bool) {
	var p *Panel[T]
	if g.focus != nil {
		p = g.Panel(g.focus.Panel)
	} else {
		for _, vp := range g.visiblePanels() {
			if vp.Len() > 0 {
				p = vp
				break
			}
		}
	}
	if p == nil {
		return
	}
	var ref WidgetRef
	if forward {
		ref = p.NextWidget()
	} else {
		ref = p.PreviousWidget()
	}
	g.focus = &ref
}

// syncPressed mirrors the translator's pressed widget onto button flags.
func (g *GUI[T]) syncPressed() {
	for _, p := range g.visiblePanels() {
		p.ClearPressed()
	}
	if ref, ok := g.translator.Pressed(); ok {
		if p, ok := g.panels[ref.Panel]; ok {
			p.SetPressed(ref.Kind, ref.Index, true)
		}
	}
}

func (g *GUI[T]) visiblePanels() []*Panel[T] {
	out := make([]*Panel[T], 0, len(g.order))
	for _, name := range g.order {
		if g.visible[name] {
			out = append(out, g.panels[name])
		}
	}
	return out
}

func (g *GUI[T]) hitTesters() []HitTester {
	vp := g.visiblePanels()
	out := make([]HitTester, len(vp))
	for i, p := range vp {
		out[i] = p
	}
	return out
}

// Panel returns the named panel. It panics for unknown names.
func (g *GUI[T]) Panel(name string) *Panel[T] {
	p, ok := g.panels[name]
	if !ok {
		panic(fmt.Sprintf("gui: unknown panel %q", name))
	}
	return p
}

// Panels returns the panel names in registration order.
func (g *GUI[T]) Panels() []string {
	return append([]string(nil), g.order...)
}

// PanelBounds returns the current bounds of every visible panel.
func (g *GUI[T]) PanelBounds() map[string]Rect {
	out := make(map[string]Rect, len(g.order))
	for _, p := range g.visiblePanels() {
		out[p.Name()] = p.Bounds()
	}
	return out
}

// IsVisible reports whether the named panel is shown.
func (g *GUI[T]) IsVisible(name string) bool {
	g.Panel(name)
	return g.visible[name]
}

// ShowPanel makes a hidden panel visible again.
func (g *GUI[T]) ShowPanel(name string) {
	g.Panel(name)
	g.visible[name] = true
}

// HidePanel hides a panel. Focus and pointer state inside it are dropped.
func (g *GUI[T]) HidePanel(name string) {
	p := g.Panel(name)
	if !g.visible[name] {
		return
	}
	g.visible[name] = false
	g.forget(p)
}

// SwapPanel replaces the named panel with p in the same registration slot,
// keeping its visibility. p may carry a different name as long as it does
// not collide with another panel.
func (g *GUI[T]) SwapPanel(name string, p *Panel[T]) error {
	old := g.Panel(name)
	if p.Name() == "" {
		return fmt.Errorf("panel: %w: name", ErrMissingField)
	}
	if _, dup := g.panels[p.Name()]; dup && p.Name() != name {
		return fmt.Errorf("panel %q: %w", p.Name(), ErrDuplicatePanel)
	}
	g.forget(old)

	vis := g.visible[name]
	delete(g.panels, name)
	delete(g.visible, name)
	g.panels[p.Name()] = p
	g.visible[p.Name()] = vis
	for i, n := range g.order {
		if n == name {
			g.order[i] = p.Name()
			break
		}
	}
	logger.Debug("panel swapped", "old", name, "new", p.Name())
	return nil
}

// forget drops every reference into p before it disappears from view.
func (g *GUI[T]) forget(p *Panel[T]) {
	if g.focus != nil && g.focus.Panel == p.Name() {
		g.ClearFocus()
	}
	p.UnhoverAll()
	p.ClearPressed()
	g.translator.Reset()
}

// Focus moves keyboard focus to ref, as if it had been reached with Tab.
func (g *GUI[T]) Focus(ref WidgetRef) {
	p := g.Panel(ref.Panel)
	if g.focus != nil && g.focus.Panel != ref.Panel {
		g.Panel(g.focus.Panel).DeselectActive()
	}
	r := p.Select(ref.Kind, ref.Index)
	g.focus = &r
}

// Focused returns the widget holding keyboard focus.
func (g *GUI[T]) Focused() (WidgetRef, bool) { return deref(g.focus) }

// ClearFocus deselects the focused widget.
func (g *GUI[T]) ClearFocus() {
	if g.focus == nil {
		return
	}
	g.Panel(g.focus.Panel).DeselectActive()
	g.focus = nil
}

// TextFieldContent returns the text of a text field.
func (g *GUI[T]) TextFieldContent(panel string, i int) string {
	return g.Panel(panel).TextField(i).Content()
}

// SetTextFieldContent replaces the text of a text field.
func (g *GUI[T]) SetTextFieldContent(panel string, i int, s string) {
	g.Panel(panel).SetTextFieldContent(i, s)
}

// PushToTextField appends to a text field whether or not it is active.
func (g *GUI[T]) PushToTextField(panel string, i int, s string) {
	g.Panel(panel).PushToTextField(i, s)
}

// PopFromTextField removes the last character of a text field.
func (g *GUI[T]) PopFromTextField(panel string, i int) (rune, bool) {
	return g.Panel(panel).PopFromTextField(i)
}

// ClearTextField empties a text field.
func (g *GUI[T]) ClearTextField(panel string, i int) {
	g.Panel(panel).ClearTextField(i)
}

// FaderValue returns a fader's value in its external range.
func (g *GUI[T]) FaderValue(panel string, i int) float32 {
	return g.Panel(panel).Fader(i).Value()
}

// SetFaderValue moves a fader, clamping to its range.
func (g *GUI[T]) SetFaderValue(panel string, i int, v float32) {
	g.Panel(panel).Fader(i).SetValue(v)
}

// DropdownSelection returns a dropdown's committed option.
func (g *GUI[T]) DropdownSelection(panel string, i int) (string, bool) {
	return g.Panel(panel).Dropdown(i).Selected()
}

// SetDropdownSelection commits option j of a dropdown; -1 clears it.
func (g *GUI[T]) SetDropdownSelection(panel string, i, j int) {
	g.Panel(panel).Dropdown(i).SetSelected(j)
}

// Background returns the clear color.
func (g *GUI[T]) Background() uint32 { return g.background }

// SetBackground sets the clear color.
func (g *GUI[T]) SetBackground(c uint32) { g.background = c }

// Debug reports whether the bounds overlay is on.
func (g *GUI[T]) Debug() bool { return g.debug }

// SetDebug switches the bounds overlay.
func (g *GUI[T]) SetDebug(v bool) { g.debug = v }

// Style returns the palette used by Frame.
func (g *GUI[T]) Style() Style { return g.style }

// Translator exposes the pointer state machine, mostly for diagnostics.
func (g *GUI[T]) Translator() *Translator { return g.translator }

// Frame builds the paint list for the visible panels.
func (g *GUI[T]) Frame() Frame {
	f := Frame{Background: g.background}
	for _, p := range g.visiblePanels() {
		f.Panels = append(f.Panels, PanelPaint{
			Name:    p.Name(),
			Bounds:  p.Bounds(),
			Regions: p.Paint(g.style, g.debug),
		})
	}
	return f
}

// Draw hands the current frame to the painter. Without one it does nothing.
func (g *GUI[T]) Draw() error {
	if g.painter == nil {
		return nil
	}
	if err := g.painter.Paint(g.Frame()); err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	return nil
}
