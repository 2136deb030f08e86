package gui

import (
	"fmt"
	"sort"
)

// PanelWidgets lists the widgets a panel owns, grouped by kind. Coordinates
// are relative to the panel origin.
type PanelWidgets[T any] struct {
	Buttons    []*Button[T]
	TextFields []*TextField
	Faders     []*Fader
	Dropdowns  []*Dropdown
}

type tabStop struct {
	kind  WidgetKind
	index int
}

// Panel is a named group of widgets positioned at a fixed origin. It owns
// keyboard traversal between its widgets and routes clicks, hovers and drags
// to the right variant.
type Panel[T any] struct {
	name       string
	buttons    []*Button[T]
	textFields []*TextField
	faders     []*Fader
	dropdowns  []*Dropdown

	tabOrder []tabStop
	active   int // position in tabOrder, -1 = none
}

// NewPanel builds a panel at (x, y). Every widget is shifted by the origin
// once, so afterwards all geometry is in window space.
func NewPanel[T any](name string, x, y float32, w PanelWidgets[T]) *Panel[T] {
	p := &Panel[T]{
		name:       name,
		buttons:    w.Buttons,
		textFields: w.TextFields,
		faders:     w.Faders,
		dropdowns:  w.Dropdowns,
		active:     -1,
	}
	p.each(func(_ WidgetKind, _ int, wd Widget) { wd.Shift(x, y) })
	p.tabOrder = p.computeTabOrder()
	return p
}

// computeTabOrder sorts widgets top-to-bottom, then left-to-right, by visual
// bounds. Ties keep declaration order.
func (p *Panel[T]) computeTabOrder() []tabStop {
	type keyed struct {
		stop tabStop
		at   Vec2
	}
	var ks []keyed
	p.each(func(k WidgetKind, i int, w Widget) {
		vb := w.VisualBounds()
		ks = append(ks, keyed{stop: tabStop{kind: k, index: i}, at: Vec2{X: vb.X, Y: vb.Y}})
	})
	sort.SliceStable(ks, func(a, b int) bool {
		if ks[a].at.Y != ks[b].at.Y {
			return ks[a].at.Y < ks[b].at.Y
		}
		return ks[a].at.X < ks[b].at.X
	})
	order := make([]tabStop, len(ks))
	for i, k := range ks {
		order[i] = k.stop
	}
	return order
}

// each visits every widget in hit-test priority order.
func (p *Panel[T]) each(fn func(WidgetKind, int, Widget)) {
	for i, b := range p.buttons {
		fn(KindButton, i, b)
	}
	for i, tf := range p.textFields {
		fn(KindTextField, i, tf)
	}
	for i, f := range p.faders {
		fn(KindFader, i, f)
	}
	for i, d := range p.dropdowns {
		fn(KindDropdown, i, d)
	}
}

// Name returns the panel name.
func (p *Panel[T]) Name() string { return p.name }

// Len returns the total number of widgets.
func (p *Panel[T]) Len() int {
	return len(p.buttons) + len(p.textFields) + len(p.faders) + len(p.dropdowns)
}

// Bounds is the union of every child's visual bounds. It is recomputed on
// each call so an open dropdown list counts as part of the panel.
func (p *Panel[T]) Bounds() Rect {
	rects := make([]Rect, 0, p.Len())
	p.each(func(_ WidgetKind, _ int, w Widget) { rects = append(rects, w.VisualBounds()) })
	return Union(rects...)
}

// HitTest returns the first widget whose visual bounds contain (x, y),
// checking buttons, text fields, faders and dropdowns in that order.
func (p *Panel[T]) HitTest(x, y float32) (WidgetRef, bool) {
	pt := Vec2{X: x, Y: y}
	var (
		hit   WidgetRef
		found bool
	)
	p.each(func(k WidgetKind, i int, w Widget) {
		if !found && w.VisualBounds().Contains(pt) {
			hit, found = p.ref(k, i), true
		}
	})
	return hit, found
}

func (p *Panel[T]) ref(k WidgetKind, i int) WidgetRef {
	return WidgetRef{Panel: p.name, Kind: k, Index: i}
}

// Widget returns the widget at (kind, index). It panics when out of range.
func (p *Panel[T]) Widget(k WidgetKind, i int) Widget {
	switch k {
	case KindButton:
		return p.Button(i)
	case KindTextField:
		return p.TextField(i)
	case KindFader:
		return p.Fader(i)
	case KindDropdown:
		return p.Dropdown(i)
	}
	panic(fmt.Sprintf("gui: panel %q: unknown widget kind %d", p.name, k))
}

func (p *Panel[T]) outOfRange(k WidgetKind, i int) string {
	return fmt.Sprintf("gui: panel %q has no %s at index %d", p.name, k, i)
}

// Button returns button i.
func (p *Panel[T]) Button(i int) *Button[T] {
	if i < 0 || i >= len(p.buttons) {
		panic(p.outOfRange(KindButton, i))
	}
	return p.buttons[i]
}

// TextField returns text field i.
func (p *Panel[T]) TextField(i int) *TextField {
	if i < 0 || i >= len(p.textFields) {
		panic(p.outOfRange(KindTextField, i))
	}
	return p.textFields[i]
}

// Fader returns fader i.
func (p *Panel[T]) Fader(i int) *Fader {
	if i < 0 || i >= len(p.faders) {
		panic(p.outOfRange(KindFader, i))
	}
	return p.faders[i]
}

// Dropdown returns dropdown i.
func (p *Panel[T]) Dropdown(i int) *Dropdown {
	if i < 0 || i >= len(p.dropdowns) {
		panic(p.outOfRange(KindDropdown, i))
	}
	return p.dropdowns[i]
}

// TabOrder returns the keyboard traversal order.
func (p *Panel[T]) TabOrder() []WidgetRef {
	refs := make([]WidgetRef, len(p.tabOrder))
	for i, s := range p.tabOrder {
		refs[i] = p.ref(s.kind, s.index)
	}
	return refs
}

// Active returns the widget that currently holds the panel's selection.
func (p *Panel[T]) Active() (WidgetRef, bool) {
	if p.active < 0 {
		return WidgetRef{}, false
	}
	s := p.tabOrder[p.active]
	return p.ref(s.kind, s.index), true
}

func (p *Panel[T]) tabPos(k WidgetKind, i int) int {
	for pos, s := range p.tabOrder {
		if s.kind == k && s.index == i {
			return pos
		}
	}
	panic(p.outOfRange(k, i))
}

// Click activates a widget the way a pointer click would. The previously
// active widget is deselected first, except when the same dropdown is
// clicked again (its second click picks a row).
func (p *Panel[T]) Click(k WidgetKind, i int) (HostEvent[T], bool) {
	pos := p.tabPos(k, i)
	if p.active >= 0 {
		prev := p.tabOrder[p.active]
		if !(prev.kind == KindDropdown && k == KindDropdown && prev.index == i) {
			p.deselect(prev)
		}
	}
	p.active = pos

	switch k {
	case KindButton:
		return callbackEvent(p.name, p.buttons[i].Click()), true
	case KindTextField:
		p.textFields[i].SetActive(true)
	case KindDropdown:
		if label, ok := p.dropdowns[i].Click(); ok {
			return dropdownEvent[T](p.name, i, label), true
		}
	}
	return HostEvent[T]{}, false
}

// Deselect drops the selection state of one widget: text fields lose the
// caret, dropdowns close.
func (p *Panel[T]) Deselect(k WidgetKind, i int) {
	pos := p.tabPos(k, i)
	p.deselect(p.tabOrder[pos])
	if p.active == pos {
		p.active = -1
	}
}

// DeselectActive deselects whatever widget holds the panel's selection.
func (p *Panel[T]) DeselectActive() {
	if p.active < 0 {
		return
	}
	p.deselect(p.tabOrder[p.active])
	p.active = -1
}

func (p *Panel[T]) deselect(s tabStop) {
	switch s.kind {
	case KindButton:
		p.buttons[s.index].SetPressed(false)
	case KindTextField:
		p.textFields[s.index].SetActive(false)
	case KindDropdown:
		p.dropdowns[s.index].Close()
	}
}

func (p *Panel[T]) selectStop(pos int) WidgetRef {
	p.active = pos
	s := p.tabOrder[pos]
	switch s.kind {
	case KindTextField:
		p.textFields[s.index].SetActive(true)
	case KindDropdown:
		p.dropdowns[s.index].Open()
	}
	return p.ref(s.kind, s.index)
}

// Select gives a widget the panel's selection without clicking it: text
// fields take the caret and dropdowns open.
func (p *Panel[T]) Select(k WidgetKind, i int) WidgetRef {
	pos := p.tabPos(k, i)
	if p.active >= 0 && p.active != pos {
		p.deselect(p.tabOrder[p.active])
	}
	return p.selectStop(pos)
}

// NextWidget moves the selection forward in tab order, wrapping at the end.
// With nothing selected it picks the first widget.
func (p *Panel[T]) NextWidget() WidgetRef {
	n := len(p.tabOrder)
	if n == 0 {
		panic(fmt.Sprintf("gui: panel %q has no widgets to traverse", p.name))
	}
	next := 0
	if p.active >= 0 {
		next = (p.active + 1) % n
		p.deselect(p.tabOrder[p.active])
	}
	return p.selectStop(next)
}

// PreviousWidget moves the selection backward in tab order, wrapping at the
// start. With nothing selected it picks the last widget.
func (p *Panel[T]) PreviousWidget() WidgetRef {
	n := len(p.tabOrder)
	if n == 0 {
		panic(fmt.Sprintf("gui: panel %q has no widgets to traverse", p.name))
	}
	prev := n - 1
	if p.active >= 0 {
		prev = (p.active - 1 + n) % n
		p.deselect(p.tabOrder[p.active])
	}
	return p.selectStop(prev)
}

// ArrowKey steps a fader. Up and Right increment, Down and Left decrement.
// Other kinds ignore arrows.
func (p *Panel[T]) ArrowKey(k WidgetKind, i int, dir Direction) (HostEvent[T], bool) {
	if k != KindFader {
		return HostEvent[T]{}, false
	}
	f := p.Fader(i)
	switch dir {
	case DirUp, DirRight:
		f.Increment()
	case DirDown, DirLeft:
		f.Decrement()
	}
	return faderEvent[T](p.name, i, f.Value()), true
}

// Hover marks a widget as under the pointer. Dropdowns track the row at y.
func (p *Panel[T]) Hover(k WidgetKind, i int, x, y float32) {
	switch k {
	case KindButton:
		p.Button(i).SetHovered(true)
	case KindFader:
		p.Fader(i).SetHovered(true)
	case KindDropdown:
		p.Dropdown(i).Hover(x, y)
	}
}

// Unhover clears the hover state of one widget.
func (p *Panel[T]) Unhover(k WidgetKind, i int) {
	switch k {
	case KindButton:
		p.Button(i).SetHovered(false)
	case KindFader:
		p.Fader(i).SetHovered(false)
	case KindDropdown:
		p.Dropdown(i).Unhover()
	}
}

// UnhoverAll clears hover state on every widget.
func (p *Panel[T]) UnhoverAll() {
	for _, b := range p.buttons {
		b.SetHovered(false)
	}
	for _, f := range p.faders {
		f.SetHovered(false)
	}
	for _, d := range p.dropdowns {
		d.Unhover()
	}
}

// Drag forwards an absolute pointer position to a fader and reports its new
// value. Dragging any other kind does nothing.
func (p *Panel[T]) Drag(k WidgetKind, i int, x, y float32) (HostEvent[T], bool) {
	if k != KindFader {
		return HostEvent[T]{}, false
	}
	f := p.Fader(i)
	f.Drag(x, y)
	return faderEvent[T](p.name, i, f.Value()), true
}

// SetPressed sets the pressed flag of a button; other kinds ignore it.
func (p *Panel[T]) SetPressed(k WidgetKind, i int, v bool) {
	if k == KindButton {
		p.Button(i).SetPressed(v)
	}
}

// ClearPressed releases every button.
func (p *Panel[T]) ClearPressed() {
	for _, b := range p.buttons {
		b.SetPressed(false)
	}
}

// PushToActiveTextFields appends s to every active text field.
func (p *Panel[T]) PushToActiveTextFields(s string) {
	for _, tf := range p.textFields {
		if tf.IsActive() {
			tf.Push(s)
		}
	}
}

// PopFromActiveTextFields removes the last character of every active text field.
func (p *Panel[T]) PopFromActiveTextFields() {
	for _, tf := range p.textFields {
		if tf.IsActive() {
			tf.PopChar()
		}
	}
}

// SetTextFieldContent replaces the content of text field i.
func (p *Panel[T]) SetTextFieldContent(i int, s string) { p.TextField(i).SetContent(s) }

// PushToTextField appends s to text field i.
func (p *Panel[T]) PushToTextField(i int, s string) { p.TextField(i).Push(s) }

// PopFromTextField removes the last character of text field i.
func (p *Panel[T]) PopFromTextField(i int) (rune, bool) { return p.TextField(i).PopChar() }

// ClearTextField empties text field i.
func (p *Panel[T]) ClearTextField(i int) { p.TextField(i).Clear() }
