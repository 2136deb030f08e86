package gui

import "testing"

func mustButton(t *testing.T, x, y, w, h float32, cb int) *Button[int] {
	t.Helper()
	b, err := NewButton[int]().Rect(x, y, w, h).Callback(cb).Build()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestPanelShiftsWidgets(t *testing.T) {
	b := mustButton(t, 10, 10, 20, 20, 0)
	p := NewPanel("p", 100, 200, PanelWidgets[int]{Buttons: []*Button[int]{b}})
	if got := p.Button(0).Bounds(); got != (Rect{X: 110, Y: 210, W: 20, H: 20}) {
		t.Errorf("Bounds after shift = %v", got)
	}
	if p.Bounds() != p.Button(0).Bounds() {
		t.Errorf("panel bounds %v should equal its only widget", p.Bounds())
	}
}

func TestPanelTabOrder(t *testing.T) {
	p := NewPanel("p", 0, 0, PanelWidgets[int]{Buttons: []*Button[int]{
		mustButton(t, 0, 90, 10, 10, 0),
		mustButton(t, 0, 20, 10, 10, 1),
		mustButton(t, 0, 160, 10, 10, 2),
	}})

	order := p.TabOrder()
	want := []int{1, 0, 2}
	for i, ref := range order {
		if ref.Index != want[i] {
			t.Fatalf("TabOrder = %v, want indices %v", order, want)
		}
	}

	if _, ok := p.Active(); ok {
		t.Fatal("fresh panel should have no active widget")
	}
	for _, w := range []int{1, 0, 2, 1} {
		if got := p.NextWidget(); got.Index != w {
			t.Errorf("NextWidget = %v, want index %d", got, w)
		}
	}
	if got := p.PreviousWidget(); got.Index != 2 {
		t.Errorf("PreviousWidget wrap = %v, want index 2", got)
	}
}

func TestPanelTabOrderTiesUseX(t *testing.T) {
	tf, _ := NewTextField().Rect(50, 0, 10, 10).Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{
		Buttons:    []*Button[int]{mustButton(t, 100, 0, 10, 10, 0)},
		TextFields: []*TextField{tf},
	})
	order := p.TabOrder()
	if order[0].Kind != KindTextField || order[1].Kind != KindButton {
		t.Errorf("TabOrder = %v, want text field first", order)
	}
}

func TestPanelPreviousFromNone(t *testing.T) {
	p := NewPanel("p", 0, 0, PanelWidgets[int]{Buttons: []*Button[int]{
		mustButton(t, 0, 0, 10, 10, 0),
		mustButton(t, 0, 20, 10, 10, 1),
	}})
	if got := p.PreviousWidget(); got.Index != 1 {
		t.Errorf("PreviousWidget from none = %v, want last", got)
	}
}

func TestPanelTraverseEmptyPanics(t *testing.T) {
	p := NewPanel("empty", 0, 0, PanelWidgets[int]{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic traversing an empty panel")
		}
	}()
	p.NextWidget()
}

func TestPanelTabSelectsTextFields(t *testing.T) {
	a, _ := NewTextField().Rect(0, 0, 10, 10).Clickable().Build()
	b, _ := NewTextField().Rect(0, 20, 10, 10).Clickable().Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{TextFields: []*TextField{a, b}})

	p.NextWidget()
	if !a.IsActive() {
		t.Fatal("first Tab should activate the first field")
	}
	p.NextWidget()
	if a.IsActive() || !b.IsActive() {
		t.Error("second Tab should move the caret")
	}
	p.DeselectActive()
	if b.IsActive() {
		t.Error("DeselectActive should drop the caret")
	}
}

func TestPanelHitTestPriority(t *testing.T) {
	tf, _ := NewTextField().Rect(0, 0, 50, 50).Build()
	d, _ := NewDropdown().Position(0, 0).Options("x").Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{
		Buttons:    []*Button[int]{mustButton(t, 10, 10, 10, 10, 0)},
		TextFields: []*TextField{tf},
		Dropdowns:  []*Dropdown{d},
	})

	tests := []struct {
		x, y float32
		kind WidgetKind
		ok   bool
	}{
		{15, 15, KindButton, true},
		{5, 5, KindTextField, true},
		{60, 5, KindDropdown, true},
		{200, 200, 0, false},
	}
	for _, tt := range tests {
		ref, ok := p.HitTest(tt.x, tt.y)
		if ok != tt.ok || (ok && ref.Kind != tt.kind) {
			t.Errorf("HitTest(%g, %g) = %v, %v; want %s, %v", tt.x, tt.y, ref, ok, tt.kind, tt.ok)
		}
	}
}

func TestPanelBoundsGrowWithOpenDropdown(t *testing.T) {
	d, _ := NewDropdown().Position(0, 0).Width(100).RowHeight(20).Options("a", "b").Build()
	p := NewPanel("p", 10, 10, PanelWidgets[int]{Dropdowns: []*Dropdown{d}})

	if p.Bounds().H != 20 {
		t.Fatalf("closed bounds = %v", p.Bounds())
	}
	p.Click(KindDropdown, 0)
	if got := p.Bounds(); got.H != 60 {
		t.Errorf("open bounds = %v, want height 60", got)
	}
}

func TestPanelClickDropdownTwice(t *testing.T) {
	d, _ := NewDropdown().Position(0, 0).Width(100).RowHeight(20).Options("a", "b").Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{
		Buttons:   []*Button[int]{mustButton(t, 200, 0, 10, 10, 5)},
		Dropdowns: []*Dropdown{d},
	})

	if _, ok := p.Click(KindDropdown, 0); ok || !d.IsOpen() {
		t.Fatal("first click should open")
	}
	p.Hover(KindDropdown, 0, 10, 50) // row 2
	ev, ok := p.Click(KindDropdown, 0)
	if !ok || ev.Kind != EventDropdownUpdate || ev.Label != "b" || ev.Index != 0 {
		t.Fatalf("second click = %v, %v", ev, ok)
	}

	// Clicking elsewhere closes an open dropdown.
	p.Click(KindDropdown, 0)
	ev, ok = p.Click(KindButton, 0)
	if !ok || ev.Kind != EventCallback || ev.Callback != 5 {
		t.Errorf("button click = %v, %v", ev, ok)
	}
	if d.IsOpen() {
		t.Error("dropdown should close when another widget is clicked")
	}
}

func TestPanelArrowKey(t *testing.T) {
	f, _ := NewFader().Position(0, 100).Length(100).Range(0, 100).Initial(50).Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{
		Buttons: []*Button[int]{mustButton(t, 0, 0, 10, 10, 0)},
		Faders:  []*Fader{f},
	})

	if _, ok := p.ArrowKey(KindButton, 0, DirUp); ok {
		t.Error("buttons ignore arrows")
	}
	ev, ok := p.ArrowKey(KindFader, 0, DirRight)
	if !ok || ev.Kind != EventFaderUpdate || !near(ev.Value, 60) {
		t.Errorf("Right = %v, %v", ev, ok)
	}
	ev, _ = p.ArrowKey(KindFader, 0, DirDown)
	if !near(ev.Value, 50) {
		t.Errorf("Down = %g, want 50", ev.Value)
	}
}

func TestPanelDragOnlyMovesFaders(t *testing.T) {
	f, _ := NewFader().Position(0, 0).Length(100).Range(0, 10).Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{
		Buttons: []*Button[int]{mustButton(t, 0, 50, 10, 10, 0)},
		Faders:  []*Fader{f},
	})
	if _, ok := p.Drag(KindButton, 0, 50, 50); ok {
		t.Error("dragging a button should do nothing")
	}
	ev, ok := p.Drag(KindFader, 0, 50, 0)
	if !ok || !near(ev.Value, 5) {
		t.Errorf("Drag = %v, %v", ev, ok)
	}
}

func TestPanelTextRouting(t *testing.T) {
	a, _ := NewTextField().Rect(0, 0, 10, 10).Clickable().Build()
	b, _ := NewTextField().Rect(0, 20, 10, 10).Clickable().Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{TextFields: []*TextField{a, b}})

	p.PushToActiveTextFields("x")
	if a.Content() != "" || b.Content() != "" {
		t.Fatal("inactive fields must not receive text")
	}
	p.Click(KindTextField, 1)
	p.PushToActiveTextFields("hi")
	p.PopFromActiveTextFields()
	if a.Content() != "" || b.Content() != "h" {
		t.Errorf("contents = %q, %q", a.Content(), b.Content())
	}

	p.PushToTextField(0, "direct")
	if a.Content() != "direct" {
		t.Errorf("PushToTextField ignores the caret, got %q", a.Content())
	}
}

func TestPanelUnknownIndexPanics(t *testing.T) {
	p := NewPanel("p", 0, 0, PanelWidgets[int]{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p.Fader(0)
}
