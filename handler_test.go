package gui

import "testing"

// translatorFixture has one panel "a" at the origin with two buttons and a
// fader, and an empty-gap panel "b" to the right.
func translatorFixture(t *testing.T) (*Translator, []HitTester, *Panel[int]) {
	t.Helper()
	f, _ := NewFader().Position(0, 200).Length(100).Range(0, 100).Build()
	a := NewPanel("a", 0, 0, PanelWidgets[int]{
		Buttons: []*Button[int]{
			mustButton(t, 0, 0, 50, 50, 1),
			mustButton(t, 60, 0, 50, 50, 2),
		},
		Faders: []*Fader{f},
	})
	b := NewPanel("b", 300, 0, PanelWidgets[int]{
		Buttons: []*Button[int]{mustButton(t, 0, 0, 50, 50, 3)},
	})
	return NewTranslator(nil, false), []HitTester{a, b}, a
}

func TestTranslatorPanelChanged(t *testing.T) {
	tr, panels, _ := translatorFixture(t)

	ev := tr.Translate(MouseMove(10, 10), panels)
	if ev.Kind != InputPanelChanged || ev.PrevPanel != "" || ev.Panel != "a" {
		t.Fatalf("entering a: %v", ev)
	}
	ev = tr.Translate(MouseMove(310, 10), panels)
	if ev.Kind != InputPanelChanged || ev.PrevPanel != "a" || ev.Panel != "b" {
		t.Fatalf("a -> b: %v", ev)
	}
	ev = tr.Translate(MouseMove(600, 600), panels)
	if ev.Kind != InputPanelChanged || ev.Panel != "" {
		t.Fatalf("leaving b: %v", ev)
	}
	if ev := tr.Translate(MouseMove(601, 600), panels); ev.Kind != InputNone {
		t.Errorf("moving outside every panel: %v", ev)
	}
}

func TestTranslatorHoverSequence(t *testing.T) {
	tr, panels, _ := translatorFixture(t)
	tr.Translate(MouseMove(10, 10), panels) // PanelChanged

	steps := []struct {
		x, y  float32
		kind  InputKind
		index int
	}{
		{10, 10, InputHover, 0},
		{20, 20, InputNone, 0},  // same widget
		{70, 10, InputHover, 1}, // half-step: no UnHover(0)
		{55, 10, InputUnHover, 1},
		{56, 10, InputNone, 0},
	}
	for i, s := range steps {
		ev := tr.Translate(MouseMove(s.x, s.y), panels)
		if ev.Kind != s.kind || (s.kind != InputNone && ev.Widget.Index != s.index) {
			t.Errorf("step %d (%g,%g): got %v, want %s[%d]", i, s.x, s.y, ev, s.kind, s.index)
		}
	}
}

func TestTranslatorClick(t *testing.T) {
	tr, panels, _ := translatorFixture(t)
	tr.Translate(MouseMove(10, 10), panels)

	if ev := tr.Translate(MouseDown(MouseButtonLeft, 10, 10), panels); ev.Kind != InputNone {
		t.Errorf("button down emits nothing, got %v", ev)
	}
	if ref, ok := tr.Pressed(); !ok || ref.Index != 0 {
		t.Fatalf("Pressed = %v, %v", ref, ok)
	}
	ev := tr.Translate(MouseUp(MouseButtonLeft, 12, 12), panels)
	if ev.Kind != InputClick || ev.Widget != (WidgetRef{Panel: "a", Kind: KindButton, Index: 0}) {
		t.Errorf("release on the same widget: %v", ev)
	}
	if _, ok := tr.Pressed(); ok {
		t.Error("release should clear Pressed")
	}
}

func TestTranslatorReleaseElsewhere(t *testing.T) {
	tr, panels, _ := translatorFixture(t)
	tr.Translate(MouseMove(10, 10), panels)
	tr.Translate(MouseDown(MouseButtonLeft, 10, 10), panels)

	// Dragging a button still reports Drag; the panel ignores it.
	if ev := tr.Translate(MouseMove(70, 10), panels); ev.Kind != InputDrag {
		t.Errorf("move while pressed: %v", ev)
	}
	ev := tr.Translate(MouseUp(MouseButtonLeft, 70, 10), panels)
	if ev.Kind != InputUnHover || ev.Widget.Index != 0 {
		t.Errorf("release over another widget: %v", ev)
	}
}

func TestTranslatorClickBackground(t *testing.T) {
	tr, panels, _ := translatorFixture(t)
	tr.Translate(MouseDown(MouseButtonLeft, 500, 500), panels)
	if ev := tr.Translate(MouseUp(MouseButtonLeft, 500, 500), panels); ev.Kind != InputClickBackground {
		t.Errorf("release with nothing pressed: %v", ev)
	}
}

func TestTranslatorIgnoresOtherButtons(t *testing.T) {
	tr, panels, _ := translatorFixture(t)
	tr.Translate(MouseDown(MouseButtonRight, 10, 10), panels)
	if _, ok := tr.Pressed(); ok {
		t.Error("right button should not press")
	}
	if ev := tr.Translate(MouseUp(MouseButtonRight, 10, 10), panels); ev.Kind != InputNone {
		t.Errorf("right release: %v", ev)
	}
}

func TestTranslatorFaderDrag(t *testing.T) {
	tr, panels, a := translatorFixture(t)
	// Fader travel: x 0..100 at y 200.
	tr.Translate(MouseMove(0, 200), panels)
	tr.Translate(MouseDown(MouseButtonLeft, 0, 200), panels)

	ev := tr.Translate(MouseMove(75, 400), panels)
	if ev.Kind != InputDrag || ev.Widget.Kind != KindFader || ev.X != 75 {
		t.Fatalf("drag: %v", ev)
	}
	a.Drag(ev.Widget.Kind, ev.Widget.Index, ev.X, ev.Y)
	if !near(a.Fader(0).Value(), 75) {
		t.Errorf("fader value = %g", a.Fader(0).Value())
	}
}

func TestTranslatorDropdownRehovers(t *testing.T) {
	d, _ := NewDropdown().Position(0, 0).Options("a", "b").Build()
	p := NewPanel("p", 0, 0, PanelWidgets[int]{Dropdowns: []*Dropdown{d}})
	panels := []HitTester{p}
	tr := NewTranslator(nil, false)

	tr.Translate(MouseMove(5, 5), panels)
	tr.Translate(MouseMove(5, 5), panels)
	if ev := tr.Translate(MouseMove(6, 6), panels); ev.Kind != InputHover {
		t.Errorf("dropdowns re-hover on every motion, got %v", ev)
	}
}

func TestTranslatorKeys(t *testing.T) {
	tests := []struct {
		name        string
		escapeQuits bool
		ev          RawEvent
		want        InputEvent
	}{
		{"letter", false, KeyPress(KeyA, 0), InputEvent{Kind: InputText, Text: "a"}},
		{"escape", false, KeyPress(KeyEscape, 0), InputEvent{Kind: InputEscape}},
		{"escape quits", true, KeyPress(KeyEscape, 0), InputEvent{Kind: InputQuit}},
		{"window close", false, RawEvent{Kind: RawQuit}, InputEvent{Kind: InputQuit}},
		{"shift tab", false, KeyPress(KeyTab, ModShift), InputEvent{Kind: InputShiftTab}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator(nil, tt.escapeQuits)
			if got := tr.Translate(tt.ev, nil); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

type queueSource []RawEvent

func (q *queueSource) WaitEvent() RawEvent {
	ev := (*q)[0]
	*q = (*q)[1:]
	return ev
}

func TestTranslatorPoll(t *testing.T) {
	src := &queueSource{KeyPress(KeyB, ModShift)}
	tr := NewTranslator(nil, false)
	if ev := tr.Poll(src, nil); ev.Text != "B" {
		t.Errorf("Poll = %v", ev)
	}
}
