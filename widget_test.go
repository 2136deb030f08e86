package gui

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestRectContainsInclusive(t *testing.T) {
	r := R(10, 10, 20, 20)
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", Vec2{15, 15}, true},
		{"top-left corner", Vec2{10, 10}, true},
		{"right edge", Vec2{30, 20}, true},
		{"bottom-right corner", Vec2{30, 30}, true},
		{"left of", Vec2{9.9, 15}, false},
		{"below", Vec2{15, 30.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	if got := Union(); got != (Rect{}) {
		t.Errorf("Union() = %v, want zero", got)
	}
	got := Union(R(10, 10, 10, 10), R(40, 0, 10, 5), R(15, 30, 5, 5))
	want := Rect{X: 10, Y: 0, W: 40, H: 35}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestR_ClampsNegativeSize(t *testing.T) {
	if got := R(1, 2, -5, -1); got.W != 0 || got.H != 0 {
		t.Errorf("R with negative size = %v", got)
	}
}

func TestFaderValueRoundTrip(t *testing.T) {
	f, err := NewFader().Position(0, 0).Length(100).Range(10, 20).Initial(15).Build()
	if err != nil {
		t.Fatal(err)
	}
	if !near(f.Value(), 15) || !near(f.Normalized(), 0.5) {
		t.Errorf("Value = %g normalized %g, want 15 / 0.5", f.Value(), f.Normalized())
	}

	f.SetValue(-100)
	if f.Value() != 10 {
		t.Errorf("SetValue below range: got %g, want 10", f.Value())
	}
	f.SetValue(100)
	if f.Value() != 20 {
		t.Errorf("SetValue above range: got %g, want 20", f.Value())
	}
}

func TestFaderDrag(t *testing.T) {
	h, _ := NewFader().Position(100, 50).Length(200).Range(0, 100).Build()
	h.Drag(150, 999)
	if !near(h.Value(), 25) {
		t.Errorf("horizontal drag: got %g, want 25", h.Value())
	}
	h.Drag(-50, 0)
	if h.Value() != 0 {
		t.Errorf("drag past start: got %g, want 0", h.Value())
	}

	v, _ := NewFader().Position(100, 300).Length(200).Vertical().Range(0, 100).Build()
	v.Drag(0, 250)
	if !near(v.Value(), 25) {
		t.Errorf("vertical drag up 50px: got %g, want 25", v.Value())
	}
	v.Drag(0, 0)
	if v.Value() != 100 {
		t.Errorf("vertical drag past top: got %g, want 100", v.Value())
	}
}

func TestFaderStepRefusesOverflow(t *testing.T) {
	f, _ := NewFader().Position(0, 0).Length(100).Range(0, 100).Initial(95).Build()
	f.Increment()
	if !near(f.Value(), 95) {
		t.Errorf("increment near ceiling moved to %g", f.Value())
	}
	f.Decrement()
	if !near(f.Value(), 85) {
		t.Errorf("decrement: got %g, want 85", f.Value())
	}

	f.SetValue(100)
	for i := 0; i < 3; i++ {
		f.Increment()
	}
	if f.Value() != 100 {
		t.Errorf("increment at ceiling: got %g", f.Value())
	}
	f.SetValue(0)
	f.Decrement()
	if f.Value() != 0 {
		t.Errorf("decrement at floor: got %g", f.Value())
	}
}

func TestFaderBounds(t *testing.T) {
	f, _ := NewFader().Position(100, 300).Length(200).Vertical().Range(0, 1).Initial(0.5).Build()
	vb := f.VisualBounds()
	if vb != (Rect{X: 90, Y: 100, W: 20, H: 200}) {
		t.Errorf("VisualBounds = %v", vb)
	}
	b := f.Bounds()
	if !b.Contains(Vec2{100, 200}) {
		t.Errorf("knob %v should sit at the midpoint", b)
	}
}

func TestDropdownStateMachine(t *testing.T) {
	d, err := NewDropdown().Position(0, 0).Width(100).RowHeight(20).Options("a", "b", "c").Build()
	if err != nil {
		t.Fatal(err)
	}
	if d.Caption() != "a" || d.SelectedIndex() != -1 {
		t.Fatalf("fresh dropdown: caption %q index %d", d.Caption(), d.SelectedIndex())
	}

	if _, ok := d.Click(); ok || !d.IsOpen() {
		t.Fatal("first click should open without selecting")
	}
	if vb := d.VisualBounds(); vb.H != 80 {
		t.Errorf("open VisualBounds height = %g, want 80", vb.H)
	}

	d.Hover(50, 45) // row 2: [40, 60)
	if d.HoveredRow() != 2 {
		t.Fatalf("HoveredRow = %d, want 2", d.HoveredRow())
	}
	label, ok := d.Click()
	if !ok || label != "b" {
		t.Fatalf("Click over row = %q, %v", label, ok)
	}
	if d.IsOpen() || d.HoveredRow() != 0 {
		t.Error("selecting should close and clear hover")
	}
	if sel, _ := d.Selected(); sel != "b" || d.Caption() != "b" {
		t.Errorf("Selected = %q, caption %q", sel, d.Caption())
	}

	// Open, click with nothing hovered: closes, selection kept.
	d.Click()
	d.Hover(50, 5)
	if d.HoveredRow() != 0 {
		t.Errorf("row 0 is the button, hover = %d", d.HoveredRow())
	}
	if _, ok := d.Click(); ok || d.IsOpen() {
		t.Error("click outside rows should only close")
	}
	if d.SelectedIndex() != 1 {
		t.Errorf("selection changed to %d", d.SelectedIndex())
	}
}

func TestDropdownHoverRowEdges(t *testing.T) {
	d, _ := NewDropdown().Position(0, 100).RowHeight(20).Options("a", "b").Build()
	d.Hover(0, 130)
	if d.HoveredRow() != 0 {
		t.Error("closed dropdown should not track rows")
	}
	d.Open()
	tests := []struct {
		y    float32
		want int
	}{
		{119.9, 0},
		{120, 1},
		{139.9, 1},
		{140, 2},
		{160, 0},
	}
	for _, tt := range tests {
		d.Hover(0, tt.y)
		if d.HoveredRow() != tt.want {
			t.Errorf("Hover(y=%g) row = %d, want %d", tt.y, d.HoveredRow(), tt.want)
		}
	}
}

func TestDropdownSetSelectedPanics(t *testing.T) {
	d, _ := NewDropdown().Position(0, 0).Options("a").Build()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	d.SetSelected(1)
}

func TestTextField(t *testing.T) {
	tf, err := NewTextField().Rect(0, 0, 100, 20).Build()
	if err != nil {
		t.Fatal(err)
	}
	tf.SetActive(true)
	if tf.IsActive() {
		t.Error("non-clickable field must refuse activation")
	}

	tf.Push("hé")
	if r, ok := tf.PopChar(); !ok || r != 'é' {
		t.Errorf("PopChar = %q, %v", r, ok)
	}
	tf.PopChar()
	if _, ok := tf.PopChar(); ok {
		t.Error("PopChar on empty content should report false")
	}

	pw, _ := NewTextField().Rect(0, 0, 100, 20).Password().Content("åbc").Build()
	if pw.Display() != "***" || pw.Content() != "åbc" {
		t.Errorf("password Display = %q, Content = %q", pw.Display(), pw.Content())
	}
}

func TestTextFieldVisualBounds(t *testing.T) {
	plain, _ := NewTextField().Rect(0, 50, 100, 20).Build()
	labelled, _ := NewTextField().Rect(0, 50, 100, 20).Label("Name").Build()
	hidden, _ := NewTextField().Rect(0, 50, 100, 20).Label("Name").Transparent().Build()

	if plain.VisualBounds() != plain.Bounds() {
		t.Error("unlabelled field should not grow")
	}
	if vb := labelled.VisualBounds(); vb.Y != 50-LabelHeight || vb.H != 20+LabelHeight {
		t.Errorf("labelled VisualBounds = %v", vb)
	}
	if hidden.VisualBounds() != hidden.Bounds() {
		t.Error("transparent field label is not drawn")
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"button without rect", buildErr(NewButton[int]().Callback(1).Build()), ErrMissingField},
		{"button without callback", buildErr(NewButton[int]().Rect(0, 0, 1, 1).Build()), ErrMissingField},
		{"text field without rect", buildErr(NewTextField().Build()), ErrMissingField},
		{"fader without position", buildErr(NewFader().Length(10).Build()), ErrMissingField},
		{"fader without length", buildErr(NewFader().Position(0, 0).Build()), ErrMissingField},
		{"fader empty range", buildErr(NewFader().Position(0, 0).Length(10).Range(5, 5).Build()), ErrInvalidRange},
		{"dropdown without position", buildErr(NewDropdown().Options("a").Build()), ErrMissingField},
		{"dropdown without options", buildErr(NewDropdown().Position(0, 0).Build()), ErrNoOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("got %v, want %v", tt.err, tt.want)
			}
		})
	}
}

func buildErr(_ any, err error) error { return err }

func TestButtonClickReturnsPayload(t *testing.T) {
	b, err := NewButton[string]().Rect(0, 0, 10, 10).Label("OK").Callback("ok").Build()
	if err != nil {
		t.Fatal(err)
	}
	if b.Click() != "ok" || b.Color() != DefaultButtonColor {
		t.Errorf("Click = %q, color %08x", b.Click(), b.Color())
	}
}
