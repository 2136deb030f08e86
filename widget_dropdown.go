package gui

// Default dropdown geometry.
const (
	DefaultDropdownWidth     float32 = 100
	DefaultDropdownRowHeight float32 = 20
)

// Dropdown is a button that opens a list of options below itself.
//
// Rows are numbered from 1: row 0 is the closed-state button, row i spans
// [y + i*h, y + (i+1)*h) where h is the row height.
type Dropdown struct {
	rect     Rect // the closed-state button; H is the row height
	options  []string
	open     bool
	selected int // 1-based row of the committed option, 0 = none
	hovered  int // 1-based row under the pointer while open, 0 = none
}

// Bounds implements Widget.
func (d *Dropdown) Bounds() Rect { return d.rect }

// VisualBounds implements Widget. While open it covers every option row.
func (d *Dropdown) VisualBounds() Rect {
	if !d.open {
		return d.rect
	}
	return Rect{X: d.rect.X, Y: d.rect.Y, W: d.rect.W, H: d.rect.H * float32(len(d.options)+1)}
}

// Shift implements Widget.
func (d *Dropdown) Shift(dx, dy float32) { d.rect = d.rect.Translate(dx, dy) }

// Click advances the open/close state machine:
//   - closed: opens, nothing selected
//   - open over a row: selects that row, closes, returns its label
//   - open elsewhere: closes, selection unchanged
func (d *Dropdown) Click() (string, bool) {
	switch {
	case !d.open:
		d.Open()
		return "", false
	case d.hovered > 0:
		d.selected = d.hovered
		d.Close()
		return d.options[d.selected-1], true
	default:
		d.Close()
		return "", false
	}
}

// Hover recomputes the hovered row from the pointer y. Only rows below the
// button count; anything else clears the hover.
func (d *Dropdown) Hover(_, y float32) {
	d.hovered = 0
	if !d.open {
		return
	}
	for i := 1; i <= len(d.options); i++ {
		lower := d.rect.Y + float32(i)*d.rect.H
		upper := d.rect.Y + float32(i+1)*d.rect.H
		if y >= lower && y < upper {
			d.hovered = i
			return
		}
	}
}

// Unhover clears the hovered row.
func (d *Dropdown) Unhover() { d.hovered = 0 }

// HoveredRow returns the 1-based hovered row, or 0.
func (d *Dropdown) HoveredRow() int { return d.hovered }

// Open shows the option list.
func (d *Dropdown) Open() { d.open = true }

// Close hides the option list and forgets the hovered row.
func (d *Dropdown) Close() {
	d.open = false
	d.hovered = 0
}

// IsOpen reports whether the option list is showing.
func (d *Dropdown) IsOpen() bool { return d.open }

// Options returns the option labels.
func (d *Dropdown) Options() []string { return d.options }

// RowHeight returns the height of one row.
func (d *Dropdown) RowHeight() float32 { return d.rect.H }

// Row returns the rectangle of row i (0 is the button itself).
func (d *Dropdown) Row(i int) Rect {
	return Rect{X: d.rect.X, Y: d.rect.Y + float32(i)*d.rect.H, W: d.rect.W, H: d.rect.H}
}

// SelectedIndex returns the 0-based index of the committed option, or -1.
func (d *Dropdown) SelectedIndex() int { return d.selected - 1 }

// Selected returns the committed option label.
func (d *Dropdown) Selected() (string, bool) {
	if d.selected == 0 {
		return "", false
	}
	return d.options[d.selected-1], true
}

// SetSelected commits the option at the 0-based index i. -1 clears it.
func (d *Dropdown) SetSelected(i int) {
	if i < -1 || i >= len(d.options) {
		panic("gui: dropdown selection out of range")
	}
	d.selected = i + 1
}

// Caption returns the text shown on the closed button: the selected option,
// or the first one when nothing has been chosen.
func (d *Dropdown) Caption() string {
	if d.selected > 0 {
		return d.options[d.selected-1]
	}
	if len(d.options) > 0 {
		return d.options[0]
	}
	return ""
}
