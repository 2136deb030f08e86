package gui

// PaintKind tags a PaintRegion.
type PaintKind uint8

const (
	PaintFill PaintKind = iota
	PaintOutline
	PaintText
)

// PaintRegion is one drawing instruction in window coordinates. Text regions
// place Text inside Rect according to Align and center it vertically.
type PaintRegion struct {
	Kind  PaintKind
	Rect  Rect
	Color uint32
	Text  string
	Align TextAlign
}

// PanelPaint is the ordered drawing of one visible panel.
type PanelPaint struct {
	Name    string
	Bounds  Rect
	Regions []PaintRegion
}

// Frame is everything a Painter needs for one redraw: the clear color and
// the visible panels in registration order.
type Frame struct {
	Background uint32
	Panels     []PanelPaint
}

// Painter renders frames. Backends implement it; the core never draws.
type Painter interface {
	Paint(f Frame) error
}

func fill(r Rect, c uint32) PaintRegion { return PaintRegion{Kind: PaintFill, Rect: r, Color: c} }

func outline(r Rect, c uint32) PaintRegion { return PaintRegion{Kind: PaintOutline, Rect: r, Color: c} }

func text(r Rect, s string, c uint32, a TextAlign) PaintRegion {
	return PaintRegion{Kind: PaintText, Rect: r, Color: c, Text: s, Align: a}
}

// Paint lists the panel's drawing: widget bodies in tab order, then any open
// dropdown list so it sits on top of its neighbours. With debug set, the
// panel bounds and the selected widget are outlined last.
func (p *Panel[T]) Paint(st Style, debug bool) []PaintRegion {
	var out, overlay []PaintRegion
	for _, s := range p.tabOrder {
		switch s.kind {
		case KindButton:
			out = appendButton(out, p.buttons[s.index], st)
		case KindTextField:
			out = appendTextField(out, p.textFields[s.index], st)
		case KindFader:
			out = appendFader(out, p.faders[s.index], st)
		case KindDropdown:
			d := p.dropdowns[s.index]
			out = appendDropdownButton(out, d, st)
			if d.IsOpen() {
				overlay = appendDropdownList(overlay, d, st)
			}
		}
	}
	out = append(out, overlay...)

	if debug {
		out = append(out, outline(p.Bounds(), st.DebugColor))
		if ref, ok := p.Active(); ok {
			out = append(out, outline(p.Widget(ref.Kind, ref.Index).VisualBounds(), st.FocusColor))
		}
	}
	return out
}

func appendButton[T any](out []PaintRegion, b *Button[T], st Style) []PaintRegion {
	c := b.Color()
	switch {
	case b.IsPressed():
		c = Shade(c, st.PressedShade)
	case b.IsHovered():
		c = Shade(c, st.HoverShade)
	}
	out = append(out, fill(b.Bounds(), c))
	if b.Label() != "" {
		out = append(out, text(b.Bounds(), b.Label(), st.TextColor, AlignCenter()))
	}
	return out
}

func appendTextField(out []PaintRegion, tf *TextField, st Style) []PaintRegion {
	r := tf.Bounds()
	if !tf.IsTransparent() {
		if tf.Label() != "" {
			lr := Rect{X: r.X, Y: r.Y - LabelHeight, W: r.W, H: LabelHeight}
			out = append(out, text(lr, tf.Label(), st.LabelColor, AlignLeft(0)))
		}
		c := st.TextFieldColor
		if tf.IsActive() {
			c = st.TextFieldActiveColor
		}
		out = append(out, fill(r, c))
		border := st.TextFieldBorderColor
		if tf.IsActive() {
			border = st.FocusColor
		}
		out = append(out, outline(r, border))
	}
	if s := tf.Display(); s != "" {
		out = append(out, text(r, s, st.TextColor, tf.Align()))
	}
	return out
}

func appendFader(out []PaintRegion, f *Fader, st Style) []PaintRegion {
	vb := f.VisualBounds()
	var track Rect
	if f.Orientation() == Vertical {
		track = Rect{X: vb.X + (vb.W-st.FaderTrackThickness)/2, Y: vb.Y, W: st.FaderTrackThickness, H: vb.H}
	} else {
		track = Rect{X: vb.X, Y: vb.Y + (vb.H-st.FaderTrackThickness)/2, W: vb.W, H: st.FaderTrackThickness}
	}
	knob := st.FaderKnobColor
	if f.IsHovered() {
		knob = st.FaderKnobHoveredColor
	}
	return append(out, fill(track, st.FaderTrackColor), fill(f.Bounds(), knob))
}

func appendDropdownButton(out []PaintRegion, d *Dropdown, st Style) []PaintRegion {
	r := d.Row(0)
	return append(out,
		fill(r, st.DropdownColor),
		outline(r, st.DropdownBorderColor),
		text(r, d.Caption(), st.TextColor, AlignLeft(5)),
		text(r, "v", st.TextColor, AlignRight(5)),
	)
}

func appendDropdownList(out []PaintRegion, d *Dropdown, st Style) []PaintRegion {
	for i, opt := range d.Options() {
		r := d.Row(i + 1)
		c := st.DropdownRowColor
		if d.HoveredRow() == i+1 {
			c = st.DropdownHoveredColor
		}
		out = append(out, fill(r, c), text(r, opt, st.TextColor, AlignLeft(5)))
	}
	list := d.VisualBounds()
	list.Y += d.RowHeight()
	list.H -= d.RowHeight()
	return append(out, outline(list, st.DropdownBorderColor))
}
