package gui

// DefaultBackground is the window clear color.
var DefaultBackground = RGB(30, 30, 34)

// Style is the fixed palette the paint contract uses.
type Style struct {
	TextColor  uint32
	LabelColor uint32

	// Buttons carry their own fill; hovered and pressed shift it by these.
	HoverShade   int
	PressedShade int

	TextFieldColor       uint32
	TextFieldActiveColor uint32
	TextFieldBorderColor uint32

	FaderTrackColor       uint32
	FaderKnobColor        uint32
	FaderKnobHoveredColor uint32
	FaderTrackThickness   float32

	DropdownColor        uint32
	DropdownRowColor     uint32
	DropdownHoveredColor uint32
	DropdownBorderColor  uint32

	FocusColor uint32
	DebugColor uint32

	BorderSize float32
}

// DefaultStyle returns the dark palette.
func DefaultStyle() Style {
	return Style{
		TextColor:  ColorWhite,
		LabelColor: ColorLightGray,

		HoverShade:   30,
		PressedShade: -30,

		TextFieldColor:       RGB(45, 45, 50),
		TextFieldActiveColor: RGB(60, 60, 70),
		TextFieldBorderColor: RGB(100, 100, 100),

		FaderTrackColor:       RGB(70, 70, 70),
		FaderKnobColor:        RGB(160, 160, 160),
		FaderKnobHoveredColor: RGB(210, 210, 210),
		FaderTrackThickness:   4,

		DropdownColor:        RGB(85, 85, 85),
		DropdownRowColor:     RGB(55, 55, 60),
		DropdownHoveredColor: RGB(50, 100, 150),
		DropdownBorderColor:  RGB(110, 110, 110),

		FocusColor: RGB(0, 200, 220),
		DebugColor: ColorRed,

		BorderSize: 1,
	}
}

// LightStyle returns a light palette.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGB(20, 20, 20)
	s.LabelColor = RGB(60, 60, 60)
	s.HoverShade = -25
	s.PressedShade = -50
	s.TextFieldColor = ColorWhite
	s.TextFieldActiveColor = RGB(235, 240, 255)
	s.TextFieldBorderColor = RGB(160, 160, 160)
	s.FaderTrackColor = RGB(200, 200, 200)
	s.FaderKnobColor = RGB(120, 120, 120)
	s.FaderKnobHoveredColor = RGB(80, 80, 80)
	s.DropdownColor = RGB(220, 220, 220)
	s.DropdownRowColor = RGB(245, 245, 245)
	s.DropdownHoveredColor = RGB(0, 120, 215)
	s.DropdownBorderColor = RGB(180, 180, 180)
	s.FocusColor = RGB(0, 100, 200)
	return s
}

// StyleByName resolves "dark" or "light"; anything else yields the default.
func StyleByName(name string) Style {
	if name == "light" {
		return LightStyle()
	}
	return DefaultStyle()
}

// Shade lightens (delta > 0) or darkens a packed color, keeping alpha.
func Shade(c uint32, delta int) uint32 {
	r, g, b, a := UnpackRGBA(c)
	return RGBA(shadeChannel(r, delta), shadeChannel(g, delta), shadeChannel(b, delta), a)
}

func shadeChannel(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
