package gui

// Option configures a GUI at construction.
//
//	g, err := gui.New(panels,
//		gui.WithEventSource(src),
//		gui.WithPainter(renderer),
//		gui.WithEscapeQuits(true),
//	)
type Option func(*settings)

type settings struct {
	keys        *KeyMap
	escapeQuits bool
	source      EventSource
	painter     Painter
	style       Style
	background  uint32
	debug       bool
}

func defaultSettings() settings {
	return settings{
		style:      DefaultStyle(),
		background: DefaultBackground,
	}
}

// WithKeyMap decodes keys with km instead of the US layout.
func WithKeyMap(km *KeyMap) Option {
	return func(s *settings) { s.keys = km }
}

// WithEscapeQuits makes the Escape key produce EventQuit.
func WithEscapeQuits(v bool) Option {
	return func(s *settings) { s.escapeQuits = v }
}

// WithEventSource sets the blocking source used by Poll.
func WithEventSource(src EventSource) Option {
	return func(s *settings) { s.source = src }
}

// WithPainter sets the collaborator that Draw hands frames to.
func WithPainter(p Painter) Option {
	return func(s *settings) { s.painter = p }
}

// WithStyle overrides the widget palette.
func WithStyle(st Style) Option {
	return func(s *settings) { s.style = st }
}

// WithBackground sets the window clear color.
func WithBackground(c uint32) Option {
	return func(s *settings) { s.background = c }
}

// WithDebug starts with the panel-bounds overlay enabled.
func WithDebug(v bool) Option {
	return func(s *settings) { s.debug = v }
}
