package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/rgui"
)

// EventSource queues GLFW callbacks as gui.RawEvents. WaitEvent sleeps in
// glfw.WaitEvents until a callback has queued something.
type EventSource struct {
	window *glfw.Window
	queue  []gui.RawEvent
	onSize func(w, h int)
}

var _ gui.EventSource = (*EventSource)(nil)

// NewEventSource installs input callbacks on window. It must be called on
// the main thread.
func NewEventSource(window *glfw.Window) *EventSource {
	s := &EventSource{window: window}

	// Report CapsLock in the mods bitfield.
	window.SetInputMode(glfw.LockKeyMods, glfw.True)

	window.SetKeyCallback(s.keyCallback)
	window.SetMouseButtonCallback(s.mouseButtonCallback)
	window.SetCursorPosCallback(s.cursorPosCallback)
	window.SetCloseCallback(s.closeCallback)
	window.SetFramebufferSizeCallback(s.framebufferSizeCallback)
	return s
}

// OnResize registers fn to run when the framebuffer size changes.
func (s *EventSource) OnResize(fn func(w, h int)) { s.onSize = fn }

// WaitEvent implements gui.EventSource.
func (s *EventSource) WaitEvent() gui.RawEvent {
	for len(s.queue) == 0 {
		glfw.WaitEvents()
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev
}

func (s *EventSource) push(ev gui.RawEvent) { s.queue = append(s.queue, ev) }

func (s *EventSource) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	k := glfwKeyToGUIKey(key)
	if k == gui.KeyNone {
		return
	}
	ev := gui.KeyPress(k, s.mods(mods))
	ev.Scancode = scancode
	s.push(ev)
}

func (s *EventSource) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButtonToGUI(button)
	if !ok {
		return
	}
	x, y := w.GetCursorPos()
	switch action {
	case glfw.Press:
		s.push(gui.MouseDown(b, float32(x), float32(y)))
	case glfw.Release:
		s.push(gui.MouseUp(b, float32(x), float32(y)))
	}
}

func (s *EventSource) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	s.push(gui.MouseMove(float32(xpos), float32(ypos)))
}

func (s *EventSource) closeCallback(w *glfw.Window) {
	s.push(gui.RawEvent{Kind: gui.RawQuit})
}

func (s *EventSource) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if s.onSize != nil {
		s.onSize(width, height)
	}
}

// mods converts GLFW modifiers. GLFW reports AltGr as plain Alt, so the
// right Alt key is checked directly.
func (s *EventSource) mods(m glfw.ModifierKey) gui.Mod {
	var out gui.Mod
	if m&glfw.ModShift != 0 {
		out |= gui.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= gui.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= gui.ModAlt
	}
	if m&glfw.ModCapsLock != 0 {
		out |= gui.ModCapsLock
	}
	if s.window.GetKey(glfw.KeyRightAlt) == glfw.Press {
		out |= gui.ModAltGr
	}
	return out
}

var glfwKeys = map[glfw.Key]gui.Key{
	glfw.KeySpace:        gui.KeySpace,
	glfw.KeyMinus:        gui.KeyMinus,
	glfw.KeyEqual:        gui.KeyEqual,
	glfw.KeyLeftBracket:  gui.KeyLeftBracket,
	glfw.KeyRightBracket: gui.KeyRightBracket,
	glfw.KeyBackslash:    gui.KeyBackslash,
	glfw.KeySemicolon:    gui.KeySemicolon,
	glfw.KeyApostrophe:   gui.KeyApostrophe,
	glfw.KeyGraveAccent:  gui.KeyGraveAccent,
	glfw.KeyComma:        gui.KeyComma,
	glfw.KeyPeriod:       gui.KeyPeriod,
	glfw.KeySlash:        gui.KeySlash,
	glfw.KeyWorld1:       gui.KeyWorld1,
	glfw.KeyWorld2:       gui.KeyWorld2,
	glfw.KeyTab:          gui.KeyTab,
	glfw.KeyBackspace:    gui.KeyBackspace,
	glfw.KeyEnter:        gui.KeyEnter,
	glfw.KeyKPEnter:      gui.KeyKPEnter,
	glfw.KeyEscape:       gui.KeyEscape,
	glfw.KeyLeft:         gui.KeyLeft,
	glfw.KeyRight:        gui.KeyRight,
	glfw.KeyUp:           gui.KeyUp,
	glfw.KeyDown:         gui.KeyDown,
	glfw.KeyF12:          gui.KeyF12,
}

// glfwKeyToGUIKey maps GLFW key positions to gui keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return gui.KeyA + gui.Key(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return gui.Key0 + gui.Key(key-glfw.Key0)
	}
	return glfwKeys[key]
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to gui mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
