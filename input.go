package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key is a physical key, named after its position on a US keyboard.
// Backends report positions; keymap layouts decide what text they produce.
type Key int

const (
	KeyNone Key = iota

	// Printable positions. Their names double as keymap table keys.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGraveAccent
	KeyComma
	KeyPeriod
	KeySlash
	KeyWorld1 // ISO key left of Z
	KeyWorld2

	// Control keys.
	KeyTab
	KeyBackspace
	KeyEnter
	KeyKPEnter
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF12

	KeyCount
)

var keyNames = [...]string{
	KeyNone:         "none",
	KeyA:            "a",
	KeyB:            "b",
	KeyC:            "c",
	KeyD:            "d",
	KeyE:            "e",
	KeyF:            "f",
	KeyG:            "g",
	KeyH:            "h",
	KeyI:            "i",
	KeyJ:            "j",
	KeyK:            "k",
	KeyL:            "l",
	KeyM:            "m",
	KeyN:            "n",
	KeyO:            "o",
	KeyP:            "p",
	KeyQ:            "q",
	KeyR:            "r",
	KeyS:            "s",
	KeyT:            "t",
	KeyU:            "u",
	KeyV:            "v",
	KeyW:            "w",
	KeyX:            "x",
	KeyY:            "y",
	KeyZ:            "z",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeySpace:        "space",
	KeyMinus:        "minus",
	KeyEqual:        "equal",
	KeyLeftBracket:  "left_bracket",
	KeyRightBracket: "right_bracket",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyApostrophe:   "apostrophe",
	KeyGraveAccent:  "grave_accent",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	KeyWorld1:       "world1",
	KeyWorld2:       "world2",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyEnter:        "enter",
	KeyKPEnter:      "kp_enter",
	KeyEscape:       "escape",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyF12:          "f12",
}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		if Key(k) != KeyNone {
			m[name] = Key(k)
		}
	}
	return m
}()

// KeyByName looks up a key by its keymap name ("a", "minus", "world1", ...).
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// Mod is a set of modifier flags held during a key press.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModAltGr
	ModCapsLock
)

// Has reports whether every flag in m2 is set in m.
func (m Mod) Has(m2 Mod) bool { return m&m2 == m2 }

// RawEventKind tags a RawEvent.
type RawEventKind uint8

const (
	RawNone RawEventKind = iota
	RawQuit
	RawMouseMove
	RawMouseDown
	RawMouseUp
	RawKeyDown
)

func (k RawEventKind) String() string {
	switch k {
	case RawQuit:
		return "Quit"
	case RawMouseMove:
		return "MouseMove"
	case RawMouseDown:
		return "MouseDown"
	case RawMouseUp:
		return "MouseUp"
	case RawKeyDown:
		return "KeyDown"
	default:
		return "None"
	}
}

// RawEvent is one platform event, already stripped of platform types.
// X and Y are window coordinates with y growing downward.
type RawEvent struct {
	Kind     RawEventKind
	X, Y     float32
	Button   MouseButton
	Key      Key
	Scancode int
	Mods     Mod
}

// Constructors for the common raw events, mostly useful to backends and tests.

func MouseMove(x, y float32) RawEvent { return RawEvent{Kind: RawMouseMove, X: x, Y: y} }

func MouseDown(b MouseButton, x, y float32) RawEvent {
	return RawEvent{Kind: RawMouseDown, Button: b, X: x, Y: y}
}

func MouseUp(b MouseButton, x, y float32) RawEvent {
	return RawEvent{Kind: RawMouseUp, Button: b, X: x, Y: y}
}

func KeyPress(k Key, mods Mod) RawEvent { return RawEvent{Kind: RawKeyDown, Key: k, Mods: mods} }

// EventSource blocks until the platform delivers the next event.
type EventSource interface {
	WaitEvent() RawEvent
}
