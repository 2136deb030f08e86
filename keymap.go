package gui

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

//go:embed layouts/*.toml
var layoutFS embed.FS

// ErrBadLayout is returned for layout tables that name unknown keys or carry
// more than three cells per key.
var ErrBadLayout = errors.New("malformed keyboard layout")

const (
	colBase = iota
	colShift
	colAltGr
	colCount
)

// KeyMap turns physical keys plus modifiers into normalized input events.
type KeyMap struct {
	name  string
	table [KeyCount][colCount]string
}

type layoutFile struct {
	Name string              `toml:"name"`
	Keys map[string][]string `toml:"keys"`
}

// LoadKeyMap parses a TOML layout:
//
//	name = "custom"
//	[keys]
//	a = ["a", "A"]
//	"2" = ["2", "\"", "@"]
//
// Cells are base, shift and altgr text in that order. Missing or empty cells
// produce no text.
func LoadKeyMap(r io.Reader) (*KeyMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	var lf layoutFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	km := &KeyMap{name: lf.Name}
	for name, cells := range lf.Keys {
		k, ok := KeyByName(name)
		if !ok || k >= KeyTab {
			return nil, fmt.Errorf("layout %q: %w: unknown key %q", lf.Name, ErrBadLayout, name)
		}
		if len(cells) > colCount {
			return nil, fmt.Errorf("layout %q: %w: key %q has %d cells", lf.Name, ErrBadLayout, name, len(cells))
		}
		copy(km.table[k][:], cells)
	}
	return km, nil
}

// Layout returns one of the embedded layouts by name.
func Layout(name string) (*KeyMap, error) {
	f, err := layoutFS.Open("layouts/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	defer f.Close()
	return LoadKeyMap(f)
}

// Layouts lists the embedded layout names.
func Layouts() []string {
	entries, _ := layoutFS.ReadDir("layouts")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// DefaultKeyMap returns the embedded US layout.
func DefaultKeyMap() *KeyMap {
	km, err := Layout("us")
	if err != nil {
		panic(fmt.Sprintf("gui: embedded us layout: %v", err))
	}
	return km
}

// Name returns the layout name.
func (km *KeyMap) Name() string { return km.name }

// Lookup returns the text for k in the base, shift and altgr columns.
func (km *KeyMap) Lookup(k Key) (base, shift, altgr string) {
	if k <= KeyNone || k >= KeyCount {
		return "", "", ""
	}
	row := km.table[k]
	return row[colBase], row[colShift], row[colAltGr]
}

// Decode maps a key press to an input event. Editing and navigation keys are
// fixed; everything else goes through the layout table.
func (km *KeyMap) Decode(k Key, mods Mod) InputEvent {
	switch k {
	case KeyBackspace:
		return InputEvent{Kind: InputPopChar}
	case KeyTab:
		if mods.Has(ModShift) {
			return InputEvent{Kind: InputShiftTab}
		}
		return InputEvent{Kind: InputTab}
	case KeyEnter, KeyKPEnter:
		return InputEvent{Kind: InputReturn}
	case KeyEscape:
		return InputEvent{Kind: InputEscape}
	case KeyUp:
		return InputEvent{Kind: InputArrow, Dir: DirUp}
	case KeyDown:
		return InputEvent{Kind: InputArrow, Dir: DirDown}
	case KeyLeft:
		return InputEvent{Kind: InputArrow, Dir: DirLeft}
	case KeyRight:
		return InputEvent{Kind: InputArrow, Dir: DirRight}
	case KeyF12:
		return InputEvent{Kind: InputToggleDebug}
	}

	altgr := mods.Has(ModAltGr) || mods.Has(ModCtrl|ModAlt)
	if mods.Has(ModCtrl) && !altgr {
		return InputEvent{}
	}

	base, shifted, alt := km.Lookup(k)
	var text string
	switch {
	case altgr:
		text = alt
	case mods.Has(ModShift) != (mods.Has(ModCapsLock) && isLetter(base)):
		text = shifted
	default:
		text = base
	}
	if text == "" {
		return InputEvent{}
	}
	return InputEvent{Kind: InputText, Text: text}
}

// isLetter reports whether s is a single letter, the only cells CapsLock flips.
func isLetter(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && size > 0 && unicode.IsLetter(r)
}
