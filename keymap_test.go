package gui

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestKeyMapDecodeUS(t *testing.T) {
	km := DefaultKeyMap()
	if km.Name() != "us" {
		t.Fatalf("default layout = %q", km.Name())
	}

	tests := []struct {
		name string
		key  Key
		mods Mod
		want InputEvent
	}{
		{"base", KeyQ, 0, InputEvent{Kind: InputText, Text: "q"}},
		{"shift", KeyQ, ModShift, InputEvent{Kind: InputText, Text: "Q"}},
		{"caps", KeyQ, ModCapsLock, InputEvent{Kind: InputText, Text: "Q"}},
		{"caps+shift", KeyQ, ModCapsLock | ModShift, InputEvent{Kind: InputText, Text: "q"}},
		{"caps leaves digits", Key1, ModCapsLock, InputEvent{Kind: InputText, Text: "1"}},
		{"shift digit", Key2, ModShift, InputEvent{Kind: InputText, Text: "@"}},
		{"space", KeySpace, 0, InputEvent{Kind: InputText, Text: " "}},
		{"ctrl swallows", KeyC, ModCtrl, InputEvent{}},
		{"no altgr cell", KeyQ, ModAltGr, InputEvent{}},
		{"backspace", KeyBackspace, 0, InputEvent{Kind: InputPopChar}},
		{"tab", KeyTab, 0, InputEvent{Kind: InputTab}},
		{"enter", KeyEnter, 0, InputEvent{Kind: InputReturn}},
		{"keypad enter", KeyKPEnter, 0, InputEvent{Kind: InputReturn}},
		{"left", KeyLeft, 0, InputEvent{Kind: InputArrow, Dir: DirLeft}},
		{"up", KeyUp, 0, InputEvent{Kind: InputArrow, Dir: DirUp}},
		{"f12", KeyF12, 0, InputEvent{Kind: InputToggleDebug}},
		{"none", KeyNone, 0, InputEvent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Decode(tt.key, tt.mods); got != tt.want {
				t.Errorf("Decode(%s, %b) = %v, want %v", tt.key, tt.mods, got, tt.want)
			}
		})
	}
}

func TestKeyMapDecodeSE(t *testing.T) {
	km, err := Layout("se")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		key  Key
		mods Mod
		want string
	}{
		{"a ring", KeyLeftBracket, 0, "å"},
		{"caps a ring", KeyLeftBracket, ModCapsLock, "Å"},
		{"o umlaut", KeySemicolon, ModShift, "Ö"},
		{"shift 2", Key2, ModShift, "\""},
		{"altgr 2", Key2, ModAltGr, "@"},
		{"ctrl+alt 2", Key2, ModCtrl | ModAlt, "@"},
		{"altgr 7", Key7, ModAltGr, "{"},
		{"altgr minus", KeyMinus, ModAltGr, "\\"},
		{"iso key", KeyWorld1, ModShift, ">"},
		{"altgr e", KeyE, ModAltGr, "€"},
		{"caps minus", KeyMinus, ModCapsLock, "+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Decode(tt.key, tt.mods)
			if got.Kind != InputText || got.Text != tt.want {
				t.Errorf("Decode(%s, %b) = %v, want Text(%q)", tt.key, tt.mods, got, tt.want)
			}
		})
	}
}

func TestLayouts(t *testing.T) {
	got := Layouts()
	if !slices.Equal(got, []string{"se", "us"}) {
		t.Errorf("Layouts() = %v", got)
	}
	if _, err := Layout("klingon"); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("unknown layout error = %v", err)
	}
}

func TestLoadKeyMap(t *testing.T) {
	km, err := LoadKeyMap(strings.NewReader(`
name = "tiny"
[keys]
a = ["x", "X", "y"]
left_bracket = ["["]
`))
	if err != nil {
		t.Fatal(err)
	}
	if base, shift, alt := km.Lookup(KeyA); base != "x" || shift != "X" || alt != "y" {
		t.Errorf("Lookup(a) = %q %q %q", base, shift, alt)
	}
	if ev := km.Decode(KeyLeftBracket, ModShift); ev.Kind != InputNone {
		t.Errorf("missing shift cell should produce nothing, got %v", ev)
	}
	if ev := km.Decode(KeyB, 0); ev.Kind != InputNone {
		t.Errorf("unmapped key should produce nothing, got %v", ev)
	}
}

func TestLoadKeyMapErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		bad  bool
	}{
		{"unknown key", "[keys]\nfoo = [\"f\"]\n", true},
		{"control key", "[keys]\nenter = [\"\\n\"]\n", true},
		{"too many cells", "[keys]\na = [\"a\", \"A\", \"b\", \"B\"]\n", true},
		{"not toml", "[keys\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyMap(strings.NewReader(tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrBadLayout) != tt.bad {
				t.Errorf("errors.Is(ErrBadLayout) = %v for %v", !tt.bad, err)
			}
		})
	}
}

func TestKeyByName(t *testing.T) {
	for k := KeyA; k < KeyCount; k++ {
		got, ok := KeyByName(k.String())
		if !ok || got != k {
			t.Errorf("KeyByName(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := KeyByName("none"); ok {
		t.Error("none must not resolve")
	}
}
