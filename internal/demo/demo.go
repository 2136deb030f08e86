// Package demo is the login and color editor application shared by the
// example binary and the screenshot generator.
package demo

import (
	"fmt"

	gui "github.com/go-theft-auto/rgui"
)

// Action is the payload demo buttons return.
type Action int

const (
	ActionLogin Action = iota + 1
	ActionQuit
	ActionLogout
)

func (a Action) String() string {
	switch a {
	case ActionLogin:
		return "login"
	case ActionQuit:
		return "quit"
	case ActionLogout:
		return "logout"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Panel names.
const (
	LoginPanel  = "login"
	EditorPanel = "editor"
)

// Login text fields.
const (
	fieldUser = iota
	fieldPassword
	fieldStatus
)

// Preset is a named background color offered by the editor dropdown.
type Preset struct {
	Name    string
	R, G, B uint8
}

// Presets in dropdown order.
var Presets = []Preset{
	{"Slate", 30, 30, 34},
	{"Forest", 24, 64, 40},
	{"Ocean", 20, 50, 90},
	{"Ember", 110, 40, 20},
}

// App owns the GUI and reacts to its host events.
type App struct {
	UI     *gui.GUI[Action]
	login  *gui.Panel[Action]
	editor *gui.Panel[Action]
	user   string
}

// NewApp builds both panels and starts on the login panel.
func NewApp(opts ...gui.Option) (*App, error) {
	login, err := buildLogin()
	if err != nil {
		return nil, fmt.Errorf("login panel: %w", err)
	}
	editor, err := buildEditor()
	if err != nil {
		return nil, fmt.Errorf("editor panel: %w", err)
	}
	ui, err := gui.New([]*gui.Panel[Action]{login}, opts...)
	if err != nil {
		return nil, err
	}
	return &App{UI: ui, login: login, editor: editor}, nil
}

// User returns the name entered at login, or "" when logged out.
func (a *App) User() string { return a.user }

// Handle reacts to one host event. It reports true when the app should exit.
func (a *App) Handle(ev gui.HostEvent[Action]) bool {
	switch ev.Kind {
	case gui.EventQuit:
		return true
	case gui.EventCallback:
		return a.onAction(ev.Callback)
	case gui.EventFaderUpdate:
		a.applyFaders()
	case gui.EventDropdownUpdate:
		for _, p := range Presets {
			if p.Name == ev.Label {
				a.setColor(p.R, p.G, p.B)
			}
		}
	}
	return false
}

func (a *App) onAction(act Action) bool {
	switch act {
	case ActionQuit:
		return true
	case ActionLogin:
		user := a.UI.TextFieldContent(LoginPanel, fieldUser)
		if user == "" {
			a.UI.SetTextFieldContent(LoginPanel, fieldStatus, "enter a user name")
			return false
		}
		a.user = user
		a.UI.ClearTextField(LoginPanel, fieldPassword)
		a.UI.ClearTextField(LoginPanel, fieldStatus)
		if err := a.UI.SwapPanel(LoginPanel, a.editor); err != nil {
			panic(err)
		}
		a.syncFaders()
	case ActionLogout:
		a.user = ""
		if err := a.UI.SwapPanel(EditorPanel, a.login); err != nil {
			panic(err)
		}
	}
	return false
}

// setColor moves the faders to (r, g, b) and applies it.
func (a *App) setColor(r, g, b uint8) {
	a.UI.SetFaderValue(EditorPanel, 0, float32(r))
	a.UI.SetFaderValue(EditorPanel, 1, float32(g))
	a.UI.SetFaderValue(EditorPanel, 2, float32(b))
	a.applyFaders()
}

// syncFaders moves the faders to the current background.
func (a *App) syncFaders() {
	r, g, b, _ := gui.UnpackRGBA(a.UI.Background())
	a.setColor(r, g, b)
}

func (a *App) applyFaders() {
	ch := func(i int) uint8 { return uint8(a.UI.FaderValue(EditorPanel, i) + 0.5) }
	r, g, b := ch(0), ch(1), ch(2)
	a.UI.SetBackground(gui.RGB(r, g, b))
	a.UI.SetTextFieldContent(EditorPanel, 0, fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func buildLogin() (*gui.Panel[Action], error) {
	user, err := gui.NewTextField().Rect(0, 20, 300, 25).Label("Username").Clickable().Build()
	if err != nil {
		return nil, err
	}
	pass, err := gui.NewTextField().Rect(0, 70, 300, 25).Label("Password").Clickable().Password().Build()
	if err != nil {
		return nil, err
	}
	status, err := gui.NewTextField().Rect(0, 100, 300, 20).Transparent().Align(gui.AlignCenter()).Build()
	if err != nil {
		return nil, err
	}
	login, err := gui.NewButton[Action]().Rect(0, 130, 145, 30).Label("Log in").Callback(ActionLogin).Build()
	if err != nil {
		return nil, err
	}
	quit, err := gui.NewButton[Action]().Rect(155, 130, 145, 30).Label("Quit").
		Color(gui.RGB(120, 50, 50)).Callback(ActionQuit).Build()
	if err != nil {
		return nil, err
	}
	return gui.NewPanel(LoginPanel, 250, 180, gui.PanelWidgets[Action]{
		Buttons:    []*gui.Button[Action]{login, quit},
		TextFields: []*gui.TextField{user, pass, status},
	}), nil
}

func buildEditor() (*gui.Panel[Action], error) {
	var faders []*gui.Fader
	for i := 0; i < 3; i++ {
		f, err := gui.NewFader().Position(float32(20+i*40), 220).Length(200).Vertical().Range(0, 255).Build()
		if err != nil {
			return nil, err
		}
		faders = append(faders, f)
	}

	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	presets, err := gui.NewDropdown().Position(160, 20).Width(120).Options(names...).Build()
	if err != nil {
		return nil, err
	}
	hex, err := gui.NewTextField().Rect(160, 150, 120, 22).Label("Color").Build()
	if err != nil {
		return nil, err
	}
	logout, err := gui.NewButton[Action]().Rect(160, 190, 120, 30).Label("Log out").Callback(ActionLogout).Build()
	if err != nil {
		return nil, err
	}
	return gui.NewPanel(EditorPanel, 40, 40, gui.PanelWidgets[Action]{
		Buttons:    []*gui.Button[Action]{logout},
		TextFields: []*gui.TextField{hex},
		Faders:     faders,
		Dropdowns:  []*gui.Dropdown{presets},
	}), nil
}
