/*
Package gui provides a retained-mode widget toolkit: named panels of buttons,
text fields, faders and dropdowns, driven by a blocking input loop.

# Overview

Widgets are declared once with builders, grouped into panels at a fixed
origin, and handed to a GUI. The GUI owns them from then on. The host loop
alternates three steps: block for the next platform event, dispatch it, and
redraw. Nothing runs in the background and no locking is needed.

Input flows through three stages:

	EventSource.WaitEvent  raw platform event (RawEvent)
	Translator.Translate   normalized event (InputEvent): Hover, Click, Tab, Text...
	GUI.Dispatch           widget and focus updates, plus one HostEvent for the app

# Quick Start

	ok, _ := gui.NewButton[Action]().Rect(0, 0, 80, 30).Label("OK").Callback(ActionOK).Build()
	name, _ := gui.NewTextField().Rect(0, 50, 200, 25).Label("Name").Clickable().Build()

	login := gui.NewPanel("login", 100, 100, gui.PanelWidgets[Action]{
		Buttons:    []*gui.Button[Action]{ok},
		TextFields: []*gui.TextField{name},
	})

	ui, err := gui.New([]*gui.Panel[Action]{login},
		gui.WithEventSource(events),
		gui.WithPainter(renderer),
	)
	if err != nil {
		return err
	}

	for {
		if err := ui.Draw(); err != nil {
			return err
		}
		window.SwapBuffers()

		switch ev := ui.Poll(); ev.Kind {
		case gui.EventQuit:
			return nil
		case gui.EventCallback:
			handle(ev.Callback)
		}
	}

Hosts that pump their own events call GUI.Handle with a RawEvent instead of
Poll.

# Host Events

	EventQuit            window closed, or Escape with WithEscapeQuits
	EventCallback        a button was clicked (Callback carries its payload)
	EventFaderUpdate     a fader moved by drag or arrow key (Value, Index)
	EventDropdownUpdate  a dropdown option was picked (Label, Index)

# Pointer Semantics

A click is a left press and release on the same widget. Releasing anywhere
else un-hovers the pressed widget and produces no click. Releasing with
nothing pressed is a background click, which clears focus.

Moving directly from widget A to widget B emits only Hover(B). Consumers must
not expect paired Hover and UnHover events; the hovered widget is a replaced
reference.

While the left button is held over a widget, every motion becomes a Drag for
that widget. Only faders react to it.

# Keyboard Shortcuts

	Tab              Focus the next widget of the focused panel
	Shift+Tab        Focus the previous widget
	Return           Activate the focused widget
	Escape           Clear focus (or quit, with WithEscapeQuits)
	Arrows           Step the focused fader by FaderStep
	Backspace        Delete the last character of every active text field
	F12              Toggle the debug overlay

Tab order is fixed when a panel is built: top to bottom, then left to right,
by each widget's visual bounds.

Printable keys are decoded by a KeyMap. The "us" and "se" layouts are
embedded; LoadKeyMap reads any other layout from TOML. Shift and CapsLock
select the shifted column (CapsLock only for letters). AltGr, or Ctrl+Alt,
selects the third column. Ctrl alone produces no text.

# Rendering

GUI.Frame describes the visible panels as ordered paint regions (fills,
outlines and aligned text) in window coordinates. A Painter draws them.
DrawList tessellates a Frame into batched quads for GPU backends; see
backend/opengl.

# Logging

The package logs through log/slog at Debug level. Call SetVerbose(true) to
trace every translated input and host event.
*/
package gui
