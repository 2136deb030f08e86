// Example runs the login and color editor demo in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings come from ~/.config/rgui/config.toml or RGUI_* variables; see
// package config. The loop blocks on input and redraws after every event.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/opengl"
	"github.com/go-theft-auto/rgui/config"
	"github.com/go-theft-auto/rgui/internal/demo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	verbose := flag.Bool("v", false, "trace input events")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	gui.SetVerbose(verbose || cfg.Log.Verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	events := opengl.NewEventSource(window)
	events.OnResize(renderer.Resize)

	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	opts = append(opts, gui.WithEventSource(events), gui.WithPainter(renderer))

	app, err := demo.NewApp(opts...)
	if err != nil {
		return err
	}

	for {
		if err := app.UI.Draw(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		window.SwapBuffers()

		ev := app.UI.Poll()
		if ev.Kind != gui.EventNone {
			slog.Info("event", "event", ev.String(), "user", app.User())
		}
		if app.Handle(ev) {
			return nil
		}
	}
}
