// Command gen replays scripted input against the demo app, paints each
// resulting frame offscreen, and saves screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/ [-format jpg|bmp] [-out doc/imgs]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/bmp"

	gui "github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/opengl"
	"github.com/go-theft-auto/rgui/internal/demo"
)

const (
	width  = 800
	height = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	format := flag.String("format", "jpg", "image format: jpg or bmp")
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*format, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one scripted capture.
type screenshot struct {
	name   string
	script []step
	debug  bool
}

// step is either raw input or typed text.
type step struct {
	raw  *gui.RawEvent
	text string
}

func raw(ev gui.RawEvent) step { return step{raw: &ev} }

func typed(s string) step { return step{text: s} }

func clickAt(x, y float32) []step {
	return []step{
		raw(gui.MouseMove(x, y)),
		raw(gui.MouseDown(gui.MouseButtonLeft, x, y)),
		raw(gui.MouseUp(gui.MouseButtonLeft, x, y)),
	}
}

func concat(parts ...[]step) []step {
	var out []step
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func buildScreenshots() []screenshot {
	login := concat(clickAt(300, 210), []step{typed("ada")}, clickAt(300, 250), []step{typed("secret")}, clickAt(300, 320))
	return []screenshot{
		{name: "login"},
		{name: "login-filled", script: concat(clickAt(300, 210), []step{typed("ada")}, clickAt(300, 250), []step{typed("secret")})},
		{name: "login-empty-user", script: clickAt(300, 320)},
		{name: "editor", script: login},
		{name: "editor-dropdown", script: concat(login, clickAt(230, 70), []step{raw(gui.MouseMove(230, 130))})},
		{name: "editor-preset", script: concat(login, clickAt(230, 70), clickAt(230, 130))},
		{name: "editor-debug", script: concat(login, clickAt(230, 70)), debug: true},
	}
}

func run(format, outDir string) error {
	encode, err := encoder(format)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(width, height, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(width, height)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		path := filepath.Join(outDir, s.name+"."+format)
		if err := capture(renderer, s, path, encode); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s\n", path)
	}
	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func encoder(format string) (func(io.Writer, image.Image) error, error) {
	switch format {
	case "jpg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
		}, nil
	case "bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// capture runs a fresh app through the script and saves the final frame.
func capture(renderer *opengl.Renderer, s screenshot, path string, encode func(io.Writer, image.Image) error) error {
	app, err := demo.NewApp(gui.WithDebug(s.debug))
	if err != nil {
		return err
	}
	for _, st := range s.script {
		var ev gui.HostEvent[demo.Action]
		if st.raw != nil {
			ev = app.UI.Handle(*st.raw)
		} else {
			ev = app.UI.Dispatch(gui.InputEvent{Kind: gui.InputText, Text: st.text})
		}
		app.Handle(ev)
	}

	if err := renderer.Paint(app.UI.Frame()); err != nil {
		return err
	}

	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL's origin is bottom-left.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f, img)
}
