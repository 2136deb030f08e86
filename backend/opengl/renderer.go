// Package opengl provides the GLFW event source and an OpenGL 4.1 painter
// for the gui package.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/rgui"
)

// Renderer paints gui frames with OpenGL. It implements gui.Painter.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int
	border    float32

	atlas *Atlas
}

var _ gui.Painter = (*Renderer)(nil)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// The glyph atlas is single-channel: R is coverage, RGB comes from the vertex.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D glyphs;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(glyphs, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates the GL objects for a width x height window. A GL
// context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height, border: 1}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("glyphs\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats) + TexCoord (2 floats) + Color (packed RGBA)
	stride := int32(unsafe.Sizeof(gui.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.atlas = NewAtlas(nil)
	r.atlas.Upload()

	return r, nil
}

// Font returns the glyph atlas used for text regions.
func (r *Renderer) Font() *Atlas { return r.atlas }

// SetBorder sets the outline thickness in pixels.
func (r *Renderer) SetBorder(px float32) { r.border = px }

// Resize updates the projection size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Paint implements gui.Painter: clear to the frame background, then draw
// every panel's regions in order.
func (r *Renderer) Paint(f gui.Frame) error {
	cr, cg, cb, ca := gui.UnpackRGBA(f.Background)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(float32(cr)/255, float32(cg)/255, float32(cb)/255, float32(ca)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)
	dl.AddFrame(f, r.atlas, r.border)
	return r.Render(dl)
}

// Render draws a DrawList, restoring the GL state it touches.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	restore := []struct {
		flag uint32
		on   bool
	}{
		{gl.BLEND, gl.IsEnabled(gl.BLEND)},
		{gl.DEPTH_TEST, gl.IsEnabled(gl.DEPTH_TEST)},
		{gl.CULL_FACE, gl.IsEnabled(gl.CULL_FACE)},
		{gl.SCISSOR_TEST, gl.IsEnabled(gl.SCISSOR_TEST)},
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		x, y, w, h, ok := r.scissor(cmd.ClipRect)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	for _, s := range restore {
		if s.on {
			gl.Enable(s.flag)
		} else {
			gl.Disable(s.flag)
		}
	}
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// scissor converts a top-left-origin clip rect to GL's bottom-left origin,
// clamped to the window.
func (r *Renderer) scissor(clip [4]float32) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(float32(r.height) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

// Delete releases GL resources.
func (r *Renderer) Delete() {
	r.atlas.Delete()
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", string(log))
	}
	return shader, nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", string(log))
	}
	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
