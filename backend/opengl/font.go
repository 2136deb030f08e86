package opengl

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	gui "github.com/go-theft-auto/rgui"
)

// Atlas lays out text with a fixed-cell basicfont face. The face's glyph
// mask, one glyph per row, is the texture.
type Atlas struct {
	face       *basicfont.Face
	tex        uint32
	texW, texH float32
}

var _ gui.Font = (*Atlas)(nil)

// NewAtlas wraps face, or basicfont.Face7x13 when face is nil. Nothing is
// uploaded until Upload is called with a current GL context.
func NewAtlas(face *basicfont.Face) *Atlas {
	if face == nil {
		face = basicfont.Face7x13
	}
	b := face.Mask.Bounds()
	return &Atlas{face: face, texW: float32(b.Dx()), texH: float32(b.Dy())}
}

// Upload creates the single-channel glyph texture.
func (a *Atlas) Upload() {
	mask := alphaMask(a.face.Mask)
	b := mask.Bounds()

	gl.GenTextures(1, &a.tex)
	gl.BindTexture(gl.TEXTURE_2D, a.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(mask.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete releases the texture.
func (a *Atlas) Delete() {
	if a.tex != 0 {
		gl.DeleteTextures(1, &a.tex)
		a.tex = 0
	}
}

// alphaMask returns m as a tightly packed *image.Alpha at the origin.
func alphaMask(m image.Image) *image.Alpha {
	if am, ok := m.(*image.Alpha); ok && am.Rect.Min == (image.Point{}) && am.Stride == am.Rect.Dx() {
		return am
	}
	b := m.Bounds()
	out := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), m, b.Min, draw.Src)
	return out
}

// TextureID implements gui.Font.
func (a *Atlas) TextureID() uint32 { return a.tex }

// Measure implements gui.Font.
func (a *Atlas) Measure(s string) (w, h float32) {
	adv := font.MeasureString(a.face, s)
	return float32(adv.Ceil()), float32(a.face.Height)
}

// Quads implements gui.Font. Runes the face lacks render as '?'.
func (a *Atlas) Quads(x, y float32, s string) []gui.GlyphQuad {
	quads := make([]gui.GlyphQuad, 0, len(s))
	cellW, cellH := float32(a.face.Width), float32(a.face.Height)
	pen := x
	for _, r := range s {
		idx, ok := a.glyphIndex(r)
		if !ok {
			idx, _ = a.glyphIndex('?')
		}
		x0 := pen + float32(a.face.Left)
		v0 := float32(idx) * cellH / a.texH
		quads = append(quads, gui.GlyphQuad{
			X0: x0, Y0: y,
			X1: x0 + cellW, Y1: y + cellH,
			U0: 0, V0: v0,
			U1: cellW / a.texW, V1: v0 + cellH/a.texH,
		})
		pen += float32(a.face.Advance)
	}
	return quads
}

func (a *Atlas) glyphIndex(r rune) (int, bool) {
	for _, rr := range a.face.Ranges {
		if r >= rr.Low && r < rr.High {
			return int(r-rr.Low) + rr.Offset, true
		}
	}
	return 0, false
}
