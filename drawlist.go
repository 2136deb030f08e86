package gui

import "sync"

// drawListPool recycles DrawList buffers between redraws.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 4),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Font is what a DrawList needs to lay out text regions. Backends provide it
// from whatever glyph atlas they upload.
type Font interface {
	// TextureID is the atlas texture sampled by the quads.
	TextureID() uint32
	// Measure returns the pixel size of s on one line.
	Measure(s string) (w, h float32)
	// Quads lays s out with its top-left corner at (x, y).
	Quads(x, y float32, s string) []GlyphQuad
}

// DrawList is the tessellated form of a Frame: indexed quads batched into
// commands by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // vertex offset of the current command
	idxCmdOffset uint32 // index offset of the current command
}

// Clear resets the DrawList, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips subsequent primitives to (x1, y1)-(x2, y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// SetTexture switches the texture sampled by subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw closes the current command and opens a new one with the current
// texture and clip.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	i := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
}

// AddRect draws a filled rectangle. Fully transparent colors are skipped.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws the four edges of a rectangle, inside its bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// GlyphQuad is one character's screen rectangle and atlas coordinates.
type GlyphQuad struct {
	X0, Y0 float32 // screen, top-left
	X1, Y1 float32 // screen, bottom-right
	U0, V0 float32 // atlas, top-left
	U1, V1 float32 // atlas, bottom-right
}

// AddGlyphQuads draws glyph quads from the current texture.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// AddText places s inside r according to align, centered vertically and
// clipped to r.
func (dl *DrawList) AddText(r Rect, s string, color uint32, align TextAlign, font Font) {
	if s == "" || font == nil {
		return
	}
	x, y := TextOrigin(r, s, align, font)
	dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	dl.SetTexture(font.TextureID())
	dl.AddGlyphQuads(font.Quads(x, y, s), color)
	dl.PopClipRect()
}

// TextOrigin returns the top-left corner at which s starts inside r.
func TextOrigin(r Rect, s string, align TextAlign, font Font) (x, y float32) {
	w, h := font.Measure(s)
	switch align.Mode {
	case AlignModeCenter:
		x = r.X + (r.W-w)/2
	case AlignModeRight:
		x = r.X + r.W - w - align.Padding
	default:
		x = r.X + align.Padding
	}
	y = r.Y + (r.H-h)/2
	return x, y
}

// AddFrame tessellates every region of every panel in order. The background
// is not drawn; renderers clear with it.
func (dl *DrawList) AddFrame(f Frame, font Font, border float32) {
	for _, pp := range f.Panels {
		for _, reg := range pp.Regions {
			r := reg.Rect
			switch reg.Kind {
			case PaintFill:
				dl.AddRect(r.X, r.Y, r.W, r.H, reg.Color)
			case PaintOutline:
				dl.AddRectOutline(r.X, r.Y, r.W, r.H, reg.Color, border)
			case PaintText:
				dl.AddText(r, reg.Text, reg.Color, reg.Align, font)
			}
		}
	}
}

// Finalize closes the last command and drops empty ones.
// Call it after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
