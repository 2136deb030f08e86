package gui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// R is shorthand for building a Rect. Negative sizes are clamped to zero.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: maxf(w, 0), H: maxf(h, 0)}
}

// Contains reports whether the point lies inside the rectangle.
// All four edges are inclusive, so a point on the right or bottom edge
// (X+W or Y+H) still hits.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Union returns the smallest rectangle covering all inputs.
// An empty input yields the zero Rect.
func Union(rects ...Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].X+rects[0].W, rects[0].Y+rects[0].H
	for _, r := range rects[1:] {
		minX = minf(minX, r.X)
		minY = minf(minY, r.Y)
		maxX = maxf(maxX, r.X+r.W)
		maxY = maxf(maxY, r.Y+r.H)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Texture ID (0 = untextured)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC8C8C8
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGB creates an opaque packed color.
func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 0xFF)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
