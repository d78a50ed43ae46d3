package ui

// Vec2 is a screen-space point or size in pixels.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned box; X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent rows never both claim the pointer.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex is the GPU vertex format. Field order and sizes are relied on by
// the backend's attribute pointers.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // RGBA bytes, see RGBA
}

// DrawCmd draws ElemCount indices starting at IndexOffset, with indices
// relative to VertexOffset, under one clip rect and texture.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 draws untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Packed colors; the byte order in memory is R, G, B, A.
const (
	ColorWhite uint32 = 0xFFFFFFFF
	ColorBlack uint32 = 0xFF000000
	ColorGray  uint32 = 0xFF808080
)

// RGBA packs 8-bit channels into a vertex color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}
