// Package mesh wraps vertex array, vertex buffer and element buffer objects.
package mesh

import "fmt"

// Attribute is one float vertex attribute.
type Attribute struct {
	Location uint32
	Size     int32 // number of float32 components
}

// Layout lists interleaved attributes in buffer order.
type Layout []Attribute

// Common layouts.
var (
	Position             = Layout{{0, 3}}
	PositionColor        = Layout{{0, 3}, {1, 3}}
	PositionTex          = Layout{{0, 3}, {1, 2}}
	PositionColorTex     = Layout{{0, 3}, {1, 3}, {2, 2}}
	PositionNormal       = Layout{{0, 3}, {1, 3}}
	PositionNormalTex    = Layout{{0, 3}, {1, 3}, {2, 2}}
	PositionNormalTexTBN = Layout{{0, 3}, {1, 3}, {2, 2}, {3, 3}, {4, 3}}
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Offsets returns the float offset of each attribute within a vertex.
func (l Layout) Offsets() []int {
	offsets := make([]int, len(l))
	n := 0
	for i, a := range l {
		offsets[i] = n
		n += int(a.Size)
	}
	return offsets
}

// Validate checks the layout and that floatCount holds whole vertices.
func (l Layout) Validate(floatCount int) error {
	if len(l) == 0 {
		return fmt.Errorf("empty layout")
	}
	seen := make(map[uint32]bool, len(l))
	for _, a := range l {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("attribute %d: size %d not in 1..4", a.Location, a.Size)
		}
		if seen[a.Location] {
			return fmt.Errorf("attribute location %d used twice", a.Location)
		}
		seen[a.Location] = true
	}
	if floatCount%l.Stride() != 0 {
		return fmt.Errorf("%d floats is not a multiple of stride %d", floatCount, l.Stride())
	}
	return nil
}

// VertexCount returns how many vertices floatCount floats hold.
func (l Layout) VertexCount(floatCount int) int {
	s := l.Stride()
	if s == 0 {
		return 0
	}
	return floatCount / s
}
