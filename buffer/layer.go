package buffer

import "github.com/h2gb-go/h2gb/h2type"

// Placement is one user-made structural interpretation: an H2Type anchored
// at a byte offset within the owning buffer.
type Placement struct {
	Offset uint64
	Type   h2type.H2Type
}

// Layer is a named overlay bound to exactly one buffer. The core treats its
// contents as opaque beyond "non-empty makes the buffer populated" — the
// terminal UI collaborator is what actually builds and displays placements.
type Layer struct {
	Name       string
	BufferName string
	Placements []Placement
}

// NewLayer returns an empty layer bound to bufferName.
func NewLayer(bufferName, name string) *Layer {
	return &Layer{Name: name, BufferName: bufferName}
}

// IsEmpty reports whether the layer has no placements.
func (l *Layer) IsEmpty() bool {
	return len(l.Placements) == 0
}

// Place records a new structural interpretation at offset.
func (l *Layer) Place(offset uint64, t h2type.H2Type) {
	l.Placements = append(l.Placements, Placement{Offset: offset, Type: t})
}
