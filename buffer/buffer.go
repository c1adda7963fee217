// Package buffer implements the byte-owning half of a project: raw data, a
// base address, the stack of transforms that produced the current data
// from creation-time bytes, and the layers that, once non-empty, freeze the
// buffer's shape against further reshaping.
package buffer

import (
	"github.com/h2gb-go/h2gb/herr"
	"github.com/h2gb-go/h2gb/transform"
)

// Range is a half-open byte range, [Start, End), used by ClonePartial.
type Range struct {
	Start uint64
	End   uint64
}

// Buffer owns bytes, a base address, an ordered transform stack, and a set
// of named layers. A populated buffer (one with at least one layer) rejects
// any operation that would reshape data: Edit, Transform, Untransform.
type Buffer struct {
	data            []byte
	baseAddress     uint64
	layers          map[string]*Layer
	transformations []transform.Transform
}

// New creates a buffer over a copy of data. Fails with InvalidArgument if
// data is empty.
func New(data []byte, baseAddress uint64) (*Buffer, error) {
	if len(data) == 0 {
		return nil, herr.New(herr.InvalidArgument, "cannot create a buffer of zero length")
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	return &Buffer{
		data:        buf,
		baseAddress: baseAddress,
		layers:      map[string]*Layer{},
	}, nil
}

// Len returns the number of bytes currently in the buffer.
func (b *Buffer) Len() uint64 {
	return uint64(len(b.data))
}

// BaseAddress returns the virtual address of byte 0.
func (b *Buffer) BaseAddress() uint64 {
	return b.baseAddress
}

// Data returns a copy of the buffer's current bytes.
func (b *Buffer) Data() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Transformations returns a copy of the transform stack, in application
// order.
func (b *Buffer) Transformations() []transform.Transform {
	out := make([]transform.Transform, len(b.transformations))
	copy(out, b.transformations)
	return out
}

// IsPopulated reports whether at least one layer exists.
func (b *Buffer) IsPopulated() bool {
	return len(b.layers) > 0
}

// Layer returns the named layer, if it exists.
func (b *Buffer) Layer(name string) (*Layer, bool) {
	l, ok := b.layers[name]
	return l, ok
}

// InsertLayer adds a new layer, failing on a name collision.
func (b *Buffer) InsertLayer(l *Layer) error {
	if _, exists := b.layers[l.Name]; exists {
		return herr.New(herr.PreconditionViolated, "layer %q already exists", l.Name)
	}
	b.layers[l.Name] = l
	return nil
}

// RemoveLayer deletes the named layer, returning it.
func (b *Buffer) RemoveLayer(name string) (*Layer, error) {
	l, ok := b.layers[name]
	if !ok {
		return nil, herr.New(herr.PreconditionViolated, "layer %q does not exist", name)
	}
	delete(b.layers, name)
	return l, nil
}

// CloneShallow deep-copies bytes and the transform stack, dropping layers.
// newBaseAddress defaults to the source buffer's base address when nil.
func (b *Buffer) CloneShallow(newBaseAddress *uint64) (*Buffer, error) {
	base := b.baseAddress
	if newBaseAddress != nil {
		base = *newBaseAddress
	}

	cloned, err := New(b.data, base)
	if err != nil {
		return nil, err
	}
	cloned.transformations = append([]transform.Transform(nil), b.transformations...)
	return cloned, nil
}

// ClonePartial deep-copies data[r.Start:r.End] into a fresh buffer with no
// transform stack and no layers. newBaseAddress defaults to
// base_address + r.Start when nil.
func (b *Buffer) ClonePartial(r Range, newBaseAddress *uint64) (*Buffer, error) {
	if r.End > b.Len() {
		return nil, herr.New(herr.OutOfBounds, "clone_partial range %d..%d runs past the end of a %d-byte buffer", r.Start, r.End, b.Len())
	}

	base := b.baseAddress + r.Start
	if newBaseAddress != nil {
		base = *newBaseAddress
	}

	return New(b.data[r.Start:r.End], base)
}

// Edit splices data into the buffer at offset, in place, returning the
// bytes it replaced. Fails if data is empty, if the write would run past
// the end of the buffer, or if the buffer is populated.
func (b *Buffer) Edit(data []byte, offset uint64) ([]byte, error) {
	if len(data) == 0 {
		return nil, herr.New(herr.InvalidArgument, "cannot edit zero bytes")
	}
	if b.IsPopulated() {
		return nil, herr.New(herr.PreconditionViolated, "buffer contains data")
	}
	end := offset + uint64(len(data))
	if end > b.Len() {
		return nil, herr.New(herr.OutOfBounds, "editing data into buffer is too long")
	}

	original := make([]byte, len(data))
	copy(original, b.data[offset:end])
	copy(b.data[offset:end], data)
	return original, nil
}

// Transform runs t.Transform on the current bytes, replaces data, and
// pushes t onto the stack. Returns the pre-transform bytes. Fails if the
// buffer is populated or if the transform itself fails; on failure nothing
// changes.
func (b *Buffer) Transform(t transform.Transform) ([]byte, error) {
	if b.IsPopulated() {
		return nil, herr.New(herr.PreconditionViolated, "buffer contains data")
	}

	newData, err := t.Transform(b.data)
	if err != nil {
		return nil, err
	}

	original := b.data
	b.data = newData
	b.transformations = append(b.transformations, t)
	return original, nil
}

// TransformUndo is the action log's inverse of Transform: it restores
// originalData and pops the stack without re-running any transform.
func (b *Buffer) TransformUndo(originalData []byte) (transform.Transform, error) {
	if b.IsPopulated() {
		return nil, herr.New(herr.PreconditionViolated, "buffer contains data")
	}
	if len(b.transformations) == 0 {
		return nil, herr.New(herr.PreconditionViolated, "no transformations in the stack")
	}

	t := b.transformations[len(b.transformations)-1]
	b.transformations = b.transformations[:len(b.transformations)-1]
	b.data = originalData
	return t, nil
}

// Untransform pops the last transform after successfully inverting it,
// returning the pre-untransform bytes and the popped transform. Fails if
// the buffer is populated, the stack is empty, or inversion fails.
func (b *Buffer) Untransform() ([]byte, transform.Transform, error) {
	if b.IsPopulated() {
		return nil, nil, herr.New(herr.PreconditionViolated, "buffer contains data")
	}
	if len(b.transformations) == 0 {
		return nil, nil, herr.New(herr.PreconditionViolated, "buffer has no transformations")
	}

	t := b.transformations[len(b.transformations)-1]
	newData, err := t.Untransform(b.data)
	if err != nil {
		return nil, nil, err
	}

	original := b.data
	b.transformations = b.transformations[:len(b.transformations)-1]
	b.data = newData
	return original, t, nil
}

// UntransformUndo is the action log's inverse of Untransform: it restores
// originalData and pushes t back onto the stack.
func (b *Buffer) UntransformUndo(originalData []byte, t transform.Transform) error {
	if b.IsPopulated() {
		return herr.New(herr.PreconditionViolated, "buffer contains data")
	}
	b.data = originalData
	b.transformations = append(b.transformations, t)
	return nil
}

// Rebase sets a new base address, returning the old one.
func (b *Buffer) Rebase(newBaseAddress uint64) uint64 {
	old := b.baseAddress
	b.baseAddress = newBaseAddress
	return old
}
