package project

import (
	"github.com/h2gb-go/h2gb/buffer"
	"github.com/h2gb-go/h2gb/herr"
)

// BufferDelete removes a buffer, keeping the removed buffer itself as the
// backward payload so undo restores identical bytes, base address,
// transform stack and layers rather than reconstructing an approximation of
// them. The project is single-threaded, so holding the live pointer across
// the undo window is safe.
type BufferDelete struct {
	name    string
	removed *buffer.Buffer
}

// NewBufferDelete builds a pending BufferDelete action for name.
func NewBufferDelete(name string) *BufferDelete {
	return &BufferDelete{name: name}
}

func (a *BufferDelete) Apply(p *Project) error {
	if a.removed != nil {
		return herr.New(herr.MissingContext, "buffer_delete: missing forward context")
	}

	b, err := p.Buffer(a.name)
	if err != nil {
		return err
	}
	if b.IsPopulated() {
		return herr.New(herr.PreconditionViolated, "buffer %q is populated and cannot be deleted", a.name)
	}

	b, err = p.bufferRemove(a.name)
	if err != nil {
		return err
	}
	a.removed = b
	return nil
}

func (a *BufferDelete) Undo(p *Project) error {
	if a.removed == nil {
		return herr.New(herr.MissingContext, "buffer_delete: missing backward context")
	}

	if err := p.bufferInsert(a.name, a.removed); err != nil {
		return err
	}
	a.removed = nil
	return nil
}
