package project

import (
	"github.com/h2gb-go/h2gb/buffer"
	"github.com/h2gb-go/h2gb/herr"
)

// BufferCreateEmpty creates a buffer of size zero-valued bytes (size must
// be non-zero). size and
// baseAddress are fixed at construction; applied tracks which of the two
// states (armed to apply / armed to undo) the action is in.
type BufferCreateEmpty struct {
	name        string
	size        uint64
	baseAddress uint64
	applied     bool
}

// NewBufferCreateEmpty builds a pending BufferCreateEmpty action.
func NewBufferCreateEmpty(name string, size, baseAddress uint64) *BufferCreateEmpty {
	return &BufferCreateEmpty{name: name, size: size, baseAddress: baseAddress}
}

func (a *BufferCreateEmpty) Apply(p *Project) error {
	if a.applied {
		return herr.New(herr.MissingContext, "buffer_create_empty: missing forward context")
	}
	if a.size == 0 {
		return herr.New(herr.InvalidArgument, "buffer size must be greater than zero")
	}
	if _, exists := p.buffers[a.name]; exists {
		return herr.New(herr.PreconditionViolated, "buffer %q already exists", a.name)
	}

	b, err := buffer.New(make([]byte, a.size), a.baseAddress)
	if err != nil {
		return err
	}
	if err := p.bufferInsert(a.name, b); err != nil {
		return err
	}
	a.applied = true
	return nil
}

func (a *BufferCreateEmpty) Undo(p *Project) error {
	if !a.applied {
		return herr.New(herr.MissingContext, "buffer_create_empty: missing backward context")
	}
	if _, err := p.bufferRemove(a.name); err != nil {
		return err
	}
	a.applied = false
	return nil
}

// BufferCreateFromBytes creates a buffer from caller-supplied bytes.
type BufferCreateFromBytes struct {
	name        string
	data        []byte
	baseAddress uint64
	applied     bool
}

// NewBufferCreateFromBytes builds a pending BufferCreateFromBytes action.
func NewBufferCreateFromBytes(name string, data []byte, baseAddress uint64) *BufferCreateFromBytes {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &BufferCreateFromBytes{name: name, data: buf, baseAddress: baseAddress}
}

func (a *BufferCreateFromBytes) Apply(p *Project) error {
	if a.applied {
		return herr.New(herr.MissingContext, "buffer_create_from_bytes: missing forward context")
	}
	if len(a.data) == 0 {
		return herr.New(herr.InvalidArgument, "buffer data must not be empty")
	}
	if _, exists := p.buffers[a.name]; exists {
		return herr.New(herr.PreconditionViolated, "buffer %q already exists", a.name)
	}

	b, err := buffer.New(a.data, a.baseAddress)
	if err != nil {
		return err
	}
	if err := p.bufferInsert(a.name, b); err != nil {
		return err
	}
	a.applied = true
	return nil
}

func (a *BufferCreateFromBytes) Undo(p *Project) error {
	if !a.applied {
		return herr.New(herr.MissingContext, "buffer_create_from_bytes: missing backward context")
	}
	if _, err := p.bufferRemove(a.name); err != nil {
		return err
	}
	a.applied = false
	return nil
}
