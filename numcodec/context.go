package numcodec

import "github.com/h2gb-go/h2gb/herr"

// Context is a cheap, cloneable cursor over a byte slice, the numcodec
// analogue of wasm/internal/readpos.ReadPos in the teacher repo: a thin
// position-tracking wrapper that every read advances past, except here a
// Context is a value (not an io.Reader) so reads never mutate anything the
// caller can observe — copies are free and a read at offset N never moves
// a Context sitting at offset M.
type Context struct {
	data []byte
	pos  uint64
}

// NewContext returns a Context positioned at the start of data.
func NewContext(data []byte) Context {
	return Context{data: data, pos: 0}
}

// NewContextAt returns a Context positioned at pos within data.
func NewContextAt(data []byte, pos uint64) Context {
	return Context{data: data, pos: pos}
}

// Position returns the current offset.
func (c Context) Position() uint64 {
	return c.pos
}

// At returns a copy of this Context repositioned to offset.
func (c Context) At(offset uint64) Context {
	c.pos = offset
	return c
}

// Len returns the number of bytes backing this Context.
func (c Context) Len() uint64 {
	return uint64(len(c.data))
}

// read returns n bytes starting at the current position without advancing
// this Context (callers advance their own copy via At).
func (c Context) read(n uint64) ([]byte, error) {
	end := c.pos + n
	if end > uint64(len(c.data)) || end < c.pos {
		return nil, herr.New(herr.OutOfBounds, "read of %d bytes at offset %d past end of %d-byte buffer", n, c.pos, len(c.data))
	}
	return c.data[c.pos:end], nil
}

// Bytes returns a copy of n raw bytes starting at the current position, for
// callers (like h2type's IPv6/Unicode leaves) that need a contiguous
// run rather than one of the fixed-width Reader variants.
func (c Context) Bytes(n uint64) ([]byte, error) {
	raw, err := c.read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}
