package h2type

import (
	"github.com/h2gb-go/h2gb/herr"
	"github.com/h2gb-go/h2gb/numcodec"
)

// ResolveContext is either Static (a bare offset, used when only structural
// information is wanted) or Dynamic (an offset bound to real bytes). Every
// H2Type operation takes one; this is deliberately a single interface with
// two implementations, not two separate interfaces, so a caller can ask
// "what would this look like" without bytes and "what does this render to"
// with them through the same code path.
type ResolveContext interface {
	// Position returns the current offset.
	Position() uint64

	// At returns a context of the same kind repositioned to offset.
	At(offset uint64) ResolveContext

	// IsStatic reports whether this context has no bytes backing it.
	IsStatic() bool

	// NumericContext returns the numcodec.Context backing a Dynamic
	// context, or a *herr.Error in category NeedsDynamicContext if this
	// context is Static.
	NumericContext() (numcodec.Context, error)
}

// StaticContext carries only a position; any operation needing bytes fails
// with NeedsDynamicContext.
type StaticContext struct {
	pos uint64
}

// NewStaticContext returns a StaticContext positioned at pos.
func NewStaticContext(pos uint64) StaticContext {
	return StaticContext{pos: pos}
}

func (c StaticContext) Position() uint64 { return c.pos }

func (c StaticContext) At(offset uint64) ResolveContext {
	return StaticContext{pos: offset}
}

func (c StaticContext) IsStatic() bool { return true }

func (c StaticContext) NumericContext() (numcodec.Context, error) {
	return numcodec.Context{}, herr.New(herr.NeedsDynamicContext, "this operation requires a dynamic context with bytes available")
}

// DynamicContext binds an offset to real bytes via a numcodec.Context.
type DynamicContext struct {
	ctx numcodec.Context
}

// NewDynamicContext returns a DynamicContext over data, positioned at 0.
func NewDynamicContext(data []byte) DynamicContext {
	return DynamicContext{ctx: numcodec.NewContext(data)}
}

// NewDynamicContextAt returns a DynamicContext over data, positioned at pos.
func NewDynamicContextAt(data []byte, pos uint64) DynamicContext {
	return DynamicContext{ctx: numcodec.NewContextAt(data, pos)}
}

func (c DynamicContext) Position() uint64 { return c.ctx.Position() }

func (c DynamicContext) At(offset uint64) ResolveContext {
	return DynamicContext{ctx: c.ctx.At(offset)}
}

func (c DynamicContext) IsStatic() bool { return false }

func (c DynamicContext) NumericContext() (numcodec.Context, error) {
	return c.ctx, nil
}
