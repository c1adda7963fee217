package h2type

import (
	"github.com/h2gb-go/h2gb/herr"
	"github.com/h2gb-go/h2gb/numcodec"
)

// Pointer reads a fixed-width address and, on request, resolves to the
// H2Type it targets. related() is computed on demand; nothing is cached,
// so pointer cycles never loop forever unless a caller walks them forever.
type Pointer struct {
	Reader    numcodec.Reader
	Formatter numcodec.Formatter
	Target    H2Type
}

// NewPointer wraps Pointer as an H2Type leaf with no structural children.
func NewPointer(reader numcodec.Reader, formatter numcodec.Formatter, target H2Type) H2Type {
	return New(Pointer{Reader: reader, Formatter: formatter, Target: target})
}

func (Pointer) IsStatic() bool { return true }

func (p Pointer) Size(ctx ResolveContext) (uint64, error) {
	return p.Reader.Size(), nil
}

func (Pointer) Children(ctx ResolveContext) ([]PartiallyResolved, error) {
	return nil, nil
}

func (p Pointer) ToString(ctx ResolveContext) (string, error) {
	if ctx.IsStatic() {
		return "Pointer", nil
	}

	nctx, err := ctx.NumericContext()
	if err != nil {
		return "", err
	}

	value, err := p.Reader.Read(nctx)
	if err != nil {
		return "", err
	}
	return p.Formatter.Render(value)
}

// address reads the raw target address as a uint64, regardless of whether
// the reader is signed.
func (p Pointer) address(ctx ResolveContext) (uint64, error) {
	nctx, err := ctx.NumericContext()
	if err != nil {
		return 0, err
	}

	value, err := p.Reader.Read(nctx)
	if err != nil {
		return 0, err
	}

	if value.IsFloat() || value.IsChar() {
		return 0, herr.New(herr.InvalidArgument, "pointer reader must be an integer kind")
	}

	if value.IsSigned() {
		signed, err := value.AsI64()
		if err != nil {
			return 0, err
		}
		return uint64(signed), nil
	}
	return value.AsU64()
}

func (p Pointer) Related(ctx ResolveContext) ([]Related, error) {
	if ctx.IsStatic() {
		return nil, nil
	}

	addr, err := p.address(ctx)
	if err != nil {
		return nil, err
	}
	return []Related{{Address: addr, Type: p.Target}}, nil
}
