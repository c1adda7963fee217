package h2type

import "github.com/h2gb-go/h2gb/numcodec"

// Number is a fixed-width integer or float, read with a numcodec.Reader and
// rendered with a numcodec.Formatter. It is always static: its width is
// fixed by the reader regardless of the bytes underneath it.
type Number struct {
	leaf
	Reader    numcodec.Reader
	Formatter numcodec.Formatter
}

// NewNumber wraps a reader/formatter pair as an H2Type leaf.
func NewNumber(reader numcodec.Reader, formatter numcodec.Formatter) H2Type {
	return New(Number{Reader: reader, Formatter: formatter})
}

func (Number) IsStatic() bool { return true }

func (n Number) Size(ctx ResolveContext) (uint64, error) {
	return n.Reader.Size(), nil
}

func (n Number) ToString(ctx ResolveContext) (string, error) {
	if ctx.IsStatic() {
		return "Number", nil
	}

	nctx, err := ctx.NumericContext()
	if err != nil {
		return "", err
	}

	value, err := n.Reader.Read(nctx)
	if err != nil {
		return "", err
	}
	return n.Formatter.Render(value)
}
