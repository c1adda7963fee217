package h2type

import (
	"unicode/utf8"

	"github.com/h2gb-go/h2gb/herr"
)

// Unicode decodes one UTF-8 codepoint. Unlike the other basic leaves, its
// size is data-dependent (1 to utf8.UTFMax bytes), so Size requires a
// Dynamic context.
type Unicode struct {
	leaf
}

// NewUnicode wraps Unicode as an H2Type leaf.
func NewUnicode() H2Type {
	return New(Unicode{})
}

func (Unicode) IsStatic() bool { return false }

func (u Unicode) Size(ctx ResolveContext) (uint64, error) {
	_, size, err := u.decode(ctx)
	return size, err
}

func (Unicode) ToString(ctx ResolveContext) (string, error) {
	if ctx.IsStatic() {
		return "Unicode", nil
	}

	r, _, err := Unicode{}.decode(ctx)
	if err != nil {
		return "", err
	}
	return string(r), nil
}

// decode reads up to utf8.UTFMax bytes at ctx's position and decodes the
// leading codepoint, returning the rune and its encoded width.
func (Unicode) decode(ctx ResolveContext) (rune, uint64, error) {
	nctx, err := ctx.NumericContext()
	if err != nil {
		return 0, 0, err
	}

	avail := nctx.Len() - nctx.Position()
	want := uint64(utf8.UTFMax)
	if avail < want {
		want = avail
	}

	raw, err := nctx.Bytes(want)
	if err != nil {
		return 0, 0, err
	}

	r, size := utf8.DecodeRune(raw)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, herr.New(herr.InvalidArgument, "invalid utf-8 sequence")
	}
	return r, uint64(size), nil
}
