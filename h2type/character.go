package h2type

import "github.com/h2gb-go/h2gb/numcodec"

// Character reads one byte and renders it as an ASCII printable character,
// or "<invalid>" outside the printable range (strictly between 0x1F and
// 0x7F).
type Character struct {
	leaf
}

// NewCharacter wraps Character as an H2Type leaf.
func NewCharacter() H2Type {
	return New(Character{})
}

func (Character) IsStatic() bool { return true }

func (Character) Size(ctx ResolveContext) (uint64, error) { return 1, nil }

func (Character) ToString(ctx ResolveContext) (string, error) {
	if ctx.IsStatic() {
		return "Character", nil
	}

	nctx, err := ctx.NumericContext()
	if err != nil {
		return "", err
	}

	n, err := numcodec.U8().Read(nctx)
	if err != nil {
		return "", err
	}

	v, err := n.AsU64()
	if err != nil {
		return "", err
	}

	if v > 0x1F && v < 0x7F {
		return string(rune(v)), nil
	}
	return "<invalid>", nil
}
