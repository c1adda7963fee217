package numcodec

import (
	"math/big"

	"github.com/h2gb-go/h2gb/herr"
)

// Number is a tagged-union value produced by Reader.Read. It carries no
// byte context of its own — render it with a Formatter, or convert it with
// AsU64/AsI64 — mirroring GenericNumber's "stamp-able" design in the
// original source's doc comments (see SPEC_FULL.md's SUPPLEMENTED FEATURES).
type Number struct {
	kind Kind

	u64 uint64
	i64 int64
	f32 float32
	f64 float64

	// hi/lo hold a 128-bit value, most-significant word first, for
	// KindU128/KindI128.
	hi, lo uint64

	charEncoding CharEncoding
	charBytes    []byte
}

// Kind reports which variant this Number holds.
func (n Number) Kind() Kind {
	return n.kind
}

// IsFloat reports whether this Number is F32 or F64.
func (n Number) IsFloat() bool {
	return n.kind == KindF32 || n.kind == KindF64
}

// IsChar reports whether this Number is a Char.
func (n Number) IsChar() bool {
	return n.kind == KindChar
}

// IsSigned reports whether this Number is one of the I* kinds.
func (n Number) IsSigned() bool {
	switch n.kind {
	case KindI8, KindI16, KindI32, KindI64, KindI128:
		return true
	default:
		return false
	}
}

// big128 returns the 128-bit value (unsigned two's-complement bit pattern)
// as a big.Int, used for rendering and for two's-complement interpretation
// of signed 128-bit values.
func (n Number) big128() *big.Int {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(n.hi), 64)
	v.Or(v, new(big.Int).SetUint64(n.lo))
	return v
}

// bigSigned128 interprets the 128-bit bit pattern as two's-complement signed.
func (n Number) bigSigned128() *big.Int {
	v := n.big128()
	if n.hi&(1<<63) != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		v.Sub(v, mod)
	}
	return v
}

// AsU64 converts a 64-bit-or-smaller unsigned Number to uint64.
func (n Number) AsU64() (uint64, error) {
	switch n.kind {
	case KindU8, KindU16, KindU32, KindU64:
		return n.u64, nil
	default:
		return 0, herr.New(herr.InvalidArgument, "cannot convert %v to u64", n.kind)
	}
}

// AsI64 converts a 64-bit-or-smaller signed Number to int64.
func (n Number) AsI64() (int64, error) {
	switch n.kind {
	case KindI8, KindI16, KindI32, KindI64:
		return n.i64, nil
	default:
		return 0, herr.New(herr.InvalidArgument, "cannot convert %v to i64", n.kind)
	}
}
