package numcodec

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/h2gb-go/h2gb/herr"
)

// Formatter renders a Number to a string. Every variant implements this.
type Formatter interface {
	Render(n Number) (string, error)
}

// bitWidth returns the width in bits for padding purposes, or 0 for kinds
// with no well-defined width (Char).
func bitWidth(k Kind) int {
	switch k {
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32, KindF32:
		return 32
	case KindU64, KindI64, KindF64:
		return 64
	case KindU128, KindI128:
		return 128
	default:
		return 0
	}
}

// HexFormatter renders hexadecimal, zero-padded to the type's full byte
// width when Padded, with an optional "0x" prefix and case.
type HexFormatter struct {
	Prefix    bool
	Uppercase bool
	Padded    bool
}

// PrettyHex returns the default "nice looking" hex formatter: 0x-prefixed,
// lowercase, padded.
func PrettyHex() HexFormatter {
	return HexFormatter{Prefix: true, Uppercase: false, Padded: true}
}

func (f HexFormatter) Render(n Number) (string, error) {
	if n.IsFloat() {
		return "", herr.New(herr.BadFormatter, "cannot render float as hex")
	}
	if n.IsChar() {
		return "", herr.New(herr.BadFormatter, "cannot render character as hex")
	}

	width := bitWidth(n.kind) / 4
	var s string
	if n.kind == KindU128 || n.kind == KindI128 {
		v := n.big128()
		s = v.Text(16)
	} else if n.IsSigned() {
		v, _ := n.AsI64()
		s = strconv.FormatUint(uint64(v)&widthMask(n.kind), 16)
	} else {
		v, _ := n.AsU64()
		s = strconv.FormatUint(v, 16)
	}

	if f.Padded && len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if f.Uppercase {
		s = strings.ToUpper(s)
	}
	if f.Prefix {
		s = "0x" + s
	}
	return s, nil
}

// widthMask returns a mask covering exactly the bits of the given integer
// kind, used to render a signed value's raw bit pattern in hex/octal/binary.
func widthMask(k Kind) uint64 {
	switch bitWidth(k) {
	case 8:
		return 0xff
	case 16:
		return 0xffff
	case 32:
		return 0xffffffff
	default:
		return ^uint64(0)
	}
}

// DecimalFormatter renders decimal, respecting the reader's signedness.
type DecimalFormatter struct{}

func (DecimalFormatter) Render(n Number) (string, error) {
	switch {
	case n.IsChar():
		return "", herr.New(herr.BadFormatter, "cannot render character as decimal")
	case n.kind == KindF32:
		return strconv.FormatFloat(float64(n.f32), 'f', -1, 32), nil
	case n.kind == KindF64:
		return strconv.FormatFloat(n.f64, 'f', -1, 64), nil
	case n.kind == KindU128:
		return n.big128().String(), nil
	case n.kind == KindI128:
		return n.bigSigned128().String(), nil
	case n.IsSigned():
		v, _ := n.AsI64()
		return strconv.FormatInt(v, 10), nil
	default:
		v, _ := n.AsU64()
		return strconv.FormatUint(v, 10), nil
	}
}

// octalWidth maps bit width to the zero-padded octal digit count used by
// the original source's octal_formatter doc tests (3/6/11/22/43 digits for
// 8/16/32/64/128-bit values).
func octalWidth(bits int) int {
	switch bits {
	case 8:
		return 3
	case 16:
		return 6
	case 32:
		return 11
	case 64:
		return 22
	case 128:
		return 43
	default:
		return 0
	}
}

// OctalFormatter renders octal, optionally 0o-prefixed and zero-padded.
type OctalFormatter struct {
	Prefix bool
	Padded bool
}

// PrettyOctal returns the default octal formatter: 0o-prefixed, unpadded.
func PrettyOctal() OctalFormatter {
	return OctalFormatter{Prefix: true, Padded: false}
}

func (f OctalFormatter) Render(n Number) (string, error) {
	if n.IsFloat() {
		return "", herr.New(herr.BadFormatter, "cannot render float as octal")
	}
	if n.IsChar() {
		return "", herr.New(herr.BadFormatter, "cannot render character as octal")
	}

	var s string
	if n.kind == KindU128 || n.kind == KindI128 {
		s = n.big128().Text(8)
	} else if n.IsSigned() {
		v, _ := n.AsI64()
		s = strconv.FormatUint(uint64(v)&widthMask(n.kind), 8)
	} else {
		v, _ := n.AsU64()
		s = strconv.FormatUint(v, 8)
	}

	if f.Padded {
		width := octalWidth(bitWidth(n.kind))
		if len(s) < width {
			s = strings.Repeat("0", width-len(s)) + s
		}
	}
	if f.Prefix {
		s = "0o" + s
	}
	return s, nil
}

// BinaryFormatter renders binary, optionally 0b-prefixed and zero-padded to
// the type's full bit width.
type BinaryFormatter struct {
	Prefix bool
	Padded bool
}

// PrettyBinary returns the default binary formatter: 0b-prefixed, padded.
func PrettyBinary() BinaryFormatter {
	return BinaryFormatter{Prefix: true, Padded: true}
}

func (f BinaryFormatter) Render(n Number) (string, error) {
	if n.IsFloat() {
		return "", herr.New(herr.BadFormatter, "cannot display floating point as binary")
	}
	if n.IsChar() {
		return "", herr.New(herr.BadFormatter, "cannot display character as binary")
	}

	var s string
	if n.kind == KindU128 || n.kind == KindI128 {
		s = n.big128().Text(2)
	} else if n.IsSigned() {
		v, _ := n.AsI64()
		s = strconv.FormatUint(uint64(v)&widthMask(n.kind), 2)
	} else {
		v, _ := n.AsU64()
		s = strconv.FormatUint(v, 2)
	}

	if f.Padded {
		width := bitWidth(n.kind)
		if len(s) < width {
			s = strings.Repeat("0", width-len(s)) + s
		}
	}
	if f.Prefix {
		s = "0b" + s
	}
	return s, nil
}

// ScientificFormatter renders exponential notation, e.g. "1.094861636e9".
type ScientificFormatter struct {
	Uppercase bool
}

func (f ScientificFormatter) Render(n Number) (string, error) {
	if n.IsChar() {
		return "", herr.New(herr.BadFormatter, "cannot display character as scientific")
	}

	verb := byte('e')
	if f.Uppercase {
		verb = 'E'
	}

	var s string
	switch {
	case n.kind == KindF32:
		s = strconv.FormatFloat(float64(n.f32), verb, -1, 32)
	case n.kind == KindF64:
		s = strconv.FormatFloat(n.f64, verb, -1, 64)
	case n.kind == KindU128:
		s = bigToSci(n.big128(), verb)
	case n.kind == KindI128:
		s = bigToSci(n.bigSigned128(), verb)
	case n.IsSigned():
		v, _ := n.AsI64()
		s = bigToSci(big.NewInt(v), verb)
	default:
		v, _ := n.AsU64()
		s = bigToSci(new(big.Int).SetUint64(v), verb)
	}
	return s, nil
}

// bigToSci renders an integer in Rust-style "{mantissa}e{exponent}" form
// (no mantissa padding, no leading '+' on the exponent), matching the
// original source's scientific_formatter doc tests.
func bigToSci(v *big.Int, verb byte) string {
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	digits := abs.Text(10)

	if digits == "0" {
		return fmt.Sprintf("0%c0", verb)
	}

	exp := len(digits) - 1
	mantissa := strings.TrimRight(digits[1:], "0")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if mantissa != "" {
		b.WriteByte('.')
		b.WriteString(mantissa)
	}
	b.WriteByte(verb)
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// Enum renders a Number as a name looked up in a named enum namespace,
// falling back to the raw decimal value when unknown.
type EnumFormatter struct {
	Namespace string
}

// enumNamespaces holds registered value->name tables, analogous to the
// original source's Enum{namespace} formatter, which selects a value from a
// list of well-known constants (e.g. well-known port numbers, error codes).
var enumNamespaces = map[string]map[uint64]string{}

// RegisterEnum installs (or replaces) the value->name table for a namespace.
func RegisterEnum(namespace string, values map[uint64]string) {
	enumNamespaces[namespace] = values
}

func (f EnumFormatter) Render(n Number) (string, error) {
	if n.IsFloat() {
		return "", herr.New(herr.BadFormatter, "cannot render float as enum")
	}
	if n.IsChar() {
		return "", herr.New(herr.BadFormatter, "cannot render character as enum")
	}

	v, err := n.AsU64()
	if err != nil {
		if iv, ierr := n.AsI64(); ierr == nil {
			v = uint64(iv)
		} else {
			return "", err
		}
	}

	if table, ok := enumNamespaces[f.Namespace]; ok {
		if name, ok := table[v]; ok {
			return name, nil
		}
	}
	return strconv.FormatUint(v, 10), nil
}
