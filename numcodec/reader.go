package numcodec

import (
	"encoding/binary"
	"math"

	"github.com/h2gb-go/h2gb/herr"
)

// Endian selects byte order for multi-byte reads.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

// Kind names the shape of value a Reader produces.
type Kind int

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindF32
	KindF64
	KindChar
)

// CharEncoding names how a Char reader's bytes should be interpreted.
type CharEncoding int

const (
	CharASCII CharEncoding = iota
	CharUTF8
)

// Reader is a parameterized descriptor (kind, endian?) that can read one
// Number from a Context, the numcodec analogue of wasm's readValueType /
// leb128 readers — but fixed-width rather than variable-length, since
// spec.md fixes widths, not varint framing.
type Reader struct {
	Kind         Kind
	Endian       Endian
	CharEncoding CharEncoding
	CharSize     uint64
}

func U8() Reader                       { return Reader{Kind: KindU8} }
func U16(e Endian) Reader              { return Reader{Kind: KindU16, Endian: e} }
func U32(e Endian) Reader              { return Reader{Kind: KindU32, Endian: e} }
func U64(e Endian) Reader              { return Reader{Kind: KindU64, Endian: e} }
func U128(e Endian) Reader             { return Reader{Kind: KindU128, Endian: e} }
func I8() Reader                       { return Reader{Kind: KindI8} }
func I16(e Endian) Reader              { return Reader{Kind: KindI16, Endian: e} }
func I32(e Endian) Reader              { return Reader{Kind: KindI32, Endian: e} }
func I64(e Endian) Reader              { return Reader{Kind: KindI64, Endian: e} }
func I128(e Endian) Reader             { return Reader{Kind: KindI128, Endian: e} }
func F32(e Endian) Reader              { return Reader{Kind: KindF32, Endian: e} }
func F64(e Endian) Reader              { return Reader{Kind: KindF64, Endian: e} }
func Char(enc CharEncoding, sz uint64) Reader {
	return Reader{Kind: KindChar, CharEncoding: enc, CharSize: sz}
}

// Size returns the number of bytes this Reader consumes.
func (r Reader) Size() uint64 {
	switch r.Kind {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64:
		return 8
	case KindU128, KindI128:
		return 16
	case KindChar:
		return r.CharSize
	default:
		return 0
	}
}

func (r Reader) order() binary.ByteOrder {
	if r.Endian == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Read consumes Size() bytes at ctx's current position and returns the
// decoded Number. ctx is passed by value, so the call never mutates
// anything the caller can observe (invariant 6 in spec.md §8).
func (r Reader) Read(ctx Context) (Number, error) {
	logger.Printf("reading %v at offset %d", r.Kind, ctx.Position())

	raw, err := ctx.read(r.Size())
	if err != nil {
		return Number{}, err
	}

	switch r.Kind {
	case KindU8:
		return Number{kind: r.Kind, u64: uint64(raw[0])}, nil
	case KindU16:
		return Number{kind: r.Kind, u64: uint64(r.order().Uint16(raw))}, nil
	case KindU32:
		return Number{kind: r.Kind, u64: uint64(r.order().Uint32(raw))}, nil
	case KindU64:
		return Number{kind: r.Kind, u64: r.order().Uint64(raw)}, nil
	case KindU128:
		hi, lo := split128(raw, r.order())
		return Number{kind: r.Kind, hi: hi, lo: lo}, nil
	case KindI8:
		return Number{kind: r.Kind, i64: int64(int8(raw[0]))}, nil
	case KindI16:
		return Number{kind: r.Kind, i64: int64(int16(r.order().Uint16(raw)))}, nil
	case KindI32:
		return Number{kind: r.Kind, i64: int64(int32(r.order().Uint32(raw)))}, nil
	case KindI64:
		return Number{kind: r.Kind, i64: int64(r.order().Uint64(raw))}, nil
	case KindI128:
		hi, lo := split128(raw, r.order())
		return Number{kind: r.Kind, hi: hi, lo: lo}, nil
	case KindF32:
		return Number{kind: r.Kind, f32: math.Float32frombits(r.order().Uint32(raw))}, nil
	case KindF64:
		return Number{kind: r.Kind, f64: math.Float64frombits(r.order().Uint64(raw))}, nil
	case KindChar:
		buf := make([]byte, len(raw))
		copy(buf, raw)
		return Number{kind: r.Kind, charEncoding: r.CharEncoding, charBytes: buf}, nil
	default:
		return Number{}, herr.New(herr.InvalidArgument, "unknown reader kind %d", r.Kind)
	}
}

// split128 returns the high/low 64-bit words of a 16-byte value in the
// given byte order, high word first regardless of endianness.
func split128(raw []byte, order binary.ByteOrder) (hi, lo uint64) {
	if order == binary.BigEndian {
		return order.Uint64(raw[:8]), order.Uint64(raw[8:])
	}
	// Little-endian: the low-order word comes first in memory.
	return order.Uint64(raw[8:]), order.Uint64(raw[:8])
}
