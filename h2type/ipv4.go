package h2type

import (
	"net"

	"github.com/h2gb-go/h2gb/numcodec"
)

// IPv4 reads 4 bytes and renders them as a dotted-decimal address.
type IPv4 struct {
	leaf
}

// NewIPv4 wraps IPv4 as an H2Type leaf.
func NewIPv4() H2Type {
	return New(IPv4{})
}

func (IPv4) IsStatic() bool { return true }

func (IPv4) Size(ctx ResolveContext) (uint64, error) { return 4, nil }

func (IPv4) ToString(ctx ResolveContext) (string, error) {
	if ctx.IsStatic() {
		return "IPv4", nil
	}

	nctx, err := ctx.NumericContext()
	if err != nil {
		return "", err
	}

	n, err := numcodec.U32(numcodec.BigEndian).Read(nctx)
	if err != nil {
		return "", err
	}

	v, err := n.AsU64()
	if err != nil {
		return "", err
	}

	ip := net.IPv4(byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return ip.String(), nil
}
