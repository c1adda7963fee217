package h2type

import "net"

// IPv6 reads 16 bytes and renders them as a colon-separated address.
type IPv6 struct {
	leaf
}

// NewIPv6 wraps IPv6 as an H2Type leaf.
func NewIPv6() H2Type {
	return New(IPv6{})
}

func (IPv6) IsStatic() bool { return true }

func (IPv6) Size(ctx ResolveContext) (uint64, error) { return 16, nil }

func (IPv6) ToString(ctx ResolveContext) (string, error) {
	if ctx.IsStatic() {
		return "IPv6", nil
	}

	nctx, err := ctx.NumericContext()
	if err != nil {
		return "", err
	}

	raw, err := nctx.Bytes(16)
	if err != nil {
		return "", err
	}

	return net.IP(raw).String(), nil
}
