package transform

import "github.com/h2gb-go/h2gb/herr"

// Xor repeats a non-empty key across the buffer, XOR-ing each byte. It is
// its own inverse: Transform and Untransform do the same thing.
type Xor struct {
	key []byte
}

// NewXor validates key is non-empty and wraps it.
func NewXor(key []byte) (Xor, error) {
	if len(key) == 0 {
		return Xor{}, herr.New(herr.InvalidArgument, "xor key must not be empty")
	}
	buf := make([]byte, len(key))
	copy(buf, key)
	return Xor{key: buf}, nil
}

func (x Xor) Name() string { return "xor" }

func (x Xor) apply(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ x.key[i%len(x.key)]
	}
	return out
}

func (x Xor) Transform(data []byte) ([]byte, error) {
	return x.apply(data), nil
}

func (x Xor) Untransform(data []byte) ([]byte, error) {
	return x.apply(data), nil
}

func (x Xor) Check(data []byte) bool {
	return true
}
