package transform

import "github.com/h2gb-go/h2gb/herr"

// KeyOrIV abstracts a key or initialization vector of one of the four
// widths the block ciphers in this package accept, the way the original
// source's KeyOrIV enum kept callers from having to track raw byte-slice
// lengths by hand.
type KeyOrIV struct {
	bits int
	data []byte
}

// NewKeyOrIV validates key's length (8, 16, 24, or 32 bytes) and wraps it.
func NewKeyOrIV(key []byte) (KeyOrIV, error) {
	switch len(key) {
	case 8, 16, 24, 32:
		buf := make([]byte, len(key))
		copy(buf, key)
		return KeyOrIV{bits: len(key) * 8, data: buf}, nil
	default:
		return KeyOrIV{}, herr.New(herr.InvalidArgument, "invalid key or iv length: %d bytes / %d bits", len(key), len(key)*8)
	}
}

// Bits reports the width of the wrapped value.
func (k KeyOrIV) Bits() int {
	return k.bits
}

// Bytes returns the raw wrapped value.
func (k KeyOrIV) Bytes() []byte {
	return k.data
}

// Get64 returns the value as an 8-byte key, or an error if it isn't one.
func (k KeyOrIV) Get64() ([]byte, error) {
	if k.bits != 64 {
		return nil, herr.New(herr.InvalidArgument, "invalid key or iv length, expected 64 bits")
	}
	return k.data, nil
}

// Get128 returns the value as a 16-byte key, or an error if it isn't one.
func (k KeyOrIV) Get128() ([]byte, error) {
	if k.bits != 128 {
		return nil, herr.New(herr.InvalidArgument, "invalid key or iv length, expected 128 bits")
	}
	return k.data, nil
}
