// Package transform implements the byte-to-byte codecs a buffer.Buffer
// stacks on top of its raw bytes: encodings (hex, base64), compression
// (deflate), and ciphers (xor, block ciphers in CBC mode).
package transform

import "github.com/h2gb-go/h2gb/herr"

// Transform converts bytes to and, where possible, back again. A
// buffer.Buffer pushes one onto its stack with Transform and pops it with
// Untransform; Check lets a caller test applicability before committing.
type Transform interface {
	// Name identifies the variant for display and serialization.
	Name() string

	// Transform produces the transformed bytes from raw input.
	Transform(data []byte) ([]byte, error)

	// Untransform recovers the original bytes from transformed input.
	// Returns a NotInvertible *herr.Error if this variant is one-way.
	Untransform(data []byte) ([]byte, error)

	// Check reports whether data looks like valid input for Transform.
	Check(data []byte) bool
}

// notInvertible is embedded by one-way transforms so they all share the
// same Untransform body instead of repeating the error construction.
type notInvertible struct {
	name string
}

func (n notInvertible) Untransform(data []byte) ([]byte, error) {
	return nil, herr.New(herr.NotInvertible, "%s is not invertible", n.name)
}
