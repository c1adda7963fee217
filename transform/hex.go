package transform

import (
	"encoding/hex"

	"github.com/h2gb-go/h2gb/herr"
)

// Hex encodes/decodes lower/upper-case hexadecimal, RFC 4648's simplest
// sibling and the transform the original source called FromHex.
type Hex struct{}

func (Hex) Name() string { return "hex" }

func (Hex) Transform(data []byte) ([]byte, error) {
	out := make([]byte, hex.DecodedLen(len(data)))
	n, err := hex.Decode(out, data)
	if err != nil {
		return nil, herr.New(herr.TransformError, "invalid hex: %v", err)
	}
	return out[:n], nil
}

func (Hex) Untransform(data []byte) ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(out, data)
	return out, nil
}

func (Hex) Check(data []byte) bool {
	_, err := hex.DecodeString(string(data))
	return err == nil
}
