package transform

import (
	"encoding/base64"

	"github.com/h2gb-go/h2gb/herr"
)

// Base64 encodes/decodes the RFC 4648 standard alphabet, with padding.
type Base64 struct{}

func (Base64) Name() string { return "base64" }

func (Base64) Transform(data []byte) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return nil, herr.New(herr.TransformError, "invalid base64: %v", err)
	}
	return out, nil
}

func (Base64) Untransform(data []byte) ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(data)), nil
}

func (Base64) Check(data []byte) bool {
	_, err := base64.StdEncoding.DecodeString(string(data))
	return err == nil
}
