package transform

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/h2gb-go/h2gb/herr"
)

// Deflate decompresses/compresses raw DEFLATE streams (RFC 1951), backed by
// klauspost/compress/flate rather than stdlib compress/flate; its
// flate.Writer exposes the same io.WriteCloser shape stdlib does.
type Deflate struct{}

func (Deflate) Name() string { return "deflate" }

func (Deflate) Transform(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, herr.New(herr.TransformError, "invalid deflate stream: %v", err)
	}
	return out, nil
}

func (Deflate) Untransform(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, herr.New(herr.TransformError, "deflate writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, herr.New(herr.TransformError, "deflate write: %v", err)
	}
	if err := w.Close(); err != nil {
		return nil, herr.New(herr.TransformError, "deflate close: %v", err)
	}
	return buf.Bytes(), nil
}

func (Deflate) Check(data []byte) bool {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	_, err := io.ReadAll(r)
	return err == nil
}
