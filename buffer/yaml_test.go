package buffer

import (
	"bytes"
	"testing"

	"github.com/h2gb-go/h2gb/h2type"
	"github.com/h2gb-go/h2gb/numcodec"
	"github.com/h2gb-go/h2gb/transform"
	"gopkg.in/yaml.v3"
)

func TestBufferYAMLRoundTrip(t *testing.T) {
	b, err := New([]byte("hello world!"), 0x1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x, err := transform.NewXor([]byte{0x42})
	if err != nil {
		t.Fatalf("NewXor: %v", err)
	}
	if _, err := b.Transform(x); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	l := NewLayer("buf", "strings")
	l.Place(0, h2type.New(h2type.Character{}))
	if err := b.InsertLayer(l); err != nil {
		t.Fatalf("InsertLayer: %v", err)
	}

	wire, err := MarshalBuffer(b)
	if err != nil {
		t.Fatalf("MarshalBuffer: %v", err)
	}

	out, err := yaml.Marshal(wire)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}

	var roundTripped Wire
	if err := yaml.Unmarshal(out, &roundTripped); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	got, err := UnmarshalBuffer(roundTripped)
	if err != nil {
		t.Fatalf("UnmarshalBuffer: %v", err)
	}

	if got.BaseAddress() != b.BaseAddress() {
		t.Errorf("BaseAddress = %#x, want %#x", got.BaseAddress(), b.BaseAddress())
	}
	if !bytes.Equal(got.Data(), b.Data()) {
		t.Errorf("Data = %q, want %q", got.Data(), b.Data())
	}
	if len(got.transformations) != 1 {
		t.Fatalf("transformations = %d, want 1", len(got.transformations))
	}
	if !got.IsPopulated() {
		t.Fatal("expected round-tripped buffer to carry its layer")
	}
	layer, ok := got.Layer("strings")
	if !ok {
		t.Fatal("layer \"strings\" did not survive round trip")
	}
	if len(layer.Placements) != 1 || layer.Placements[0].Offset != 0 {
		t.Fatalf("unexpected placements: %+v", layer.Placements)
	}
}

func TestBufferYAMLRoundTripWithPointerAndArray(t *testing.T) {
	b, err := New([]byte("AAAABBBBCCCCDDDD"), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	arr, err := h2type.NewArray(4, h2type.New(h2type.Number{
		Reader:    numcodec.U32(numcodec.BigEndian),
		Formatter: numcodec.HexFormatter{Prefix: true},
	}))
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}

	l := NewLayer("buf", "data")
	l.Place(0, arr)
	if err := b.InsertLayer(l); err != nil {
		t.Fatalf("InsertLayer: %v", err)
	}

	wire, err := MarshalBuffer(b)
	if err != nil {
		t.Fatalf("MarshalBuffer: %v", err)
	}
	out, err := yaml.Marshal(wire)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var roundTripped Wire
	if err := yaml.Unmarshal(out, &roundTripped); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	got, err := UnmarshalBuffer(roundTripped)
	if err != nil {
		t.Fatalf("UnmarshalBuffer: %v", err)
	}

	layer, ok := got.Layer("data")
	if !ok {
		t.Fatal("layer \"data\" did not survive round trip")
	}
	ctx := h2type.NewDynamicContext(got.Data())
	s, err := layer.Placements[0].Type.ToString(ctx)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := `[0x41414141, 0x42424242, 0x43434343, 0x44444444]`
	if s != want {
		t.Errorf("ToString = %q, want %q", s, want)
	}
}
