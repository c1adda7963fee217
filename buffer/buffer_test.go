package buffer

import (
	"bytes"
	"testing"

	"github.com/h2gb-go/h2gb/transform"
)

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(nil, 0); err == nil {
		t.Fatal("expected error for zero-length buffer")
	}
}

func TestLenAndData(t *testing.T) {
	b, err := New([]byte("hello"), 0x1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
	if !bytes.Equal(b.Data(), []byte("hello")) {
		t.Errorf("Data() = %q", b.Data())
	}
	if b.BaseAddress() != 0x1000 {
		t.Errorf("BaseAddress() = %#x, want 0x1000", b.BaseAddress())
	}
}

func TestDataIsACopy(t *testing.T) {
	b, err := New([]byte("hello"), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := b.Data()
	out[0] = 'X'
	if b.Data()[0] == 'X' {
		t.Fatal("Data() leaked internal storage")
	}
}

func TestCloneShallow(t *testing.T) {
	b, err := New([]byte("hello"), 0x1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x, err := transform.NewXor([]byte{0x01})
	if err != nil {
		t.Fatalf("NewXor: %v", err)
	}
	if _, err := b.Transform(x); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	cloned, err := b.CloneShallow(nil)
	if err != nil {
		t.Fatalf("CloneShallow: %v", err)
	}
	if cloned.BaseAddress() != 0x1000 {
		t.Errorf("BaseAddress() = %#x, want 0x1000", cloned.BaseAddress())
	}
	if !bytes.Equal(cloned.Data(), b.Data()) {
		t.Errorf("cloned data %q != original %q", cloned.Data(), b.Data())
	}
	if len(cloned.Transformations()) != 1 {
		t.Errorf("len(Transformations()) = %d, want 1", len(cloned.Transformations()))
	}

	newBase := uint64(0x2000)
	rebased, err := b.CloneShallow(&newBase)
	if err != nil {
		t.Fatalf("CloneShallow: %v", err)
	}
	if rebased.BaseAddress() != 0x2000 {
		t.Errorf("BaseAddress() = %#x, want 0x2000", rebased.BaseAddress())
	}
}

func TestClonePartial(t *testing.T) {
	b, err := New([]byte("0123456789"), 0x1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sub, err := b.ClonePartial(Range{Start: 2, End: 5}, nil)
	if err != nil {
		t.Fatalf("ClonePartial: %v", err)
	}
	if !bytes.Equal(sub.Data(), []byte("234")) {
		t.Errorf("Data() = %q, want %q", sub.Data(), "234")
	}
	if sub.BaseAddress() != 0x1002 {
		t.Errorf("BaseAddress() = %#x, want 0x1002", sub.BaseAddress())
	}

	if _, err := b.ClonePartial(Range{Start: 2, End: 11}, nil); err == nil {
		t.Fatal("expected error for out-of-bounds range")
	}
}

func TestEditRoundTrip(t *testing.T) {
	b, err := New([]byte("hello world"), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	original, err := b.Edit([]byte("EARTH"), 6)
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if string(original) != "world" {
		t.Errorf("original = %q, want %q", original, "world")
	}
	if !bytes.Equal(b.Data(), []byte("hello EARTH")) {
		t.Errorf("Data() = %q", b.Data())
	}

	if _, err := b.Edit(nil, 0); err == nil {
		t.Fatal("expected error for zero-length edit")
	}
	if _, err := b.Edit([]byte("toolong!!!!!"), 0); err == nil {
		t.Fatal("expected error for out-of-bounds edit")
	}
}

func TestPopulatedBufferRejectsReshaping(t *testing.T) {
	b, err := New([]byte("hello"), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.InsertLayer(NewLayer("unused", "layer1")); err != nil {
		t.Fatalf("InsertLayer: %v", err)
	}
	if !b.IsPopulated() {
		t.Fatal("expected buffer to be populated")
	}

	if _, err := b.Edit([]byte("x"), 0); err == nil {
		t.Fatal("expected Edit to fail on a populated buffer")
	}

	x, err := transform.NewXor([]byte{0x01})
	if err != nil {
		t.Fatalf("NewXor: %v", err)
	}
	if _, err := b.Transform(x); err == nil {
		t.Fatal("expected Transform to fail on a populated buffer")
	}
	if _, _, err := b.Untransform(); err == nil {
		t.Fatal("expected Untransform to fail on a populated buffer")
	}
}

func TestTransformUntransformRoundTrip(t *testing.T) {
	b, err := New([]byte("hello"), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	x, err := transform.NewXor([]byte{0xff})
	if err != nil {
		t.Fatalf("NewXor: %v", err)
	}

	original, err := b.Transform(x)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if !bytes.Equal(original, []byte("hello")) {
		t.Errorf("original = %q, want %q", original, "hello")
	}
	if len(b.Transformations()) != 1 {
		t.Fatalf("len(Transformations()) = %d, want 1", len(b.Transformations()))
	}

	before, popped, err := b.Untransform()
	if err != nil {
		t.Fatalf("Untransform: %v", err)
	}
	if len(b.Transformations()) != 0 {
		t.Fatalf("len(Transformations()) = %d, want 0", len(b.Transformations()))
	}
	if !bytes.Equal(b.Data(), []byte("hello")) {
		t.Errorf("Data() = %q, want %q", b.Data(), "hello")
	}

	if err := b.UntransformUndo(before, popped); err != nil {
		t.Fatalf("UntransformUndo: %v", err)
	}
	if len(b.Transformations()) != 1 {
		t.Fatalf("len(Transformations()) = %d, want 1", len(b.Transformations()))
	}
	if !bytes.Equal(b.Data(), before) {
		t.Errorf("Data() = %q, want %q", b.Data(), before)
	}
}

func TestUntransformEmptyStackFails(t *testing.T) {
	b, err := New([]byte("hello"), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, err := b.Untransform(); err == nil {
		t.Fatal("expected error untransforming an empty stack")
	}
}

func TestRebase(t *testing.T) {
	b, err := New([]byte("hello"), 0x1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	old := b.Rebase(0x2000)
	if old != 0x1000 {
		t.Errorf("old base = %#x, want 0x1000", old)
	}
	if b.BaseAddress() != 0x2000 {
		t.Errorf("BaseAddress() = %#x, want 0x2000", b.BaseAddress())
	}
}

func TestInsertLayerNameCollision(t *testing.T) {
	b, err := New([]byte("hello"), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.InsertLayer(NewLayer("b", "layer1")); err != nil {
		t.Fatalf("InsertLayer: %v", err)
	}
	if err := b.InsertLayer(NewLayer("b", "layer1")); err == nil {
		t.Fatal("expected error for duplicate layer name")
	}
}
