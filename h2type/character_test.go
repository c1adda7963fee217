package h2type

import "testing"

func TestCharacterRendering(t *testing.T) {
	data := []byte{0x00, 0x1F, 0x20, 0x41, 0x42, 0x7e, 0x7f, 0x80, 0xff}
	want := []string{
		"<invalid>", "<invalid>", " ", "A", "B", "~", "<invalid>", "<invalid>", "<invalid>",
	}

	c := NewCharacter()
	dOffset := NewDynamicContext(data)

	for i, w := range want {
		s, err := c.ToString(dOffset.At(uint64(i)))
		if err != nil {
			t.Fatalf("ToString(%d): %v", i, err)
		}
		if s != w {
			t.Errorf("index %d: got %q, want %q", i, s, w)
		}
	}
}

func TestCharacterFullyResolve(t *testing.T) {
	data := []byte("ABCD")
	sOffset := NewStaticContext(0)
	dOffset := NewDynamicContext(data)

	c := NewCharacter()

	size, err := c.Size(sOffset)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 1 {
		t.Errorf("size = %d, want 1", size)
	}

	children, err := c.Children(sOffset)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(children) != 0 {
		t.Errorf("len(children) = %d, want 0", len(children))
	}

	resolved, err := c.FullyResolve(sOffset)
	if err != nil {
		t.Fatalf("FullyResolve(static): %v", err)
	}
	if len(resolved) != 1 || resolved[0].ByteRange != (Range{0, 1}) {
		t.Fatalf("unexpected static resolve: %+v", resolved)
	}
	name, err := resolved[0].ToString(sOffset)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if name != "Character" {
		t.Errorf("got %q, want %q", name, "Character")
	}

	resolved, err = c.FullyResolve(dOffset.At(1))
	if err != nil {
		t.Fatalf("FullyResolve(dynamic): %v", err)
	}
	if len(resolved) != 1 || resolved[0].ByteRange != (Range{1, 2}) {
		t.Fatalf("unexpected dynamic resolve: %+v", resolved)
	}
	value, err := resolved[0].ToString(dOffset)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if value != "B" {
		t.Errorf("got %q, want %q", value, "B")
	}
}
