package h2type

import (
	"testing"

	"github.com/h2gb-go/h2gb/numcodec"
)

func TestPointerRelated(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x10}
	dOffset := NewDynamicContext(data)

	target := NewNumber(numcodec.U32(numcodec.BigEndian), numcodec.PrettyHex())
	ptr := NewPointer(numcodec.U32(numcodec.BigEndian), numcodec.PrettyHex(), target)

	related, err := ptr.Related(dOffset)
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("len(related) = %d, want 1", len(related))
	}
	if related[0].Address != 0x10 {
		t.Errorf("address = %#x, want 0x10", related[0].Address)
	}

	s, err := ptr.ToString(dOffset)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if s != "0x00000010" {
		t.Errorf("got %q, want %q", s, "0x00000010")
	}
}

func TestPointerStaticHasNoRelated(t *testing.T) {
	sOffset := NewStaticContext(0)
	target := NewNumber(numcodec.U32(numcodec.BigEndian), numcodec.PrettyHex())
	ptr := NewPointer(numcodec.U32(numcodec.BigEndian), numcodec.PrettyHex(), target)

	related, err := ptr.Related(sOffset)
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(related) != 0 {
		t.Errorf("len(related) = %d, want 0", len(related))
	}
}
