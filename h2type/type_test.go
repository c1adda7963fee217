package h2type

import (
	"testing"

	"github.com/h2gb-go/h2gb/numcodec"
)

func TestFullyResolvePartitionsRange(t *testing.T) {
	data := []byte("AAAABBBBCCCCDDDD")
	dOffset := NewDynamicContext(data)

	elem := NewNumber(numcodec.U32(numcodec.BigEndian), numcodec.PrettyHex())
	arr, err := NewArray(4, elem)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}

	size, err := arr.Size(dOffset)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}

	resolved, err := arr.FullyResolve(dOffset)
	if err != nil {
		t.Fatalf("FullyResolve: %v", err)
	}

	var covered uint64
	pos := dOffset.Position()
	for _, r := range resolved {
		if r.ByteRange.Start != pos+covered {
			t.Fatalf("gap or overlap before range %v (expected start %d)", r.ByteRange, pos+covered)
		}
		covered += r.ByteRange.Len()
	}
	if covered != size {
		t.Errorf("covered %d bytes, want %d", covered, size)
	}
}

func TestAlignedSizeRoundsUp(t *testing.T) {
	sOffset := NewStaticContext(0)
	aligned := NewAligned(4, Number{Reader: numcodec.U8(), Formatter: numcodec.PrettyHex()})

	size, err := aligned.AlignedSize(sOffset)
	if err != nil {
		t.Fatalf("AlignedSize: %v", err)
	}
	if size != 4 {
		t.Errorf("AlignedSize = %d, want 4", size)
	}

	unaligned, err := aligned.Size(sOffset)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if unaligned != 1 {
		t.Errorf("Size = %d, want 1", unaligned)
	}
}

func TestAlignedSizeExactMultipleStaysPut(t *testing.T) {
	sOffset := NewStaticContext(0)
	aligned := NewAligned(4, Number{Reader: numcodec.U32(numcodec.BigEndian), Formatter: numcodec.PrettyHex()})

	size, err := aligned.AlignedSize(sOffset)
	if err != nil {
		t.Fatalf("AlignedSize: %v", err)
	}
	if size != 4 {
		t.Errorf("AlignedSize = %d, want 4", size)
	}
}
