package h2type

import "testing"

func TestIPv4Rendering(t *testing.T) {
	data := []byte{192, 168, 1, 1}
	dOffset := NewDynamicContext(data)

	ip := NewIPv4()
	s, err := ip.ToString(dOffset)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if s != "192.168.1.1" {
		t.Errorf("got %q, want %q", s, "192.168.1.1")
	}

	size, err := ip.Size(dOffset)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 4 {
		t.Errorf("size = %d, want 4", size)
	}
}

func TestIPv6Rendering(t *testing.T) {
	data := make([]byte, 16)
	data[15] = 1
	dOffset := NewDynamicContext(data)

	ip := NewIPv6()
	s, err := ip.ToString(dOffset)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if s != "::1" {
		t.Errorf("got %q, want %q", s, "::1")
	}
}
