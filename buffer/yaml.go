package buffer

import (
	"github.com/h2gb-go/h2gb/h2type"
	"github.com/h2gb-go/h2gb/transform"
)

// PlacementWire is the wire shape of one Placement.
type PlacementWire struct {
	Offset uint64    `yaml:"offset"`
	Type   h2type.Wire `yaml:"type"`
}

// LayerWire is the wire shape of one Layer.
type LayerWire struct {
	Name       string          `yaml:"name"`
	BufferName string          `yaml:"buffer_name"`
	Placements []PlacementWire `yaml:"placements,omitempty"`
}

// Wire is the wire shape of a Buffer: its bytes, base address, transform
// stack (in application order) and named layers.
type Wire struct {
	BaseAddress     uint64            `yaml:"base_address"`
	Data            []byte            `yaml:"data"`
	Transformations []transform.Wire  `yaml:"transformations,omitempty"`
	Layers          map[string]LayerWire `yaml:"layers,omitempty"`
}

// MarshalLayer converts l to its wire form.
func MarshalLayer(l *Layer) (LayerWire, error) {
	w := LayerWire{Name: l.Name, BufferName: l.BufferName}
	for _, p := range l.Placements {
		tw, err := h2type.MarshalH2Type(p.Type)
		if err != nil {
			return LayerWire{}, err
		}
		w.Placements = append(w.Placements, PlacementWire{Offset: p.Offset, Type: tw})
	}
	return w, nil
}

// UnmarshalLayer rebuilds a Layer from its wire form.
func UnmarshalLayer(w LayerWire) (*Layer, error) {
	l := NewLayer(w.BufferName, w.Name)
	for _, pw := range w.Placements {
		t, err := h2type.UnmarshalH2Type(pw.Type)
		if err != nil {
			return nil, err
		}
		l.Place(pw.Offset, t)
	}
	return l, nil
}

// MarshalBuffer converts b to its kind-tagged wire form, ready to be passed
// to yaml.Marshal. Layers are included so a buffer round-trips with its
// structural interpretations intact.
func MarshalBuffer(b *Buffer) (Wire, error) {
	w := Wire{BaseAddress: b.baseAddress, Data: b.Data()}
	for _, t := range b.transformations {
		tw, err := transform.MarshalTransform(t)
		if err != nil {
			return Wire{}, err
		}
		w.Transformations = append(w.Transformations, tw)
	}
	if len(b.layers) > 0 {
		w.Layers = make(map[string]LayerWire, len(b.layers))
		for name, l := range b.layers {
			lw, err := MarshalLayer(l)
			if err != nil {
				return Wire{}, err
			}
			w.Layers[name] = lw
		}
	}
	return w, nil
}

// UnmarshalBuffer rebuilds a Buffer from its wire form, as produced by
// yaml.Unmarshal into a Wire.
func UnmarshalBuffer(w Wire) (*Buffer, error) {
	b, err := New(w.Data, w.BaseAddress)
	if err != nil {
		return nil, err
	}
	for _, tw := range w.Transformations {
		t, err := transform.UnmarshalTransform(tw)
		if err != nil {
			return nil, err
		}
		b.transformations = append(b.transformations, t)
	}
	for name, lw := range w.Layers {
		l, err := UnmarshalLayer(lw)
		if err != nil {
			return nil, err
		}
		b.layers[name] = l
	}
	return b, nil
}
