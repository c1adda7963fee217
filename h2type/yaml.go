package h2type

import (
	"github.com/h2gb-go/h2gb/herr"
	"github.com/h2gb-go/h2gb/numcodec"
)

// Wire is the kind-tagged shape an H2Type round-trips through. Array and
// Pointer recurse through Element/Target; every other field is kind-
// specific and left zero when unused.
type Wire struct {
	Kind          string          `yaml:"kind"`
	ByteAlignment uint64          `yaml:"byte_alignment,omitempty"`
	Reader        *numcodec.Reader      `yaml:"reader,omitempty"`
	Formatter     *numcodec.FormatterWire `yaml:"formatter,omitempty"`
	Length        uint64          `yaml:"length,omitempty"`
	Element       *Wire           `yaml:"element,omitempty"`
	Target        *Wire           `yaml:"target,omitempty"`
}

// MarshalH2Type converts t to its kind-tagged wire form, ready to be passed
// to yaml.Marshal.
func MarshalH2Type(t H2Type) (Wire, error) {
	w, err := marshalKind(t.Kind)
	if err != nil {
		return Wire{}, err
	}
	w.ByteAlignment = t.ByteAlignment
	return w, nil
}

func marshalKind(k TypeKind) (Wire, error) {
	switch v := k.(type) {
	case Number:
		fw, err := numcodec.MarshalFormatter(v.Formatter)
		if err != nil {
			return Wire{}, err
		}
		reader := v.Reader
		return Wire{Kind: "number", Reader: &reader, Formatter: &fw}, nil
	case Character:
		return Wire{Kind: "character"}, nil
	case IPv4:
		return Wire{Kind: "ipv4"}, nil
	case IPv6:
		return Wire{Kind: "ipv6"}, nil
	case Unicode:
		return Wire{Kind: "unicode"}, nil
	case Pointer:
		fw, err := numcodec.MarshalFormatter(v.Formatter)
		if err != nil {
			return Wire{}, err
		}
		target, err := MarshalH2Type(v.Target)
		if err != nil {
			return Wire{}, err
		}
		reader := v.Reader
		return Wire{Kind: "pointer", Reader: &reader, Formatter: &fw, Target: &target}, nil
	case Array:
		element, err := MarshalH2Type(v.Element)
		if err != nil {
			return Wire{}, err
		}
		return Wire{Kind: "array", Length: v.Length, Element: &element}, nil
	default:
		return Wire{}, herr.New(herr.InvalidArgument, "unknown type kind %T", k)
	}
}

// UnmarshalH2Type rebuilds an H2Type from its kind-tagged wire form, as
// produced by yaml.Unmarshal into a Wire.
func UnmarshalH2Type(w Wire) (H2Type, error) {
	kind, err := unmarshalKind(w)
	if err != nil {
		return H2Type{}, err
	}
	if w.ByteAlignment > 0 {
		return NewAligned(w.ByteAlignment, kind), nil
	}
	return New(kind), nil
}

func unmarshalKind(w Wire) (TypeKind, error) {
	switch w.Kind {
	case "number":
		if w.Reader == nil || w.Formatter == nil {
			return nil, herr.New(herr.InvalidArgument, "number type missing reader/formatter")
		}
		f, err := numcodec.UnmarshalFormatter(*w.Formatter)
		if err != nil {
			return nil, err
		}
		return Number{Reader: *w.Reader, Formatter: f}, nil
	case "character":
		return Character{}, nil
	case "ipv4":
		return IPv4{}, nil
	case "ipv6":
		return IPv6{}, nil
	case "unicode":
		return Unicode{}, nil
	case "pointer":
		if w.Reader == nil || w.Formatter == nil || w.Target == nil {
			return nil, herr.New(herr.InvalidArgument, "pointer type missing reader/formatter/target")
		}
		f, err := numcodec.UnmarshalFormatter(*w.Formatter)
		if err != nil {
			return nil, err
		}
		target, err := UnmarshalH2Type(*w.Target)
		if err != nil {
			return nil, err
		}
		return Pointer{Reader: *w.Reader, Formatter: f, Target: target}, nil
	case "array":
		if w.Element == nil {
			return nil, herr.New(herr.InvalidArgument, "array type missing element")
		}
		element, err := UnmarshalH2Type(*w.Element)
		if err != nil {
			return nil, err
		}
		arr, err := NewArray(w.Length, element)
		if err != nil {
			return nil, err
		}
		return arr.Kind, nil
	default:
		return nil, herr.New(herr.InvalidArgument, "unknown type kind %q", w.Kind)
	}
}
