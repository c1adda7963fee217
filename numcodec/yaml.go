package numcodec

import "github.com/h2gb-go/h2gb/herr"

// FormatterWire is the kind-tagged shape every Formatter variant round-trips
// through; fields unused by a given kind are left zero and omitted on
// marshal.
type FormatterWire struct {
	Kind      string `yaml:"kind"`
	Prefix    bool   `yaml:"prefix,omitempty"`
	Uppercase bool   `yaml:"uppercase,omitempty"`
	Padded    bool   `yaml:"padded,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
}

// MarshalFormatter converts f to its kind-tagged wire form, ready to be
// passed to yaml.Marshal.
func MarshalFormatter(f Formatter) (FormatterWire, error) {
	switch v := f.(type) {
	case HexFormatter:
		return FormatterWire{Kind: "hex", Prefix: v.Prefix, Uppercase: v.Uppercase, Padded: v.Padded}, nil
	case DecimalFormatter:
		return FormatterWire{Kind: "decimal"}, nil
	case OctalFormatter:
		return FormatterWire{Kind: "octal", Prefix: v.Prefix, Padded: v.Padded}, nil
	case BinaryFormatter:
		return FormatterWire{Kind: "binary", Prefix: v.Prefix, Padded: v.Padded}, nil
	case ScientificFormatter:
		return FormatterWire{Kind: "scientific", Uppercase: v.Uppercase}, nil
	case EnumFormatter:
		return FormatterWire{Kind: "enum", Namespace: v.Namespace}, nil
	default:
		return FormatterWire{}, herr.New(herr.InvalidArgument, "unknown formatter type %T", f)
	}
}

// UnmarshalFormatter rebuilds a Formatter from its kind-tagged wire form, as
// produced by yaml.Unmarshal into a FormatterWire.
func UnmarshalFormatter(w FormatterWire) (Formatter, error) {
	switch w.Kind {
	case "hex":
		return HexFormatter{Prefix: w.Prefix, Uppercase: w.Uppercase, Padded: w.Padded}, nil
	case "decimal":
		return DecimalFormatter{}, nil
	case "octal":
		return OctalFormatter{Prefix: w.Prefix, Padded: w.Padded}, nil
	case "binary":
		return BinaryFormatter{Prefix: w.Prefix, Padded: w.Padded}, nil
	case "scientific":
		return ScientificFormatter{Uppercase: w.Uppercase}, nil
	case "enum":
		return EnumFormatter{Namespace: w.Namespace}, nil
	default:
		return nil, herr.New(herr.InvalidArgument, "unknown formatter kind %q", w.Kind)
	}
}
