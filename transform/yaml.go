package transform

import "github.com/h2gb-go/h2gb/herr"

// Wire is the kind-tagged shape every Transform variant round-trips
// through. Key/IV marshal as YAML's !!binary (base64) scalar, matching
// gopkg.in/yaml.v3's handling of []byte fields.
type Wire struct {
	Kind string `yaml:"kind"`
	Key  []byte `yaml:"key,omitempty"`
	IV   []byte `yaml:"iv,omitempty"`
}

// MarshalTransform converts t to its kind-tagged wire form, ready to be
// passed to yaml.Marshal.
func MarshalTransform(t Transform) (Wire, error) {
	switch v := t.(type) {
	case Hex:
		return Wire{Kind: "hex"}, nil
	case Base64:
		return Wire{Kind: "base64"}, nil
	case Deflate:
		return Wire{Kind: "deflate"}, nil
	case Xor:
		return Wire{Kind: "xor", Key: v.key}, nil
	case blockCipher:
		return Wire{Kind: v.notInvertible.name, Key: v.key.Bytes(), IV: v.iv}, nil
	default:
		return Wire{}, herr.New(herr.InvalidArgument, "unknown transform type %T", t)
	}
}

// UnmarshalTransform rebuilds a Transform from its kind-tagged wire form, as
// produced by yaml.Unmarshal into a Wire.
func UnmarshalTransform(w Wire) (Transform, error) {
	switch w.Kind {
	case "hex":
		return Hex{}, nil
	case "base64":
		return Base64{}, nil
	case "deflate":
		return Deflate{}, nil
	case "xor":
		return NewXor(w.Key)
	case "aes-128-cbc":
		return NewAES128CBC(w.Key, w.IV)
	case "aes-192-cbc":
		return NewAES192CBC(w.Key, w.IV)
	case "aes-256-cbc":
		return NewAES256CBC(w.Key, w.IV)
	case "des-cbc":
		return NewDESCBC(w.Key, w.IV)
	case "3des-cbc":
		return NewTripleDESCBC(w.Key, w.IV)
	default:
		return nil, herr.New(herr.InvalidArgument, "unknown transform kind %q", w.Kind)
	}
}
