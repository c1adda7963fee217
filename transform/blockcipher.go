package transform

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"

	"github.com/h2gb-go/h2gb/herr"
)

// cipherFactory builds a block cipher from a validated key.
type cipherFactory func(key []byte) (cipher.Block, error)

// blockCipher implements CBC-mode decrypt-only transform over one of the
// fixed-width block ciphers, with PKCS#7 unpadding. Only Transform
// (decrypt) is implemented; Untransform (encrypt) is not yet, matching the
// original source's TransformAES, which explicitly bails on untransform.
type blockCipher struct {
	notInvertible
	newCipher cipherFactory
	keyBits   int
	key       KeyOrIV
	iv        []byte
}

func newBlockCipher(name string, factory cipherFactory, keyBits int, key KeyOrIV) (blockCipher, error) {
	if key.Bits() != keyBits {
		return blockCipher{}, herr.New(herr.InvalidArgument, "invalid %s key length: expected %d bits, got %d", name, keyBits, key.Bits())
	}
	return blockCipher{
		notInvertible: notInvertible{name: name},
		newCipher:     factory,
		keyBits:       keyBits,
		key:           key,
	}, nil
}

// withIV returns a copy of b using iv instead of an all-zero IV. iv must be
// exactly one block in length for the underlying cipher.
func (b blockCipher) withIV(iv []byte) blockCipher {
	b.iv = iv
	return b
}

func (b blockCipher) Name() string {
	return b.notInvertible.name
}

func (b blockCipher) Transform(data []byte) ([]byte, error) {
	block, err := b.newCipher(b.key.Bytes())
	if err != nil {
		return nil, herr.New(herr.TransformError, "error setting up cipher: %v", err)
	}

	blockSize := block.BlockSize()
	iv := b.iv
	if iv == nil {
		iv = make([]byte, blockSize)
	}
	if len(iv) != blockSize {
		return nil, herr.New(herr.TransformError, "invalid iv length: expected %d bytes, got %d", blockSize, len(iv))
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, herr.New(herr.TransformError, "ciphertext length %d is not a multiple of the %d-byte block size", len(data), blockSize)
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)

	return unpadPKCS7(out, blockSize)
}

func (b blockCipher) Check(data []byte) bool {
	block, err := b.newCipher(b.key.Bytes())
	if err != nil {
		return false
	}
	return len(data) > 0 && len(data)%block.BlockSize() == 0
}

func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, herr.New(herr.TransformError, "cannot unpad empty buffer")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, herr.New(herr.TransformError, "invalid PKCS#7 padding")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, herr.New(herr.TransformError, "invalid PKCS#7 padding")
		}
	}
	return data[:len(data)-padLen], nil
}

// NewAES128CBC builds an AES-128-CBC decrypt transform. iv may be nil for
// an all-zero IV.
func NewAES128CBC(key []byte, iv []byte) (Transform, error) {
	k, err := NewKeyOrIV(key)
	if err != nil {
		return nil, err
	}
	bc, err := newBlockCipher("aes-128-cbc", aes.NewCipher, 128, k)
	if err != nil {
		return nil, err
	}
	return bc.withIV(iv), nil
}

// NewAES192CBC builds an AES-192-CBC decrypt transform.
func NewAES192CBC(key []byte, iv []byte) (Transform, error) {
	k, err := NewKeyOrIV(key)
	if err != nil {
		return nil, err
	}
	bc, err := newBlockCipher("aes-192-cbc", aes.NewCipher, 192, k)
	if err != nil {
		return nil, err
	}
	return bc.withIV(iv), nil
}

// NewAES256CBC builds an AES-256-CBC decrypt transform.
func NewAES256CBC(key []byte, iv []byte) (Transform, error) {
	k, err := NewKeyOrIV(key)
	if err != nil {
		return nil, err
	}
	bc, err := newBlockCipher("aes-256-cbc", aes.NewCipher, 256, k)
	if err != nil {
		return nil, err
	}
	return bc.withIV(iv), nil
}

// NewDESCBC builds a DES-CBC decrypt transform (64-bit key).
func NewDESCBC(key []byte, iv []byte) (Transform, error) {
	k, err := NewKeyOrIV(key)
	if err != nil {
		return nil, err
	}
	bc, err := newBlockCipher("des-cbc", des.NewCipher, 64, k)
	if err != nil {
		return nil, err
	}
	return bc.withIV(iv), nil
}

// NewTripleDESCBC builds a 3DES-CBC decrypt transform (192-bit key, three
// 64-bit DES keys concatenated).
func NewTripleDESCBC(key []byte, iv []byte) (Transform, error) {
	k, err := NewKeyOrIV(key)
	if err != nil {
		return nil, err
	}
	bc, err := newBlockCipher("3des-cbc", des.NewTripleDESCipher, 192, k)
	if err != nil {
		return nil, err
	}
	return bc.withIV(iv), nil
}
