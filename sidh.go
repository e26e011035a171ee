// Package sidh implements Supersingular Isogeny Diffie-Hellman key agreement
// for the p434, p503, p610 and p751 parameter sets.
//
// A party holds either a KeyVariantA key (isogenies of degree 2^eA) or a
// KeyVariantB key (degree 3^eB). Two parties using opposite variants of the
// same parameter set derive the same shared secret: the j-invariant of the
// curve at the far corner of the isogeny square.
//
// This package provides the raw SIDH operation. It does not turn the shared
// secret into a key and does not protect long-term keys against adaptive
// attacks; keys should be ephemeral.
package sidh

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedisct1/go-sidh/field"
	"github.com/jedisct1/go-sidh/params"
)

// KeyVariant selects the torsion subgroup a key works in.
type KeyVariant uint

const (
	// KeyVariantA uses the 2^eA torsion subgroup.
	KeyVariantA KeyVariant = 1 << 0
	// KeyVariantB uses the 3^eB torsion subgroup.
	KeyVariantB KeyVariant = 1 << 1
)

func (v KeyVariant) String() string {
	switch v {
	case KeyVariantA:
		return "A"
	case KeyVariantB:
		return "B"
	}
	return fmt.Sprintf("KeyVariant(%d)", uint(v))
}

// ParseKeyVariant accepts "A"/"a"/"alice" and "B"/"b"/"bob".
func ParseKeyVariant(s string) (KeyVariant, error) {
	switch s {
	case "A", "a", "alice":
		return KeyVariantA, nil
	case "B", "b", "bob":
		return KeyVariantB, nil
	}
	return 0, fmt.Errorf("Unsupported key variant [%v]", s)
}

var (
	ErrVariant        = errors.New("Unsupported key variant")
	ErrKeyLength      = errors.New("Invalid key length")
	ErrScalarRange    = errors.New("Secret scalar has bits above the subgroup size")
	ErrParamsMismatch = errors.New("Keys belong to different parameter sets")
	ErrSameVariant    = errors.New("Keys must be of opposite variants")
	ErrKeyCount       = errors.New("Key count cannot be negative")
)

// Base type for public and private keys. Carries the domain parameters.
type key struct {
	params     *params.Params
	keyVariant KeyVariant
}

// Params returns the parameter set of the key.
func (k *key) Params() *params.Params {
	return k.params
}

// Variant returns the key variant.
func (k *key) Variant() KeyVariant {
	return k.keyVariant
}

func (k *key) domain() *params.Domain {
	if k.keyVariant == KeyVariantA {
		return &k.params.A
	}
	return &k.params.B
}

// PrivateKey is a secret scalar in little-endian order.
type PrivateKey struct {
	key
	Scalar []byte
}

// PublicKey holds the affine x-coordinates of the images of the peer basis.
type PublicKey struct {
	key
	affineXP   field.Fp2
	affineXQ   field.Fp2
	affineXQmP field.Fp2
}

func checkVariant(v KeyVariant) error {
	if v != KeyVariantA && v != KeyVariantB {
		return ErrVariant
	}
	return nil
}

// NewPrivateKey returns a zero private key for parameter set id.
func NewPrivateKey(id params.ID, v KeyVariant) (*PrivateKey, error) {
	p, err := params.Get(id)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyWith(p, v)
}

// NewPrivateKeyWith is NewPrivateKey for an explicit parameter set value.
func NewPrivateKeyWith(p *params.Params, v KeyVariant) (*PrivateKey, error) {
	if err := checkVariant(v); err != nil {
		return nil, err
	}
	prv := &PrivateKey{key: key{params: p, keyVariant: v}}
	prv.Scalar = make([]byte, prv.domain().SecretByteLen)
	return prv, nil
}

// NewPublicKey returns an empty public key for parameter set id.
func NewPublicKey(id params.ID, v KeyVariant) (*PublicKey, error) {
	p, err := params.Get(id)
	if err != nil {
		return nil, err
	}
	return NewPublicKeyWith(p, v)
}

// NewPublicKeyWith is NewPublicKey for an explicit parameter set value.
func NewPublicKeyWith(p *params.Params, v KeyVariant) (*PublicKey, error) {
	if err := checkVariant(v); err != nil {
		return nil, err
	}
	return &PublicKey{key: key{params: p, keyVariant: v}}, nil
}

// Size returns the encoded size of the private key.
func (prv *PrivateKey) Size() int {
	return len(prv.Scalar)
}

// maskScalar clears the bits of the top byte above bitLen.
func maskScalar(scalar []byte, bitLen uint) {
	if rem := bitLen % 8; rem != 0 {
		scalar[len(scalar)-1] &= byte(1<<rem) - 1
	}
}

// Generate fills the scalar with SecretByteLen bytes from rand and masks it
// to the subgroup bit length.
func (prv *PrivateKey) Generate(rand io.Reader) error {
	if _, err := io.ReadFull(rand, prv.Scalar); err != nil {
		return err
	}
	maskScalar(prv.Scalar, prv.domain().SecretBitLen)
	return nil
}

// Import loads an encoded scalar. Bits above the subgroup bit length must be
// zero.
func (prv *PrivateKey) Import(input []byte) error {
	if len(input) != len(prv.Scalar) {
		return ErrKeyLength
	}
	if rem := prv.domain().SecretBitLen % 8; rem != 0 && input[len(input)-1]>>rem != 0 {
		return ErrScalarRange
	}
	copy(prv.Scalar, input)
	return nil
}

// Export returns a copy of the scalar.
func (prv *PrivateKey) Export() []byte {
	out := make([]byte, len(prv.Scalar))
	copy(out, prv.Scalar)
	return out
}

// Zeroize overwrites the scalar.
func (prv *PrivateKey) Zeroize() {
	for i := range prv.Scalar {
		prv.Scalar[i] = 0
	}
}

// GeneratePublicKey computes the public key matching prv.
func (prv *PrivateKey) GeneratePublicKey() *PublicKey {
	if prv.keyVariant == KeyVariantA {
		return publicKeyGenA(prv)
	}
	return publicKeyGenB(prv)
}

// DeriveSecret computes the shared secret with the peer's public key. The
// keys must share a parameter set and be of opposite variants.
func (prv *PrivateKey) DeriveSecret(pub *PublicKey) ([]byte, error) {
	if prv.params.ID != pub.params.ID {
		return nil, ErrParamsMismatch
	}
	if prv.keyVariant == pub.keyVariant {
		return nil, ErrSameVariant
	}
	if prv.keyVariant == KeyVariantA {
		return deriveSecretA(prv, pub), nil
	}
	return deriveSecretB(prv, pub), nil
}

// Size returns the encoded size of the public key.
func (pub *PublicKey) Size() int {
	return pub.params.PublicKeySize
}

// Import decodes a public key. Every coordinate must be reduced modulo p.
func (pub *PublicKey) Import(input []byte) error {
	if len(input) != pub.Size() {
		return ErrKeyLength
	}
	f := pub.params.Field
	n := 2 * pub.params.Bytelen
	var xP, xQ, xQmP field.Fp2
	if err := f.Decode(&xP, input[0:n]); err != nil {
		return err
	}
	if err := f.Decode(&xQ, input[n:2*n]); err != nil {
		return err
	}
	if err := f.Decode(&xQmP, input[2*n:3*n]); err != nil {
		return err
	}
	pub.affineXP, pub.affineXQ, pub.affineXQmP = xP, xQ, xQmP
	return nil
}

// Export encodes the public key as x(P) || x(Q) || x(Q-P).
func (pub *PublicKey) Export() []byte {
	f := pub.params.Field
	n := 2 * pub.params.Bytelen
	output := make([]byte, pub.Size())
	f.Encode(output[0:n], &pub.affineXP)
	f.Encode(output[n:2*n], &pub.affineXQ)
	f.Encode(output[2*n:3*n], &pub.affineXQmP)
	return output
}

// Equal reports whether both keys encode the same points.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub.params.ID != other.params.ID || pub.keyVariant != other.keyVariant {
		return false
	}
	f := pub.params.Field
	return f.Equal(&pub.affineXP, &other.affineXP) &&
		f.Equal(&pub.affineXQ, &other.affineXQ) &&
		f.Equal(&pub.affineXQmP, &other.affineXQmP)
}
