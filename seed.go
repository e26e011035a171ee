package sidh

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// NewSeededReader returns the SHAKE256 output stream for seed. Feeding it to
// PrivateKey.Generate yields reproducible keys; it must never be used with a
// low-entropy seed for real keys.
func NewSeededReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write(seed)
	return h
}
