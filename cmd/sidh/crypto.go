package main

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"

	"github.com/jedisct1/xsecretbox"
	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

const (
	NonceSize = xsecretbox.NonceSize
	TagSize   = xsecretbox.TagSize
	SaltSize  = 16
	KeySize   = 32

	// Sealed records are padded to this size so that the parameter set
	// does not leak through the file length.
	SealedRecordSize = 64

	MaxArgon2Time      = 64
	MaxArgon2MemoryKiB = 4 * 1024 * 1024
)

var (
	SealedKeyMagic = [8]byte{'S', 'I', 'D', 'H', 's', 'e', '0', '1'}

	ErrArgon2Costs = errors.New("Invalid argon2 cost parameters")
)

// magic || argon2 time (u32 le) || argon2 memory (u32 le) || salt || nonce || box
const sealedHeaderLen = len(SealedKeyMagic) + 4 + 4 + SaltSize + NonceSize

type Sealer struct {
	passphrase []byte
	time       uint32
	memoryKiB  uint32
}

func NewSealer(passphrase []byte, time, memoryKiB uint32) *Sealer {
	return &Sealer{passphrase: passphrase, time: time, memoryKiB: memoryKiB}
}

func (sealer *Sealer) key(salt []byte, time, memoryKiB uint32) []byte {
	return argon2.IDKey(sealer.passphrase, salt, time, memoryKiB, 1, KeySize)
}

func validArgon2Costs(time, memoryKiB uint32) bool {
	return time > 0 && time <= MaxArgon2Time && memoryKiB >= 8 && memoryKiB <= MaxArgon2MemoryKiB
}

func pad(packet []byte, minSize int) []byte {
	packet = append(packet, 0x80)
	for len(packet) < minSize {
		packet = append(packet, 0)
	}
	return packet
}

func unpad(packet []byte) ([]byte, error) {
	for i := len(packet); ; {
		if i == 0 {
			return nil, errors.New("Invalid padding (short record)")
		}
		i--
		if packet[i] == 0x80 {
			return packet[:i], nil
		} else if packet[i] != 0x00 {
			return nil, errors.New("Invalid padding (delimiter not found)")
		}
	}
}

func IsSealed(data []byte) bool {
	return len(data) >= len(SealedKeyMagic) && bytes.Equal(data[:len(SealedKeyMagic)], SealedKeyMagic[:])
}

func (sealer *Sealer) Seal(record []byte) ([]byte, error) {
	salt, nonce := make([]byte, SaltSize), make([]byte, NonceSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, sealedHeaderLen+SealedRecordSize+TagSize)
	sealed = append(sealed, SealedKeyMagic[:]...)
	sealed = binary.LittleEndian.AppendUint32(sealed, sealer.time)
	sealed = binary.LittleEndian.AppendUint32(sealed, sealer.memoryKiB)
	sealed = append(sealed, salt...)
	sealed = append(sealed, nonce...)
	padded := pad(append([]byte(nil), record...), SealedRecordSize)
	sealed = xsecretbox.Seal(sealed, nonce, padded, sealer.key(salt, sealer.time, sealer.memoryKiB))
	wipe(padded)
	return sealed, nil
}

func (sealer *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < sealedHeaderLen+TagSize || !IsSealed(sealed) {
		return nil, errors.New("Not a sealed key")
	}
	pos := len(SealedKeyMagic)
	time := binary.LittleEndian.Uint32(sealed[pos:])
	memoryKiB := binary.LittleEndian.Uint32(sealed[pos+4:])
	pos += 8
	salt := sealed[pos : pos+SaltSize]
	pos += SaltSize
	nonce := sealed[pos : pos+NonceSize]
	pos += NonceSize
	if !validArgon2Costs(time, memoryKiB) {
		return nil, ErrArgon2Costs
	}
	padded, err := xsecretbox.Open(nil, nonce, sealed[pos:], sealer.key(salt, time, memoryKiB))
	if err != nil {
		return nil, errors.New("Incorrect passphrase or corrupted key")
	}
	record, err := unpad(padded)
	if err != nil {
		return nil, errors.Wrap(err, "Incorrect padding")
	}
	return record, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
