package main

import (
	"bytes"
	"testing"

	"github.com/powerman/check"
)

func TestPad(tt *testing.T) {
	t := check.T(tt)
	for _, record := range [][]byte{{}, {0x00}, {0x80}, bytes.Repeat([]byte{0x42}, 50)} {
		padded := pad(append([]byte(nil), record...), SealedRecordSize)
		t.Len(padded, SealedRecordSize)
		unpadded, err := unpad(padded)
		t.Nil(err)
		t.BytesEqual(unpadded, record)
	}
	_, err := unpad(make([]byte, 16))
	t.NotNil(err)
	_, err = unpad([]byte{0x80, 0x01})
	t.NotNil(err)
}

func TestSealOpen(tt *testing.T) {
	t := check.T(tt)
	sealer := NewSealer([]byte("passphrase"), 1, 64)
	record := []byte{1, 2, 0xde, 0xad, 0xbe, 0xef}

	sealed, err := sealer.Seal(record)
	t.Must(t.Nil(err))
	t.True(IsSealed(sealed))
	t.Len(sealed, sealedHeaderLen+SealedRecordSize+TagSize)

	opened, err := sealer.Open(sealed)
	t.Nil(err)
	t.BytesEqual(opened, record)

	// The costs travel with the key
	other := NewSealer([]byte("passphrase"), 2, 128)
	opened, err = other.Open(sealed)
	t.Nil(err)
	t.BytesEqual(opened, record)

	again, err := sealer.Seal(record)
	t.Must(t.Nil(err))
	t.False(bytes.Equal(again, sealed))

	_, err = NewSealer([]byte("Passphrase"), 1, 64).Open(sealed)
	t.NotNil(err)

	for _, pos := range []int{len(SealedKeyMagic) + 8, sealedHeaderLen - 1, sealedHeaderLen, len(sealed) - 1} {
		tampered := append([]byte(nil), sealed...)
		tampered[pos] ^= 0x01
		_, err = sealer.Open(tampered)
		t.NotNil(err, pos)
	}

	for _, costs := range [][8]byte{
		{0, 0, 0, 0, 64, 0, 0, 0},
		{MaxArgon2Time + 1, 0, 0, 0, 64, 0, 0, 0},
		{1, 0, 0, 0, 4, 0, 0, 0},
		{1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff},
		{1, 0, 0, 0, 1, 0, 0x40, 0},
	} {
		bad := append([]byte(nil), sealed...)
		copy(bad[len(SealedKeyMagic):], costs[:])
		_, err = sealer.Open(bad)
		t.Err(err, ErrArgon2Costs, costs)
	}

	_, err = sealer.Open(sealed[:sealedHeaderLen])
	t.NotNil(err)
	_, err = sealer.Open(record)
	t.NotNil(err)
	t.False(IsSealed(record))
}
