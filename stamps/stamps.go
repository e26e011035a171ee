// Package stamps encodes SIDH public keys as short, copy-pastable strings.
//
// A stamp carries the parameter set and key variant along with the key, so a
// peer can be configured from a single value.
package stamps

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	sidh "github.com/jedisct1/go-sidh"
	"github.com/jedisct1/go-sidh/params"
)

const (
	StampScheme = "sidh://"

	// MaxNameLength is the longest key name a stamp can carry.
	MaxNameLength = 0xff
)

type StampVersion uint8

const (
	StampVersionPublicKey = StampVersion(0x01)
)

func (version StampVersion) String() string {
	switch version {
	case StampVersionPublicKey:
		return "PublicKey"
	default:
		return fmt.Sprintf("StampVersion(%d)", uint8(version))
	}
}

type Stamp struct {
	Version  StampVersion
	ParamsID params.ID
	Variant  sidh.KeyVariant
	Pk       []uint8
	Name     string
}

func NewStampFromPublicKey(pub *sidh.PublicKey, name string) (Stamp, error) {
	if len(name) > MaxNameLength {
		return Stamp{}, fmt.Errorf("Key name is too long: [%s]", name)
	}
	return Stamp{
		Version:  StampVersionPublicKey,
		ParamsID: pub.Params().ID,
		Variant:  pub.Variant(),
		Pk:       pub.Export(),
		Name:     name,
	}, nil
}

func NewStampFromString(stampStr string) (Stamp, error) {
	if !strings.HasPrefix(stampStr, StampScheme) {
		return Stamp{}, errors.New("Stamps are expected to start with " + StampScheme)
	}
	bin, err := base64.RawURLEncoding.DecodeString(stampStr[len(StampScheme):])
	if err != nil {
		return Stamp{}, err
	}
	if len(bin) < 1 {
		return Stamp{}, errors.New("Stamp is too short")
	}
	if bin[0] == uint8(StampVersionPublicKey) {
		return newPublicKeyStamp(bin)
	}
	return Stamp{}, errors.New("Unsupported stamp version")
}

// id(u8)=0x01 paramsID(u8) variant(u8) pk(PublicKeySize) nameLen(1) name

func newPublicKeyStamp(bin []byte) (Stamp, error) {
	stamp := Stamp{Version: StampVersionPublicKey}
	if len(bin) < 4 {
		return stamp, errors.New("Stamp is too short")
	}
	stamp.ParamsID = params.ID(bin[1])
	stamp.Variant = sidh.KeyVariant(bin[2])
	pub, err := sidh.NewPublicKey(stamp.ParamsID, stamp.Variant)
	if err != nil {
		return stamp, err
	}
	binLen := len(bin)
	pos := 3

	len := pub.Size()
	if len >= binLen-pos {
		return stamp, errors.New("Invalid stamp")
	}
	if err := pub.Import(bin[pos : pos+len]); err != nil {
		return stamp, err
	}
	stamp.Pk = bin[pos : pos+len]
	pos += len

	len = int(bin[pos])
	if len >= binLen-pos {
		return stamp, errors.New("Invalid stamp")
	}
	pos++
	stamp.Name = string(bin[pos : pos+len])
	pos += len

	if pos != binLen {
		return stamp, errors.New("Invalid stamp (garbage after end)")
	}
	return stamp, nil
}

// PublicKey decodes the key carried by the stamp.
func (stamp *Stamp) PublicKey() (*sidh.PublicKey, error) {
	pub, err := sidh.NewPublicKey(stamp.ParamsID, stamp.Variant)
	if err != nil {
		return nil, err
	}
	if err := pub.Import(stamp.Pk); err != nil {
		return nil, err
	}
	return pub, nil
}

func (stamp *Stamp) String() string {
	if stamp.Version == StampVersionPublicKey {
		return stamp.publicKeyString()
	}
	panic("Unsupported stamp version")
}

func (stamp *Stamp) publicKeyString() string {
	bin := make([]uint8, 3)
	bin[0] = uint8(StampVersionPublicKey)
	bin[1] = uint8(stamp.ParamsID)
	bin[2] = uint8(stamp.Variant)

	bin = append(bin, stamp.Pk...)

	bin = append(bin, uint8(len(stamp.Name)))
	bin = append(bin, []uint8(stamp.Name)...)

	str := base64.RawURLEncoding.EncodeToString(bin)

	return StampScheme + str
}
