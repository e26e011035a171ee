package stamps

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/powerman/check"

	sidh "github.com/jedisct1/go-sidh"
	"github.com/jedisct1/go-sidh/params"
)

func TestMain(m *testing.M) { check.TestMain(m) }

func seededPublicKey(t *check.C, id params.ID, v sidh.KeyVariant, seed string) *sidh.PublicKey {
	t.Helper()
	prv, err := sidh.NewPrivateKey(id, v)
	t.Must(t.Nil(err))
	t.Must(t.Nil(prv.Generate(sidh.NewSeededReader([]byte(seed)))))
	return prv.GeneratePublicKey()
}

func TestPublicKeyStamp(tt *testing.T) {
	t := check.T(tt)
	for _, id := range params.IDs() {
		for _, v := range []sidh.KeyVariant{sidh.KeyVariantA, sidh.KeyVariantB} {
			pub := seededPublicKey(t, id, v, "stamp")

			stamp, err := NewStampFromPublicKey(pub, "server-1")
			t.Must(t.Nil(err))
			stampStr := stamp.String()
			t.HasPrefix(stampStr, StampScheme)

			parsedStamp, err := NewStampFromString(stampStr)
			t.Must(t.Nil(err))
			t.Equal(parsedStamp.ParamsID, id)
			t.Equal(parsedStamp.Variant, v)
			t.Equal(parsedStamp.Name, "server-1")
			t.Equal(parsedStamp.String(), stampStr)

			decoded, err := parsedStamp.PublicKey()
			t.Must(t.Nil(err))
			t.True(decoded.Equal(pub))
		}
	}
}

func TestEmptyName(tt *testing.T) {
	t := check.T(tt)
	pub := seededPublicKey(t, params.P434, sidh.KeyVariantA, "anonymous")
	stamp, err := NewStampFromPublicKey(pub, "")
	t.Must(t.Nil(err))
	bin, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(stamp.String(), StampScheme))
	t.Must(t.Nil(err))
	t.Len(bin, 3+pub.Size()+1)
	t.Equal(bin[0], uint8(StampVersionPublicKey))
	t.Equal(bin[1], uint8(params.P434))
	t.Equal(bin[2], uint8(sidh.KeyVariantA))

	parsedStamp, err := NewStampFromString(stamp.String())
	t.Nil(err)
	t.Equal(parsedStamp.Name, "")

	_, err = NewStampFromPublicKey(pub, strings.Repeat("x", 256))
	t.NotNil(err)
}

func TestInvalidStamps(tt *testing.T) {
	t := check.T(tt)
	pub := seededPublicKey(t, params.P434, sidh.KeyVariantB, "invalid")
	stamp, err := NewStampFromPublicKey(pub, "n")
	t.Must(t.Nil(err))
	valid, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(stamp.String(), StampScheme))
	t.Must(t.Nil(err))

	encode := func(bin []byte) string {
		return StampScheme + base64.RawURLEncoding.EncodeToString(bin)
	}
	mutate := func(fn func([]byte) []byte) string {
		bin := append([]byte(nil), valid...)
		return encode(fn(bin))
	}

	tests := []struct {
		name  string
		stamp string
	}{
		{"scheme", "sdns://" + strings.TrimPrefix(stamp.String(), StampScheme)},
		{"base64", StampScheme + "!!!"},
		{"empty", StampScheme},
		{"version", mutate(func(b []byte) []byte { b[0] = 0x02; return b })},
		{"params", mutate(func(b []byte) []byte { b[1] = 0x7f; return b })},
		{"variant", mutate(func(b []byte) []byte { b[2] = 0x03; return b })},
		{"truncated key", mutate(func(b []byte) []byte { return b[:100] })},
		{"missing name", mutate(func(b []byte) []byte { return b[:3+pub.Size()] })},
		{"truncated name", mutate(func(b []byte) []byte { return b[:len(b)-1] })},
		{"garbage", mutate(func(b []byte) []byte { return append(b, 0) })},
		{"coordinate", mutate(func(b []byte) []byte {
			for i := 3; i < 3+55; i++ {
				b[i] = 0xff
			}
			return b
		})},
	}
	for _, v := range tests {
		_, err := NewStampFromString(v.stamp)
		t.NotNil(err, v.name)
	}
}

func TestStampVersionString(tt *testing.T) {
	t := check.T(tt)
	t.Equal(StampVersionPublicKey.String(), "PublicKey")
	t.Equal(StampVersion(9).String(), "StampVersion(9)")
	stamp := Stamp{Version: StampVersion(9)}
	t.Panic(func() { _ = stamp.String() })
}
