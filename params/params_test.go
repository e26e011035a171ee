package params_test

import (
	"testing"

	"github.com/powerman/check"

	"github.com/jedisct1/go-sidh/field"
	"github.com/jedisct1/go-sidh/params"
)

func TestMain(m *testing.M) { check.TestMain(m) }

func TestRegistry(tt *testing.T) {
	t := check.T(tt)
	t.DeepEqual(params.IDs(), []params.ID{params.P434, params.P503, params.P610, params.P751})

	_, err := params.Get(0)
	t.NotNil(err)
	_, err = params.Get(params.P751 + 1)
	t.NotNil(err)
	t.Equal(params.ID(42).String(), "ID(42)")

	for _, name := range []string{"p434", "P503", " p610 ", "p751"} {
		p, err := params.ByName(name)
		if t.Nil(err) {
			t.Equal(p.ID.String(), p.Name)
		}
	}
	_, err = params.ByName("p512")
	t.NotNil(err)
}

func TestSizes(tt *testing.T) {
	t := check.T(tt)
	tests := []struct {
		id           params.ID
		name         string
		bytelen      int
		publicKey    int
		sharedSecret int
		eA, eB       uint
		bitsA, bitsB uint
		bytesA       uint
		bytesB       uint
		stratA       int
		stratB       int
	}{
		{params.P434, "p434", 55, 330, 110, 216, 137, 216, 217, 27, 28, 107, 136},
		{params.P503, "p503", 63, 378, 126, 250, 159, 250, 252, 32, 32, 124, 158},
		{params.P610, "p610", 77, 462, 154, 305, 192, 305, 304, 39, 38, 151, 191},
		{params.P751, "p751", 94, 564, 188, 372, 239, 372, 378, 47, 48, 185, 238},
	}
	for _, v := range tests {
		p, err := params.Get(v.id)
		t.Must(t.Nil(err))
		t.Equal(p.Name, v.name)
		t.Equal(p.Bytelen, v.bytelen)
		t.Equal(p.Field.Bytelen(), v.bytelen)
		t.Equal(p.PublicKeySize, v.publicKey)
		t.Equal(p.SharedSecretSize, v.sharedSecret)
		t.Equal(p.A.Exponent, v.eA)
		t.Equal(p.B.Exponent, v.eB)
		t.Equal(p.A.SecretBitLen, v.bitsA)
		t.Equal(p.B.SecretBitLen, v.bitsB)
		t.Equal(p.A.SecretByteLen, v.bytesA)
		t.Equal(p.B.SecretByteLen, v.bytesB)
		t.Len(p.A.Strategy, v.stratA)
		t.Len(p.B.Strategy, v.stratB)
		t.True(p.Domain(true) == &p.A)
		t.True(p.Domain(false) == &p.B)
	}
}

func TestStrategiesCoverTheWalk(tt *testing.T) {
	t := check.T(tt)
	for _, id := range params.IDs() {
		p, err := params.Get(id)
		t.Must(t.Nil(err))
		// Every entry must stay within the remaining height of the tree
		steps := []struct {
			strategy []uint32
			n        int
		}{
			{p.A.Strategy, int(p.A.Exponent / 2)},
			{p.B.Strategy, int(p.B.Exponent)},
		}
		for _, s := range steps {
			t.Len(s.strategy, s.n-1)
			for _, k := range s.strategy {
				t.Between(int(k), 0, s.n)
			}
		}
	}
}

type counter int

func (c *counter) Trace(field.Op) { *c++ }

func TestWithTracer(tt *testing.T) {
	t := check.T(tt)
	p, err := params.Get(params.P434)
	t.Must(t.Nil(err))
	var n counter
	q := p.WithTracer(&n)
	t.True(q != p)
	t.True(q.Field != p.Field)
	t.Equal(q.ID, p.ID)

	var x field.Fp2
	q.Field.Mul(&x, &p.A.AffineP, &p.A.AffineQ)
	t.Greater(int(n), 0)
	before := n
	p.Field.Mul(&x, &p.A.AffineP, &p.A.AffineQ)
	t.Equal(n, before)
}
