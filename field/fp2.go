package field

import (
	"errors"
	"math/bits"
)

// ErrOutOfRange is returned when an encoded element is not below p.
var ErrOutOfRange = errors.New("Encoded field element is not reduced")

// Set z = x + y.
func (f *Field) Add(z, x, y *Fp2) {
	f.FpAdd(&z.A, &x.A, &y.A)
	f.FpAdd(&z.B, &x.B, &y.B)
}

// Set z = x - y.
func (f *Field) Sub(z, x, y *Fp2) {
	f.FpSub(&z.A, &x.A, &y.A)
	f.FpSub(&z.B, &x.B, &y.B)
}

// Set z = -x.
func (f *Field) Neg(z, x *Fp2) {
	f.FpNeg(&z.A, &x.A)
	f.FpNeg(&z.B, &x.B)
}

// Set z = x/2.
func (f *Field) Half(z, x *Fp2) {
	f.FpHalf(&z.A, &x.A)
	f.FpHalf(&z.B, &x.B)
}

// Correct reduces both components of x into [0, p).
func (f *Field) Correct(x *Fp2) {
	f.FpCorrect(&x.A)
	f.FpCorrect(&x.B)
}

// Set z = x * y.
//
// With x = a + bi and y = c + di:
//
//	(a + bi)(c + di) = (ac - bd) + ((a+b)(c+d) - ac - bd)i
//
// Allowed to overlap x or y with z.
func (f *Field) Mul(z, x, y *Fp2) {
	var t1, t2 Fp
	var ac, bd, w FpX2

	f.fpAddLazy(&t1, &x.A, &x.B) // < 4p
	f.fpAddLazy(&t2, &y.A, &y.B) // < 4p
	f.mulWide(&ac, &x.A, &y.A)   // < 4p^2
	f.mulWide(&bd, &x.B, &y.B)   // < 4p^2
	f.mulWide(&w, &t1, &t2)      // < 16p^2
	f.subWide(&w, &w, &ac)
	f.subWide(&w, &w, &bd)          // ad + bc < 8p^2
	f.subWideCorrect(&ac, &ac, &bd) // ac - bd, shifted into [0, pR)
	f.rdc(&z.A, &ac)
	f.rdc(&z.B, &w)
}

// Set z = x^2.
//
// (a + bi)^2 = (a+b)(a-b) + 2abi. Allowed to overlap x with z.
func (f *Field) Sqr(z, x *Fp2) {
	var s, d, a2 Fp
	var re, im FpX2

	f.fpAddLazy(&s, &x.A, &x.B)  // < 4p
	f.FpSub(&d, &x.A, &x.B)      // < 2p
	f.fpAddLazy(&a2, &x.A, &x.A) // < 4p
	f.mulWide(&re, &s, &d)
	f.mulWide(&im, &a2, &x.B)
	f.rdc(&z.A, &re)
	f.rdc(&z.B, &im)
}

// Set z = 1/x = conj(x) / (a^2 + b^2). Zero maps to zero.
func (f *Field) Inv(z, x *Fp2) {
	var asq, bsq FpX2
	var norm, n, minusB Fp

	f.sqrWide(&asq, &x.A)
	f.sqrWide(&bsq, &x.B)
	f.addWide(&asq, &asq, &bsq)
	f.rdc(&norm, &asq)
	f.FpInv(&n, &norm)

	f.FpNeg(&minusB, &x.B)
	f.FpMul(&z.A, &x.A, &n)
	f.FpMul(&z.B, &minusB, &n)
}

// ToMont converts both components of x < p into Montgomery form.
func (f *Field) ToMont(z, x *Fp2) {
	f.FpToMont(&z.A, &x.A)
	f.FpToMont(&z.B, &x.B)
}

// FromMont converts both components out of Montgomery form into [0, p).
func (f *Field) FromMont(z, x *Fp2) {
	f.FpFromMont(&z.A, &x.A)
	f.FpFromMont(&z.B, &x.B)
}

// Equal reports whether x and y are the same element.
func (f *Field) Equal(x, y *Fp2) bool {
	return f.FpEqual(&x.A, &y.A) && f.FpEqual(&x.B, &y.B)
}

// IsZero reports whether x is zero.
func (f *Field) IsZero(x *Fp2) bool {
	var zero Fp2
	return f.Equal(x, &zero)
}

func (f *Field) encodeFp(out []byte, x *Fp) {
	var t Fp
	f.FpFromMont(&t, x)
	for i := 0; i < f.bytelen; i++ {
		out[i] = byte(t[i/8] >> (8 * uint(i%8)))
	}
}

func (f *Field) decodeFp(z *Fp, in []byte) error {
	var t Fp
	for i := 0; i < f.bytelen; i++ {
		t[i/8] |= uint64(in[i]) << (8 * uint(i%8))
	}
	var borrow uint64
	for i := 0; i < f.words; i++ {
		_, borrow = bits.Sub64(t[i], f.p[i], borrow)
	}
	if borrow == 0 {
		return ErrOutOfRange
	}
	f.FpToMont(z, &t)
	return nil
}

// Encode writes x as 2*Bytelen little-endian bytes, real part first.
// out must hold at least 2*Bytelen bytes.
func (f *Field) Encode(out []byte, x *Fp2) {
	f.encodeFp(out[:f.bytelen], &x.A)
	f.encodeFp(out[f.bytelen:2*f.bytelen], &x.B)
}

// Decode reads an element written by Encode into Montgomery form.
// Components that are not below p are rejected.
func (f *Field) Decode(z *Fp2, in []byte) error {
	if len(in) < 2*f.bytelen {
		return errors.New("Encoded field element is too short")
	}
	var t Fp2
	if err := f.decodeFp(&t.A, in[:f.bytelen]); err != nil {
		return err
	}
	if err := f.decodeFp(&t.B, in[f.bytelen:2*f.bytelen]); err != nil {
		return err
	}
	*z = t
	return nil
}
