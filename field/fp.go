package field

import (
	"math/bits"
)

// Ranges: unless stated otherwise, inputs are in [0, 2p) and outputs are in
// [0, 2p). Every supported prime satisfies 16p < R, which bounds all the
// lazy intermediate values below.

// FpAdd sets z = x + y (mod 2p).
func (f *Field) FpAdd(z, x, y *Fp) {
	f.trace(OpAdd)
	var carry uint64
	for i := 0; i < f.words; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	var borrow uint64
	for i := 0; i < f.words; i++ {
		z[i], borrow = bits.Sub64(z[i], f.p2[i], borrow)
	}
	mask := Mask(borrow)
	carry = 0
	for i := 0; i < f.words; i++ {
		z[i], carry = bits.Add64(z[i], f.p2[i]&mask, carry)
	}
}

// fpAddLazy sets z = x + y without reduction. The result is below 4p.
func (f *Field) fpAddLazy(z, x, y *Fp) {
	f.trace(OpAdd)
	var carry uint64
	for i := 0; i < f.words; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
}

// FpSub sets z = x - y (mod 2p).
func (f *Field) FpSub(z, x, y *Fp) {
	f.trace(OpSub)
	var borrow uint64
	for i := 0; i < f.words; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	mask := Mask(borrow)
	var carry uint64
	for i := 0; i < f.words; i++ {
		z[i], carry = bits.Add64(z[i], f.p2[i]&mask, carry)
	}
}

// FpNeg sets z = 2p - x, or 0 when x is 0.
func (f *Field) FpNeg(z, x *Fp) {
	f.trace(OpNeg)
	var borrow uint64
	for i := 0; i < f.words; i++ {
		z[i], borrow = bits.Sub64(0, x[i], borrow)
	}
	mask := Mask(borrow)
	var carry uint64
	for i := 0; i < f.words; i++ {
		z[i], carry = bits.Add64(z[i], f.p2[i]&mask, carry)
	}
}

// FpHalf sets z = x/2 (mod p). The output is below 1.5p.
func (f *Field) FpHalf(z, x *Fp) {
	f.trace(OpHalf)
	mask := Mask(x[0] & 1)
	var t Fp
	var carry uint64
	for i := 0; i < f.words; i++ {
		t[i], carry = bits.Add64(x[i], f.p[i]&mask, carry)
	}
	for i := 0; i < f.words-1; i++ {
		z[i] = t[i]>>1 | t[i+1]<<63
	}
	z[f.words-1] = t[f.words-1] >> 1
}

// FpCorrect reduces x from [0, 2p) into [0, p).
func (f *Field) FpCorrect(x *Fp) {
	f.trace(OpCorrect)
	var borrow uint64
	for i := 0; i < f.words; i++ {
		x[i], borrow = bits.Sub64(x[i], f.p[i], borrow)
	}
	mask := Mask(borrow)
	var carry uint64
	for i := 0; i < f.words; i++ {
		x[i], carry = bits.Add64(x[i], f.p[i]&mask, carry)
	}
}

// mulWide sets z = x * y with schoolbook multiplication.
func (f *Field) mulWide(z *FpX2, x, y *Fp) {
	f.trace(OpMul)
	var t FpX2
	n := f.words
	for i := 0; i < n; i++ {
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		t[i+n] = carry
	}
	*z = t
}

// sqrWide sets z = x * x, computing every cross product once and doubling
// their sum before adding the squares on the diagonal.
func (f *Field) sqrWide(z *FpX2, x *Fp) {
	f.trace(OpSqr)
	var t FpX2
	n := f.words
	for i := 0; i < n; i++ {
		var carry uint64
		for j := i + 1; j < n; j++ {
			hi, lo := bits.Mul64(x[i], x[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		t[i+n] = carry
	}
	var top uint64
	for i := 0; i < 2*n; i++ {
		next := t[i] >> 63
		t[i] = t[i]<<1 | top
		top = next
	}
	var carry uint64
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(x[i], x[i])
		t[2*i], carry = bits.Add64(t[2*i], lo, carry)
		t[2*i+1], carry = bits.Add64(t[2*i+1], hi, carry)
	}
	*z = t
}

// rdc performs Montgomery reduction: z = x * R^-1 (mod 2p) for x < pR.
//
// p = -1 mod 2^64, so the quotient digits are the running low digits
// themselves, and the zeroWords low limbs of p+1 never contribute.
func (f *Field) rdc(z *Fp, x *FpX2) {
	f.trace(OpRdc)
	var q Fp
	var t, u, v uint64
	n := f.words
	count := f.zeroWords
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if j < i-count+1 {
				hi, lo := bits.Mul64(q[j], f.p1[i-j])
				var carry uint64
				v, carry = bits.Add64(lo, v, 0)
				u, carry = bits.Add64(hi, u, carry)
				t += carry
			}
		}
		var carry uint64
		v, carry = bits.Add64(v, x[i], 0)
		u, carry = bits.Add64(u, 0, carry)
		t += carry
		q[i] = v
		v, u, t = u, t, 0
	}
	var r Fp
	for i := n; i < 2*n-1; i++ {
		if count > 0 {
			count--
		}
		for j := i - n + 1; j < n; j++ {
			if j < n-count {
				hi, lo := bits.Mul64(q[j], f.p1[i-j])
				var carry uint64
				v, carry = bits.Add64(lo, v, 0)
				u, carry = bits.Add64(hi, u, carry)
				t += carry
			}
		}
		var carry uint64
		v, carry = bits.Add64(v, x[i], 0)
		u, carry = bits.Add64(u, 0, carry)
		t += carry
		r[i-n] = v
		v, u, t = u, t, 0
	}
	r[n-1] = v + x[2*n-1]
	*z = r
}

// addWide sets z = x + y over the double-width representation.
func (f *Field) addWide(z, x, y *FpX2) {
	f.trace(OpAddWide)
	var carry uint64
	for i := 0; i < 2*f.words; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
}

// subWide sets z = x - y. The caller guarantees x >= y.
func (f *Field) subWide(z, x, y *FpX2) {
	f.trace(OpSubWide)
	var borrow uint64
	for i := 0; i < 2*f.words; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
}

// subWideCorrect sets z = x - y, adding pR when the difference is negative.
func (f *Field) subWideCorrect(z, x, y *FpX2) {
	f.trace(OpSubWide)
	n := f.words
	var borrow uint64
	for i := 0; i < 2*n; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	mask := Mask(borrow)
	var carry uint64
	for i := n; i < 2*n; i++ {
		z[i], carry = bits.Add64(z[i], f.p[i-n]&mask, carry)
	}
}

// FpMul sets z = x * y * R^-1 (mod 2p). Inputs are in Montgomery form.
// z may overlap x or y.
func (f *Field) FpMul(z, x, y *Fp) {
	var t FpX2
	f.mulWide(&t, x, y)
	f.rdc(z, &t)
}

// FpSqr sets z = x^2 * R^-1 (mod 2p).
func (f *Field) FpSqr(z, x *Fp) {
	var t FpX2
	f.sqrWide(&t, x)
	f.rdc(z, &t)
}

// fpPow34 sets z = x^((p-3)/4) with the prime's fixed addition chain.
func (f *Field) fpPow34(z, x *Fp) {
	var lookup [chainTableSize]Fp
	var xx Fp
	f.FpSqr(&xx, x)
	lookup[0] = *x
	for i := 1; i < chainTableSize; i++ {
		f.FpMul(&lookup[i], &lookup[i-1], &xx)
	}
	t := lookup[f.chain.Init]
	for i, pow := range f.chain.Pow {
		for j := uint8(0); j < pow; j++ {
			f.FpSqr(&t, &t)
		}
		f.FpMul(&t, &t, &lookup[f.chain.Mul[i]])
	}
	*z = t
}

// FpInv sets z = x^-1 as x^(p-2) = (x^((p-3)/4))^4 * x. Zero maps to zero.
func (f *Field) FpInv(z, x *Fp) {
	var t Fp
	f.fpPow34(&t, x)
	f.FpSqr(&t, &t)
	f.FpSqr(&t, &t)
	f.FpMul(z, &t, x)
}

// FpToMont sets z = x * R (mod 2p) for x < p.
func (f *Field) FpToMont(z, x *Fp) {
	f.trace(OpConvert)
	f.FpMul(z, x, &f.r2)
}

// FpFromMont sets z = x * R^-1 (mod p), fully reduced.
func (f *Field) FpFromMont(z, x *Fp) {
	f.trace(OpConvert)
	var t FpX2
	copy(t[:f.words], x[:f.words])
	f.rdc(z, &t)
	f.FpCorrect(z)
}

// FpEqual reports whether x and y represent the same residue.
// Both are taken from [0, 2p).
func (f *Field) FpEqual(x, y *Fp) bool {
	a, b := *x, *y
	f.FpCorrect(&a)
	f.FpCorrect(&b)
	var d uint64
	for i := 0; i < f.words; i++ {
		d |= a[i] ^ b[i]
	}
	return d == 0
}
