package isogeny

import (
	"github.com/jedisct1/go-sidh/field"
)

// aPlus2Over4 returns (A+2)/4 for an affine coefficient A.
func aPlus2Over4(f *field.Field, a *field.Fp2) field.Fp2 {
	var one, ret field.Fp2

	f.SetOne(&one)
	f.Add(&ret, a, &one)
	f.Add(&ret, &ret, &one)
	f.Half(&ret, &ret)
	f.Half(&ret, &ret)
	return ret
}

// ScalarMul3Pt is a right-to-left ladder that, given x(P), x(Q) and x(P-Q)
// on the curve with affine coefficient a, returns x(P + [m]Q) where m is the
// little-endian scalar. Exactly nbits bits are processed, whatever their value.
func ScalarMul3Pt(f *field.Field, a *field.Fp2, P, Q, PmQ *Point, nbits uint, scalar []byte) Point {
	var R0, R2, R1 Point
	a24 := aPlus2Over4(f, a)
	R1 = *P
	R2 = *PmQ
	R0 = *Q

	prevBit := uint8(0)
	for i := uint(0); i < nbits; i++ {
		bit := scalar[i>>3] >> (i & 7) & 1
		swap := prevBit ^ bit
		prevBit = bit
		condSwapPoints(f, &R1, &R2, swap)
		R0, R2 = DoubleAdd(f, &R0, &R2, &R1, &a24)
	}
	condSwapPoints(f, &R1, &R2, prevBit)
	return R1
}

func condSwapPoints(f *field.Field, p, q *Point, bit uint8) {
	f.CondSwap(&p.X, &q.X, bit)
	f.CondSwap(&p.Z, &q.Z, bit)
}
