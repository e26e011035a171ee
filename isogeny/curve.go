// Package isogeny implements x-only arithmetic on Montgomery curves
// By^2 = x^3 + (A/C)x^2 + x over GF(p^2) together with the 2-, 3- and
// 4-isogenies and the strategy-driven isogeny walks built on them.
//
// Every function takes the field engine explicitly; the package holds no
// state of its own.
package isogeny

import (
	"github.com/jedisct1/go-sidh/field"
)

// Point is a projective point (X:Z) of the Kummer line; Z = 0 is infinity.
type Point struct {
	X field.Fp2
	Z field.Fp2
}

// Curve holds the projective coefficients (A:C) of y^2 = x^3 + (A/C)x^2 + x.
type Curve struct {
	A field.Fp2
	C field.Fp2
}

// Coefficients stores curve parameters projectively equivalent to A/C.
// Their meaning depends on the isogeny degree in use:
//   - powers of three: (A:C) ~ (A+2C : A-2C)
//   - powers of two:   (A:C) ~ (A+2C : 4C)
type Coefficients struct {
	A field.Fp2
	C field.Fp2
}

// NewAffinePoint returns the point (x:1).
func NewAffinePoint(f *field.Field, x *field.Fp2) Point {
	p := Point{X: *x}
	f.SetOne(&p.Z)
	return p
}

// Equiv3 computes (A:C) ~ (A+2C : A-2C).
func Equiv3(f *field.Field, c *Curve) Coefficients {
	var coef Coefficients
	var c2 field.Fp2

	f.Add(&c2, &c.C, &c.C)
	f.Add(&coef.A, &c.A, &c2) // A24p = A+2C
	f.Sub(&coef.C, &c.A, &c2) // A24m = A-2C
	return coef
}

// Equiv4 computes (A:C) ~ (A+2C : 4C).
func Equiv4(f *field.Field, c *Curve) Coefficients {
	var coef Coefficients

	f.Add(&coef.C, &c.C, &c.C)
	f.Add(&coef.A, &c.A, &coef.C)    // A24p = A+2C
	f.Add(&coef.C, &coef.C, &coef.C) // C24 = 4C
	return coef
}

// Recover3 returns (A:C) from (A+2C : A-2C), scaled to (4A : 4C).
func Recover3(f *field.Field, coef *Coefficients) Curve {
	var c Curve

	f.Add(&c.A, &coef.A, &coef.C)
	f.Add(&c.A, &c.A, &c.A)
	f.Sub(&c.C, &coef.A, &coef.C)
	return c
}

// Recover4 returns (A:C) from (A+2C : 4C), scaled to (4A : 4C).
func Recover4(f *field.Field, coef *Coefficients) Curve {
	var c Curve

	f.Add(&c.A, &coef.A, &coef.A) // 2A+4C
	f.Sub(&c.A, &c.A, &coef.C)    // 2A
	f.Add(&c.A, &c.A, &c.A)       // 4A
	c.C = coef.C
	return c
}

// RecoverA computes the affine A of the curve carrying the affine points
// x(P), x(Q) and x(Q-P). The returned curve has C = 1.
func RecoverA(f *field.Field, xp, xq, xr *field.Fp2) Curve {
	var t0, t1, one field.Fp2
	var c Curve

	f.SetOne(&one)
	f.Add(&t1, xp, xq)     // t1 = Xp + Xq
	f.Mul(&t0, xp, xq)     // t0 = Xp * Xq
	f.Mul(&c.A, xr, &t1)   // A  = X(q-p) * t1
	f.Add(&c.A, &c.A, &t0) // A  = A + t0
	f.Mul(&t0, &t0, xr)    // t0 = t0 * X(q-p)
	f.Sub(&c.A, &c.A, &one)
	f.Add(&t0, &t0, &t0)
	f.Add(&t1, &t1, xr) // t1 = t1 + X(q-p)
	f.Add(&t0, &t0, &t0)
	f.Sqr(&c.A, &c.A)
	f.Inv(&t0, &t0)
	f.Mul(&c.A, &c.A, &t0)
	f.Sub(&c.A, &c.A, &t1)
	c.C = one
	return c
}

// JInvariant computes j = 256(A^2 - 3C^2)^3 / (C^4 (A^2 - 4C^2)).
func JInvariant(f *field.Field, c *Curve) field.Fp2 {
	var j, t0, t1 field.Fp2

	f.Sqr(&j, &c.A)      // j  = A^2
	f.Sqr(&t1, &c.C)     // t1 = C^2
	f.Add(&t0, &t1, &t1) // t0 = t1 + t1
	f.Sub(&t0, &j, &t0)  // t0 = j - t0
	f.Sub(&t0, &t0, &t1) // t0 = t0 - t1
	f.Sub(&j, &t0, &t1)  // j  = t0 - t1
	f.Sqr(&t1, &t1)      // t1 = t1^2
	f.Mul(&j, &j, &t1)   // j  = j * t1
	f.Add(&t0, &t0, &t0) // t0 = t0 + t0
	f.Add(&t0, &t0, &t0) // t0 = t0 + t0
	f.Sqr(&t1, &t0)      // t1 = t0^2
	f.Mul(&t0, &t0, &t1) // t0 = t0 * t1
	f.Add(&t0, &t0, &t0) // t0 = t0 + t0
	f.Add(&t0, &t0, &t0) // t0 = t0 + t0
	f.Inv(&j, &j)        // j  = 1/j
	f.Mul(&j, &t0, &j)   // j  = t0 * j
	return j
}

// Batch3Inv sets (y1, y2, y3) = (1/x1, 1/x2, 1/x3) with a single inversion.
//
// Inputs and outputs must not overlap.
func Batch3Inv(f *field.Field, x1, x2, x3, y1, y2, y3 *field.Fp2) {
	var x1x2, t field.Fp2

	f.Mul(&x1x2, x1, x2)
	f.Mul(&t, &x1x2, x3)
	f.Inv(&t, &t) // 1/(x1*x2*x3)
	f.Mul(y1, &t, x2)
	f.Mul(y1, y1, x3)
	f.Mul(y2, &t, x1)
	f.Mul(y2, y2, x3)
	f.Mul(y3, &t, &x1x2)
}

// Affine returns X/Z for each point, sharing one inversion.
func Affine(f *field.Field, p1, p2, p3 *Point) (x1, x2, x3 field.Fp2) {
	var i1, i2, i3 field.Fp2

	Batch3Inv(f, &p1.Z, &p2.Z, &p3.Z, &i1, &i2, &i3)
	f.Mul(&x1, &p1.X, &i1)
	f.Mul(&x2, &p2.X, &i2)
	f.Mul(&x3, &p3.X, &i3)
	return
}
