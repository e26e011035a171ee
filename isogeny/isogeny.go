package isogeny

import (
	"github.com/jedisct1/go-sidh/field"
)

// Isogeny is one step of an isogeny walk of a fixed degree.
type Isogeny interface {
	// Descend multiplies p by degree^k on the curve with coefficients c.
	Descend(p *Point, c *Coefficients, k uint32)
	// GenerateCurve computes the codomain of the isogeny whose kernel is
	// generated by p, and keeps the constants needed by EvaluatePoint.
	GenerateCurve(p *Point) Coefficients
	// EvaluatePoint maps a point through the isogeny built by the last call
	// to GenerateCurve.
	EvaluatePoint(p *Point) Point
}

type isogeny2 struct {
	f *field.Field
	X field.Fp2
	Z field.Fp2
}

type isogeny3 struct {
	f  *field.Field
	K1 field.Fp2
	K2 field.Fp2
}

type isogeny4 struct {
	f  *field.Field
	K1 field.Fp2
	K2 field.Fp2
	K3 field.Fp2
}

// NewIsogeny2 returns a degree-2 isogeny working on (A+2C : 4C) coefficients.
func NewIsogeny2(f *field.Field) Isogeny {
	return &isogeny2{f: f}
}

// NewIsogeny3 returns a degree-3 isogeny working on (A+2C : A-2C) coefficients.
func NewIsogeny3(f *field.Field) Isogeny {
	return &isogeny3{f: f}
}

// NewIsogeny4 returns a degree-4 isogeny working on (A+2C : 4C) coefficients.
func NewIsogeny4(f *field.Field) Isogeny {
	return &isogeny4{f: f}
}

func (phi *isogeny2) Descend(p *Point, c *Coefficients, k uint32) {
	Pow2k(phi.f, p, c, k)
}

// GenerateCurve returns (A'+2C' : 4C') = (Z^2 - X^2 : Z^2) for a kernel
// point (X:Z) of order 2 other than (0:1).
func (phi *isogeny2) GenerateCurve(p *Point) Coefficients {
	var coef Coefficients
	f := phi.f

	phi.X, phi.Z = p.X, p.Z
	f.Sqr(&coef.A, &p.X)
	f.Sqr(&coef.C, &p.Z)
	f.Sub(&coef.A, &coef.C, &coef.A)
	return coef
}

func (phi *isogeny2) EvaluatePoint(p *Point) Point {
	var t0, t1, t2, t3 field.Fp2
	var q Point
	f := phi.f

	f.Add(&t0, &phi.X, &phi.Z) // t0 = X2 + Z2
	f.Sub(&t1, &phi.X, &phi.Z) // t1 = X2 - Z2
	f.Add(&t2, &p.X, &p.Z)     // t2 = XQ + ZQ
	f.Sub(&t3, &p.X, &p.Z)     // t3 = XQ - ZQ
	f.Mul(&t0, &t0, &t3)
	f.Mul(&t1, &t1, &t2)
	f.Add(&t2, &t0, &t1)
	f.Sub(&t3, &t0, &t1)
	f.Mul(&q.X, &p.X, &t2)
	f.Mul(&q.Z, &p.Z, &t3)
	return q
}

func (phi *isogeny3) Descend(p *Point, c *Coefficients, k uint32) {
	Pow3k(phi.f, p, c, k)
}

// GenerateCurve takes a point of exact order 3 and returns the codomain as
// (A'+2C' : A'-2C').
func (phi *isogeny3) GenerateCurve(p *Point) Coefficients {
	var t0, t1, t2, t3, t4 field.Fp2
	var coefEq Coefficients
	var K1, K2 = &phi.K1, &phi.K2
	f := phi.f

	f.Sub(K1, &p.X, &p.Z)            // K1 = XP3 - ZP3
	f.Sqr(&t0, K1)                   // t0 = K1^2
	f.Add(K2, &p.X, &p.Z)            // K2 = XP3 + ZP3
	f.Sqr(&t1, K2)                   // t1 = K2^2
	f.Add(&t2, &t0, &t1)             // t2 = t0 + t1
	f.Add(&t3, K1, K2)               // t3 = K1 + K2
	f.Sqr(&t3, &t3)                  // t3 = t3^2
	f.Sub(&t3, &t3, &t2)             // t3 = t3 - t2
	f.Add(&t2, &t1, &t3)             // t2 = t1 + t3
	f.Add(&t3, &t3, &t0)             // t3 = t3 + t0
	f.Add(&t4, &t3, &t0)             // t4 = t3 + t0
	f.Add(&t4, &t4, &t4)             // t4 = t4 + t4
	f.Add(&t4, &t1, &t4)             // t4 = t1 + t4
	f.Mul(&coefEq.C, &t2, &t4)       // A24m = t2 * t4
	f.Add(&t4, &t1, &t2)             // t4 = t1 + t2
	f.Add(&t4, &t4, &t4)             // t4 = t4 + t4
	f.Add(&t4, &t0, &t4)             // t4 = t0 + t4
	f.Mul(&t4, &t3, &t4)             // t4 = t3 * t4
	f.Sub(&t0, &t4, &coefEq.C)       // t0 = t4 - A24m
	f.Add(&coefEq.A, &coefEq.C, &t0) // A24p = A24m + t0
	return coefEq
}

func (phi *isogeny3) EvaluatePoint(p *Point) Point {
	var t0, t1, t2 field.Fp2
	var q Point
	var K1, K2 = &phi.K1, &phi.K2
	var px, pz = &p.X, &p.Z
	f := phi.f

	f.Add(&t0, px, pz)   // t0 = XQ + ZQ
	f.Sub(&t1, px, pz)   // t1 = XQ - ZQ
	f.Mul(&t0, K1, &t0)  // t2 = K1 * t0
	f.Mul(&t1, K2, &t1)  // t1 = K2 * t1
	f.Add(&t2, &t0, &t1) // t2 = t0 + t1
	f.Sub(&t0, &t1, &t0) // t0 = t1 - t0
	f.Sqr(&t2, &t2)      // t2 = t2 ^ 2
	f.Sqr(&t0, &t0)      // t0 = t0 ^ 2
	f.Mul(&q.X, px, &t2) // XQ'= XQ * t2
	f.Mul(&q.Z, pz, &t0) // ZQ'= ZQ * t0
	return q
}

func (phi *isogeny4) Descend(p *Point, c *Coefficients, k uint32) {
	Pow2k(phi.f, p, c, 2*k)
}

// GenerateCurve takes a point of exact order 4 and returns the codomain as
// (A'+2C' : 4C').
func (phi *isogeny4) GenerateCurve(p *Point) Coefficients {
	var coefEq Coefficients
	var xp4, zp4 = &p.X, &p.Z
	var K1, K2, K3 = &phi.K1, &phi.K2, &phi.K3
	f := phi.f

	f.Sub(K2, xp4, zp4)
	f.Add(K3, xp4, zp4)
	f.Sqr(K1, zp4)
	f.Add(K1, K1, K1)
	f.Sqr(&coefEq.C, K1)
	f.Add(K1, K1, K1)
	f.Sqr(&coefEq.A, xp4)
	f.Add(&coefEq.A, &coefEq.A, &coefEq.A)
	f.Sqr(&coefEq.A, &coefEq.A)
	return coefEq
}

func (phi *isogeny4) EvaluatePoint(p *Point) Point {
	var t0, t1 field.Fp2
	var q = *p
	var xq, zq = &q.X, &q.Z
	var K1, K2, K3 = &phi.K1, &phi.K2, &phi.K3
	f := phi.f

	f.Add(&t0, xq, zq)
	f.Sub(&t1, xq, zq)
	f.Mul(xq, &t0, K2)
	f.Mul(zq, &t1, K3)
	f.Mul(&t0, &t0, &t1)
	f.Mul(&t0, &t0, K1)
	f.Add(&t1, xq, zq)
	f.Sub(zq, xq, zq)
	f.Sqr(&t1, &t1)
	f.Sqr(zq, zq)
	f.Add(xq, &t0, &t1)
	f.Sub(&t0, zq, &t0)
	f.Mul(xq, xq, &t1)
	f.Mul(zq, zq, &t0)
	return q
}
