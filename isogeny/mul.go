package isogeny

import (
	"github.com/jedisct1/go-sidh/field"
)

// Pow2k sets xP = x([2^k]P) on the curve with coefficients (A+2C : 4C).
func Pow2k(f *field.Field, xP *Point, params *Coefficients, k uint32) {
	var t0, t1 field.Fp2

	x, z := &xP.X, &xP.Z
	for i := uint32(0); i < k; i++ {
		f.Sub(&t0, x, z)           // t0  = Xp - Zp
		f.Add(&t1, x, z)           // t1  = Xp + Zp
		f.Sqr(&t0, &t0)            // t0  = t0 ^ 2
		f.Sqr(&t1, &t1)            // t1  = t1 ^ 2
		f.Mul(z, &params.C, &t0)   // Z2p = C24 * t0
		f.Mul(x, z, &t1)           // X2p = Z2p * t1
		f.Sub(&t1, &t1, &t0)       // t1  = t1 - t0
		f.Mul(&t0, &params.A, &t1) // t0  = A24+ * t1
		f.Add(z, z, &t0)           // Z2p = Z2p + t0
		f.Mul(z, z, &t1)           // Zp  = Z2p * t1
	}
}

// Pow3k sets xP = x([3^k]P) on the curve with coefficients (A+2C : A-2C).
func Pow3k(f *field.Field, xP *Point, params *Coefficients, k uint32) {
	var t0, t1, t2, t3, t4, t5, t6 field.Fp2

	x, z := &xP.X, &xP.Z
	for i := uint32(0); i < k; i++ {
		f.Sub(&t0, x, z)           // t0  = Xp - Zp
		f.Sqr(&t2, &t0)            // t2  = t0^2
		f.Add(&t1, x, z)           // t1  = Xp + Zp
		f.Sqr(&t3, &t1)            // t3  = t1^2
		f.Add(&t4, &t1, &t0)       // t4  = t1 + t0
		f.Sub(&t0, &t1, &t0)       // t0  = t1 - t0
		f.Sqr(&t1, &t4)            // t1  = t4^2
		f.Sub(&t1, &t1, &t3)       // t1  = t1 - t3
		f.Sub(&t1, &t1, &t2)       // t1  = t1 - t2
		f.Mul(&t5, &t3, &params.A) // t5  = t3 * A24+
		f.Mul(&t3, &t3, &t5)       // t3  = t5 * t3
		f.Mul(&t6, &t2, &params.C) // t6  = t2 * A24-
		f.Mul(&t2, &t2, &t6)       // t2  = t2 * t6
		f.Sub(&t3, &t2, &t3)       // t3  = t2 - t3
		f.Sub(&t2, &t5, &t6)       // t2  = t5 - t6
		f.Mul(&t1, &t2, &t1)       // t1  = t2 * t1
		f.Add(&t2, &t3, &t1)       // t2  = t3 + t1
		f.Sqr(&t2, &t2)            // t2  = t2^2
		f.Mul(x, &t2, &t4)         // X3p = t2 * t4
		f.Sub(&t1, &t3, &t1)       // t1  = t3 - t1
		f.Sqr(&t1, &t1)            // t1  = t1^2
		f.Mul(z, &t1, &t0)         // Z3p = t1 * t0
	}
}

// Double sets xP = x([2]P).
func Double(f *field.Field, xP *Point, params *Coefficients) {
	Pow2k(f, xP, params, 1)
}

// Triple sets xP = x([3]P).
func Triple(f *field.Field, xP *Point, params *Coefficients) {
	Pow3k(f, xP, params, 1)
}

// DoubleAdd is the combined doubling and differential addition step of the
// ladder. Given P, Q, Q-P and a24 = (A+2C)/4C it returns 2P and P+Q.
func DoubleAdd(f *field.Field, P, Q, QmP *Point, a24 *field.Fp2) (dblP, PaQ Point) {
	var t0, t1, t2 field.Fp2
	xQmP, zQmP := &QmP.X, &QmP.Z
	xPaQ, zPaQ := &PaQ.X, &PaQ.Z
	x2P, z2P := &dblP.X, &dblP.Z
	xP, zP := &P.X, &P.Z
	xQ, zQ := &Q.X, &Q.Z

	f.Add(&t0, xP, zP)      // t0   = Xp+Zp
	f.Sub(&t1, xP, zP)      // t1   = Xp-Zp
	f.Sqr(x2P, &t0)         // 2P.X = t0^2
	f.Sub(&t2, xQ, zQ)      // t2   = Xq-Zq
	f.Add(xPaQ, xQ, zQ)     // Xp+q = Xq+Zq
	f.Mul(&t0, &t0, &t2)    // t0   = t0 * t2
	f.Mul(z2P, &t1, &t1)    // 2P.Z = t1 * t1
	f.Mul(&t1, &t1, xPaQ)   // t1   = t1 * Xp+q
	f.Sub(&t2, x2P, z2P)    // t2   = 2P.X - 2P.Z
	f.Mul(x2P, x2P, z2P)    // 2P.X = 2P.X * 2P.Z
	f.Mul(xPaQ, a24, &t2)   // Xp+q = A24 * t2
	f.Sub(zPaQ, &t0, &t1)   // Zp+q = t0 - t1
	f.Add(z2P, xPaQ, z2P)   // 2P.Z = Xp+q + 2P.Z
	f.Add(xPaQ, &t0, &t1)   // Xp+q = t0 + t1
	f.Mul(z2P, z2P, &t2)    // 2P.Z = 2P.Z * t2
	f.Sqr(zPaQ, zPaQ)       // Zp+q = Zp+q ^ 2
	f.Sqr(xPaQ, xPaQ)       // Xp+q = Xp+q ^ 2
	f.Mul(zPaQ, xQmP, zPaQ) // Zp+q = Xq-p * Zp+q
	f.Mul(xPaQ, zQmP, xPaQ) // Xp+q = Zq-p * Xp+q
	return
}
