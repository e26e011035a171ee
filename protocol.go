package sidh

import (
	"github.com/jedisct1/go-sidh/field"
	"github.com/jedisct1/go-sidh/isogeny"
	"github.com/jedisct1/go-sidh/params"
)

// walkA runs the 2^eA isogeny walk from kernel generator xK, pushing aux
// through every step, and returns the codomain as (A+2C : 4C).
//
// An odd exponent leaves one 2-isogeny over after the 4-isogenies; it is
// taken first, on [2^(eA-1)]xK.
func walkA(p *params.Params, curve *isogeny.Curve, xK isogeny.Point, aux []isogeny.Point) isogeny.Coefficients {
	f := p.Field
	c := isogeny.Equiv4(f, curve)
	if p.A.Exponent%2 == 1 {
		phi := isogeny.NewIsogeny2(f)
		xT := xK
		isogeny.Pow2k(f, &xT, &c, uint32(p.A.Exponent-1))
		c = phi.GenerateCurve(&xT)
		for i := range aux {
			aux[i] = phi.EvaluatePoint(&aux[i])
		}
		xK = phi.EvaluatePoint(&xK)
	}
	return isogeny.Traverse(isogeny.NewIsogeny4(f), c, xK, p.A.Strategy, aux)
}

// walkB runs the 3^eB isogeny walk and returns the codomain as
// (A+2C : A-2C).
func walkB(p *params.Params, curve *isogeny.Curve, xK isogeny.Point, aux []isogeny.Point) isogeny.Coefficients {
	f := p.Field
	c := isogeny.Equiv3(f, curve)
	return isogeny.Traverse(isogeny.NewIsogeny3(f), c, xK, p.B.Strategy, aux)
}

func basis(f *field.Field, d *params.Domain) []isogeny.Point {
	return []isogeny.Point{
		isogeny.NewAffinePoint(f, &d.AffineP),
		isogeny.NewAffinePoint(f, &d.AffineQ),
		isogeny.NewAffinePoint(f, &d.AffineR),
	}
}

// Generate a public key in the 2-torsion group
func publicKeyGenA(prv *PrivateKey) *PublicKey {
	p := prv.params
	f := p.Field
	pub := &PublicKey{key: key{params: p, keyVariant: KeyVariantA}}

	own := basis(f, &p.A)
	aux := basis(f, &p.B)

	// Find isogeny kernel
	xK := isogeny.ScalarMul3Pt(f, &p.InitCurve.A, &own[0], &own[1], &own[2], p.A.SecretBitLen, prv.Scalar)
	walkA(p, &p.InitCurve, xK, aux)

	pub.affineXP, pub.affineXQ, pub.affineXQmP = isogeny.Affine(f, &aux[0], &aux[1], &aux[2])
	return pub
}

// Generate a public key in the 3-torsion group
func publicKeyGenB(prv *PrivateKey) *PublicKey {
	p := prv.params
	f := p.Field
	pub := &PublicKey{key: key{params: p, keyVariant: KeyVariantB}}

	own := basis(f, &p.B)
	aux := basis(f, &p.A)

	xK := isogeny.ScalarMul3Pt(f, &p.InitCurve.A, &own[0], &own[1], &own[2], p.B.SecretBitLen, prv.Scalar)
	walkB(p, &p.InitCurve, xK, aux)

	pub.affineXP, pub.affineXQ, pub.affineXQmP = isogeny.Affine(f, &aux[0], &aux[1], &aux[2])
	return pub
}

// peerKernel recovers the peer curve (with C = 1) and the kernel generator
// of the secret isogeny on it.
func peerKernel(prv *PrivateKey, pub *PublicKey) (isogeny.Curve, isogeny.Point) {
	f := prv.params.Field
	curve := isogeny.RecoverA(f, &pub.affineXP, &pub.affineXQ, &pub.affineXQmP)
	xP := isogeny.NewAffinePoint(f, &pub.affineXP)
	xQ := isogeny.NewAffinePoint(f, &pub.affineXQ)
	xQmP := isogeny.NewAffinePoint(f, &pub.affineXQmP)
	xK := isogeny.ScalarMul3Pt(f, &curve.A, &xP, &xQ, &xQmP, prv.domain().SecretBitLen, prv.Scalar)
	return curve, xK
}

// Establishing shared keys in 2-torsion group
func deriveSecretA(prv *PrivateKey, pub *PublicKey) []byte {
	p := prv.params
	f := p.Field
	sharedSecret := make([]byte, p.SharedSecretSize)

	curve, xK := peerKernel(prv, pub)
	c := walkA(p, &curve, xK, nil)
	codomain := isogeny.Recover4(f, &c)
	jInv := isogeny.JInvariant(f, &codomain)
	f.Encode(sharedSecret, &jInv)
	return sharedSecret
}

// Establishing shared keys in 3-torsion group
func deriveSecretB(prv *PrivateKey, pub *PublicKey) []byte {
	p := prv.params
	f := p.Field
	sharedSecret := make([]byte, p.SharedSecretSize)

	curve, xK := peerKernel(prv, pub)
	c := walkB(p, &curve, xK, nil)
	codomain := isogeny.Recover3(f, &c)
	jInv := isogeny.JInvariant(f, &codomain)
	f.Encode(sharedSecret, &jInv)
	return sharedSecret
}
