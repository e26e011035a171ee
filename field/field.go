// Package field implements Montgomery arithmetic over GF(p) and GF(p^2) for
// SIDH primes of the form p = 2^eA * 3^eB - 1.
//
// A single engine serves every supported prime: the limb count, the modulus
// and its derived constants are carried by a Field value instead of being
// compiled into per-prime copies of the code. Elements are stored in
// fixed-size arrays wide enough for the largest prime; limbs above the
// field's word count are always zero.
package field

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxWords is the number of 64-bit limbs of the largest supported prime (p751).
const MaxWords = 12

// Fp is an element of the base field, usually in Montgomery form (aR mod p).
//
// No particular meaning is assigned to the representation; tracking it is
// left to higher types.
type Fp [MaxWords]uint64

// FpX2 holds the double-width product of two base field elements.
type FpX2 [2 * MaxWords]uint64

// Fp2 is an element A + B*i of GF(p^2) = GF(p)[i]/(i^2+1).
type Fp2 struct {
	A Fp
	B Fp
}

// Chain is a fixed addition chain computing x^((p-3)/4).
//
// The chain starts from the cached odd power x^(2*Init+1). Step i squares
// Pow[i] times, then multiplies by x^(2*Mul[i]+1).
type Chain struct {
	Init uint8
	Pow  []uint8
	Mul  []uint8
}

// chainTableSize is the number of cached odd powers x, x^3, ..., x^31.
const chainTableSize = 16

// Prime describes a SIDH prime and its Montgomery constants, R = 2^(64*Words).
type Prime struct {
	Words int
	// p, 2p and p+1
	P, P2, P1 Fp
	// R^2 mod p
	R2 Fp
	// R mod p and R/2 mod p
	One, Half Fp
	Chain     Chain
}

// Field is the arithmetic engine for one prime. It is immutable once built
// and safe for concurrent use, unless a Tracer is attached.
type Field struct {
	words     int
	zeroWords int
	bytelen   int
	p         Fp
	p2        Fp
	p1        Fp
	r2        Fp
	one       Fp
	half      Fp
	chain     Chain
	tracer    Tracer
}

// New checks a prime description and returns the engine for it.
func New(prime *Prime) (*Field, error) {
	if prime.Words < 1 || prime.Words > MaxWords {
		return nil, fmt.Errorf("Unsupported limb count [%d]", prime.Words)
	}
	if len(prime.Chain.Pow) != len(prime.Chain.Mul) || len(prime.Chain.Pow) == 0 {
		return nil, errors.New("Inconsistent inversion chain")
	}
	if prime.Chain.Init >= chainTableSize {
		return nil, errors.New("Inversion chain starts outside of the table")
	}
	for _, m := range prime.Chain.Mul {
		if m >= chainTableSize {
			return nil, errors.New("Inversion chain refers outside of the table")
		}
	}
	if prime.P[0]&3 != 3 {
		return nil, errors.New("Prime must be 3 mod 4")
	}
	for i := prime.Words; i < MaxWords; i++ {
		if prime.P[i] != 0 || prime.P2[i] != 0 || prime.P1[i] != 0 {
			return nil, errors.New("Constant wider than the limb count")
		}
	}
	f := &Field{
		words: prime.Words,
		p:     prime.P,
		p2:    prime.P2,
		p1:    prime.P1,
		r2:    prime.R2,
		one:   prime.One,
		half:  prime.Half,
		chain: prime.Chain,
	}
	for f.zeroWords < f.words && f.p1[f.zeroWords] == 0 {
		f.zeroWords++
	}
	if f.zeroWords == 0 {
		return nil, errors.New("p+1 must be divisible by 2^64")
	}
	top := f.words - 1
	f.bytelen = (64*top + bits.Len64(f.p[top]) + 7) / 8
	return f, nil
}

// Words returns the number of limbs in use.
func (f *Field) Words() int {
	return f.words
}

// Bytelen returns the encoded size of a base field element.
func (f *Field) Bytelen() int {
	return f.bytelen
}

// WithTracer returns a copy of the engine reporting every primitive operation
// to t. The copy is not safe for concurrent use unless t is.
func (f *Field) WithTracer(t Tracer) *Field {
	g := *f
	g.tracer = t
	return &g
}

// SetOne sets z to 1 in Montgomery form.
func (f *Field) SetOne(z *Fp2) {
	z.A = f.one
	z.B = Fp{}
}

// SetHalf sets z to 1/2 in Montgomery form.
func (f *Field) SetHalf(z *Fp2) {
	z.A = f.half
	z.B = Fp{}
}
