// Package params holds the SIDH parameter sets and a registry to look them up.
//
// Each set is immutable once registered. The constant tables (prime, public
// bases, strategies, Montgomery constants) are data; the algorithms that use
// them live in the field and isogeny packages.
package params

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedisct1/go-sidh/field"
	"github.com/jedisct1/go-sidh/isogeny"
)

// ID identifies a parameter set. Values are stable and appear in stamps.
type ID uint8

const (
	P434 ID = iota + 1
	P503
	P610
	P751
)

func (id ID) String() string {
	if p, ok := registry[id]; ok {
		return p.Name
	}
	return fmt.Sprintf("ID(%d)", uint8(id))
}

// Domain describes the torsion subgroup used by one party.
type Domain struct {
	// The x-coordinates of P, Q and R = P-Q, in Montgomery form
	AffineP, AffineQ, AffineR field.Fp2
	// Computation strategy for the isogeny walk
	Strategy []uint32
	// Power of the small prime (2 or 3) dividing p+1
	Exponent uint
	// Number of scalar bits processed by the ladder
	SecretBitLen uint
	// SecretBitLen in bytes
	SecretByteLen uint
}

// Params is a complete SIDH parameter set.
type Params struct {
	ID   ID
	Name string
	// Arithmetic engine for p
	Field *field.Field
	// Encoded size of an element of GF(p)
	Bytelen int
	// The public key size, in bytes
	PublicKeySize int
	// The shared secret size, in bytes
	SharedSecretSize int
	// Starting curve E_(A:C)
	InitCurve isogeny.Curve
	// 2-torsion (A) and 3-torsion (B) definitions
	A, B Domain
}

var registry = make(map[ID]*Params)

func register(prime *field.Prime, p *Params) {
	f, err := field.New(prime)
	if err != nil {
		panic(fmt.Sprintf("Invalid parameter set [%s]: %v", p.Name, err))
	}
	p.Field = f
	p.Bytelen = f.Bytelen()
	p.PublicKeySize = 3 * 2 * p.Bytelen
	p.SharedSecretSize = 2 * p.Bytelen
	if _, dup := registry[p.ID]; dup {
		panic(fmt.Sprintf("Parameter set [%s] registered twice", p.Name))
	}
	registry[p.ID] = p
}

// Get returns the parameter set for id.
func Get(id ID) (*Params, error) {
	p, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("Unsupported parameter set [%d]", uint8(id))
	}
	return p, nil
}

// ByName returns the parameter set with the given name, such as "p434".
func ByName(name string) (*Params, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range registry {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("Unsupported parameter set [%v]", name)
}

// IDs returns the identifiers of every registered set, in increasing order.
func IDs() []ID {
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// WithTracer returns a copy of p whose field engine reports every
// primitive operation to t.
func (p *Params) WithTracer(t field.Tracer) *Params {
	q := *p
	q.Field = p.Field.WithTracer(t)
	return &q
}

// Domain returns the torsion definition of party A (twoTorsion) or B.
func (p *Params) Domain(twoTorsion bool) *Domain {
	if twoTorsion {
		return &p.A
	}
	return &p.B
}
