package quadratic

import (
	"fmt"
	"math"
)

// Ring describes one imaginary quadratic integer ring, the value domain a
// [QuadraticInteger] belongs to. A ring is identified by its radicand d, a
// negative squarefree integer: its elements are the algebraic integers of
// the field Q(√d). When d is congruent to 1 modulo 4 the ring additionally
// contains "half-integers" of the form a/2 + b√d/2 with a and b both odd.
//
// A Ring is immutable after construction and safe for concurrent use.
type Ring struct {
	d        int32   // the radicand, negative and squarefree
	absD     int32   // |d|
	sqrtAbsD float64 // approximation of √|d|, advisory only
	halfInts bool    // d ≡ 1 (mod 4)
}

// NewRing returns the imaginary quadratic ring with radicand d.
//
// NewRing returns an error if d is not a negative squarefree integer
// representable in 32 bits.
func NewRing(d int) (*Ring, error) {
	if d > -1 {
		return nil, fmt.Errorf("radicand %v is not negative: %w", d, errInvalidConstruction)
	}
	if d < -math.MaxInt32 {
		return nil, fmt.Errorf("radicand %v is out of range: %w", d, errInvalidConstruction)
	}
	if !IsSquareFree(d) {
		return nil, fmt.Errorf("radicand %v is not squarefree: %w", d, errInvalidConstruction)
	}
	return &Ring{
		d:        int32(d),
		absD:     int32(-d),
		sqrtAbsD: math.Sqrt(float64(-d)),
		// Truncating division gives -3, not 1, for the negative odd
		// radicands congruent to 1 modulo 4.
		halfInts: d%4 == -3,
	}, nil
}

// MustNewRing is like [NewRing] but panics on error.
// It simplifies safe initialization of global variables holding rings.
func MustNewRing(d int) *Ring {
	r, err := NewRing(d)
	if err != nil {
		panic(fmt.Sprintf("MustNewRing(%v) failed: %v", d, err))
	}
	return r
}

// D returns the radicand of the ring.
func (r *Ring) D() int {
	return int(r.d)
}

// AbsD returns the absolute value of the radicand.
func (r *Ring) AbsD() int {
	return int(r.absD)
}

// SqrtAbsD returns a double-precision approximation of √|d|.
// It is advisory only and never drives exactness decisions.
func (r *Ring) SqrtAbsD() float64 {
	return r.sqrtAbsD
}

// HasHalfIntegers reports whether the ring contains half-integers,
// which is the case exactly when d ≡ 1 (mod 4).
func (r *Ring) HasHalfIntegers() bool {
	return r.halfInts
}

// Equal reports whether two rings have the same radicand.
func (r *Ring) Equal(o *Ring) bool {
	return o != nil && r.d == o.d
}
