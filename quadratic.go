package quadratic

import (
	"fmt"
	"math"
)

// QuadraticInteger represents one element (a + b√d)/denom of an imaginary
// quadratic ring. The a and b coefficients are stored multiplied by the
// denominator, which is 1 for ordinary elements and 2 for the half-integers
// available in rings with d ≡ 1 (mod 4).
//
// A QuadraticInteger is immutable and safe for concurrent use. Construct
// values with [New] or [NewWhole]; arithmetic methods return new values and
// never mutate their operands.
type QuadraticInteger struct {
	a     int32 // real coefficient, multiplied by denom
	b     int32 // radical coefficient, multiplied by denom
	ring  *Ring // value domain, shared between many values
	denom int32 // 1, or 2 for half-integers
}

// New returns the quadratic integer (a + b√d)/denom in the ring r.
//
// The constructor normalizes its inputs: a denominator of -1 or -2 negates
// all three numbers, a denominator of 2 over two even coefficients is
// reduced to 1. New returns an error wrapping [ErrInvalidConstruction] if
// r is nil, if the denominator is not 1 or 2 after sign canonicalization,
// if the coefficients under denominator 2 have mismatched parity, or if
// they are both odd in a ring without half-integers.
func New(a, b int, r *Ring, denom int) (QuadraticInteger, error) {
	if r == nil {
		return QuadraticInteger{}, fmt.Errorf("nil ring: %w", errInvalidConstruction)
	}
	if denom == -1 || denom == -2 {
		a, b, denom = -a, -b, -denom
	}
	if denom != 1 && denom != 2 {
		return QuadraticInteger{}, fmt.Errorf("denominator %v is not 1 or 2: %w", denom, errInvalidConstruction)
	}
	if denom == 2 {
		if a&1 != b&1 {
			return QuadraticInteger{}, fmt.Errorf("coefficients %v and %v have mismatched parity over denominator 2: %w", a, b, errInvalidConstruction)
		}
		if a&1 == 0 {
			a, b, denom = a/2, b/2, 1
		} else if !r.halfInts {
			return QuadraticInteger{}, fmt.Errorf("ring with radicand %v has no half-integers: %w", r.d, errInvalidConstruction)
		}
	}
	if !fitsInt32(int64(a)) || !fitsInt32(int64(b)) {
		return QuadraticInteger{}, fmt.Errorf("coefficients %v, %v are out of range: %w", a, b, errInvalidConstruction)
	}
	return QuadraticInteger{a: int32(a), b: int32(b), ring: r, denom: int32(denom)}, nil
}

// NewWhole returns the quadratic integer a + b√d in the ring r.
// It is shorthand for [New] with denominator 1.
func NewWhole(a, b int, r *Ring) (QuadraticInteger, error) {
	return New(a, b, r, 1)
}

// newChecked range-checks 64-bit arithmetic results before renormalizing
// them through New. Out-of-range components mean the operation that
// produced them overflowed.
func newChecked(a, b int64, r *Ring, denom int64) (QuadraticInteger, error) {
	if !fitsInt32(a) || !fitsInt32(b) {
		return QuadraticInteger{}, fmt.Errorf("result component is out of range: %w", errArithmeticOverflow)
	}
	return New(int(a), int(b), r, int(denom))
}

// den returns the denominator as a 64-bit factor.
// The zero value of QuadraticInteger counts as a whole number.
func (q QuadraticInteger) den() int64 {
	if q.denom == 2 {
		return 2
	}
	return 1
}

// RealPart returns the real coefficient a, multiplied by the denominator.
func (q QuadraticInteger) RealPart() int {
	return int(q.a)
}

// ImagPart returns the radical coefficient b, multiplied by the denominator.
func (q QuadraticInteger) ImagPart() int {
	return int(q.b)
}

// Denom returns the denominator, 1 or 2.
func (q QuadraticInteger) Denom() int {
	return int(q.den())
}

// Ring returns the ring the value belongs to.
func (q QuadraticInteger) Ring() *Ring {
	return q.ring
}

// IsZero reports whether q is zero.
func (q QuadraticInteger) IsZero() bool {
	return q.a == 0 && q.b == 0
}

// Equal reports whether q and e represent the same number. A purely real
// value is the same number in every ring, so the rings are compared only
// when the radical coefficients are nonzero.
func (q QuadraticInteger) Equal(e QuadraticInteger) bool {
	if q.a != e.a || q.b != e.b || q.den() != e.den() {
		return false
	}
	if q.b == 0 {
		return true
	}
	return q.ring.d == e.ring.d
}

// EqualInt reports whether q is the rational integer n.
func (q QuadraticInteger) EqualInt(n int) bool {
	return q.b == 0 && q.den() == 1 && int64(q.a) == int64(n)
}

// AlgebraicDegree returns the degree of the minimal polynomial of q:
// 0 for zero, 1 for nonzero rational integers, 2 otherwise.
func (q QuadraticInteger) AlgebraicDegree() int {
	switch {
	case q.a == 0 && q.b == 0:
		return 0
	case q.b == 0:
		return 1
	default:
		return 2
	}
}

// Trace returns the trace of q, the sum of q and its conjugate.
// The result is widened to 64 bits so the doubling cannot wrap.
func (q QuadraticInteger) Trace() int64 {
	if q.denom == 2 {
		return int64(q.a)
	}
	return 2 * int64(q.a)
}

// Norm returns the norm of q, the product of q and its conjugate. The norm
// of a nonzero value is a positive rational integer, so a negative result
// signals that the 64-bit accumulator overflowed.
func (q QuadraticInteger) Norm() int64 {
	n, ok := mulInt64(int64(q.a), int64(q.a))
	if ok && q.b != 0 {
		b2, ok2 := mulInt64(int64(q.b), int64(q.b))
		db2, ok3 := mulInt64(int64(q.ring.absD), b2)
		if ok2 && ok3 {
			n, ok = addInt64(n, db2)
		} else {
			ok = false
		}
	}
	if !ok {
		return math.MinInt64
	}
	if q.denom == 2 {
		n /= 4
	}
	return n
}

// MinPolynomial returns the coefficients of the minimal polynomial of q in
// ascending order of degree. Zero gives {0, 1, 0} (the polynomial x), a
// rational integer a gives {-a, 1, 0}, and a degree-2 value gives
// {norm, -trace, 1}.
func (q QuadraticInteger) MinPolynomial() [3]int64 {
	switch q.AlgebraicDegree() {
	case 0:
		return [3]int64{0, 1, 0}
	case 1:
		return [3]int64{-int64(q.a), 1, 0}
	default:
		return [3]int64{q.Norm(), -q.Trace(), 1}
	}
}

// Conjugate returns the conjugate of q, the value with the radical
// coefficient negated. The conjugate of a purely real value is itself.
func (q QuadraticInteger) Conjugate() QuadraticInteger {
	q.b = -q.b
	return q
}

// Abs returns the absolute value of q as a float64. This is the only
// transcendental output of the arithmetic core; nothing else consumes it
// to make exactness decisions.
func (q QuadraticInteger) Abs() float64 {
	n := float64(q.a) * float64(q.a)
	if q.b != 0 {
		n += float64(q.ring.absD) * float64(q.b) * float64(q.b)
	}
	if q.denom == 2 {
		n /= 4
	}
	return math.Sqrt(n)
}

// RealValue returns the real coordinate of q as a float64.
func (q QuadraticInteger) RealValue() float64 {
	return float64(q.a) / float64(q.den())
}

// ImagValue returns the imaginary part of q divided by i, as a float64.
func (q QuadraticInteger) ImagValue() float64 {
	if q.b == 0 {
		return 0
	}
	return float64(q.b) * q.ring.sqrtAbsD / float64(q.den())
}

// resolveRing determines the ring a binary operation takes place in. A
// purely real operand is ring-agnostic, so the other operand's ring wins.
// Operands with nonzero radical coefficients from different rings would
// need a degree-4 result, except that multiplying or dividing two purely
// imaginary values lands in a real quadratic ring instead.
func resolveRing(x, y QuadraticInteger, mulDiv bool) (*Ring, error) {
	switch {
	case x.b == 0:
		if y.ring != nil {
			return y.ring, nil
		}
		return x.ring, nil
	case y.b == 0:
		return x.ring, nil
	case x.ring.d == y.ring.d:
		return x.ring, nil
	case mulDiv && x.a == 0 && y.a == 0:
		return nil, &UnsupportedDomainError{X: x, Y: y}
	default:
		return nil, &DegreeOverflowError{X: x, Y: y}
	}
}

// Add returns the sum q + e.
//
// Add returns a [DegreeOverflowError] if the operands belong to different
// rings and both have nonzero radical coefficients, and an error wrapping
// [ErrArithmeticOverflow] if a component of the sum is out of range.
func (q QuadraticInteger) Add(e QuadraticInteger) (QuadraticInteger, error) {
	r, err := resolveRing(q, e, false)
	if err != nil {
		return QuadraticInteger{}, err
	}
	xa, xb, xd := int64(q.a), int64(q.b), q.den()
	ya, yb, yd := int64(e.a), int64(e.b), e.den()
	if xd < yd {
		xa, xb, xd = 2*xa, 2*xb, 2
	} else if yd < xd {
		ya, yb = 2*ya, 2*yb
	}
	return newChecked(xa+ya, xb+yb, r, xd)
}

// AddInt returns the sum q + n.
func (q QuadraticInteger) AddInt(n int) (QuadraticInteger, error) {
	m := int64(n) * q.den()
	a, ok := addInt64(int64(q.a), m)
	if !ok {
		return QuadraticInteger{}, fmt.Errorf("adding %v to %v: %w", n, q, errArithmeticOverflow)
	}
	return newChecked(a, int64(q.b), q.ring, q.den())
}

// Sub returns the difference q - e.
//
// Sub fails the same ways [QuadraticInteger.Add] does.
func (q QuadraticInteger) Sub(e QuadraticInteger) (QuadraticInteger, error) {
	r, err := resolveRing(q, e, false)
	if err != nil {
		return QuadraticInteger{}, err
	}
	xa, xb, xd := int64(q.a), int64(q.b), q.den()
	ya, yb, yd := int64(e.a), int64(e.b), e.den()
	if xd < yd {
		xa, xb, xd = 2*xa, 2*xb, 2
	} else if yd < xd {
		ya, yb = 2*ya, 2*yb
	}
	return newChecked(xa-ya, xb-yb, r, xd)
}

// SubInt returns the difference q - n.
func (q QuadraticInteger) SubInt(n int) (QuadraticInteger, error) {
	m := int64(n) * q.den()
	a, ok := subInt64(int64(q.a), m)
	if !ok {
		return QuadraticInteger{}, fmt.Errorf("subtracting %v from %v: %w", n, q, errArithmeticOverflow)
	}
	return newChecked(a, int64(q.b), q.ring, q.den())
}

// Mul returns the product q × e.
//
// Mul returns a [DegreeOverflowError] if the operands belong to different
// rings and both have nonzero radical coefficients, except that two purely
// imaginary operands from different rings give an [UnsupportedDomainError]
// because their exact product is a real quadratic integer. Components out
// of range give an error wrapping [ErrArithmeticOverflow].
func (q QuadraticInteger) Mul(e QuadraticInteger) (QuadraticInteger, error) {
	r, err := resolveRing(q, e, true)
	if err != nil {
		return QuadraticInteger{}, err
	}
	xa, xb := int64(q.a), int64(q.b)
	ya, yb := int64(e.a), int64(e.b)
	var absD int64
	if r != nil {
		absD = int64(r.absD)
	}
	p1, ok1 := mulInt64(xa, ya)
	p2, ok2 := mulInt64(xb, yb)
	p2, ok3 := mulInt64(p2, absD)
	re, ok4 := subInt64(p1, p2)
	p3, ok5 := mulInt64(xa, yb)
	p4, ok6 := mulInt64(xb, ya)
	im, ok7 := addInt64(p3, p4)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7) {
		return QuadraticInteger{}, fmt.Errorf("multiplying %v by %v: %w", q, e, errArithmeticOverflow)
	}
	den := q.den() * e.den()
	if den == 4 {
		// Two half-integers multiply to halves of even numbers.
		re, im, den = re/2, im/2, 2
	}
	return newChecked(re, im, r, den)
}

// MulInt returns the product q × n.
func (q QuadraticInteger) MulInt(n int) (QuadraticInteger, error) {
	re, ok1 := mulInt64(int64(q.a), int64(n))
	im, ok2 := mulInt64(int64(q.b), int64(n))
	if !ok1 || !ok2 {
		return QuadraticInteger{}, fmt.Errorf("multiplying %v by %v: %w", q, n, errArithmeticOverflow)
	}
	return newChecked(re, im, q.ring, q.den())
}

// Quo returns the exact quotient q ÷ e.
//
// Quo returns an error wrapping [ErrDivisionByZero] if e is zero, the same
// ring-mismatch errors as [QuadraticInteger.Mul], an error wrapping
// [ErrArithmeticOverflow] if an intermediate or a component is out of
// range, and a [NotDivisibleError] carrying the reduced rational quotient
// if the division is inexact in the resolved ring.
func (q QuadraticInteger) Quo(e QuadraticInteger) (QuadraticInteger, error) {
	if e.IsZero() {
		return QuadraticInteger{}, fmt.Errorf("dividing %v by zero: %w", q, errDivisionByZero)
	}
	r, err := resolveRing(q, e, true)
	if err != nil {
		return QuadraticInteger{}, err
	}
	xa, xb := int64(q.a), int64(q.b)
	ya, yb := int64(e.a), int64(e.b)
	var absD int64
	if r != nil {
		absD = int64(r.absD)
	}
	p1, ok1 := mulInt64(xa, ya)
	p2, ok2 := mulInt64(xb, yb)
	p2, ok3 := mulInt64(p2, absD)
	re, ok4 := addInt64(p1, p2)
	p3, ok5 := mulInt64(xb, ya)
	p4, ok6 := mulInt64(xa, yb)
	im, ok7 := subInt64(p3, p4)
	n1, ok8 := mulInt64(ya, ya)
	n2, ok9 := mulInt64(yb, yb)
	n2, ok10 := mulInt64(n2, absD)
	norm, ok11 := addInt64(n1, n2)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 && ok8 && ok9 && ok10 && ok11) {
		return QuadraticInteger{}, fmt.Errorf("dividing %v by %v: %w", q, e, errArithmeticOverflow)
	}
	if e.den() == 2 {
		norm /= 4
	}
	den, ok := mulInt64(norm, q.den()*e.den())
	if !ok {
		return QuadraticInteger{}, fmt.Errorf("dividing %v by %v: %w", q, e, errArithmeticOverflow)
	}
	return reduceQuotient(re, im, den, r)
}

// QuoInt returns the exact quotient q ÷ n.
//
// QuoInt fails the same ways [QuadraticInteger.Quo] does.
func (q QuadraticInteger) QuoInt(n int) (QuadraticInteger, error) {
	if n == 0 {
		return QuadraticInteger{}, fmt.Errorf("dividing %v by zero: %w", q, errDivisionByZero)
	}
	den, ok := mulInt64(int64(n), q.den())
	if !ok {
		return QuadraticInteger{}, fmt.Errorf("dividing %v by %v: %w", q, n, errArithmeticOverflow)
	}
	return reduceQuotient(int64(q.a), int64(q.b), den, q.ring)
}

// reduceQuotient turns the rational point (re + im√d)/den into a ring
// element. The triple is first put over a positive denominator and reduced
// by the smaller of the two coordinate gcds; the reduced quotient is a ring
// element exactly when the denominator comes out as 1, or as 2 with both
// coordinates odd in a half-integer ring. Anything else is reported as a
// NotDivisibleError carrying the reduced triple.
func reduceQuotient(re, im, den int64, r *Ring) (QuadraticInteger, error) {
	if den < 0 {
		re, im, den = -re, -im, -den
	}
	g := gcdInt64(re, den)
	if g2 := gcdInt64(im, den); g2 < g {
		g = g2
	}
	if g > 1 {
		re, im, den = re/g, im/g, den/g
	}
	switch {
	case den == 1:
		return newChecked(re, im, r, 1)
	case den == 2 && r != nil && r.halfInts && re&1 == 1 && im&1 == 1:
		return newChecked(re, im, r, 2)
	default:
		return QuadraticInteger{}, &NotDivisibleError{Re: re, Im: im, Denom: den, Ring: r}
	}
}
