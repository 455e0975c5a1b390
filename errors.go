package quadratic

import (
	"errors"
	"fmt"
)

var (
	errInvalidConstruction = errors.New("invalid construction")
	errDivisionByZero      = errors.New("division by zero")
	errArithmeticOverflow  = errors.New("arithmetic overflow")
)

// Exported sentinels, for matching with [errors.Is].
var (
	// ErrInvalidConstruction is returned when a Ring or QuadraticInteger
	// is constructed from parameters that do not describe a valid value.
	ErrInvalidConstruction = errInvalidConstruction

	// ErrDivisionByZero is returned by the division methods when the
	// divisor is zero.
	ErrDivisionByZero = errDivisionByZero

	// ErrArithmeticOverflow is returned when a component of a result, or
	// an intermediate of its computation, exceeds the representable range.
	ErrArithmeticOverflow = errArithmeticOverflow
)

// DegreeOverflowError is returned by a binary operation whose exact result
// would be an algebraic number of degree 4, which no quadratic ring can hold.
// It carries both operands so that callers can branch on them.
type DegreeOverflowError struct {
	X, Y QuadraticInteger
}

func (e *DegreeOverflowError) Error() string {
	return fmt.Sprintf("operation on %v and %v would produce an algebraic number of degree 4", e.X, e.Y)
}

// UnsupportedDomainError is returned by a multiplication or division of two
// purely imaginary operands from different rings: the exact result is a real
// quadratic integer, a domain this package does not represent.
type UnsupportedDomainError struct {
	X, Y QuadraticInteger
}

func (e *UnsupportedDomainError) Error() string {
	return fmt.Sprintf("operation on %v and %v would produce a real quadratic integer, which this package cannot represent", e.X, e.Y)
}

// NonEuclideanDomainError is returned by the GCD methods when the operands
// belong to a ring outside the five norm-Euclidean imaginary quadratic rings
// (d = -1, -2, -3, -7, -11). The Euclidean algorithm is unreliable there, so
// no attempt is made.
type NonEuclideanDomainError struct {
	X, Y QuadraticInteger
}

func (e *NonEuclideanDomainError) Error() string {
	return fmt.Sprintf("%v and %v are in a non-Euclidean domain", e.X, e.Y)
}

// NotDivisibleError is returned by the division methods when the exact
// quotient is not an element of the ring. It carries the quotient as a
// reduced rational point (Re + Im√d)/Denom, which is enough for a caller
// to round to a nearby ring element.
type NotDivisibleError struct {
	Re    int64 // reduced rational real coordinate numerator
	Im    int64 // reduced radical coordinate numerator
	Denom int64 // reduced positive denominator
	Ring  *Ring // ring of the attempted division
}

func (e *NotDivisibleError) Error() string {
	return fmt.Sprintf("inexact division: exact quotient is (%v + %v√(%v))/%v", e.Re, e.Im, e.Ring.D(), e.Denom)
}

// RealValue returns the real coordinate of the exact quotient as a float64.
func (e *NotDivisibleError) RealValue() float64 {
	return float64(e.Re) / float64(e.Denom)
}

// ImagValue returns the imaginary part of the exact quotient, divided by i,
// as a float64.
func (e *NotDivisibleError) ImagValue() float64 {
	return float64(e.Im) * e.Ring.SqrtAbsD() / float64(e.Denom)
}

// RoundTowardsZero returns the ring element obtained by truncating each of
// the two rational coordinates of the exact quotient towards zero.
func (e *NotDivisibleError) RoundTowardsZero() QuadraticInteger {
	q, err := New(int(e.Re/e.Denom), int(e.Im/e.Denom), e.Ring, 1)
	if err != nil {
		panic(fmt.Sprintf("RoundTowardsZero() failed: %v", err))
	}
	return q
}
