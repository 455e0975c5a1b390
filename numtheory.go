package quadratic

import (
	"errors"
	"fmt"
)

// PrimeFactors returns the prime factorization of n in ascending order,
// found by trial division. Zero factors as {0}; a negative n is factored
// as -1 times the factorization of |n|; 1 and -1 have no prime factors,
// so PrimeFactors(1) is empty and PrimeFactors(-1) is {-1}.
func PrimeFactors(n int) []int {
	if n == 0 {
		return []int{0}
	}
	var factors []int
	if n < 0 {
		factors = append(factors, -1)
		n = -n
	}
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for i := 3; i <= n/i; i += 2 {
		for n%i == 0 {
			factors = append(factors, i)
			n /= i
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// IsPrime reports whether n is a rational prime. Negative numbers are
// treated the same as their absolute value, so both -2 and 47 are prime.
// The units -1 and 1 and the number 0 are not prime.
func IsPrime(n int) bool {
	switch n {
	case -1, 0, 1:
		return false
	case -2, 2:
		return true
	}
	if n < 0 {
		n = -n
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsSquareFree reports whether n has no repeated prime factor.
// The units -1 and 1 are squarefree; 0 is not.
func IsSquareFree(n int) bool {
	switch n {
	case -1, 1:
		return true
	case 0:
		return false
	}
	factors := PrimeFactors(n)
	for i := 0; i < len(factors)-1; i++ {
		if factors[i] == factors[i+1] {
			return false
		}
	}
	return true
}

// MoebiusMu computes the Möbius function μ(n): 0 if n is not squarefree,
// otherwise 1 or -1 according to whether n has an even or odd number of
// prime factors. Since -1 is a unit, not a prime, μ(-n) = μ(n).
func MoebiusMu(n int) int {
	if n == 1 || n == -1 {
		return 1
	}
	if !IsSquareFree(n) {
		return 0
	}
	factors := PrimeFactors(n)
	if factors[0] == -1 {
		factors = factors[1:]
	}
	if len(factors)%2 == 0 {
		return 1
	}
	return -1
}

// LegendreSymbol computes the Legendre symbol (a|p), which tells whether a
// is a quadratic residue modulo the odd prime p: 1 if it is, -1 if it is
// not, 0 if p divides a. A negative p is quietly replaced by its absolute
// value. For example, (10|7) = -1 since x² ≡ 10 (mod 7) has no solution,
// and (10|3) = 1 since x = 4 solves x² ≡ 10 (mod 3).
//
// LegendreSymbol returns an error wrapping [ErrInvalidConstruction] if p
// is not an odd prime; consider [JacobiSymbol] or [KroneckerSymbol] for
// other moduli.
func LegendreSymbol(a, p int) (int, error) {
	if !IsPrime(p) || p == 2 || p == -2 {
		return 0, fmt.Errorf("%v is not an odd prime: %w", p, errInvalidConstruction)
	}
	m := uint64(absInt64(int64(p)))
	x := int64(a) % int64(m)
	if x < 0 {
		x += int64(m)
	}
	switch powMod(uint64(x), (m-1)/2, m) {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	default:
		return -1, nil
	}
}

// JacobiSymbol computes the Jacobi symbol (n|m) for odd positive m, the
// product of the Legendre symbols of n over the prime factors of m.
//
// JacobiSymbol returns an error wrapping [ErrInvalidConstruction] if m is
// even or not positive; consider [KroneckerSymbol] for those moduli.
func JacobiSymbol(n, m int) (int, error) {
	if m%2 == 0 {
		return 0, fmt.Errorf("%v is not odd: %w", m, errInvalidConstruction)
	}
	if m < 0 {
		return 0, fmt.Errorf("%v is not positive: %w", m, errInvalidConstruction)
	}
	if m == 1 {
		return 1, nil
	}
	if EuclideanGCD(n, m) > 1 {
		return 0, nil
	}
	s := 1
	for _, p := range PrimeFactors(m) {
		l, err := LegendreSymbol(n, p)
		if err != nil {
			return 0, err
		}
		s *= l
	}
	return s, nil
}

// KroneckerSymbol computes the Kronecker symbol (n|m), the extension of
// the Jacobi symbol to all integer moduli. It is multiplicative over the
// signed factorization of m, with the sign of n deciding the -1 factor
// and a residue table on n mod 8 deciding the 2 factors.
func KroneckerSymbol(n, m int) int {
	if EuclideanGCD(n, m) > 1 {
		return 0
	}
	if m == 1 {
		return 1
	}
	if m == 0 {
		if n == 1 || n == -1 {
			return 1
		}
		return 0
	}
	s := 1
	for _, p := range PrimeFactors(m) {
		switch p {
		case -1:
			if n < 0 {
				s = -s
			}
		case 2:
			switch ((n % 8) + 8) % 8 {
			case 1, 7:
			case 3, 5:
				s = -s
			default:
				return 0
			}
		default:
			l, _ := LegendreSymbol(n, p)
			s *= l
		}
	}
	return s
}

// EuclideanGCD computes the greatest common divisor of two rational
// integers by the Euclidean algorithm. The result is non-negative; if one
// argument is zero the result is the absolute value of the other, and
// EuclideanGCD(0, 0) is 0.
func EuclideanGCD(a, b int) int {
	return int(gcdInt64(int64(a), int64(b)))
}

// classNumberOne reports whether d is one of the nine imaginary quadratic
// radicands with class number 1, the rings where irreducible elements are
// always prime.
func classNumberOne(d int32) bool {
	switch d {
	case -1, -2, -3, -7, -11, -19, -43, -67, -163:
		return true
	}
	return false
}

// normEuclidean reports whether d is one of the five imaginary quadratic
// radicands whose ring is norm-Euclidean.
func normEuclidean(d int32) bool {
	switch d {
	case -1, -2, -3, -7, -11:
		return true
	}
	return false
}

// IsPrime reports whether q is prime in its ring. A value whose norm is a
// rational prime is always prime. A purely imaginary Gaussian integer bi
// is prime exactly when |b| ≡ 3 (mod 4). A purely real value with |a| a
// rational prime is prime exactly when |a| is inert in the ring, decided
// by a residue rule in the rings with radicand -1, -2 or -3 and by the
// Legendre symbol elsewhere. Everything else is composite.
//
// IsPrime returns an error wrapping [ErrArithmeticOverflow] if the norm
// computation overflowed.
func (q QuadraticInteger) IsPrime() (bool, error) {
	n := q.Norm()
	if n < 0 {
		return false, fmt.Errorf("norm of %v: %w", q, errArithmeticOverflow)
	}
	if IsPrime(int(n)) {
		return true, nil
	}
	if q.ring == nil {
		return false, nil
	}
	if q.ring.d == -1 && q.a == 0 {
		return absInt64(int64(q.b))%4 == 3, nil
	}
	if q.b != 0 {
		return false, nil
	}
	a := int(absInt64(int64(q.a)))
	if !IsPrime(a) {
		return false, nil
	}
	switch q.ring.d {
	case -1:
		return a%4 == 3, nil
	case -2:
		return a%8 == 5 || a%8 == 7, nil
	case -3:
		return a%3 == 2, nil
	default:
		l, err := LegendreSymbol(a, q.ring.D())
		if err != nil {
			return false, err
		}
		return l == -1, nil
	}
}

// IsIrreducible reports whether q is irreducible in its ring, which in a
// ring without unique factorization is a weaker property than primality:
// 1 + √-5 is famously irreducible but not prime. Units and zero count as
// irreducible. In the nine class-number-1 rings irreducibility coincides
// with primality; in every other ring the determination is made by
// searching for a divisor among all candidates of norm smaller than the
// norm of q.
//
// IsIrreducible returns an error wrapping [ErrArithmeticOverflow] if the
// norm computation overflowed.
func (q QuadraticInteger) IsIrreducible() (bool, error) {
	n := q.Norm()
	if n < 0 {
		return false, fmt.Errorf("norm of %v: %w", q, errArithmeticOverflow)
	}
	if IsPrime(int(n)) {
		return true, nil
	}
	if n < 2 {
		return true, nil
	}
	if classNumberOne(q.ring.d) {
		return q.IsPrime()
	}
	absD := int64(q.ring.absD)
	for y := int64(0); y*y*absD < n; y++ {
		xMax := int64(1)
		for xMax*xMax+y*y*absD < n {
			xMax++
		}
		xMin := -xMax
		if y == 0 {
			// Divisibility by x and by -x are the same question, and
			// 0 and 1 are not worth asking about.
			xMin = 2
		}
		for x := xMin; x <= xMax; x++ {
			norm := x*x + y*y*absD
			if norm < 2 || norm >= n {
				continue
			}
			reducible, err := q.hasDivisor(int(x), int(y), 1)
			if err != nil {
				return false, err
			}
			if reducible {
				return false, nil
			}
		}
	}
	if q.ring.halfInts {
		for y := int64(1); y*y*absD < 4*n; y += 2 {
			for x := int64(1); x*x+y*y*absD < 4*n; x += 2 {
				for _, sx := range [2]int64{x, -x} {
					norm := (sx*sx + y*y*absD) / 4
					if norm < 2 || norm >= n {
						continue
					}
					reducible, err := q.hasDivisor(int(sx), int(y), 2)
					if err != nil {
						return false, err
					}
					if reducible {
						return false, nil
					}
				}
			}
		}
	}
	return true, nil
}

// hasDivisor reports whether the candidate (x + y√d)/denom divides q
// exactly. An inexact division is a plain negative answer, not an error.
func (q QuadraticInteger) hasDivisor(x, y int, denom int) (bool, error) {
	t, err := New(x, y, q.ring, denom)
	if err != nil {
		return false, err
	}
	_, err = q.Quo(t)
	if err != nil {
		var nde *NotDivisibleError
		if errors.As(err, &nde) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// roundNearest returns the ring element closest to the exact quotient the
// error describes, considering the half-integer grid when the ring has
// one. In the five norm-Euclidean rings the nearest element is always at
// squared distance below 1, which is what makes the Euclidean algorithm
// terminate; truncation does not have that property.
func (e *NotDivisibleError) roundNearest() QuadraticInteger {
	absD := int64(e.Ring.absD)
	type candidate struct{ x, y, denom int64 }
	var cands []candidate
	x0 := floorDiv(e.Re, e.Denom)
	y0 := floorDiv(e.Im, e.Denom)
	for _, x := range [2]int64{x0, x0 + 1} {
		for _, y := range [2]int64{y0, y0 + 1} {
			cands = append(cands, candidate{x, y, 1})
		}
	}
	if e.Ring.halfInts {
		u0 := floorDiv(2*e.Re, e.Denom)
		if u0%2 == 0 {
			u0--
		}
		v0 := floorDiv(2*e.Im, e.Denom)
		if v0%2 == 0 {
			v0--
		}
		for _, u := range [2]int64{u0, u0 + 2} {
			for _, v := range [2]int64{v0, v0 + 2} {
				cands = append(cands, candidate{u, v, 2})
			}
		}
	}
	var best QuadraticInteger
	bestDist := int64(-1)
	for _, c := range cands {
		// squared distance to the quotient, scaled by (2·Denom)²
		var dx, dy int64
		if c.denom == 1 {
			dx = 2 * (c.x*e.Denom - e.Re)
			dy = 2 * (c.y*e.Denom - e.Im)
		} else {
			dx = c.x*e.Denom - 2*e.Re
			dy = c.y*e.Denom - 2*e.Im
		}
		dist := dx*dx + absD*dy*dy
		if bestDist >= 0 && dist >= bestDist {
			continue
		}
		q, err := New(int(c.x), int(c.y), e.Ring, int(c.denom))
		if err != nil {
			continue
		}
		best = q
		bestDist = dist
	}
	return best
}

// GCD computes the greatest common divisor of q and e by the Euclidean
// algorithm, rounding inexact quotients to the nearest ring element to
// make progress. The result is normalized to a non-negative real
// coefficient. GCD of two zero values is zero.
//
// GCD returns a [DegreeOverflowError] if the operands belong to different
// rings and both have nonzero radical coefficients, and a
// [NonEuclideanDomainError] if the common ring is not one of the five
// norm-Euclidean imaginary quadratic rings (d = -1, -2, -3, -7, -11),
// where the algorithm is known to be unreliable and is not attempted.
func (q QuadraticInteger) GCD(e QuadraticInteger) (QuadraticInteger, error) {
	if q.b != 0 && e.b != 0 && q.ring.d != e.ring.d {
		return QuadraticInteger{}, &DegreeOverflowError{X: q, Y: e}
	}
	r, err := resolveRing(q, e, false)
	if err != nil {
		return QuadraticInteger{}, err
	}
	if r == nil || !normEuclidean(r.d) {
		return QuadraticInteger{}, &NonEuclideanDomainError{X: q, Y: e}
	}
	a, b := q, e
	if a.Norm() < b.Norm() {
		a, b = b, a
	}
	for !b.IsZero() {
		quotient, err := a.Quo(b)
		if err != nil {
			var nde *NotDivisibleError
			if !errors.As(err, &nde) {
				return QuadraticInteger{}, err
			}
			quotient = nde.roundNearest()
			if quotient.IsZero() {
				// The loop keeps the norm of a at or above the norm of b,
				// so a nearest-element quotient is never zero unless every
				// candidate was out of component range.
				return QuadraticInteger{}, fmt.Errorf("gcd of %v and %v: %w", q, e, errArithmeticOverflow)
			}
		}
		multiple, err := quotient.Mul(b)
		if err != nil {
			return QuadraticInteger{}, err
		}
		remainder, err := a.Sub(multiple)
		if err != nil {
			return QuadraticInteger{}, err
		}
		a, b = b, remainder
	}
	if a.a < 0 {
		return a.MulInt(-1)
	}
	return a, nil
}

// GCDInt computes the greatest common divisor of q and the rational
// integer n, wrapped as a purely real element of the receiver's ring.
// GCD is commutative, so this covers integer operands on either side.
func (q QuadraticInteger) GCDInt(n int) (QuadraticInteger, error) {
	w, err := NewWhole(n, 0, q.ring)
	if err != nil {
		return QuadraticInteger{}, err
	}
	return q.GCD(w)
}
