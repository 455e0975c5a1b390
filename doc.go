/*
Package quadratic implements exact arithmetic over imaginary quadratic
integer rings, the rings of algebraic integers of the fields Q(√d) for
negative squarefree d. All computations are carried out on integers; no
floating point is involved except in the few explicitly approximate
accessors.

# Representation

A [Ring] is an immutable descriptor of one ring, identified by its
radicand d. A [QuadraticInteger] is a struct with four fields:

  - a: the real coefficient, multiplied by the denominator.
  - b: the radical coefficient, multiplied by the denominator.
  - ring: the [Ring] the value belongs to.
  - denom: the denominator, 1 or 2.

The numerical value is (a + b√d)/denom. A denominator of 2 occurs only in
rings where d ≡ 1 (mod 4), which contain "half-integers" such as
5/2 + √(-7)/2; the constructor enforces that a and b are then both odd,
and reduces a denominator of 2 over two even coefficients to 1, so every
number has exactly one representation.

# Construction

[NewRing] validates the radicand; [New] and [NewWhole] validate and
normalize coefficients. All arithmetic goes back through the normalizing
constructor, so values obtained from any operation satisfy the same
invariants as freshly constructed ones.

# Operations

Binary operations resolve the ring first: a purely real operand is the
same number in every ring, so it adopts the other operand's ring, while
two operands with nonzero radical coefficients from different rings have
no representable result and the operation fails with
[DegreeOverflowError] or, for products of purely imaginary values,
[UnsupportedDomainError].

Every intermediate is computed in 64 bits and every result component is
range-checked before construction, so overflow surfaces as an error
wrapping [ErrArithmeticOverflow] rather than as a silently wrapped
value.

Division is exact or it fails: an inexact quotient is reported as a
[NotDivisibleError] carrying the reduced rational coordinates, from
which callers such as the Euclidean algorithm can round to a nearby ring
element.

# Number theory

The package includes the number-theoretic functions the arithmetic rests
on: prime factorization, primality and squarefreeness tests, the Möbius
function and the Legendre, Jacobi and Kronecker symbols on rational
integers, and primality, irreducibility and greatest common divisors on
ring elements. In rings without unique factorization irreducibility is
decided by a bounded divisor search, and GCD computation is refused
outside the five norm-Euclidean rings (d = -1, -2, -3, -7, -11) rather
than attempted unreliably.

# Rendering

Rings and values render to plain text, ASCII-only text, TeX and HTML,
including the theta and omega notation customary for half-integer rings,
and [ParseQuaterImaginary] reads the base 2i positional notation for
Gaussian integers.

# Concurrency

Rings and values are immutable after construction, every function is a
pure computation, and the package holds no mutable state, so all of it is
safe for concurrent use without synchronization.
*/
package quadratic
