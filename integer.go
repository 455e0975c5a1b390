package quadratic

import (
	"math"
	"math/bits"
)

// addInt64 calculates x + y and checks overflow.
func addInt64(x, y int64) (z int64, ok bool) {
	z = x + y
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0) {
		return 0, false
	}
	return z, true
}

// subInt64 calculates x - y and checks overflow.
func subInt64(x, y int64) (z int64, ok bool) {
	z = x - y
	if (y < 0 && z < x) || (y > 0 && z > x) {
		return 0, false
	}
	return z, true
}

// mulInt64 calculates x * y and checks overflow.
func mulInt64(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if x == math.MinInt64 || y == math.MinInt64 {
		if x == 1 || y == 1 {
			return math.MinInt64, true
		}
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// fitsInt32 reports whether x is within the range of a 32-bit component.
func fitsInt32(x int64) bool {
	return x >= math.MinInt32 && x <= math.MaxInt32
}

// absInt64 calculates |x|.
// If x is the minimum 64-bit integer, the result is undefined.
func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// floorDiv calculates ⌊x / y⌋ for positive y.
func floorDiv(x, y int64) int64 {
	q := x / y
	if x%y != 0 && x < 0 {
		q--
	}
	return q
}

// gcdInt64 calculates the greatest common divisor of x and y by the
// Euclidean algorithm. The result is non-negative; gcdInt64(0, 0) is 0.
func gcdInt64(x, y int64) int64 {
	for y != 0 {
		x, y = y, x%y
	}
	return absInt64(x)
}

// mulMod calculates x * y mod m without overflowing the intermediate product.
func mulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

// powMod calculates base^exp mod m by binary exponentiation.
func powMod(base, exp, m uint64) uint64 {
	z := uint64(1) % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			z = mulMod(z, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return z
}
