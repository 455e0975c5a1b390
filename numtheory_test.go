package quadratic

import (
	"errors"
	"slices"
	"testing"
)

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{0}},
		{1, nil},
		{-1, []int{-1}},
		{2, []int{2}},
		{12, []int{2, 2, 3}},
		{-50, []int{-1, 2, 5, 5}},
		{97, []int{97}},
		{1024, []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
		{-3, []int{-1, 3}},
		{9699690, []int{2, 3, 5, 7, 11, 13, 17, 19}},
	}
	for _, tt := range tests {
		got := PrimeFactors(tt.n)
		if !slices.Equal(got, tt.want) {
			t.Errorf("PrimeFactors(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-2, true},
		{2, true},
		{47, true},
		{-47, true},
		{-25, false},
		{0, false},
		{1, false},
		{-1, false},
		{91, false},
		{7919, true},
		{7917, false},
	}
	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestIsPrime_AgainstFactorization(t *testing.T) {
	for n := -9999; n < 10000; n++ {
		factors := PrimeFactors(n)
		if factors[0] == -1 {
			factors = factors[1:]
		}
		want := len(factors) == 1 && factors[0] > 1
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%v) = %v, want %v", n, got, want)
		}
	}
}

func TestIsSquareFree(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, true},
		{-1, true},
		{0, false},
		{-3, true},
		{7, true},
		{-4, false},
		{25, false},
		{30, true},
		{-12, false},
		{105, true},
	}
	for _, tt := range tests {
		if got := IsSquareFree(tt.n); got != tt.want {
			t.Errorf("IsSquareFree(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestMoebiusMu(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{-1, 1},
		{0, 0},
		{2, -1},
		{31, -1},
		{32, 0},
		{33, 1},
		{-31, -1},
		{30, -1},
		{210, 1},
	}
	for _, tt := range tests {
		if got := MoebiusMu(tt.n); got != tt.want {
			t.Errorf("MoebiusMu(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestLegendreSymbol(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, p int
			want int
		}{
			{10, 7, -1},
			{10, 3, 1},
			{10, 5, 0},
			{10, -7, -1},
			{-1, 5, 1},
			{-1, 7, -1},
			{2, 7, 1},
			{2, 5, -1},
			{0, 3, 0},
			{-7, 11, 1},
		}
		for _, tt := range tests {
			got, err := LegendreSymbol(tt.a, tt.p)
			if err != nil {
				t.Errorf("LegendreSymbol(%v, %v) failed: %v", tt.a, tt.p, err)
				continue
			}
			if got != tt.want {
				t.Errorf("LegendreSymbol(%v, %v) = %v, want %v", tt.a, tt.p, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, p := range []int{2, -2, 0, 1, 9, 15, -21} {
			if _, err := LegendreSymbol(10, p); !errors.Is(err, ErrInvalidConstruction) {
				t.Errorf("LegendreSymbol(10, %v) error = %v, want ErrInvalidConstruction", p, err)
			}
		}
	})
}

func TestJacobiSymbol(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			n, m int
			want int
		}{
			{8, 15, 1},
			{10, 7, -1},
			{2, 15, 1},
			{7, 15, -1},
			{10, 15, 0},
			{4, 1, 1},
			{-1, 9, 1},
		}
		for _, tt := range tests {
			got, err := JacobiSymbol(tt.n, tt.m)
			if err != nil {
				t.Errorf("JacobiSymbol(%v, %v) failed: %v", tt.n, tt.m, err)
				continue
			}
			if got != tt.want {
				t.Errorf("JacobiSymbol(%v, %v) = %v, want %v", tt.n, tt.m, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, m := range []int{0, 2, 10, -7, -15} {
			if _, err := JacobiSymbol(8, m); !errors.Is(err, ErrInvalidConstruction) {
				t.Errorf("JacobiSymbol(8, %v) error = %v, want ErrInvalidConstruction", m, err)
			}
		}
	})
}

func TestKroneckerSymbol(t *testing.T) {
	tests := []struct {
		n, m int
		want int
	}{
		{3, 2, -1},
		{7, 2, 1},
		{-7, 2, 1},
		{-3, 2, -1},
		{6, 2, 0},
		{5, 1, 1},
		{1, 0, 1},
		{-1, 0, 1},
		{2, 0, 0},
		{-1, -1, -1},
		{1, -1, 1},
		{10, 7, -1},
		{8, 15, 1},
		{3, 8, -1},
		{7, 8, 1},
	}
	for _, tt := range tests {
		if got := KroneckerSymbol(tt.n, tt.m); got != tt.want {
			t.Errorf("KroneckerSymbol(%v, %v) = %v, want %v", tt.n, tt.m, got, tt.want)
		}
	}
}

func TestEuclideanGCD(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{17, 13, 1},
		{1024, 768, 256},
	}
	for _, tt := range tests {
		if got := EuclideanGCD(tt.a, tt.b); got != tt.want {
			t.Errorf("EuclideanGCD(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestQuadraticInteger_IsPrime(t *testing.T) {
	tests := []struct {
		a, b, d, denom int
		want           bool
	}{
		// norm is a rational prime
		{1, 1, -1, 1, true},
		{5, 1, -7, 2, false}, // norm 8
		{1, 1, -7, 2, true},  // norm 2
		{3, 1, -7, 2, false}, // norm 4
		// purely imaginary Gaussian integers
		{0, 3, -1, 1, true},
		{0, 5, -1, 1, false},
		{0, 7, -1, 1, true},
		// inert rational primes
		{2, 0, -1, 1, false},
		{3, 0, -1, 1, true},
		{-3, 0, -1, 1, true},
		{5, 0, -1, 1, false},
		{5, 0, -2, 1, true},
		{7, 0, -2, 1, true},
		{3, 0, -2, 1, false},
		{2, 0, -3, 1, true},
		{5, 0, -3, 1, true},
		{7, 0, -3, 1, false},
		{5, 0, -7, 1, true},
		{11, 0, -7, 1, false},
		// composite rational integers
		{4, 0, -1, 1, false},
		{9, 0, -2, 1, false},
		// complex value with composite norm
		{1, 1, -5, 1, false},
		{2, 1, -5, 1, false},
	}
	for _, tt := range tests {
		q := MustNew(tt.a, tt.b, MustNewRing(tt.d), tt.denom)
		got, err := q.IsPrime()
		if err != nil {
			t.Errorf("%q.IsPrime() failed: %v", q, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.IsPrime() = %v, want %v", q, got, tt.want)
		}
	}
}

func TestQuadraticInteger_IsIrreducible(t *testing.T) {
	tests := []struct {
		a, b, d, denom int
		want           bool
	}{
		// units and zero
		{0, 0, -5, 1, true},
		{1, 0, -5, 1, true},
		{-1, 0, -5, 1, true},
		// prime norm
		{0, 1, -5, 1, true},
		{1, 1, -1, 1, true},
		// irreducible but not prime in a non-UFD
		{1, 1, -5, 1, true},
		{2, 1, -5, 1, true},
		{2, 0, -5, 1, true},
		{3, 0, -5, 1, true},
		{1, 1, -15, 2, true},
		{2, 0, -15, 1, true},
		// reducible
		{6, 0, -5, 1, false},
		{4, 0, -5, 1, false},
		{4, 0, -15, 1, false},
		{9, 0, -5, 1, false},
		// class number 1 delegates to primality
		{2, 0, -1, 1, false},
		{3, 0, -1, 1, true},
		{5, 1, -7, 2, false},
		{1, 1, -7, 2, true},
	}
	for _, tt := range tests {
		q := MustNew(tt.a, tt.b, MustNewRing(tt.d), tt.denom)
		got, err := q.IsIrreducible()
		if err != nil {
			t.Errorf("%q.IsIrreducible() failed: %v", q, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.IsIrreducible() = %v, want %v", q, got, tt.want)
		}
	}
}

func TestQuadraticInteger_IsIrreducible_NotPrime(t *testing.T) {
	// 1 + √-5 is the textbook example of an irreducible element that is
	// not prime: 6 = 2 × 3 = (1 + √-5)(1 - √-5).
	q := MustNewWhole(1, 1, MustNewRing(-5))
	irreducible, err := q.IsIrreducible()
	if err != nil {
		t.Fatal(err)
	}
	prime, err := q.IsPrime()
	if err != nil {
		t.Fatal(err)
	}
	if !irreducible || prime {
		t.Errorf("%q: irreducible = %v, prime = %v, want true, false", q, irreducible, prime)
	}
}

func TestQuadraticInteger_GCD(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r1 := MustNewRing(-1)
		r2 := MustNewRing(-2)
		tests := []struct {
			q, e, want QuadraticInteger
		}{
			{MustNewWhole(2, 0, r1), MustNewWhole(1, 1, r1), MustNewWhole(1, 1, r1)},
			{MustNewWhole(1, 1, r1), MustNewWhole(2, 0, r1), MustNewWhole(1, 1, r1)},
			{MustNewWhole(1, 1, r1), MustNewWhole(1, -1, r1), MustNewWhole(1, -1, r1)},
			{MustNewWhole(3, 0, r1), MustNewWhole(5, 0, r1), MustNewWhole(1, 0, r1)},
			{MustNewWhole(0, 0, r1), MustNewWhole(0, 0, r1), MustNewWhole(0, 0, r1)},
			{MustNewWhole(0, 0, r1), MustNewWhole(1, 1, r1), MustNewWhole(1, 1, r1)},
			{MustNewWhole(2, 0, r2), MustNewWhole(0, 1, r2), MustNewWhole(0, 1, r2)},
		}
		for _, tt := range tests {
			got, err := tt.q.GCD(tt.e)
			if err != nil {
				t.Errorf("%q.GCD(%q) failed: %v", tt.q, tt.e, err)
				continue
			}
			if !got.Equal(tt.want) {
				t.Errorf("%q.GCD(%q) = %q, want %q", tt.q, tt.e, got, tt.want)
			}
		}
	})

	t.Run("divides both operands", func(t *testing.T) {
		for _, d := range []int{-1, -2, -3, -7, -11} {
			r := MustNewRing(d)
			for a1 := -4; a1 <= 4; a1++ {
				for b1 := -4; b1 <= 4; b1++ {
					for a2 := -4; a2 <= 4; a2++ {
						q := MustNewWhole(a1, b1, r)
						e := MustNewWhole(a2, 1, r)
						g, err := q.GCD(e)
						if err != nil {
							t.Errorf("%q.GCD(%q) failed: %v", q, e, err)
							continue
						}
						if g.IsZero() {
							t.Errorf("%q.GCD(%q) = 0 with nonzero operand", q, e)
							continue
						}
						if _, err := q.Quo(g); err != nil {
							t.Errorf("%q is not divisible by gcd %q: %v", q, g, err)
						}
						if _, err := e.Quo(g); err != nil {
							t.Errorf("%q is not divisible by gcd %q: %v", e, g, err)
						}
					}
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r1 := MustNewRing(-1)
		r2 := MustNewRing(-2)
		r5 := MustNewRing(-5)

		q := MustNewWhole(1, 1, r1)
		e := MustNewWhole(1, 1, r2)
		_, err := q.GCD(e)
		var doe *DegreeOverflowError
		if !errors.As(err, &doe) {
			t.Errorf("%q.GCD(%q) error = %v, want DegreeOverflowError", q, e, err)
		}

		q = MustNewWhole(1, 1, r5)
		e = MustNewWhole(2, 0, r5)
		_, err = q.GCD(e)
		var nede *NonEuclideanDomainError
		if !errors.As(err, &nede) {
			t.Errorf("%q.GCD(%q) error = %v, want NonEuclideanDomainError", q, e, err)
		}
	})
}

func TestQuadraticInteger_GCDInt(t *testing.T) {
	r1 := MustNewRing(-1)
	q := MustNewWhole(1, 1, r1)
	got, err := q.GCDInt(2)
	if err != nil {
		t.Fatalf("%q.GCDInt(2) failed: %v", q, err)
	}
	if want := MustNewWhole(1, 1, r1); !got.Equal(want) {
		t.Errorf("%q.GCDInt(2) = %q, want %q", q, got, want)
	}
}

func FuzzQuadraticInteger_GCD(f *testing.F) {
	f.Add(3, 2, 1, -1, 0)
	f.Add(2, 0, 1, 1, 0)
	f.Add(5, 0, 0, 1, 2)
	f.Fuzz(func(t *testing.T, qa, qb, ea, eb, ring int) {
		if qa < -50 || qa > 50 || qb < -50 || qb > 50 ||
			ea < -50 || ea > 50 || eb < -50 || eb > 50 {
			t.Skip()
			return
		}
		radicands := []int{-1, -2, -3, -7, -11}
		r := MustNewRing(radicands[((ring%5)+5)%5])
		q, err := NewWhole(qa, qb, r)
		if err != nil {
			t.Skip()
			return
		}
		e, err := NewWhole(ea, eb, r)
		if err != nil {
			t.Skip()
			return
		}
		g, err := q.GCD(e)
		if err != nil {
			t.Errorf("%q.GCD(%q) failed: %v", q, e, err)
			return
		}
		if g.IsZero() {
			if !q.IsZero() || !e.IsZero() {
				t.Errorf("%q.GCD(%q) = 0 with a nonzero operand", q, e)
			}
			return
		}
		if !q.IsZero() {
			if _, err := q.Quo(g); err != nil {
				t.Errorf("%q is not divisible by gcd %q: %v", q, g, err)
			}
		}
		if !e.IsZero() {
			if _, err := e.Quo(g); err != nil {
				t.Errorf("%q is not divisible by gcd %q: %v", e, g, err)
			}
		}
	})
}
