package quadratic

import "fmt"

// MustNew is like [New] but panics if the parameters are invalid.
func MustNew(a, b int, r *Ring, denom int) QuadraticInteger {
	q, err := New(a, b, r, denom)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v, %v, %v) failed: %v", a, b, r, denom, err))
	}
	return q
}

// MustNewWhole is like [NewWhole] but panics if the parameters are invalid.
func MustNewWhole(a, b int, r *Ring) QuadraticInteger {
	q, err := NewWhole(a, b, r)
	if err != nil {
		panic(fmt.Sprintf("MustNewWhole(%v, %v, %v) failed: %v", a, b, r, err))
	}
	return q
}

// MustAdd is like [QuadraticInteger.Add] but panics if computing error.
func (q QuadraticInteger) MustAdd(e QuadraticInteger) QuadraticInteger {
	f, err := q.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", q, err))
	}
	return f
}

// MustAddInt is like [QuadraticInteger.AddInt] but panics if computing error.
func (q QuadraticInteger) MustAddInt(n int) QuadraticInteger {
	f, err := q.AddInt(n)
	if err != nil {
		panic(fmt.Sprintf("MustAddInt(%v) failed: %v", q, err))
	}
	return f
}

// MustSub is like [QuadraticInteger.Sub] but panics if computing error.
func (q QuadraticInteger) MustSub(e QuadraticInteger) QuadraticInteger {
	f, err := q.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", q, err))
	}
	return f
}

// MustSubInt is like [QuadraticInteger.SubInt] but panics if computing error.
func (q QuadraticInteger) MustSubInt(n int) QuadraticInteger {
	f, err := q.SubInt(n)
	if err != nil {
		panic(fmt.Sprintf("MustSubInt(%v) failed: %v", q, err))
	}
	return f
}

// MustMul is like [QuadraticInteger.Mul] but panics if computing error.
func (q QuadraticInteger) MustMul(e QuadraticInteger) QuadraticInteger {
	f, err := q.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", q, err))
	}
	return f
}

// MustMulInt is like [QuadraticInteger.MulInt] but panics if computing error.
func (q QuadraticInteger) MustMulInt(n int) QuadraticInteger {
	f, err := q.MulInt(n)
	if err != nil {
		panic(fmt.Sprintf("MustMulInt(%v) failed: %v", q, err))
	}
	return f
}

// MustQuo is like [QuadraticInteger.Quo] but panics if computing error.
func (q QuadraticInteger) MustQuo(e QuadraticInteger) QuadraticInteger {
	f, err := q.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", q, err))
	}
	return f
}

// MustQuoInt is like [QuadraticInteger.QuoInt] but panics if computing error.
func (q QuadraticInteger) MustQuoInt(n int) QuadraticInteger {
	f, err := q.QuoInt(n)
	if err != nil {
		panic(fmt.Sprintf("MustQuoInt(%v) failed: %v", q, err))
	}
	return f
}
