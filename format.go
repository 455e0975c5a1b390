package quadratic

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns a text representation of the ring, such as "Z[i]",
// "Z[√-2]", "Z[ω]" or "O_(Q(√-7))". Because of the "√" character this
// might not be suitable for console output; see [Ring.ASCIIString].
func (r *Ring) String() string {
	switch {
	case r.d == -1:
		return "Z[i]"
	case r.d == -3:
		return "Z[ω]"
	case r.halfInts:
		return fmt.Sprintf("O_(Q(√%d))", r.d)
	default:
		return fmt.Sprintf("Z[√%d]", r.d)
	}
}

// ASCIIString returns a text representation of the ring using only ASCII
// characters, such as "Z[sqrt(-2)]" or "O_(Q(sqrt(-7)))".
func (r *Ring) ASCIIString() string {
	switch {
	case r.d == -1:
		return "Z[i]"
	case r.d == -3:
		return "Z[omega]"
	case r.halfInts:
		return fmt.Sprintf("O_(Q(sqrt(%d)))", r.d)
	default:
		return fmt.Sprintf("Z[sqrt(%d)]", r.d)
	}
}

// TeXString returns a representation of the ring suitable for use in a
// TeX document, such as "\mathbb Z[i]" or "\mathcal O_{\mathbb
// Q(\sqrt{-7})}". blackboardBold selects between blackboard bold and
// plain bold letters for Z and Q.
func (r *Ring) TeXString(blackboardBold bool) string {
	zLabel, qLabel := "\\textbf Z", "\\textbf Q"
	if blackboardBold {
		zLabel, qLabel = "\\mathbb Z", "\\mathbb Q"
	}
	switch {
	case r.d == -1:
		return zLabel + "[i]"
	case r.d == -3:
		return zLabel + "[\\omega]"
	case r.halfInts:
		return fmt.Sprintf("\\mathcal O_{%s(\\sqrt{%d})}", qLabel, r.d)
	default:
		return fmt.Sprintf("%s[\\sqrt{%d}]", zLabel, r.d)
	}
}

// HTMLString returns a representation of the ring suitable for use in an
// HTML document, using character entities for the special symbols.
// blackboardBold selects between the double-struck entities and bold
// letters for Z and Q.
func (r *Ring) HTMLString(blackboardBold bool) string {
	zLabel, qLabel := "<b>Z</b>", "<b>Q</b>"
	if blackboardBold {
		zLabel, qLabel = "&#x2124;", "&#x211A;"
	}
	switch {
	case r.d == -1:
		return zLabel + "[<i>i</i>]"
	case r.d == -3:
		return zLabel + "[&omega;]"
	case r.halfInts:
		return fmt.Sprintf("<i>O</i><sub>%s(&radic;(&minus;%d))</sub>", qLabel, r.absD)
	default:
		return fmt.Sprintf("%s[&radic;(&minus;%d)]", zLabel, r.absD)
	}
}

// FilenameString returns a short label for the ring that is safe to use
// in a filename, such as "ZI" for the Gaussian integers, "ZW" for the
// Eisenstein integers, "ZI2" for Z[√-2] or "OQI7" for O_(Q(√-7)).
func (r *Ring) FilenameString() string {
	switch {
	case r.d == -1:
		return "ZI"
	case r.d == -3:
		return "ZW"
	case r.halfInts:
		return fmt.Sprintf("OQI%d", r.absD)
	default:
		return fmt.Sprintf("ZI%d", r.absD)
	}
}

// String returns a text representation of the quadratic integer with the
// real part first and the imaginary part second, such as "5/2 + √(-7)/2"
// or "1 + i". Because of the "√" character this might not be suitable for
// console output; see [QuadraticInteger.ASCIIString].
func (q QuadraticInteger) String() string {
	if q.ring == nil {
		return strconv.Itoa(int(q.a))
	}
	d := int(q.ring.d)
	var s string
	switch {
	case q.denom == 2:
		s = fmt.Sprintf("%d/2 ", q.a)
		switch {
		case q.b < -1:
			s += fmt.Sprintf("- %d√(%d)/2", -q.b, d)
		case q.b == -1:
			s += fmt.Sprintf("- √(%d)/2", d)
		case q.b == 1:
			s += fmt.Sprintf("+ √(%d)/2", d)
		case q.b > 1:
			s += fmt.Sprintf("+ %d√(%d)/2", q.b, d)
		}
	case q.a == 0:
		switch {
		case q.b == 0:
			s = "0"
		case q.b == -1:
			s = fmt.Sprintf("-√(%d)", d)
		case q.b == 1:
			s = fmt.Sprintf("√(%d)", d)
		default:
			s = fmt.Sprintf("%d√(%d)", q.b, d)
		}
	default:
		s = strconv.Itoa(int(q.a))
		switch {
		case q.b < -1:
			s += fmt.Sprintf(" - %d√(%d)", -q.b, d)
		case q.b == -1:
			s += fmt.Sprintf(" - √(%d)", d)
		case q.b == 1:
			s += fmt.Sprintf(" + √(%d)", d)
		case q.b > 1:
			s += fmt.Sprintf(" + %d√(%d)", q.b, d)
		}
	}
	if d == -1 {
		s = strings.ReplaceAll(s, "√(-1)", "i")
	}
	return s
}

// StringAlt returns a text representation of the quadratic integer using
// theta notation when the ring has half-integers, and the same string as
// [QuadraticInteger.String] otherwise. In the Eisenstein integers the
// letter is ω, meaning -1/2 + √(-3)/2; in every other half-integer ring
// it is θ, meaning 1/2 + √(d)/2. For example, 5/2 + √(-3)/2 is "3 + ω"
// while 5/2 + √(-7)/2 is "2 + θ".
func (q QuadraticInteger) StringAlt() string {
	if q.ring == nil || !q.ring.halfInts {
		return q.String()
	}
	nonTheta, theta := int(q.a), int(q.b)
	letter := "θ"
	if q.denom == 1 {
		nonTheta *= 2
		theta *= 2
	}
	if q.ring.d == -3 {
		nonTheta = (nonTheta + theta) / 2
		letter = "ω"
	} else {
		nonTheta = (nonTheta - theta) / 2
	}
	if nonTheta == 0 && theta != 0 {
		switch {
		case theta == -1:
			return "-" + letter
		case theta == 1:
			return letter
		default:
			return strconv.Itoa(theta) + letter
		}
	}
	s := strconv.Itoa(nonTheta)
	switch {
	case theta < -1:
		s += fmt.Sprintf(" - %d%s", -theta, letter)
	case theta == -1:
		s += " - " + letter
	case theta == 1:
		s += " + " + letter
	case theta > 1:
		s += fmt.Sprintf(" + %d%s", theta, letter)
	}
	return s
}

// ASCIIString returns the same representation as [QuadraticInteger.String]
// but with "sqrt" in place of the square root character.
func (q QuadraticInteger) ASCIIString() string {
	return strings.ReplaceAll(q.String(), "√", "sqrt")
}

// ASCIIStringAlt returns the same representation as
// [QuadraticInteger.StringAlt] but using only ASCII characters, with
// "omega" or "theta" spelled out.
func (q QuadraticInteger) ASCIIStringAlt() string {
	if q.ring == nil || !q.ring.halfInts {
		return q.ASCIIString()
	}
	s := q.StringAlt()
	if q.ring.d == -3 {
		return strings.ReplaceAll(s, "ω", "omega")
	}
	return strings.ReplaceAll(s, "θ", "theta")
}

// TeXString returns a representation of the quadratic integer suitable
// for use in a TeX document, with a separate denominator for the real and
// imaginary parts. For example, 1/2 + √(-7)/2 renders as
// "\frac{1}{2} + \frac{\sqrt{-7}}{2}". See also
// [QuadraticInteger.TeXStringSingleDenom].
func (q QuadraticInteger) TeXString() string {
	if q.ring == nil || q.ring.d == -1 {
		return q.String()
	}
	if q.IsZero() {
		return "0"
	}
	d := int(q.ring.d)
	var s string
	if q.denom == 1 {
		if q.a == 0 {
			switch q.b {
			case -1:
				s = fmt.Sprintf("-\\sqrt{%d}", d)
			case 1:
				s = fmt.Sprintf("\\sqrt{%d}", d)
			default:
				s = fmt.Sprintf("%d \\sqrt{%d}", q.b, d)
			}
		} else {
			s = fmt.Sprintf("%d + %d \\sqrt{%d}", q.a, q.b, d)
			s = strings.ReplaceAll(s, "+ -", " - ")
			s = strings.ReplaceAll(s, " 1 \\sqrt", " \\sqrt")
		}
	} else {
		s = fmt.Sprintf("\\frac{%d}{2} + \\frac{%d \\sqrt{%d}}{2}", q.a, q.b, d)
		s = strings.ReplaceAll(s, "\\frac{-", "-\\frac{")
		s = strings.ReplaceAll(s, "\\frac{1 \\sqrt", "\\frac{\\sqrt")
		s = strings.ReplaceAll(s, "+ -", " - ")
	}
	return s
}

// TeXStringSingleDenom returns a representation of the quadratic integer
// suitable for use in a TeX document, with a single denominator under
// both parts. For example, 1/2 + √(-7)/2 renders as
// "\frac{1 + \sqrt{-7}}{2}".
func (q QuadraticInteger) TeXStringSingleDenom() string {
	if q.denom != 2 {
		return q.TeXString()
	}
	s := fmt.Sprintf("\\frac{%d + %d \\sqrt{%d}}{2}", q.a, q.b, q.ring.d)
	s = strings.ReplaceAll(s, " 1 \\sqrt", " \\sqrt")
	s = strings.ReplaceAll(s, "+ -", " - ")
	return s
}

// TeXStringAlt returns the theta-notation representation for TeX, such as
// "-1 + \theta", falling back to [QuadraticInteger.TeXString] in rings
// without half-integers.
func (q QuadraticInteger) TeXStringAlt() string {
	if q.ring == nil || !q.ring.halfInts {
		return q.TeXString()
	}
	s := q.StringAlt()
	s = strings.ReplaceAll(s, "ω", "\\omega")
	s = strings.ReplaceAll(s, "θ", "\\theta")
	return s
}

// HTMLString returns a representation of the quadratic integer suitable
// for use in an HTML document, with character entities for the square
// root symbol and the minus sign and the imaginary unit in italics. For
// example, 1/2 + √(-7)/2 renders as "1/2 + &radic;(&minus;7)/2".
func (q QuadraticInteger) HTMLString() string {
	s := q.String()
	s = strings.ReplaceAll(s, "i", "<i>i</i>")
	s = strings.ReplaceAll(s, "√", "&radic;")
	s = strings.ReplaceAll(s, "-", "&minus;")
	return s
}

// HTMLStringAlt returns the theta-notation representation for HTML, such
// as "&minus;1 + &theta;", falling back to [QuadraticInteger.HTMLString]
// in rings without half-integers.
func (q QuadraticInteger) HTMLStringAlt() string {
	if q.ring == nil || !q.ring.halfInts {
		return q.HTMLString()
	}
	s := q.StringAlt()
	s = strings.ReplaceAll(s, "ω", "&omega;")
	s = strings.ReplaceAll(s, "θ", "&theta;")
	s = strings.ReplaceAll(s, "-", "&minus;")
	return s
}

// MinPolynomialString renders the minimal polynomial in a format suitable
// for plain text or TeX. For example, for 5/2 + √(-7)/2 the result is
// "x^2 - 5x + 8".
func (q QuadraticInteger) MinPolynomialString() string {
	coeffs := q.MinPolynomial()
	switch q.AlgebraicDegree() {
	case 0:
		return "x"
	case 1:
		if coeffs[0] < 0 {
			return fmt.Sprintf("x - %d", -coeffs[0])
		}
		return fmt.Sprintf("x + %d", coeffs[0])
	default:
		s := "x^2 "
		switch {
		case coeffs[1] < -1:
			s += fmt.Sprintf("- %dx ", -coeffs[1])
		case coeffs[1] == -1:
			s += "- x "
		case coeffs[1] == 1:
			s += "+ x "
		case coeffs[1] > 1:
			s += fmt.Sprintf("+ %dx ", coeffs[1])
		}
		if coeffs[0] < 0 {
			s += fmt.Sprintf("- %d", -coeffs[0])
		} else {
			s += fmt.Sprintf("+ %d", coeffs[0])
		}
		return s
	}
}

// gaussianRing backs quater-imaginary parsing, which always produces a
// Gaussian integer.
var gaussianRing = MustNewRing(-1)

// ParseQuaterImaginary interprets a string of digits 0 through 3 as the
// quater-imaginary (base 2i) representation of a Gaussian integer, the
// positional system proposed by Donald Knuth in which every Gaussian
// integer is written without minus signs and without separating the real
// and imaginary parts. The string may contain spaces, which are stripped,
// and a "decimal" dot followed by a single 2 (contributing -i) or by
// zeroes.
//
// ParseQuaterImaginary returns an error wrapping [ErrInvalidConstruction]
// on any digit outside 0-3 or any nonzero fractional digit other than a
// leading 2, and an error wrapping [ErrArithmeticOverflow] if the parsed
// value does not fit.
func ParseQuaterImaginary(s string) (QuadraticInteger, error) {
	s = strings.ReplaceAll(s, " ", "")
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		for i := dot + 2; i < len(s); i++ {
			if s[i] != '0' {
				return QuadraticInteger{}, fmt.Errorf("%q after the separator is not a valid quater-imaginary fractional digit: %w", s[i], errInvalidConstruction)
			}
		}
		if len(s) == dot+1 {
			s += "0"
		}
		s = s[:dot+2]
	}
	s = strings.TrimSuffix(s, ".0")
	parsed := MustNewWhole(0, 0, gaussianRing)
	if strings.HasSuffix(s, ".2") {
		parsed = MustNewWhole(0, -1, gaussianRing)
		s = s[:len(s)-2]
	}
	base := MustNewWhole(0, 2, gaussianRing)
	power := MustNewWhole(1, 0, gaussianRing)
	var err error
	for i := len(s) - 1; i >= 0; i-- {
		var term QuadraticInteger
		switch c := s[i]; c {
		case '0':
			term = MustNewWhole(0, 0, gaussianRing)
		case '1':
			term = power
		case '2', '3':
			term, err = power.MulInt(int(c - '0'))
			if err != nil {
				return QuadraticInteger{}, err
			}
		default:
			return QuadraticInteger{}, fmt.Errorf("%q is not a valid quater-imaginary digit: %w", c, errInvalidConstruction)
		}
		parsed, err = parsed.Add(term)
		if err != nil {
			return QuadraticInteger{}, err
		}
		if i > 0 {
			power, err = power.Mul(base)
			if err != nil {
				return QuadraticInteger{}, err
			}
		}
	}
	return parsed, nil
}
