package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Fraction is an exact rational with a normalized sign and reduced terms.
type Fraction struct {
	Num, Den int64
}

// ParseFraction accepts "a/b" or a bare integer "a".
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	num, den := s, "1"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, den = strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid fraction %q", s)
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid fraction %q", s)
	}
	return NewFraction(n, d)
}

// NewFraction builds a reduced fraction with a positive denominator.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("denominator cannot be zero")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := GCD(num, den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Fraction{Num: num, Den: den}, nil
}

// Add returns f + g reduced.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	return NewFraction(f.Num*g.Den+g.Num*f.Den, f.Den*g.Den)
}

// Mul returns f * g reduced.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	return NewFraction(f.Num*g.Num, f.Den*g.Den)
}

// String renders "a/b", or just "a" when the denominator is 1.
func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// AddFractions adds two fraction strings like "1/2" and "1/3".
func AddFractions(a, b string) (string, error) {
	fa, err := ParseFraction(a)
	if err != nil {
		return "", err
	}
	fb, err := ParseFraction(b)
	if err != nil {
		return "", err
	}
	sum, err := fa.Add(fb)
	if err != nil {
		return "", err
	}
	return sum.String(), nil
}

// MultiplyFractions multiplies two fraction strings.
func MultiplyFractions(a, b string) (string, error) {
	fa, err := ParseFraction(a)
	if err != nil {
		return "", err
	}
	fb, err := ParseFraction(b)
	if err != nil {
		return "", err
	}
	prod, err := fa.Mul(fb)
	if err != nil {
		return "", err
	}
	return prod.String(), nil
}

// SimplifyFraction reduces numerator/denominator to lowest terms.
func SimplifyFraction(num, den int64) (string, error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}
