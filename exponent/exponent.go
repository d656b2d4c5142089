// Package exponent implements exact rational exponents for unit and
// dimension factors. An Exponent is always held in lowest terms with a
// positive denominator; the sign lives on the numerator. Values are
// immutable: every operation returns a new Exponent.
package exponent

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrZeroDenominator is returned by New for a zero denominator.
var ErrZeroDenominator = errors.New("exponent denominator is zero")

// Exponent is a rational exponent. The zero value is not a valid
// Exponent; use New, FromInt, Unity, or Zero.
type Exponent struct {
	numer int
	denom int
}

// New returns the exponent numer/denom reduced to lowest terms with a
// positive denominator.
func New(numer, denom int) (Exponent, error) {
	if denom == 0 {
		return Exponent{}, fmt.Errorf("%w: %d/0", ErrZeroDenominator, numer)
	}

	return reduce(numer, denom), nil
}

// FromInt returns the exponent n/1.
func FromInt(n int) Exponent {
	return Exponent{numer: n, denom: 1}
}

// Unity returns the exponent 1.
func Unity() Exponent {
	return Exponent{numer: 1, denom: 1}
}

// Zero returns the exponent 0.
func Zero() Exponent {
	return Exponent{numer: 0, denom: 1}
}

// reduce normalizes the sign onto the numerator and divides out the gcd.
func reduce(numer, denom int) Exponent {
	if denom < 0 {
		numer = -numer
		denom = -denom
	}

	if numer == 0 {
		return Exponent{numer: 0, denom: 1}
	}

	g := gcd(abs(numer), denom)

	return Exponent{numer: numer / g, denom: denom / g}
}

// gcd returns the greatest common divisor of two positive integers.
// Callers never pass (0, 0): a zero numerator short-circuits to 0/1
// before reduction.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Numer returns the numerator.
func (e Exponent) Numer() int {
	return e.numer
}

// Denom returns the denominator. It is always positive.
func (e Exponent) Denom() int {
	return e.denom
}

// IsZero reports whether the exponent is zero.
func (e Exponent) IsZero() bool {
	return e.numer == 0
}

// IsOne reports whether the exponent is one.
func (e Exponent) IsOne() bool {
	return e.numer == 1 && e.denom == 1
}

// Add returns the sum of the two exponents. This is the operation that
// accumulates exponents when factors of the same base are combined.
func (e Exponent) Add(other Exponent) Exponent {
	return reduce(e.numer*other.denom+other.numer*e.denom, e.denom*other.denom)
}

// Mul returns the product of the two exponents. This is the operation
// that scales an exponent when a factor is raised to a power.
func (e Exponent) Mul(other Exponent) Exponent {
	return reduce(e.numer*other.numer, e.denom*other.denom)
}

// Neg returns the negation of the exponent.
func (e Exponent) Neg() Exponent {
	return Exponent{numer: -e.numer, denom: e.denom}
}

// Compare returns a value less than, equal to, or greater than zero as
// this exponent is ordered before, equal to, or after the other.
// Non-negative exponents order before negative ones; within the same
// sign class the cross-multiplied magnitudes decide.
func (e Exponent) Compare(other Exponent) int {
	s1 := sign(e.numer)
	s2 := sign(other.numer)

	if s1 == s2 || (s1 >= 0 && s2 >= 0) {
		m1 := abs(e.numer) * other.denom
		m2 := abs(other.numer) * e.denom

		switch {
		case m1 < m2:
			return -1
		case m1 > m2:
			return 1
		default:
			return 0
		}
	}

	if s1 < 0 {
		return 1
	}

	return -1
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Float64 returns the exponent as a floating-point value.
func (e Exponent) Float64() float64 {
	return float64(e.numer) / float64(e.denom)
}

// Hash returns a hash code consistent with equality of reduced forms.
func (e Exponent) Hash() uint64 {
	const prime = 0x100000001b3

	h := uint64(14695981039346656037)
	h = (h ^ uint64(int64(e.numer))) * prime
	h = (h ^ uint64(int64(e.denom))) * prime

	return h
}

// String renders the exponent as "n" when the denominator is one and
// "(n/d)" otherwise.
func (e Exponent) String() string {
	if e.denom == 1 {
		return strconv.Itoa(e.numer)
	}

	return "(" + strconv.Itoa(e.numer) + "/" + strconv.Itoa(e.denom) + ")"
}
