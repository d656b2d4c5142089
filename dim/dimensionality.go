package dim

import (
	"strings"

	"unit-algebra/exponent"
)

// Factor is a single dimension raised to a rational exponent.
type Factor struct {
	Dim *Dimension
	Exp exponent.Exponent
}

// String renders the factor, omitting an exponent of one (e.g. "L",
// "T^-1", "L^(2/3)").
func (f Factor) String() string {
	if f.Exp.IsOne() {
		return f.Dim.String()
	}

	return f.Dim.String() + "^" + f.Exp.String()
}

// Dimensionality is an ordered product of dimension factors. The zero
// value is the empty (dimensionless) dimensionality. Values are
// immutable: every operation returns a new Dimensionality.
//
// Factors are kept sorted by dimension and never carry a zero exponent.
type Dimensionality struct {
	factors []Factor
}

// New returns a dimensionality holding the single factor dim^exp, or
// the empty dimensionality when exp is zero.
func New(d *Dimension, exp exponent.Exponent) Dimensionality {
	if exp.IsZero() {
		return Dimensionality{}
	}

	return Dimensionality{factors: []Factor{{Dim: d, Exp: exp}}}
}

// Factors returns a copy of the factor list in sorted order.
func (y Dimensionality) Factors() []Factor {
	out := make([]Factor, len(y.factors))
	copy(out, y.factors)

	return out
}

// IsEmpty reports whether the dimensionality has no factors.
func (y Dimensionality) IsEmpty() bool {
	return len(y.factors) == 0
}

// IsBase reports whether the dimensionality is a single dimension with
// exponent one.
func (y Dimensionality) IsBase() bool {
	return len(y.factors) == 1 && y.factors[0].Exp.IsOne()
}

// Mul returns the product of the two dimensionalities. Exponents of
// shared dimensions accumulate; factors that cancel are dropped.
func (y Dimensionality) Mul(other Dimensionality) Dimensionality {
	merged := make([]Factor, 0, len(y.factors)+len(other.factors))

	i, j := 0, 0
	for i < len(y.factors) && j < len(other.factors) {
		a, b := y.factors[i], other.factors[j]

		switch a.Dim.Compare(b.Dim) {
		case -1:
			merged = append(merged, a)
			i++
		case 1:
			merged = append(merged, b)
			j++
		default:
			if sum := a.Exp.Add(b.Exp); !sum.IsZero() {
				merged = append(merged, Factor{Dim: a.Dim, Exp: sum})
			}
			i++
			j++
		}
	}

	merged = append(merged, y.factors[i:]...)
	merged = append(merged, other.factors[j:]...)

	return Dimensionality{factors: merged}
}

// Div returns the quotient of the two dimensionalities.
func (y Dimensionality) Div(other Dimensionality) Dimensionality {
	return y.Mul(other.Pow(exponent.FromInt(-1)))
}

// Pow raises every factor to the given exponent. Raising to the zero
// exponent yields the empty dimensionality.
func (y Dimensionality) Pow(exp exponent.Exponent) Dimensionality {
	if exp.IsZero() {
		return Dimensionality{}
	}

	factors := make([]Factor, len(y.factors))
	for i, f := range y.factors {
		factors[i] = Factor{Dim: f.Dim, Exp: f.Exp.Mul(exp)}
	}

	return Dimensionality{factors: factors}
}

// Compare imposes a strict total order: factors are compared pairwise
// (dimension first, then exponent) and a strict prefix orders before
// its extension.
func (y Dimensionality) Compare(other Dimensionality) int {
	for i := 0; i < len(y.factors) && i < len(other.factors); i++ {
		if c := y.factors[i].Dim.Compare(other.factors[i].Dim); c != 0 {
			return c
		}

		if c := y.factors[i].Exp.Compare(other.factors[i].Exp); c != 0 {
			return c
		}
	}

	switch {
	case len(y.factors) < len(other.factors):
		return -1
	case len(y.factors) > len(other.factors):
		return 1
	default:
		return 0
	}
}

// Equal reports whether the two dimensionalities have identical factors.
func (y Dimensionality) Equal(other Dimensionality) bool {
	return y.Compare(other) == 0
}

// Hash returns a hash code consistent with Equal.
func (y Dimensionality) Hash() uint64 {
	var h uint64
	for _, f := range y.factors {
		h ^= f.Dim.Hash() * 31
		h ^= f.Exp.Hash()
	}

	return h
}

// String renders the factors separated by "·" (e.g. "L·T^-1"). The
// empty dimensionality renders as the empty string.
func (y Dimensionality) String() string {
	parts := make([]string, len(y.factors))
	for i, f := range y.factors {
		parts[i] = f.String()
	}

	return strings.Join(parts, "·")
}
