package unit

import (
	"strings"

	"unit-algebra/dim"
	"unit-algebra/exponent"
)

// baseFactor is a single base unit raised to a rational exponent.
type baseFactor struct {
	info *BaseInfo
	exp  exponent.Exponent
}

func (f baseFactor) String() string {
	if f.exp.IsOne() {
		return f.info.String()
	}

	return f.info.String() + "^" + f.exp.String()
}

// Canonical is a product of base-unit factors. The factors are kept
// sorted by base-unit symbol and never carry a zero exponent. The
// empty product is the dimensionless unit one.
type Canonical struct {
	factors []baseFactor
}

// One returns the dimensionless unit one.
func One() *Canonical {
	return &Canonical{}
}

func baseUnit(info *BaseInfo) *Canonical {
	return &Canonical{factors: []baseFactor{{info: info, exp: exponent.Unity()}}}
}

// Kind reports KindBase for a single factor of exponent one and
// KindCanonical otherwise.
func (u *Canonical) Kind() Kind {
	if len(u.factors) == 1 && u.factors[0].exp.IsOne() {
		return KindBase
	}

	return KindCanonical
}

// Dimensionality returns the product of the factor dimensionalities.
func (u *Canonical) Dimensionality() dim.Dimensionality {
	var y dim.Dimensionality
	for _, f := range u.factors {
		y = y.Mul(f.info.Dimensionality().Pow(f.exp))
	}

	return y
}

// IsDimensionless reports whether the factor dimensionalities cancel.
func (u *Canonical) IsDimensionless() bool {
	return u.Dimensionality().IsEmpty()
}

// IsOffset reports false: canonical units never carry an offset.
func (u *Canonical) IsOffset() bool {
	return false
}

// Hash returns a hash code consistent with compare equality.
func (u *Canonical) Hash() uint64 {
	var h uint64
	for _, f := range u.factors {
		h ^= f.info.Hash() * 31
		h ^= f.exp.Hash()
	}

	return h
}

// String renders the factors separated by "·" (e.g. "kg·m^2·s^-2").
// The unit one renders as the empty string.
func (u *Canonical) String() string {
	parts := make([]string, len(u.factors))
	for i, f := range u.factors {
		parts[i] = f.String()
	}

	return strings.Join(parts, "·")
}

func (u *Canonical) sealed() {}

// mul merges the factors of the two units, accumulating exponents of
// shared base units and dropping factors that cancel.
func (u *Canonical) mul(other *Canonical) *Canonical {
	merged := make([]baseFactor, 0, len(u.factors)+len(other.factors))

	i, j := 0, 0
	for i < len(u.factors) && j < len(other.factors) {
		a, b := u.factors[i], other.factors[j]

		switch a.info.Compare(b.info) {
		case -1:
			merged = append(merged, a)
			i++
		case 1:
			merged = append(merged, b)
			j++
		default:
			if sum := a.exp.Add(b.exp); !sum.IsZero() {
				merged = append(merged, baseFactor{info: a.info, exp: sum})
			}
			i++
			j++
		}
	}

	merged = append(merged, u.factors[i:]...)
	merged = append(merged, other.factors[j:]...)

	return &Canonical{factors: merged}
}

// pow raises every factor to the given exponent. The zero exponent
// yields the unit one.
func (u *Canonical) pow(exp exponent.Exponent) *Canonical {
	if exp.IsZero() {
		return One()
	}

	factors := make([]baseFactor, len(u.factors))
	for i, f := range u.factors {
		factors[i] = baseFactor{info: f.info, exp: f.exp.Mul(exp)}
	}

	return &Canonical{factors: factors}
}

// compare orders canonical units pairwise by factor (base unit first,
// then exponent); a strict prefix orders before its extension.
func (u *Canonical) compare(other *Canonical) int {
	for i := 0; i < len(u.factors) && i < len(other.factors); i++ {
		if c := u.factors[i].info.Compare(other.factors[i].info); c != 0 {
			return c
		}

		if c := u.factors[i].exp.Compare(other.factors[i].exp); c != 0 {
			return c
		}
	}

	switch {
	case len(u.factors) < len(other.factors):
		return -1
	case len(u.factors) > len(other.factors):
		return 1
	default:
		return 0
	}
}

// convertibleWith reports whether the two units have identical factors.
// Values convert between canonical units only via the identity.
func (u *Canonical) convertibleWith(other *Canonical) bool {
	return u.compare(other) == 0
}
