package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Affine is a unit whose value relates to its core unit's value by
// value = slope·coreValue + intercept. The slope is never zero. An
// affine unit with slope one and intercept zero never exists: the
// factory returns the core unchanged.
type Affine struct {
	core      Unit
	slope     float64
	intercept float64
}

// NewAffine returns an affine wrapper over the core unit. A zero slope
// is rejected; slope one with intercept zero returns the core itself.
func NewAffine(core Unit, slope, intercept float64) (Unit, error) {
	if core == nil {
		return nil, fmt.Errorf("%w: affine unit has no core unit", ErrInvalid)
	}

	if slope == 0 {
		return nil, fmt.Errorf("%w: affine unit over %q has slope zero", ErrInvalid, core)
	}

	if slope == 1 && intercept == 0 {
		return core, nil
	}

	return &Affine{core: core, slope: slope, intercept: intercept}, nil
}

// Core returns the wrapped unit.
func (u *Affine) Core() Unit {
	return u.core
}

// Slope returns the multiplicative scale against the core unit.
func (u *Affine) Slope() float64 {
	return u.slope
}

// Intercept returns the additive offset against the core unit.
func (u *Affine) Intercept() float64 {
	return u.intercept
}

// Kind reports KindAffine.
func (u *Affine) Kind() Kind {
	return KindAffine
}

// IsDimensionless reports whether the core unit is dimensionless.
func (u *Affine) IsDimensionless() bool {
	return u.core.IsDimensionless()
}

// IsOffset reports whether conversion to the canonical core involves an
// additive offset anywhere in the core chain.
func (u *Affine) IsOffset() bool {
	return u.intercept != 0 || u.core.IsOffset()
}

// Hash returns a hash code for the unit.
func (u *Affine) Hash() uint64 {
	return u.core.Hash() ^ math.Float64bits(u.slope)*31 ^ math.Float64bits(u.intercept)*7
}

// String renders "slope*core" with the slope to six decimals, the
// slope omitted when exactly one, the core parenthesized when its
// rendering contains a space, and a trailing " + b" or " - b" for a
// non-zero intercept.
func (u *Affine) String() string {
	core := u.core.String()
	if strings.Contains(core, " ") {
		core = "(" + core + ")"
	}

	rep := core
	if u.slope != 1 {
		rep = formatCoef(u.slope) + "*" + core
	}

	switch {
	case u.intercept > 0:
		rep += " + " + formatCoef(u.intercept)
	case u.intercept < 0:
		rep += " - " + formatCoef(-u.intercept)
	}

	return rep
}

func formatCoef(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func (u *Affine) sealed() {}

// toCore maps a value in this unit to the equivalent value in the core
// unit.
func (u *Affine) toCore(value float64) float64 {
	return (value - u.intercept) / u.slope
}

// fromCore maps a value in the core unit to the equivalent value in
// this unit.
func (u *Affine) fromCore(value float64) float64 {
	return u.slope*value + u.intercept
}
