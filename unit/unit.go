package unit

import (
	"fmt"
	"math"

	"unit-algebra/exponent"
)

// Unit is a unit of physical measure. The set of implementations is
// closed: Canonical, Affine, RefLog, and UnrefLog. Cross-kind behavior
// lives in the package-level operations, which dispatch exhaustively
// over that set.
type Unit interface {
	// Kind reports the unit's behavioral class.
	Kind() Kind

	// IsDimensionless reports whether the unit measures a pure number.
	IsDimensionless() bool

	// IsOffset reports whether conversion to the unit's canonical core
	// involves an additive offset.
	IsOffset() bool

	// Hash returns a hash code consistent with Compare equality.
	Hash() uint64

	// String renders the unit.
	String() string

	sealed()
}

// rank fixes the cross-kind precedence for Compare: canonical (and
// base) before affine before referenced-log before unreferenced-log.
func rank(u Unit) int {
	switch u.(type) {
	case *Canonical:
		return 0
	case *Affine:
		return 1
	case *RefLog:
		return 2
	default:
		return 3
	}
}

// Compare imposes a strict total order over all units. Units of
// different kinds order by kind precedence; units of the same kind
// order by their own fields, innermost units first.
func Compare(a, b Unit) int {
	ra, rb := rank(a), rank(b)

	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}

	switch x := a.(type) {
	case *Canonical:
		return x.compare(b.(*Canonical))

	case *Affine:
		y := b.(*Affine)
		if c := Compare(x.core, y.core); c != 0 {
			return c
		}
		if c := compareFloat(x.slope, y.slope); c != 0 {
			return c
		}
		return compareFloat(x.intercept, y.intercept)

	case *RefLog:
		y := b.(*RefLog)
		if c := Compare(x.ref, y.ref); c != 0 {
			return c
		}
		return compareInt(int(x.base), int(y.base))

	default:
		x1 := a.(*UnrefLog)
		y := b.(*UnrefLog)
		if c := compareInt(int(x1.base), int(y.base)); c != 0 {
			return c
		}
		return x1.dims.Compare(y.dims)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether Compare orders the units as equal.
func Equal(a, b Unit) bool {
	return Compare(a, b) == 0
}

// Convertible reports whether values can be converted between the two
// units. Canonical units convert on factor identity; affine units
// convert whenever their cores do, on either side; referenced-log
// units convert with other referenced-log units over mutually
// convertible reference levels; unreferenced-log units convert with
// any unreferenced-log unit. No other pairing converts.
func Convertible(a, b Unit) bool {
	switch x := a.(type) {
	case *Canonical:
		switch y := b.(type) {
		case *Canonical:
			return x.convertibleWith(y)
		case *Affine:
			return Convertible(a, y.core)
		default:
			return false
		}

	case *Affine:
		return Convertible(x.core, b)

	case *RefLog:
		switch y := b.(type) {
		case *RefLog:
			return Convertible(x.ref, y.ref)
		case *Affine:
			return Convertible(a, y.core)
		default:
			return false
		}

	default:
		switch y := b.(type) {
		case *UnrefLog:
			return true
		case *Affine:
			return Convertible(a, y.core)
		default:
			return false
		}
	}
}

// isLog reports whether the unit is logarithmic anywhere in its core
// chain. A scale wrapper over a logarithmic unit behaves like its log
// core under the algebraic operations.
func isLog(u Unit) bool {
	for {
		switch x := u.(type) {
		case *Affine:
			u = x.core
		case *RefLog, *UnrefLog:
			return true
		default:
			return false
		}
	}
}

// flatten reduces a non-logarithmic, non-offset unit to its canonical
// core and the accumulated scale against it.
func flatten(u Unit) (*Canonical, float64) {
	switch x := u.(type) {
	case *Affine:
		core, scale := flatten(x.core)
		return core, x.slope * scale
	default:
		return u.(*Canonical), 1
	}
}

// Mul returns the product of the two units. Logarithmic and offset
// units do not support multiplication.
func Mul(a, b Unit) (Unit, error) {
	if isLog(a) || isLog(b) {
		return nil, fmt.Errorf("%w: cannot multiply logarithmic unit in %q * %q",
			ErrUnsupported, a, b)
	}

	if a.IsOffset() || b.IsOffset() {
		return nil, fmt.Errorf("%w: cannot multiply offset unit in %q * %q",
			ErrUnsupported, a, b)
	}

	coreA, scaleA := flatten(a)
	coreB, scaleB := flatten(b)

	return NewAffine(coreA.mul(coreB), scaleA*scaleB, 0)
}

// Pow raises the unit to a rational exponent. Logarithmic and offset
// units do not support exponentiation.
func Pow(u Unit, exp exponent.Exponent) (Unit, error) {
	if isLog(u) {
		return nil, fmt.Errorf("%w: cannot exponentiate logarithmic unit %q", ErrUnsupported, u)
	}

	if u.IsOffset() {
		return nil, fmt.Errorf("%w: cannot exponentiate offset unit %q", ErrUnsupported, u)
	}

	core, scale := flatten(u)

	return NewAffine(core.pow(exp), math.Pow(scale, exp.Float64()), 0)
}

// Div returns the quotient of the two units. Logarithmic and offset
// units do not support division.
func Div(a, b Unit) (Unit, error) {
	inverse, err := Pow(b, exponent.FromInt(-1))
	if err != nil {
		return nil, err
	}

	return Mul(a, inverse)
}

// ConverterTo returns the converter mapping values in the input unit to
// values in the output unit.
func ConverterTo(in, out Unit) (Converter, error) {
	return ConverterFrom(out, in)
}

// ConverterFrom returns the converter mapping values in the input unit
// to values in the output unit, dispatching on the output unit.
func ConverterFrom(out, in Unit) (Converter, error) {
	switch o := out.(type) {
	case *Canonical:
		switch i := in.(type) {
		case *Canonical:
			if !o.convertibleWith(i) {
				return nil, notConvertible(in, out)
			}
			return Identity(), nil

		case *Affine:
			inner, err := ConverterFrom(out, i.core)
			if err != nil {
				return nil, notConvertible(in, out)
			}
			return func(value float64) float64 {
				return inner(i.toCore(value))
			}, nil

		default:
			return nil, notConvertible(in, out)
		}

	case *Affine:
		inner, err := ConverterFrom(o.core, in)
		if err != nil {
			return nil, notConvertible(in, out)
		}
		return func(value float64) float64 {
			return o.fromCore(inner(value))
		}, nil

	case *RefLog:
		switch i := in.(type) {
		case *RefLog:
			refConv, err := ConverterTo(i.ref, o.ref)
			if err != nil {
				return nil, notConvertible(in, out)
			}
			inLn, outLn := i.base.Ln(), o.base.Ln()
			return func(value float64) float64 {
				return math.Log(refConv(math.Exp(value*inLn))) / outLn
			}, nil

		case *Affine:
			inner, err := ConverterFrom(out, i.core)
			if err != nil {
				return nil, notConvertible(in, out)
			}
			return func(value float64) float64 {
				return inner(i.toCore(value))
			}, nil

		default:
			return nil, notConvertible(in, out)
		}

	default:
		o1 := out.(*UnrefLog)

		switch i := in.(type) {
		case *UnrefLog:
			ratio := i.base.Ln() / o1.base.Ln()
			return func(value float64) float64 {
				return value * ratio
			}, nil

		case *Affine:
			inner, err := ConverterFrom(out, i.core)
			if err != nil {
				return nil, notConvertible(in, out)
			}
			return func(value float64) float64 {
				return inner(i.toCore(value))
			}, nil

		default:
			return nil, notConvertible(in, out)
		}
	}
}

func notConvertible(in, out Unit) error {
	return fmt.Errorf("%w: %q to %q", ErrNotConvertible, in, out)
}
