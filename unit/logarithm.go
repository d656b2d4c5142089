package unit

import (
	"fmt"
	"math"

	"unit-algebra/dim"
)

// LogBase identifies the base of a logarithmic unit.
type LogBase int

const (
	LogTwo LogBase = iota + 1
	LogE
	LogTen
)

// Valid reports whether the value is one of the three supported bases.
func (b LogBase) Valid() bool {
	return b == LogTwo || b == LogE || b == LogTen
}

// Ln returns the natural logarithm of the base.
func (b LogBase) Ln() float64 {
	switch b {
	case LogTwo:
		return math.Ln2
	case LogTen:
		return math.Log(10)
	default:
		return 1
	}
}

// String returns the conventional function name for the base: "lb" for
// two, "ln" for e, "lg" for ten.
func (b LogBase) String() string {
	switch b {
	case LogTwo:
		return "lb"
	case LogE:
		return "ln"
	case LogTen:
		return "lg"
	default:
		return "unknown"
	}
}

// RefLog is a logarithmic unit with a reference level: its values are
// log(quantity/reference) in the given base. The reference level must
// not involve an offset.
type RefLog struct {
	ref  Unit
	base LogBase
}

// NewRefLog returns a referenced logarithmic unit over the reference
// level.
func NewRefLog(ref Unit, base LogBase) (Unit, error) {
	if !base.Valid() {
		return nil, fmt.Errorf("%w: unsupported logarithm base %d", ErrInvalid, int(base))
	}

	if ref == nil {
		return nil, fmt.Errorf("%w: referenced logarithmic unit has no reference level", ErrInvalid)
	}

	if ref.IsOffset() {
		return nil, fmt.Errorf("%w: reference level %q involves an offset", ErrInvalid, ref)
	}

	return &RefLog{ref: ref, base: base}, nil
}

// Reference returns the reference-level unit.
func (u *RefLog) Reference() Unit {
	return u.ref
}

// Base returns the logarithm base.
func (u *RefLog) Base() LogBase {
	return u.base
}

// Kind reports KindRefLog.
func (u *RefLog) Kind() Kind {
	return KindRefLog
}

// IsDimensionless reports true: logarithms are taken of pure ratios.
func (u *RefLog) IsDimensionless() bool {
	return true
}

// IsOffset reports false.
func (u *RefLog) IsOffset() bool {
	return false
}

// Hash returns a hash code for the unit.
func (u *RefLog) Hash() uint64 {
	return u.ref.Hash() ^ uint64(u.base)*0x9e3779b97f4a7c15
}

// String renders the IEC form, e.g. "lg(re mW)".
func (u *RefLog) String() string {
	return u.base.String() + "(re " + u.ref.String() + ")"
}

func (u *RefLog) sealed() {}

// UnrefLog is a logarithmic unit without a reference level: its values
// are log(ratio) of two quantities of the same dimensionality.
type UnrefLog struct {
	base LogBase
	dims dim.Dimensionality
}

// NewUnrefLog returns an unreferenced logarithmic unit over ratios of
// the given dimensionality.
func NewUnrefLog(base LogBase, dims dim.Dimensionality) (Unit, error) {
	if !base.Valid() {
		return nil, fmt.Errorf("%w: unsupported logarithm base %d", ErrInvalid, int(base))
	}

	return &UnrefLog{base: base, dims: dims}, nil
}

// Base returns the logarithm base.
func (u *UnrefLog) Base() LogBase {
	return u.base
}

// Dimensionality returns the dimensionality of the ratio's operands.
func (u *UnrefLog) Dimensionality() dim.Dimensionality {
	return u.dims
}

// Kind reports KindUnrefLog.
func (u *UnrefLog) Kind() Kind {
	return KindUnrefLog
}

// IsDimensionless reports true.
func (u *UnrefLog) IsDimensionless() bool {
	return true
}

// IsOffset reports false.
func (u *UnrefLog) IsOffset() bool {
	return false
}

// Hash returns a hash code for the unit.
func (u *UnrefLog) Hash() uint64 {
	return u.dims.Hash() ^ uint64(u.base)*0x9e3779b97f4a7c15
}

// String renders the ratio form, e.g. "lb(L/L)"; a dimensionless ratio
// renders as "lb(1/1)".
func (u *UnrefLog) String() string {
	d := u.dims.String()
	if d == "" {
		d = "1"
	}

	return u.base.String() + "(" + d + "/" + d + ")"
}

func (u *UnrefLog) sealed() {}
