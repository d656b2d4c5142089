// Package catalog loads declarative YAML unit catalogs and builds them
// into working unit systems. Catalog entries reference each other by
// name through structured fields; no unit expressions are parsed from
// text.
package catalog

import (
	"fmt"

	"unit-algebra/unit"
)

// File is the root of a YAML unit catalog.
type File struct {
	// Dimensions declares the physical dimensions.
	Dimensions []DimensionDecl `yaml:"dimensions,omitempty"`

	// BaseUnits declares one base unit per dimension it measures.
	BaseUnits []BaseUnitDecl `yaml:"base_units,omitempty"`

	// DerivedUnits declares products of previously declared units
	// raised to rational exponents.
	DerivedUnits []DerivedUnitDecl `yaml:"derived_units,omitempty"`

	// ScaledUnits declares affine wrappers over previously declared
	// units.
	ScaledUnits []ScaledUnitDecl `yaml:"scaled_units,omitempty"`

	// LogUnits declares logarithmic units, referenced or unreferenced.
	LogUnits []LogUnitDecl `yaml:"log_units,omitempty"`
}

// DimensionDecl declares a dimension (e.g. Length, "L").
type DimensionDecl struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// BaseUnitDecl declares a base unit of a declared dimension.
type BaseUnitDecl struct {
	Name      string `yaml:"name"`
	Symbol    string `yaml:"symbol"`
	Dimension string `yaml:"dimension"`
}

// FactorDecl is one factor of a derived unit: a previously declared
// unit raised to Numer/Denom. An omitted numerator defaults to 1, an
// omitted denominator to 1.
type FactorDecl struct {
	Unit  string `yaml:"unit"`
	Numer int    `yaml:"numer,omitempty"`
	Denom int    `yaml:"denom,omitempty"`
}

// DerivedUnitDecl declares a product of unit factors.
type DerivedUnitDecl struct {
	Name    string       `yaml:"name"`
	Factors []FactorDecl `yaml:"factors"`
}

// ScaledUnitDecl declares an affine unit over a core unit. An omitted
// slope defaults to 1, an omitted intercept to 0.
type ScaledUnitDecl struct {
	Name      string   `yaml:"name"`
	Core      string   `yaml:"core"`
	Slope     *float64 `yaml:"slope,omitempty"`
	Intercept float64  `yaml:"intercept,omitempty"`
}

// LogUnitDecl declares a logarithmic unit. Base is one of "lb", "ln",
// or "lg". Exactly one of Reference (a declared unit, for a referenced
// log unit) and Dimension (a declared dimension, for an unreferenced
// one) must be set.
type LogUnitDecl struct {
	Name      string `yaml:"name"`
	Base      string `yaml:"base"`
	Reference string `yaml:"reference,omitempty"`
	Dimension string `yaml:"dimension,omitempty"`
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.DerivedUnits {
		for j := range f.DerivedUnits[i].Factors {
			fd := &f.DerivedUnits[i].Factors[j]
			if fd.Numer == 0 {
				fd.Numer = 1
			}
			if fd.Denom == 0 {
				fd.Denom = 1
			}
		}
	}

	for i := range f.ScaledUnits {
		if f.ScaledUnits[i].Slope == nil {
			one := 1.0
			f.ScaledUnits[i].Slope = &one
		}
	}
}

// parseLogBase maps the schema's base names onto logarithm bases.
func parseLogBase(name string) (unit.LogBase, error) {
	switch name {
	case "lb":
		return unit.LogTwo, nil
	case "ln":
		return unit.LogE, nil
	case "lg":
		return unit.LogTen, nil
	default:
		return 0, fmt.Errorf("%w: logarithm base %q (want lb, ln, or lg)", unit.ErrInvalid, name)
	}
}
