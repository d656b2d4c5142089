package catalog

import (
	"fmt"
	"sort"

	"unit-algebra/dim"
	"unit-algebra/exponent"
	"unit-algebra/unit"
)

// System is a built catalog: every declared unit, addressable by name.
type System struct {
	dims  *dim.Registry
	bases *unit.Registry
	units map[string]unit.Unit
	names []string
}

// Build validates the catalog and constructs every declared unit.
// Entries may reference dimensions and units declared before them;
// sections build in declaration order (dimensions, base units, derived
// units, scaled units, log units).
func Build(f *File) (*System, error) {
	s := &System{
		dims:  dim.NewRegistry(),
		bases: unit.NewRegistry(),
		units: map[string]unit.Unit{},
	}

	dimensionalities := map[string]dim.Dimensionality{}

	for _, d := range f.Dimensions {
		y, err := s.dims.Get(d.Name, d.Symbol)
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", d.Name, err)
		}

		if _, ok := dimensionalities[d.Name]; ok {
			return nil, fmt.Errorf("dimension %q: declared twice", d.Name)
		}

		dimensionalities[d.Name] = y
	}

	for _, b := range f.BaseUnits {
		y, ok := dimensionalities[b.Dimension]
		if !ok {
			return nil, fmt.Errorf("base unit %q: unknown dimension %q", b.Name, b.Dimension)
		}

		info, err := s.bases.NewBase(y, b.Name, b.Symbol)
		if err != nil {
			return nil, fmt.Errorf("base unit %q: %w", b.Name, err)
		}

		if err := s.add(b.Name, info.Unit()); err != nil {
			return nil, err
		}
	}

	for _, d := range f.DerivedUnits {
		if len(d.Factors) == 0 {
			return nil, fmt.Errorf("derived unit %q: has no factors", d.Name)
		}

		product := unit.Unit(unit.One())
		for _, fd := range d.Factors {
			operand, ok := s.units[fd.Unit]
			if !ok {
				return nil, fmt.Errorf("derived unit %q: unknown unit %q", d.Name, fd.Unit)
			}

			exp, err := exponent.New(fd.Numer, fd.Denom)
			if err != nil {
				return nil, fmt.Errorf("derived unit %q: factor %q: %w", d.Name, fd.Unit, err)
			}

			raised, err := unit.Pow(operand, exp)
			if err != nil {
				return nil, fmt.Errorf("derived unit %q: factor %q: %w", d.Name, fd.Unit, err)
			}

			product, err = unit.Mul(product, raised)
			if err != nil {
				return nil, fmt.Errorf("derived unit %q: factor %q: %w", d.Name, fd.Unit, err)
			}
		}

		if err := s.add(d.Name, product); err != nil {
			return nil, err
		}
	}

	for _, sc := range f.ScaledUnits {
		core, ok := s.units[sc.Core]
		if !ok {
			return nil, fmt.Errorf("scaled unit %q: unknown core unit %q", sc.Name, sc.Core)
		}

		u, err := unit.NewAffine(core, *sc.Slope, sc.Intercept)
		if err != nil {
			return nil, fmt.Errorf("scaled unit %q: %w", sc.Name, err)
		}

		if err := s.add(sc.Name, u); err != nil {
			return nil, err
		}
	}

	for _, l := range f.LogUnits {
		base, err := parseLogBase(l.Base)
		if err != nil {
			return nil, fmt.Errorf("log unit %q: %w", l.Name, err)
		}

		var u unit.Unit

		switch {
		case l.Reference != "" && l.Dimension != "":
			return nil, fmt.Errorf("log unit %q: has both a reference and a dimension", l.Name)

		case l.Reference != "":
			ref, ok := s.units[l.Reference]
			if !ok {
				return nil, fmt.Errorf("log unit %q: unknown reference unit %q", l.Name, l.Reference)
			}

			u, err = unit.NewRefLog(ref, base)
			if err != nil {
				return nil, fmt.Errorf("log unit %q: %w", l.Name, err)
			}

		case l.Dimension != "":
			y, ok := dimensionalities[l.Dimension]
			if !ok {
				return nil, fmt.Errorf("log unit %q: unknown dimension %q", l.Name, l.Dimension)
			}

			u, err = unit.NewUnrefLog(base, y)
			if err != nil {
				return nil, fmt.Errorf("log unit %q: %w", l.Name, err)
			}

		default:
			return nil, fmt.Errorf("log unit %q: has neither a reference nor a dimension", l.Name)
		}

		if err := s.add(l.Name, u); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *System) add(name string, u unit.Unit) error {
	if name == "" {
		return fmt.Errorf("unit with empty name")
	}

	if _, ok := s.units[name]; ok {
		return fmt.Errorf("unit %q: declared twice", name)
	}

	s.units[name] = u
	s.names = append(s.names, name)

	return nil
}

// Lookup returns the unit declared under the name.
func (s *System) Lookup(name string) (unit.Unit, bool) {
	u, ok := s.units[name]
	return u, ok
}

// Names returns every declared unit name in sorted order.
func (s *System) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	sort.Strings(out)

	return out
}

// Converter returns the converter between two declared units.
func (s *System) Converter(from, to string) (unit.Converter, error) {
	in, ok := s.units[from]
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", from)
	}

	out, ok := s.units[to]
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", to)
	}

	conv, err := unit.ConverterTo(in, out)
	if err != nil {
		return nil, fmt.Errorf("%s to %s: %w", from, to, err)
	}

	return conv, nil
}
