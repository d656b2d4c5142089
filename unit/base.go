package unit

import (
	"fmt"
	"hash/fnv"

	"unit-algebra/dim"
	"unit-algebra/internal/registry"
)

// Registry owns the base-unit name/symbol table. There is at most one
// live base unit per name and per symbol within a Registry.
type Registry struct {
	table registry.Table[*BaseInfo]
}

// NewRegistry returns an empty base-unit registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewBase creates and registers a base unit's metadata. The
// dimensionality must be a base dimensionality (a single dimension with
// exponent one).
func (r *Registry) NewBase(y dim.Dimensionality, name, symbol string) (*BaseInfo, error) {
	if !y.IsBase() {
		return nil, fmt.Errorf("%w: dimensionality %q of base unit %q is not a base dimensionality",
			ErrInvalid, y.String(), name)
	}

	b := &BaseInfo{dim: y, name: name, symbol: symbol, reg: r}

	if err := r.table.Register(name, symbol, b); err != nil {
		return nil, fmt.Errorf("base unit: %w", err)
	}

	return b, nil
}

// LookupName returns the base unit registered under the name.
func (r *Registry) LookupName(name string) (*BaseInfo, bool) {
	return r.table.LookupName(name)
}

// LookupSymbol returns the base unit registered under the symbol.
func (r *Registry) LookupSymbol(symbol string) (*BaseInfo, bool) {
	return r.table.LookupSymbol(symbol)
}

// Clear drops every registered base unit. Intended for tests.
func (r *Registry) Clear() {
	r.table.Clear()
}

// BaseInfo is the metadata of a base unit: its dimensionality, name,
// and symbol.
type BaseInfo struct {
	dim    dim.Dimensionality
	name   string
	symbol string
	reg    *Registry
}

// Name returns the base unit name (e.g. "meter").
func (b *BaseInfo) Name() string {
	return b.name
}

// Symbol returns the base unit symbol (e.g. "m").
func (b *BaseInfo) Symbol() string {
	return b.symbol
}

// Dimensionality returns the base dimensionality of the unit.
func (b *BaseInfo) Dimensionality() dim.Dimensionality {
	return b.dim
}

// String returns the base unit symbol.
func (b *BaseInfo) String() string {
	return b.symbol
}

// Compare orders base units by symbol, consonant with String.
func (b *BaseInfo) Compare(other *BaseInfo) int {
	switch {
	case b.symbol < other.symbol:
		return -1
	case b.symbol > other.symbol:
		return 1
	default:
		return 0
	}
}

// Hash returns a hash code for the base unit.
func (b *BaseInfo) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(b.symbol))

	return h.Sum64()
}

// Release frees the base unit's name and symbol for reuse. The base
// unit must not be used afterwards.
func (b *BaseInfo) Release() {
	b.reg.table.Unregister(b.name, b.symbol)
}

// Unit returns the canonical unit holding this base unit with exponent
// one.
func (b *BaseInfo) Unit() *Canonical {
	return baseUnit(b)
}
