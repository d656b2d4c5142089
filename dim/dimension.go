// Package dim implements physical dimensions (length, mass, time) and
// dimensionalities, the rational-exponent factor products over them
// (e.g. mass times length squared over time cubed, M·L^2·T^-3).
//
// Dimensions are created through a Registry, which enforces name and
// symbol uniqueness and hands out memoized base dimensionalities.
package dim

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"unit-algebra/exponent"
	"unit-algebra/internal/registry"
)

// ErrMismatchedIdentifiers is returned by Registry.Get when the name
// and symbol are registered but do not refer to the same dimension.
var ErrMismatchedIdentifiers = errors.New("name and symbol refer to different dimensions")

// Dimension is a physical dimension such as length or mass. There is at
// most one live Dimension per name and per symbol within a Registry.
type Dimension struct {
	name   string
	symbol string
	reg    *Registry
}

// Name returns the dimension name (e.g. "Length").
func (d *Dimension) Name() string {
	return d.name
}

// Symbol returns the dimension symbol (e.g. "L").
func (d *Dimension) Symbol() string {
	return d.symbol
}

// String returns the dimension symbol.
func (d *Dimension) String() string {
	return d.symbol
}

// Compare orders dimensions by symbol, consonant with String.
func (d *Dimension) Compare(other *Dimension) int {
	switch {
	case d.symbol < other.symbol:
		return -1
	case d.symbol > other.symbol:
		return 1
	default:
		return 0
	}
}

// Hash returns a hash code for the dimension.
func (d *Dimension) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(d.symbol))

	return h.Sum64()
}

// Release frees the dimension's name and symbol for reuse. The
// dimension must not be used afterwards.
func (d *Dimension) Release() {
	d.reg.release(d)
}

// Registry owns the dimension name/symbol table and the memoized base
// dimensionalities. Methods may be called concurrently.
type Registry struct {
	mu    sync.Mutex
	table registry.Table[*Dimension]
	bases map[*Dimension]Dimensionality
}

// NewRegistry returns an empty dimension registry.
func NewRegistry() *Registry {
	return &Registry{bases: map[*Dimension]Dimensionality{}}
}

// NewDimension creates and registers a dimension. Empty or already-used
// identifiers are rejected.
func (r *Registry) NewDimension(name, symbol string) (*Dimension, error) {
	d := &Dimension{name: name, symbol: symbol, reg: r}

	if err := r.table.Register(name, symbol, d); err != nil {
		return nil, fmt.Errorf("dimension: %w", err)
	}

	return d, nil
}

// Get returns the base dimensionality for the named dimension, creating
// and registering the dimension on first use. If either identifier is
// already registered, both must be, and they must refer to the same
// dimension.
func (r *Registry) Get(name, symbol string) (Dimensionality, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byName, nameOK := r.table.LookupName(name)
	bySymbol, symbolOK := r.table.LookupSymbol(symbol)

	if nameOK || symbolOK {
		if byName != bySymbol || !nameOK || !symbolOK {
			return Dimensionality{}, fmt.Errorf("%w: name %q, symbol %q",
				ErrMismatchedIdentifiers, name, symbol)
		}

		base, ok := r.bases[byName]
		if !ok {
			base = New(byName, exponent.Unity())
			r.bases[byName] = base
		}

		return base, nil
	}

	d := &Dimension{name: name, symbol: symbol, reg: r}
	if err := r.table.Register(name, symbol, d); err != nil {
		return Dimensionality{}, fmt.Errorf("dimension: %w", err)
	}

	base := New(d, exponent.Unity())
	r.bases[d] = base

	return base, nil
}

// Clear drops every dimension and memoized base dimensionality.
// Intended for tests.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table.Clear()
	r.bases = map[*Dimension]Dimensionality{}
}

func (r *Registry) release(d *Dimension) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table.Unregister(d.name, d.symbol)
	delete(r.bases, d)
}
