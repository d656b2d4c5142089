// Package registry provides the name/symbol uniqueness table shared by
// dimensions and base units. A Table hands out entries under both keys
// and guarantees that neither key is ever claimed twice.
package registry

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrEmptyName is returned when a registration carries an empty name.
	ErrEmptyName = errors.New("name is empty")
	// ErrEmptySymbol is returned when a registration carries an empty symbol.
	ErrEmptySymbol = errors.New("symbol is empty")
	// ErrNameInUse is returned when the name is already registered.
	ErrNameInUse = errors.New("name is already in use")
	// ErrSymbolInUse is returned when the symbol is already registered.
	ErrSymbolInUse = errors.New("symbol is already in use")
)

// Table is a mutex-guarded two-key table. The zero value is ready to
// use. All methods may be called concurrently.
type Table[T any] struct {
	mu       sync.Mutex
	byName   map[string]T
	bySymbol map[string]T
}

// Register claims both keys for the value. On any failure nothing is
// claimed.
func (t *Table[T]) Register(name, symbol string, value T) error {
	if name == "" {
		return ErrEmptyName
	}

	if symbol == "" {
		return ErrEmptySymbol
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.byName == nil {
		t.byName = map[string]T{}
		t.bySymbol = map[string]T{}
	}

	if _, ok := t.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrNameInUse, name)
	}

	if _, ok := t.bySymbol[symbol]; ok {
		return fmt.Errorf("%w: %q", ErrSymbolInUse, symbol)
	}

	t.byName[name] = value
	t.bySymbol[symbol] = value

	return nil
}

// LookupName returns the value registered under the name.
func (t *Table[T]) LookupName(name string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.byName[name]

	return v, ok
}

// LookupSymbol returns the value registered under the symbol.
func (t *Table[T]) LookupSymbol(symbol string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.bySymbol[symbol]

	return v, ok
}

// Unregister releases both keys. Unknown keys are ignored.
func (t *Table[T]) Unregister(name, symbol string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.byName, name)
	delete(t.bySymbol, symbol)
}

// Clear releases every entry.
func (t *Table[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.byName = nil
	t.bySymbol = nil
}

// Len returns the number of registered entries.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.byName)
}
