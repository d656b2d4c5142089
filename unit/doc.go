// Package unit implements the unit algebra: canonical units built from
// registered base units, affine (scaled/offset) units over them, and
// logarithmic units, together with the cross-kind operations Compare,
// Convertible, Mul, Div, Pow, and converter construction.
//
// Units are immutable once constructed. The set of concrete unit types
// is closed; cross-kind behavior lives in one exhaustive dispatch
// function per operation rather than in per-type methods.
package unit
