package exponent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		numer     int
		denom     int
		wantNumer int
		wantDenom int
	}{
		{name: "unity", numer: 1, denom: 1, wantNumer: 1, wantDenom: 1},
		{name: "already reduced", numer: 2, denom: 3, wantNumer: 2, wantDenom: 3},
		{name: "reducible", numer: 4, denom: 6, wantNumer: 2, wantDenom: 3},
		{name: "negative denominator moves sign", numer: 2, denom: -3, wantNumer: -2, wantDenom: 3},
		{name: "both negative", numer: -2, denom: -4, wantNumer: 1, wantDenom: 2},
		{name: "zero numerator normalizes to 0/1", numer: 0, denom: -7, wantNumer: 0, wantDenom: 1},
		{name: "integer multiple", numer: 6, denom: 3, wantNumer: 2, wantDenom: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.numer, tt.denom)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumer, e.Numer())
			assert.Equal(t, tt.wantDenom, e.Denom())
		})
	}
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := New(1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestHelpers(t *testing.T) {
	assert.True(t, Unity().IsOne())
	assert.False(t, Unity().IsZero())
	assert.True(t, Zero().IsZero())
	assert.False(t, Zero().IsOne())
	assert.Equal(t, 3, FromInt(3).Numer())
	assert.Equal(t, 1, FromInt(3).Denom())
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Exponent
		want string
	}{
		{name: "integers", a: FromInt(1), b: FromInt(2), want: "3"},
		{name: "fractions", a: mustNew(t, 1, 2), b: mustNew(t, 1, 3), want: "(5/6)"},
		{name: "cancellation to zero", a: mustNew(t, 2, 3), b: mustNew(t, -2, 3), want: "0"},
		{name: "reduction of result", a: mustNew(t, 1, 6), b: mustNew(t, 1, 3), want: "(1/2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Add(tt.b).String())
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Exponent
		want string
	}{
		{name: "integers", a: FromInt(2), b: FromInt(3), want: "6"},
		{name: "fraction times integer", a: mustNew(t, 2, 3), b: FromInt(3), want: "2"},
		{name: "fractions", a: mustNew(t, 2, 3), b: mustNew(t, 3, 4), want: "(1/2)"},
		{name: "by zero", a: mustNew(t, 5, 7), b: Zero(), want: "0"},
		{name: "sign", a: mustNew(t, -1, 2), b: mustNew(t, 1, -2), want: "(1/4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Mul(tt.b).String())
		})
	}
}

func TestNeg(t *testing.T) {
	assert.Equal(t, "-1", Unity().Neg().String())
	assert.Equal(t, "(2/3)", mustNew(t, -2, 3).Neg().String())
	assert.Equal(t, "0", Zero().Neg().String())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Exponent
		want int
	}{
		{name: "equal integers", a: FromInt(2), b: FromInt(2), want: 0},
		{name: "equal after reduction", a: mustNew(t, 2, 4), b: mustNew(t, 1, 2), want: 0},
		{name: "smaller positive", a: mustNew(t, 1, 2), b: mustNew(t, 2, 3), want: -1},
		{name: "larger positive", a: mustNew(t, 3, 4), b: mustNew(t, 2, 3), want: 1},
		{name: "positive before negative", a: FromInt(1), b: FromInt(-1), want: -1},
		{name: "negative after positive", a: mustNew(t, -2, 3), b: mustNew(t, 3, 4), want: 1},
		{name: "negatives by magnitude", a: mustNew(t, -2, 3), b: mustNew(t, -3, 4), want: -1},
		{name: "zero before negative", a: Zero(), b: FromInt(-1), want: -1},
		{name: "zero before positive", a: Zero(), b: FromInt(1), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestFloat64(t *testing.T) {
	assert.InDelta(t, 0.5, mustNew(t, 1, 2).Float64(), 1e-12)
	assert.InDelta(t, -1.5, mustNew(t, 3, -2).Float64(), 1e-12)
	assert.Zero(t, Zero().Float64())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		e    Exponent
		want string
	}{
		{name: "integer", e: FromInt(2), want: "2"},
		{name: "negative integer", e: FromInt(-3), want: "-3"},
		{name: "zero", e: Zero(), want: "0"},
		{name: "fraction", e: mustNew(t, 2, 3), want: "(2/3)"},
		{name: "negative fraction via denominator", e: mustNew(t, 2, -3), want: "(-2/3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.String())
		})
	}
}

func TestHash(t *testing.T) {
	a := mustNew(t, 2, 4)
	b := mustNew(t, 1, 2)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, Unity().Hash(), Zero().Hash())
}

func mustNew(t *testing.T, numer, denom int) Exponent {
	t.Helper()

	e, err := New(numer, denom)
	require.NoError(t, err)

	return e
}
