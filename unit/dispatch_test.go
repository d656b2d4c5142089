package unit

import (
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindBase, want: "base"},
		{kind: KindCanonical, want: "canonical"},
		{kind: KindAffine, want: "affine"},
		{kind: KindRefLog, want: "referenced-log"},
		{kind: KindUnrefLog, want: "unreferenced-log"},
		{kind: KindTotal, want: "unknown"},
		{kind: Kind(-1), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestCompareCrossKindPrecedence(t *testing.T) {
	f := newFixture(t)
	meter := f.meter.Unit()

	affine := mustAffine(t, meter, 2, 0)
	refLog, err := NewRefLog(meter, LogTen)
	require.NoError(t, err)
	unrefLog, err := NewUnrefLog(LogTen, f.meter.Dimensionality())
	require.NoError(t, err)

	// Canonical < Affine < RefLog < UnrefLog, whatever the contents.
	ordered := []Unit{meter, affine, refLog, unrefLog}
	for i := range ordered {
		for j := range ordered {
			want := compareInt(i, j)
			assert.Equalf(t, want, Compare(ordered[i], ordered[j]),
				"Compare(%s, %s)", spew.Sdump(ordered[i]), spew.Sdump(ordered[j]))
		}
	}
}

func TestCompareWithinKind(t *testing.T) {
	f := newFixture(t)
	meter := f.meter.Unit()
	second := f.second.Unit()

	t.Run("affine by core then slope then intercept", func(t *testing.T) {
		assert.Equal(t, -1, Compare(mustAffine(t, meter, 2, 0), mustAffine(t, second, 2, 0)))
		assert.Equal(t, -1, Compare(mustAffine(t, meter, 2, 0), mustAffine(t, meter, 3, 0)))
		assert.Equal(t, -1, Compare(mustAffine(t, meter, 2, 1), mustAffine(t, meter, 2, 2)))
		assert.Equal(t, 0, Compare(mustAffine(t, meter, 2, 1), mustAffine(t, meter, 2, 1)))
	})

	t.Run("reflog by reference then base", func(t *testing.T) {
		lbMeter, err := NewRefLog(meter, LogTwo)
		require.NoError(t, err)
		lgMeter, err := NewRefLog(meter, LogTen)
		require.NoError(t, err)
		lbSecond, err := NewRefLog(second, LogTwo)
		require.NoError(t, err)

		assert.Equal(t, -1, Compare(lbMeter, lbSecond))
		assert.Equal(t, -1, Compare(lbMeter, lgMeter))
		assert.Equal(t, 0, Compare(lgMeter, lgMeter))
	})

	t.Run("unreflog by base then dimensionality", func(t *testing.T) {
		lbLength, err := NewUnrefLog(LogTwo, f.meter.Dimensionality())
		require.NoError(t, err)
		lgLength, err := NewUnrefLog(LogTen, f.meter.Dimensionality())
		require.NoError(t, err)
		lbTime, err := NewUnrefLog(LogTwo, f.second.Dimensionality())
		require.NoError(t, err)

		assert.Equal(t, -1, Compare(lbLength, lgLength))
		assert.Equal(t, -1, Compare(lbLength, lbTime))
		assert.Equal(t, 0, Compare(lbTime, lbTime))
	})
}

func TestCompareIsTotalOrder(t *testing.T) {
	f := newFixture(t)
	meter := f.meter.Unit()
	second := f.second.Unit()

	refLog, err := NewRefLog(meter, LogTen)
	require.NoError(t, err)
	unrefLog, err := NewUnrefLog(LogTwo, f.second.Dimensionality())
	require.NoError(t, err)

	units := []Unit{
		mustAffine(t, meter, 2, 1),
		unrefLog,
		mustDiv(t, meter, second),
		refLog,
		second,
		meter,
		One(),
	}

	sort.Slice(units, func(i, j int) bool { return Compare(units[i], units[j]) < 0 })

	for i := 0; i < len(units)-1; i++ {
		assert.Equal(t, -1, Compare(units[i], units[i+1]))
		assert.Equal(t, 1, Compare(units[i+1], units[i]))
	}

	for _, u := range units {
		assert.True(t, Equal(u, u))
	}
}

func TestConvertibleMatchesConverterAvailability(t *testing.T) {
	f := newFixture(t)
	meter := f.meter.Unit()
	second := f.second.Unit()

	refLogMeter, err := NewRefLog(meter, LogTen)
	require.NoError(t, err)
	refLogSecond, err := NewRefLog(second, LogTwo)
	require.NoError(t, err)
	unrefLength, err := NewUnrefLog(LogTen, f.meter.Dimensionality())
	require.NoError(t, err)
	unrefTime, err := NewUnrefLog(LogE, f.second.Dimensionality())
	require.NoError(t, err)

	units := []Unit{
		One(),
		meter,
		second,
		mustDiv(t, meter, second),
		mustAffine(t, meter, 0.001, 0),
		mustAffine(t, f.kelvin.Unit(), 1, -273.15),
		refLogMeter,
		refLogSecond,
		mustAffine(t, refLogMeter, 2, 0),
		unrefLength,
		unrefTime,
		mustAffine(t, unrefLength, 10, 0),
	}

	// A converter exists exactly when the units are convertible,
	// whichever kinds are paired.
	for _, a := range units {
		for _, b := range units {
			_, err := ConverterTo(a, b)
			assert.Equalf(t, Convertible(a, b), err == nil,
				"convertibility of %q to %q disagrees with converter availability", a, b)
		}
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	f := newFixture(t)
	meter := f.meter.Unit()

	a := mustAffine(t, meter, 2, 1)
	b := mustAffine(t, f.meter.Unit(), 2, 1)
	assert.True(t, Equal(a, b))
	assert.Equal(t, a.Hash(), b.Hash())

	lg1, err := NewRefLog(meter, LogTen)
	require.NoError(t, err)
	lg2, err := NewRefLog(meter, LogTen)
	require.NoError(t, err)
	assert.Equal(t, lg1.Hash(), lg2.Hash())

	assert.NotEqual(t, a.Hash(), mustAffine(t, meter, 2, 2).Hash())
}
