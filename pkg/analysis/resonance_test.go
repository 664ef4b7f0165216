package analysis

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/lekidtools/internal/errors"
)

// notch is the ideal S21 of a shunt resonator at fr.
func notch(freqs []float64, fr, ql, qc float64) []complex128 {
	s21 := make([]complex128, len(freqs))
	for i, f := range freqs {
		x := (f - fr) / fr
		s21[i] = 1 - complex(ql/qc, 0)/complex(1, 2*ql*x)
	}
	return s21
}

func TestFindResonance_IdealNotch(t *testing.T) {
	freqs := floats.Span(make([]float64, 2001), 4.99e9, 5.01e9)
	s21 := notch(freqs, 5e9, 1e4, 2e4)

	r, err := FindResonance(freqs, s21)
	require.NoError(t, err)

	assert.Equal(t, 1000, r.DipIndex)
	assert.InDelta(t, 5e9, r.DipFrequency, 1e4)
	assert.InDelta(t, 0.5, r.DipDepth, 1e-9)
	assert.InDelta(t, 1, r.Baseline, 1e-3)
	assert.InEpsilon(t, 1e4, r.QL, 1e-2)
	assert.True(t, r.LinewidthOK(10))
}

func TestFindResonance_UnresolvedWidth(t *testing.T) {
	// Half-power points lie outside this narrow sweep
	freqs := floats.Span(make([]float64, 11), 4.99999e9, 5.00001e9)
	r, err := FindResonance(freqs, notch(freqs, 5e9, 1e4, 2e4))
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.QL)
	assert.False(t, r.LinewidthOK(1))
}

func TestLinewidthOK_LogGrid(t *testing.T) {
	// A decade sweep is ~5x coarser at 5 GHz than at its 1 GHz start
	freqs := floats.LogSpan(make([]float64, 2001), 1e9, 1e10)

	wide, err := FindResonance(freqs, notch(freqs, 5e9, 100, 200))
	require.NoError(t, err)
	assert.True(t, wide.LinewidthOK(3))

	narrow, err := FindResonance(freqs, notch(freqs, 5e9, 1000, 2000))
	require.NoError(t, err)
	require.Greater(t, narrow.QL, 0.0)
	firstStep := freqs[1] - freqs[0]
	require.Greater(t, narrow.DipFrequency/narrow.QL, 3*firstStep)
	assert.False(t, narrow.LinewidthOK(3))
}

func TestFindResonance_Errors(t *testing.T) {
	_, err := FindResonance([]float64{1, 2, 3}, []complex128{1, 1})
	assert.Error(t, err)

	_, err = FindResonance([]float64{1, 2}, []complex128{1, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidParameter))
}

func TestHalfPowerCrossing(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 2, 4, 2, 0}

	lo, ok := halfPowerCrossing(x, y, 2, -1, 2)
	require.True(t, ok)
	assert.Equal(t, 1.0, lo)

	hi, ok := halfPowerCrossing(x, y, 2, +1, 1)
	require.True(t, ok)
	assert.Equal(t, 3.5, hi)

	_, ok = halfPowerCrossing(x, []float64{4, 4, 4, 4, 4}, 2, +1, 2)
	assert.False(t, ok)
}

func TestNotchHelper(t *testing.T) {
	s := notch([]float64{5e9}, 5e9, 1e4, 4e4)
	assert.InDelta(t, 0.75, cmplx.Abs(s[0]), 1e-12)
}
