package lekid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/lekidtools/internal/errors"
)

func TestCheckConductivity(t *testing.T) {
	tests := []struct {
		name    string
		f       float64
		temp    float64
		tc      float64
		wantErr bool
	}{
		{"valid", 5e9, 0.1, 1.2, false},
		{"zero frequency", 0, 0.1, 1.2, true},
		{"negative frequency", -5e9, 0.1, 1.2, true},
		{"zero temperature", 5e9, 0, 1.2, true},
		{"above Tc", 5e9, 1.5, 1.2, true},
		{"at Tc", 5e9, 1.2, 1.2, true},
		{"NaN temperature", 5e9, math.NaN(), 1.2, true},
		{"infinite frequency", math.Inf(1), 0.1, 1.2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConductivity(tt.f, tt.temp, tt.tc)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidParameter))
		})
	}
}

func TestCheckConductivity_HintAboveTc(t *testing.T) {
	err := CheckConductivity(5e9, 2, 1.2)
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "not superconducting")
}

func TestInMattisBardeenRegime(t *testing.T) {
	assert.True(t, InMattisBardeenRegime(0.1))
	assert.True(t, InMattisBardeenRegime(0.3))
	assert.False(t, InMattisBardeenRegime(0.31))
}

func TestCheckGeometry(t *testing.T) {
	assert.NoError(t, CheckGeometry(10, 2))
	assert.NoError(t, CheckGeometry(2, 2))

	err := CheckGeometry(10, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "meander width")

	err = CheckGeometry(2, 10)
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "swapped")
}

func TestCheckFrequencyPair(t *testing.T) {
	assert.NoError(t, CheckFrequencyPair(5e9, 5.5e9))

	err := CheckFrequencyPair(5e9, 5e9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDegenerate))

	err = CheckFrequencyPair(0, 5e9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidParameter))
}

func TestCheckCoupling(t *testing.T) {
	assert.NoError(t, CheckCoupling(5e9, 10e-9, 1e4, 50))

	assert.True(t, errors.Is(CheckCoupling(5e9, 0, 1e4, 50), errors.ErrDegenerate))
	assert.True(t, errors.Is(CheckCoupling(5e9, -1e-9, 1e4, 50), errors.ErrInvalidParameter))
	assert.True(t, errors.Is(CheckCoupling(5e9, 10e-9, -1e4, 50), errors.ErrInvalidParameter))
	assert.True(t, errors.Is(CheckCoupling(5e9, 10e-9, 1e4, 0), errors.ErrInvalidParameter))
}
