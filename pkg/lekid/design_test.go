package lekid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/lekidtools/internal/errors"
)

func aluminiumParams() Params {
	return Params{
		F0:            5e9,
		ActualTemp:    0.1,
		CriticalTemp:  1.2,
		LkPerSq:       1e-12,
		Lg:            10e-9,
		MeanderLength: 4e-3,
		MeanderWidth:  2e-6,
		QC:            2e4,
		Z0:            50,
	}
}

func TestNewDesign(t *testing.T) {
	p := aluminiumParams()

	d, err := NewDesign(p)
	require.NoError(t, err)

	assert.InEpsilon(t, 2000.0, d.Squares, 1e-12)
	assert.InEpsilon(t, 2e-9, d.Lk, 1e-12)
	assert.InEpsilon(t, 12e-9, d.LTot, 1e-12)
	assert.InEpsilon(t, 1/(d.LTot*math.Pow(2*math.Pi*p.F0, 2)), d.CTot, 1e-12)
	assert.InEpsilon(t, d.CTot, d.CR, 1e-12)
	assert.InEpsilon(t, p.F0, ResonantFrequency(d.LTot, d.CTot), 1e-12)

	assert.Equal(t, Sig1OverSigN(p.F0, p.ActualTemp, p.CriticalTemp), d.Sig1)
	assert.Equal(t, Sig2OverSigN(p.F0, p.ActualTemp, p.CriticalTemp), d.Sig2)
	assert.Equal(t, ResistancePerSqFromLkF0(p.LkPerSq, p.F0, p.ActualTemp, p.CriticalTemp), d.RPerSq)
	assert.InEpsilon(t, d.RPerSq*d.Squares, d.R, 1e-15)

	assert.InEpsilon(t, 1.0/6, d.KineticFraction(), 1e-12)
	assert.Less(t, d.LoadedFrequency(), p.F0)
	assert.Greater(t, d.InternalQ(), p.QC)
}

func TestNewDesign_LoadedFrequency(t *testing.T) {
	d, err := NewDesign(aluminiumParams())
	require.NoError(t, err)

	want := d.F0 / math.Sqrt(1+d.CC/d.CR)
	assert.InEpsilon(t, want, d.LoadedFrequency(), 1e-12)
}

func TestNewDesign_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		target error
	}{
		{"hot film", func(p *Params) { p.ActualTemp = 2 }, errors.ErrInvalidParameter},
		{"swapped geometry", func(p *Params) { p.MeanderLength, p.MeanderWidth = p.MeanderWidth, p.MeanderLength }, errors.ErrInvalidParameter},
		{"no inductance", func(p *Params) { p.LkPerSq, p.Lg = 0, 0 }, errors.ErrDegenerate},
		{"negative Lg", func(p *Params) { p.Lg = -1e-9 }, errors.ErrInvalidParameter},
		{"zero QC", func(p *Params) { p.QC = 0 }, errors.ErrInvalidParameter},
		{"zero Z0", func(p *Params) { p.Z0 = 0 }, errors.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := aluminiumParams()
			tt.mutate(&p)

			d, err := NewDesign(p)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}
