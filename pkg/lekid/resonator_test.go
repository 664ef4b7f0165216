package lekid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoOfSquares(t *testing.T) {
	assert.Equal(t, 5.0, NoOfSquares(10, 2))
	assert.Equal(t, 1.0, NoOfSquares(3, 3))

	for _, lw := range [][2]float64{{1e-3, 2e-6}, {7, 3}, {0.5, 0.25}} {
		assert.Equal(t, lw[0]/lw[1], NoOfSquares(lw[0], lw[1]))
	}

	assert.True(t, math.IsInf(NoOfSquares(10, 0), 1))
}

func TestCTotLTot_InvertsResonance(t *testing.T) {
	tests := []struct {
		name    string
		f0      float64
		lkPerSq float64
		lg      float64
		length  float64
		width   float64
	}{
		{"aluminium 5GHz", 5e9, 1e-12, 10e-9, 4e-3, 2e-6},
		{"titanium nitride 2GHz", 2e9, 20e-12, 5e-9, 1e-3, 4e-6},
		{"single square", 1e9, 1e-9, 1e-9, 1, 1},
		{"geometric only", 7e9, 0, 3e-9, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cTot, lTot := CTotLTot(tt.f0, tt.lkPerSq, tt.lg, tt.length, tt.width)

			assert.InEpsilon(t, tt.lg+tt.lkPerSq*tt.length/tt.width, lTot, 1e-15)
			assert.Greater(t, cTot, 0.0)

			omega2 := 1 / (cTot * lTot)
			assert.InEpsilon(t, math.Pow(2*math.Pi*tt.f0, 2), omega2, 1e-12)
			assert.InEpsilon(t, tt.f0, ResonantFrequency(lTot, cTot), 1e-12)
		})
	}
}

func TestCTotLTot_ZeroInductance(t *testing.T) {
	cTot, lTot := CTotLTot(5e9, 0, 0, 10, 2)
	assert.Equal(t, 0.0, lTot)
	assert.True(t, math.IsInf(cTot, 1))
}

func TestCRAndCC(t *testing.T) {
	f0, lTot, qc, z0 := 5e9, 10e-9, 1e4, 50.0
	omega0 := 2 * math.Pi * f0

	cr, cc := CRAndCC(f0, lTot, qc, z0)

	assert.InEpsilon(t, 1/(lTot*omega0*omega0), cr, 1e-12)
	assert.InEpsilon(t, math.Sqrt(2/(lTot*z0*qc*omega0*omega0*omega0)), cc, 1e-12)

	// CR is the total capacitance for the same inductance
	cTot, _ := CTotLTot(f0, 0, lTot, 1, 1)
	assert.InEpsilon(t, cTot, cr, 1e-12)

	// Roughly 0.1 pF and 3.6 fF
	assert.InDelta(t, 1.013e-13, cr, 1e-16)
	assert.InDelta(t, 3.59e-15, cc, 1e-17)
}

func TestCRAndCC_NegativeRadicand(t *testing.T) {
	_, cc := CRAndCC(5e9, 10e-9, -1e4, 50)
	assert.True(t, math.IsNaN(cc))

	_, cc = CRAndCC(5e9, 10e-9, 1e4, -50)
	assert.True(t, math.IsNaN(cc))
}

func TestResonantFrequency(t *testing.T) {
	// 1 H and 1 F resonate at 1/2π Hz
	assert.InEpsilon(t, 1/(2*math.Pi), ResonantFrequency(1, 1), 1e-15)
	assert.InEpsilon(t, 5e9, ResonantFrequency(10e-9, 1/(10e-9*math.Pow(2*math.Pi*5e9, 2))), 1e-12)
}
