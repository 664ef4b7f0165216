package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/device"
)

// Resonance summarises the transmission dip of a notch resonator.
type Resonance struct {
	Frequencies  []float64
	S21          []complex128
	DipIndex     int
	DipFrequency float64
	DipDepth     float64 // |S21| at the dip
	Baseline     float64 // largest |S21| of the sweep
	QL           float64 // loaded Q, 0 if the half-power points fall outside the sweep
}

// S21 returns 2·V(node)/Vs for a line matched at both ends, where Vs is the
// phasor of the named source. It needs a completed sweep.
func (ac *ACAnalysis) S21(source, node string) ([]complex128, error) {
	dev, ok := ac.Circuit.GetDevice(source)
	if !ok {
		return nil, errors.Newf("unknown source %s", source)
	}
	vs, ok := dev.(*device.VoltageSource)
	if !ok {
		return nil, errors.Newf("%s is not a voltage source", source)
	}
	vsPhasor := vs.Phasor()
	if vsPhasor == 0 {
		return nil, errors.Wrapf(errors.ErrDegenerate, "source %s has zero amplitude", source)
	}

	voltages, ok := ac.Phasors("V(" + node + ")")
	if !ok {
		return nil, errors.Newf("no results for node %s", node)
	}

	s21 := make([]complex128, len(voltages))
	for i, v := range voltages {
		s21[i] = 2 * v / vsPhasor
	}
	return s21, nil
}

// FindResonance locates the |S21| minimum and estimates the loaded Q from
// the full width at half maximum of |1-S21|².
func FindResonance(freqs []float64, s21 []complex128) (*Resonance, error) {
	if len(freqs) != len(s21) {
		return nil, errors.Newf("frequency and S21 lengths differ: %d != %d", len(freqs), len(s21))
	}
	if len(freqs) < 3 {
		return nil, errors.Wrapf(errors.ErrInvalidParameter, "need at least 3 points, got %d", len(freqs))
	}

	mag := make([]float64, len(s21))
	notch := make([]float64, len(s21))
	for i, s := range s21 {
		mag[i] = cmplx.Abs(s)
		d := cmplx.Abs(1 - s)
		notch[i] = d * d
	}

	idx := floats.MinIdx(mag)
	r := &Resonance{
		Frequencies:  freqs,
		S21:          s21,
		DipIndex:     idx,
		DipFrequency: freqs[idx],
		DipDepth:     mag[idx],
		Baseline:     floats.Max(mag),
	}

	half := notch[idx] / 2
	lo, okLo := halfPowerCrossing(freqs, notch, idx, -1, half)
	hi, okHi := halfPowerCrossing(freqs, notch, idx, +1, half)
	if okLo && okHi && hi > lo {
		r.QL = r.DipFrequency / (hi - lo)
	}

	return r, nil
}

// halfPowerCrossing walks from idx in direction step until y drops to level
// and interpolates the crossing frequency.
func halfPowerCrossing(x, y []float64, idx, step int, level float64) (float64, bool) {
	for i := idx; i+step >= 0 && i+step < len(y); i += step {
		j := i + step
		if y[j] > level {
			continue
		}
		if y[i] == y[j] {
			return x[j], true
		}
		t := (y[i] - level) / (y[i] - y[j])
		return x[i] + t*(x[j]-x[i]), true
	}
	return math.NaN(), false
}

// LinewidthOK reports whether the sweep resolves the dip with at least n
// points inside the half-power width. The grid step is measured next to the
// dip.
func (r *Resonance) LinewidthOK(n int) bool {
	if r.QL == 0 || len(r.Frequencies) < 2 {
		return false
	}

	i := r.DipIndex
	step := 0.0
	if i > 0 {
		step = math.Abs(r.Frequencies[i] - r.Frequencies[i-1])
	}
	if i+1 < len(r.Frequencies) {
		step = math.Max(step, math.Abs(r.Frequencies[i+1]-r.Frequencies[i]))
	}
	return r.DipFrequency/r.QL >= float64(n)*step
}
