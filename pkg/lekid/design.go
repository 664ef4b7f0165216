package lekid

import (
	"math"

	"github.com/edp1096/lekidtools/internal/errors"
)

// Params describes a LEKID to be designed.
type Params struct {
	F0            float64 // Resonant frequency (Hz)
	ActualTemp    float64 // Operating temperature (K)
	CriticalTemp  float64 // Film critical temperature (K)
	LkPerSq       float64 // Kinetic inductance per square (H)
	Lg            float64 // Geometric inductance (H)
	MeanderLength float64
	MeanderWidth  float64
	QC            float64 // Coupling quality factor
	Z0            float64 // Feedline impedance (ohm)
}

// Design holds the quantities derived from Params.
type Design struct {
	Params

	Squares float64
	Lk      float64 // Absolute kinetic inductance (H)
	LTot    float64
	CTot    float64
	CR      float64
	CC      float64
	Sig1    float64 // σ1/σn at F0
	Sig2    float64 // σ2/σn at F0
	RPerSq  float64 // Surface resistance (ohm/sq)
	R       float64 // Meander resistance (ohm)
}

// Validate checks every precondition of the formulas NewDesign composes.
func (p Params) Validate() error {
	if err := CheckConductivity(p.F0, p.ActualTemp, p.CriticalTemp); err != nil {
		return errors.Wrap(err, "conductivity")
	}
	if err := CheckGeometry(p.MeanderLength, p.MeanderWidth); err != nil {
		return errors.Wrap(err, "geometry")
	}
	if p.LkPerSq < 0 || p.Lg < 0 {
		return errors.Wrapf(errors.ErrInvalidParameter, "inductances must not be negative (Lk/sq=%g, Lg=%g)", p.LkPerSq, p.Lg)
	}
	lTot := p.Lg + p.LkPerSq*NoOfSquares(p.MeanderLength, p.MeanderWidth)
	if err := CheckCoupling(p.F0, lTot, p.QC, p.Z0); err != nil {
		return errors.Wrap(err, "coupling")
	}
	return nil
}

// NewDesign validates p and derives the reactances, conductivity ratios and
// resistance of the resonator.
func NewDesign(p Params) (*Design, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := &Design{Params: p}
	d.Squares = NoOfSquares(p.MeanderLength, p.MeanderWidth)
	d.Lk = p.LkPerSq * d.Squares
	d.CTot, d.LTot = CTotLTot(p.F0, p.LkPerSq, p.Lg, p.MeanderLength, p.MeanderWidth)
	d.CR, d.CC = CRAndCC(p.F0, d.LTot, p.QC, p.Z0)

	d.Sig1 = Sig1OverSigN(p.F0, p.ActualTemp, p.CriticalTemp)
	d.Sig2 = Sig2OverSigN(p.F0, p.ActualTemp, p.CriticalTemp)
	if d.Sig2 == 0 || math.IsNaN(d.Sig2) {
		return nil, errors.Wrapf(errors.ErrDegenerate, "σ2/σn evaluates to %g", d.Sig2)
	}

	d.RPerSq = ResistancePerSqFromLkF0(p.LkPerSq, p.F0, p.ActualTemp, p.CriticalTemp)
	d.R = d.RPerSq * d.Squares

	return d, nil
}

// KineticFraction returns Lk/L_tot.
func (d *Design) KineticFraction() float64 {
	return d.Lk / d.LTot
}

// LoadedFrequency is the resonance of L_tot with CR and CC in parallel, the
// frequency at which the feedline transmission dips.
func (d *Design) LoadedFrequency() float64 {
	return ResonantFrequency(d.LTot, d.CR+d.CC)
}

// InternalQ returns ωL_tot/R at F0.
func (d *Design) InternalQ() float64 {
	return 2 * math.Pi * d.F0 * d.LTot / d.R
}
