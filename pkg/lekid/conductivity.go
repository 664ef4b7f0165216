package lekid

import (
	"math"

	"github.com/edp1096/lekidtools/internal/consts"
	"github.com/edp1096/lekidtools/pkg/special"
)

// BandGapEnergy returns the BCS gap Δ = 0.5 * 3.5 * kB * Tc in joules.
func BandGapEnergy(criticalTemp float64) float64 {
	return 0.5 * (consts.BCS_GAP * consts.BOLTZMANN * criticalTemp)
}

// Sig1OverSigN returns σ1/σn, the dissipative part of the complex
// conductivity normalised to the normal state conductivity.
//
//	σ1/σn = (2Δ/ħω) exp(-Δ/kT) K0(ħω/2kT) 2 sinh(ħω/2kT)
//
// The thin-film approximation holds for temperatures up to about 300 mK.
func Sig1OverSigN(frequency, actualTemp, criticalTemp float64) float64 {
	omega := 2 * math.Pi * frequency
	kT := consts.BOLTZMANN * actualTemp
	gap := BandGapEnergy(criticalTemp)

	hw := consts.HBAR * omega
	x := hw / (2 * kT)

	// K0(x) * 2sinh(x) == K0e(x) * (1 - exp(-2x))
	besselSinh := special.BesselK0e(x) * -math.Expm1(-2*x)

	return (2 * gap / hw) * math.Exp(-gap/kT) * besselSinh
}

// Sig2OverSigN returns σ2/σn, the reactive part of the complex conductivity
// normalised to the normal state conductivity.
//
//	σ2/σn = (πΔ/ħω) [1 - 2 exp(-Δ/kT) exp(-ħω/2kT) I0(ħω/2kT)]
//
// The thin-film approximation holds for temperatures up to about 300 mK.
func Sig2OverSigN(frequency, actualTemp, criticalTemp float64) float64 {
	omega := 2 * math.Pi * frequency
	kT := consts.BOLTZMANN * actualTemp
	gap := BandGapEnergy(criticalTemp)

	hw := consts.HBAR * omega
	x := hw / (2 * kT)

	// exp(-x) * I0(x); the correction factor is exactly 1 for x >= 0
	expBessel := special.BesselI0e(x) * math.Exp(math.Abs(x)-x)

	return (math.Pi * gap / hw) * (1 - 2*math.Exp(-gap/kT)*expBessel)
}

// Sig2OverSigNZeroTemp is the T -> 0 limit of Sig2OverSigN, πΔ/ħω.
func Sig2OverSigNZeroTemp(frequency, criticalTemp float64) float64 {
	return math.Pi * BandGapEnergy(criticalTemp) / (consts.HBAR * 2 * math.Pi * frequency)
}

// ResistancePerSqFromLkF0 returns R = Lk ω0 (σ1/σn)/(σ2/σn). With Lk in
// henry per square the result is the surface resistance in ohm per square.
func ResistancePerSqFromLkF0(lk, f0, actualTemp, criticalTemp float64) float64 {
	omega := 2 * math.Pi * f0

	sig1 := Sig1OverSigN(f0, actualTemp, criticalTemp)
	sig2 := Sig2OverSigN(f0, actualTemp, criticalTemp)

	return lk * omega * (sig1 / sig2)
}
