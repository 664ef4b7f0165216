package lekid

import "math"

// CTotLTot returns the total capacitance and total inductance of a LEKID
// resonating at f0, where L_tot = Lg + Lk_per_sq * squares.
func CTotLTot(f0, lkPerSq, lg, meanderLength, meanderWidth float64) (cTot, lTot float64) {
	squares := NoOfSquares(meanderLength, meanderWidth)

	lTot = lg + lkPerSq*squares
	cTot = 1 / (math.Pow(2*math.Pi*f0, 2) * lTot)

	return cTot, lTot
}

// CRAndCC returns the resonator capacitance and the coupling capacitance of
// a LEKID from its total inductance, coupling quality factor QC and feedline
// impedance Z0.
func CRAndCC(f0, lTot, qc, z0 float64) (cr, cc float64) {
	omega0 := 2 * math.Pi * f0

	cc = math.Sqrt(2.0 / (lTot * z0 * qc * math.Pow(omega0, 3)))
	cr = 1 / (lTot * omega0 * omega0)

	return cr, cc
}

// ResonantFrequency returns 1/(2π√(LC)).
func ResonantFrequency(l, c float64) float64 {
	return 1 / (2 * math.Pi * math.Sqrt(l*c))
}
