package lekid

import "math"

// LgFromFreqsAndLk returns the geometric inductance of a LEKID from its
// resonant frequency f0 with kinetic inductance lk and the frequency fPrime
// of the same resonator without kinetic inductance.
//
// Equal frequencies give a zero denominator and an infinite or NaN result.
func LgFromFreqsAndLk(f0, fPrime, lk float64) float64 {
	denom := math.Pow(fPrime/f0, 2) - 1
	return lk / denom
}

// LgFromFreqsAndLkPerSq is LgFromFreqsAndLk with the kinetic inductance given
// per square of the inductive meander.
func LgFromFreqsAndLkPerSq(f0, fPrime, lkPerSq, inductiveMeanderLength, inductiveMeanderWidth float64) float64 {
	squares := NoOfSquares(inductiveMeanderLength, inductiveMeanderWidth)
	lk := squares * lkPerSq

	return LgFromFreqsAndLk(f0, fPrime, lk)
}
