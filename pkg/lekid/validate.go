package lekid

import (
	"math"

	"github.com/edp1096/lekidtools/internal/consts"
	"github.com/edp1096/lekidtools/internal/errors"
)

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.Wrapf(errors.ErrInvalidParameter, "%s must be positive and finite, got %g", name, v)
	}
	return nil
}

// CheckConductivity reports whether the Mattis-Bardeen ratios are defined for
// the given frequency and temperatures.
func CheckConductivity(frequency, actualTemp, criticalTemp float64) error {
	if err := positive("frequency", frequency); err != nil {
		return err
	}
	if err := positive("actual temperature", actualTemp); err != nil {
		return err
	}
	if err := positive("critical temperature", criticalTemp); err != nil {
		return err
	}
	if actualTemp >= criticalTemp {
		err := errors.Wrapf(errors.ErrInvalidParameter,
			"actual temperature %g K is not below critical temperature %g K", actualTemp, criticalTemp)
		return errors.WithHint(err, "the film is not superconducting at this temperature")
	}
	return nil
}

// InMattisBardeenRegime reports whether the Bessel approximation used by
// Sig1OverSigN and Sig2OverSigN holds at actualTemp.
func InMattisBardeenRegime(actualTemp float64) bool {
	return actualTemp <= consts.MB_LIMIT
}

// CheckGeometry validates a meander for NoOfSquares.
func CheckGeometry(meanderLength, meanderWidth float64) error {
	if err := positive("meander width", meanderWidth); err != nil {
		return err
	}
	if err := positive("meander length", meanderLength); err != nil {
		return err
	}
	if meanderLength < meanderWidth {
		err := errors.Wrapf(errors.ErrInvalidParameter,
			"meander length %g is shorter than its width %g", meanderLength, meanderWidth)
		return errors.WithHint(err, "length and width may be swapped")
	}
	return nil
}

// CheckFrequencyPair validates the frequencies used for geometric inductance
// extraction.
func CheckFrequencyPair(f0, fPrime float64) error {
	if err := positive("f_0", f0); err != nil {
		return err
	}
	if err := positive("f_prime", fPrime); err != nil {
		return err
	}
	if f0 == fPrime {
		err := errors.Wrapf(errors.ErrDegenerate, "f_prime equals f_0 (%g Hz)", f0)
		return errors.WithHint(err, "the two measurements must come from resonators with and without kinetic inductance")
	}
	return nil
}

// CheckInductance validates a total inductance used as a divisor.
func CheckInductance(lTot float64) error {
	if lTot == 0 {
		return errors.Wrap(errors.ErrDegenerate, "total inductance is zero")
	}
	return positive("total inductance", lTot)
}

// CheckCoupling validates the inputs of CRAndCC.
func CheckCoupling(f0, lTot, qc, z0 float64) error {
	if err := positive("f0", f0); err != nil {
		return err
	}
	if err := CheckInductance(lTot); err != nil {
		return err
	}
	if err := positive("QC", qc); err != nil {
		return err
	}
	return positive("Z0", z0)
}
