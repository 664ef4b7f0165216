package util

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

var prefixes = []struct {
	factor float64
	symbol string
}{
	{unit.Tera, "T"},
	{unit.Giga, "G"},
	{unit.Mega, "M"},
	{unit.Kilo, "k"},
	{1, ""},
	{unit.Milli, "m"},
	{unit.Micro, "u"},
	{unit.Nano, "n"},
	{unit.Pico, "p"},
	{unit.Femto, "f"},
	{unit.Atto, "a"},
}

// FormatValueFactor prints value with the largest SI prefix that keeps the
// mantissa at or above one, e.g. 1.2e-13 F -> "120.000 fF".
func FormatValueFactor(value float64, unitName string) string {
	absValue := math.Abs(value)
	if absValue == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%g %s", value, unitName)
	}
	for _, p := range prefixes {
		if absValue >= p.factor {
			return fmt.Sprintf("%.3f %s%s", value/p.factor, p.symbol, unitName)
		}
	}
	return fmt.Sprintf("%.3e %s", value, unitName)
}

func FormatFrequency(freq float64) string {
	switch {
	case freq >= unit.Giga:
		return fmt.Sprintf("%10.6f GHz", freq/unit.Giga)
	case freq >= unit.Mega:
		return fmt.Sprintf("%10.6f MHz", freq/unit.Mega)
	case freq >= unit.Kilo:
		return fmt.Sprintf("%10.6f kHz", freq/unit.Kilo)
	default:
		return fmt.Sprintf("%10.6f Hz ", freq)
	}
}

func FormatInductance(l unit.Inductance) string {
	return FormatValueFactor(float64(l), "H")
}

func FormatCapacitance(c unit.Capacitance) string {
	return FormatValueFactor(float64(c), "F")
}

func FormatResistance(r unit.Resistance) string {
	return FormatValueFactor(float64(r), "Ohm")
}

func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

// FormatDecibel prints a linear magnitude in dB.
func FormatDecibel(value float64) string {
	return fmt.Sprintf("%7.2f dB", 20*math.Log10(value))
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // "  90.0"
}
