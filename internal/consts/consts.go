package consts

import (
	"math"

	"gonum.org/v1/gonum/unit/constant"
)

const (
	BOLTZMANN = float64(constant.Boltzmann) // Boltzmann constant (J/K)
	PLANCK    = float64(constant.Planck)    // Planck constant (J s)
	HBAR      = PLANCK / (2 * math.Pi)      // Reduced Planck constant (J s)
	BCS_GAP   = 3.5                         // 2Δ/kBTc, weak-coupling BCS
	MB_LIMIT  = 0.3                         // Upper temperature of the Bessel approximation (K)
)
