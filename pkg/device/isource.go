package device

import (
	"math"
	"math/cmplx"

	"github.com/edp1096/lekidtools/pkg/matrix"
)

// CurrentSource is an AC source of fixed magnitude and phase (degrees).
// Positive current flows from the first node through the source to the
// second.
type CurrentSource struct {
	BaseDevice
	acMag   float64
	acPhase float64
}

func NewACCurrentSource(name string, nodeNames []string, magnitude, phase float64) *CurrentSource {
	return &CurrentSource{
		BaseDevice: newBaseDevice(name, nodeNames, magnitude),
		acMag:      magnitude,
		acPhase:    phase,
	}
}

func (i *CurrentSource) GetType() string { return "I" }

// Phasor returns the complex source current.
func (i *CurrentSource) Phasor() complex128 {
	return cmplx.Rect(i.acMag, i.acPhase*math.Pi/180.0)
}

func (i *CurrentSource) Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error {
	n1, n2, err := twoNodes(&i.BaseDevice)
	if err != nil {
		return err
	}

	current := i.Phasor()

	// Current leaves n1 and enters n2
	if n1 != 0 {
		matrix.AddComplexRHS(n1, -real(current), -imag(current))
	}
	if n2 != 0 {
		matrix.AddComplexRHS(n2, real(current), imag(current))
	}

	return nil
}
