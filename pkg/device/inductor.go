package device

import (
	"math"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/matrix"
)

type Inductor struct {
	BaseDevice
}

func NewInductor(name string, nodeNames []string, value float64) *Inductor {
	return &Inductor{BaseDevice: newBaseDevice(name, nodeNames, value)}
}

func (l *Inductor) GetType() string { return "L" }

func (l *Inductor) Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error {
	n1, n2, err := twoNodes(&l.BaseDevice)
	if err != nil {
		return err
	}

	omega := status.Omega()
	if omega == 0 || l.Value == 0 {
		return errors.Newf("inductor %s: admittance undefined at ω=%g, L=%g", l.Name, omega, l.Value)
	}

	// Y = 1/(jωL) = -j/(ωL)
	stampAdmittance(matrix, n1, n2, complex(0, -1/(omega*l.Value)))
	return nil
}

// Reactance returns ωL.
func (l *Inductor) Reactance(frequency float64) float64 {
	return 2 * math.Pi * frequency * l.Value
}
