package device

import (
	"math"

	"github.com/edp1096/lekidtools/pkg/matrix"
)

type Capacitor struct {
	BaseDevice
}

func NewCapacitor(name string, nodeNames []string, value float64) *Capacitor {
	return &Capacitor{BaseDevice: newBaseDevice(name, nodeNames, value)}
}

func (c *Capacitor) GetType() string { return "C" }

func (c *Capacitor) Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error {
	n1, n2, err := twoNodes(&c.BaseDevice)
	if err != nil {
		return err
	}

	// Y = jωC
	stampAdmittance(matrix, n1, n2, complex(0, status.Omega()*c.Value))
	return nil
}

// Reactance returns -1/(ωC).
func (c *Capacitor) Reactance(frequency float64) float64 {
	return -1 / (2 * math.Pi * frequency * c.Value)
}
