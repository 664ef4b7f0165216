package device

import (
	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/matrix"
)

type Resistor struct {
	BaseDevice
}

func NewResistor(name string, nodeNames []string, value float64) *Resistor {
	return &Resistor{BaseDevice: newBaseDevice(name, nodeNames, value)}
}

func (r *Resistor) GetType() string { return "R" }

func (r *Resistor) Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error {
	n1, n2, err := twoNodes(&r.BaseDevice)
	if err != nil {
		return err
	}
	if r.Value == 0 {
		return errors.Newf("resistor %s: zero resistance", r.Name)
	}

	// Y = 1/R
	stampAdmittance(matrix, n1, n2, complex(1/r.Value, 0))
	return nil
}
