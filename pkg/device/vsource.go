package device

import (
	"math"
	"math/cmplx"

	"github.com/edp1096/lekidtools/pkg/matrix"
)

// VoltageSource is an AC source of fixed magnitude and phase (degrees).
type VoltageSource struct {
	BaseDevice
	acMag     float64
	acPhase   float64
	branchIdx int
}

var _ BranchDevice = (*VoltageSource)(nil)

func NewACVoltageSource(name string, nodeNames []string, magnitude, phase float64) *VoltageSource {
	return &VoltageSource{
		BaseDevice: newBaseDevice(name, nodeNames, magnitude),
		acMag:      magnitude,
		acPhase:    phase,
	}
}

func (v *VoltageSource) GetType() string { return "V" }

// Phasor returns the complex source voltage.
func (v *VoltageSource) Phasor() complex128 {
	return cmplx.Rect(v.acMag, v.acPhase*math.Pi/180.0)
}

func (v *VoltageSource) Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error {
	n1, n2, err := twoNodes(&v.BaseDevice)
	if err != nil {
		return err
	}
	bIdx := v.branchIdx

	// v1 - v2 = V
	if n1 != 0 {
		matrix.AddComplexElement(bIdx, n1, 1.0, 0.0)
		matrix.AddComplexElement(n1, bIdx, 1.0, 0.0)
	}
	if n2 != 0 {
		matrix.AddComplexElement(bIdx, n2, -1.0, 0.0)
		matrix.AddComplexElement(n2, bIdx, -1.0, 0.0)
	}

	phasor := v.Phasor()
	matrix.AddComplexRHS(bIdx, real(phasor), imag(phasor))
	return nil
}

// BranchIndex getter
func (v *VoltageSource) BranchIndex() int {
	return v.branchIdx
}

// BranchIndex setter
func (v *VoltageSource) SetBranchIndex(idx int) {
	v.branchIdx = idx
}
