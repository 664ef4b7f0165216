package device

import (
	"math"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/matrix"
)

type Device interface {
	GetName() string
	GetType() string
	GetNodeNames() []string
	GetNodes() []int
	Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error
	GetValue() float64
	SetNodes(nodes []int)
}

type BaseDevice struct {
	Name      string
	Nodes     []int
	Value     float64
	NodeNames []string
}

// BranchDevice is a device carrying its own branch current unknown.
type BranchDevice interface {
	Device
	BranchIndex() int
	SetBranchIndex(idx int)
}

type CircuitStatus struct {
	Frequency float64 // AC frequency (Hz)
}

// Omega returns the angular frequency of the status.
func (s *CircuitStatus) Omega() float64 {
	return 2 * math.Pi * s.Frequency
}

func (d *BaseDevice) GetName() string {
	return d.Name
}

func (d *BaseDevice) GetNodes() []int {
	return d.Nodes
}

func (d *BaseDevice) GetNodeNames() []string {
	return d.NodeNames
}

func (d *BaseDevice) GetValue() float64 {
	return d.Value
}

func (d *BaseDevice) SetNodes(nodes []int) {
	d.Nodes = nodes
}

func newBaseDevice(name string, nodeNames []string, value float64) BaseDevice {
	return BaseDevice{
		Name:      name,
		Value:     value,
		NodeNames: nodeNames,
		Nodes:     make([]int, len(nodeNames)),
	}
}

// stampAdmittance adds y between n1 and n2. Node 0 is ground.
func stampAdmittance(m matrix.DeviceMatrix, n1, n2 int, y complex128) {
	g, b := real(y), imag(y)
	if n1 != 0 {
		m.AddComplexElement(n1, n1, g, b)
		if n2 != 0 {
			m.AddComplexElement(n1, n2, -g, -b)
		}
	}
	if n2 != 0 {
		m.AddComplexElement(n2, n2, g, b)
		if n1 != 0 {
			m.AddComplexElement(n2, n1, -g, -b)
		}
	}
}

func twoNodes(d *BaseDevice) (int, int, error) {
	if len(d.Nodes) != 2 {
		return 0, 0, errors.Newf("%s: requires exactly 2 nodes, got %d", d.Name, len(d.Nodes))
	}
	return d.Nodes[0], d.Nodes[1], nil
}
