package circuit

import (
	"fmt"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/device"
	"github.com/edp1096/lekidtools/pkg/matrix"
	"github.com/edp1096/lekidtools/pkg/netlist"
)

type Circuit struct {
	name      string
	nodeMap   map[string]int
	branchMap map[string]int
	devices   []device.Device
	numNodes  int
	matrix    *matrix.CircuitMatrix
	Status    *device.CircuitStatus
}

func New(name string) *Circuit {
	return &Circuit{
		name:      name,
		nodeMap:   make(map[string]int),
		branchMap: make(map[string]int),
		devices:   make([]device.Device, 0),
		Status:    &device.CircuitStatus{},
	}
}

// FromNetlist builds a circuit with its matrix and stamped devices.
func FromNetlist(data *netlist.NetlistData) (*Circuit, error) {
	ckt := New(data.Title)
	if err := ckt.AssignNodeBranchMaps(data.Elements); err != nil {
		return nil, err
	}
	if err := ckt.CreateMatrix(); err != nil {
		return nil, err
	}
	if err := ckt.SetupDevices(data.Elements); err != nil {
		ckt.Destroy()
		return nil, err
	}
	return ckt, nil
}

func isGround(nodeName string) bool {
	return nodeName == "0" || nodeName == "gnd"
}

func (c *Circuit) AssignNodeBranchMaps(elements []netlist.Element) error {
	for _, elem := range elements {
		for _, nodeName := range elem.Nodes {
			if isGround(nodeName) {
				continue
			}
			if _, exists := c.nodeMap[nodeName]; !exists {
				idx := len(c.nodeMap) + 1
				c.nodeMap[nodeName] = idx
			}
		}
	}
	if len(c.nodeMap) == 0 {
		return errors.Wrap(errors.ErrInvalidParameter, "circuit has no non-ground nodes")
	}

	branchStart := len(c.nodeMap) + 1
	for _, elem := range elements {
		if elem.Type == "V" {
			if _, exists := c.branchMap[elem.Name]; exists {
				return errors.Newf("duplicate voltage source %s", elem.Name)
			}
			c.branchMap[elem.Name] = branchStart
			branchStart++
		}
	}

	c.numNodes = len(c.nodeMap)
	return nil
}

func (c *Circuit) CreateMatrix() error {
	matrixSize := len(c.nodeMap) + len(c.branchMap)
	mat, err := matrix.NewMatrix(matrixSize)
	if err != nil {
		return err
	}
	c.matrix = mat
	return nil
}

func (c *Circuit) SetupDevices(elements []netlist.Element) error {
	if c.matrix == nil {
		return errors.New("matrix not created")
	}

	for _, elem := range elements {
		dev, err := netlist.CreateDevice(elem)
		if err != nil {
			return errors.Wrapf(err, "creating device %s", elem.Name)
		}

		// Node index
		nodeIndices := make([]int, len(elem.Nodes))
		for i, nodeName := range elem.Nodes {
			if isGround(nodeName) {
				nodeIndices[i] = 0
				continue
			}
			nodeIndices[i] = c.nodeMap[nodeName]
		}
		dev.SetNodes(nodeIndices)

		if b, ok := dev.(device.BranchDevice); ok {
			b.SetBranchIndex(c.branchMap[elem.Name])
		}

		c.devices = append(c.devices, dev)
	}

	// Fix the sparsity pattern before the first factorisation
	c.matrix.SetupElements()

	return nil
}

// Stamp clears the matrix and stamps every device at status.
func (c *Circuit) Stamp(status *device.CircuitStatus) error {
	c.Status = status
	c.matrix.Clear()

	for _, dev := range c.devices {
		err := dev.Stamp(c.matrix, status)
		if err != nil {
			return errors.Wrapf(err, "stamping device %s", dev.GetName())
		}
	}
	return nil
}

func (c *Circuit) GetMatrix() *matrix.CircuitMatrix {
	return c.matrix
}

func (c *Circuit) GetNodeMap() map[string]int {
	return c.nodeMap
}

func (c *Circuit) GetBranchMap() map[string]int {
	return c.branchMap
}

func (c *Circuit) GetDevices() []device.Device {
	return c.devices
}

// GetDevice looks a device up by name.
func (c *Circuit) GetDevice(name string) (device.Device, bool) {
	for _, dev := range c.devices {
		if dev.GetName() == name {
			return dev, true
		}
	}
	return nil, false
}

// NodeVoltage returns the solved phasor at a named node. Ground is 0.
func (c *Circuit) NodeVoltage(name string) (complex128, error) {
	if isGround(name) {
		return 0, nil
	}
	idx, ok := c.nodeMap[name]
	if !ok {
		return 0, errors.Newf("unknown node %s", name)
	}
	return c.matrix.GetComplexSolution(idx), nil
}

// GetSolution returns node voltages V(name) and source currents I(name)
// from the last solve.
func (c *Circuit) GetSolution() map[string]complex128 {
	solution := make(map[string]complex128)

	// Node voltage
	for name, idx := range c.nodeMap {
		solution[fmt.Sprintf("V(%s)", name)] = c.matrix.GetComplexSolution(idx)
	}

	// Branch current of voltage source
	for name, idx := range c.branchMap {
		solution[fmt.Sprintf("I(%s)", name)] = c.matrix.GetComplexSolution(idx)
	}

	return solution
}

func (c *Circuit) Destroy() {
	if c.matrix != nil {
		c.matrix.Destroy()
		c.matrix = nil
	}
}

func (c *Circuit) Name() string {
	return c.name
}

func (c *Circuit) GetNumNodes() int {
	return c.numNodes
}
