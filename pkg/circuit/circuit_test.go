package circuit

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/lekidtools/pkg/device"
	"github.com/edp1096/lekidtools/pkg/netlist"
)

const divider = `* divider
V1 in 0 AC 2
R1 in out 30
R2 out gnd 10
.ac lin 2 1k 2k
.end
`

func TestAssignNodeBranchMaps(t *testing.T) {
	data, err := netlist.Parse(divider)
	require.NoError(t, err)

	ckt := New(data.Title)
	require.NoError(t, ckt.AssignNodeBranchMaps(data.Elements))

	assert.Equal(t, map[string]int{"in": 1, "out": 2}, ckt.GetNodeMap())
	assert.Equal(t, map[string]int{"V1": 3}, ckt.GetBranchMap())
	assert.Equal(t, 2, ckt.GetNumNodes())
}

func TestAssignNodeBranchMaps_GroundOnly(t *testing.T) {
	ckt := New("empty")
	err := ckt.AssignNodeBranchMaps([]netlist.Element{{Type: "R", Name: "R1", Nodes: []string{"0", "gnd"}, Value: 1}})
	assert.Error(t, err)
}

func TestFromNetlist_Divider(t *testing.T) {
	data, err := netlist.Parse(divider)
	require.NoError(t, err)

	ckt, err := FromNetlist(data)
	require.NoError(t, err)
	defer ckt.Destroy()

	assert.Equal(t, "divider", ckt.Name())
	require.Len(t, ckt.GetDevices(), 3)

	v1, ok := ckt.GetDevice("V1")
	require.True(t, ok)
	assert.Equal(t, 3, v1.(device.BranchDevice).BranchIndex())
	assert.Equal(t, []int{2, 0}, mustDevice(t, ckt, "R2").GetNodes())

	require.NoError(t, ckt.Stamp(&device.CircuitStatus{Frequency: 1e3}))
	require.NoError(t, ckt.GetMatrix().Solve())

	out, err := ckt.NodeVoltage("out")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, real(out), 1e-12)
	assert.InDelta(t, 0, imag(out), 1e-12)

	sol := ckt.GetSolution()
	assert.InDelta(t, 2, cmplx.Abs(sol["V(in)"]), 1e-12)
	// Source current flows into the positive node
	assert.InDelta(t, 0.05, cmplx.Abs(sol["I(V1)"]), 1e-12)

	gnd, err := ckt.NodeVoltage("0")
	require.NoError(t, err)
	assert.Equal(t, complex128(0), gnd)

	_, err = ckt.NodeVoltage("nowhere")
	assert.Error(t, err)
}

func TestFromNetlist_RestampAtNewFrequency(t *testing.T) {
	data, err := netlist.Parse(`* rc
V1 in 0 AC 1
R1 in out 1k
C1 out 0 1u
.end
`)
	require.NoError(t, err)

	ckt, err := FromNetlist(data)
	require.NoError(t, err)
	defer ckt.Destroy()

	// Corner at 1/(2πRC) ≈ 159.15 Hz
	for _, tc := range []struct {
		freq float64
		want float64
	}{
		{1, 0.99998},
		{159.15494309189535, 0.7071067811865476},
	} {
		require.NoError(t, ckt.Stamp(&device.CircuitStatus{Frequency: tc.freq}))
		require.NoError(t, ckt.GetMatrix().Solve())

		out, err := ckt.NodeVoltage("out")
		require.NoError(t, err)
		assert.InDelta(t, tc.want, cmplx.Abs(out), 1e-4, "f=%g", tc.freq)
	}
}

func mustDevice(t *testing.T, ckt *Circuit, name string) device.Device {
	t.Helper()
	dev, ok := ckt.GetDevice(name)
	require.True(t, ok, name)
	return dev
}

func TestFromNetlist_CurrentSource(t *testing.T) {
	data, err := netlist.Parse("* norton\nI1 0 a AC 2m\nR1 a 0 50\n")
	require.NoError(t, err)

	ckt, err := FromNetlist(data)
	require.NoError(t, err)
	defer ckt.Destroy()

	assert.Empty(t, ckt.GetBranchMap())
	require.NoError(t, ckt.Stamp(&device.CircuitStatus{Frequency: 1e6}))
	require.NoError(t, ckt.GetMatrix().Solve())

	// 2 mA into a through 50 ohm
	a, err := ckt.NodeVoltage("a")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, real(a), 1e-12)
}
