package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
	"github.com/edp1096/lekidtools/pkg/circuit"
	"github.com/edp1096/lekidtools/pkg/netlist"
)

func TestGenerateFrequencyPoints(t *testing.T) {
	lin := NewAC(1e9, 2e9, 5, "lin")
	require.NoError(t, lin.generateFrequencyPoints())
	assert.Equal(t, []float64{1e9, 1.25e9, 1.5e9, 1.75e9, 2e9}, lin.frequencies)

	dec := NewAC(1e6, 1e9, 4, "DEC")
	require.NoError(t, dec.generateFrequencyPoints())
	want := []float64{1e6, 1e7, 1e8, 1e9}
	for i := range want {
		assert.InEpsilon(t, want[i], dec.frequencies[i], 1e-12)
	}

	oct := NewAC(1e3, 8e3, 4, "OCT")
	require.NoError(t, oct.generateFrequencyPoints())
	assert.InEpsilon(t, 2e3, oct.frequencies[1], 1e-12)
	assert.InEpsilon(t, 4e3, oct.frequencies[2], 1e-12)
}

func TestGenerateFrequencyPoints_Invalid(t *testing.T) {
	tests := []struct {
		name string
		ac   *ACAnalysis
		want error
	}{
		{"one point", NewAC(1, 2, 1, "LIN"), errors.ErrInvalidParameter},
		{"reversed", NewAC(2, 1, 10, "LIN"), errors.ErrInvalidParameter},
		{"zero start", NewAC(0, 1, 10, "DEC"), errors.ErrInvalidParameter},
		{"unknown", NewAC(1, 2, 10, "LOG"), errors.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ac.generateFrequencyPoints()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestStoreACResult(t *testing.T) {
	ba := NewBaseAnalysis()
	ba.StoreACResult(1e9, map[string]complex128{"V(a)": complex(0, 2)})
	ba.StoreACResult(2e9, map[string]complex128{"V(a)": complex(-1, 0)})

	results := ba.GetResults()
	assert.Equal(t, []float64{1e9, 2e9}, results["FREQ"])
	assert.Equal(t, []float64{2, 1}, results["V(a)_MAG"])
	assert.Equal(t, []float64{90, 180}, results["V(a)_PHASE"])

	phasors, ok := ba.Phasors("V(a)")
	require.True(t, ok)
	assert.Equal(t, []complex128{complex(0, 2), complex(-1, 0)}, phasors)

	_, ok = ba.Phasors("V(b)")
	assert.False(t, ok)
}

func TestACAnalysis_RCLowPass(t *testing.T) {
	data, err := netlist.Parse(`* rc
V1 in 0 AC 1
R1 in out 1k
C1 out 0 1u
.ac dec 5 1 100k
.end
`)
	require.NoError(t, err)

	ckt, err := circuit.FromNetlist(data)
	require.NoError(t, err)
	defer ckt.Destroy()

	ac, err := NewACFromNetlist(data)
	require.NoError(t, err)
	require.NoError(t, ac.Setup(ckt))
	require.NoError(t, ac.Execute())

	results := ac.GetResults()
	require.Len(t, results["FREQ"], 5)
	mags := results["V(out)_MAG"]
	require.Len(t, mags, 5)

	rc := 1e3 * 1e-6
	for i, f := range results["FREQ"] {
		want := 1 / math.Sqrt(1+math.Pow(2*math.Pi*f*rc, 2))
		assert.InEpsilon(t, want, mags[i], 1e-9, "f=%g", f)
	}
}

func TestNewACFromNetlist_NoCard(t *testing.T) {
	data, err := netlist.Parse("* t\nR1 a 0 1\n")
	require.NoError(t, err)

	_, err = NewACFromNetlist(data)
	assert.True(t, errors.Is(err, errors.ErrInvalidParameter))
}

func TestACAnalysis_SetupLogsSweep(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Logger
	logger.SetLogger(zap.New(core))
	defer func() { logger.Logger = prev }()

	data, err := netlist.Parse("* t\nV1 a 0 AC 1\nR1 a 0 50\n.ac lin 3 1G 2G\n")
	require.NoError(t, err)
	ckt, err := circuit.FromNetlist(data)
	require.NoError(t, err)
	defer ckt.Destroy()

	ac, err := NewACFromNetlist(data)
	require.NoError(t, err)
	require.NoError(t, ac.Setup(ckt))

	entries := logs.FilterMessage("AC sweep").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "analysis", entries[0].LoggerName)
	assert.Equal(t, int64(3), entries[0].ContextMap()[logger.FieldPoints])
}
