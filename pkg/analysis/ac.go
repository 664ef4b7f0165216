package analysis

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
	"github.com/edp1096/lekidtools/pkg/circuit"
	"github.com/edp1096/lekidtools/pkg/device"
	"github.com/edp1096/lekidtools/pkg/netlist"
)

type ACAnalysis struct {
	BaseAnalysis
	startFreq   float64
	stopFreq    float64
	numPoints   int
	pointsType  string // "DEC", "OCT", "LIN"
	frequencies []float64
}

// NewAC sweeps nPoints frequencies in total from fStart to fStop. DEC and OCT
// space them logarithmically, LIN linearly.
func NewAC(fStart, fStop float64, nPoints int, pType string) *ACAnalysis {
	return &ACAnalysis{
		BaseAnalysis: *NewBaseAnalysis(),
		startFreq:    fStart,
		stopFreq:     fStop,
		numPoints:    nPoints,
		pointsType:   strings.ToUpper(pType),
	}
}

// NewACFromNetlist uses the .ac card of a parsed deck.
func NewACFromNetlist(data *netlist.NetlistData) (*ACAnalysis, error) {
	if data.Analysis != netlist.AnalysisAC {
		return nil, errors.Wrap(errors.ErrInvalidParameter, "netlist has no .ac card")
	}
	p := data.ACParam
	return NewAC(p.FStart, p.FStop, p.Points, p.Sweep), nil
}

func (ac *ACAnalysis) Setup(ckt *circuit.Circuit) error {
	if ckt == nil {
		return errors.New("circuit not set")
	}
	ac.Circuit = ckt

	if err := ac.generateFrequencyPoints(); err != nil {
		return err
	}

	ac.log.Debugw("AC sweep",
		logger.FieldSweep, ac.pointsType,
		logger.FieldPoints, ac.numPoints,
		"fstart_hz", ac.startFreq,
		"fstop_hz", ac.stopFreq,
	)
	return nil
}

func (ac *ACAnalysis) Execute() error {
	if ac.Circuit == nil {
		return errors.New("circuit not set")
	}

	for _, freq := range ac.frequencies {
		status := &device.CircuitStatus{Frequency: freq}

		if err := ac.Circuit.Stamp(status); err != nil {
			return errors.Wrapf(err, "stamping at f=%g", freq)
		}
		if err := ac.Circuit.GetMatrix().Solve(); err != nil {
			return errors.Wrapf(err, "solving at f=%g", freq)
		}

		ac.StoreACResult(freq, ac.Circuit.GetSolution())
	}

	ac.log.Debugw("AC sweep done", logger.FieldPoints, len(ac.frequencies))
	return nil
}

// Frequencies returns the sweep grid generated by Setup.
func (ac *ACAnalysis) Frequencies() []float64 {
	return ac.frequencies
}

func (ac *ACAnalysis) generateFrequencyPoints() error {
	if ac.numPoints < 2 {
		return errors.Wrapf(errors.ErrInvalidParameter, "AC sweep needs at least 2 points, got %d", ac.numPoints)
	}
	if !(ac.startFreq > 0) || !(ac.stopFreq > ac.startFreq) {
		return errors.Wrapf(errors.ErrInvalidParameter, "invalid AC range %g..%g", ac.startFreq, ac.stopFreq)
	}

	ac.frequencies = make([]float64, ac.numPoints)

	switch ac.pointsType {
	case "DEC", "OCT": // Decade, Octave
		floats.LogSpan(ac.frequencies, ac.startFreq, ac.stopFreq)

	case "LIN": // Linear
		floats.Span(ac.frequencies, ac.startFreq, ac.stopFreq)

	default:
		return errors.Wrapf(errors.ErrUnsupported, "sweep type %q", ac.pointsType)
	}
	return nil
}
