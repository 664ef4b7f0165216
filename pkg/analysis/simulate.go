package analysis

import (
	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
	"github.com/edp1096/lekidtools/pkg/circuit"
	"github.com/edp1096/lekidtools/pkg/lekid"
	"github.com/edp1096/lekidtools/pkg/netlist"
)

// Sweep selects the grid SimulateLEKID solves on. Span is the full width as
// a fraction of the loaded resonance, centred on it.
type Sweep struct {
	Points int
	Span   float64
	Type   string // DEC, OCT, LIN
}

// Equivalent returns the lumped circuit of a design.
func Equivalent(d *lekid.Design) netlist.LEKID {
	return netlist.LEKID{
		Title: "LEKID equivalent circuit",
		Z0:    d.Z0,
		CC:    d.CC,
		CR:    d.CR,
		L:     d.LTot,
		R:     d.R,
	}
}

// SweepRange returns the .ac card for a sweep centred on the loaded resonance.
func SweepRange(d *lekid.Design, s Sweep) (netlist.ACSweep, error) {
	if !(s.Span > 0 && s.Span < 2) {
		return netlist.ACSweep{}, errors.Wrapf(errors.ErrInvalidParameter, "span must be in (0, 2), got %g", s.Span)
	}
	fr := d.LoadedFrequency()
	sweepType := s.Type
	if sweepType == "" {
		sweepType = "LIN"
	}
	return netlist.ACSweep{
		Sweep:  sweepType,
		Points: s.Points,
		FStart: fr * (1 - s.Span/2),
		FStop:  fr * (1 + s.Span/2),
	}, nil
}

// SimulateDeck parses a deck, runs its .ac card and extracts S21 at the feed
// node driven by the LEKID source.
func SimulateDeck(deck string) (*Resonance, error) {
	data, err := netlist.Parse(deck)
	if err != nil {
		return nil, errors.Wrap(err, "parsing netlist")
	}

	ac, err := NewACFromNetlist(data)
	if err != nil {
		return nil, err
	}

	ckt, err := circuit.FromNetlist(data)
	if err != nil {
		return nil, errors.Wrap(err, "building circuit")
	}
	defer ckt.Destroy()

	if err := ac.Setup(ckt); err != nil {
		return nil, errors.Wrap(err, "AC setup")
	}
	if err := ac.Execute(); err != nil {
		return nil, errors.Wrap(err, "AC analysis")
	}

	s21, err := ac.S21(netlist.SourceName, netlist.NodeFeed)
	if err != nil {
		return nil, err
	}
	return FindResonance(ac.Frequencies(), s21)
}

// SimulateLEKID solves the equivalent circuit of d around its loaded
// resonance.
func SimulateLEKID(d *lekid.Design, s Sweep) (*Resonance, error) {
	ac, err := SweepRange(d, s)
	if err != nil {
		return nil, err
	}

	deck := Equivalent(d).Write(ac)
	logger.ComponentLogger("analysis").Debugw("simulating equivalent circuit",
		logger.FieldFrequency, d.LoadedFrequency(),
		logger.FieldPoints, s.Points,
	)

	return SimulateDeck(deck)
}
