package netlist

import (
	"fmt"
	"strconv"
	"strings"
)

// Node names of the LEKID equivalent circuit.
const (
	NodeSource    = "in"
	NodeFeed      = "feed"
	NodeResonator = "res"
	NodeLoss      = "loss"
	SourceName    = "V1"
)

// LEKID is the lumped equivalent circuit of a resonator capacitively
// coupled to a feedline: a matched source and load of Z0, a series coupling
// capacitor CC, and a shunt resonator of L in series with R, parallel to CR.
type LEKID struct {
	Title string
	Z0    float64 // Feedline impedance (ohm)
	CC    float64 // Coupling capacitance (F)
	CR    float64 // Resonator capacitance (F)
	L     float64 // Total inductance (H)
	R     float64 // Meander resistance (ohm), may be zero
}

// ACSweep is a .ac card.
type ACSweep struct {
	Sweep  string // DEC, OCT, LIN
	Points int
	FStart float64
	FStop  float64
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write renders the circuit as a SPICE deck that Parse accepts.
func (l LEKID) Write(ac ACSweep) string {
	var sb strings.Builder

	title := l.Title
	if title == "" {
		title = "LEKID equivalent circuit"
	}
	fmt.Fprintf(&sb, "* %s\n", title)
	fmt.Fprintf(&sb, "%s %s 0 AC 1\n", SourceName, NodeSource)
	fmt.Fprintf(&sb, "RS %s %s %s\n", NodeSource, NodeFeed, formatValue(l.Z0))
	fmt.Fprintf(&sb, "RL %s 0 %s\n", NodeFeed, formatValue(l.Z0))
	fmt.Fprintf(&sb, "CC %s %s %s\n", NodeFeed, NodeResonator, formatValue(l.CC))
	fmt.Fprintf(&sb, "CR %s 0 %s\n", NodeResonator, formatValue(l.CR))
	if l.R > 0 {
		fmt.Fprintf(&sb, "LR %s %s %s\n", NodeResonator, NodeLoss, formatValue(l.L))
		fmt.Fprintf(&sb, "RR %s 0 %s\n", NodeLoss, formatValue(l.R))
	} else {
		fmt.Fprintf(&sb, "LR %s 0 %s\n", NodeResonator, formatValue(l.L))
	}

	sweep := ac.Sweep
	if sweep == "" {
		sweep = "LIN"
	}
	fmt.Fprintf(&sb, ".ac %s %d %s %s\n", strings.ToLower(sweep), ac.Points, formatValue(ac.FStart), formatValue(ac.FStop))
	sb.WriteString(".end\n")

	return sb.String()
}
