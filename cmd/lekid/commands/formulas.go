package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/unit"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/lekid"
	"github.com/edp1096/lekidtools/pkg/util"
)

// ConductivityCmd prints the Mattis-Bardeen conductivity ratios
var ConductivityCmd = &cobra.Command{
	Use:   "conductivity",
	Short: "Mattis-Bardeen σ1/σn and σ2/σn",
	Long: `Evaluate the real and imaginary complex-conductivity ratios of a
superconducting film at a readout frequency and temperature.

Examples:
  lekid conductivity --freq 5e9 --temp 0.1 --tc 1.2`,
	RunE: runConductivity,
}

// ResistanceCmd prints the surface resistance per square
var ResistanceCmd = &cobra.Command{
	Use:   "resistance",
	Short: "Surface resistance per square from kinetic inductance",
	RunE:  runResistance,
}

// ReactanceCmd prints C_tot and L_tot of a resonator
var ReactanceCmd = &cobra.Command{
	Use:   "reactance",
	Short: "Total capacitance and inductance resonating at f0",
	RunE:  runReactance,
}

// CouplingCmd prints CR and CC
var CouplingCmd = &cobra.Command{
	Use:   "coupling",
	Short: "Resonator and coupling capacitances for a target QC",
	RunE:  runCoupling,
}

// LgCmd prints the geometric inductance from a frequency shift
var LgCmd = &cobra.Command{
	Use:   "lg",
	Short: "Geometric inductance from resonances with and without Lk",
	Long: `Extract the geometric inductance from the resonant frequency f0 of a
resonator with kinetic inductance and fprime of the same resonator without it.

Examples:
  lekid lg --f0 5e9 --fprime 5.5e9 --lk 1e-9
  lekid lg --f0 5e9 --fprime 5.5e9 --per-square --lk-per-sq 1e-12 --length 4e-3 --width 2e-6`,
	RunE: runLg,
}

// SquaresCmd prints the number of squares of a meander
var SquaresCmd = &cobra.Command{
	Use:   "squares",
	Short: "Number of squares of a meander",
	RunE:  runSquares,
}

// LorentzianCmd evaluates the fitting kernel
var LorentzianCmd = &cobra.Command{
	Use:   "lorentzian",
	Short: "Evaluate a γ²/(γ²+(x-x0)²) at x",
	RunE:  runLorentzian,
}

var conductivityOpts struct {
	freq, temp, tc float64
}

var resistanceOpts struct {
	lkPerSq, f0, temp, tc float64
}

var reactanceOpts struct {
	f0, lkPerSq, lg, length, width float64
}

var couplingOpts struct {
	f0, lTot, qc, z0 float64
}

var lgOpts struct {
	f0, fPrime, lk float64
	perSquare      bool
	lkPerSq        float64
	length, width  float64
}

var squaresOpts struct {
	length, width float64
}

var lorentzianOpts struct {
	x, x0, a, gam float64
}

func init() {
	c := ConductivityCmd.Flags()
	c.Float64Var(&conductivityOpts.freq, "freq", 5e9, "Readout frequency (Hz)")
	c.Float64Var(&conductivityOpts.temp, "temp", 0.1, "Operating temperature (K)")
	c.Float64Var(&conductivityOpts.tc, "tc", 1.2, "Critical temperature (K)")

	r := ResistanceCmd.Flags()
	r.Float64Var(&resistanceOpts.lkPerSq, "lk", 1e-12, "Kinetic inductance per square (H)")
	r.Float64Var(&resistanceOpts.f0, "f0", 5e9, "Resonant frequency (Hz)")
	r.Float64Var(&resistanceOpts.temp, "temp", 0.1, "Operating temperature (K)")
	r.Float64Var(&resistanceOpts.tc, "tc", 1.2, "Critical temperature (K)")

	x := ReactanceCmd.Flags()
	x.Float64Var(&reactanceOpts.f0, "f0", 5e9, "Resonant frequency (Hz)")
	x.Float64Var(&reactanceOpts.lkPerSq, "lk-per-sq", 1e-12, "Kinetic inductance per square (H)")
	x.Float64Var(&reactanceOpts.lg, "lg", 10e-9, "Geometric inductance (H)")
	x.Float64Var(&reactanceOpts.length, "length", 4e-3, "Meander length (m)")
	x.Float64Var(&reactanceOpts.width, "width", 2e-6, "Meander width (m)")

	k := CouplingCmd.Flags()
	k.Float64Var(&couplingOpts.f0, "f0", 5e9, "Resonant frequency (Hz)")
	k.Float64Var(&couplingOpts.lTot, "ltot", 12e-9, "Total inductance (H)")
	k.Float64Var(&couplingOpts.qc, "qc", 2e4, "Coupling quality factor")
	k.Float64Var(&couplingOpts.z0, "z0", 50, "Feedline impedance (ohm)")

	g := LgCmd.Flags()
	g.Float64Var(&lgOpts.f0, "f0", 0, "Resonance with kinetic inductance (Hz)")
	g.Float64Var(&lgOpts.fPrime, "fprime", 0, "Resonance without kinetic inductance (Hz)")
	g.Float64Var(&lgOpts.lk, "lk", 0, "Absolute kinetic inductance (H)")
	g.BoolVar(&lgOpts.perSquare, "per-square", false, "Derive Lk from --lk-per-sq and the meander geometry")
	g.Float64Var(&lgOpts.lkPerSq, "lk-per-sq", 0, "Kinetic inductance per square (H)")
	g.Float64Var(&lgOpts.length, "length", 0, "Inductive meander length (m)")
	g.Float64Var(&lgOpts.width, "width", 0, "Inductive meander width (m)")
	LgCmd.MarkFlagRequired("f0")
	LgCmd.MarkFlagRequired("fprime")

	q := SquaresCmd.Flags()
	q.Float64Var(&squaresOpts.length, "length", 0, "Meander length (m)")
	q.Float64Var(&squaresOpts.width, "width", 0, "Meander width (m)")
	SquaresCmd.MarkFlagRequired("length")
	SquaresCmd.MarkFlagRequired("width")

	l := LorentzianCmd.Flags()
	l.Float64Var(&lorentzianOpts.x, "x", 0, "Evaluation point")
	l.Float64Var(&lorentzianOpts.x0, "x0", 0, "Centre")
	l.Float64Var(&lorentzianOpts.a, "a", 1, "Peak amplitude")
	l.Float64Var(&lorentzianOpts.gam, "gamma", 1, "Half width at half maximum")
}

func runConductivity(cmd *cobra.Command, args []string) error {
	if err := lekid.CheckConductivity(conductivityOpts.freq, conductivityOpts.temp, conductivityOpts.tc); err != nil {
		return err
	}
	warnRegime(conductivityOpts.temp)

	sig1 := lekid.Sig1OverSigN(conductivityOpts.freq, conductivityOpts.temp, conductivityOpts.tc)
	sig2 := lekid.Sig2OverSigN(conductivityOpts.freq, conductivityOpts.temp, conductivityOpts.tc)

	if jsonOutput(cmd) {
		return printJSON(cmd, map[string]float64{
			"sig1_over_sign": sig1,
			"sig2_over_sign": sig2,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "σ1/σn: %.6e\n", sig1)
	fmt.Fprintf(out, "σ2/σn: %.6e\n", sig2)
	return nil
}

func runResistance(cmd *cobra.Command, args []string) error {
	if err := lekid.CheckConductivity(resistanceOpts.f0, resistanceOpts.temp, resistanceOpts.tc); err != nil {
		return err
	}
	warnRegime(resistanceOpts.temp)

	r := lekid.ResistancePerSqFromLkF0(resistanceOpts.lkPerSq, resistanceOpts.f0, resistanceOpts.temp, resistanceOpts.tc)

	if jsonOutput(cmd) {
		return printJSON(cmd, map[string]float64{"r_per_sq": r})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "R per square: %s\n", util.FormatResistance(unit.Resistance(r)))
	return nil
}

func runReactance(cmd *cobra.Command, args []string) error {
	if err := lekid.CheckGeometry(reactanceOpts.length, reactanceOpts.width); err != nil {
		return err
	}
	cTot, lTot := lekid.CTotLTot(reactanceOpts.f0, reactanceOpts.lkPerSq, reactanceOpts.lg, reactanceOpts.length, reactanceOpts.width)

	if jsonOutput(cmd) {
		return printJSON(cmd, map[string]float64{"c_tot": cTot, "l_tot": lTot})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "C_tot: %s\n", util.FormatCapacitance(unit.Capacitance(cTot)))
	fmt.Fprintf(out, "L_tot: %s\n", util.FormatInductance(unit.Inductance(lTot)))
	return nil
}

func runCoupling(cmd *cobra.Command, args []string) error {
	if err := lekid.CheckCoupling(couplingOpts.f0, couplingOpts.lTot, couplingOpts.qc, couplingOpts.z0); err != nil {
		return err
	}
	cr, cc := lekid.CRAndCC(couplingOpts.f0, couplingOpts.lTot, couplingOpts.qc, couplingOpts.z0)

	if jsonOutput(cmd) {
		return printJSON(cmd, map[string]float64{"cr": cr, "cc": cc})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "CR: %s\n", util.FormatCapacitance(unit.Capacitance(cr)))
	fmt.Fprintf(out, "CC: %s\n", util.FormatCapacitance(unit.Capacitance(cc)))
	return nil
}

func runLg(cmd *cobra.Command, args []string) error {
	if err := lekid.CheckFrequencyPair(lgOpts.f0, lgOpts.fPrime); err != nil {
		return err
	}

	var lg float64
	if lgOpts.perSquare {
		if err := lekid.CheckGeometry(lgOpts.length, lgOpts.width); err != nil {
			return errors.Wrap(err, "inductive meander")
		}
		lg = lekid.LgFromFreqsAndLkPerSq(lgOpts.f0, lgOpts.fPrime, lgOpts.lkPerSq, lgOpts.length, lgOpts.width)
	} else {
		lg = lekid.LgFromFreqsAndLk(lgOpts.f0, lgOpts.fPrime, lgOpts.lk)
	}

	if jsonOutput(cmd) {
		return printJSON(cmd, map[string]float64{"lg": lg})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Lg: %s\n", util.FormatInductance(unit.Inductance(lg)))
	return nil
}

func runSquares(cmd *cobra.Command, args []string) error {
	if err := lekid.CheckGeometry(squaresOpts.length, squaresOpts.width); err != nil {
		return err
	}
	squares := lekid.NoOfSquares(squaresOpts.length, squaresOpts.width)

	if jsonOutput(cmd) {
		return printJSON(cmd, map[string]float64{"squares": squares})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Squares: %.6g\n", squares)
	return nil
}

func runLorentzian(cmd *cobra.Command, args []string) error {
	y := lekid.Lorentzian(lorentzianOpts.x, lorentzianOpts.x0, lorentzianOpts.a, lorentzianOpts.gam)

	if jsonOutput(cmd) {
		return printJSON(cmd, map[string]float64{"y": y})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", y)
	return nil
}
