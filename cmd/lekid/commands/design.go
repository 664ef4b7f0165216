package commands

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/unit"

	"github.com/edp1096/lekidtools/internal/config"
	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
	"github.com/edp1096/lekidtools/pkg/analysis"
	"github.com/edp1096/lekidtools/pkg/lekid"
	"github.com/edp1096/lekidtools/pkg/util"
)

// DesignCmd derives every circuit quantity of a configured resonator
var DesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Derive the equivalent circuit of a configured LEKID",
	Long: `Read a TOML design file and print squares, inductances, capacitances,
conductivity ratios and resistance of the resonator.

Without --config the built-in aluminium defaults are used. Any key can be
overridden from the environment, e.g. LEKID_OPERATING_TEMPERATURE=0.2.

Examples:
  lekid design --config al.toml
  lekid design --config al.toml --json`,
	RunE: runDesign,
}

// SweepCmd simulates the equivalent circuit around its resonance
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Simulate S21 of the equivalent circuit",
	Long: `Solve the lumped equivalent circuit of a configured LEKID over a frequency
grid centred on its loaded resonance and report the transmission dip next to
the closed-form resonance.

Examples:
  lekid sweep --config al.toml
  lekid sweep --config al.toml --trace`,
	RunE: runSweep,
}

// NetlistCmd prints the SPICE deck of the equivalent circuit
var NetlistCmd = &cobra.Command{
	Use:   "netlist",
	Short: "Print the equivalent circuit as a SPICE deck",
	RunE:  runNetlist,
}

var (
	designConfigFlag  string
	sweepConfigFlag   string
	sweepTraceFlag    bool
	netlistConfigFlag string
)

func init() {
	DesignCmd.Flags().StringVarP(&designConfigFlag, "config", "c", "", "TOML design file")
	SweepCmd.Flags().StringVarP(&sweepConfigFlag, "config", "c", "", "TOML design file")
	SweepCmd.Flags().BoolVar(&sweepTraceFlag, "trace", false, "Print |S21| at every frequency")
	NetlistCmd.Flags().StringVarP(&netlistConfigFlag, "config", "c", "", "TOML design file")
}

func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := readConfig(cmd, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func loadDesign(cmd *cobra.Command, path string) (*config.Config, *lekid.Design, error) {
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	warnRegime(cfg.Operating.Temperature)

	d, err := lekid.NewDesign(cfg.DesignParams())
	if err != nil {
		return nil, nil, err
	}
	logger.ComponentLogger("cli").Infow("design derived",
		logger.FieldFrequency, d.F0,
		logger.FieldTemp, d.ActualTemp,
	)
	return cfg, d, nil
}

type designOutput struct {
	Squares             float64 `json:"squares"`
	Lk                  float64 `json:"lk"`
	LTot                float64 `json:"l_tot"`
	KineticFraction     float64 `json:"kinetic_fraction"`
	CTot                float64 `json:"c_tot"`
	CR                  float64 `json:"cr"`
	CC                  float64 `json:"cc"`
	Sig1OverSigN        float64 `json:"sig1_over_sign"`
	Sig2OverSigN        float64 `json:"sig2_over_sign"`
	RPerSq              float64 `json:"r_per_sq"`
	R                   float64 `json:"r"`
	InternalQ           float64 `json:"qi"`
	LoadedFrequency     float64 `json:"loaded_frequency"`
	MattisBardeenRegime bool    `json:"mattis_bardeen_regime"`
}

func runDesign(cmd *cobra.Command, args []string) error {
	_, d, err := loadDesign(cmd, designConfigFlag)
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(cmd, designOutput{
			Squares:             d.Squares,
			Lk:                  d.Lk,
			LTot:                d.LTot,
			KineticFraction:     d.KineticFraction(),
			CTot:                d.CTot,
			CR:                  d.CR,
			CC:                  d.CC,
			Sig1OverSigN:        d.Sig1,
			Sig2OverSigN:        d.Sig2,
			RPerSq:              d.RPerSq,
			R:                   d.R,
			InternalQ:           d.InternalQ(),
			LoadedFrequency:     d.LoadedFrequency(),
			MattisBardeenRegime: lekid.InMattisBardeenRegime(d.ActualTemp),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Squares:          %.6g\n", d.Squares)
	fmt.Fprintf(out, "Lk:               %s\n", util.FormatInductance(unit.Inductance(d.Lk)))
	fmt.Fprintf(out, "L_tot:            %s (kinetic fraction %.3f)\n", util.FormatInductance(unit.Inductance(d.LTot)), d.KineticFraction())
	fmt.Fprintf(out, "C_tot:            %s\n", util.FormatCapacitance(unit.Capacitance(d.CTot)))
	fmt.Fprintf(out, "CR:               %s\n", util.FormatCapacitance(unit.Capacitance(d.CR)))
	fmt.Fprintf(out, "CC:               %s\n", util.FormatCapacitance(unit.Capacitance(d.CC)))
	fmt.Fprintf(out, "σ1/σn:            %.6e\n", d.Sig1)
	fmt.Fprintf(out, "σ2/σn:            %.6e\n", d.Sig2)
	fmt.Fprintf(out, "R per square:     %s\n", util.FormatResistance(unit.Resistance(d.RPerSq)))
	fmt.Fprintf(out, "R:                %s\n", util.FormatResistance(unit.Resistance(d.R)))
	fmt.Fprintf(out, "Qi:               %.4g\n", d.InternalQ())
	fmt.Fprintf(out, "Loaded resonance: %s\n", util.FormatFrequency(d.LoadedFrequency()))
	return nil
}

type sweepOutput struct {
	LoadedFrequency float64   `json:"loaded_frequency"`
	DipFrequency    float64   `json:"dip_frequency"`
	DipDepth        float64   `json:"dip_depth"`
	Baseline        float64   `json:"baseline"`
	QL              float64   `json:"ql"`
	Frequencies     []float64 `json:"frequencies,omitempty"`
	S21Magnitude    []float64 `json:"s21_magnitude,omitempty"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadDesign(cmd, sweepConfigFlag)
	if err != nil {
		return err
	}

	r, err := analysis.SimulateLEKID(d, cfg.AnalysisSweep())
	if err != nil {
		return errors.Wrap(err, "simulating equivalent circuit")
	}
	if !r.LinewidthOK(3) {
		logger.ComponentLogger("cli").Warnw("sweep does not resolve the resonance linewidth, increase sweep.points or decrease sweep.span",
			logger.FieldPoints, cfg.Sweep.Points)
	}

	if jsonOutput(cmd) {
		out := sweepOutput{
			LoadedFrequency: d.LoadedFrequency(),
			DipFrequency:    r.DipFrequency,
			DipDepth:        r.DipDepth,
			Baseline:        r.Baseline,
			QL:              r.QL,
		}
		if sweepTraceFlag {
			out.Frequencies = r.Frequencies
			out.S21Magnitude = make([]float64, len(r.S21))
			for i, s := range r.S21 {
				out.S21Magnitude[i] = cmplx.Abs(s)
			}
		}
		return printJSON(cmd, out)
	}

	out := cmd.OutOrStdout()
	if sweepTraceFlag {
		for i, f := range r.Frequencies {
			s := r.S21[i]
			fmt.Fprintf(out, "%s  %s  %s deg\n", util.FormatFrequency(f), util.FormatDecibel(cmplx.Abs(s)), util.FormatPhase(cmplx.Phase(s)*180/math.Pi))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Loaded resonance: %s\n", util.FormatFrequency(d.LoadedFrequency()))
	fmt.Fprintf(out, "S21 dip:          %s\n", util.FormatFrequency(r.DipFrequency))
	fmt.Fprintf(out, "Dip depth:        %s\n", util.FormatDecibel(r.DipDepth))
	if r.QL > 0 {
		fmt.Fprintf(out, "QL:               %.4g\n", r.QL)
	} else {
		fmt.Fprintln(out, "QL:               unresolved")
	}
	return nil
}

func runNetlist(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadDesign(cmd, netlistConfigFlag)
	if err != nil {
		return err
	}

	ac, err := analysis.SweepRange(d, cfg.AnalysisSweep())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), analysis.Equivalent(d).Write(ac))
	return nil
}
