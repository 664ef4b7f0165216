package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/lekidtools/cmd/lekid/commands"
	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lekid",
	Short: "Lumped-element kinetic inductance detector design tools",
	Long: `lekid - design calculations for lumped-element kinetic inductance detectors.

Available commands:
  conductivity - Mattis-Bardeen σ1/σn and σ2/σn
  resistance   - Surface resistance per square
  reactance    - C_tot and L_tot for a target resonance
  coupling     - CR and CC for a target QC
  lg           - Geometric inductance from a frequency shift
  squares      - Squares of a meander
  lorentzian   - Evaluate the fitting kernel
  design       - Derive a full resonator from a TOML design file
  sweep        - Simulate S21 of the equivalent circuit
  netlist      - Print the equivalent circuit as a SPICE deck
  simulate     - Run the AC analysis of a SPICE deck
  config       - Show, create or check a design file

Examples:
  lekid config init al.toml
  lekid conductivity --freq 5e9 --temp 0.1 --tc 1.2
  lekid design --config al.toml
  lekid sweep --config al.toml -v`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output results and logs as JSON")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(commands.ConductivityCmd)
	rootCmd.AddCommand(commands.ResistanceCmd)
	rootCmd.AddCommand(commands.ReactanceCmd)
	rootCmd.AddCommand(commands.CouplingCmd)
	rootCmd.AddCommand(commands.LgCmd)
	rootCmd.AddCommand(commands.SquaresCmd)
	rootCmd.AddCommand(commands.LorentzianCmd)
	rootCmd.AddCommand(commands.DesignCmd)
	rootCmd.AddCommand(commands.SweepCmd)
	rootCmd.AddCommand(commands.NetlistCmd)
	rootCmd.AddCommand(commands.SimulateCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
