package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
	"github.com/edp1096/lekidtools/pkg/analysis"
	"github.com/edp1096/lekidtools/pkg/circuit"
	"github.com/edp1096/lekidtools/pkg/netlist"
)

// SimulateCmd runs the .ac card of an arbitrary R/L/C/V deck
var SimulateCmd = &cobra.Command{
	Use:   "simulate <netlist>",
	Short: "Run the AC analysis of a SPICE deck",
	Long: `Parse a SPICE deck of resistors, capacitors, inductors and AC voltage or
current sources, run its .ac card and print every node voltage and voltage
source current.

Examples:
  lekid netlist --config al.toml > al.cir
  lekid simulate al.cir`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	log := logger.ComponentLogger("cli")

	content, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading netlist file %s", args[0])
	}

	data, err := netlist.Parse(string(content))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", args[0])
	}
	log.Infow("netlist parsed",
		logger.FieldFile, args[0],
		"elements", len(data.Elements),
		"nodes", len(data.Nodes),
	)

	ac, err := analysis.NewACFromNetlist(data)
	if err != nil {
		return err
	}

	ckt, err := circuit.FromNetlist(data)
	if err != nil {
		return errors.Wrap(err, "building circuit")
	}
	defer ckt.Destroy()

	if err := ac.Setup(ckt); err != nil {
		return errors.Wrap(err, "AC setup")
	}
	if err := ac.Execute(); err != nil {
		return errors.Wrap(err, "AC analysis")
	}

	results := ac.GetResults()
	if jsonOutput(cmd) {
		return printJSON(cmd, results)
	}
	printACResults(cmd.OutOrStdout(), results)
	return nil
}
