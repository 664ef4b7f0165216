package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
	"github.com/edp1096/lekidtools/pkg/lekid"
	"github.com/edp1096/lekidtools/pkg/util"
)

func jsonOutput(cmd *cobra.Command) bool {
	enabled, _ := cmd.Flags().GetBool("json")
	return enabled
}

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "formatting JSON")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// warnRegime logs when the Bessel approximation of the conductivity ratios
// no longer holds.
func warnRegime(actualTemp float64) {
	if !lekid.InMattisBardeenRegime(actualTemp) {
		logger.ComponentLogger("cli").Warnw("temperature above the Mattis-Bardeen approximation limit, ratios are approximate",
			logger.FieldTemp, actualTemp)
	}
}

// printACResults prints a sweep as one row per frequency with every node
// voltage and source current as magnitude and phase.
func printACResults(w io.Writer, results map[string][]float64) {
	freqs := results["FREQ"]
	fmt.Fprintf(w, "AC Analysis Results (%d frequency points):\n", len(freqs))
	fmt.Fprintln(w, "Frequency      Node Voltages (Magnitude/Phase)        Branch Currents (Magnitude/Phase)")
	fmt.Fprintln(w, "-----------------------------------------------------------------------------")

	var voltageNames, currentNames []string
	for name := range results {
		if !strings.HasSuffix(name, "_MAG") {
			continue
		}
		baseName := strings.TrimSuffix(name, "_MAG")
		if strings.HasPrefix(baseName, "V(") {
			voltageNames = append(voltageNames, baseName)
		} else if strings.HasPrefix(baseName, "I(") {
			currentNames = append(currentNames, baseName)
		}
	}
	sort.Strings(voltageNames)
	sort.Strings(currentNames)
	names := append(voltageNames, currentNames...)

	for i, freq := range freqs {
		fmt.Fprintf(w, "%-13s", util.FormatFrequency(freq))
		for _, name := range names {
			mag, okMag := results[name+"_MAG"]
			phase, okPhase := results[name+"_PHASE"]
			if okMag && okPhase {
				fmt.Fprintf(w, "  %s=%s<%sdeg", name, util.FormatMagnitude(mag[i]), util.FormatPhase(phase[i]))
			}
		}
		fmt.Fprintln(w)
	}
}
