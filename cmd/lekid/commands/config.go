package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/lekidtools/internal/config"
	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/internal/logger"
)

// ConfigCmd groups the design file helpers
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create design files",
	Long: `Show the effective design configuration, write a starter design file or
check an existing one.

Values come from the built-in aluminium defaults, then the design file, then
LEKID_* environment variables.

Examples:
  lekid config show
  lekid config show --config al.toml --format yaml
  lekid config init al.toml
  lekid config validate --config al.toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the effective configuration to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a design file",
	RunE:  runConfigValidate,
}

const defaultConfigFile = "lekid.toml"

var (
	configShowPath     string
	configShowFormat   string
	configInitForce    bool
	configValidatePath string
)

func init() {
	configShowCmd.Flags().StringVarP(&configShowPath, "config", "c", "", "TOML design file")
	configShowCmd.Flags().StringVar(&configShowFormat, "format", config.FormatTOML, "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing file")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "config", "c", "", "TOML design file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func readConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromFile(path)
	}
	if err != nil {
		return nil, err
	}

	if err := applyLogConfig(cmd, cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyLogConfig switches logging to JSON when the design file asks for it.
// Result output still follows --json.
func applyLogConfig(cmd *cobra.Command, lc config.LogConfig) error {
	if !lc.JSON || logger.JSONOutput {
		return nil
	}
	verbosity, _ := cmd.Flags().GetCount("verbose")
	if err := logger.Initialize(true, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(cmd, configShowPath)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg, configShowFormat)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := defaultConfigFile
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.Save(cfg, path, configInitForce); err != nil {
		return err
	}

	logger.ComponentLogger("cli").Infow("design file written", logger.FieldFile, path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(cmd, configValidatePath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	warnRegime(cfg.Operating.Temperature)
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration OK")
	return nil
}
