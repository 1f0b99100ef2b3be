package cmd

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/cleanfloat/foundation/core/config"
	"github.com/msto63/cleanfloat/foundation/core/errors"
	"github.com/msto63/cleanfloat/foundation/core/log"
	"github.com/msto63/cleanfloat/foundation/utils/floatx"
)

const envPrefix = "CLEANFLOAT"

// configDefaults are used for keys that neither the config file nor the
// environment set.
var configDefaults = map[string]interface{}{
	"clean": map[string]interface{}{"min_precision": 0},
	"log":   map[string]interface{}{"level": "info", "format": "text"},
	"json":  map[string]interface{}{"indent": ""},
}

var configRules = config.ValidationRules{
	"clean.min_precision": {Type: "int", Min: config.Bound(0)},
	"log.level":           {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
	"log.format":          {Type: "string", OneOf: []string{"text", "json", "logfmt"}},
	"json.indent":         {Type: "string"},
}

// app carries flag values and the state every subcommand shares
type app struct {
	cfgFile      string
	verbose      bool
	logFormat    string
	minPrecision int

	cfg    *config.Config
	logger *log.Logger
	clean  floatx.Options
}

// Execute runs the cleanfloat command tree
func Execute() error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(numericArgs(rootCmd, os.Args[1:]))
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cleanfloat",
		Short: "Removes floating-point artifacts such as 0.30000000000000004",
		Long: `cleanfloat rounds numbers that carry a binary floating-point
representation artifact back to the decimal value they were meant to be.

  0.30000000000000004  ->  0.3
  5555.549999999999    ->  5555.55
  2.3299999999999997e-10 -> 2.33e-10

Numbers can be cleaned one by one or inside JSON and YAML documents.

Configuration is read from --config, ./cleanfloat.{toml,yaml,yml} or
$HOME/.config/cleanfloat/cleanfloat.{toml,yaml,yml}. Environment variables
such as CLEANFLOAT_CLEAN_MIN_PRECISION override file values, flags override both.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json or logfmt")
	rootCmd.PersistentFlags().IntVarP(&a.minPrecision, "min-precision", "p", 0, "minimum number of decimals to keep when an artifact is found")

	rootCmd.AddCommand(
		newValueCmd(a),
		newJSONCmd(a),
		newYAMLCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger before any subcommand runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := a.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger.WithField("command", cmd.Name())

	a.clean.MinPrecision = cfg.GetInt("clean.min_precision")
	if cmd.Flags().Changed("min-precision") {
		a.clean.MinPrecision = a.minPrecision
	}
	if a.clean.MinPrecision < 0 {
		return errors.OutOfRange(errors.ModuleCLI, "min_precision", a.clean.MinPrecision, 0, "unbounded")
	}

	a.logger.Debug("configuration loaded", log.Fields{
		"source":        cfg.String(),
		"min_precision": a.clean.MinPrecision,
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}

	options := config.DefaultDiscoveryOptions()
	options.EnvPrefix = envPrefix
	options.Defaults = configDefaults
	return config.Discover(options)
}

func (a *app) newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(a.cfg.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	if a.verbose {
		level = log.LevelDebug
	}

	formatName := a.cfg.GetString("log.format")
	if a.logFormat != "" {
		formatName = a.logFormat
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleCLI, "log_format", formatName, "text, json or logfmt")
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: w,
		Name:   "cleanfloat",
	}).WithCorrelationID(uuid.NewString()), nil
}
