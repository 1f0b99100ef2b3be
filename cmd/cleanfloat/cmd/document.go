package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/cleanfloat/foundation/core/errors"
	"github.com/msto63/cleanfloat/foundation/core/log"
	"github.com/msto63/cleanfloat/internal/document"
)

type documentOptions struct {
	output string
	indent string
}

func newJSONCmd(a *app) *cobra.Command {
	opts := &documentOptions{}

	jsonCmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Clean every number in a JSON document",
		Long: `Reads JSON from the file or stdin and writes it back with every
non-integer number cleaned. Key order and integer literals are kept;
several top-level values are written one per line.

Examples:
  cleanfloat json report.json
  cleanfloat json --indent "  " -o clean.json report.json
  curl -s http://localhost:8080/stats | cleanfloat json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				opts.indent = a.cfg.GetString("json.indent")
			}
			return a.runDocument(cmd, args, opts, func(c *document.Cleaner, r io.Reader, w io.Writer) (document.Stats, error) {
				return c.CleanJSON(r, w, opts.indent)
			})
		},
	}

	jsonCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	jsonCmd.Flags().StringVar(&opts.indent, "indent", "", "indent string for pretty output (default: compact)")

	return jsonCmd
}

func newYAMLCmd(a *app) *cobra.Command {
	opts := &documentOptions{}

	yamlCmd := &cobra.Command{
		Use:   "yaml [file]",
		Short: "Clean every float in a YAML document",
		Long: `Reads YAML from the file or stdin and writes it back with every float
scalar cleaned. Comments, key order and quoted strings are kept.

Examples:
  cleanfloat yaml values.yaml
  cleanfloat yaml -o clean.yaml values.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDocument(cmd, args, opts, func(c *document.Cleaner, r io.Reader, w io.Writer) (document.Stats, error) {
				return c.CleanYAML(r, w)
			})
		},
	}

	yamlCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return yamlCmd
}

type cleanFunc func(c *document.Cleaner, r io.Reader, w io.Writer) (document.Stats, error)

func (a *app) runDocument(cmd *cobra.Command, args []string, opts *documentOptions, clean cleanFunc) error {
	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	logger := a.logger.WithField("input", input)

	r, closeInput, err := openInput(cmd, input)
	if err != nil {
		logger.LogError(err)
		return err
	}
	defer closeInput()

	w, closeOutput, err := openOutput(cmd, opts.output)
	if err != nil {
		logger.LogError(err)
		return err
	}

	cleaner := document.New(a.clean, logger)
	stats, err := clean(cleaner, r, w)
	if closeErr := closeOutput(); err == nil && closeErr != nil {
		err = errors.OperationFailed(errors.ModuleCLI, "write_output", closeErr).WithDetail("path", opts.output)
	}
	if err != nil {
		return err
	}

	logger.Debug("document written", log.Fields{
		"numbers":       stats.Numbers,
		"cleaned":       stats.Cleaned,
		"min_precision": cleaner.Options().MinPrecision,
	})
	return nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NotFound(errors.ModuleCLI, "open_input", path)
		}
		return nil, nil, errors.OperationFailed(errors.ModuleCLI, "open_input", err).WithDetail("path", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.OperationFailed(errors.ModuleCLI, "open_output", err).WithDetail("path", path)
	}
	return f, f.Close, nil
}
