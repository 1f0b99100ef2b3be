package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/cleanfloat/foundation/core/errors"
	"github.com/msto63/cleanfloat/foundation/core/log"
	"github.com/msto63/cleanfloat/foundation/utils/floatx"
)

type valueOptions struct {
	explain bool
}

func newValueCmd(a *app) *cobra.Command {
	opts := &valueOptions{}

	valueCmd := &cobra.Command{
		Use:   "value [numbers...]",
		Short: "Clean individual numbers",
		Long: `Cleans each number given as argument and prints one result per line.
Without arguments every non-blank line of stdin is cleaned. Negative
numbers are accepted as arguments; "--" ends flag parsing explicitly.

Examples:
  cleanfloat value 0.30000000000000004
  cleanfloat value --min-precision 2 0.3333333333333333
  cleanfloat value --explain 5555.549999999999
  cleanfloat value -1.3333333 -- -2.5555555
  printf '0.1\n1.1111111\n' | cleanfloat value`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValue(cmd, args, opts)
		},
	}

	valueCmd.Flags().BoolVar(&opts.explain, "explain", false, "show how each result was derived")

	return valueCmd
}

func (a *app) runValue(cmd *cobra.Command, args []string, opts *valueOptions) error {
	inputs := args
	if len(inputs) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return errors.OperationFailed(errors.ModuleCLI, "read_stdin", err)
		}
		inputs = lines
	}

	out := cmd.OutOrStdout()
	for i, input := range inputs {
		value, err := floatx.ToFloat(input)
		if err != nil {
			a.logger.LogError(err)
			return err
		}

		cleaned, err := floatx.CleanAny(value, a.clean)
		if err != nil {
			return err
		}

		a.logger.Trace("value processed", log.Fields{
			"input":   input,
			"output":  floatx.FormatNumber(cleaned),
			"changed": cleaned != value,
		})

		if opts.explain {
			if i > 0 {
				fmt.Fprintln(out)
			}
			explain(out, value, cleaned, a.clean)
			continue
		}
		fmt.Fprintln(out, floatx.FormatNumber(cleaned))
	}
	return nil
}

// explain prints the intermediate results of the artifact detection
func explain(w io.Writer, value, cleaned float64, opts floatx.Options) {
	analysis, ok := floatx.Analyze(value)

	fmt.Fprintf(w, "input:     %s\n", analysis.Text)
	if analysis.Decimals != "" {
		fmt.Fprintf(w, "decimals:  %s\n", analysis.Decimals)
	}
	if analysis.Run.Length > 0 {
		fmt.Fprintf(w, "run:       %d x '%c' at %d\n", analysis.Run.Length, analysis.Run.Digit, analysis.Run.Start)
		fmt.Fprintf(w, "rest:      %q\n", analysis.Rest)
	}
	if ok {
		fmt.Fprintf(w, "threshold: %d\n", analysis.Threshold)
		fmt.Fprintf(w, "places:    %d\n", analysis.Places(opts))
	} else {
		fmt.Fprintf(w, "skipped:   %s\n", rejection(analysis))
	}
	fmt.Fprintf(w, "result:    %s\n", floatx.FormatNumber(cleaned))
}

// rejection names the reason Analyze gave up on a value
func rejection(a floatx.Analysis) string {
	switch {
	case a.Decimals == "":
		return "no fractional part"
	case a.Run.Length == 0:
		return fmt.Sprintf("no run of %d identical digits", floatx.MinRunLength)
	default:
		return fmt.Sprintf("%d digits trail the run", len(a.Rest))
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
