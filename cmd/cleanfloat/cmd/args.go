package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// numericArgs moves negative numbers behind a "--" terminator so that
// "cleanfloat value -1.3333333" does not fail with an unknown shorthand flag.
// Flags, their values and the command path stay in front of the terminator.
// Arguments are returned unchanged when they hold no negative number.
func numericArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil {
		return args
	}
	path := strings.Fields(cmd.CommandPath())[1:]

	var head, positional []string
	moved := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			positional = append(positional, arg)
			moved = true
		case len(arg) > 1 && arg[0] == '-':
			head = append(head, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				head = append(head, args[i])
			}
		case len(path) > 0 && arg == path[0]:
			head = append(head, arg)
			path = path[1:]
		default:
			positional = append(positional, arg)
		}
	}

	if !moved {
		return args
	}
	return append(append(head, "--"), positional...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	if c := arg[1]; c != '.' && (c < '0' || c > '9') {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// takesValue reports whether the flag in arg consumes the next argument
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f := lookupFlag(cmd, name)
		return f != nil && f.NoOptDefVal == ""
	}

	// Shorthands may be grouped ("-vp"); only the last one can take the next argument.
	for i := 1; i < len(arg); i++ {
		f := lookupShorthand(cmd, arg[i:i+1])
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			return i == len(arg)-1
		}
	}
	return false
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().ShorthandLookup(name)
}
