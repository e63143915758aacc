// Package cli handles command line interface logic
package cli

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/nesgenie/internal/options"
)

const usage = "usage: nesgenie [options] <codes> <mode> <input ROM> <output ROM>"

// ParseFlags parses the command line arguments and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(&bytes.Buffer{})

	var opts options.Program
	readOptionFlags(flags, &opts.Flags)

	if err := flags.Parse(os.Args[1:]); err != nil {
		usageErr := &UsageError{flags: flags}
		if !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, usageErr
	}

	if opts.Version {
		return opts, nil
	}

	args := flags.Args()
	if err := validateArgs(args); err != nil {
		err.flags = flags
		return opts, err
	}

	opts.Codes = args[0]
	opts.Mode = args[1]
	opts.Input = args[2]
	opts.Output = args[3]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("%s\n\n", usage)
	fmt.Println("Multiple codes are joined by +, for example SXIOPO+ZEXPYGLA.")
	fmt.Printf("Modes: nes, snes, gb, gg, sms, md, auto (detect from input file extension)\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks the positional arguments.
func validateArgs(args []string) *UsageError {
	for i, arg := range args {
		if i > 0 && len(arg) > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after codes, please pass options before the codes", arg),
			}
		}
	}

	if len(args) != 4 {
		return &UsageError{
			msg: fmt.Sprintf("expected 4 arguments, got %d", len(args)),
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Flags) {
	flags.BoolVar(&opts.DryRun, "n", false, "dry run, report the patches without keeping the output file")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
}
