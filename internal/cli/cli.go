// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/opcodecount/internal/config"
	"github.com/retroenv/opcodecount/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return ParseArgs(os.Args)
}

// ParseArgs parses the given command line, including the program name,
// and returns the program options
func ParseArgs(cmdline []string) (options.Program, error) {
	name := "opcodecount"
	if len(cmdline) > 0 {
		name = cmdline[0]
		cmdline = cmdline[1:]
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	opts := config.DefaultProgram()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(cmdline); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if err := validateArgs(args); err != nil {
		err.flags = flags
		return opts, err
	}
	if len(args) == 1 {
		opts.Root = args[0]
	}

	if err := validateOptions(opts); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

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

// ShowUsage prints the usage information to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: opcodecount [options] [project root]\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks the positional arguments
func validateArgs(args []string) *UsageError {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after project root, please pass the project root as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Too many arguments %q, only the project root can be passed", args),
		}
	}
	return nil
}

// validateOptions checks that the option values can be used for an analysis
func validateOptions(opts options.Program) error {
	switch {
	case opts.Total < 1 || opts.Total > config.TotalOpcodes:
		return fmt.Errorf("invalid total %d, must be between 1 and %d", opts.Total, config.TotalOpcodes)
	case opts.File == "":
		return errors.New("empty source file path")
	case opts.Marker == "":
		return errors.New("empty table marker")
	case opts.Identifier == "":
		return errors.New("empty table identifier")
	case opts.Root == "":
		return errors.New("empty project root")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.File, "file", opts.File, "path of the instruction table source file relative to the project root")
	flags.StringVar(&opts.Marker, "marker", opts.Marker, "start marker of the instruction table initialization")
	flags.StringVar(&opts.Identifier, "identifier", opts.Identifier, "name of the instruction table that opcodes are assigned to")
	flags.StringVar(&opts.Title, "title", opts.Title, "title line of the report")
	flags.IntVar(&opts.Total, "total", opts.Total, "size of the opcode space")
	flags.BoolVar(&opts.Missing, "missing", false, "list the opcodes without an assignment after the report")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
