// Package main implements the main entry point for the opcode coverage analyzer
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/opcodecount/internal/cli"
	"github.com/retroenv/opcodecount/internal/config"
	"github.com/retroenv/opcodecount/internal/failure"
	"github.com/retroenv/opcodecount/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/tebeka/atexit"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

const exitUsage = 2

func main() {
	atexit.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the analyzer for the given command line and returns the exit code.
// The report is the only output written to stdout.
func run(args []string, stdout, stderr io.Writer) (code int) {
	var logger *log.Logger
	defer func() {
		if r := recover(); r != nil {
			code = reportFailure(logger, stderr, failure.New(failure.Unknown, "", fmt.Errorf("%v", r)))
		}
	}()

	opts, err := cli.ParseArgs(args)
	if err != nil {
		return handleUsage(err, stdout, stderr)
	}

	logger = config.CreateLogger(opts.Debug, opts.Quiet)
	logger.Debug("opcodecount", log.String("version", buildinfo.Version(version, commit, date)))

	p, err := pipeline.New(logger, opts)
	if err != nil {
		return reportFailure(logger, stderr, err)
	}
	if _, err := p.Execute(stdout); err != nil {
		return reportFailure(logger, stderr, err)
	}
	return 0
}

func handleUsage(err error, stdout, stderr io.Writer) int {
	var usageErr *cli.UsageError
	if !errors.As(err, &usageErr) {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitUsage
	}

	if usageErr.Error() == "" {
		usageErr.ShowUsage(stdout)
		return 0
	}

	_, _ = fmt.Fprintf(stderr, "Error: %s\n\n", usageErr.Error())
	usageErr.ShowUsage(stderr)
	return exitUsage
}

// reportFailure prints the attributed failure message and returns the exit code.
// The logger is nil if the failure happened before it was created.
func reportFailure(logger *log.Logger, stderr io.Writer, err error) int {
	kind := failure.KindOf(err)

	msg := err.Error()
	var analysisErr *failure.Error
	if errors.As(err, &analysisErr) {
		msg = analysisErr.Error()
	}

	_, _ = fmt.Fprintf(stderr, "Error: %s\n", msg)
	if logger != nil {
		logger.Debug("Analysis failed", log.Stringer("kind", kind), log.Err(err))
	}
	return kind.ExitCode()
}
