// Package report formats a coverage report for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/opcodecount/internal/coverage"
)

const (
	separatorWidth  = 40
	opcodesPerLine  = 16
	missingHeadline = "Missing opcodes:"
)

// Reporter writes the fixed format coverage summary.
// Numbers are printed without locale grouping.
type Reporter struct {
	title string
}

// New creates a new reporter using the given title line.
func New(title string) *Reporter {
	return &Reporter{
		title: title,
	}
}

// Write writes the coverage summary of r to w.
func (r *Reporter) Write(w io.Writer, rep coverage.Report) error {
	separator := strings.Repeat("-", separatorWidth)

	var sb strings.Builder
	sb.WriteString(separator + "\n")
	sb.WriteString(r.title + "\n")
	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, "Implemented: %d/%d (%.1f%%)\n", rep.Implemented, rep.Total, rep.Percentage)
	sb.WriteString(separator + "\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteMissing writes a listing of the given unimplemented opcodes to w.
func (r *Reporter) WriteMissing(w io.Writer, opcodes []int) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d\n", missingHeadline, len(opcodes))

	for i, opcode := range opcodes {
		if i%opcodesPerLine != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02X", opcode)
		if i%opcodesPerLine == opcodesPerLine-1 || i == len(opcodes)-1 {
			sb.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing missing opcodes: %w", err)
	}
	return nil
}
