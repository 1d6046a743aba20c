// Package pipeline orchestrates the opcode coverage analysis stages.
package pipeline

import (
	"fmt"
	"io"

	"github.com/retroenv/opcodecount/internal/coverage"
	"github.com/retroenv/opcodecount/internal/extractor"
	"github.com/retroenv/opcodecount/internal/locator"
	"github.com/retroenv/opcodecount/internal/matcher"
	"github.com/retroenv/opcodecount/internal/options"
	"github.com/retroenv/opcodecount/internal/report"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline runs locate, extract, match, calculate and report in order.
type Pipeline struct {
	logger    *log.Logger
	opts      options.Program
	locator   *locator.Locator
	extractor *extractor.Extractor
	matcher   *matcher.Matcher
	reporter  *report.Reporter
}

// New creates a new analysis pipeline for the given options.
func New(logger *log.Logger, opts options.Program) (*Pipeline, error) {
	m, err := matcher.New(opts.Identifier)
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}

	return &Pipeline{
		logger:    logger,
		opts:      opts,
		locator:   locator.New(opts.File),
		extractor: extractor.New(opts.Marker),
		matcher:   m,
		reporter:  report.New(opts.Title),
	}, nil
}

// Execute runs the complete analysis and writes the report to writer.
// Nothing is written if any stage before the report fails.
func (p *Pipeline) Execute(writer io.Writer) (coverage.Report, error) {
	path, err := p.locator.Locate(p.opts.Root)
	if err != nil {
		return coverage.Report{}, fmt.Errorf("locating source file: %w", err)
	}
	p.logger.Debug("Located instruction table source", log.String("file", path))

	text, err := p.extractor.Extract(path)
	if err != nil {
		return coverage.Report{}, fmt.Errorf("extracting source text: %w", err)
	}
	markerOffset, _ := p.extractor.BlockOffset(text)
	p.logger.Debug("Read source file",
		log.Int("bytes", len(text)),
		log.Int("marker_offset", markerOffset))

	matches := p.matcher.Match(text)
	p.logger.Debug("Matched opcode assignments", log.Int("matches", len(matches)))
	p.warnDuplicates(path, matches)

	result := coverage.FromMatches(matches, p.opts.Total)

	if err := p.reporter.Write(writer, result); err != nil {
		return result, fmt.Errorf("reporting: %w", err)
	}

	if p.opts.Missing {
		missing := coverage.Missing(matches, p.opts.Total)
		if err := p.reporter.WriteMissing(writer, missing); err != nil {
			return result, fmt.Errorf("reporting: %w", err)
		}
	}

	return result, nil
}

// warnDuplicates logs every opcode that the table assigns more than once.
// Duplicates stay counted, the warning only points out the drift.
func (p *Pipeline) warnDuplicates(path string, matches []matcher.Match) {
	for _, match := range coverage.Duplicates(matches) {
		p.logger.Warn("Opcode assigned more than once",
			log.String("file", path),
			log.Hex("opcode", match.Opcode),
			log.Int("line", match.Line))
	}
}
