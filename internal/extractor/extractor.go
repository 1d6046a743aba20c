// Package extractor loads the instruction table source text.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/retroenv/opcodecount/internal/failure"
)

var errInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Extractor reads a source file and checks that it contains the
// start marker of the instruction table initialization.
type Extractor struct {
	marker string
}

// New creates a new extractor that requires the given start marker.
func New(marker string) *Extractor {
	return &Extractor{
		marker: marker,
	}
}

// Extract returns the full text of the file at path.
// The marker only confirms the file has the expected shape, the returned
// text is not narrowed to the marked block.
func (e *Extractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", failure.New(failure.IOFailure, path, err)
	}
	if !utf8.Valid(data) {
		return "", failure.New(failure.IOFailure, path, errInvalidEncoding)
	}

	text := string(data)
	if _, ok := e.BlockOffset(text); !ok {
		return "", failure.New(failure.StructureNotFound, path, fmt.Errorf("marker %q", e.marker))
	}
	return text, nil
}

// BlockOffset returns the byte offset of the start marker in text.
func (e *Extractor) BlockOffset(text string) (int, bool) {
	idx := strings.Index(text, e.marker)
	return idx, idx >= 0
}
