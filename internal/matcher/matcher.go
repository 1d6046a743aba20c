// Package matcher finds opcode assignments in instruction table source text.
//
// Matching is purely lexical: an assignment inside a comment or a string
// literal is indistinguishable from a live one and is counted as well.
package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Match is a single opcode assignment found in the source text.
type Match struct {
	Opcode uint8
	Offset int // byte offset of the match in the text
	Line   int // 1-based line number of the match
}

// Matcher scans text for assignments of the form
// identifier[0xHH] = { ... with optional whitespace between tokens.
type Matcher struct {
	pattern *regexp.Regexp
}

// New creates a new matcher for table assignments to the given identifier.
func New(identifier string) (*Matcher, error) {
	if identifier == "" {
		return nil, errors.New("empty table identifier")
	}

	expr := regexp.QuoteMeta(identifier) + `\s*\[\s*0x([0-9A-Fa-f]{2})\s*\]\s*=\s*\{`
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern for identifier '%s': %w", identifier, err)
	}

	return &Matcher{
		pattern: pattern,
	}, nil
}

// Match returns all non-overlapping assignments in text in source order.
// Duplicate assignments of the same opcode are all returned.
func (m *Matcher) Match(text string) []Match {
	indexes := m.pattern.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(indexes))

	line := 1
	lastOffset := 0
	for _, idx := range indexes {
		digits := text[idx[2]:idx[3]]

		line += strings.Count(text[lastOffset:idx[0]], "\n")
		lastOffset = idx[0]

		matches = append(matches, Match{
			Opcode: hexByte(digits[0], digits[1]),
			Offset: idx[0],
			Line:   line,
		})
	}
	return matches
}

// hexByte returns the byte encoded by two hex digits.
func hexByte(high, low byte) uint8 {
	return hexDigit(high)<<4 | hexDigit(low)
}

func hexDigit(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		panic(fmt.Sprintf("invalid hex digit %q", c))
	}
}
