// Package coverage reduces opcode matches to a coverage report.
package coverage

import (
	"github.com/retroenv/opcodecount/internal/matcher"
	"github.com/retroenv/retrogolib/set"
)

// Report is the result of a single analysis run.
type Report struct {
	Implemented int     // number of assignments found, duplicates included
	Distinct    int     // number of distinct opcodes assigned
	Total       int     // size of the opcode space
	Percentage  float64 // 100 * Implemented / Total at full precision
}

// New returns a report for the given implemented count.
// Total has to be positive. Distinct is left zero, use FromMatches
// to get it filled from the matches.
func New(implemented, total int) Report {
	return Report{
		Implemented: implemented,
		Total:       total,
		Percentage:  100.0 * float64(implemented) / float64(total),
	}
}

// FromMatches returns a report for the given match sequence.
func FromMatches(matches []matcher.Match, total int) Report {
	r := New(len(matches), total)
	r.Distinct = distinct(matches)
	return r
}

// Duplicates returns the second assignment of every opcode that is
// assigned more than once, in source order.
func Duplicates(matches []matcher.Match) []matcher.Match {
	seen := set.New[uint8]()
	reported := set.New[uint8]()
	var duplicates []matcher.Match

	for _, match := range matches {
		if !seen.Contains(match.Opcode) {
			seen.Add(match.Opcode)
			continue
		}
		if reported.Contains(match.Opcode) {
			continue
		}
		reported.Add(match.Opcode)
		duplicates = append(duplicates, match)
	}
	return duplicates
}

// Missing returns the opcodes in [0, total) without any assignment,
// in ascending order.
func Missing(matches []matcher.Match, total int) []int {
	implemented := set.New[int]()
	for _, match := range matches {
		implemented.Add(int(match.Opcode))
	}

	var missing []int
	for opcode := range total {
		if !implemented.Contains(opcode) {
			missing = append(missing, opcode)
		}
	}
	return missing
}

func distinct(matches []matcher.Match) int {
	seen := set.New[uint8]()
	count := 0
	for _, match := range matches {
		if seen.Contains(match.Opcode) {
			continue
		}
		seen.Add(match.Opcode)
		count++
	}
	return count
}
