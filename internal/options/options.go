// Package options contains the program options.
package options

// Parameters contains the analysis inputs.
type Parameters struct {
	Root       string // project root directory
	File       string // source file path relative to the root
	Marker     string // start marker of the table initialization
	Identifier string // name of the instruction table
	Title      string // title line of the report
	Total      int    // size of the opcode space
}

// Flags contains behavior options.
type Flags struct {
	Missing bool // list the opcodes without assignment after the report
	Debug   bool
	Quiet   bool
}

// Program options of the analyzer.
type Program struct {
	Parameters
	Flags
}
