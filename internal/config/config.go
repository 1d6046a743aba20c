// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/opcodecount/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Defaults matching the layout of the GameByte emulator source tree.
const (
	DefaultRoot       = "."
	DefaultSourcePath = "src/core/cpu.cpp"
	DefaultMarker     = "void CPU::init_instructions() {"
	DefaultIdentifier = "instructions"
	DefaultTitle      = "GameByte Opcode Implementation Status"

	// TotalOpcodes is the size of the single byte opcode space.
	TotalOpcodes = 256
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// DefaultProgram returns the program options with all defaults set.
func DefaultProgram() options.Program {
	return options.Program{
		Parameters: options.Parameters{
			Root:       DefaultRoot,
			File:       DefaultSourcePath,
			Marker:     DefaultMarker,
			Identifier: DefaultIdentifier,
			Title:      DefaultTitle,
			Total:      TotalOpcodes,
		},
	}
}
