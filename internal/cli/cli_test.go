package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/retroenv/opcodecount/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog"},
			want: options.Program{
				Parameters: options.Parameters{
					Root:       ".",
					File:       "src/core/cpu.cpp",
					Marker:     "void CPU::init_instructions() {",
					Identifier: "instructions",
					Title:      "GameByte Opcode Implementation Status",
					Total:      256,
				},
			},
		},
		{
			name: "project root",
			args: []string{"prog", "-q", "../gamebyte"},
			want: options.Program{
				Parameters: options.Parameters{
					Root:       "../gamebyte",
					File:       "src/core/cpu.cpp",
					Marker:     "void CPU::init_instructions() {",
					Identifier: "instructions",
					Title:      "GameByte Opcode Implementation Status",
					Total:      256,
				},
				Flags: options.Flags{Quiet: true},
			},
		},
		{
			name: "all flags",
			args: []string{"prog", "-file", "core/cpu.cc", "-marker", "void init() {", "-identifier", "table",
				"-title", "Status", "-total", "128", "-missing", "-debug", "root"},
			want: options.Program{
				Parameters: options.Parameters{
					Root:       "root",
					File:       "core/cpu.cc",
					Marker:     "void init() {",
					Identifier: "table",
					Title:      "Status",
					Total:      128,
				},
				Flags: options.Flags{Missing: true, Debug: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsUsageError(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "unknown flag",
			args:     []string{"prog", "-verify"},
			contains: "flag provided but not defined",
		},
		{
			name:     "too many arguments",
			args:     []string{"prog", "a", "b"},
			contains: "Too many arguments",
		},
		{
			name:     "flag after root",
			args:     []string{"prog", "root", "-q"},
			contains: "Potential argument -q found after project root",
		},
		{
			name:     "total too large",
			args:     []string{"prog", "-total", "257"},
			contains: "invalid total 257",
		},
		{
			name:     "zero total",
			args:     []string{"prog", "-total", "0"},
			contains: "invalid total 0",
		},
		{
			name:     "empty marker",
			args:     []string{"prog", "-marker", ""},
			contains: "empty table marker",
		},
		{
			name:     "empty identifier",
			args:     []string{"prog", "-identifier", ""},
			contains: "empty table identifier",
		},
		{
			name:     "empty file",
			args:     []string{"prog", "-file", ""},
			contains: "empty source file path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}

func TestShowUsage(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-h"}

	_, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.Equal(t, "", usageErr.Error())

	var buf bytes.Buffer
	usageErr.ShowUsage(&buf)
	assert.Contains(t, buf.String(), "usage: opcodecount")
	assert.Contains(t, buf.String(), "-missing")
}

func TestValidateArgs(t *testing.T) {
	assert.True(t, validateArgs(nil) == nil)
	assert.True(t, validateArgs([]string{"root"}) == nil)
	assert.True(t, validateArgs([]string{"root", "-q"}) != nil)
	assert.True(t, validateArgs([]string{"a", "b"}) != nil)
}
