package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/opcodecount/internal/failure"
	"github.com/retroenv/retrogolib/assert"
)

func TestLocate(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "src", "core")
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "cpu.cpp"), []byte("// cpu"), 0o600))

	l := New("src/core/cpu.cpp")
	path, err := l.Locate(root)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "core", "cpu.cpp"), path)
}

func TestLocateNotFound(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, root string)
	}{
		{
			name:  "empty root",
			setup: func(t *testing.T, root string) { t.Helper() },
		},
		{
			name: "directory in place of file",
			setup: func(t *testing.T, root string) {
				t.Helper()
				assert.NoError(t, os.MkdirAll(filepath.Join(root, "src", "core", "cpu.cpp"), 0o755))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)

			path, err := New("src/core/cpu.cpp").Locate(root)
			assert.Error(t, err)
			assert.Equal(t, "", path)
			assert.Equal(t, failure.NotFound, failure.KindOf(err))
			assert.ErrorContains(t, err, filepath.Join("src", "core", "cpu.cpp"))
		})
	}
}
