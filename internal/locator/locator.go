// Package locator resolves the path of the instruction table source file.
package locator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/retroenv/opcodecount/internal/failure"
)

// Locator resolves a fixed relative source path beneath a project root.
type Locator struct {
	relativePath string
}

// New creates a new locator for the given path relative to the project root.
func New(relativePath string) *Locator {
	return &Locator{
		relativePath: filepath.FromSlash(relativePath),
	}
}

// Locate returns the path of the source file beneath root.
// It returns a NotFound failure if no regular file exists at that location.
func (l *Locator) Locate(root string) (string, error) {
	path := filepath.Join(root, l.relativePath)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", failure.New(failure.NotFound, path, nil)
	case err != nil:
		return "", failure.New(failure.IOFailure, path, err)
	case info.IsDir():
		return "", failure.New(failure.NotFound, path, nil)
	}
	return path, nil
}
