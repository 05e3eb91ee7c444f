package terminal

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFile is a document on disk, opened only when uploaded.
type LocalFile struct {
	path string
}

// NewLocalFile accepts a path as typed, with optional surrounding quotes as
// left by drag and drop into a terminal.
func NewLocalFile(path string) *LocalFile {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"'`)
	return &LocalFile{path: path}
}

func (f *LocalFile) Name() string { return filepath.Base(f.path) }

func (f *LocalFile) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(f.path)
}
