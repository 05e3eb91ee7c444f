package terminal

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Notes.MD")
	require.NoError(t, os.WriteFile(path, []byte("# hi"), 0o600))

	f := NewLocalFile(" '" + path + "' ")
	assert.Equal(t, "Notes.MD", f.Name())

	rc, err := f.Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "# hi", string(data))
}

func TestLocalFileMissing(t *testing.T) {
	f := NewLocalFile(filepath.Join(t.TempDir(), "missing.pdf"))
	_, err := f.Open(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
