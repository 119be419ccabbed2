package input

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "areas.csv")
	assert.NoError(t, os.WriteFile(path, []byte("code,eng,cym\n"), 0o644))

	f := NewFile(path)
	assert.Equal(t, path, f.Location())

	stream, err := f.Open()
	assert.NoError(t, err)
	defer stream.Close()

	content, err := io.ReadAll(stream)
	assert.NoError(t, err)
	assert.Equal(t, "code,eng,cym\n", string(content))
}

func TestFileOpenMissing(t *testing.T) {
	t.Parallel()

	_, err := NewFile("does/not/exist.csv").Open()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
	assert.Contains(t, err.Error(), "does/not/exist.csv")
}
