package input

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source is one readable input for a dataset. The caller owns the
// returned stream; ingestion never closes it.
type Source interface {
	Location() string
	Open() (io.ReadCloser, error)
}

// File is a Source backed by a file on disk.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Location() string {
	return f.path
}

func (f *File) Open() (io.ReadCloser, error) {
	result, err := os.Open(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file %v", f.path)
	}
	return result, nil
}
