// Package procfs reads the boot-time host descriptors the dataplane needs
// from the proc filesystem.
package procfs

import (
	"errors"
	"io/fs"
	"os"
)

// ErrMalformed reports a proc entry whose content does not match the
// expected line format.
var ErrMalformed = errors.New("malformed proc entry")

type ProcFS struct {
	fs fs.FS
}

func FS() *ProcFS {
	return &ProcFS{os.DirFS("/proc")}
}

// NewFromFS builds a ProcFS over an arbitrary filesystem root, so tests can
// point at synthetic proc trees.
func NewFromFS(fsys fs.FS) *ProcFS {
	return &ProcFS{fsys}
}
