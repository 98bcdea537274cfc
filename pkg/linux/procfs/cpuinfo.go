package procfs

import (
	"fmt"
	"io/fs"
)

// OpenCPUInfo returns an open handle to the processor descriptor source for
// the architecture-specific parser. The caller owns the handle.
func (f *ProcFS) OpenCPUInfo() (fs.File, error) {
	file, err := f.fs.Open("cpuinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to open cpuinfo: %w", err)
	}
	return file, nil
}
