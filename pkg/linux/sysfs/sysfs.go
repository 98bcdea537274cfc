// Package sysfs reads CPU topology descriptors from the sys filesystem.
package sysfs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pktfabric/dataplane/pkg/linux/cpulist"
)

const (
	coherencyLineSizePath = "devices/system/cpu/cpu0/cache/index0/coherency_line_size"
	possibleCPUsPath      = "devices/system/cpu/possible"
)

type SysFS struct {
	fs fs.FS
}

func FS() *SysFS {
	return &SysFS{os.DirFS("/sys")}
}

// NewFromFS builds a SysFS over an arbitrary filesystem root, so tests can
// point at synthetic sys trees.
func NewFromFS(fsys fs.FS) *SysFS {
	return &SysFS{fsys}
}

// CacheLineSize reads the data cache line size of cpu0 as reported by the
// cache hierarchy. Returns (0, nil) when the kernel does not expose the
// descriptor, which happens on architectures without cacheinfo support.
func (f *SysFS) CacheLineSize() (int, error) {
	file, err := f.fs.Open(coherencyLineSizePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open %s: %w", coherencyLineSizePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%s is empty", coherencyLineSizePath)
	}

	size, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed cache line size %q: %w", scanner.Text(), err)
	}

	return int(size), nil
}

// PossibleCPUs enumerates the logical CPUs the kernel can ever bring online.
func (f *SysFS) PossibleCPUs() ([]int, error) {
	file, err := f.fs.Open(possibleCPUsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", possibleCPUsPath, err)
	}
	defer file.Close()

	return cpulist.Parse(file)
}
