package sysinfo

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var global atomic.Pointer[SystemInfo]

var zeroInfo SystemInfo

// Init runs discovery exactly once and publishes the snapshot consumed by
// the package-level accessors. Bootstrap must treat an error as fatal: no
// memory may be allocated and no worker started on a failed Init. A second
// call fails with ErrAlreadyInitialized.
func Init(cfg Config, l *zap.Logger) error {
	si, err := Detect(cfg, l)
	if err != nil {
		return err
	}
	if !global.CompareAndSwap(nil, si) {
		return ErrAlreadyInitialized
	}
	return nil
}

// get never returns nil: before Init it serves the zero record so accessors
// degrade to zero values instead of panicking.
func get() *SystemInfo {
	if si := global.Load(); si != nil {
		return si
	}
	return &zeroInfo
}

// CPUCount returns the number of logical CPUs installed at boot.
func CPUCount() int {
	return get().CPUCount()
}

// CacheLineSize returns the detected cache line size in bytes.
func CacheLineSize() int {
	return get().CacheLineSize()
}

// PageSize returns the default memory page size in bytes.
func PageSize() uint64 {
	return get().PageSize()
}

// HugePageSize returns the default huge page size in bytes, 0 if unknown.
func HugePageSize() uint64 {
	return get().HugePageSize()
}

// HugePageDir returns the hugetlbfs mount point, "" where not applicable.
func HugePageDir() string {
	return get().HugePageDir()
}

// CPUModel returns the model name of the given logical CPU.
func CPUModel(id int) (string, bool) {
	return get().CPUModel(id)
}

// CPUHzMax returns the maximum clock frequency of the given logical CPU.
func CPUHzMax(id int) uint64 {
	return get().CPUHzMax(id)
}

// CPUHz returns the current clock frequency of the given logical CPU.
func CPUHz(id int) uint64 {
	return get().CPUHz(id)
}

// CPUHzSelf returns the current clock frequency of the calling CPU.
func CPUHzSelf() uint64 {
	return get().CPUHzSelf()
}
