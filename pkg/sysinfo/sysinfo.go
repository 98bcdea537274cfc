// Package sysinfo discovers static host machine characteristics once at
// process startup and exposes them through read-only accessors.
//
// Init must be called by process bootstrap before any worker starts and
// before memory pools are sized. After a successful Init the snapshot is
// immutable and safe for any number of concurrent readers without locking.
package sysinfo

// MaxCPUCount is the highest number of logical CPUs the dataplane addresses.
// Processor records beyond this index are ignored during discovery and
// rejected by the indexed accessors.
const MaxCPUCount = 128

// DefaultPageSize is the page size assumed on deployments that do not
// require explicit huge page support.
const DefaultPageSize = 4096

// SystemInfo is an immutable snapshot of boot-time host characteristics.
// Detect is the only producer; the zero value is the degenerate record
// returned by the package accessors before initialization.
type SystemInfo struct {
	cpuCount            int
	cacheLineSize       int
	pageSize            uint64
	defaultHugePageSize uint64
	hugePageDir         string

	cpuHzMax [MaxCPUCount]uint64
	modelStr [MaxCPUCount]string

	sampleHz func(cpu int) uint64
}

// CPUCount returns the number of logical CPUs installed at boot.
func (si *SystemInfo) CPUCount() int {
	return si.cpuCount
}

// CacheLineSize returns the detected cache line size in bytes. After a
// successful Detect it always equals CacheLineBytes.
func (si *SystemInfo) CacheLineSize() int {
	return si.cacheLineSize
}

// PageSize returns the default memory page size in bytes.
func (si *SystemInfo) PageSize() uint64 {
	return si.pageSize
}

// HugePageSize returns the kernel's default huge page size in bytes, 0 when
// huge pages are unsupported or the size is unknown.
func (si *SystemInfo) HugePageSize() uint64 {
	return si.defaultHugePageSize
}

// HugePageDir returns the hugetlbfs mount point, "" on deployments that do
// not require one.
func (si *SystemInfo) HugePageDir() string {
	return si.hugePageDir
}

// CPUModel returns the model name of the given logical CPU. ok is false when
// id is out of [0, MaxCPUCount) or the model is unknown.
func (si *SystemInfo) CPUModel(id int) (model string, ok bool) {
	if id < 0 || id >= MaxCPUCount || si.modelStr[id] == "" {
		return "", false
	}
	return si.modelStr[id], true
}

// CPUHzMax returns the maximum clock frequency of the given logical CPU in
// Hz, 0 when id is out of range or the frequency is unknown.
func (si *SystemInfo) CPUHzMax(id int) uint64 {
	if id < 0 || id >= MaxCPUCount {
		return 0
	}
	return si.cpuHzMax[id]
}

// CPUHz returns the current clock frequency of the given logical CPU in Hz,
// as reported by the live sampling collaborator. Returns 0 when id is out of
// range; the sampler result is forwarded unchanged otherwise.
func (si *SystemInfo) CPUHz(id int) uint64 {
	if id < 0 || id >= MaxCPUCount || si.sampleHz == nil {
		return 0
	}
	return si.sampleHz(id)
}

// CPUHzSelf returns the current clock frequency of the CPU executing the
// caller, 0 when the calling CPU cannot be resolved.
func (si *SystemInfo) CPUHzSelf() uint64 {
	id := currentCPU()
	if id < 0 {
		return 0
	}
	return si.CPUHz(id)
}
