package sysinfo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/pktfabric/dataplane/pkg/linux/cpuinfo"
	"github.com/pktfabric/dataplane/pkg/linux/procfs"
	"github.com/pktfabric/dataplane/pkg/linux/sysfs"
)

// ParseCPUInfo is the architecture-specific processor descriptor parser
// contract: it receives the open descriptor source and reports one record
// per discovered core. Records with indices outside [0, MaxCPUCount) are
// discarded by the orchestrator.
type ParseCPUInfo func(r io.Reader) ([]cpuinfo.CPU, error)

// CacheLineProber reports the data cache line size of the boot CPU. A result
// of (0, nil) means the platform does not expose one and the build-time
// default applies.
type CacheLineProber interface {
	CacheLineSize() (int, error)
}

// FixedCacheLine is a CacheLineProber reporting a constant, for platforms
// without cacheinfo support.
type FixedCacheLine int

func (f FixedCacheLine) CacheLineSize() (int, error) {
	return int(f), nil
}

// Config controls discovery. The zero value probes the live system and
// treats huge pages as optional.
type Config struct {
	// RequireHugePages makes a mounted hugetlbfs mandatory and switches page
	// size detection from the build-time default to the OS.
	RequireHugePages bool `yaml:"require_huge_pages"`

	// InstalledCPUs is the logical CPU count cached by process bootstrap.
	// When 0, the kernel's possible-CPU mask is counted instead.
	InstalledCPUs int `yaml:"installed_cpus"`

	// Proc and Sys override the descriptor sources, for tests.
	Proc *procfs.ProcFS `yaml:"-"`
	Sys  *sysfs.SysFS   `yaml:"-"`

	// CacheProber overrides the cache line size probe.
	CacheProber CacheLineProber `yaml:"-"`

	// Parser overrides the processor descriptor parser collaborator.
	Parser ParseCPUInfo `yaml:"-"`

	// SampleHz overrides the live frequency sampling collaborator.
	SampleHz func(cpu int) uint64 `yaml:"-"`
}

func (c *Config) FillDefault() {
	if c.Proc == nil {
		c.Proc = procfs.FS()
	}
	if c.Sys == nil {
		c.Sys = sysfs.FS()
	}
	if c.CacheProber == nil {
		c.CacheProber = c.Sys
	}
	if c.Parser == nil {
		c.Parser = cpuinfo.Parse
	}
	if c.SampleHz == nil {
		c.SampleHz = cpuinfo.CurrentHz
	}
}

// Detect probes the host and builds the system info snapshot. Probes run in
// a fixed order: page size, huge page mount, processor descriptors, logical
// CPU count, cache line size, default huge page size. Every probe except the
// huge page size is mandatory; there is no retry logic because all probes
// read boot-time-stable facts.
func Detect(cfg Config, l *zap.Logger) (*SystemInfo, error) {
	cfg.FillDefault()

	si := &SystemInfo{sampleHz: cfg.SampleHz}

	if cfg.RequireHugePages {
		pageSize := os.Getpagesize()
		if pageSize <= 0 {
			return nil, fmt.Errorf("%w: OS reported page size %d", ErrProbe, pageSize)
		}
		si.pageSize = uint64(pageSize)

		dir, err := cfg.Proc.HugetlbMountPoint()
		switch {
		case err == nil:
			l.Debug("Found huge page dir", zap.String("dir", dir))
			si.hugePageDir = dir
		case errors.Is(err, procfs.ErrNoHugetlbMount):
			return nil, fmt.Errorf("%w: mount hugetlbfs before starting the dataplane", ErrNotFound)
		case errors.Is(err, procfs.ErrMalformed):
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		default:
			return nil, fmt.Errorf("huge page mount scan: %w", err)
		}
	} else {
		si.pageSize = DefaultPageSize
	}

	file, err := cfg.Proc.OpenCPUInfo()
	if err != nil {
		return nil, fmt.Errorf("processor descriptors: %w", err)
	}
	cpus, err := cfg.Parser(file)
	_ = file.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	for _, cpu := range cpus {
		if cpu.Index < 0 || cpu.Index >= MaxCPUCount {
			continue
		}
		si.cpuHzMax[cpu.Index] = cpu.MaxHz
		si.modelStr[cpu.Index] = cpu.ModelName
	}

	count := cfg.InstalledCPUs
	if count == 0 {
		count = installedCPUs(cfg.Sys, l)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: no logical CPUs detected", ErrProbe)
	}
	si.cpuCount = count

	lineSize, err := cfg.CacheProber.CacheLineSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	if lineSize == 0 {
		// No cacheinfo support on this platform.
		lineSize, _ = FixedCacheLine(CacheLineBytes).CacheLineSize()
	}
	if lineSize <= 0 {
		return nil, fmt.Errorf("%w: cache line size %d", ErrProbe, lineSize)
	}
	if lineSize != CacheLineBytes {
		return nil, fmt.Errorf("%w: detected cache line size %d, built for %d",
			ErrConsistency, lineSize, CacheLineBytes)
	}
	si.cacheLineSize = lineSize

	hugeSize, err := cfg.Proc.DefaultHugePageSize()
	if err != nil {
		// Huge pages are an optimization, not a requirement.
		l.Warn("Failed to detect default huge page size", zap.Error(err))
		hugeSize = 0
	}
	if hugeSize == 0 {
		l.Info("No default huge page size reported by the kernel")
	}
	si.defaultHugePageSize = hugeSize

	l.Info("Host discovery complete",
		zap.Int("cpus", si.cpuCount),
		zap.Int("cache_line_size", si.cacheLineSize),
		zap.Uint64("page_size", si.pageSize),
		zap.Uint64("huge_page_size", si.defaultHugePageSize),
	)

	return si, nil
}

func installedCPUs(sys *sysfs.SysFS, l *zap.Logger) int {
	cpus, err := sys.PossibleCPUs()
	if err != nil {
		l.Warn("Failed to read possible CPU mask", zap.Error(err))
		return runtime.NumCPU()
	}
	return len(cpus)
}
