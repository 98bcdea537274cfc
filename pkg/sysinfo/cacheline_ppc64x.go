//go:build ppc64 || ppc64le

package sysinfo

// CacheLineBytes is the cache line size the dataplane is built for. POWER
// cores use 128-byte lines.
const CacheLineBytes = 128
