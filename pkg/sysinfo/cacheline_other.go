//go:build !amd64 && !arm64 && !ppc64 && !ppc64le

package sysinfo

// CacheLineBytes is the cache line size the dataplane is built for.
const CacheLineBytes = 64
