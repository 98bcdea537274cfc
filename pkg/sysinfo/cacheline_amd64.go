package sysinfo

// CacheLineBytes is the cache line size the dataplane is built for. Shared
// structures are padded to this boundary, so detection must agree with it.
const CacheLineBytes = 64
