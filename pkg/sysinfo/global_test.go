package sysinfo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestInitLifecycle exercises the process-global store end to end: the
// degenerate pre-init record, exactly-once initialization, and concurrent
// post-init reads. It must stay a single test because Init publishes
// process-wide state.
func TestInitLifecycle(t *testing.T) {
	// Before Init every accessor serves the zero record.
	require.Equal(t, 0, CPUCount())
	require.Equal(t, 0, CacheLineSize())
	require.Equal(t, uint64(0), PageSize())
	require.Equal(t, uint64(0), HugePageSize())
	require.Equal(t, "", HugePageDir())
	_, ok := CPUModel(0)
	require.False(t, ok)
	require.Equal(t, uint64(0), CPUHz(0))

	cfg := defaultTestConfig()
	cfg.RequireHugePages = true
	require.NoError(t, Init(cfg, zap.NewNop()))

	// Initialization happens exactly once per process.
	require.ErrorIs(t, Init(defaultTestConfig(), zap.NewNop()), ErrAlreadyInitialized)

	require.Equal(t, 4, CPUCount())
	require.Equal(t, CacheLineBytes, CacheLineSize())
	require.Equal(t, uint64(2097152), HugePageSize())
	require.Equal(t, "/dev/hugepages", HugePageDir())

	model, ok := CPUModel(1)
	require.True(t, ok)
	require.Equal(t, "Intel(R) Xeon(R) Gold 6230 CPU @ 2.50GHz", model)
	require.Equal(t, uint64(2500000000), CPUHzMax(0))

	// Out-of-range ids degrade to absent values, never out-of-bounds reads.
	for _, id := range []int{-1, -100, MaxCPUCount, MaxCPUCount + 7} {
		_, ok := CPUModel(id)
		require.False(t, ok)
		require.Equal(t, uint64(0), CPUHzMax(id))
		require.Equal(t, uint64(0), CPUHz(id))
	}

	// The snapshot is immutable: concurrent readers always observe the same
	// values without synchronization.
	wantCount := CPUCount()
	wantModel, _ := CPUModel(0)
	wantHz := CPUHzMax(0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				require.Equal(t, wantCount, CPUCount())
				require.Equal(t, wantHz, CPUHzMax(0))
				model, ok := CPUModel(0)
				require.True(t, ok)
				require.Equal(t, wantModel, model)
				require.Equal(t, CacheLineBytes, CacheLineSize())
			}
		}()
	}
	wg.Wait()
}
