package procfs

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestHugetlbMountPoint(t *testing.T) {
	for _, test := range []struct {
		name     string
		fs       fstest.MapFS
		err      error
		error    string
		expected string
	}{
		{
			name: "mounted",
			fs: fstest.MapFS{
				"mounts": &fstest.MapFile{Mode: 0o444, Data: []byte(`sysfs /sys sysfs rw,nosuid,nodev,noexec,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
none /dev/hugepages hugetlbfs rw 0 0
tmpfs /run tmpfs rw,nosuid,nodev 0 0
`)},
			},
			expected: "/dev/hugepages",
		},
		{
			name: "first mount wins",
			fs: fstest.MapFS{
				"mounts": &fstest.MapFile{Mode: 0o444, Data: []byte(`hugetlbfs /mnt/huge hugetlbfs rw,relatime 0 0
none /dev/hugepages hugetlbfs rw 0 0
`)},
			},
			expected: "/mnt/huge",
		},
		{
			name: "not mounted",
			fs: fstest.MapFS{
				"mounts": &fstest.MapFile{Mode: 0o444, Data: []byte(`sysfs /sys sysfs rw 0 0
proc /proc proc rw 0 0
`)},
			},
			err: ErrNoHugetlbMount,
		},
		{
			name: "short line",
			fs: fstest.MapFS{
				"mounts": &fstest.MapFile{Mode: 0o444, Data: []byte("sysfs /sys\n")},
			},
			err: ErrMalformed,
		},
		{
			name:  "missing mounts",
			fs:    fstest.MapFS{},
			error: "failed to open mounts",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := NewFromFS(test.fs)

			dir, err := p.HugetlbMountPoint()

			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			if test.error != "" {
				require.ErrorContains(t, err, test.error)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, dir)
		})
	}
}
