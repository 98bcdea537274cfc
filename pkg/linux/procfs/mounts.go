package procfs

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

const hugetlbfsType = "hugetlbfs"

// ErrNoHugetlbMount is reported when the mount table contains no hugetlbfs
// entry. The caller must mount hugetlbfs before retrying initialization.
var ErrNoHugetlbMount = errors.New("no hugetlbfs mount found")

// HugetlbMountPoint scans the live mount table and returns the mount point
// of the first hugetlbfs filesystem.
func (f *ProcFS) HugetlbMountPoint() (string, error) {
	file, err := f.fs.Open("mounts")
	if err != nil {
		return "", fmt.Errorf("failed to open mounts: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		// Device, mount point and filesystem type lead every mount entry.
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return "", fmt.Errorf("%w: mounts line %q", ErrMalformed, line)
		}

		if fields[2] == hugetlbfsType {
			return fields[1], nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", ErrNoHugetlbMount
}
