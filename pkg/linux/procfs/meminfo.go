package procfs

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// DefaultHugePageSize scans meminfo for the kernel's default huge page size
// and returns it in bytes. A meminfo without a Hugepagesize line yields
// (0, nil): the kernel was built without huge page support.
func (f *ProcFS) DefaultHugePageSize() (uint64, error) {
	file, err := f.fs.Open("meminfo")
	if err != nil {
		return 0, fmt.Errorf("failed to open meminfo: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Hugepagesize:") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 || fields[2] != "kB" {
			return 0, fmt.Errorf("%w: meminfo line %q", ErrMalformed, line)
		}

		size, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: meminfo line %q", ErrMalformed, line)
		}
		return size << 10, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return 0, nil
}
