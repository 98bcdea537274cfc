package cpuinfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CurrentHz samples the current clock frequency of the given logical CPU by
// re-reading the processor descriptor source. Returns 0 when the frequency
// is not exposed or the CPU is unknown.
func CurrentHz(cpu int) uint64 {
	f, err := os.Open(procCPUInfoPath)
	if err != nil {
		return 0
	}
	defer f.Close()

	hz, err := SampleHz(f, cpu)
	if err != nil {
		return 0
	}
	return hz
}

// SampleHz extracts the "cpu MHz" field of the requested processor record,
// in Hz. Returns (0, nil) when the record or the field is absent.
func SampleHz(r io.Reader, cpu int) (uint64, error) {
	cur := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			index, err := strconv.Atoi(value)
			if err != nil {
				return 0, fmt.Errorf("malformed processor index %q: %w", value, err)
			}
			cur = index
		case "cpu MHz":
			if cur == cpu {
				return parseMHz(value)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return 0, nil
}
