// Package cpuinfo parses the per-core records of the Linux processor
// descriptor source.
package cpuinfo

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const procCPUInfoPath = "/proc/cpuinfo"

// CPU is one processor record.
type CPU struct {
	Index     int
	VendorID  string
	ModelName string

	// MaxHz is the nominal maximum clock frequency, 0 when the record does
	// not expose one.
	MaxHz uint64
}

// model name      : Intel(R) Xeon(R) Gold 6230 CPU @ 2.10GHz
var modelFreqRgxp = regexp.MustCompile(`@ ([0-9.]+)GHz$`)

// Parse reads every processor record from r. Records start at a "processor"
// field; the other fields are "key : value" lines. The nominal maximum
// frequency is taken from the model name suffix where present and falls back
// to the current "cpu MHz" value.
func Parse(r io.Reader) ([]CPU, error) {
	var cpus []CPU
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
				return nil, fmt.Errorf("malformed processor index %q: %w", value, err)
			}
			cpus = append(cpus, CPU{Index: index})
			cur = len(cpus) - 1
		case "vendor_id", "CPU implementer":
			if cur >= 0 {
				cpus[cur].VendorID = value
			}
		case "model name", "Processor":
			if cur >= 0 {
				cpus[cur].ModelName = value
				if hz := modelNameHz(value); hz != 0 {
					cpus[cur].MaxHz = hz
				}
			}
		case "cpu MHz":
			if cur >= 0 && cpus[cur].MaxHz == 0 {
				hz, err := parseMHz(value)
				if err != nil {
					return nil, err
				}
				cpus[cur].MaxHz = hz
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cpus, nil
}

func modelNameHz(model string) uint64 {
	m := modelFreqRgxp.FindStringSubmatch(model)
	if m == nil {
		return 0
	}
	ghz, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return uint64(ghz * 1e9)
}

func parseMHz(value string) (uint64, error) {
	mhz, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed cpu MHz %q: %w", value, err)
	}
	return uint64(mhz * 1e6), nil
}
