// Package cpulist parses the kernel CPU list syntax ("0-4,7,9-11") used by
// sysfs CPU masks such as /sys/devices/system/cpu/possible.
package cpulist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func Parse(r io.Reader) ([]int, error) {
	res := []int{}

	br := bufio.NewScanner(r)
	for br.Scan() {
		line := strings.TrimSpace(br.Text())
		if line == "" {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			if index := strings.IndexByte(part, '-'); index != -1 {
				first, err := strconv.Atoi(part[:index])
				if err != nil {
					return nil, fmt.Errorf("malformed cpu range %q: %w", part, err)
				}
				last, err := strconv.Atoi(part[index+1:])
				if err != nil {
					return nil, fmt.Errorf("malformed cpu range %q: %w", part, err)
				}
				for first <= last {
					res = append(res, first)
					first++
				}
			} else {
				cpu, err := strconv.Atoi(part)
				if err != nil {
					return nil, fmt.Errorf("malformed cpu id %q: %w", part, err)
				}
				res = append(res, cpu)
			}
		}
	}

	if err := br.Err(); err != nil {
		return nil, err
	}

	return res, nil
}
