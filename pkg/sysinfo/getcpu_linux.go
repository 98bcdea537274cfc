//go:build linux

package sysinfo

import "golang.org/x/sys/unix"

// currentCPU resolves the CPU executing the calling goroutine. The result is
// advisory: the scheduler may migrate the goroutine at any point.
func currentCPU() int {
	cpu, _, err := unix.Getcpu()
	if err != nil {
		return -1
	}
	return cpu
}
