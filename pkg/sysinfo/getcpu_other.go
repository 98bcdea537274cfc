//go:build !linux

package sysinfo

func currentCPU() int {
	return -1
}
