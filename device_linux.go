//go:build linux
// +build linux

// Package hipmatmul Linux-specific system memory query
package hipmatmul

import (
	"golang.org/x/sys/unix"
)

// getSystemMemory returns total system memory in bytes
func getSystemMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	return uint64(info.Totalram) * uint64(info.Unit)
}
