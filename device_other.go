//go:build !linux
// +build !linux

// Package hipmatmul system memory stub for non-Linux platforms
package hipmatmul

// getSystemMemory returns 0 where no portable query is wired up; callers
// treat 0 as unknown.
func getSystemMemory() uint64 {
	return 0
}
