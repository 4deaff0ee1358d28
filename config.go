// Package hipmatmul configuration constants
package hipmatmul

// Wavefront geometry
const (
	// ThreadsPerSubgroup is the number of lanes in one wavefront.
	// Fixed at 64, matching AMDGPU wave64 execution. The lane-to-fragment
	// mapping in MFMAF32_16x16x4 is derived for exactly this count;
	// other sizes need a re-derived mapping, not a changed constant.
	ThreadsPerSubgroup = 64
)

// MFMA tile shape (the 16x16x4 in f32_16x16x4f32)
const (
	// TileM is the number of rows of the A operand and the C accumulator
	TileM = 16

	// TileN is the number of columns of the B operand and the C accumulator
	TileN = 16

	// TileK is the reduction depth of a single MFMA instruction
	TileK = 4

	// FragmentLen is the number of accumulator elements each lane owns
	FragmentLen = 4
)

// Memory shim parameters
const (
	// Memory alignment for device-style allocations
	MemoryAlignment = 64

	// Minimum allocation size to prevent fragmentation
	MinAllocationSize = 64
)
