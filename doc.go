// Package hipmatmul models the AMDGPU MFMA matrix-core builtin
// __builtin_amdgcn_mfma_f32_16x16x4f32 on the host CPU, with ordinary
// goroutines playing the role of GPU lanes inside a single 64-lane wavefront.
//
// On real hardware the MFMA instruction moves operand elements between lanes
// and synchronizes the wavefront implicitly. This package makes every one of
// those steps explicit and step-debuggable: each lane publishes its operand
// elements into wavefront-shared tiles, waits at a subgroup barrier, then
// accumulates its private 4-element output fragment by reading the full
// tiles, including every other lane's contribution.
//
// Example usage:
//
//	w := hipmatmul.NewWavefront()
//	a := make([]float32, hipmatmul.ThreadsPerSubgroup)
//	b := make([]float32, hipmatmul.ThreadsPerSubgroup)
//	c := make([]hipmatmul.Float4, hipmatmul.ThreadsPerSubgroup)
//	hipmatmul.InitTestMatrices(a, b, c)
//
//	// Think of this as a kernel<<<1, 64>>> launch.
//	w.Launch(hipmatmul.MatmulKernelF32_16x16x4(a, b, c))
//
// The emulation is pedagogical and diagnostic, not a performance path: a
// wavefront of 64 preemptible OS-scheduled goroutines will never compete
// with a matrix core. What it buys is the ability to attach a debugger, or
// the race detector, to the exact data movement a real MFMA performs in
// silicon.
package hipmatmul
