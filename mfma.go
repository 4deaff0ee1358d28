package hipmatmul

// Float4 is a fixed-size 4-element accumulator fragment, the host-side
// equivalent of the hardware's register-sized float32x4 vector type. It is
// a value type: fragments are passed in, mutated by accumulation, and
// returned, never aliased between lanes.
type Float4 [FragmentLen]float32

// MFMAF32_16x16x4 is functionally equivalent to the AMDGPU builtin
// __builtin_amdgcn_mfma_f32_16x16x4f32, just with goroutines instead of GPU
// lanes. It must be called concurrently by all 64 lanes of the wavefront for
// the same logical instruction.
//
// Each lane contributes one element of A and one of B, but needs elements
// passed to the other lanes as well, so the computation runs in four steps:
//
//  1. Publish a and b into the wavefront's shared tiles at this lane's slot.
//     This is the lane's only write to shared state.
//  2. Wait at the subgroup barrier for every lane's contribution to land.
//     No tile slot may be read before this edge.
//  3. Accumulate this lane's private fragment from the full tiles. Lane id
//     alone determines the fragment's coordinates: rows m..m+3, column n,
//     with m = 4*(id/16) and n = id%16.
//  4. Wait at the barrier again before returning, so every lane has
//     finished reading this instruction's tiles before any lane can start
//     publishing the next instruction's operands over them.
//
// The reduction depth is fixed at K=4. Callers running a deeper reduction
// issue this instruction repeatedly, accumulating into the same fragment;
// the trailing barrier is what makes the tiles safe to reuse across such
// back-to-back invocations on one wavefront. NaN and Inf inputs propagate
// under ordinary IEEE semantics.
func (l *Lane) MFMAF32_16x16x4(a, b float32, c Float4) Float4 {
	w := l.wf

	// Record the single a and b elements passed to this lane, so the other
	// lanes can see them.
	w.aTile[l.id] = a
	w.bTile[l.id] = b

	// Wait for all lanes to have made their contributions to the tiles.
	w.barrier.Await()

	// Now compute, reading the whole tiles.
	m, n := l.Coords()
	for k := 0; k < TileK; k++ {
		for p := 0; p < FragmentLen; p++ {
			c[p] += w.aTile[TileM*k+m+p] * w.bTile[TileN*k+n]
		}
	}

	// Hold every lane here until the whole wavefront is done reading, so a
	// fast lane's next publish cannot land on tiles a slow lane still reads.
	w.barrier.Await()
	return c
}

// MatmulKernelF32_16x16x4 builds the device kernel for one full MFMA
// instruction: lane i consumes a[i] and b[i] and accumulates into c[i].
// The slices are laid out per-lane: a holds A(m, k) at index 16*k+m, b holds
// B(k, n) at index 16*k+n, and c[i] is lane i's private fragment.
func MatmulKernelF32_16x16x4(a, b []float32, c []Float4) KernelFunc {
	return func(l *Lane) {
		i := l.ID()
		c[i] = l.MFMAF32_16x16x4(a[i], b[i], c[i])
	}
}
