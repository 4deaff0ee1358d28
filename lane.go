package hipmatmul

import (
	"fmt"
)

// Lane identifies one worker goroutine acting as a GPU lane within a
// wavefront. Device kernels have a threadIdx implicitly available to them;
// the Lane value bound to each worker at spawn is the explicit equivalent.
// The id is assigned once, before the kernel runs, and is immutable for the
// lifetime of the worker.
type Lane struct {
	id int
	wf *Wavefront
}

// Lane binds a lane identity to this wavefront. It is called once per worker
// by Launch, immediately after spawn; kernels receive the resulting *Lane and
// read the id through it for the rest of the worker's life.
//
// An out-of-range id is a programming error, mirroring the device-side
// assert: it panics rather than returning an error.
func (w *Wavefront) Lane(id int) *Lane {
	if id < 0 || id >= ThreadsPerSubgroup {
		panic(fmt.Sprintf("hipmatmul: lane id %d out of range [0, %d) - current limitation: only one subgroup",
			id, ThreadsPerSubgroup))
	}
	return &Lane{id: id, wf: w}
}

// ID returns the lane id in [0, ThreadsPerSubgroup).
func (l *Lane) ID() int {
	return l.id
}

// Coords returns the output-fragment coordinates this lane owns: the base
// row m in {0, 4, 8, 12} and the column n in [0, 16). Each lane's fragment
// covers C rows m..m+3 of column n. The 64 lanes tile the 4x16 grid of
// (m, n) pairs exactly, with no collision and no gap.
func (l *Lane) Coords() (m, n int) {
	return FragmentLen * (l.id / TileM), l.id % TileN
}
