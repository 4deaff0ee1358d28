package hipmatmul

import (
	"sync"
)

// Wavefront is one subgroup session: the operand tiles shared by all 64
// lanes, and the barrier they synchronize on. Construct one Wavefront per
// subgroup and share it across the lanes' whole computation; the tiles are
// reused by every MFMA issued through it, since each lane overwrites only
// its own slot on every instruction.
//
// Slot i of each tile holds the operand scalar most recently contributed by
// lane i. Lanes write only their own slot and read the others only after
// the barrier, so the single barrier is the only synchronization needed.
type Wavefront struct {
	aTile   [ThreadsPerSubgroup]float32
	bTile   [ThreadsPerSubgroup]float32
	barrier *Barrier
}

// KernelFunc is a device-kernel body. Launch runs it once per lane, on that
// lane's own worker goroutine, with the lane identity bound.
type KernelFunc func(l *Lane)

// NewWavefront creates a wavefront session with fresh tiles and a barrier
// sized to ThreadsPerSubgroup.
func NewWavefront() *Wavefront {
	return &Wavefront{barrier: NewBarrier(ThreadsPerSubgroup)}
}

// Launch spawns exactly ThreadsPerSubgroup workers, binds lane i to worker
// i, and runs the kernel on each. It joins all workers before returning, so
// results written by the kernel are visible to the caller as soon as Launch
// returns. Think of it as kernel<<<1, 64>>> followed by a device sync.
//
// Every launch must run the full cohort: kernels that reach the subgroup
// barrier with fewer than 64 live lanes deadlock by contract.
func (w *Wavefront) Launch(kernel KernelFunc) error {
	if kernel == nil {
		return ErrNilKernel
	}

	var wg sync.WaitGroup
	wg.Add(ThreadsPerSubgroup)
	for i := 0; i < ThreadsPerSubgroup; i++ {
		lane := w.Lane(i)
		go func() {
			defer wg.Done()
			kernel(lane)
		}()
	}
	wg.Wait()
	return nil
}
