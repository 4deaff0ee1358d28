package hipmatmul

import (
	"sync"
)

// Barrier is a reusable synchronization point with a fixed arrival count.
// No goroutine proceeds past Await until all parties have arrived. The
// barrier then resets itself for the next round: release is tied to a
// generation counter, so a fast goroutine arriving for round N+1 can never
// be released by round N's broadcast.
//
// This is the host-side stand-in for the implicit wavefront synchronization
// a matrix-core instruction performs in hardware.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	round   uint64
}

// NewBarrier creates a barrier for the given number of participants.
// Panics if parties is not positive.
func NewBarrier(parties int) *Barrier {
	if parties <= 0 {
		panic("hipmatmul: barrier requires a positive participant count")
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Await blocks until all parties have called Await for the current round,
// then releases them together. Passing the barrier establishes a
// happens-before edge: every write made by any participant before its Await
// is visible to every participant after its Await returns.
//
// A cohort smaller than parties deadlocks here. That is the contract, not a
// detected condition: a wavefront with missing lanes hangs exactly as a GPU
// would on a partially-executed cross-lane instruction.
func (b *Barrier) Await() {
	b.mu.Lock()
	round := b.round
	b.waiting++
	if b.waiting == b.parties {
		// Last arrival opens the barrier and resets it for the next round.
		b.waiting = 0
		b.round++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for round == b.round {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Parties returns the fixed arrival count.
func (b *Barrier) Parties() int {
	return b.parties
}
