package hipmatmul

import (
	"fmt"
	"sync"
	"unsafe"
)

// MemcpyKind specifies the direction of memory transfer. The emulation has a
// unified address space, so all kinds are plain copies; the kinds exist so a
// host program keeps the hipMalloc/hipMemcpy/launch/copy-back shape it would
// have against a real device.
type MemcpyKind int

const (
	MemcpyHostToHost     MemcpyKind = iota // Host to host transfer
	MemcpyHostToDevice                     // Host to device transfer
	MemcpyDeviceToHost                     // Device to host transfer
	MemcpyDeviceToDevice                   // Device to device transfer
)

// DevicePtr represents a pointer to emulated device memory. Use the typed
// view methods (Float32, Float4s, Byte) to access the underlying data.
type DevicePtr struct {
	ptr  unsafe.Pointer
	size int
}

// MemoryPool manages device-style memory allocation with reuse. It keeps a
// free list of released blocks and tracks allocation statistics.
type MemoryPool struct {
	mu         sync.Mutex
	allocated  map[uintptr]*allocation
	freeList   []*allocation
	totalAlloc int64
	peakAlloc  int64
}

type allocation struct {
	ptr  unsafe.Pointer
	buf  []byte // keeps the backing array reachable
	size int
	used bool
}

// NewMemoryPool creates a new memory pool.
func NewMemoryPool() *MemoryPool {
	return &MemoryPool{
		allocated: make(map[uintptr]*allocation),
	}
}

var defaultPool = NewMemoryPool()

// Malloc allocates device memory of the specified size in bytes, aligned to
// MemoryAlignment.
//
// Example:
//
//	d_a, err := hipmatmul.Malloc(hipmatmul.ThreadsPerSubgroup * 4)
//	if err != nil {
//	    return err
//	}
//	defer hipmatmul.Free(d_a)
func Malloc(size int) (DevicePtr, error) {
	return defaultPool.Allocate(size)
}

// Free releases device memory allocated by Malloc. The block may be retained
// in the pool for future allocations.
func Free(ptr DevicePtr) error {
	return defaultPool.Free(ptr)
}

// Memcpy copies memory between host slices and device pointers. Supported
// operand types are DevicePtr, []byte, []float32, and []Float4; size is in
// bytes.
//
// Example:
//
//	h_a := make([]float32, 64)
//	d_a, _ := hipmatmul.Malloc(64 * 4)
//	hipmatmul.Memcpy(d_a, h_a, 64*4, hipmatmul.MemcpyHostToDevice)
func Memcpy(dst, src interface{}, size int, kind MemcpyKind) error {
	dstPtr, err := memOperand("Memcpy", "dst", dst)
	if err != nil {
		return err
	}
	srcPtr, err := memOperand("Memcpy", "src", src)
	if err != nil {
		return err
	}

	if size <= 0 {
		return nil
	}
	// An empty slice or zero DevicePtr resolves to a nil pointer; copying a
	// positive size from or to one would silently truncate.
	if dstPtr == nil || srcPtr == nil {
		return ErrNullPointer
	}

	copy((*[1 << 30]byte)(dstPtr)[:size:size], (*[1 << 30]byte)(srcPtr)[:size:size])
	return nil
}

// memOperand resolves a Memcpy operand to a raw pointer
func memOperand(op, name string, v interface{}) (unsafe.Pointer, error) {
	switch s := v.(type) {
	case DevicePtr:
		return s.ptr, nil
	case []byte:
		if len(s) > 0 {
			return unsafe.Pointer(&s[0]), nil
		}
	case []float32:
		if len(s) > 0 {
			return unsafe.Pointer(&s[0]), nil
		}
	case []Float4:
		if len(s) > 0 {
			return unsafe.Pointer(&s[0]), nil
		}
	default:
		return nil, NewInvalidArgError(op, fmt.Sprintf("unsupported %s type: %T", name, v))
	}
	return nil, nil
}

// MemoryPool methods

// Allocate allocates memory from the pool
func (mp *MemoryPool) Allocate(size int) (DevicePtr, error) {
	if size <= 0 {
		return DevicePtr{}, ErrInvalidSize
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	alignedSize := (size + MemoryAlignment - 1) &^ (MemoryAlignment - 1)
	if alignedSize < MinAllocationSize {
		alignedSize = MinAllocationSize
	}

	// Try to reuse from the free list first
	for i, alloc := range mp.freeList {
		if alloc.size >= alignedSize {
			mp.freeList = append(mp.freeList[:i], mp.freeList[i+1:]...)
			alloc.used = true

			mp.totalAlloc += int64(alloc.size)
			if mp.totalAlloc > mp.peakAlloc {
				mp.peakAlloc = mp.totalAlloc
			}

			return DevicePtr{ptr: alloc.ptr, size: size}, nil
		}
	}

	buf := make([]byte, alignedSize)
	ptr := unsafe.Pointer(&buf[0])

	alloc := &allocation{
		ptr:  ptr,
		buf:  buf,
		size: alignedSize,
		used: true,
	}
	mp.allocated[uintptr(ptr)] = alloc

	mp.totalAlloc += int64(alignedSize)
	if mp.totalAlloc > mp.peakAlloc {
		mp.peakAlloc = mp.totalAlloc
	}

	return DevicePtr{ptr: ptr, size: size}, nil
}

// Free returns memory to the pool
func (mp *MemoryPool) Free(ptr DevicePtr) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	alloc, ok := mp.allocated[uintptr(ptr.ptr)]
	if !ok {
		return NewMemoryError("Free", "pointer not found in allocation pool", nil)
	}
	if !alloc.used {
		return ErrDoubleFree
	}

	alloc.used = false
	mp.freeList = append(mp.freeList, alloc)
	mp.totalAlloc -= int64(alloc.size)
	return nil
}

// GetStats returns current and peak allocated bytes
func (mp *MemoryPool) GetStats() (allocated, peak int64) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.totalAlloc, mp.peakAlloc
}

// DevicePtr view methods

// Float32 returns a float32 slice view of the device memory.
//
// Example:
//
//	d_a, _ := hipmatmul.Malloc(64 * 4)
//	a := d_a.Float32()
//	a[0] = 1.0 // Direct access
func (d DevicePtr) Float32() []float32 {
	if d.ptr == nil {
		return nil
	}
	n := d.size / 4
	return (*[1 << 28]float32)(d.ptr)[:n:n]
}

// Float4s returns a Float4 fragment slice view of the device memory.
//
// Example:
//
//	d_c, _ := hipmatmul.Malloc(64 * 16) // 64 fragments
//	c := d_c.Float4s()
func (d DevicePtr) Float4s() []Float4 {
	if d.ptr == nil {
		return nil
	}
	n := d.size / (4 * FragmentLen)
	return (*[1 << 26]Float4)(d.ptr)[:n:n]
}

// Byte returns a byte slice view covering the whole region.
func (d DevicePtr) Byte() []byte {
	if d.ptr == nil {
		return nil
	}
	return (*[1 << 30]byte)(d.ptr)[:d.size:d.size]
}

// Size returns the size in bytes of the memory region
func (d DevicePtr) Size() int {
	return d.size
}
