// mfma-demo runs one emulated __builtin_amdgcn_mfma_f32_16x16x4f32
// instruction over the identity-based test matrices and prints the operands
// and the result, the same walkthrough a debugger session would step
// through lane by lane.
package main

import (
	"fmt"
	"log"
	"os"

	hipmatmul "github.com/bjacob/hip-matmul"
)

func main() {
	dev := hipmatmul.GetDevice()
	fmt.Printf("Emulating a %d-lane wavefront on %s (%d cores)\n",
		dev.WavefrontSize, dev.Name, dev.NumCores)
	fmt.Println(hipmatmul.GetCPUInfo())
	fmt.Println()

	const n = hipmatmul.ThreadsPerSubgroup

	h_a := make([]float32, n)
	h_b := make([]float32, n)
	h_c := make([]hipmatmul.Float4, n)
	hipmatmul.InitTestMatrices(h_a, h_b, h_c)

	hipmatmul.FprintAMatrix(os.Stdout, "A matrix", h_a)
	hipmatmul.FprintBMatrix(os.Stdout, "B matrix", h_b)
	hipmatmul.FprintCMatrix(os.Stdout, "C matrix", h_c)

	// Device buffers, populated the way a HIP program would before a launch.
	d_a := mallocOrDie(n * 4)
	d_b := mallocOrDie(n * 4)
	d_c := mallocOrDie(n * 4 * hipmatmul.FragmentLen)
	defer hipmatmul.Free(d_a)
	defer hipmatmul.Free(d_b)
	defer hipmatmul.Free(d_c)

	memcpyOrDie(d_a, h_a, n*4, hipmatmul.MemcpyHostToDevice)
	memcpyOrDie(d_b, h_b, n*4, hipmatmul.MemcpyHostToDevice)
	memcpyOrDie(d_c, h_c, n*4*hipmatmul.FragmentLen, hipmatmul.MemcpyHostToDevice)

	// Think of this block as a kernel<<<1, 64>>> launch; Launch joins all
	// lane workers before returning.
	w := hipmatmul.NewWavefront()
	kernel := hipmatmul.MatmulKernelF32_16x16x4(d_a.Float32(), d_b.Float32(), d_c.Float4s())
	if err := w.Launch(kernel); err != nil {
		log.Fatalf("launch failed: %v", err)
	}

	memcpyOrDie(h_c, d_c, n*4*hipmatmul.FragmentLen, hipmatmul.MemcpyDeviceToHost)
	hipmatmul.FprintCMatrix(os.Stdout, "Result matrix", h_c)
}

func mallocOrDie(size int) hipmatmul.DevicePtr {
	ptr, err := hipmatmul.Malloc(size)
	if err != nil {
		log.Fatalf("malloc of %d bytes failed: %v", size, err)
	}
	return ptr
}

func memcpyOrDie(dst, src interface{}, size int, kind hipmatmul.MemcpyKind) {
	if err := hipmatmul.Memcpy(dst, src, size, kind); err != nil {
		log.Fatalf("memcpy failed: %v", err)
	}
}
