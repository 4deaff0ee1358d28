package hipmatmul

import (
	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks instruction set extensions available on the emulating
// host. The emulation itself is scalar Go and needs none of them; the
// detection exists so diagnostics can report what a native lowering of the
// same matmul would have to work with. Note in particular that Go never
// contracts a multiply and add into an FMA, so emulated results are
// bit-stable whether or not the host has FMA hardware.
type CPUFeatures struct {
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasAVX512F bool
	HasFMA     bool
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	cpuFeatures = CPUFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasFMA:     cpu.X86.HasFMA,
	}
}

// HostFeatures returns the detected feature set of the emulating host.
func HostFeatures() CPUFeatures {
	return cpuFeatures
}

// GetCPUInfo returns a string describing available CPU features
func GetCPUInfo() string {
	features := []string{}

	if cpuFeatures.HasSSE4 {
		features = append(features, "SSE4")
	}
	if cpuFeatures.HasAVX {
		features = append(features, "AVX")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if cpuFeatures.HasAVX512F {
		features = append(features, "AVX512F")
	}

	if len(features) == 0 {
		return "No SIMD extensions detected"
	}

	result := "CPU features: "
	for i, f := range features {
		if i > 0 {
			result += ", "
		}
		result += f
	}
	return result
}
