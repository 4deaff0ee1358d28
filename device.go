package hipmatmul

import (
	"runtime"
	"sync"
)

// Device describes the compute device backing the emulation: the host CPU,
// presented with GPU-shaped attributes so callers written against a device
// API have something sensible to query.
type Device struct {
	ID            int    // Unique device identifier
	Name          string // Human-readable device name
	TotalMem      uint64 // Total available memory in bytes
	NumCores      int    // Number of CPU cores
	WavefrontSize int    // Lanes per wavefront (always ThreadsPerSubgroup)
}

var (
	defaultDevice *Device
	deviceOnce    sync.Once
)

// GetDevice returns the current device information. There is exactly one
// device: the host CPU.
//
// Example:
//
//	dev := hipmatmul.GetDevice()
//	fmt.Printf("Emulating on %s with %d cores\n", dev.Name, dev.NumCores)
func GetDevice() *Device {
	deviceOnce.Do(func() {
		defaultDevice = &Device{
			ID:            0,
			Name:          "CPU",
			TotalMem:      getSystemMemory(),
			NumCores:      runtime.NumCPU(),
			WavefrontSize: ThreadsPerSubgroup,
		}
	})
	return defaultDevice
}

// GetDeviceCount returns the number of available devices, which is always 1.
func GetDeviceCount() int {
	return 1
}

// SetDevice sets the active device. Only device 0 exists.
func SetDevice(id int) error {
	if id != 0 {
		return ErrInvalidDevice
	}
	return nil
}
