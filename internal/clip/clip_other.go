//go:build !darwin && !linux && !windows

package clip

// New probes the external-command backend on platforms without a dedicated
// implementation, falling back to the headless no-op device.
func New() Device {
	return newFallback()
}
