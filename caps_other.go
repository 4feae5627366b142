//go:build !linux

package preflight

// probeCapabilities reports runtime capability status.
// Capability sets are Linux-specific; other platforms report nothing.
func probeCapabilities() []Line {
	return nil
}
