//go:build linux

package preflight

import (
	"golang.org/x/sys/unix"
)

// Linux capability constants for BPF operations.
// These match the values in <linux/capability.h>.
const (
	capSysAdmin = 21 // CAP_SYS_ADMIN
	capPerfmon  = 38 // CAP_PERFMON (kernel 5.8+)
	capBPF      = 39 // CAP_BPF (kernel 5.8+)
)

// probeCapabilities reports whether the process holds the capabilities
// the detector needs at runtime, using prctl(PR_CAPBSET_READ).
// Advisory only: the validator itself needs none of them.
func probeCapabilities() []Line {
	caps := []struct {
		value uintptr
		name  string
	}{
		{capBPF, "CAP_BPF"},
		{capSysAdmin, "CAP_SYS_ADMIN"},
		{capPerfmon, "CAP_PERFMON"},
	}

	lines := make([]Line, 0, len(caps))
	for _, c := range caps {
		ret, err := unix.PrctlRetInt(unix.PR_CAPBSET_READ, c.value, 0, 0, 0)
		switch {
		case err != nil:
			lines = append(lines, infoLine("%s: probe failed: %v", c.name, err))
		case ret == 1:
			lines = append(lines, passLine("%s held", c.name))
		default:
			lines = append(lines, infoLine("%s not held (required to run the detector)", c.name))
		}
	}
	return lines
}
