//go:build !linux

package preflight

// probeHost collects advisory facts about the host.
// eBPF is Linux-only, so other platforms report a single advisory line.
func probeHost() []Line {
	return []Line{infoLine("host probing not supported on this platform (requires Linux)")}
}
