// Package preflight validates that a host can build and run the
// ransomwatch eBPF detector.
//
// The validator runs a fixed sequence of read-only checks against the
// detector's working tree and the host:
//
//  1. Go runtime version
//  2. required detector files (detector.go, bpf.c, bpf.h)
//  3. BPF toolchain availability (clang)
//  4. probe compilation and required map presence
//  5. privileges (advisory)
//
// Each check yields an [Outcome]; all five are collected into a [Report]
// regardless of gating, so a skipped compilation check still appears as a
// failed outcome with an explanation. The probe compilation check only runs
// when the first three checks pass. The privilege check is advisory and
// never affects [Report.OK].
//
// # Quick use
//
//	report := preflight.NewRunner(preflight.DefaultConfig()).Run()
//	fmt.Print(report)
//	if !report.OK() {
//	    os.Exit(1)
//	}
//
// System access (filesystem stats, PATH lookup, the compiler, effective
// UID) is injected through [Option] values, so every check is unit-testable
// without touching the host.
//
// The validator never writes to the working tree. Compilation happens in a
// temporary directory that is removed before the check returns, and
// elevated privilege is required only to run the detector, not to validate
// it.
package preflight
