//go:build linux

package preflight

import (
	"errors"
	"os"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/features"
	"golang.org/x/sys/unix"
)

const btfPath = "/sys/kernel/btf/vmlinux"

// probeHost collects advisory facts about the host's fitness for the
// detector: kernel release, BTF availability, support for the program
// and map types the probe loads, and the relevant kernel config options.
// These never gate a check.
func probeHost() []Line {
	var lines []Line

	if release := kernelRelease(); release != "" {
		lines = append(lines, infoLine("kernel %s", release))
	}

	if btfAvailable() {
		lines = append(lines, passLine("BTF available (%s)", btfPath))
	} else {
		lines = append(lines, infoLine("BTF not available; CO-RE relocation needs kernel headers"))
	}

	lines = append(lines, probeProgramType(ebpf.Kprobe, "kprobe"))
	lines = append(lines, probeMapType(ebpf.PerfEventArray, "perf event array"))
	lines = append(lines, kernelConfigLines()...)

	return lines
}

// kernelRelease returns the running kernel release string, or "" if
// uname fails.
func kernelRelease() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uname.Release[:])
}

// btfAvailable checks whether the kernel exposes BTF type information,
// required for CO-RE probe programs.
func btfAvailable() bool {
	_, err := os.Stat(btfPath)
	return err == nil
}

func probeProgramType(pt ebpf.ProgramType, name string) Line {
	err := features.HaveProgramType(pt)
	switch {
	case err == nil:
		return passLine("%s programs supported", name)
	case errors.Is(err, ebpf.ErrNotSupported):
		return infoLine("%s programs not supported by running kernel", name)
	default:
		return infoLine("%s program support unknown: %v", name, err)
	}
}

func probeMapType(mt ebpf.MapType, name string) Line {
	err := features.HaveMapType(mt)
	switch {
	case err == nil:
		return passLine("%s maps supported", name)
	case errors.Is(err, ebpf.ErrNotSupported):
		return infoLine("%s maps not supported by running kernel", name)
	default:
		return infoLine("%s map support unknown: %v", name, err)
	}
}

// kernelConfigLines reports the kernel config options the detector
// depends on. Kernel config is optional: when no source is readable the
// options are simply not reported.
func kernelConfigLines() []Line {
	kc, err := readKernelConfig()
	if err != nil {
		return nil
	}

	options := []string{"BPF", "BPF_SYSCALL", "KPROBES", "PERF_EVENTS", "DEBUG_INFO_BTF"}
	lines := make([]Line, 0, len(options))
	for _, opt := range options {
		if kc.IsSet(opt) {
			lines = append(lines, passLine("CONFIG_%s=%s", opt, kc.Get(opt)))
		} else {
			lines = append(lines, infoLine("CONFIG_%s not set", opt))
		}
	}
	return lines
}
