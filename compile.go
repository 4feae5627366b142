package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cilium/ebpf"
)

// CompileFunc compiles a BPF C source file and returns its collection
// spec, from which map presence can be queried by name.
type CompileFunc func(src string, cflags []string) (*ebpf.CollectionSpec, error)

// compileProbe compiles src with clang targeting BPF and parses the
// resulting object. The object is written to a temporary directory that
// is removed before return; the working tree is never written to.
func compileProbe(src string, cflags []string) (*ebpf.CollectionSpec, error) {
	tmp, err := os.MkdirTemp("", "preflight-*")
	if err != nil {
		return nil, fmt.Errorf("create build directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	obj := filepath.Join(tmp, "probe.o")
	args := []string{"-target", "bpf", "-O2", "-g", "-c"}
	args = append(args, cflags...)
	args = append(args, "-o", obj, src)

	out, err := exec.Command(compilerName, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", compilerName, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", compilerName, err)
	}

	spec, err := ebpf.LoadCollectionSpec(obj)
	if err != nil {
		return nil, fmt.Errorf("load collection spec: %w", err)
	}
	return spec, nil
}
