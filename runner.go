package preflight

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Check section titles, in execution order.
const (
	checkNameVersion    = "Go runtime version"
	checkNameFiles      = "Required files"
	checkNameToolchain  = "BPF toolchain"
	checkNameCompile    = "Probe compilation"
	checkNamePrivileges = "Privileges"
)

// compilerName is the BPF compiler looked up on PATH.
const compilerName = "clang"

// Runner executes the fixed validation sequence against a Config.
type Runner struct {
	cfg Config

	runtimeVersion func() string
	stat           func(string) error
	lookPath       func(string) (string, error)
	compile        CompileFunc
	geteuid        func() int
	hostProbe      func() []Line
	capsProbe      func() []Line
}

// Option customizes a Runner. Options exist mainly so tests can swap
// system access for fakes.
type Option func(*Runner)

// WithRuntimeVersion overrides the runtime version source.
func WithRuntimeVersion(fn func() string) Option {
	return func(r *Runner) { r.runtimeVersion = fn }
}

// WithStat overrides the file existence test.
func WithStat(fn func(string) error) Option {
	return func(r *Runner) { r.stat = fn }
}

// WithLookPath overrides the PATH lookup used for the BPF compiler.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Runner) { r.lookPath = fn }
}

// WithCompiler overrides the probe compile/load step.
func WithCompiler(fn CompileFunc) Option {
	return func(r *Runner) { r.compile = fn }
}

// WithEUID overrides the effective UID source.
func WithEUID(fn func() int) Option {
	return func(r *Runner) { r.geteuid = fn }
}

// WithHostProbe overrides the advisory host probes attached to the
// toolchain check.
func WithHostProbe(fn func() []Line) Option {
	return func(r *Runner) { r.hostProbe = fn }
}

// WithCapabilityProbe overrides the advisory capability probes attached
// to the privilege check.
func WithCapabilityProbe(fn func() []Line) Option {
	return func(r *Runner) { r.capsProbe = fn }
}

// NewRunner creates a Runner bound to cfg, backed by the real system
// unless overridden by options.
func NewRunner(cfg Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:            cfg,
		runtimeVersion: runtime.Version,
		stat: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
		lookPath:  exec.LookPath,
		compile:   compileProbe,
		geteuid:   os.Geteuid,
		hostProbe: probeHost,
		capsProbe: probeCapabilities,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every check in order and returns the full report.
// The report always holds exactly one outcome per check: when the
// compilation check cannot run because an earlier check failed, it still
// contributes a failed outcome rather than a missing entry.
func (r *Runner) Run() *Report {
	report := &Report{NextStep: r.cfg.AgentCommand}

	version := r.checkRuntimeVersion()
	files := r.checkArtifacts()
	toolchain := r.checkToolchain()
	report.Outcomes = append(report.Outcomes, version, files, toolchain)

	if version.Passed && files.Passed && toolchain.Passed {
		report.Outcomes = append(report.Outcomes, r.checkCompile())
	} else {
		report.Outcomes = append(report.Outcomes, Outcome{
			Name:  checkNameCompile,
			Lines: []Line{failLine("skipped: prerequisites not met")},
		})
	}

	report.Outcomes = append(report.Outcomes, r.checkPrivilege())
	return report
}

func (r *Runner) checkRuntimeVersion() Outcome {
	o := Outcome{Name: checkNameVersion}

	v := parseRuntimeVersion(r.runtimeVersion())
	if v.AtLeast(r.cfg.MinRuntime) {
		o.Passed = true
		o.Lines = append(o.Lines, passLine("Go %s (requires %d.%d+)",
			v, r.cfg.MinRuntime.Major, r.cfg.MinRuntime.Minor))
	} else {
		o.Lines = append(o.Lines, failLine("Go %s (requires %d.%d+)",
			v, r.cfg.MinRuntime.Major, r.cfg.MinRuntime.Minor))
	}
	return o
}

func (r *Runner) checkArtifacts() Outcome {
	o := Outcome{Name: checkNameFiles, Passed: true}

	for _, name := range r.cfg.Artifacts {
		if err := r.stat(filepath.Join(r.cfg.Dir, name)); err != nil {
			o.Passed = false
			o.Lines = append(o.Lines, failLine("%s not found", name))
			continue
		}
		o.Lines = append(o.Lines, passLine("%s exists", name))
	}
	return o
}

func (r *Runner) checkToolchain() Outcome {
	o := Outcome{Name: checkNameToolchain}

	path, err := r.lookPath(compilerName)
	if err != nil {
		o.Lines = append(o.Lines, failLine("%s not found on PATH", compilerName))
		o.Lines = append(o.Lines, infoLine("install with: sudo apt-get install clang llvm"))
	} else {
		o.Passed = true
		o.Lines = append(o.Lines, passLine("%s found (%s)", compilerName, path))
	}

	o.Lines = append(o.Lines, r.hostProbe()...)
	return o
}

func (r *Runner) checkCompile() Outcome {
	o := Outcome{Name: checkNameCompile}

	src := filepath.Join(r.cfg.Dir, r.cfg.ProbeSource)
	if err := r.stat(src); err != nil {
		o.Lines = append(o.Lines, failLine("%s not found", r.cfg.ProbeSource))
		return o
	}

	o.Lines = append(o.Lines, infoLine("compiling %s...", r.cfg.ProbeSource))
	spec, err := r.compile(src, r.cfg.CFlags)
	if err != nil {
		o.Lines = append(o.Lines, failLine("probe compilation failed: %v", err))
		return o
	}

	o.Passed = true
	o.Lines = append(o.Lines, passLine("probe compiled successfully"))

	// Missing maps are reported per name but do not flip the verdict;
	// Passed reflects compilation and load success alone.
	for _, name := range r.cfg.Tables {
		if _, ok := spec.Maps[name]; ok {
			o.Lines = append(o.Lines, passLine("map %q found", name))
		} else {
			o.Lines = append(o.Lines, failLine("map %q not found", name))
		}
	}
	return o
}

func (r *Runner) checkPrivilege() Outcome {
	o := Outcome{Name: checkNamePrivileges, Advisory: true}

	if r.geteuid() == 0 {
		o.Passed = true
		o.Lines = append(o.Lines, passLine("running as root (optional for validation)"))
	} else {
		o.Lines = append(o.Lines, infoLine("not running as root (this is OK for validation)"))
	}

	o.Lines = append(o.Lines, r.capsProbe()...)
	return o
}
