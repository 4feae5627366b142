package preflight

// Config declares what a detector working tree and the host must provide
// to pass validation. A single Config is injected into the [Runner] at
// construction; tests build their own instead of relying on literals
// scattered through the checks.
type Config struct {
	// Dir is the detector working tree to validate.
	Dir string
	// Artifacts are the files that must exist in Dir.
	Artifacts []string
	// ProbeSource is the BPF C source compiled during validation.
	// It must also appear in Artifacts.
	ProbeSource string
	// Tables are the map names the compiled probe must expose.
	Tables []string
	// CFlags are extra flags passed to the BPF compiler.
	CFlags []string
	// MinRuntime is the minimum Go runtime version required to build
	// and run the detector.
	MinRuntime Version
	// AgentCommand is printed on success as the follow-up step.
	AgentCommand string
}

// DefaultConfig returns the configuration for the ransomwatch detector.
func DefaultConfig() Config {
	return Config{
		Dir:         ".",
		Artifacts:   []string{"detector.go", "bpf.c", "bpf.h"},
		ProbeSource: "bpf.c",
		Tables: []string{
			"config",
			"patterns",
			"threshold_patterns",
			"pidstats",
			"events",
		},
		CFlags:       []string{"-Wno-macro-redefined"},
		MinRuntime:   Version{Major: 1, Minor: 22},
		AgentCommand: "sudo go run detector.go",
	}
}
