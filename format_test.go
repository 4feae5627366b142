package preflight

import (
	"strings"
	"testing"
)

func TestReport_String_Success(t *testing.T) {
	r := &Report{
		NextStep: "sudo go run detector.go",
		Outcomes: []Outcome{
			{Name: "Go runtime version", Passed: true, Lines: []Line{passLine("Go 1.24.4 (requires 1.22+)")}},
			{Name: "Required files", Passed: true, Lines: []Line{passLine("bpf.c exists")}},
		},
	}

	out := r.String()

	for _, want := range []string{
		"ransomwatch preflight validation",
		"1. Go runtime version",
		"2. Required files",
		"✓ bpf.c exists",
		"✅ All validations passed",
		"sudo go run detector.go",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestReport_String_Failure(t *testing.T) {
	r := &Report{
		NextStep: "sudo go run detector.go",
		Outcomes: []Outcome{
			{Name: "Required files", Lines: []Line{failLine("bpf.h not found")}},
		},
	}

	out := r.String()

	if !strings.Contains(out, "✗ bpf.h not found") {
		t.Errorf("report missing failure line:\n%s", out)
	}
	if !strings.Contains(out, "❌ Some validations failed") {
		t.Errorf("report missing failure verdict:\n%s", out)
	}
	// The follow-up command is only shown when validation passes.
	if strings.Contains(out, "Start the detector") {
		t.Errorf("failed report must not suggest starting the detector:\n%s", out)
	}
}
