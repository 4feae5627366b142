package preflight

import (
	"fmt"
	"strings"
)

const banner = "============================================================"

// String returns the full human-readable validation report: a banner,
// one numbered section per check, and a closing verdict. On success the
// follow-up command to start the detector is included.
func (r *Report) String() string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("ransomwatch preflight validation\n")
	b.WriteString(banner + "\n\n")

	for i, o := range r.Outcomes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o.Name)
		for _, line := range o.Lines {
			fmt.Fprintf(&b, "  %s %s\n", line.Level.Glyph(), line.Text)
		}
		b.WriteString("\n")
	}

	b.WriteString(banner + "\n")
	if r.OK() {
		b.WriteString("✅ All validations passed\n")
		if r.NextStep != "" {
			b.WriteString("\nStart the detector with:\n")
			fmt.Fprintf(&b, "  %s\n", r.NextStep)
		}
	} else {
		b.WriteString("❌ Some validations failed\n")
		b.WriteString("\nFix the reported issues before starting the detector.\n")
	}
	b.WriteString(banner + "\n")

	return b.String()
}
