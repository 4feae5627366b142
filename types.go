package preflight

import "fmt"

// Level classifies a single report line.
type Level int

const (
	// LevelPass marks a satisfied condition.
	LevelPass Level = iota
	// LevelInfo marks an advisory line that carries no verdict.
	LevelInfo
	// LevelFail marks an unsatisfied condition.
	LevelFail
)

func (l Level) String() string {
	switch l {
	case LevelPass:
		return "pass"
	case LevelInfo:
		return "info"
	case LevelFail:
		return "fail"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// Glyph returns the marker used when rendering a line of this level.
func (l Level) Glyph() string {
	switch l {
	case LevelPass:
		return "✓"
	case LevelInfo:
		return "ℹ"
	case LevelFail:
		return "✗"
	default:
		return "?"
	}
}

// MarshalText makes Level render as its name in JSON output.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Line is one human-readable report line produced by a check.
type Line struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

func passLine(format string, args ...any) Line {
	return Line{Level: LevelPass, Text: fmt.Sprintf(format, args...)}
}

func infoLine(format string, args ...any) Line {
	return Line{Level: LevelInfo, Text: fmt.Sprintf(format, args...)}
}

func failLine(format string, args ...any) Line {
	return Line{Level: LevelFail, Text: fmt.Sprintf(format, args...)}
}

// Outcome is the immutable result of one check invocation.
type Outcome struct {
	// Name identifies the check and titles its report section.
	Name string `json:"name"`
	// Passed is the check verdict.
	Passed bool `json:"passed"`
	// Advisory outcomes are reported but never affect the overall verdict.
	Advisory bool `json:"advisory,omitempty"`
	// Lines holds the ordered report lines for this check.
	Lines []Line `json:"lines"`
}

// Report is the ordered sequence of check outcomes from a single run.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
	// NextStep is the command to run once validation passes.
	NextStep string `json:"next_step,omitempty"`
}

// OK reports whether every gating check passed.
// Advisory outcomes are excluded from the verdict.
func (r *Report) OK() bool {
	for _, o := range r.Outcomes {
		if o.Advisory {
			continue
		}
		if !o.Passed {
			return false
		}
	}
	return true
}
