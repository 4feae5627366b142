package preflight

import (
	"fmt"
	"strings"
)

// Version is a runtime version triple.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v satisfies min, comparing (major, minor)
// lexicographically: a higher major always satisfies a lower-major
// minimum, regardless of minor. Patch is ignored.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

// parseRuntimeVersion extracts a version triple from a Go runtime version
// string such as "go1.24.4". Strings that do not carry at least a
// major.minor pair (e.g. "devel ..." toolchains) yield the zero Version,
// which fails any useful minimum.
func parseRuntimeVersion(s string) Version {
	s = strings.TrimPrefix(strings.TrimSpace(s), "go")

	var v Version
	if n, err := fmt.Sscanf(s, "%d.%d.%d", &v.Major, &v.Minor, &v.Patch); err != nil && n < 2 {
		return Version{}
	}
	return v
}
