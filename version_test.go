package preflight

import "testing"

func TestVersion_AtLeast(t *testing.T) {
	min := Version{Major: 3, Minor: 6}

	tests := []struct {
		version Version
		want    bool
	}{
		{Version{Major: 3, Minor: 6}, true},
		{Version{Major: 3, Minor: 6, Patch: 0}, true},
		{Version{Major: 3, Minor: 9, Patch: 2}, true},
		// A higher major satisfies a lower-major minimum regardless of minor.
		{Version{Major: 4, Minor: 0}, true},
		{Version{Major: 10, Minor: 1}, true},
		{Version{Major: 3, Minor: 5, Patch: 9}, false},
		{Version{Major: 2, Minor: 7}, false},
		{Version{Major: 2, Minor: 99}, false},
		{Version{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			if got := tt.version.AtLeast(min); got != tt.want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", tt.version, min, got, tt.want)
			}
		})
	}
}

func TestVersion_AtLeast_PatchIgnored(t *testing.T) {
	min := Version{Major: 1, Minor: 22, Patch: 9}
	v := Version{Major: 1, Minor: 22, Patch: 0}
	if !v.AtLeast(min) {
		t.Errorf("%s.AtLeast(%s) = false, want true (patch must be ignored)", v, min)
	}
}

func TestParseRuntimeVersion(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"go1.24.4", Version{Major: 1, Minor: 24, Patch: 4}},
		{"go1.22.0", Version{Major: 1, Minor: 22}},
		{"go1.23", Version{Major: 1, Minor: 23}},
		{"  go1.21.5 ", Version{Major: 1, Minor: 21, Patch: 5}},
		{"devel +abcdef", Version{}},
		{"", Version{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseRuntimeVersion(tt.input); got != tt.want {
				t.Errorf("parseRuntimeVersion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
