package preflight

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLevel_Glyph(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelPass, "✓"},
		{LevelInfo, "ℹ"},
		{LevelFail, "✗"},
		{Level(99), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Glyph(); got != tt.want {
				t.Errorf("Glyph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevel_MarshalText(t *testing.T) {
	data, err := json.Marshal(Line{Level: LevelFail, Text: "boom"})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"fail"`) {
		t.Errorf("marshaled line = %s, want level rendered as \"fail\"", data)
	}
}

func TestReport_OK(t *testing.T) {
	t.Run("all gating passed", func(t *testing.T) {
		r := &Report{Outcomes: []Outcome{
			{Name: "a", Passed: true},
			{Name: "b", Passed: true},
		}}
		if !r.OK() {
			t.Error("OK() = false, want true")
		}
	})

	t.Run("one gating failed", func(t *testing.T) {
		r := &Report{Outcomes: []Outcome{
			{Name: "a", Passed: true},
			{Name: "b", Passed: false},
		}}
		if r.OK() {
			t.Error("OK() = true, want false")
		}
	})

	t.Run("advisory failure is ignored", func(t *testing.T) {
		r := &Report{Outcomes: []Outcome{
			{Name: "a", Passed: true},
			{Name: "priv", Passed: false, Advisory: true},
		}}
		if !r.OK() {
			t.Error("OK() = false, want true (advisory outcomes must not gate)")
		}
	})

	t.Run("empty report", func(t *testing.T) {
		r := &Report{}
		if !r.OK() {
			t.Error("OK() = false, want true for empty report")
		}
	})
}
