package main

import (
	"testing"
)

func TestParseTableList(t *testing.T) {
	got := parseTableList(" config, events ,pidstats ")

	want := tableList{"config", "events", "pidstats"}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseTableList_Empty(t *testing.T) {
	if got := parseTableList(" , ,"); len(got) != 0 {
		t.Fatalf("parseTableList of separators = %v, want empty", got)
	}
}

func TestTableList_SetAccumulates(t *testing.T) {
	var tl tableList
	if err := tl.Set("config,events"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := tl.Set("pidstats"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if got := tl.String(); got != "config,events,pidstats" {
		t.Fatalf("String() = %q, want %q", got, "config,events,pidstats")
	}
	if tl.Type() != "table" {
		t.Fatalf("Type() = %q, want %q", tl.Type(), "table")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := rootCmd()

	for _, name := range []string{"dir", "table", "json"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("root command missing --%s flag", name)
		}
	}
}
