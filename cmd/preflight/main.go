package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/leodido/structcli"
	"github.com/ransomwatch/preflight"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Build metadata injected via ldflags.
// When built without ldflags (e.g., plain `go build`), these remain
// at their zero values and the version command omits them gracefully.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	root := rootCmd()
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// RunOptions defines flags for the root command.
type RunOptions struct {
	Dir    string    `flag:"dir" flagshort:"C" flagdescr:"Detector working tree to validate"`
	Tables tableList `flag:"table" flagshort:"t" flagdescr:"Required map names (overrides the built-in list)" flagcustom:"true"`
	JSON   bool      `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *RunOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *RunOptions) DefineTables(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*tableList)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *RunOptions) DecodeTables(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}
	return parseTableList(s), nil
}

func rootCmd() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Validate that this host can build and run the ransomwatch detector",
		Long: `preflight checks that the current directory holds the ransomwatch detector
sources and that the host can compile and load its BPF probe.

It runs a fixed sequence of read-only checks: Go runtime version, required
files, BPF toolchain availability, probe compilation (with required map
presence), and privileges (advisory). Exits with code 0 if all gating
checks pass, 1 otherwise.`,
		SilenceUsage: true,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			cfg := preflight.DefaultConfig()
			if opts.Dir != "" {
				cfg.Dir = opts.Dir
			}
			if len(opts.Tables) > 0 {
				cfg.Tables = opts.Tables
			}

			report := preflight.NewRunner(cfg).Run()

			if opts.JSON {
				if err := printJSON(struct {
					OK     bool                `json:"ok"`
					Checks []preflight.Outcome `json:"checks"`
				}{report.OK(), report.Outcomes}); err != nil {
					return err
				}
			} else {
				fmt.Print(report)
			}

			if !report.OK() {
				os.Exit(1)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool and runtime version",
		Run: func(c *cobra.Command, args []string) {
			if version != "" {
				fmt.Printf("preflight %s", version)
				if commit != "" {
					fmt.Printf(" (%s)", commit)
				}
				if date != "" {
					fmt.Printf(" built %s", date)
				}
				fmt.Println()
			} else {
				fmt.Println("preflight (dev)")
			}
			fmt.Printf("Go: %s\n", runtime.Version())
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// tableList is a comma-separated list of required map names.
type tableList []string

func (t *tableList) String() string {
	return strings.Join(*t, ",")
}

func (t *tableList) Set(input string) error {
	*t = append(*t, parseTableList(input)...)
	return nil
}

func (t *tableList) Type() string {
	return "table"
}

func parseTableList(input string) tableList {
	parts := strings.Split(input, ",")
	tables := make(tableList, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		tables = append(tables, name)
	}
	return tables
}
