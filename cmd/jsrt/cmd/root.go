package cmd

import (
	"fmt"

	"github.com/cwbudde/jsrt/internal/callstack"
	"github.com/cwbudde/jsrt/internal/gc"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool

	// callStackSize, gcThreshold and gcStackDepth mirror spec.md §4.D/§4.H's
	// tunables, exposed here rather than hardcoded so the run/gc commands
	// can exercise the runtime's overflow and hysteresis behaviour without
	// allocating hundreds of thousands of objects.
	callStackSize int
	gcThreshold   int
	gcStackDepth  int
)

var rootCmd = &cobra.Command{
	Use:   "jsrt",
	Short: "A small JavaScript runtime: tagged values, prototypes, a mark-sweep GC",
	Long: `jsrt is the core runtime library a JS-to-native compiler targets: a
tagged value model, a prototype-based object store, call/method/constructor
dispatch, exception unwinding via non-local jumps, and a mark-sweep
collector.

This runtime has no parser of its own — "run" drives a handful of built-in
demo programs that exercise the runtime the way generated code would.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&callStackSize, "call-stack-size", callstack.DefaultSize, "capacity of the runtime argument call stack (spec.md §4.D)")
	rootCmd.PersistentFlags().IntVar(&gcThreshold, "gc-threshold", gc.Threshold, "object count above which a GC pass becomes due (spec.md §4.H)")
	rootCmd.PersistentFlags().IntVar(&gcStackDepth, "gc-stack-depth", gc.StackDepth, "capacity of the GC's explicit mark stack (spec.md §4.H)")
}
