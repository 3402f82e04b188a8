package cmd

import (
	"fmt"

	"github.com/cwbudde/jsrt/internal/builtin"
	"github.com/cwbudde/jsrt/internal/inspect"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
	"github.com/spf13/cobra"
)

var (
	gcHeapSize int
	gcDump     bool
)

var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Allocate a demo heap and run one collection pass",
	Long: `Bootstraps a fresh environment, allocates --heap-size plain objects (none
retained), runs a mark-sweep collection, and prints the registry's
before/after instrumentation. With --dump, also prints the post-collection
object graph as JSON (internal/inspect.DumpJSON).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := runtimeenv.New(
			runtimeenv.WithGCThreshold(gcThreshold),
			runtimeenv.WithGCStackDepth(gcStackDepth),
		)
		builtin.Bootstrap(e)

		for i := 0; i < gcHeapSize; i++ {
			e.NewPlainObject()
		}

		before := e.GCStats()
		e.CollectNow()
		after := e.GCStats()

		fmt.Printf("before: live=%d\n", before.Live)
		fmt.Printf("after:  live=%d freed=%d sweeps=%d\n", after.Live, after.LastFreed, after.SweepCount)

		if gcDump {
			dump, err := inspect.DumpJSON(e)
			if err != nil {
				return fmt.Errorf("dumping object graph: %w", err)
			}
			fmt.Println(dump)
		}
		return nil
	},
}

func init() {
	gcCmd.Flags().IntVar(&gcHeapSize, "heap-size", 1000, "number of throwaway objects to allocate before collecting")
	gcCmd.Flags().BoolVar(&gcDump, "dump", false, "print the post-collection object graph as JSON")
	rootCmd.AddCommand(gcCmd)
}
