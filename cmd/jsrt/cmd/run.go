package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <demo>",
	Short: "Run a built-in demo program",
	Long: fmt.Sprintf(`Execute one of the runtime's built-in demo programs, each reproducing one
of the end-to-end scenarios this runtime is specified against.

Available demos:
%s

Examples:
  jsrt run prototype-chain
  jsrt run coercion`, demoList()),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "running demo %q\n", name)
		}
		if err := runDemo(name, args[1:]); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	runCmd.SilenceUsage = true
	rootCmd.AddCommand(runCmd)
}
