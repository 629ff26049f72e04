package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aryaneelshivam/deadpanda/pkg/rag/analyze"
)

// newSequenceCmd creates the sequence command: Banker's-style safe-sequence
// calculation over one snapshot file.
func newSequenceCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sequence <graph.json>",
		Short: "Compute a safe process-execution sequence",
		Long: `Check whether a feasible completion order exists for all processes in the
snapshot, given available resource instances and releases from finishing
processes.

Pass "-" to read the snapshot from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			result := analyze.SafeSequence(state)
			loggerFromContext(cmd.Context()).Debug("sequence computed",
				"safe", result.IsSafe, "length", len(result.SafeSequence))

			if asJSON {
				return printJSON(result)
			}

			fmt.Println(verdict(!result.IsSafe, result.Message))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw result object as JSON")

	return cmd
}
