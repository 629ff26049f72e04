package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/aryaneelshivam/deadpanda/pkg/errors"
	"github.com/aryaneelshivam/deadpanda/pkg/rag"
	"github.com/aryaneelshivam/deadpanda/pkg/rag/analyze"
)

// newSimulateCmd creates the simulate command: evaluate a hypothetical
// allocation against one snapshot file without committing it.
func newSimulateCmd() *cobra.Command {
	var (
		asJSON    bool
		process   string
		resource  string
		instances int
	)

	cmd := &cobra.Command{
		Use:   "simulate <graph.json>",
		Short: "Check whether a new allocation would cause deadlock",
		Long: `Append a hypothetical ALLOCATION edge (resource → process) to the snapshot
and re-run the deadlock analysis on the candidate state. The candidate is
printed only when it proved safe.

Pass "-" to read the snapshot from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := rag.AllocationRequest{
				ProcessID:  process,
				ResourceID: resource,
				Instances:  instances,
			}
			if err := apperrors.ValidateAllocationRequest(req); err != nil {
				return err
			}

			state, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			result := analyze.Simulate(state, req)
			loggerFromContext(cmd.Context()).Debug("simulation complete",
				"success", result.Success, "deadlock", result.WouldCauseDeadlock)

			if asJSON {
				return printJSON(result)
			}

			fmt.Println(verdict(result.WouldCauseDeadlock, result.Message))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw result object as JSON")
	cmd.Flags().StringVar(&process, "process", "", "process receiving the allocation (required)")
	cmd.Flags().StringVar(&resource, "resource", "", "resource being allocated (required)")
	cmd.Flags().IntVar(&instances, "instances", 1, "number of instances to allocate")
	_ = cmd.MarkFlagRequired("process")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}
