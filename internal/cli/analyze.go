package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryaneelshivam/deadpanda/pkg/rag/analyze"
)

// newAnalyzeCmd creates the analyze command: deadlock analysis of one
// snapshot file.
func newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <graph.json>",
		Short: "Analyze a graph snapshot for deadlock",
		Long: `Analyze a resource-allocation graph snapshot for a deadlock cycle and
print the wait-for relationships between processes.

Pass "-" to read the snapshot from stdin.`,
		Example: `  deadpanda analyze examples/deadlock.json
  cat graph.json | deadpanda analyze --json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			result := analyze.Deadlock(state)
			loggerFromContext(cmd.Context()).Debug("analysis complete",
				"deadlock", result.HasDeadlock, "processes", len(result.WaitForGraph))

			if asJSON {
				return printJSON(result)
			}

			fmt.Println(verdict(result.HasDeadlock, result.Message))
			if result.CycleInfo != nil {
				fmt.Println(styleDim.Render("affected edges: " + strings.Join(result.CycleInfo.AffectedEdges, ", ")))
			}
			printWaitFor(result.WaitForGraph)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw result object as JSON")

	return cmd
}

// printWaitFor lists each process's wait-for set in stable order.
func printWaitFor(waitFor map[string][]string) {
	if len(waitFor) == 0 {
		return
	}
	processes := make([]string, 0, len(waitFor))
	for p := range waitFor {
		processes = append(processes, p)
	}
	sort.Strings(processes)

	fmt.Println()
	for _, p := range processes {
		blocked := waitFor[p]
		if len(blocked) == 0 {
			fmt.Printf("  %s waits on nothing\n", p)
			continue
		}
		fmt.Printf("  %s waits on %s\n", p, strings.Join(blocked, ", "))
	}
}
