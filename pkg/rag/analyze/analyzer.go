package analyze

import (
	"fmt"
	"strings"
	"time"

	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

// Deadlock runs the full deadlock analysis over one snapshot: cycle
// detection plus wait-for-graph derivation, combined into a single result.
//
// HasDeadlock is cycle existence in the allocation/request graph. That
// signal is exact for single-instance resources and deliberately
// conservative for multi-instance ones: a cycle can coexist with spare
// instances elsewhere. Callers needing multi-instance precision should also
// run [SafeSequence].
func Deadlock(state rag.GraphState) rag.DeadlockAnalysisResult {
	cycle := DetectCycle(state)

	result := rag.DeadlockAnalysisResult{
		HasDeadlock:  cycle.Exists,
		WaitForGraph: WaitForGraph(state),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	if cycle.Exists {
		result.CycleInfo = &cycle
		result.Message = fmt.Sprintf("⚠️ Deadlock detected! Cycle involves: %s",
			strings.Join(cycle.CyclePath, " → "))
	} else {
		result.Message = "✓ No deadlock detected. System is in a safe state."
	}

	return result
}
