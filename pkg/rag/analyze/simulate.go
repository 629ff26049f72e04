package analyze

import (
	"fmt"

	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

// Simulate evaluates a hypothetical allocation without committing it.
//
// A candidate snapshot is composed from the input plus one synthesized
// ALLOCATION edge (resource → process) and re-analyzed with [Deadlock]. When
// the candidate deadlocks it is discarded and NewState stays nil so an unsafe
// state can never leak to a caller. When it is safe the candidate is
// returned for the caller to adopt. The synthesized edge ID is derived
// deterministically from the request, so repeating a simulation yields an
// identical candidate.
func Simulate(state rag.GraphState, req rag.AllocationRequest) rag.SimulationResult {
	candidate := state.Clone()
	candidate.Edges = append(candidate.Edges, rag.Edge{
		ID:        fmt.Sprintf("sim_%s_%s", req.ProcessID, req.ResourceID),
		Source:    req.ResourceID,
		Target:    req.ProcessID,
		Type:      rag.EdgeAllocation,
		Instances: req.Instances,
	})

	if Deadlock(candidate).HasDeadlock {
		return rag.SimulationResult{
			Success:            false,
			Message:            "⚠️ This allocation would cause a deadlock!",
			WouldCauseDeadlock: true,
		}
	}

	return rag.SimulationResult{
		Success:            true,
		Message:            "✓ Allocation is safe and will not cause deadlock",
		NewState:           &candidate,
		WouldCauseDeadlock: false,
	}
}
