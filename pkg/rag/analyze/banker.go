package analyze

import (
	"fmt"
	"strings"

	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

// SafeSequence runs a Banker's-algorithm-style feasibility check: is there
// an order in which every process can obtain its full outstanding request,
// finish, and release what it holds?
//
// The search is a greedy work-set simulation. Each pass scans unfinished
// processes in snapshot declaration order and advances the first one whose
// every request fits into the current work pool; its allocation is released
// back into the pool and the scan restarts. A full pass with no progress
// means the state is unsafe. This finds some feasible order when one exists
// under the first-requestable-wins rule. It proves existence, not enumeration.
//
// Resources requested but never declared contribute zero available units,
// so such requests can only be satisfied by releases. A snapshot with no
// processes is trivially safe with an empty sequence.
func SafeSequence(state rag.GraphState) rag.SafeSequenceResult {
	var processes []rag.Node
	work := make(map[string]int)
	for _, n := range state.Nodes {
		switch n.Type {
		case rag.NodeProcess:
			processes = append(processes, n)
		case rag.NodeResource:
			work[n.ID] = n.Available
		}
	}

	if len(processes) == 0 {
		return rag.SafeSequenceResult{
			IsSafe:       true,
			SafeSequence: []string{},
			Message:      "No processes in the system",
		}
	}

	// Per-process holdings and outstanding requests, resource → units.
	allocations := make(map[string]map[string]int, len(processes))
	requests := make(map[string]map[string]int, len(processes))
	for _, p := range processes {
		allocations[p.ID] = make(map[string]int)
		requests[p.ID] = make(map[string]int)
	}
	for _, e := range state.Edges {
		switch e.Type {
		case rag.EdgeAllocation:
			// resource → process
			if m, ok := allocations[e.Target]; ok {
				m[e.Source] = e.Instances
			}
		case rag.EdgeRequest:
			// process → resource
			if m, ok := requests[e.Source]; ok {
				m[e.Target] = e.Instances
			}
		}
	}

	sequence := []string{}
	finished := make(map[string]bool, len(processes))

	for len(finished) < len(processes) {
		advanced := false

		for _, p := range processes {
			if finished[p.ID] {
				continue
			}
			if !satisfiable(requests[p.ID], work) {
				continue
			}

			// Process can run to completion: release its holdings.
			for resource, held := range allocations[p.ID] {
				work[resource] += held
			}
			sequence = append(sequence, p.ID)
			finished[p.ID] = true
			advanced = true
			break
		}

		if !advanced {
			return rag.SafeSequenceResult{
				IsSafe:       false,
				SafeSequence: []string{},
				Message: fmt.Sprintf("⚠️ System is in an unsafe state. Cannot find safe sequence. Completed: [%s]",
					strings.Join(sequence, ", ")),
			}
		}
	}

	return rag.SafeSequenceResult{
		IsSafe:       true,
		SafeSequence: sequence,
		Message:      fmt.Sprintf("✓ Safe sequence found: %s", strings.Join(sequence, " → ")),
	}
}

// satisfiable reports whether every requested amount fits into the current
// work pool. Unknown resources count as zero available.
func satisfiable(requested, work map[string]int) bool {
	for resource, needed := range requested {
		if work[resource] < needed {
			return false
		}
	}
	return true
}
