package analyze

import "github.com/aryaneelshivam/deadpanda/pkg/rag"

// WaitForGraph derives the process → process "blocked behind" relation from
// the snapshot.
//
// Process P waits on process Q when P requests a resource some ALLOCATION
// edge shows Q currently holding. Every PROCESS node gets an entry, empty
// when it waits on nothing. Self-loops are excluded; duplicates are kept as
// encountered (one per request/holding pair).
func WaitForGraph(state rag.GraphState) map[string][]string {
	waitFor := make(map[string][]string)
	for _, n := range state.Nodes {
		if n.Type == rag.NodeProcess {
			waitFor[n.ID] = []string{}
		}
	}

	// requests: process → resources it waits for
	// holders: resource → processes holding it
	requests := make(map[string][]string)
	holders := make(map[string][]string)
	for _, e := range state.Edges {
		switch e.Type {
		case rag.EdgeRequest:
			requests[e.Source] = append(requests[e.Source], e.Target)
		case rag.EdgeAllocation:
			holders[e.Source] = append(holders[e.Source], e.Target)
		}
	}

	for process, resources := range requests {
		if _, ok := waitFor[process]; !ok {
			continue // request from an undeclared process, nothing to record
		}
		for _, resource := range resources {
			for _, holder := range holders[resource] {
				if holder != process {
					waitFor[process] = append(waitFor[process], holder)
				}
			}
		}
	}

	return waitFor
}
