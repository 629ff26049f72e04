package analyze

import "github.com/aryaneelshivam/deadpanda/pkg/rag"

// DFS vertex colors.
const (
	white = iota // not yet visited
	gray         // on the recursion stack
	black        // fully explored
)

// DetectCycle searches the snapshot's directed graph for a simple cycle and
// reports the first one found.
//
// The search is a depth-first traversal with white/gray/black coloring:
// an arc into a gray vertex closes a cycle, which is reconstructed from the
// current DFS path. Roots are tried in snapshot declaration order and arcs
// in edge declaration order, so the result is reproducible for identical
// input. When no cycle exists, the returned info has Exists=false and nil
// slices.
func DetectCycle(state rag.GraphState) rag.CycleInfo {
	g := rag.Build(state)

	color := make(map[string]int, g.Len())
	path := make([]string, 0, g.Len())
	var cycle []string // vertex IDs without the trailing repeat

	var dfs func(id string) bool
	dfs = func(id string) bool {
		color[id] = gray
		path = append(path, id)

		for _, arc := range g.Outgoing(id) {
			switch color[arc.To] {
			case white:
				if dfs(arc.To) {
					return true
				}
			case gray:
				// Back-edge: path[idx:] is the cycle body.
				idx := 0
				for path[idx] != arc.To {
					idx++
				}
				cycle = append([]string(nil), path[idx:]...)
				return true
			}
		}

		path = path[:len(path)-1]
		color[id] = black
		return false
	}

	for _, v := range g.Vertices() {
		if color[v] == white && dfs(v) {
			break
		}
	}

	if cycle == nil {
		return rag.CycleInfo{Exists: false}
	}

	return rag.CycleInfo{
		Exists:        true,
		CyclePath:     append(append([]string(nil), cycle...), cycle[0]),
		AffectedNodes: cycle,
		AffectedEdges: cycleEdges(cycle, state.Edges),
	}
}

// cycleEdges maps consecutive cycle vertices back to edge IDs by scanning
// the original edge list. Parallel edges between the same pair are all
// included rather than silently dropped.
func cycleEdges(cycle []string, edges []rag.Edge) []string {
	var ids []string
	for i := range cycle {
		src := cycle[i]
		dst := cycle[(i+1)%len(cycle)]
		for _, e := range edges {
			if e.Source == src && e.Target == dst {
				ids = append(ids, e.ID)
			}
		}
	}
	return ids
}
