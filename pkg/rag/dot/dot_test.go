package dot

import (
	"strings"
	"testing"

	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

func testState() rag.GraphState {
	return rag.GraphState{
		Nodes: []rag.Node{
			{ID: "P1", Type: rag.NodeProcess, Label: "Process 1"},
			{ID: "R1", Type: rag.NodeResource, Label: "Resource 1", Instances: 3, Available: 1},
		},
		Edges: []rag.Edge{
			{ID: "e1", Source: "P1", Target: "R1", Type: rag.EdgeRequest, Instances: 2},
			{ID: "e2", Source: "R1", Target: "P1", Type: rag.EdgeAllocation, Instances: 1},
		},
	}
}

func TestToDOT(t *testing.T) {
	src := ToDOT(testState(), Options{})

	for _, want := range []string{
		"digraph RAG {",
		`"P1" [`,
		"shape=circle",
		`"R1" [`,
		"shape=box",
		`Resource 1\n1/3`,
		`"P1" -> "R1"`,
		`"R1" -> "P1"`,
		"style=dashed",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("DOT output missing %q:\n%s", want, src)
		}
	}

	// The allocation edge must not be dashed.
	for _, line := range strings.Split(src, "\n") {
		if strings.Contains(line, `"R1" -> "P1"`) && strings.Contains(line, "dashed") {
			t.Errorf("allocation edge rendered dashed: %s", line)
		}
	}
}

func TestToDOTFallsBackToID(t *testing.T) {
	state := rag.GraphState{
		Nodes: []rag.Node{{ID: "P9", Type: rag.NodeProcess}},
	}

	src := ToDOT(state, Options{})
	if !strings.Contains(src, `label="P9"`) {
		t.Errorf("unlabeled node should use its ID:\n%s", src)
	}
}

func TestToDOTHighlight(t *testing.T) {
	state := testState()
	cycle := &rag.CycleInfo{
		Exists:        true,
		CyclePath:     []string{"P1", "R1", "P1"},
		AffectedNodes: []string{"P1", "R1"},
		AffectedEdges: []string{"e1", "e2"},
	}

	src := ToDOT(state, Options{Cycle: cycle})
	if got := strings.Count(src, "color=red"); got < 4 {
		t.Errorf("highlighted DOT mentions red %d times, want both nodes and both edges:\n%s", got, src)
	}

	// No highlighting without a cycle.
	src = ToDOT(state, Options{Cycle: &rag.CycleInfo{Exists: false}})
	if strings.Contains(src, "red") {
		t.Errorf("non-existing cycle must not highlight:\n%s", src)
	}
}
