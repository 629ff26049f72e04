package analyze

import (
	"reflect"
	"testing"

	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

func TestWaitForGraph(t *testing.T) {
	tests := []struct {
		name  string
		state rag.GraphState
		want  map[string][]string
	}{
		{
			name:  "Empty",
			state: rag.GraphState{},
			want:  map[string][]string{},
		},
		{
			name:  "WaitChain",
			state: acyclicChain(),
			want: map[string][]string{
				"P1": {"P2"},
				"P2": {},
			},
		},
		{
			name:  "ClassicCycle",
			state: classicCycle(),
			want: map[string][]string{
				"P1": {"P2"},
				"P2": {"P1"},
			},
		},
		{
			name: "NoSelfLoop",
			state: rag.GraphState{
				Nodes: []rag.Node{
					{ID: "P1", Type: rag.NodeProcess},
					{ID: "R1", Type: rag.NodeResource, Instances: 2, Available: 0},
				},
				Edges: []rag.Edge{
					// P1 holds part of R1 and requests more of it.
					{ID: "e1", Source: "R1", Target: "P1", Type: rag.EdgeAllocation, Instances: 1},
					{ID: "e2", Source: "P1", Target: "R1", Type: rag.EdgeRequest, Instances: 1},
				},
			},
			want: map[string][]string{
				"P1": {},
			},
		},
		{
			name: "MultipleHolders",
			state: rag.GraphState{
				Nodes: []rag.Node{
					{ID: "P1", Type: rag.NodeProcess},
					{ID: "P2", Type: rag.NodeProcess},
					{ID: "P3", Type: rag.NodeProcess},
					{ID: "R1", Type: rag.NodeResource, Instances: 2, Available: 0},
				},
				Edges: []rag.Edge{
					{ID: "e1", Source: "P1", Target: "R1", Type: rag.EdgeRequest, Instances: 1},
					{ID: "e2", Source: "R1", Target: "P2", Type: rag.EdgeAllocation, Instances: 1},
					{ID: "e3", Source: "R1", Target: "P3", Type: rag.EdgeAllocation, Instances: 1},
				},
			},
			want: map[string][]string{
				"P1": {"P2", "P3"},
				"P2": {},
				"P3": {},
			},
		},
		{
			name: "RequestFromUndeclaredProcess",
			state: rag.GraphState{
				Nodes: []rag.Node{
					{ID: "R1", Type: rag.NodeResource, Instances: 1},
				},
				Edges: []rag.Edge{
					{ID: "e1", Source: "ghost", Target: "R1", Type: rag.EdgeRequest, Instances: 1},
				},
			},
			want: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WaitForGraph(tt.state)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WaitForGraph() = %v, want %v", got, tt.want)
			}
		})
	}
}
