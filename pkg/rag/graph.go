package rag

import "slices"

// Arc is one directed adjacency entry produced by [Build]. It keeps enough
// of the originating edge to map traversal results back to edge IDs.
type Arc struct {
	To        string
	EdgeID    string
	Type      EdgeType
	Instances int
}

// Directed is the adjacency representation of a [GraphState], keyed by node
// ID. It is built fresh per analysis and never shared or mutated afterwards.
type Directed struct {
	nodes    map[string]Node
	order    []string // vertex IDs in first-seen order
	outgoing map[string][]Arc
}

// Build converts a snapshot into its adjacency form.
//
// Every node becomes a vertex; every edge becomes an arc source → target.
// Edge endpoints missing from the node list are tolerated and become
// vertices with a zero-value [Node] (no type, no label), so a structurally
// sloppy snapshot degrades to extra anonymous vertices instead of failing.
func Build(state GraphState) *Directed {
	g := &Directed{
		nodes:    make(map[string]Node, len(state.Nodes)),
		outgoing: make(map[string][]Arc),
	}

	for _, n := range state.Nodes {
		g.ensure(n.ID)
		g.nodes[n.ID] = n
	}

	for _, e := range state.Edges {
		g.ensure(e.Source)
		g.ensure(e.Target)
		g.outgoing[e.Source] = append(g.outgoing[e.Source], Arc{
			To:        e.Target,
			EdgeID:    e.ID,
			Type:      e.Type,
			Instances: e.Instances,
		})
	}

	return g
}

// ensure registers id as a vertex if it is not one already.
func (g *Directed) ensure(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = Node{ID: id}
	g.order = append(g.order, id)
}

// Vertices returns all vertex IDs in first-seen order: declared nodes first,
// then any endpoints that only appear on edges. The order is deterministic
// for identical input, which the cycle detector relies on.
func (g *Directed) Vertices() []string {
	return slices.Clone(g.order)
}

// Node returns the declared node for id. Vertices that exist only as edge
// endpoints report ok=true with a zero-value node carrying just the ID.
func (g *Directed) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Outgoing returns the arcs leaving id in edge-declaration order.
func (g *Directed) Outgoing(id string) []Arc {
	return g.outgoing[id]
}

// Len returns the number of vertices.
func (g *Directed) Len() int { return len(g.order) }
