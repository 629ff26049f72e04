package errors

import (
	"unicode"

	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

// maxIDLength bounds node and edge identifiers. Conservative; the frontend
// generates short IDs, anything longer is a malformed or hostile payload.
const maxIDLength = 256

// ValidateGraphState checks a caller-supplied snapshot for structural
// validity: non-empty unique IDs, known node and edge type tags, and numeric
// bounds (resource instances >= 1, available >= 0, edge instances >= 1).
//
// Edge endpoints are deliberately NOT checked against the node list;
// dangling endpoints are tolerated downstream and must not be rejected here.
// Likewise available <= instances is the caller's invariant, not enforced.
func ValidateGraphState(state rag.GraphState) error {
	nodeIDs := make(map[string]bool, len(state.Nodes))
	for i, n := range state.Nodes {
		if err := validateID(ErrCodeInvalidNode, "node", i, n.ID); err != nil {
			return err
		}
		if nodeIDs[n.ID] {
			return New(ErrCodeInvalidNode, "duplicate node ID %q", n.ID)
		}
		nodeIDs[n.ID] = true

		if !n.Type.Valid() {
			return New(ErrCodeInvalidNode, "node %q: unknown type %q", n.ID, n.Type)
		}
		if n.Type == rag.NodeResource {
			if n.Instances < 1 {
				return New(ErrCodeInvalidNode, "resource %q: instances must be >= 1, got %d", n.ID, n.Instances)
			}
			if n.Available < 0 {
				return New(ErrCodeInvalidNode, "resource %q: available must be >= 0, got %d", n.ID, n.Available)
			}
		}
	}

	edgeIDs := make(map[string]bool, len(state.Edges))
	for i, e := range state.Edges {
		if err := validateID(ErrCodeInvalidEdge, "edge", i, e.ID); err != nil {
			return err
		}
		if edgeIDs[e.ID] {
			return New(ErrCodeInvalidEdge, "duplicate edge ID %q", e.ID)
		}
		edgeIDs[e.ID] = true

		if !e.Type.Valid() {
			return New(ErrCodeInvalidEdge, "edge %q: unknown type %q", e.ID, e.Type)
		}
		if e.Source == "" || e.Target == "" {
			return New(ErrCodeInvalidEdge, "edge %q: source and target are required", e.ID)
		}
		if e.Instances < 1 {
			return New(ErrCodeInvalidEdge, "edge %q: instances must be >= 1, got %d", e.ID, e.Instances)
		}
	}

	return nil
}

// ValidateAllocationRequest checks a proposed allocation for shape. The
// process and resource are not required to exist in any particular snapshot;
// referential gaps are the simulation engine's to tolerate.
func ValidateAllocationRequest(req rag.AllocationRequest) error {
	if req.ProcessID == "" {
		return New(ErrCodeInvalidAllocation, "process_id is required")
	}
	if req.ResourceID == "" {
		return New(ErrCodeInvalidAllocation, "resource_id is required")
	}
	if req.Instances < 1 {
		return New(ErrCodeInvalidAllocation, "instances must be >= 1, got %d", req.Instances)
	}
	return nil
}

// validateID checks one identifier: present, bounded, no control characters.
func validateID(code Code, kind string, index int, id string) error {
	if id == "" {
		return New(code, "%s[%d]: ID is required", kind, index)
	}
	if len(id) > maxIDLength {
		return New(code, "%s %q: ID too long (max %d characters)", kind, id, maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(code, "%s %q: ID contains control characters", kind, id)
		}
	}
	return nil
}
