package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptySequence indicates a zero-length sequence at construction or mutation.
	ErrEmptySequence = errors.New("graph: sequence must not be empty")

	// ErrLengthMismatch indicates sequence length does not equal weights (or quality) length.
	ErrLengthMismatch = errors.New("graph: sequence and weight lengths differ")

	// ErrInvalidAlignment indicates an AlignmentView violates its own shape contract:
	// mismatched array lengths or a non-monotonic index.
	ErrInvalidAlignment = errors.New("graph: invalid alignment view")

	// ErrNodeNotFound indicates a reference to a node id outside [0, NumNodes).
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates a reference to an edge id outside [0, NumEdges).
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSequenceNotFound indicates a reference to a sequence id outside [0, NumSequences).
	ErrSequenceNotFound = errors.New("graph: sequence not found")

	// ErrNotDAG indicates the topological sort revisited a node still on its
	// recursion stack. Construction rules should make this unreachable; its
	// presence signals a bug in add_alignment rather than a caller error.
	ErrNotDAG = errors.New("graph: not a DAG (cycle detected during sort)")
)
