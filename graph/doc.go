// Package graph implements a partial-order alignment (POA) graph: a DAG
// whose paths spell a set of related sequences, built incrementally by
// incorporating each new sequence against the graph that came before it.
//
// The core type is Graph. A Graph is seeded from a single sequence with
// New, NewUniform, or NewFromQuality, then grows one sequence at a time
// via AddAlignment (and its Uniform/Quality variants), each call consuming
// an AlignmentView produced by an external sequence-to-graph aligner.
//
// Nodes and edges live in arenas owned by the Graph and are addressed by
// dense integer id — never by pointer — so a node with two incoming edges,
// or two nodes in the same aligned-equivalence class, never creates a
// pointer cycle. Nothing is ever removed: ids are stable for the lifetime
// of the Graph.
//
// Graph caches a plain topological order and re-derives it after every
// mutation; packages topo, msa, and consensus consume a *Graph through its
// exported accessors to compute the rigorous sort, the MSA, and the
// heaviest-bundle consensus respectively.
package graph
