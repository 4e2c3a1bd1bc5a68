// Package topo computes topological orderings of a *graph.Graph.
//
// Sort re-exposes the Graph's own cached plain topological order. RigorousSort
// additionally groups every aligned-equivalence class into one contiguous
// run, representative first — the property msa depends on to assign MSA
// columns in a single left-to-right pass.
package topo
