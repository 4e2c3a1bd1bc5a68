// Package msa emits the multiple-sequence-alignment view of a *graph.Graph:
// one row per admitted sequence (and, optionally, one more for the
// consensus), every row the same length, gaps filled with '-'.
//
// Generate assigns MSA columns from the rigorous topological order: each
// aligned-equivalence class — a contiguous run in that order — gets one
// column index, shared by every member. Check is the diagnostic described
// by the source spec: a gap-stripped row must reproduce its original
// sequence.
package msa
