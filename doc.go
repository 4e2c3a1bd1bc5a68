// Package poagraph is a partial-order alignment (POA) graph engine: it
// builds a consensus-friendly DAG representation of many related
// sequences, one sequence at a time, and emits a multiple-sequence
// alignment and a heaviest-bundle consensus from it.
//
// What is poagraph?
//
//	A single-threaded, synchronous library built around an integer-id
//	node/edge arena:
//
//	  • graph/      — Node, Edge, AlignmentView, Graph construction
//	  • topo/       — plain and rigorous topological sort
//	  • msa/        — MSA column assignment, row extraction, round-trip check
//	  • consensus/  — heaviest-bundle traversal with branch completion
//
// A Graph is seeded from one sequence, then grows by repeatedly
// incorporating an AlignmentView (produced by an external sequence-to-graph
// aligner — out of scope here) paired with the next sequence:
//
//	g, _ := graph.NewUniform("ACGT", 1.0)
//	_ = g.AddAlignmentUniform(graph.AlignmentView{
//	    NodeIDs: []int{0, 1, 2, 3},
//	    SeqIDs:  []int{0, 1, 2, 3},
//	}, "AGGT", 1.0)
//	rows, _ := msa.Generate(g, true) // includes the consensus row
//
// Nothing is ever removed from a Graph; node and edge ids are stable for
// its lifetime. Multiple Graph instances are independent and safe to use
// from separate goroutines; a single instance is not safe to mutate
// concurrently.
//
//	go get github.com/katalvlaran/poagraph
package poagraph
