// Package consensus computes the heaviest-bundle consensus path through a
// *graph.Graph: the locally-best-weighted path from a source, repaired so
// it always terminates at a true sink rather than stalling at whichever
// interior node the greedy choice happened to maximize.
package consensus
