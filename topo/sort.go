// File: sort.go
// Role: the plain topological sort, re-exposed from the Graph's own cache.
package topo

import "github.com/katalvlaran/poagraph/graph"

// Sort returns g's plain topological order: every node after every source
// of every one of its in-edges. It is a thin wrapper over Graph.Order,
// which the Graph itself keeps cached and re-derives after each mutation.
func Sort(g *graph.Graph) ([]int, error) {
	return g.Order()
}
