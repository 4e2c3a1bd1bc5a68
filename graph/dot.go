// File: dot.go
// Role: DOT-format diagnostic dump (the source spec's print()).
package graph

import (
	"fmt"
	"io"
)

// WriteDOT writes a DOT-format rendering of g to w: one node per line
// labeled "id|letter", one directed edge per line labeled with its
// aggregate weight to three decimals, and one dotted undirected edge per
// aligned pair (emitted once, from the lower id to the higher).
func (g *Graph) WriteDOT(w io.Writer) error {
	if _, err := io.WriteString(w, "digraph POA {\n"); err != nil {
		return err
	}
	for _, n := range g.nodes {
		if _, err := fmt.Fprintf(w, "\t%d [label=\"%d|%c\"];\n", n.id, n.id, n.letter); err != nil {
			return err
		}
	}
	for _, e := range g.edges {
		if _, err := fmt.Fprintf(w, "\t%d -> %d [label=\"%.3f\"];\n", e.begin, e.end, e.weight); err != nil {
			return err
		}
	}
	for _, n := range g.nodes {
		for _, other := range n.aligned {
			if other <= n.id {
				continue // emit once, lower id to higher id
			}
			if _, err := fmt.Fprintf(w, "\t%d -> %d [dir=none, style=dotted];\n", n.id, other); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "}\n")

	return err
}
