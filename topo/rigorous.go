// File: rigorous.go
// Role: the rigorous topological sort used only for MSA column assignment.
//
// Same depth-first post-order over in-edges as Sort, but when a type-0
// (Representative) node finishes, its aligned class is emitted immediately
// after it, in the order the class members were added. A type-1
// (Secondary) node encountered directly — as an ancestor of some other
// node, or as an outer-loop start — has its own ancestors explored and is
// marked done, but is not appended to the order at that point; it is
// appended exactly once, when its class representative's batch reaches it.
//
// Implemented with an explicit stack (not recursion-on-neighbors) for the
// same depth-safety reason as graph.resort.
package topo

import "github.com/katalvlaran/poagraph/graph"

const (
	white = 0
	gray  = 1
	black = 2
)

const (
	kindMain       = 0 // a generic visit, reached via ancestor scan or as an outer-loop start
	kindAlignedSub = 1 // a visit of an aligned-class member, triggered from its representative's batch
)

type rigFrame struct {
	node   int
	inIdx  int // progress through node's in-edges
	aliIdx int // progress through node's aligned list (meaningful only for a Representative)
	kind   int
}

// RigorousSort returns the rigorous topological order over every node in g.
func RigorousSort(g *graph.Graph) ([]int, error) {
	n := g.NumNodes()
	state := make([]byte, n)
	order := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if state[start] != white {
			continue
		}
		if err := visitRigorous(g, state, &order, start); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func visitRigorous(g *graph.Graph, state []byte, order *[]int, start int) error {
	stack := []rigFrame{{node: start, kind: kindMain}}
	state[start] = gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		node, err := g.Node(top.node)
		if err != nil {
			return err
		}

		// Step A: explore remaining in-edges (ancestors) before this node can finish.
		ins := node.InEdges()
		if top.inIdx < len(ins) {
			eid := ins[top.inIdx]
			top.inIdx++
			e, err := g.Edge(eid)
			if err != nil {
				return err
			}
			u := e.Begin()
			switch state[u] {
			case white:
				state[u] = gray
				stack = append(stack, rigFrame{node: u, kind: kindMain})
			case gray:
				return graph.ErrNotDAG
			}
			continue
		}

		// Step B: all ancestors resolved; finish the node once.
		if state[top.node] != black {
			state[top.node] = black
			if node.Type() == graph.Representative {
				*order = append(*order, top.node)
			}
		}

		// Step C: a Representative's finish also drains its aligned class,
		// in insertion order, expanding each member's own ancestors first.
		if node.Type() == graph.Representative {
			aligned := node.Aligned()
			if top.aliIdx < len(aligned) {
				a := aligned[top.aliIdx]
				switch state[a] {
				case white:
					state[a] = gray
					stack = append(stack, rigFrame{node: a, kind: kindAlignedSub})
					continue
				case gray:
					return graph.ErrNotDAG
				default: // black: already expanded, ready to emit
					*order = append(*order, a)
					top.aliIdx++
					continue
				}
			}
		}

		// Frame fully done: pop it. If it was an aligned-class member visited
		// on behalf of its representative, hand control back to the parent
		// frame so the representative's batch can append it and continue.
		finishedKind, finishedNode := top.kind, top.node
		stack = stack[:len(stack)-1]
		if finishedKind == kindAlignedSub && len(stack) > 0 {
			parent := &stack[len(stack)-1]
			*order = append(*order, finishedNode)
			parent.aliIdx++
		}
	}

	return nil
}
