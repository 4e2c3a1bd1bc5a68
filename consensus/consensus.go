// File: consensus.go
// Role: heaviest-bundle traversal with tie-breaking and branch completion.
//
// Steps:
//  1. Forward pass over the plain topological order: for each node, pick
//     the in-edge with the largest total weight, breaking ties toward the
//     predecessor with the larger own score; prefix-sum the chosen score.
//  2. Track the running argmax node.
//  3. Branch completion: while the argmax is not a sink, disqualify every
//     sibling predecessor of its children, then recompute the forward pass
//     restricted to nodes strictly downstream of it, replacing the argmax
//     with the new downstream maximum. Repeat until the argmax is a sink.
//  4. Trace pred back from the argmax to a source, reverse, and read off letters.
package consensus

import (
	"math"
	"strings"

	"github.com/katalvlaran/poagraph/graph"
	"github.com/katalvlaran/poagraph/topo"
)

// Generate computes the heaviest-bundle consensus of g, returning both its
// letters (no gaps) and the node ids of its path in traversal order.
func Generate(g *graph.Graph) (string, []int, error) {
	order, err := topo.Sort(g)
	if err != nil {
		return "", nil, err
	}
	if len(order) == 0 {
		return "", nil, nil
	}

	n := g.NumNodes()
	pos := make([]int, n)
	for i, id := range order {
		pos[id] = i
	}

	score := make([]float64, n)
	pred := make([]int, n)
	disqualified := make([]bool, n)

	forwardPass := func(from int, respectDisqualified bool) error {
		for i := from; i < len(order); i++ {
			v := order[i]
			node, err := g.Node(v)
			if err != nil {
				return err
			}
			localBest := math.Inf(-1)
			bestPred := -1
			for _, eid := range node.InEdges() {
				e, err := g.Edge(eid)
				if err != nil {
					return err
				}
				u := e.Begin()
				if respectDisqualified && disqualified[u] {
					continue
				}
				w := e.TotalWeight()
				switch {
				case w > localBest:
					localBest = w
					bestPred = u
				case w == localBest && bestPred != -1 && score[u] >= score[bestPred]:
					bestPred = u
				}
			}
			pred[v] = bestPred
			if bestPred == -1 {
				score[v] = 0
			} else {
				score[v] = localBest + score[bestPred]
			}
		}

		return nil
	}

	if err := forwardPass(0, false); err != nil {
		return "", nil, err
	}

	maxID := order[0]
	for _, v := range order {
		if score[v] > score[maxID] {
			maxID = v
		}
	}

	isSink := func(v int) (bool, error) {
		node, err := g.Node(v)
		if err != nil {
			return false, err
		}

		return len(node.OutEdges()) == 0, nil
	}

	for {
		sink, err := isSink(maxID)
		if err != nil {
			return "", nil, err
		}
		if sink {
			break
		}

		node, err := g.Node(maxID)
		if err != nil {
			return "", nil, err
		}
		for _, eid := range node.OutEdges() {
			e, err := g.Edge(eid)
			if err != nil {
				return "", nil, err
			}
			child, err := g.Node(e.End())
			if err != nil {
				return "", nil, err
			}
			for _, ceid := range child.InEdges() {
				ce, err := g.Edge(ceid)
				if err != nil {
					return "", nil, err
				}
				if ce.Begin() != maxID {
					disqualified[ce.Begin()] = true
				}
			}
		}

		start := pos[maxID] + 1
		if err := forwardPass(start, true); err != nil {
			return "", nil, err
		}

		newMax := -1
		for i := start; i < len(order); i++ {
			v := order[i]
			if newMax == -1 || score[v] > score[newMax] {
				newMax = v
			}
		}
		if newMax == -1 {
			break // maxID was already the last node in order; nothing downstream to repair to
		}
		maxID = newMax
	}

	path := []int{maxID}
	for cur := pred[maxID]; cur != -1; cur = pred[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	var sb strings.Builder
	for _, id := range path {
		node, err := g.Node(id)
		if err != nil {
			return "", nil, err
		}
		sb.WriteByte(node.Letter())
	}

	return sb.String(), path, nil
}
