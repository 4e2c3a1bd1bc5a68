// File: msa.go
// Role: column assignment and row extraction.
package msa

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/poagraph/consensus"
	"github.com/katalvlaran/poagraph/graph"
	"github.com/katalvlaran/poagraph/topo"
)

// GapChar fills an MSA row position with no node for that sequence.
const GapChar = '-'

// assignColumns runs the rigorous sort and assigns a column index to every
// node: a column is allocated when a class representative is reached, and
// shared by every member of the contiguous run that follows it. It returns
// the per-node column slice (indexed by node id) and the total column count.
func assignColumns(g *graph.Graph) ([]int, int, error) {
	order, err := topo.RigorousSort(g)
	if err != nil {
		return nil, 0, err
	}

	col := make([]int, g.NumNodes())
	k := 0
	for i := 0; i < len(order); {
		id := order[i]
		node, err := g.Node(id)
		if err != nil {
			return nil, 0, err
		}
		classSize := 1 + len(node.Aligned())
		for j := 0; j < classSize; j++ {
			col[order[i+j]] = k
		}
		i += classSize
		k++
	}

	return col, k, nil
}

func rowFor(g *graph.Graph, col []int, width int, nodeIDs []int) string {
	row := make([]byte, width)
	for i := range row {
		row[i] = GapChar
	}
	for _, id := range nodeIDs {
		node, err := g.Node(id)
		if err != nil {
			continue
		}
		row[col[id]] = node.Letter()
	}

	return string(row)
}

// Generate returns one MSA row per admitted sequence, in admission order,
// each the same length (the number of aligned-equivalence classes). If
// includeConsensus is true, one further row is appended for the heaviest-
// bundle consensus path.
func Generate(g *graph.Graph, includeConsensus bool) ([]string, error) {
	col, width, err := assignColumns(g)
	if err != nil {
		return nil, err
	}

	rows := make([]string, 0, g.NumSequences()+1)
	for s := 0; s < g.NumSequences(); s++ {
		ids, err := g.NodeIDsForSequence(s)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowFor(g, col, width, ids))
	}

	if includeConsensus {
		_, path, err := consensus.Generate(g)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowFor(g, col, width, path))
	}

	return rows, nil
}

// Check verifies that, for each i, stripping GapChar from rows[i] reproduces
// originals[indices[i]] exactly. It returns ErrCheckMismatch (wrapped with
// the offending row index) on the first mismatch.
func Check(rows []string, originals []string, indices []int) error {
	for i, row := range rows {
		stripped := strings.ReplaceAll(row, string(GapChar), "")
		if stripped != originals[indices[i]] {
			return fmt.Errorf("%w: row %d", ErrCheckMismatch, i)
		}
	}

	return nil
}
