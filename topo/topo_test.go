package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poagraph/graph"
	"github.com/katalvlaran/poagraph/topo"
)

func positions(order []int) map[int]int {
	pos := make(map[int]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	return pos
}

func assertTopologicallyValid(t *testing.T, g *graph.Graph, order []int) {
	t.Helper()
	require.Len(t, order, g.NumNodes())
	pos := positions(order)
	for _, id := range order {
		n, err := g.Node(id)
		require.NoError(t, err)
		for _, eid := range n.InEdges() {
			e, err := g.Edge(eid)
			require.NoError(t, err)
			assert.Less(t, pos[e.Begin()], pos[id])
		}
	}
}

func TestSort_Idempotent(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)

	order1, err := topo.Sort(g)
	require.NoError(t, err)
	order2, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, order1, order2)
	assertTopologicallyValid(t, g, order1)
}

func TestRigorousSort_GroupsAlignedClass(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)
	require.NoError(t, g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0, 1, 2, 3},
		SeqIDs:  []int{0, 1, 2, 3},
	}, "AGGT", 1.0))

	order, err := topo.RigorousSort(g)
	require.NoError(t, err)
	assertTopologicallyValid(t, g, order)

	pos := positions(order)
	// node 1 ('C', representative) and its secondary ('G') must be adjacent,
	// representative first.
	n1, err := g.Node(1)
	require.NoError(t, err)
	require.Len(t, n1.Aligned(), 1)
	secondary := n1.Aligned()[0]
	assert.Equal(t, pos[1]+1, pos[secondary])
}

func TestRigorousSort_EmitsEveryNodeExactlyOnce(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)
	require.NoError(t, g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0, 1, 2, 3},
		SeqIDs:  []int{0, 1, 2, 3},
	}, "AGGT", 1.0))
	require.NoError(t, g.AddAlignmentUniform(graph.AlignmentView{}, "TTTT", 1.0))

	order, err := topo.RigorousSort(g)
	require.NoError(t, err)
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		assert.False(t, seen[id], "node %d emitted twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, g.NumNodes())
}
