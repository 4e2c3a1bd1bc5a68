package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poagraph/graph"
)

func TestNewUniform_Seed(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, 1, g.NumSequences())

	for i := 0; i < g.NumEdges(); i++ {
		e, err := g.Edge(i)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, e.TotalWeight(), 1e-9)
	}
}

func TestNew_EmptyAndLengthMismatch(t *testing.T) {
	_, err := graph.New("", []float64{})
	assert.ErrorIs(t, err, graph.ErrEmptySequence)

	_, err = graph.New("ACGT", []float64{1, 2, 3})
	assert.ErrorIs(t, err, graph.ErrLengthMismatch)
}

func TestNewFromQuality_WeightConvention(t *testing.T) {
	// '!' == 33 -> weight 0; 'I' == 73 -> weight 40
	g, err := graph.NewFromQuality("AC", "!I")
	require.NoError(t, err)
	e, err := g.Edge(0)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, e.TotalWeight(), 1e-9) // 0 + 40

	w := graph.QualityToWeights("!I")
	require.Len(t, w, 2)
	assert.InDelta(t, 0.0, w[0], 1e-9)
	assert.InDelta(t, 40.0, w[1], 1e-9)
}

// TestAddAlignment_S2_ExactReuse is scenario S2: admitting an identical
// sequence must not create any new node and must double every edge weight.
func TestAddAlignment_S2_ExactReuse(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0, 1, 2, 3},
		SeqIDs:  []int{0, 1, 2, 3},
	}, "ACGT", 1.0)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	for i := 0; i < g.NumEdges(); i++ {
		e, err := g.Edge(i)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, e.TotalWeight(), 1e-9)
		assert.Len(t, e.Labels(), 2)
	}
}

// TestAddAlignment_S3_Substitution is scenario S3: a mismatching letter at
// an anchored position forks one secondary node tied into the class.
func TestAddAlignment_S3_Substitution(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0, 1, 2, 3},
		SeqIDs:  []int{0, 1, 2, 3},
	}, "AGGT", 1.0)
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumNodes())
	n1, err := g.Node(1)
	require.NoError(t, err)
	assert.Len(t, n1.Aligned(), 1)
	secondary, err := g.Node(n1.Aligned()[0])
	require.NoError(t, err)
	assert.Equal(t, byte('G'), secondary.Letter())
	assert.Equal(t, graph.Secondary, secondary.Type())
	// symmetry
	assert.Contains(t, secondary.Aligned(), 1)
}

// TestAddAlignment_S4_Insertion is scenario S4: an unanchored sequence
// position between two anchored ones inserts a fresh representative node.
func TestAddAlignment_S4_Insertion(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0, 1, graph.GapSentinel, 2, 3},
		SeqIDs:  []int{0, 1, 2, 3, 4},
	}, "ACCGT", 1.0)
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumNodes())
	inserted, err := g.Node(4)
	require.NoError(t, err)
	assert.Equal(t, byte('C'), inserted.Letter())
	assert.Equal(t, graph.Representative, inserted.Type())
	assert.Empty(t, inserted.Aligned())
}

// TestAddAlignment_S6_DisjointChain is scenario S6: an empty alignment view
// admits the sequence as an entirely disjoint chain.
func TestAddAlignment_S6_DisjointChain(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignmentUniform(graph.AlignmentView{}, "GGGG", 1.0)
	require.NoError(t, err)

	assert.Equal(t, 8, g.NumNodes())
	assert.Equal(t, 2, g.NumSequences())
	start1, err := g.StartNode(1)
	require.NoError(t, err)
	assert.Equal(t, 4, start1)
}

func TestAlignmentView_InvalidShape(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0, 1},
		SeqIDs:  []int{0},
	}, "AC", 1.0)
	assert.ErrorIs(t, err, graph.ErrInvalidAlignment)
}

// TestAlignmentView_AllGapSeqIDsRejected guards against a non-empty view
// (per IsEmpty, which only checks NodeIDs) whose SeqIDs are entirely
// GapSentinel: it anchors the sequence nowhere, so it must be rejected
// rather than fall into AddAlignment's body walk with no valid index to
// derive the head/tail split from.
func TestAlignmentView_AllGapSeqIDsRejected(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)

	err = g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0},
		SeqIDs:  []int{graph.GapSentinel},
	}, "A", 1.0)
	assert.ErrorIs(t, err, graph.ErrInvalidAlignment)
}

func TestAlphabet_SortedDeduplicated(t *testing.T) {
	g, err := graph.NewUniform("GATTACA", 1.0)
	require.NoError(t, err)
	assert.Equal(t, []byte("ACGT"), g.Alphabet())
}

func TestOrder_IsTopologicallyValid(t *testing.T) {
	g, err := graph.NewUniform("ACGT", 1.0)
	require.NoError(t, err)
	require.NoError(t, g.AddAlignmentUniform(graph.AlignmentView{
		NodeIDs: []int{0, 1, graph.GapSentinel, 2, 3},
		SeqIDs:  []int{0, 1, 2, 3, 4},
	}, "ACCGT", 1.0))

	order, err := g.Order()
	require.NoError(t, err)
	require.Len(t, order, g.NumNodes())

	position := make(map[int]int, len(order))
	for i, id := range order {
		position[id] = i
	}
	for _, id := range order {
		n, err := g.Node(id)
		require.NoError(t, err)
		for _, eid := range n.InEdges() {
			e, err := g.Edge(eid)
			require.NoError(t, err)
			assert.Less(t, position[e.Begin()], position[id])
		}
	}
}
