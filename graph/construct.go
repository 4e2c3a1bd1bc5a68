// File: construct.go
// Role: seed constructors and add_alignment incorporation.
//
// Steps (AddAlignment), matching the source spec's four-fragment description:
//  1. Validate lengths and the alignment view's own shape.
//  2. Empty view: admit the sequence as a disjoint seed chain.
//  3. Otherwise: head chain (unanchored prefix), body (the aligned walk,
//     reusing or forking nodes), tail chain (unanchored suffix).
//  4. Record the new sequence's start node, mark the order dirty, re-sort.
package graph

// qualityOffset is the fixed PHRED-style convention: weight = byte(q) - 33.
const qualityOffset = 33

// QualityToWeights converts a quality string into per-position weights
// using the fixed PHRED convention weight = (float)(q - 33). Negative
// results are not expected but not guarded against, matching spec.
func QualityToWeights(quality string) []float64 {
	w := make([]float64, len(quality))
	for i := 0; i < len(quality); i++ {
		w[i] = float64(quality[i]) - qualityOffset
	}

	return w
}

func uniformWeights(n int, weight float64) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = weight
	}

	return w
}

// New seeds a Graph from sequence with explicit per-position weights.
// len(weights) must equal len(sequence) and sequence must be non-empty.
func New(sequence string, weights []float64) (*Graph, error) {
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}
	if len(sequence) != len(weights) {
		return nil, ErrLengthMismatch
	}
	g := newGraph()
	g.seed(sequence, weights)

	return g, nil
}

// NewUniform seeds a Graph from sequence, replicating weight at every position.
func NewUniform(sequence string, weight float64) (*Graph, error) {
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}

	return New(sequence, uniformWeights(len(sequence), weight))
}

// NewFromQuality seeds a Graph from sequence, deriving weights from quality
// via QualityToWeights. sequence and quality must be equal length.
func NewFromQuality(sequence, quality string) (*Graph, error) {
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}
	if len(sequence) != len(quality) {
		return nil, ErrLengthMismatch
	}

	return New(sequence, QualityToWeights(quality))
}

// seed admits sequence as a fresh, disjoint chain: one node per letter, an
// edge between consecutive nodes weighted by the sum of their two weights.
// It assumes sequence and weights are already validated.
func (g *Graph) seed(sequence string, weights []float64) {
	label := g.numSequences
	start := -1
	prev := -1
	for i := 0; i < len(sequence); i++ {
		node := g.addNode(sequence[i], Representative)
		if i == 0 {
			start = node.id
		} else {
			g.addEdge(prev, node.id, label, weights[i-1]+weights[i])
		}
		prev = node.id
	}

	g.startNodes = append(g.startNodes, start)
	g.numSequences++
	g.markDirty()
	_ = g.resort() // construction rules make a seed chain acyclic by nature
}

// AddAlignmentUniform incorporates sequence with a replicated scalar weight.
func (g *Graph) AddAlignmentUniform(a AlignmentView, sequence string, weight float64) error {
	if len(sequence) == 0 {
		return ErrEmptySequence
	}

	return g.AddAlignment(a, sequence, uniformWeights(len(sequence), weight))
}

// AddAlignmentQuality incorporates sequence with quality-derived weights.
func (g *Graph) AddAlignmentQuality(a AlignmentView, sequence, quality string) error {
	if len(sequence) == 0 {
		return ErrEmptySequence
	}
	if len(sequence) != len(quality) {
		return ErrLengthMismatch
	}

	return g.AddAlignment(a, sequence, QualityToWeights(quality))
}

// AddAlignment incorporates a new sequence given an AlignmentView produced
// against this Graph. See the file header above for the fragment
// decomposition.
func (g *Graph) AddAlignment(a AlignmentView, sequence string, weights []float64) error {
	if len(sequence) == 0 {
		return ErrEmptySequence
	}
	if len(sequence) != len(weights) {
		return ErrLengthMismatch
	}
	if err := a.validate(len(sequence), len(g.nodes)); err != nil {
		return err
	}

	if a.IsEmpty() {
		g.seed(sequence, weights)
		return nil
	}

	label := g.numSequences
	seq := sequence

	firstValid, lastValid := -1, -1
	for i, s := range a.SeqIDs {
		if s != GapSentinel {
			if firstValid == -1 {
				firstValid = i
			}
			lastValid = i
		}
	}
	headBound := a.SeqIDs[firstValid]  // sequence[0:headBound) is unanchored
	tailStart := a.SeqIDs[lastValid] + 1 // sequence[tailStart:] is unanchored

	startNodeID := -1
	headNodeID := -1
	var prevWeight float64

	// Head chain: fresh nodes and edges over sequence[0:headBound).
	prev := -1
	for i := 0; i < headBound; i++ {
		n := g.addNode(seq[i], Representative)
		if i == 0 {
			startNodeID = n.id
		} else {
			g.addEdge(prev, n.id, label, weights[i-1]+weights[i])
		}
		prev = n.id
	}
	if headBound > 0 {
		headNodeID = prev
		prevWeight = weights[headBound-1]
	}

	// Body: walk the alignment, skipping gaps on the sequence side.
	startAssigned := headBound > 0
	for i := 0; i < len(a.NodeIDs); i++ {
		sIdx := a.SeqIDs[i]
		if sIdx == GapSentinel {
			continue
		}
		letter := seq[sIdx]

		var newNodeID int
		if a.NodeIDs[i] == GapSentinel {
			newNodeID = g.addNode(letter, Representative).id
		} else {
			anchor := g.nodes[a.NodeIDs[i]]
			switch {
			case anchor.letter == letter:
				newNodeID = anchor.id
			default:
				newNodeID = -1
				for _, aid := range anchor.aligned {
					if g.nodes[aid].letter == letter {
						newNodeID = aid
						break
					}
				}
				if newNodeID == -1 {
					n := g.addNode(letter, Secondary)
					newNodeID = n.id
					class := append([]int{anchor.id}, anchor.aligned...)
					for _, member := range class {
						g.linkAligned(member, newNodeID)
					}
				}
			}
		}

		if !startAssigned {
			startNodeID = newNodeID
			startAssigned = true
		}
		if headNodeID != -1 {
			g.addEdge(headNodeID, newNodeID, label, prevWeight+weights[sIdx])
		}
		headNodeID = newNodeID
		prevWeight = weights[sIdx]
	}

	// Tail chain: fresh nodes over sequence[tailStart:], linked from the body.
	tailNodeID := -1
	prev = -1
	for i := tailStart; i < len(seq); i++ {
		n := g.addNode(seq[i], Representative)
		if prev == -1 {
			tailNodeID = n.id
		} else {
			g.addEdge(prev, n.id, label, weights[i-1]+weights[i])
		}
		prev = n.id
	}
	if tailNodeID != -1 {
		g.addEdge(headNodeID, tailNodeID, label, prevWeight+weights[tailStart])
	}

	g.startNodes = append(g.startNodes, startNodeID)
	g.numSequences++
	g.markDirty()

	return g.resort()
}
