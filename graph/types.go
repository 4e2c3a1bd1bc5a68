package graph

// Node type flags. A class of aligned nodes has exactly one Representative
// and any number of Secondary members, added when a mismatching letter
// needed a new node tied to an existing aligned-equivalence class.
const (
	Representative = 0
	Secondary      = 1
)

// GapSentinel is the −1 used by AlignmentView to mean "no entry here".
const GapSentinel = -1

// Node is a letter-bearing vertex. Its Letter and Type are fixed at
// creation; OutEdges, InEdges, and Aligned grow monotonically and are never
// reused or reordered except by append.
type Node struct {
	id      int
	letter  byte
	typ     int
	out     []int // outgoing edge ids, in the order added
	in      []int // incoming edge ids, in the order added
	aligned []int // ids of nodes in the same aligned-equivalence class, insertion order
}

func newNode(id int, letter byte, typ int) *Node {
	return &Node{id: id, letter: letter, typ: typ}
}

// ID returns the node's stable, 0-based, dense identity.
func (n *Node) ID() int { return n.id }

// Letter returns the single byte this node represents.
func (n *Node) Letter() byte { return n.letter }

// Type returns Representative or Secondary.
func (n *Node) Type() int { return n.typ }

// OutEdges returns the ids of outgoing edges, in the order they were added.
// The returned slice is a copy; callers may not mutate Node state through it.
func (n *Node) OutEdges() []int { return append([]int(nil), n.out...) }

// InEdges returns the ids of incoming edges, in the order they were added.
func (n *Node) InEdges() []int { return append([]int(nil), n.in...) }

// Aligned returns the ids of nodes in this node's aligned-equivalence class
// (not including this node itself), in the order they were added.
func (n *Node) Aligned() []int { return append([]int(nil), n.aligned...) }

func (n *Node) addOut(id int)     { n.out = append(n.out, id) }
func (n *Node) addIn(id int)      { n.in = append(n.in, id) }
func (n *Node) addAligned(id int) { n.aligned = append(n.aligned, id) }

// Edge is a directed link between two nodes, weighted by the aggregate
// confidence of every sequence that has ever traversed it. Between a given
// (begin, end) pair the Graph maintains at most one Edge; repeated
// additions coalesce into it.
type Edge struct {
	id     int
	begin  int
	end    int
	weight float64
	labels []int // sequence ids that traverse this edge
}

func newEdge(id, begin, end, label int, weight float64) *Edge {
	return &Edge{id: id, begin: begin, end: end, weight: weight, labels: []int{label}}
}

// ID returns the edge's stable identity.
func (e *Edge) ID() int { return e.id }

// Begin returns the source node id.
func (e *Edge) Begin() int { return e.begin }

// End returns the destination node id.
func (e *Edge) End() int { return e.end }

// TotalWeight returns the sum of every weight added to this edge.
func (e *Edge) TotalWeight() float64 { return e.weight }

// Labels returns the sequence ids that traverse this edge, in the order added.
func (e *Edge) Labels() []int { return append([]int(nil), e.labels...) }

// HasLabel reports whether sequence seq traverses this edge.
func (e *Edge) HasLabel(seq int) bool {
	for _, l := range e.labels {
		if l == seq {
			return true
		}
	}
	return false
}

// addSequence coalesces another sequence's traversal into this edge: the
// label is appended and the weight is summed into the aggregate.
func (e *Edge) addSequence(label int, weight float64) {
	e.labels = append(e.labels, label)
	e.weight += weight
}

// AlignmentView is the pairing, supplied by an external sequence-to-graph
// aligner, of a new sequence against the existing graph. NodeIDs[i] and
// SeqIDs[i] describe step i: NodeIDs[i] is an existing node id or
// GapSentinel (gap on the graph side); SeqIDs[i] is an index into the new
// sequence or GapSentinel (gap on the sequence side). Both arrays must be
// the same length, and each, read left to right ignoring GapSentinel
// entries, must be non-decreasing.
type AlignmentView struct {
	NodeIDs []int
	SeqIDs  []int
}

// IsEmpty reports whether the view anchors the sequence to nothing already
// in the graph, i.e. the sequence should be admitted as a disjoint seed chain.
func (a AlignmentView) IsEmpty() bool { return len(a.NodeIDs) == 0 }

// validate checks the shape contract against a sequence of length seqLen
// and the graph's current node count.
func (a AlignmentView) validate(seqLen, numNodes int) error {
	if len(a.NodeIDs) != len(a.SeqIDs) {
		return ErrInvalidAlignment
	}
	lastNode, lastSeq := GapSentinel, GapSentinel
	hasValidSeq := false
	for i := range a.NodeIDs {
		nid, sid := a.NodeIDs[i], a.SeqIDs[i]
		if nid != GapSentinel {
			if nid < 0 || nid >= numNodes {
				return ErrNodeNotFound
			}
			if nid < lastNode {
				return ErrInvalidAlignment
			}
			lastNode = nid
		}
		if sid != GapSentinel {
			if sid < 0 || sid >= seqLen {
				return ErrInvalidAlignment
			}
			if sid < lastSeq {
				return ErrInvalidAlignment
			}
			lastSeq = sid
			hasValidSeq = true
		}
	}
	// A non-empty view (per IsEmpty) must anchor somewhere: an all-gap
	// SeqIDs array is neither a valid body walk nor the disjoint-seed case,
	// and would otherwise index SeqIDs[-1] in AddAlignment's head/tail split.
	if len(a.NodeIDs) > 0 && !hasValidSeq {
		return ErrInvalidAlignment
	}

	return nil
}
