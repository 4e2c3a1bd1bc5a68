// File: graph.go
// Role: the Graph arena, its accessors, and the plain cached topological order.
package graph

// Graph is an in-memory POA DAG: a growing arena of Nodes and Edges,
// addressed by dense integer id, plus per-sequence bookkeeping.
//
// Graph is not safe for concurrent mutation from multiple goroutines; per
// spec, construction is single-threaded and synchronous. Multiple Graph
// instances are entirely independent.
type Graph struct {
	nodes    []*Node
	edges    []*Edge
	alphabet map[byte]struct{}

	numSequences int
	startNodes   []int // startNodes[s] = id of sequence s's first node

	order []int // cached plain topological order over node ids
	dirty bool
}

func newGraph() *Graph {
	return &Graph{alphabet: make(map[byte]struct{})}
}

// NumNodes returns the number of nodes ever created.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of distinct (begin, end) edges ever created.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NumSequences returns how many sequences have been admitted so far.
func (g *Graph) NumSequences() int { return g.numSequences }

// Node returns the node with the given id, or ErrNodeNotFound if id is out
// of range.
func (g *Graph) Node(id int) (*Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, ErrNodeNotFound
	}

	return g.nodes[id], nil
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id int) (*Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return nil, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// StartNode returns the id of the first node on sequence seq's path.
func (g *Graph) StartNode(seq int) (int, error) {
	if seq < 0 || seq >= len(g.startNodes) {
		return 0, ErrSequenceNotFound
	}

	return g.startNodes[seq], nil
}

// Alphabet returns every distinct letter observed across all admitted
// sequences, sorted ascending. Not named by the source spec's external
// interface list; exposed because "observed alphabet" is a documented
// Graph attribute with no other accessor.
func (g *Graph) Alphabet() []byte {
	out := make([]byte, 0, len(g.alphabet))
	for b := range g.alphabet {
		out = append(out, b)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

// Order returns the cached plain topological order, re-deriving it first if
// the dirty flag is set. Every mutation re-sorts before returning, so in
// practice the cache is never observed stale by a caller; Order still
// guards against it rather than trust the invariant blindly.
func (g *Graph) Order() ([]int, error) {
	if g.dirty {
		if err := g.resort(); err != nil {
			return nil, err
		}
	}

	return append([]int(nil), g.order...), nil
}

// findEdge returns the id of the existing (begin, end) edge, or -1.
func (g *Graph) findEdge(begin, end int) int {
	for _, eid := range g.nodes[begin].out {
		if g.edges[eid].end == end {
			return eid
		}
	}

	return -1
}

// addEdge coalesces into an existing (begin, end) edge or creates a new one,
// wiring it into begin's out-list and end's in-list.
func (g *Graph) addEdge(begin, end, label int, weight float64) {
	if eid := g.findEdge(begin, end); eid != -1 {
		g.edges[eid].addSequence(label, weight)
		return
	}
	eid := len(g.edges)
	e := newEdge(eid, begin, end, label, weight)
	g.edges = append(g.edges, e)
	g.nodes[begin].addOut(eid)
	g.nodes[end].addIn(eid)
}

// addNode creates and appends a fresh node for letter, returning it.
func (g *Graph) addNode(letter byte, typ int) *Node {
	n := newNode(len(g.nodes), letter, typ)
	g.nodes = append(g.nodes, n)
	g.alphabet[letter] = struct{}{}

	return n
}

// linkAligned ties a and b into the same aligned-equivalence class
// symmetrically: a gains b, b gains a.
func (g *Graph) linkAligned(a, b int) {
	g.nodes[a].addAligned(b)
	g.nodes[b].addAligned(a)
}

func (g *Graph) markDirty() { g.dirty = true }

// NextOnPath returns the node that sequence seq visits immediately after
// node, following the unique out-edge whose label set contains seq. The
// second return value is false when node is the end of seq's path (a sink
// for that sequence).
func (g *Graph) NextOnPath(node, seq int) (int, bool) {
	for _, eid := range g.nodes[node].out {
		e := g.edges[eid]
		if e.HasLabel(seq) {
			return e.end, true
		}
	}

	return 0, false
}

// NodeIDsForSequence walks sequence seq's path from its start node to its
// end, returning every node id visited in order. Exposed because callers
// inspecting one admitted sequence's path (e.g. for diagnostics) would
// otherwise have to re-derive it from edge label scans themselves.
func (g *Graph) NodeIDsForSequence(seq int) ([]int, error) {
	start, err := g.StartNode(seq)
	if err != nil {
		return nil, err
	}
	path := []int{start}
	for cur := start; ; {
		next, ok := g.NextOnPath(cur, seq)
		if !ok {
			break
		}
		path = append(path, next)
		cur = next
	}

	return path, nil
}
