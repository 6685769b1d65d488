package profgraph

// BlockRef is an opaque handle to a basic block owned by the caller's own
// CFG representation. A profgraph.Graph never inspects a BlockRef beyond
// using it as a map key and handing it back to the caller (via
// RegeneratePath or the emit package), so it must be comparable. The
// entry node carries the procedure's entry block; the synthetic exit
// node a Graph adds on its own carries a nil BlockRef.
type BlockRef interface{}

// CFGProvider is the capability set an external CFG representation must
// expose for Import to build a numbering graph over it. Frontends (see
// package frontend/gocfg) implement this over whatever block
// representation they already have; profgraph never constructs a CFG of
// its own.
type CFGProvider interface {
	// Blocks returns every basic block belonging to the procedure, entry
	// block first. The returned slice's order is preserved as node
	// creation order, which in turn fixes edge iteration order
	// throughout this package.
	Blocks() []BlockRef

	// EntryBlock returns the procedure's distinguished entry block. It
	// must also appear in Blocks().
	EntryBlock() BlockRef

	// Successors returns b's ordered list of successor blocks. A block
	// with no entries here is treated as flowing directly to the
	// procedure's synthetic exit.
	Successors(b BlockRef) []BlockRef

	// Dominates reports whether a dominates b in the procedure's
	// dominator tree. Import uses this only to classify an edge as a
	// back edge (dominates(successor, predecessor)); it never computes
	// dominance itself.
	Dominates(a, b BlockRef) bool
}

// Annotation is the instrumentation action to take at an edge.
type Annotation int

const (
	// NoAnnotation means the edge needs no runtime instrumentation: the
	// path-sum register already holds the correct partial value when
	// control crosses this edge.
	NoAnnotation Annotation = iota
	// Init means emit a store of this edge's Increment into the
	// path-sum register.
	Init
	// Incr means emit a load-add-store of this edge's Increment into
	// the path-sum register.
	Incr
	// Read means emit a record of the path-sum register plus this
	// edge's Increment as a completed path; if HasReset is set, the
	// register is then set to Reset.
	Read
)

func (a Annotation) String() string {
	switch a {
	case Init:
		return "INIT"
	case Incr:
		return "INCR"
	case Read:
		return "READ"
	default:
		return "NONE"
	}
}

// Node is one basic block (or the synthetic entry/exit) in a procedure's
// numbering graph.
type Node struct {
	ID       int
	Block    BlockRef
	NumPaths int64
	In       []*Edge
	Out      []*Edge
}

// IsSynthetic reports whether this node has no underlying basic block.
// Only the exit node is synthetic in this sense; the entry node mirrors
// the procedure's entry block.
func (n *Node) IsSynthetic() bool { return n.Block == nil }

// Edge is a directed control-flow transition between two nodes,
// decorated with everything the numbering and instrumentation passes
// compute along the way.
type Edge struct {
	Tail, Head *Node

	// EdgeVal is the value assigned by AssignEdgeVals: summing EdgeVal
	// along any entry-to-exit path yields that path's unique ID.
	EdgeVal int64

	// IsChord is true once ChooseST has run and this edge was not
	// selected for the spanning tree.
	IsChord bool

	// Increment is the runtime adjustment ComputeChordIncrements
	// assigns to a chord edge (0 for tree edges, never mutated again
	// except when a chord's increment is moved onto its dummy match).
	Increment int64

	// Reset and HasReset carry a chord's increment onto the matching
	// dummy edge on the other side of a back edge, so that edge's
	// eventual READ records the correct path ID. See
	// AssociateAnnotations for how the move is made.
	Reset    int64
	HasReset bool

	// IsDummy is true for the synthetic ENTRY->successor and
	// predecessor->EXIT edges substituted for a back edge. DummyMatch
	// points at the edge on the other side of the pair.
	IsDummy    bool
	DummyMatch *Edge

	// IsClosure is true for the single synthetic EXIT->ENTRY edge added
	// to make the graph strongly connected before spanning-tree
	// selection. It never carries an annotation.
	IsClosure bool

	Annotation   Annotation
	Instrumented bool
}

// Graph is a procedure's path-numbering graph: the CFG plus the
// bookkeeping Import, AssignEdgeVals, closeExitToEntry, ChooseST,
// ComputeChordIncrements and AssociateAnnotations add on top of it.
type Graph struct {
	// ProcID identifies the procedure this graph was built for. It is
	// not set by Import (which knows nothing about procedure identity
	// beyond its blocks); callers that drive emit.Instrument or
	// runtimeprofile set it from whatever numbering their own IR uses.
	ProcID uint32

	Entry *Node
	Exit  *Node

	Nodes []*Node
	Edges []*Edge

	blockIndex map[BlockRef]*Node
}

func newGraph() *Graph {
	return &Graph{blockIndex: make(map[BlockRef]*Node)}
}

func (g *Graph) newNode(block BlockRef) *Node {
	n := &Node{ID: len(g.Nodes), Block: block}
	g.Nodes = append(g.Nodes, n)
	if block != nil {
		g.blockIndex[block] = n
	}
	return n
}

func (g *Graph) nodeFor(block BlockRef) (*Node, bool) {
	n, ok := g.blockIndex[block]
	return n, ok
}

func (g *Graph) addEdge(tail, head *Node) *Edge {
	e := &Edge{Tail: tail, Head: head}
	tail.Out = append(tail.Out, e)
	head.In = append(head.In, e)
	g.Edges = append(g.Edges, e)
	return e
}

// TotalPaths is the total number of distinct entry-to-exit paths through
// the procedure, valid once AssignEdgeVals has run.
func (g *Graph) TotalPaths() int64 {
	if g.Entry == nil {
		return 0
	}
	return g.Entry.NumPaths
}
