package profgraph

// Import builds a Graph from a procedure's CFG. It creates one node per
// block returned by p.Blocks(), plus a synthetic exit node; the node
// created for p.EntryBlock() serves as the graph's entry. It then walks
// each block's successors in order:
//
//   - a back edge (dominates(successor, predecessor) is true) is replaced
//     by a dummy pair: entry -> successor and predecessor -> exit, cross
//     linked via DummyMatch;
//   - any other edge is added directly, predecessor -> successor;
//   - a block with no successors gets a direct predecessor -> exit edge.
//
// After every block has been walked, Import checks that every node is
// reachable from entry; a node that is not is reported via RejectedError
// and the procedure is rejected outright, with no instrumentation
// produced for it.
//
// Import does not call AssignEdgeVals, closeExitToEntry, ChooseST,
// ComputeChordIncrements or AssociateAnnotations; see Pipeline to run the
// full sequence.
func Import(p CFGProvider) (*Graph, error) {
	g := newGraph()
	g.Exit = g.newNode(nil)

	blocks := p.Blocks()
	entryBlock := p.EntryBlock()

	for _, b := range blocks {
		if b == entryBlock {
			g.Entry = g.newNode(b)
		} else {
			g.newNode(b)
		}
	}
	if g.Entry == nil {
		panic(newContractError("Import", "entry block %v not present in Blocks()", entryBlock))
	}

	for _, b := range blocks {
		tail, ok := g.nodeFor(b)
		if !ok {
			panic(newContractError("Import", "block %v has no node", b))
		}
		succs := p.Successors(b)
		if len(succs) == 0 {
			g.addEdge(tail, g.Exit)
			continue
		}
		for _, s := range succs {
			head, ok := g.nodeFor(s)
			if !ok {
				panic(newContractError("Import", "successor %v of %v has no node", s, b))
			}
			if p.Dominates(s, b) {
				fromEntry := g.addEdge(g.Entry, head)
				toExit := g.addEdge(tail, g.Exit)
				fromEntry.IsDummy = true
				toExit.IsDummy = true
				fromEntry.DummyMatch = toExit
				toExit.DummyMatch = fromEntry
				continue
			}
			g.addEdge(tail, head)
		}
	}

	if rejected := g.findUnreachable(); rejected != nil {
		return nil, rejected
	}
	return g, nil
}

// findUnreachable returns a RejectedError for the first node (by creation
// order) that cannot be reached from entry by following Out edges, or
// nil if every node is reachable.
func (g *Graph) findUnreachable() *RejectedError {
	reached := make(map[*Node]bool, len(g.Nodes))
	queue := []*Node{g.Entry}
	reached[g.Entry] = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range n.Out {
			if !reached[e.Head] {
				reached[e.Head] = true
				queue = append(queue, e.Head)
			}
		}
	}
	for _, n := range g.Nodes {
		if n == g.Exit {
			continue
		}
		if !reached[n] {
			return &RejectedError{Block: n.Block, Reason: "block has no path from entry"}
		}
	}
	return nil
}
