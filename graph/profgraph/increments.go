package profgraph

// dir reports the orientation of chord or tree edge b relative to the
// edge a it is being related to during the tree walk: +1 if the two
// edges chain (head(a) == tail(b) or tail(a) == head(b)), -1 if they
// instead share a tail or a head without chaining. a may be nil, meaning
// "no incoming tree edge yet" (the root of the walk), for which dir is
// always +1. Two edges that share no endpoint at all is a contract
// violation: they cannot legitimately be compared.
func dir(a, b *Edge) int {
	if a == nil {
		return 1
	}
	switch {
	case a.Head == b.Tail || a.Tail == b.Head:
		return 1
	case a.Head == b.Head || a.Tail == b.Tail:
		return -1
	default:
		panic(newContractError("dir", "edge pair shares no endpoint"))
	}
}

// treeAdjacency and chordAdjacency index edges by either endpoint,
// keeping the insertion order of g.Edges so the chord-increment walk is
// deterministic.
func (g *Graph) treeAdjacency() map[*Node][]*Edge { return g.adjacency(func(e *Edge) bool { return !e.IsChord }) }
func (g *Graph) chordAdjacency() map[*Node][]*Edge { return g.adjacency(func(e *Edge) bool { return e.IsChord }) }

func (g *Graph) adjacency(keep func(*Edge) bool) map[*Node][]*Edge {
	adj := make(map[*Node][]*Edge, len(g.Nodes))
	for _, e := range g.Edges {
		if !keep(e) {
			continue
		}
		adj[e.Tail] = append(adj[e.Tail], e)
		if e.Head != e.Tail {
			adj[e.Head] = append(adj[e.Head], e)
		}
	}
	return adj
}

func otherEnd(e *Edge, n *Node) *Node {
	if e.Tail == n {
		return e.Head
	}
	return e.Tail
}

// ComputeChordIncrements solves, for each chord edge, the runtime
// adjustment that must be applied when that chord is traversed so that
// the path-sum register ends each path holding that path's ID.
//
// It walks the spanning tree depth-first from entry, treating tree edges
// as undirected. At each node N reached via tree edge tIn carrying an
// accumulated "events" value, every chord c incident to N has
// dir(tIn, c) * events added to its Increment. Once the walk finishes,
// every chord's Increment is adjusted by adding back its own EdgeVal.
//
// Call this after ChooseST. The walk is iterative to avoid overflowing
// the native call stack on deep trees.
func (g *Graph) ComputeChordIncrements() {
	treeAdj := g.treeAdjacency()
	chordAdj := g.chordAdjacency()

	for _, e := range g.Edges {
		if e.IsChord {
			e.Increment = 0
		}
	}

	applyChords := func(n *Node, tIn *Edge, events int64) {
		for _, c := range chordAdj[n] {
			c.Increment += int64(dir(tIn, c)) * events
		}
	}

	type frame struct {
		node   *Node
		tIn    *Edge
		events int64
		idx    int
	}

	visited := make(map[*Node]bool, len(g.Nodes))
	visited[g.Entry] = true
	applyChords(g.Entry, nil, 0)
	stack := []*frame{{node: g.Entry}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		advanced := false
		for top.idx < len(treeAdj[top.node]) {
			t := treeAdj[top.node][top.idx]
			top.idx++
			neighbor := otherEnd(t, top.node)
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			childEvents := int64(dir(top.tIn, t))*top.events + t.EdgeVal
			applyChords(neighbor, t, childEvents)
			stack = append(stack, &frame{node: neighbor, tIn: t, events: childEvents})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	for _, e := range g.Edges {
		if e.IsChord {
			e.Increment += e.EdgeVal
		}
	}
}
