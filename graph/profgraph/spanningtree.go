package profgraph

// ChooseST selects a maximum spanning tree of the graph treated as
// undirected, greedily, in edge insertion order. Entry and exit start
// already "in tree" so that the closure edge (always visited last) finds
// both endpoints already present and is kept in the tree regardless. Any
// other edge is added to the tree if at least one endpoint is not yet in
// it; once both endpoints are in tree it is marked as a chord.
//
// Call this after closeExitToEntry so the closure edge participates in
// selection.
func (g *Graph) ChooseST() {
	inTree := make(map[*Node]bool, len(g.Nodes))
	inTree[g.Entry] = true
	inTree[g.Exit] = true

	for _, e := range g.Edges {
		if e.IsClosure {
			e.IsChord = false
			continue
		}
		tailIn, headIn := inTree[e.Tail], inTree[e.Head]
		if !tailIn || !headIn {
			inTree[e.Tail] = true
			inTree[e.Head] = true
			e.IsChord = false
		} else {
			e.IsChord = true
		}
	}
}
