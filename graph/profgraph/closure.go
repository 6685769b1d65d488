package profgraph

// closeExitToEntry adds the single synthetic exit -> entry edge that
// makes the graph strongly connected, a precondition ChooseST relies on
// to treat entry and exit uniformly with every other node. The closure
// edge is never a chord and never carries an annotation.
func (g *Graph) closeExitToEntry() {
	e := g.addEdge(g.Exit, g.Entry)
	e.IsClosure = true
}
