package profgraph

// Pipeline runs the full BLPP sequence over a procedure's CFG: Import,
// AssignEdgeVals, closeExitToEntry, ChooseST, ComputeChordIncrements and
// AssociateAnnotations, in that order. It returns the finished Graph
// ready for RegeneratePath or the emit package, or a RejectedError if the
// procedure's CFG was malformed.
//
// A ContractError panic means p violated the CFGProvider contract (for
// example, a dominance oracle inconsistent with the successor edges it
// also reports) or this package's own invariants were broken; callers
// that process many procedures from an untrusted or generated source may
// want to recover around a single Pipeline call per procedure so one bad
// procedure does not abort a whole batch.
func Pipeline(p CFGProvider) (*Graph, error) {
	g, err := Import(p)
	if err != nil {
		return nil, err
	}
	g.AssignEdgeVals()
	g.closeExitToEntry()
	g.ChooseST()
	g.ComputeChordIncrements()
	g.AssociateAnnotations()
	return g, nil
}
