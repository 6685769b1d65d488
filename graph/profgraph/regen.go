package profgraph

import "fmt"

// RegeneratePath walks the graph from entry, greedily taking at each
// node the outgoing edge with the largest EdgeVal not exceeding the
// remaining budget, and subtracting that value from the budget. The
// sequence of blocks visited along the way (skipping the synthetic
// ENTRY->successor half of a dummy pair, which represents a substituted
// back edge rather than a real visit to entry) is the unique path that
// pathID identifies.
//
// RegeneratePath never mutates the graph; it is safe to call repeatedly
// and concurrently once numbering has completed. An out-of-range pathID
// is a contract violation, not malformed input — the same bucket as
// AssignEdgeVals revisiting a node or Dir seeing two edges with no
// shared endpoint — so it panics rather than returning an error.
func (g *Graph) RegeneratePath(pathID uint64) ([]BlockRef, error) {
	if pathID >= uint64(g.TotalPaths()) {
		panic(newContractError("RegeneratePath", "path ID %d out of range [0, %d)", pathID, g.TotalPaths()))
	}

	var out []BlockRef
	cur := g.Entry
	remaining := int64(pathID)

	for cur != g.Exit {
		var chosen *Edge
		for _, e := range cur.Out {
			if e.EdgeVal <= remaining && (chosen == nil || e.EdgeVal > chosen.EdgeVal) {
				chosen = e
			}
		}
		if chosen == nil {
			return nil, fmt.Errorf("profgraph: path ID %d has no viable edge at block %v", pathID, cur.Block)
		}

		syntheticHop := chosen.DummyMatch != nil && chosen.Head != g.Exit
		if !syntheticHop {
			out = append(out, cur.Block)
		}

		remaining -= chosen.EdgeVal
		cur = chosen.Head
	}
	return out, nil
}
