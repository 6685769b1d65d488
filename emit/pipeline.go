package emit

import "github.com/arunpublic/BLPP-LLVM/graph/profgraph"

// InstrumentFunction runs the full numbering pipeline over p and drives b
// with the result, tagging the graph with procID. It is a thin
// convenience wrapper for callers that have a single CFGProvider per
// procedure and don't need the intermediate *profgraph.Graph for
// anything else.
//
// A rejection from profgraph.Pipeline is returned unwrapped so callers
// can distinguish it (via errors.As to *profgraph.RejectedError) from an
// IRBuilder failure.
func InstrumentFunction(p profgraph.CFGProvider, procID uint32, b IRBuilder) error {
	g, err := profgraph.Pipeline(p)
	if err != nil {
		return err
	}
	g.ProcID = procID
	return Instrument(g, b)
}
