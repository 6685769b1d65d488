package emit

import "github.com/arunpublic/BLPP-LLVM/graph/profgraph"

// IRBuilder is the seam between an annotated profgraph.Graph and a real
// IR-mutation backend. Instrument drives it; this package never mutates
// IR itself.
type IRBuilder interface {
	// SplitCriticalEdge locates (creating if necessary) the basic block
	// at which instrumentation for e should be inserted: at e's tail if
	// the tail has a unique successor, at e's head if the head has a
	// unique predecessor, or a newly materialized intermediate block
	// otherwise.
	SplitCriticalEdge(e *profgraph.Edge) (insertionPoint profgraph.BlockRef, err error)

	EmitInit(at profgraph.BlockRef, increment int64) error
	EmitIncr(at profgraph.BlockRef, increment int64) error
	EmitRead(at profgraph.BlockRef, increment int64, reset int64, hasReset bool) error

	EmitRecordEntry(procID uint32) error
	EmitRecordExit(at profgraph.BlockRef, procID uint32) error
}

// Instrument walks every edge of an annotated graph and drives b exactly
// per the emitter responsibilities: a record_entry call at the
// procedure's prologue, INIT/INCR/READ/NONE dispatch at each edge's
// insertion point, and a record_exit call placed at the insertion point
// of every non-dummy edge flowing into exit. The synthetic exit->entry
// closure edge is never instrumented.
func Instrument(g *profgraph.Graph, b IRBuilder) error {
	if err := b.EmitRecordEntry(g.ProcID); err != nil {
		return newInstrumentError(codePrologFailed, err)
	}

	for _, e := range g.Edges {
		if e.IsClosure || e.Annotation == profgraph.NoAnnotation {
			continue
		}

		at, err := b.SplitCriticalEdge(e)
		if err != nil {
			return newInstrumentError(codeSplitFailed, err)
		}

		switch e.Annotation {
		case profgraph.Init:
			err = b.EmitInit(at, e.Increment)
		case profgraph.Incr:
			err = b.EmitIncr(at, e.Increment)
		case profgraph.Read:
			err = b.EmitRead(at, e.Increment, e.Reset, e.HasReset)
		}
		if err != nil {
			return newInstrumentError(codeEmitFailed, err)
		}
	}

	for _, e := range g.Exit.In {
		if e.IsDummy {
			continue
		}
		at, err := b.SplitCriticalEdge(e)
		if err != nil {
			return newInstrumentError(codeSplitFailed, err)
		}
		if err := b.EmitRecordExit(at, g.ProcID); err != nil {
			return newInstrumentError(codeEpilogFailed, err)
		}
	}
	return nil
}
