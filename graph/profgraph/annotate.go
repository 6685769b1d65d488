package profgraph

// AssociateAnnotations decides, for every edge, whether the emitter must
// do anything at runtime. It runs two worklist passes and a final sweep.
//
// The forward pass starts at entry and visits each node's outgoing edges
// in order: a chord is given INIT (or, if it is part of a dummy pair,
// its increment is moved onto the matching edge instead, see below); an
// edge whose head has exactly one in-edge is deferred by enqueuing that
// head, since any instrumentation could equally well happen further down
// the unique chain into it; any other edge is given INIT directly (or
// has its increment moved, as above).
//
// The backward pass starts at exit and visits each node's incoming edges
// in order, symmetrically: a chord is given READ; an edge carrying a
// reset moved onto it by the forward pass is given READ using that
// reset, with its increment cleared; an edge whose tail has exactly one
// out-edge is deferred by enqueuing that tail; any other edge is given a
// plain READ.
//
// Moving an increment: when the forward pass decides an edge c with a
// DummyMatch m, c itself is left uninstrumented (NoAnnotation) and its
// Increment value is copied onto m.Reset with m.HasReset set, so that
// when the backward pass reaches m it gives m a READ carrying that reset
// instead of double-counting the dummy pair. The backward pass never
// moves an increment.
//
// The final sweep then visits every edge once more: any chord neither
// pass touched, with a nonzero Increment, is given INCR.
func (g *Graph) AssociateAnnotations() {
	g.forwardPass()
	g.backwardPass()
	for _, e := range g.Edges {
		if e.IsChord && !e.Instrumented && e.Increment != 0 {
			e.Annotation = Incr
			e.Instrumented = true
		}
	}
}

func moveOrInit(e *Edge) {
	if e.DummyMatch != nil {
		m := e.DummyMatch
		m.Reset = e.Increment
		m.HasReset = true
		e.Annotation = NoAnnotation
		e.Instrumented = true
		e.Increment = 0
		return
	}
	e.Annotation = Init
	e.Instrumented = true
}

func (g *Graph) forwardPass() {
	visited := make(map[*Node]bool, len(g.Nodes))
	visited[g.Entry] = true
	queue := []*Node{g.Entry}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		for _, e := range n.Out {
			switch {
			case e.IsChord:
				moveOrInit(e)
			case len(e.Head.In) == 1:
				if !visited[e.Head] {
					visited[e.Head] = true
					queue = append(queue, e.Head)
				}
			default:
				moveOrInit(e)
			}
		}
	}
}

func (g *Graph) backwardPass() {
	visited := make(map[*Node]bool, len(g.Nodes))
	visited[g.Exit] = true
	queue := []*Node{g.Exit}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		for _, e := range n.In {
			switch {
			case e.IsChord:
				e.Annotation = Read
				e.Instrumented = true
			case e.HasReset:
				if e.DummyMatch == nil {
					panic(newContractError("AssociateAnnotations", "edge carries a reset without a dummy match"))
				}
				e.Annotation = Read
				e.Instrumented = true
				e.Increment = 0
			case len(e.Tail.Out) == 1:
				if !visited[e.Tail] {
					visited[e.Tail] = true
					queue = append(queue, e.Tail)
				}
			default:
				e.Annotation = Read
				e.Instrumented = true
				e.Increment = 0
				e.Reset = 0
			}
		}
	}
}
