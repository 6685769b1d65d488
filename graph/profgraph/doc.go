// Package profgraph implements Ball-Larus path profiling (BLPP): it builds
// a numbering graph from a procedure's control flow graph, assigns edge
// values so that summing values along any entry-to-exit path yields a
// unique path identifier, selects a spanning tree, solves the chord
// increments that must run at runtime, and decides where to place
// instrumentation.
//
// # Pipeline
//
//	g, err := profgraph.Pipeline(provider)
//	if err != nil {
//	    // provider described a malformed procedure (RejectedError); a
//	    // programmer bug is raised as a ContractError panic instead.
//	}
//	for _, e := range g.Edges {
//	    // e.Annotation tells the emitter what to do at this edge.
//	}
//
// # Scope
//
// This package only implements the numbering and annotation-placement
// core. It does not parse any particular IR, split critical edges, or run
// the instrumented program; see package emit for the emitter-facing
// interface and package runtimeprofile for the on-disk counter format.
package profgraph
