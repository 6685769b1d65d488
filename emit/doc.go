// Package emit drives an external IR builder over an annotated
// profgraph.Graph, translating each edge's Annotation into the concrete
// instrumentation calls spec.md's emitter contract describes. It owns no
// IR dialect of its own: IRBuilder is the seam a real LLVM/SSA backend
// would implement, and TextIRBuilder is this repository's own
// reference implementation, rendering the plan as readable pseudo-IR.
package emit
