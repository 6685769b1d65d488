// Package gocfg builds a per-function control flow graph for Go source
// using the tree-sitter Go grammar, and exposes it as a
// graph/profgraph.CFGProvider so BLPP instrumentation can be derived
// directly from a parsed .go file.
//
// The block-splitting rules it implements (branch on if/for/switch
// statement boundaries, one block per straight-line run of statements)
// yield exactly what profgraph.CFGProvider needs: blocks, successors,
// entry, and a dominance oracle.
package gocfg
