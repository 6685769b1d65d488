package profgraph

import "fmt"

// buildDiamond is the S1 scenario from spec.md §8: an if/else with no
// loops, 4 blocks, 2 distinct entry-to-exit paths.
//
//	0 (entry) -> 1 -> 3
//	          \-> 2 -/
func buildDiamond() *fakeCFG {
	f := newFakeCFG("0")
	f.block("0").block("1").block("2").block("3")
	f.edge("0", "1").edge("0", "2")
	f.edge("1", "3")
	f.edge("2", "3")
	return f
}

func buildStraightLine(n int) *fakeCFG {
	f := newFakeCFG("0")
	for i := 0; i < n; i++ {
		f.block(fmt.Sprint(i))
	}
	for i := 0; i < n-1; i++ {
		f.edge(fmt.Sprint(i), fmt.Sprint(i+1))
	}
	return f
}

// buildSimpleLoop models a one-block loop body reached from entry, with a
// back edge from the loop body to its own header and an exit edge out of
// the loop to a trailing block.
//
//	0 (entry) -> 1 (header) -> 2 (body) -> 1 (back edge)
//	             1 (header) -> 3 (exit)
func buildSimpleLoop() *fakeCFG {
	f := newFakeCFG("0")
	f.block("0").block("1").block("2").block("3")
	f.edge("0", "1")
	f.edge("1", "2")
	f.edge("2", "1")
	f.edge("1", "3")
	f.dom("1", "2") // block 1 dominates block 2: 2->1 is a back edge
	return f
}
