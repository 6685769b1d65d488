package profgraph

// AssignEdgeVals computes edge values by a post-order traversal of the
// graph starting at entry, before the exit -> entry closure edge exists
// (call this before closeExitToEntry). For a node n with no outgoing edges,
// NumPaths is 1. Otherwise, visiting n's outgoing edges in order, each
// edge e is given EdgeVal equal to the running sum of NumPaths over the
// edges already visited, and NumPaths(n) becomes the total of that sum.
// The result: summing EdgeVal along any entry-to-exit path yields a
// distinct integer in [0, NumPaths(entry)), and every such integer is
// reached by exactly one path.
//
// The traversal is iterative, not recursive, so it does not overflow the
// native call stack on deep procedures. Encountering a node still being
// visited higher up the walk (a cycle that survived back-edge removal in
// Import) is a contract violation.
func (g *Graph) AssignEdgeVals() {
	type frame struct {
		node *Node
		idx  int
		sum  int64
	}

	visiting := make(map[*Node]bool, len(g.Nodes))
	done := make(map[*Node]bool, len(g.Nodes))

	stack := []*frame{{node: g.Entry}}
	visiting[g.Entry] = true

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		n := top.node

		if top.idx < len(n.Out) {
			e := n.Out[top.idx]
			head := e.Head

			if done[head] {
				e.EdgeVal = top.sum
				top.sum += head.NumPaths
				top.idx++
				continue
			}
			if visiting[head] {
				panic(newContractError("AssignEdgeVals", "revisited node %d mid-traversal: graph is not acyclic", head.ID))
			}
			visiting[head] = true
			stack = append(stack, &frame{node: head})
			continue
		}

		if len(n.Out) == 0 {
			n.NumPaths = 1
		} else {
			n.NumPaths = top.sum
		}
		done[n] = true
		stack = stack[:len(stack)-1]
	}
}
