package gocfg

import "github.com/arunpublic/BLPP-LLVM/graph/profgraph"

// Block is one basic block of a parsed Go function: a maximal run of
// statements with a single entry and single fallthrough/branch exit.
type Block struct {
	ID         int
	Label      string
	StartByte  uint32
	EndByte    uint32
	Returns    bool // block ends in a return_statement; no fallthrough successor
	Successors []int
}

// FunctionCFG is a parsed Go function's control flow graph, satisfying
// profgraph.CFGProvider over *Block handles.
type FunctionCFG struct {
	Name    string
	List    []*Block
	EntryID int

	dominators []map[int]struct{} // index by Block.ID, computed lazily
}

func (f *FunctionCFG) blockByID(id int) *Block { return f.List[id] }

// Blocks implements profgraph.CFGProvider.
func (f *FunctionCFG) Blocks() []profgraph.BlockRef {
	out := make([]profgraph.BlockRef, len(f.List))
	for i, b := range f.List {
		out[i] = b
	}
	return out
}

// EntryBlock implements profgraph.CFGProvider.
func (f *FunctionCFG) EntryBlock() profgraph.BlockRef {
	return f.List[f.EntryID]
}

// Successors implements profgraph.CFGProvider.
func (f *FunctionCFG) Successors(b profgraph.BlockRef) []profgraph.BlockRef {
	block := b.(*Block)
	out := make([]profgraph.BlockRef, len(block.Successors))
	for i, s := range block.Successors {
		out[i] = f.List[s]
	}
	return out
}

// Dominates implements profgraph.CFGProvider using the teacher's iterative
// dataflow dominator algorithm, adapted to operate over int block ids
// instead of string BasicBlock ids.
func (f *FunctionCFG) Dominates(a, b profgraph.BlockRef) bool {
	if f.dominators == nil {
		f.computeDominators()
	}
	aBlock := a.(*Block)
	bBlock := b.(*Block)
	_, ok := f.dominators[bBlock.ID][aBlock.ID]
	return ok
}

func (f *FunctionCFG) computeDominators() {
	n := len(f.List)
	all := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		all[i] = struct{}{}
	}

	preds := make([][]int, n)
	for _, blk := range f.List {
		for _, s := range blk.Successors {
			preds[s] = append(preds[s], blk.ID)
		}
	}

	dom := make([]map[int]struct{}, n)
	dom[f.EntryID] = map[int]struct{}{f.EntryID: {}}
	for i := 0; i < n; i++ {
		if i != f.EntryID {
			dom[i] = copySet(all)
		}
	}

	changed := true
	for changed {
		changed = false
		for i := 0; i < n; i++ {
			if i == f.EntryID {
				continue
			}
			var next map[int]struct{}
			if len(preds[i]) > 0 {
				next = copySet(dom[preds[i][0]])
				for _, p := range preds[i][1:] {
					next = intersectSets(next, dom[p])
				}
			} else {
				next = map[int]struct{}{}
			}
			next[i] = struct{}{}
			if !setsEqual(next, dom[i]) {
				dom[i] = next
				changed = true
			}
		}
	}
	f.dominators = dom
}

func copySet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func intersectSets(a, b map[int]struct{}) map[int]struct{} {
	out := map[int]struct{}{}
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func setsEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
