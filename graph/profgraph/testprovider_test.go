package profgraph

// fakeCFG is a minimal CFGProvider backed by string block IDs, used
// across this package's tests to build small hand-checkable procedures.
type fakeCFG struct {
	entry string
	succs map[string][]string
	doms  map[string]map[string]bool // doms[a][b] true means a dominates b
	order []string
}

func newFakeCFG(entry string) *fakeCFG {
	return &fakeCFG{
		entry: entry,
		succs: map[string][]string{},
		doms:  map[string]map[string]bool{},
	}
}

func (f *fakeCFG) block(id string) *fakeCFG {
	f.order = append(f.order, id)
	if _, ok := f.succs[id]; !ok {
		f.succs[id] = nil
	}
	return f
}

func (f *fakeCFG) edge(from, to string) *fakeCFG {
	f.succs[from] = append(f.succs[from], to)
	return f
}

func (f *fakeCFG) dom(a, b string) *fakeCFG {
	if f.doms[a] == nil {
		f.doms[a] = map[string]bool{}
	}
	f.doms[a][b] = true
	return f
}

func (f *fakeCFG) Blocks() []BlockRef {
	out := make([]BlockRef, len(f.order))
	for i, id := range f.order {
		out[i] = id
	}
	return out
}

func (f *fakeCFG) EntryBlock() BlockRef { return f.entry }

func (f *fakeCFG) Successors(b BlockRef) []BlockRef {
	succs := f.succs[b.(string)]
	out := make([]BlockRef, len(succs))
	for i, s := range succs {
		out[i] = s
	}
	return out
}

func (f *fakeCFG) Dominates(a, b BlockRef) bool {
	if a == b {
		return true
	}
	return f.doms[a.(string)][b.(string)]
}
