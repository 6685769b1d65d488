package emit

import (
	"fmt"
	"io"

	"github.com/arunpublic/BLPP-LLVM/graph/profgraph"
)

// TextIRBuilder is the reference IRBuilder: it has no IR dialect of its
// own (per this repository's non-goals) and instead renders the
// instrumentation plan as human-readable pseudo-IR lines, one per call.
// It is used by the instrument CLI subcommand and by tests that assert
// on placement without needing a real backend.
type TextIRBuilder struct {
	w       io.Writer
	nextTmp int
}

// NewTextIRBuilder returns a TextIRBuilder writing to w.
func NewTextIRBuilder(w io.Writer) *TextIRBuilder {
	return &TextIRBuilder{w: w}
}

func (b *TextIRBuilder) SplitCriticalEdge(e *profgraph.Edge) (profgraph.BlockRef, error) {
	switch {
	case len(e.Tail.Out) == 1:
		return e.Tail.Block, nil
	case len(e.Head.In) == 1:
		return e.Head.Block, nil
	default:
		b.nextTmp++
		synthetic := fmt.Sprintf("split.%s.%s.%d", blockLabel(e.Tail.Block), blockLabel(e.Head.Block), b.nextTmp)
		fmt.Fprintf(b.w, "%s:\t; critical edge %s -> %s\n", synthetic, blockLabel(e.Tail.Block), blockLabel(e.Head.Block))
		return synthetic, nil
	}
}

func (b *TextIRBuilder) EmitInit(at profgraph.BlockRef, increment int64) error {
	_, err := fmt.Fprintf(b.w, "%s:\tpathsum := %d\n", blockLabel(at), increment)
	return err
}

func (b *TextIRBuilder) EmitIncr(at profgraph.BlockRef, increment int64) error {
	_, err := fmt.Fprintf(b.w, "%s:\tpathsum := pathsum + %d\n", blockLabel(at), increment)
	return err
}

func (b *TextIRBuilder) EmitRead(at profgraph.BlockRef, increment int64, reset int64, hasReset bool) error {
	sum := "pathsum"
	if increment != 0 {
		sum = fmt.Sprintf("pathsum + %d", increment)
	}
	if _, err := fmt.Fprintf(b.w, "%s:\trecord_path_sum(%s, procID)\n", blockLabel(at), sum); err != nil {
		return err
	}
	if hasReset {
		_, err := fmt.Fprintf(b.w, "%s:\tpathsum := %d\n", blockLabel(at), reset)
		return err
	}
	return nil
}

func (b *TextIRBuilder) EmitRecordEntry(procID uint32) error {
	_, err := fmt.Fprintf(b.w, "entry:\trecord_entry(%d)\n", procID)
	return err
}

func (b *TextIRBuilder) EmitRecordExit(at profgraph.BlockRef, procID uint32) error {
	_, err := fmt.Fprintf(b.w, "%s:\trecord_exit(%d)\n", blockLabel(at), procID)
	return err
}

func blockLabel(b profgraph.BlockRef) string {
	if b == nil {
		return "exit"
	}
	return fmt.Sprint(b)
}
