package profgraph

import "fmt"

// ContractError signals a violation of this package's internal invariants:
// a caller-supplied CFGProvider that lies about dominance, a cycle that
// survived back-edge removal, or any other state the algorithms assume
// cannot happen. Contract violations are programmer bugs, not malformed
// input, and are raised as panics rather than returned errors.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("profgraph: contract violation in %s: %s", e.Op, e.Msg)
}

func newContractError(op, format string, args ...interface{}) *ContractError {
	return &ContractError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// RejectedError reports that a procedure's control flow graph is
// malformed in a way that prevents path numbering: it is returned, never
// panicked, because a misshapen input is an expected condition, not a bug
// in this package.
type RejectedError struct {
	Block  BlockRef
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("procedure rejected: block %v: %s", e.Block, e.Reason)
}
