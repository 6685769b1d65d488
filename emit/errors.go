package emit

import "fmt"

// errorCode identifies the kind of failure Instrument can report, mirroring
// the small code+message shape used elsewhere in this codebase for
// contract-style errors rather than a bare string.
type errorCode string

const (
	codeSplitFailed  errorCode = "split_failed"
	codeEmitFailed   errorCode = "emit_failed"
	codePrologFailed errorCode = "prologue_failed"
	codeEpilogFailed errorCode = "epilogue_failed"
)

var errorMessages = map[errorCode]string{
	codeSplitFailed:  "failed to locate an instrumentation insertion point",
	codeEmitFailed:   "failed to emit instrumentation at an edge",
	codePrologFailed: "failed to emit procedure prologue",
	codeEpilogFailed: "failed to emit procedure epilogue",
}

// InstrumentError wraps a failure from the caller-supplied IRBuilder with
// the phase of Instrument that was running when it happened.
type InstrumentError struct {
	Code errorCode
	Err  error
}

func (e *InstrumentError) Error() string {
	msg := errorMessages[e.Code]
	if msg == "" {
		msg = string(e.Code)
	}
	return fmt.Sprintf("emit: %s: %v", msg, e.Err)
}

func (e *InstrumentError) Unwrap() error { return e.Err }

func newInstrumentError(code errorCode, err error) *InstrumentError {
	return &InstrumentError{Code: code, Err: err}
}
