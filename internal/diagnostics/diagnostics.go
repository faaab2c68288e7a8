package diagnostics

import "fmt"

type Stage string

const (
	StageParse Stage = "parse"
	StageEval  Stage = "eval"
)

// Error is the structured failure value produced by the parser and the
// evaluator. The interpreter never terminates the process itself; errors
// propagate up to the caller, which decides how to report them.
type Error struct {
	Stage   Stage
	Message string
	Line    int // 1-based source line, 0 when unknown (evaluation errors)
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func NewParseError(line int, format string, a ...interface{}) *Error {
	return &Error{Stage: StageParse, Line: line, Message: fmt.Sprintf(format, a...)}
}

func NewEvalError(format string, a ...interface{}) *Error {
	return &Error{Stage: StageEval, Message: fmt.Sprintf(format, a...)}
}
