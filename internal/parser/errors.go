package parser

import (
	"fmt"

	"reef/internal/diag"
	"reef/internal/source"
)

// Error is a parse diagnostic: a human-readable expectation plus the span
// where the mismatch occurred. Callers resolve Span.File back through the
// working set's file registry to render file:line:col messages.
type Error struct {
	Code     diag.Code
	Expected string // set for mismatches
	Span     source.Span
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Span)
}

// Mismatch reports input that does not match the expected construct.
func Mismatch(expected string, span source.Span) *Error {
	return &Error{
		Code:     diag.ParMismatch,
		Expected: expected,
		Span:     span,
		Msg:      fmt.Sprintf("expected %s", expected),
	}
}

// VariableNotFound reports a variable token that failed scope lookup.
func VariableNotFound(span source.Span) *Error {
	return &Error{
		Code: diag.ParVariableNotFound,
		Span: span,
		Msg:  "variable not found",
	}
}

// FromDiagnostic adapts a lex-stage diagnostic into a parse error.
func FromDiagnostic(d *diag.Diagnostic) *Error {
	if d == nil {
		return nil
	}
	return &Error{Code: d.Code, Span: d.Primary, Msg: d.Message}
}

// Diagnostic converts the error for bag collection and rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}

// firstErr keeps the first error of a production chain. Later failures
// still shape garbage nodes; only the earliest error is threaded back.
func firstErr(err, next *Error) *Error {
	if err != nil {
		return err
	}
	return next
}
