package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err  error
	kind error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error and, when present, the failure kind
// attached by [Formatter.Reject], so both are visible to errors.Is.
func (e CodeError) Unwrap() []error {
	if e.kind == nil {
		return []error{e.err}
	}
	return []error{e.err, e.kind}
}

// Message returns the error message without the position prefix.
func (e CodeError) Message() string {
	if e.err == nil {
		return ""
	}
	if e.kind == nil {
		return e.err.Error()
	}
	return e.kind.Error() + ": " + e.err.Error()
}

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	msg := e.Message()
	if msg == "" {
		return ""
	}

	if !e.pos.IsValid() {
		return msg
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), msg)
}

// Errorf formats an error message. The error will indicate the position in the
// source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	return f.errorf(poser, nil, format, args...)
}

// Reject is [Formatter.Errorf] with a failure kind attached. The kind becomes
// part of the message prefix and is matchable with errors.Is.
func (f Formatter) Reject(poser Poser, kind error, format string, args ...any) error {
	if kind == nil {
		panic("Reject needs a kind")
	}
	return f.errorf(poser, kind, format, args...)
}

func (f Formatter) errorf(poser Poser, kind error, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, kind, pos, end, f.Fset}
}
