package ir

import "fmt"

// ErrorKind classifies a fatal per-compile failure.
type ErrorKind uint8

const (
	// KindInvalidArgument marks a violated builder invariant:
	// mismatched operand types, an out-of-range composite index, an
	// unknown opcode variant.
	KindInvalidArgument ErrorKind = iota

	// KindNotImplemented marks an opcode variant the current backend
	// or frontend does not lower.
	KindNotImplemented

	// KindLogicError marks a branch a prior pass should have made
	// unreachable.
	KindLogicError

	// KindDecodeError marks a source bit-field outside its expected
	// range.
	KindDecodeError

	// KindResourceExhausted marks backend register pool exhaustion.
	KindResourceExhausted
)

var kindNames = [...]string{
	"invalid argument",
	"not implemented",
	"logic error",
	"decode error",
	"resource exhausted",
}

// CompileError is the error type for every fatal condition inside a
// shader compile. The pipeline is fail-fast: the first CompileError
// aborts the compile and propagates to the Recompile entry point.
type CompileError struct {
	Kind ErrorKind
	msg  string
}

func (e *CompileError) Error() string {
	return kindNames[e.Kind] + ": " + e.msg
}

// Is matches any CompileError of the same kind, so that
// errors.Is(err, ir.ErrNotImplemented) works on wrapped errors.
func (e *CompileError) Is(target error) bool {
	t, ok := target.(*CompileError)
	return ok && t.Kind == e.Kind && (t.msg == "" || t.msg == e.msg)
}

// Sentinel errors for errors.Is matching.
var (
	ErrInvalidArgument   = &CompileError{Kind: KindInvalidArgument}
	ErrNotImplemented    = &CompileError{Kind: KindNotImplemented}
	ErrLogicError        = &CompileError{Kind: KindLogicError}
	ErrDecodeError       = &CompileError{Kind: KindDecodeError}
	ErrResourceExhausted = &CompileError{Kind: KindResourceExhausted}
)

// InvalidArgumentf builds a KindInvalidArgument error.
func InvalidArgumentf(format string, args ...any) *CompileError {
	return &CompileError{Kind: KindInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// NotImplementedf builds a KindNotImplemented error.
func NotImplementedf(format string, args ...any) *CompileError {
	return &CompileError{Kind: KindNotImplemented, msg: fmt.Sprintf(format, args...)}
}

// LogicErrorf builds a KindLogicError error.
func LogicErrorf(format string, args ...any) *CompileError {
	return &CompileError{Kind: KindLogicError, msg: fmt.Sprintf(format, args...)}
}

// DecodeErrorf builds a KindDecodeError error.
func DecodeErrorf(format string, args ...any) *CompileError {
	return &CompileError{Kind: KindDecodeError, msg: fmt.Sprintf(format, args...)}
}

// ResourceExhaustedf builds a KindResourceExhausted error.
func ResourceExhaustedf(format string, args ...any) *CompileError {
	return &CompileError{Kind: KindResourceExhausted, msg: fmt.Sprintf(format, args...)}
}

// Recover converts a panicked *CompileError into *err. Builder and
// emitter code deep inside the pipeline panics with a CompileError
// instead of threading error returns through every construction; the
// compile entry points recover here so public APIs never panic.
//
// Usage: defer ir.Recover(&err)
func Recover(err *error) {
	switch r := recover().(type) {
	case nil:
	case *CompileError:
		*err = r
	default:
		panic(r)
	}
}
