// Package herr defines the single flat error kind shared by every h2gb
// package. Each error carries a Category so callers can distinguish
// failure classes with errors.Is instead of matching message text.
package herr

import "fmt"

// Category names one of the failure classes from spec §7.
type Category int

const (
	// InvalidArgument covers empty names, zero-length buffers/arrays, bad
	// key lengths, and other caller-supplied values that are malformed on
	// their face.
	InvalidArgument Category = iota
	// OutOfBounds covers edits, clones, or reads that run past the end of
	// a buffer.
	OutOfBounds
	// PreconditionViolated covers mutation of a populated buffer, name
	// collisions, and similar state-dependent refusals.
	PreconditionViolated
	// MissingContext covers calling apply twice or undo out of order.
	MissingContext
	// NotInvertible covers a one-way transform's Untransform call.
	NotInvertible
	// TransformError covers malformed input to a transform (bad padding,
	// bad base64, wrong key length, truncated ciphertext).
	TransformError
	// NeedsDynamicContext covers an H2Type operation that requires bytes
	// but was only given a Static ResolveContext.
	NeedsDynamicContext
	// BadFormatter covers rendering a value with an incompatible
	// Formatter (e.g. a float as binary).
	BadFormatter
)

func (c Category) String() string {
	switch c {
	case InvalidArgument:
		return "invalid argument"
	case OutOfBounds:
		return "out of bounds"
	case PreconditionViolated:
		return "precondition violated"
	case MissingContext:
		return "missing context"
	case NotInvertible:
		return "not invertible"
	case TransformError:
		return "transform error"
	case NeedsDynamicContext:
		return "needs dynamic context"
	case BadFormatter:
		return "bad formatter"
	default:
		return "unknown error"
	}
}

// Error is the one error type every h2gb package returns.
type Error struct {
	Category Category
	Msg      string
}

// New builds an *Error in the given category, formatting msg/args with fmt.
func New(cat Category, msg string, args ...interface{}) *Error {
	return &Error{Category: cat, Msg: fmt.Sprintf(msg, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("h2gb: %s: %s", e.Category, e.Msg)
}

// Is lets errors.Is(err, herr.Sentinel(herr.InvalidArgument)) style checks
// work by comparing categories; see Sentinel below for the usual call
// pattern.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Category == t.Category
}

// Sentinel returns a zero-message *Error in the given category, suitable as
// the target of errors.Is(err, herr.Sentinel(herr.OutOfBounds)).
func Sentinel(cat Category) *Error {
	return &Error{Category: cat}
}
