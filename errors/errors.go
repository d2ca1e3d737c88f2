package errors

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister  Phase = "register"  // type registration
	PhaseLookup    Phase = "lookup"    // registry lookup
	PhaseConvert   Phase = "convert"   // representation conversion
	PhaseTransform Phase = "transform" // transform application
	PhaseSource    Phase = "source"    // transform source operations
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedType Kind = "unsupported_type"
	KindNotImplemented  Kind = "not_implemented"
	KindInvalidInput    Kind = "invalid_input"
	KindInvalidData     Kind = "invalid_data"
	KindFrameMissing    Kind = "frame_missing"
	KindTimeout         Kind = "timeout"
	KindExtrapolation   Kind = "extrapolation"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // offending type key, if any
	Target string // second type key, for pair lookups and conversions
	Frame  string // offending frame, for source-side failures
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" || e.Target != "" {
		b.WriteString(": ")
		switch {
		case e.Type != "" && e.Target != "":
			b.WriteString("types ")
			b.WriteString(e.Type)
			b.WriteString(" -> ")
			b.WriteString(e.Target)
		case e.Type != "":
			b.WriteString("type ")
			b.WriteString(e.Type)
		default:
			b.WriteString("target type ")
			b.WriteString(e.Target)
		}
	}

	if e.Frame != "" {
		if e.Type != "" || e.Target != "" {
			b.WriteString(", ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString("frame ")
		b.WriteString(fmt.Sprintf("%q", e.Frame))
	}

	if e.Detail != "" {
		if e.Type != "" || e.Target != "" || e.Frame != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// TypeName renders a reflect.Type as a stable key string for diagnostics.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the offending type key
func (b *Builder) Type(t reflect.Type) *Builder {
	b.err.Type = TypeName(t)
	return b
}

// Target sets the second type key of a pair
func (b *Builder) Target(t reflect.Type) *Builder {
	b.err.Target = TypeName(t)
	return b
}

// Frame sets the offending frame name
func (b *Builder) Frame(frame string) *Builder {
	b.err.Frame = frame
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedType creates an error for a type key with no registration
func UnsupportedType(phase Phase, key reflect.Type) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedType,
		Type:   TypeName(key),
		Detail: "type is not registered",
	}
}

// UnsupportedPair creates an error for a type pair with no conversion path
func UnsupportedPair(phase Phase, from, to reflect.Type) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedType,
		Type:   TypeName(from),
		Target: TypeName(to),
		Detail: "no conversion path registered",
	}
}

// NotImplemented creates an error for a missing source capability
func NotImplemented(op string) *Error {
	return &Error{
		Phase:  PhaseSource,
		Kind:   KindNotImplemented,
		Detail: fmt.Sprintf("%s is not implemented by this source", op),
	}
}

// FrameMissing creates an error for a frame pair the source does not know
func FrameMissing(targetFrame, sourceFrame string) *Error {
	return &Error{
		Phase:  PhaseSource,
		Kind:   KindFrameMissing,
		Frame:  sourceFrame,
		Detail: fmt.Sprintf("no transform into frame %q", targetFrame),
	}
}

// Timeout creates an error for a lookup that exceeded its wait budget
func Timeout(targetFrame, sourceFrame string, timeout time.Duration) *Error {
	return &Error{
		Phase:  PhaseSource,
		Kind:   KindTimeout,
		Frame:  sourceFrame,
		Detail: fmt.Sprintf("transform into frame %q not available within %v", targetFrame, timeout),
	}
}

// Extrapolation creates an error for a lookup outside the stored time range
func Extrapolation(frame string, at time.Time) *Error {
	return &Error{
		Phase:  PhaseSource,
		Kind:   KindExtrapolation,
		Frame:  frame,
		Detail: fmt.Sprintf("requested time %s is outside the stored range", at.Format(time.RFC3339Nano)),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
