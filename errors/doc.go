// Package errors provides structured error types for the geometry2 library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending type key or
// key pair, the frame involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLookup, errors.KindUnsupportedType).
//		Type(reflect.TypeOf(p)).
//		Detail("no transform function registered").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedType(errors.PhaseLookup, reflect.TypeOf(p))
//	err := errors.FrameMissing("laser", "map")
//
// All errors implement the standard error interface and support errors.Is/As.
// Errors produced by an external transform source are never wrapped by the
// facade; the frame_missing/timeout/extrapolation kinds exist for source
// implementations (such as the static package) and their callers.
package errors
