package tf

import (
	"context"
	"reflect"
	"time"

	"github.com/heinemichael/geometry2/convert"
	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/registry"
)

// Buffer is the transform facade: it resolves the apply function for a
// value's type, obtains the needed transform from its Source, and applies
// it. A Buffer is stateless and safe for concurrent use.
type Buffer struct {
	src Source
	reg *registry.Registry
}

// New creates a Buffer over src using the process-wide default registry.
// src must be non-nil.
func New(src Source) *Buffer {
	return NewWithRegistry(src, registry.Default())
}

// NewWithRegistry creates a Buffer over src with an explicit registry,
// for callers that keep registrations isolated. Both arguments must be
// non-nil.
func NewWithRegistry(src Source, reg *registry.Registry) *Buffer {
	if src == nil {
		panic("tf: NewWithRegistry with nil source")
	}
	if reg == nil {
		panic("tf: NewWithRegistry with nil registry")
	}
	return &Buffer{src: src, reg: reg}
}

// Source returns the transform source the buffer queries.
func (b *Buffer) Source() Source {
	return b.src
}

// Registry returns the registry the buffer resolves functions in.
func (b *Buffer) Registry() *registry.Registry {
	return b.reg
}

// Transform moves obj into targetFrame, using the transform at obj's own
// timestamp. The result has the dynamic type of obj. The apply function is
// resolved before the source is consulted, so an unregistered type fails
// without any lookup; source errors are returned unchanged.
func (b *Buffer) Transform(ctx context.Context, obj msg.Stamped, targetFrame string, timeout time.Duration) (any, error) {
	fn, err := b.reg.LookupApply(reflect.TypeOf(obj))
	if err != nil {
		return nil, err
	}

	h := obj.GetHeader()
	transform, err := b.src.LookupTransform(ctx, targetFrame, h.FrameID, h.Stamp, timeout)
	if err != nil {
		return nil, err
	}

	return fn(obj, transform)
}

// TransformWithType is Transform followed by a conversion of the result to
// newType. The conversion runs even when newType equals the result's type,
// so the caller always owns an independent value.
func (b *Buffer) TransformWithType(ctx context.Context, obj msg.Stamped, targetFrame string, timeout time.Duration, newType reflect.Type) (any, error) {
	res, err := b.Transform(ctx, obj, targetFrame, timeout)
	if err != nil {
		return nil, err
	}
	return convert.ToType(b.reg, res, newType)
}

// TransformFull moves obj into targetFrame evaluated at targetTime, routed
// through fixedFrame, which is assumed constant over the interval. The
// source frame and time come from obj's header.
func (b *Buffer) TransformFull(ctx context.Context, obj msg.Stamped, targetFrame string, targetTime time.Time, fixedFrame string, timeout time.Duration) (any, error) {
	fn, err := b.reg.LookupApply(reflect.TypeOf(obj))
	if err != nil {
		return nil, err
	}

	h := obj.GetHeader()
	transform, err := b.src.LookupTransformFull(ctx, targetFrame, targetTime, h.FrameID, h.Stamp, fixedFrame, timeout)
	if err != nil {
		return nil, err
	}

	return fn(obj, transform)
}

// TransformFullWithType is TransformFull followed by a conversion of the
// result to newType.
func (b *Buffer) TransformFullWithType(ctx context.Context, obj msg.Stamped, targetFrame string, targetTime time.Time, fixedFrame string, timeout time.Duration, newType reflect.Type) (any, error) {
	res, err := b.TransformFull(ctx, obj, targetFrame, targetTime, fixedFrame, timeout)
	if err != nil {
		return nil, err
	}
	return convert.ToType(b.reg, res, newType)
}

// CanTransform reports whether a Transform into targetFrame would find its
// transform. Pure delegation to the source.
func (b *Buffer) CanTransform(ctx context.Context, targetFrame, sourceFrame string, at time.Time, timeout time.Duration) (bool, error) {
	return b.src.CanTransform(ctx, targetFrame, sourceFrame, at, timeout)
}

// CanTransformFull reports whether a TransformFull would find its
// transform. Pure delegation to the source.
func (b *Buffer) CanTransformFull(ctx context.Context, targetFrame string, targetTime time.Time, sourceFrame string, sourceTime time.Time, fixedFrame string, timeout time.Duration) (bool, error) {
	return b.src.CanTransformFull(ctx, targetFrame, targetTime, sourceFrame, sourceTime, fixedFrame, timeout)
}

// TransformAs transforms obj into targetFrame and converts the result to T.
func TransformAs[T any](ctx context.Context, b *Buffer, obj msg.Stamped, targetFrame string, timeout time.Duration) (T, error) {
	var zero T

	out, err := b.TransformWithType(ctx, obj, targetFrame, timeout, registry.KeyOf[T]())
	if err != nil {
		return zero, err
	}
	return assertAs[T](out)
}

// TransformFullAs transforms obj with the advanced time semantics and
// converts the result to T.
func TransformFullAs[T any](ctx context.Context, b *Buffer, obj msg.Stamped, targetFrame string, targetTime time.Time, fixedFrame string, timeout time.Duration) (T, error) {
	var zero T

	out, err := b.TransformFullWithType(ctx, obj, targetFrame, targetTime, fixedFrame, timeout, registry.KeyOf[T]())
	if err != nil {
		return zero, err
	}
	return assertAs[T](out)
}

func assertAs[T any](out any) (T, error) {
	typed, ok := out.(T)
	if !ok {
		var zero T
		return zero, errors.New(errors.PhaseConvert, errors.KindInvalidData).
			Type(reflect.TypeOf(out)).
			Target(registry.KeyOf[T]()).
			Detail("registered conversion produced a value of the wrong type").
			Build()
	}
	return typed, nil
}
