package tf

import (
	"context"
	"time"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
)

// Source answers frame-relationship queries. The zero time.Time requests
// the latest available transform; a zero timeout means "check once, fail
// immediately if not available".
//
// Implementations must be safe for concurrent use.
type Source interface {
	// LookupTransform returns the transform that moves data from
	// sourceFrame into targetFrame at the given time.
	LookupTransform(ctx context.Context, targetFrame, sourceFrame string, at time.Time, timeout time.Duration) (msg.TransformStamped, error)

	// LookupTransformFull is the advanced form: the source frame is
	// evaluated at sourceTime, the target frame at targetTime, connected
	// through fixedFrame, which is assumed constant over the interval.
	LookupTransformFull(ctx context.Context, targetFrame string, targetTime time.Time, sourceFrame string, sourceTime time.Time, fixedFrame string, timeout time.Duration) (msg.TransformStamped, error)

	// CanTransform reports whether LookupTransform would succeed. A false
	// result with a nil error is an authoritative "no".
	CanTransform(ctx context.Context, targetFrame, sourceFrame string, at time.Time, timeout time.Duration) (bool, error)

	// CanTransformFull reports whether LookupTransformFull would succeed.
	CanTransformFull(ctx context.Context, targetFrame string, targetTime time.Time, sourceFrame string, sourceTime time.Time, fixedFrame string, timeout time.Duration) (bool, error)
}

// UnimplementedSource serves every capability with a not-implemented error.
// Embed it in partial Source implementations so callers get a descriptive
// error for the capabilities you do not serve.
type UnimplementedSource struct{}

var _ Source = UnimplementedSource{}

func (UnimplementedSource) LookupTransform(context.Context, string, string, time.Time, time.Duration) (msg.TransformStamped, error) {
	return msg.TransformStamped{}, errors.NotImplemented("LookupTransform")
}

func (UnimplementedSource) LookupTransformFull(context.Context, string, time.Time, string, time.Time, string, time.Duration) (msg.TransformStamped, error) {
	return msg.TransformStamped{}, errors.NotImplemented("LookupTransformFull")
}

func (UnimplementedSource) CanTransform(context.Context, string, string, time.Time, time.Duration) (bool, error) {
	return false, errors.NotImplemented("CanTransform")
}

func (UnimplementedSource) CanTransformFull(context.Context, string, time.Time, string, time.Time, string, time.Duration) (bool, error) {
	return false, errors.NotImplemented("CanTransformFull")
}
