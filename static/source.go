package static

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/tf"
)

type framePair struct {
	target string
	source string
}

// Source stores time-invariant transforms keyed by exact frame pair.
// All methods are safe for concurrent use.
type Source struct {
	mu     sync.RWMutex
	byPair map[framePair]msg.TransformStamped
	wake   chan struct{}
}

var _ tf.Source = (*Source)(nil)

// New creates an empty source.
func New() *Source {
	return &Source{
		byPair: make(map[framePair]msg.TransformStamped),
		wake:   make(chan struct{}),
	}
}

// Set stores a transform under its (frame, child frame) pair, replacing
// any previous value, and wakes lookups waiting for the pair. Both frame
// names must be set and the rotation must have a usable norm.
func (s *Source) Set(transform msg.TransformStamped) error {
	if transform.FrameID == "" || transform.ChildFrameID == "" {
		return errors.InvalidInput(errors.PhaseSource, "transform needs both frame ids")
	}
	q := transform.Transform.Rotation
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.IsNaN(n) || n < 1e-9 {
		return errors.InvalidData(errors.PhaseSource, "transform rotation quaternion has zero or invalid norm")
	}

	s.mu.Lock()
	s.byPair[framePair{transform.FrameID, transform.ChildFrameID}] = transform
	wake := s.wake
	s.wake = make(chan struct{})
	s.mu.Unlock()

	// Broadcast: every waiter holding the old channel re-checks the store.
	close(wake)

	Logger().Debug("stored static transform",
		zap.String("frame", transform.FrameID),
		zap.String("child_frame", transform.ChildFrameID))
	return nil
}

// get returns the pair's transform if present, together with the wake
// channel that will close on the next Set. Reading both under one lock
// means a concurrent Set cannot slip between the check and the wait.
func (s *Source) get(target, source string) (msg.TransformStamped, bool, chan struct{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transform, ok := s.byPair[framePair{target, source}]
	return transform, ok, s.wake
}

// LookupTransform returns the stored transform for the exact pair. The
// time argument is not consulted; static transforms hold at every time.
// On a miss, a zero timeout fails immediately and a positive timeout waits
// for the pair to be published.
func (s *Source) LookupTransform(ctx context.Context, targetFrame, sourceFrame string, _ time.Time, timeout time.Duration) (msg.TransformStamped, error) {
	transform, ok, wake := s.get(targetFrame, sourceFrame)
	if ok {
		return transform, nil
	}
	if timeout <= 0 {
		return msg.TransformStamped{}, errors.FrameMissing(targetFrame, sourceFrame)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case <-wake:
		case <-deadline.C:
			return msg.TransformStamped{}, errors.Timeout(targetFrame, sourceFrame, timeout)
		case <-ctx.Done():
			return msg.TransformStamped{}, ctx.Err()
		}

		transform, ok, wake = s.get(targetFrame, sourceFrame)
		if ok {
			return transform, nil
		}
	}
}

// LookupTransformFull collapses to the plain pair lookup: a static
// transform holds at every time, so the target/source times and the fixed
// frame change nothing.
func (s *Source) LookupTransformFull(ctx context.Context, targetFrame string, _ time.Time, sourceFrame string, _ time.Time, _ string, timeout time.Duration) (msg.TransformStamped, error) {
	return s.LookupTransform(ctx, targetFrame, sourceFrame, time.Time{}, timeout)
}

// CanTransform reports whether the pair is stored, waiting up to timeout
// the same way LookupTransform does. An absent pair is an authoritative
// "no", not an error.
func (s *Source) CanTransform(ctx context.Context, targetFrame, sourceFrame string, at time.Time, timeout time.Duration) (bool, error) {
	_, err := s.LookupTransform(ctx, targetFrame, sourceFrame, at, timeout)
	if err == nil {
		return true, nil
	}
	if terr, ok := err.(*errors.Error); ok {
		if terr.Kind == errors.KindFrameMissing || terr.Kind == errors.KindTimeout {
			return false, nil
		}
	}
	return false, err
}

// CanTransformFull collapses to CanTransform.
func (s *Source) CanTransformFull(ctx context.Context, targetFrame string, _ time.Time, sourceFrame string, _ time.Time, _ string, timeout time.Duration) (bool, error) {
	return s.CanTransform(ctx, targetFrame, sourceFrame, time.Time{}, timeout)
}

// Frames returns every frame name appearing in the store, sorted and
// de-duplicated.
func (s *Source) Frames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, 2*len(s.byPair))
	for pair := range s.byPair {
		seen[pair.target] = struct{}{}
		seen[pair.source] = struct{}{}
	}

	frames := make([]string, 0, len(seen))
	for f := range seen {
		frames = append(frames, f)
	}
	sort.Strings(frames)
	return frames
}

// Transforms returns a snapshot of the stored transforms, sorted by frame
// then child frame.
func (s *Source) Transforms() []msg.TransformStamped {
	s.mu.RLock()
	transforms := make([]msg.TransformStamped, 0, len(s.byPair))
	for _, transform := range s.byPair {
		transforms = append(transforms, transform)
	}
	s.mu.RUnlock()

	sort.Slice(transforms, func(i, j int) bool {
		if transforms[i].FrameID != transforms[j].FrameID {
			return transforms[i].FrameID < transforms[j].FrameID
		}
		return transforms[i].ChildFrameID < transforms[j].ChildFrameID
	})
	return transforms
}
