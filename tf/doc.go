// Package tf provides the frame-transform facade.
//
// A Buffer binds a transform Source (the authority on frame relationships)
// to a registry of per-type apply functions. Given any stamped value whose
// type is registered, it looks up the transform from the value's own frame
// into a target frame and applies it:
//
//	buf := tf.New(source)
//	out, err := buf.Transform(ctx, scan, "map", time.Second)
//
// The facade adds no semantics of its own: it never retries, caches,
// chains, or interpolates transforms, and errors from the Source are
// returned to the caller unchanged. What it guarantees is the order of
// operations: the apply function is resolved first, so an unregistered
// type fails before the Source is ever consulted.
//
// # Sources
//
// Source is the complete capability set a transform authority must serve:
// plain and fixed-frame lookups, and their query-only Can variants. Partial
// implementations embed UnimplementedSource so the remaining methods report
// that the capability is missing rather than breaking the build:
//
//	type replayer struct {
//	    tf.UnimplementedSource
//	}
//
// Timeouts travel as an explicit parameter next to the context, and a zero
// timeout means a single non-blocking check. Both are contracts for the
// Source to honor; the facade only forwards them.
package tf
