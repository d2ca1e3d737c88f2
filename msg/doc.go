// Package msg defines the canonical geometric message types.
//
// These types are the neutral, serializable representations used as the
// conversion bridge between otherwise-unrelated concrete types: every
// registered representation knows how to turn itself into one of these and
// back. They are plain value structs with stable json/yaml field names and
// no behavior beyond header plumbing.
//
// # Headers
//
// A stamped type embeds Header and therefore satisfies Stamped (read access)
// by value and HeaderSetter (write access) through a pointer:
//
//	p := msg.PointStamped{
//	    Header: msg.Header{FrameID: "laser", Stamp: t},
//	    Point:  msg.Point{X: 1},
//	}
//	p.GetHeader().FrameID // "laser"
//
// A zero Stamp conventionally means "the latest available data"; transform
// sources interpret it that way.
//
// # Conventions
//
// Angles are expressed as unit quaternions (x, y, z, w). Covariance is a 6x6
// row-major matrix over (x, y, z, rotation about X, Y, Z). Frames follow the
// usual convention: a TransformStamped with FrameID "map" and ChildFrameID
// "laser" moves data expressed in "laser" into "map".
package msg
