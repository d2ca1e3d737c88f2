// Package r3msg provides stamped types over gonum's spatial/r3 vectors and
// rotations, for code that does its geometry in that representation.
//
// Register wires the types into a registry: native apply functions, both
// halves of the canonical bridge (VecStamped pairs with msg.PointStamped,
// PoseStamped with msg.PoseStamped), and direct conversions in both
// directions. With geomsg registered alongside, values flow freely between
// the two families:
//
//	reg := registry.New()
//	geomsg.Register(reg)
//	r3msg.Register(reg)
//
//	v, err := convert.To[r3msg.VecStamped](reg, pointStamped)
package r3msg
