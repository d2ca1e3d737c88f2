// Package static provides a transform source backed by a fixed set of
// transforms, for tests, tools, and rigs whose frames do not move.
//
// Transforms are stored per exact (frame, child frame) pair and are
// time-invariant: a lookup at any time returns the stored value, and the
// advanced fixed-frame lookup collapses to the plain pair lookup. The
// source does not chain transforms; if only map->odom and odom->base are
// stored, map->base is not answerable.
//
// Lookups with a positive timeout block until the pair is published, the
// context is done, or the timeout elapses, so a consumer can start before
// its producer:
//
//	src := static.New()
//	go publisher(src)
//	tf, err := src.LookupTransform(ctx, "map", "base", time.Time{}, time.Second)
//
// A zero timeout checks exactly once.
//
// Scenes can be declared in YAML and loaded with Load or LoadFile:
//
//	transforms:
//	  - frame: map
//	    child_frame: odom
//	    translation: {x: 1.0, y: 0.0, z: 0.0}
//	    rpy: [0, 0, 1.5708]
//	  - frame: odom
//	    child_frame: base
//	    rotation: {x: 0, y: 0, z: 0, w: 1}
//
// Each entry gives either a rotation quaternion or rpy angles in radians;
// omitting both means identity.
package static
