// Package geomsg wires the canonical message types into the transform and
// conversion machinery.
//
// Register installs, for each stamped message type, an apply function that
// moves it across frames, plus identity to-msg/from-msg entries so that
// conversion bridges from other representations can terminate on a message
// type. Typical setup:
//
//	reg := registry.New()
//	geomsg.Register(reg)
//
// The transform functions are also exported directly (TransformPoint,
// TransformPose, ...) for callers that already hold the transform and do
// not need the facade.
//
// Rotation math is quaternion-based. Transforms must carry a unit rotation
// quaternion; a zero or non-finite rotation is rejected rather than letting
// NaNs spread through the data. Covariances rotate as C' = R C Rᵀ with the
// block-diagonal 6x6 rotation built from the transform.
package geomsg
