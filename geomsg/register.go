package geomsg

import (
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/registry"
)

// Register installs transform and conversion support for the message types
// on r. Safe to call more than once; later registrations replace earlier
// ones.
func Register(r *registry.Registry) {
	registry.RegisterApply[msg.PointStamped](r, TransformPoint)
	registry.RegisterApply[msg.Vector3Stamped](r, TransformVector3)
	registry.RegisterApply[msg.PoseStamped](r, TransformPose)
	registry.RegisterApply[msg.PoseWithCovarianceStamped](r, TransformPoseWithCovariance)
	registry.RegisterApply[msg.PointCloud](r, TransformCloud)

	// Message types are their own canonical form. The identity entries let
	// bridges from other representations start or end on a message type.
	identity[msg.PointStamped](r)
	identity[msg.Vector3Stamped](r)
	identity[msg.PoseStamped](r)
	identity[msg.PoseWithCovarianceStamped](r)
	identity[msg.PointCloud](r)
}

func identity[T any](r *registry.Registry) {
	registry.RegisterToMsg[T, T](r, func(v T) (T, error) { return v, nil })
	registry.RegisterFromMsg[T, T](r, func(v T) (T, error) { return v, nil })
}
