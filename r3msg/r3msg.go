package r3msg

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/registry"
)

// VecStamped is a position as an r3 vector with a frame/time header.
type VecStamped struct {
	msg.Header
	Vec r3.Vec
}

// PoseStamped is a rigid pose in r3 form. The zero Rotation is invalid;
// convert from a message or compose r3.NewRotation values.
type PoseStamped struct {
	msg.Header
	Translation r3.Vec
	Rotation    r3.Rotation
}

func rotationOf(q msg.Quaternion) r3.Rotation {
	return r3.Rotation(quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z})
}

func quaternionOf(r r3.Rotation) msg.Quaternion {
	n := quat.Number(r)
	return msg.Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

func checkRotation(q msg.Quaternion) error {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.IsNaN(n) || n < 1e-9 {
		return errors.InvalidData(errors.PhaseTransform, "transform rotation quaternion has zero or invalid norm")
	}
	return nil
}

// TransformVec moves a vector position into the transform's target frame.
func TransformVec(v VecStamped, tf msg.TransformStamped) (VecStamped, error) {
	if err := checkRotation(tf.Transform.Rotation); err != nil {
		return VecStamped{}, err
	}

	rot := rotationOf(tf.Transform.Rotation)
	t := tf.Transform.Translation
	out := r3.Add(rot.Rotate(v.Vec), r3.Vec{X: t.X, Y: t.Y, Z: t.Z})

	return VecStamped{Header: tf.Header, Vec: out}, nil
}

// TransformPose moves a pose into the transform's target frame.
func TransformPose(p PoseStamped, tf msg.TransformStamped) (PoseStamped, error) {
	if err := checkRotation(tf.Transform.Rotation); err != nil {
		return PoseStamped{}, err
	}

	rot := rotationOf(tf.Transform.Rotation)
	t := tf.Transform.Translation

	return PoseStamped{
		Header:      tf.Header,
		Translation: r3.Add(rot.Rotate(p.Translation), r3.Vec{X: t.X, Y: t.Y, Z: t.Z}),
		Rotation:    r3.Rotation(quat.Mul(quat.Number(rot), quat.Number(p.Rotation))),
	}, nil
}

// ToPointMsg converts to the canonical point message.
func ToPointMsg(v VecStamped) msg.PointStamped {
	return msg.PointStamped{
		Header: v.Header,
		Point:  msg.Point{X: v.Vec.X, Y: v.Vec.Y, Z: v.Vec.Z},
	}
}

// FromPointMsg converts from the canonical point message.
func FromPointMsg(p msg.PointStamped) VecStamped {
	return VecStamped{
		Header: p.Header,
		Vec:    r3.Vec{X: p.Point.X, Y: p.Point.Y, Z: p.Point.Z},
	}
}

// ToPoseMsg converts to the canonical pose message.
func ToPoseMsg(p PoseStamped) msg.PoseStamped {
	return msg.PoseStamped{
		Header: p.Header,
		Pose: msg.Pose{
			Position:    msg.Point{X: p.Translation.X, Y: p.Translation.Y, Z: p.Translation.Z},
			Orientation: quaternionOf(p.Rotation),
		},
	}
}

// FromPoseMsg converts from the canonical pose message.
func FromPoseMsg(p msg.PoseStamped) PoseStamped {
	return PoseStamped{
		Header:      p.Header,
		Translation: r3.Vec{X: p.Pose.Position.X, Y: p.Pose.Position.Y, Z: p.Pose.Position.Z},
		Rotation:    rotationOf(p.Pose.Orientation),
	}
}

// Register installs transform and conversion support for the r3 types on
// r. Both bridge halves and direct conversions are registered, so the
// direct entries win when converting to or from the message forms.
func Register(r *registry.Registry) {
	registry.RegisterApply[VecStamped](r, TransformVec)
	registry.RegisterApply[PoseStamped](r, TransformPose)

	registry.RegisterToMsg[VecStamped, msg.PointStamped](r, func(v VecStamped) (msg.PointStamped, error) {
		return ToPointMsg(v), nil
	})
	registry.RegisterFromMsg[VecStamped, msg.PointStamped](r, func(p msg.PointStamped) (VecStamped, error) {
		return FromPointMsg(p), nil
	})
	registry.RegisterToMsg[PoseStamped, msg.PoseStamped](r, func(p PoseStamped) (msg.PoseStamped, error) {
		return ToPoseMsg(p), nil
	})
	registry.RegisterFromMsg[PoseStamped, msg.PoseStamped](r, func(p msg.PoseStamped) (PoseStamped, error) {
		return FromPoseMsg(p), nil
	})

	registry.RegisterDirect[VecStamped, msg.PointStamped](r, func(v VecStamped) (msg.PointStamped, error) {
		return ToPointMsg(v), nil
	})
	registry.RegisterDirect[msg.PointStamped, VecStamped](r, func(p msg.PointStamped) (VecStamped, error) {
		return FromPointMsg(p), nil
	})
	registry.RegisterDirect[PoseStamped, msg.PoseStamped](r, func(p PoseStamped) (msg.PoseStamped, error) {
		return ToPoseMsg(p), nil
	})
	registry.RegisterDirect[msg.PoseStamped, PoseStamped](r, func(p msg.PoseStamped) (PoseStamped, error) {
		return FromPoseMsg(p), nil
	})
}
