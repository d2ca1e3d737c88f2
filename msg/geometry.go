package msg

// Vector3 is a free vector: a direction and magnitude with no fixed origin.
// Rotations apply to it, translations do not.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Point is a position in space. Unlike Vector3 it is bound to an origin, so
// a transform both rotates and translates it.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Quaternion is an orientation as a unit quaternion (x, y, z, w).
// The zero value is invalid; use IdentityQuaternion for "no rotation".
type Quaternion struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// IdentityQuaternion returns the unit quaternion representing no rotation.
func IdentityQuaternion() Quaternion { return Quaternion{W: 1} }

// Pose is a position and orientation pair.
type Pose struct {
	Position    Point      `json:"position" yaml:"position"`
	Orientation Quaternion `json:"orientation" yaml:"orientation"`
}

// PoseWithCovariance is a pose with a 6x6 row-major covariance matrix over
// (x, y, z, rotation about X, rotation about Y, rotation about Z).
type PoseWithCovariance struct {
	Pose       Pose        `json:"pose" yaml:"pose"`
	Covariance [36]float64 `json:"covariance" yaml:"covariance,flow"`
}

// Transform is a rigid transform: rotate by Rotation, then offset by
// Translation. The zero value is invalid; use IdentityTransform.
type Transform struct {
	Translation Vector3    `json:"translation" yaml:"translation"`
	Rotation    Quaternion `json:"rotation" yaml:"rotation"`
}

// IdentityTransform returns the transform that leaves data unchanged.
func IdentityTransform() Transform {
	return Transform{Rotation: IdentityQuaternion()}
}
