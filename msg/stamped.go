package msg

// TransformStamped is a rigid transform between two named frames at a point
// in time. It moves data expressed in ChildFrameID into the header's
// FrameID.
type TransformStamped struct {
	Header       `json:"header" yaml:"header"`
	ChildFrameID string    `json:"child_frame_id" yaml:"child_frame_id"`
	Transform    Transform `json:"transform" yaml:"transform"`
}

// PointStamped is a position with a frame/time header.
type PointStamped struct {
	Header `json:"header" yaml:"header"`
	Point  Point `json:"point" yaml:"point"`
}

// Vector3Stamped is a free vector with a frame/time header.
type Vector3Stamped struct {
	Header  `json:"header" yaml:"header"`
	Vector3 Vector3 `json:"vector3" yaml:"vector3"`
}

// PoseStamped is a pose with a frame/time header.
type PoseStamped struct {
	Header `json:"header" yaml:"header"`
	Pose   Pose `json:"pose" yaml:"pose"`
}

// PoseWithCovarianceStamped is a pose plus uncertainty with a frame/time
// header.
type PoseWithCovarianceStamped struct {
	Header `json:"header" yaml:"header"`
	Pose   PoseWithCovariance `json:"pose" yaml:"pose"`
}

// PointCloud is a set of positions sharing one frame/time header.
type PointCloud struct {
	Header `json:"header" yaml:"header"`
	Points []Point `json:"points" yaml:"points"`
}
