package geomsg

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
)

func toQuat(q msg.Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func fromQuat(n quat.Number) msg.Quaternion {
	return msg.Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// rotate applies the unit quaternion q to the vector (x, y, z) by the
// quaternion sandwich q v q*.
func rotate(q msg.Quaternion, x, y, z float64) (float64, float64, float64) {
	r := toQuat(q)
	v := quat.Number{Imag: x, Jmag: y, Kmag: z}
	out := quat.Mul(quat.Mul(r, v), quat.Conj(r))
	return out.Imag, out.Jmag, out.Kmag
}

func checkRotation(q msg.Quaternion) error {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.IsNaN(n) || n < 1e-9 {
		return errors.InvalidData(errors.PhaseTransform, "transform rotation quaternion has zero or invalid norm")
	}
	return nil
}

// TransformPoint moves a position into the transform's target frame:
// rotate, then translate. The result carries the transform's header.
func TransformPoint(p msg.PointStamped, tf msg.TransformStamped) (msg.PointStamped, error) {
	if err := checkRotation(tf.Transform.Rotation); err != nil {
		return msg.PointStamped{}, err
	}

	x, y, z := rotate(tf.Transform.Rotation, p.Point.X, p.Point.Y, p.Point.Z)
	t := tf.Transform.Translation
	return msg.PointStamped{
		Header: tf.Header,
		Point:  msg.Point{X: x + t.X, Y: y + t.Y, Z: z + t.Z},
	}, nil
}

// TransformVector3 moves a free vector into the transform's target frame.
// Only the rotation applies; a direction has no origin to translate.
func TransformVector3(v msg.Vector3Stamped, tf msg.TransformStamped) (msg.Vector3Stamped, error) {
	if err := checkRotation(tf.Transform.Rotation); err != nil {
		return msg.Vector3Stamped{}, err
	}

	x, y, z := rotate(tf.Transform.Rotation, v.Vector3.X, v.Vector3.Y, v.Vector3.Z)
	return msg.Vector3Stamped{
		Header:  tf.Header,
		Vector3: msg.Vector3{X: x, Y: y, Z: z},
	}, nil
}

// TransformPose moves a pose into the transform's target frame: the
// position rotates and translates, the orientation composes with the
// transform's rotation.
func TransformPose(p msg.PoseStamped, tf msg.TransformStamped) (msg.PoseStamped, error) {
	if err := checkRotation(tf.Transform.Rotation); err != nil {
		return msg.PoseStamped{}, err
	}

	x, y, z := rotate(tf.Transform.Rotation, p.Pose.Position.X, p.Pose.Position.Y, p.Pose.Position.Z)
	t := tf.Transform.Translation
	orientation := fromQuat(quat.Mul(toQuat(tf.Transform.Rotation), toQuat(p.Pose.Orientation)))

	return msg.PoseStamped{
		Header: tf.Header,
		Pose: msg.Pose{
			Position:    msg.Point{X: x + t.X, Y: y + t.Y, Z: z + t.Z},
			Orientation: orientation,
		},
	}, nil
}

// TransformPoseWithCovariance moves a pose and its uncertainty into the
// transform's target frame. The covariance rotates as C' = R C Rᵀ with R
// the block-diagonal 6x6 rotation; translation does not change covariance.
func TransformPoseWithCovariance(p msg.PoseWithCovarianceStamped, tf msg.TransformStamped) (msg.PoseWithCovarianceStamped, error) {
	pose, err := TransformPose(msg.PoseStamped{Header: p.Header, Pose: p.Pose.Pose}, tf)
	if err != nil {
		return msg.PoseWithCovarianceStamped{}, err
	}

	return msg.PoseWithCovarianceStamped{
		Header: pose.Header,
		Pose: msg.PoseWithCovariance{
			Pose:       pose.Pose,
			Covariance: rotateCovariance(p.Pose.Covariance, tf.Transform.Rotation),
		},
	}, nil
}

// TransformCloud moves every point of a cloud into the transform's target
// frame. The input cloud is not modified.
func TransformCloud(c msg.PointCloud, tf msg.TransformStamped) (msg.PointCloud, error) {
	if err := checkRotation(tf.Transform.Rotation); err != nil {
		return msg.PointCloud{}, err
	}

	t := tf.Transform.Translation
	out := msg.PointCloud{Header: tf.Header}
	if c.Points != nil {
		out.Points = make([]msg.Point, len(c.Points))
		for i, p := range c.Points {
			x, y, z := rotate(tf.Transform.Rotation, p.X, p.Y, p.Z)
			out.Points[i] = msg.Point{X: x + t.X, Y: y + t.Y, Z: z + t.Z}
		}
	}
	return out, nil
}

// rotationMatrix builds the 3x3 rotation matrix for a unit quaternion.
func rotationMatrix(q msg.Quaternion) *mat.Dense {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	})
}

func rotateCovariance(cov [36]float64, q msg.Quaternion) [36]float64 {
	r := rotationMatrix(q)

	r6 := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := r.At(i, j)
			r6.Set(i, j, v)
			r6.Set(i+3, j+3, v)
		}
	}

	c := mat.NewDense(6, 6, cov[:])
	var rc, out mat.Dense
	rc.Mul(r6, c)
	out.Mul(&rc, r6.T())

	var res [36]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			res[i*6+j] = out.At(i, j)
		}
	}
	return res
}
