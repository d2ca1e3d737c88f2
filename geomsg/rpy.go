package geomsg

import (
	"math"

	"github.com/heinemichael/geometry2/msg"
)

// RPY extracts fixed-axis roll, pitch, yaw angles (radians) from a unit
// quaternion, ZYX convention. At the pitch singularity (|pitch| = π/2) the
// roll/yaw split is not unique; the returned pair is one valid choice.
func RPY(q msg.Quaternion) (roll, pitch, yaw float64) {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	switch {
	case sinp >= 1:
		pitch = math.Pi / 2
	case sinp <= -1:
		pitch = -math.Pi / 2
	default:
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw = math.Atan2(sinyCosp, cosyCosp)

	return roll, pitch, yaw
}

// QuaternionFromRPY builds the unit quaternion for fixed-axis roll, pitch,
// yaw angles (radians), ZYX convention.
func QuaternionFromRPY(roll, pitch, yaw float64) msg.Quaternion {
	cr, sr := math.Cos(roll/2), math.Sin(roll/2)
	cp, sp := math.Cos(pitch/2), math.Sin(pitch/2)
	cy, sy := math.Cos(yaw/2), math.Sin(yaw/2)

	return msg.Quaternion{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}
