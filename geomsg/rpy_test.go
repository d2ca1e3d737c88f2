package geomsg

import (
	"math"
	"testing"

	"github.com/heinemichael/geometry2/msg"
)

func TestRPYIdentity(t *testing.T) {
	roll, pitch, yaw := RPY(msg.IdentityQuaternion())
	if !near(roll, 0) || !near(pitch, 0) || !near(yaw, 0) {
		t.Errorf("RPY(identity) = (%v, %v, %v), want zeros", roll, pitch, yaw)
	}
}

func TestQuaternionFromRPYQuarterTurn(t *testing.T) {
	q := QuaternionFromRPY(0, 0, math.Pi/2)

	s := math.Sqrt2 / 2
	if !near(q.X, 0) || !near(q.Y, 0) || !near(q.Z, s) || !near(q.W, s) {
		t.Errorf("q = %+v, want (0, 0, %v, %v)", q, s, s)
	}
}

func TestRPYRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		roll, pitch, yaw float64
	}{
		{"zero", 0, 0, 0},
		{"yaw only", 0, 0, 1.2},
		{"roll only", 0.3, 0, 0},
		{"pitch only", 0, -0.4, 0},
		{"combined", 0.3, -0.4, 1.2},
		{"negative", -1.0, 0.7, -2.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuaternionFromRPY(tt.roll, tt.pitch, tt.yaw)

			n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
			if !near(n, 1) {
				t.Errorf("norm = %v, want 1", n)
			}

			roll, pitch, yaw := RPY(q)
			if !near(roll, tt.roll) || !near(pitch, tt.pitch) || !near(yaw, tt.yaw) {
				t.Errorf("round trip = (%v, %v, %v), want (%v, %v, %v)",
					roll, pitch, yaw, tt.roll, tt.pitch, tt.yaw)
			}
		})
	}
}

func TestRPYPitchSingularity(t *testing.T) {
	q := QuaternionFromRPY(0, math.Pi/2, 0)

	_, pitch, _ := RPY(q)
	if !near(pitch, math.Pi/2) {
		t.Errorf("pitch = %v, want π/2", pitch)
	}
}
