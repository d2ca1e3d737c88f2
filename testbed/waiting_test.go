package testbed

import (
	"context"
	"testing"
	"time"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/tf"
)

func mapFromDrone(x float64) msg.TransformStamped {
	return msg.TransformStamped{
		Header:       msg.Header{FrameID: "map"},
		ChildFrameID: "drone",
		Transform: msg.Transform{
			Translation: msg.Vector3{X: x},
			Rotation:    msg.IdentityQuaternion(),
		},
	}
}

func TestWaiting_FacadeBlocksUntilPublished(t *testing.T) {
	src, buf := loadScene(t)
	ctx := context.Background()

	go func() {
		time.Sleep(20 * time.Millisecond)
		if err := src.Set(mapFromDrone(5)); err != nil {
			t.Errorf("set map<-drone: %v", err)
		}
	}()

	p := tf.Stamp(msg.PointStamped{Point: msg.Point{X: 1}}, "drone", time.Time{})
	got, err := tf.TransformAs[msg.PointStamped](ctx, buf, p, "map", 5*time.Second)
	if err != nil {
		t.Fatalf("transform after late publish: %v", err)
	}
	if !near(got.Point.X, 6) {
		t.Errorf("Point.X = %v, want 6", got.Point.X)
	}
}

func TestWaiting_FacadeTimesOut(t *testing.T) {
	_, buf := loadScene(t)

	p := tf.Stamp(msg.PointStamped{}, "drone", time.Time{})
	start := time.Now()
	_, err := buf.Transform(context.Background(), p, "map", 30*time.Millisecond)
	elapsed := time.Since(start)

	terr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error = %v, want *errors.Error", err)
	}
	if terr.Kind != errors.KindTimeout {
		t.Errorf("Kind = %v, want KindTimeout", terr.Kind)
	}
	if elapsed < 30*time.Millisecond {
		t.Errorf("returned after %v, before the timeout", elapsed)
	}
}

func TestWaiting_ContextCancelsFacadeLookup(t *testing.T) {
	_, buf := loadScene(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	p := tf.Stamp(msg.PointStamped{}, "drone", time.Time{})
	_, err := buf.Transform(ctx, p, "map", 5*time.Second)
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestWaiting_CanTransformFlipsAfterPublish(t *testing.T) {
	src, buf := loadScene(t)
	ctx := context.Background()

	ok, err := buf.CanTransform(ctx, "map", "drone", time.Time{}, 0)
	if err != nil {
		t.Fatalf("CanTransform before publish: %v", err)
	}
	if ok {
		t.Fatal("CanTransform = true before publish")
	}

	if err := src.Set(mapFromDrone(1)); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err = buf.CanTransform(ctx, "map", "drone", time.Time{}, 0)
	if err != nil {
		t.Fatalf("CanTransform after publish: %v", err)
	}
	if !ok {
		t.Error("CanTransform = false after publish")
	}
}

func TestWaiting_RepublishMovesFrame(t *testing.T) {
	src, buf := loadScene(t)
	ctx := context.Background()
	p := tf.Stamp(msg.PointStamped{}, "drone", time.Time{})

	for i, want := range []float64{1, 2, 3} {
		if err := src.Set(mapFromDrone(want)); err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
		got, err := tf.TransformAs[msg.PointStamped](ctx, buf, p, "map", 0)
		if err != nil {
			t.Fatalf("transform %d: %v", i, err)
		}
		if !near(got.Point.X, want) {
			t.Errorf("after republish %d: Point.X = %v, want %v", i, got.Point.X, want)
		}
	}
}
