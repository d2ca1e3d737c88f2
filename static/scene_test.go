package static

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/heinemichael/geometry2/errors"
)

const goodScene = `
transforms:
  - frame: map
    child_frame: odom
    translation: {x: 1.0, y: 2.0, z: 0.0}
    rpy: [0, 0, 1.5707963267948966]
  - frame: odom
    child_frame: base
    rotation: {x: 0, y: 0, z: 0, w: 1}
  - frame: base
    child_frame: laser
    translation: {x: 0.2}
`

func TestLoadScene(t *testing.T) {
	s, err := Load(strings.NewReader(goodScene))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := s.LookupTransform(context.Background(), "map", "odom", time.Time{}, 0)
	if err != nil {
		t.Fatalf("LookupTransform: %v", err)
	}
	if got.Transform.Translation.X != 1 || got.Transform.Translation.Y != 2 {
		t.Errorf("translation = %+v, want (1, 2, 0)", got.Transform.Translation)
	}

	// rpy [0, 0, π/2] is a quarter turn about Z.
	s2 := math.Sqrt2 / 2
	q := got.Transform.Rotation
	if math.Abs(q.Z-s2) > 1e-9 || math.Abs(q.W-s2) > 1e-9 {
		t.Errorf("rotation = %+v, want (0, 0, %v, %v)", q, s2, s2)
	}

	// An entry with neither rotation nor rpy defaults to identity.
	got, err = s.LookupTransform(context.Background(), "base", "laser", time.Time{}, 0)
	if err != nil {
		t.Fatalf("LookupTransform: %v", err)
	}
	if got.Transform.Rotation.W != 1 {
		t.Errorf("rotation = %+v, want identity", got.Transform.Rotation)
	}

	want := []string{"base", "laser", "map", "odom"}
	frames := s.Frames()
	if len(frames) != len(want) {
		t.Fatalf("Frames = %v, want %v", frames, want)
	}
}

func TestLoadSceneRejectsZeroRotation(t *testing.T) {
	const scene = `
transforms:
  - frame: map
    child_frame: base
    rotation: {x: 0, y: 0, z: 0, w: 0}
`
	_, err := Load(strings.NewReader(scene))
	if err == nil {
		t.Fatal("expected an invalid-data error")
	}
	terr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if terr.Kind != errors.KindInvalidData {
		t.Errorf("Kind = %q, want %q", terr.Kind, errors.KindInvalidData)
	}
	if !strings.Contains(err.Error(), "transform 0") {
		t.Errorf("error %q does not name the offending entry", err)
	}
}

func TestLoadSceneRejectsRotationAndRPY(t *testing.T) {
	const scene = `
transforms:
  - frame: map
    child_frame: base
    rotation: {x: 0, y: 0, z: 0, w: 1}
    rpy: [0, 0, 1]
`
	if _, err := Load(strings.NewReader(scene)); err == nil {
		t.Fatal("expected an error for rotation plus rpy")
	}
}

func TestLoadSceneRejectsShortRPY(t *testing.T) {
	const scene = `
transforms:
  - frame: map
    child_frame: base
    rpy: [0, 0]
`
	if _, err := Load(strings.NewReader(scene)); err == nil {
		t.Fatal("expected an error for a two-element rpy")
	}
}

func TestLoadSceneRejectsMissingFrames(t *testing.T) {
	const scene = `
transforms:
  - child_frame: base
`
	if _, err := Load(strings.NewReader(scene)); err == nil {
		t.Fatal("expected an error for a missing frame name")
	}
}

func TestLoadSceneRejectsBadYAML(t *testing.T) {
	_, err := Load(strings.NewReader("transforms: ["))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	terr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if terr.Unwrap() == nil {
		t.Error("parse error lost its cause")
	}
}

func TestLoadSceneRejectsEmpty(t *testing.T) {
	if _, err := Load(strings.NewReader("transforms: []")); err == nil {
		t.Fatal("expected an error for an empty scene")
	}
}

func TestLoadSceneDuplicatePairLastWins(t *testing.T) {
	const scene = `
transforms:
  - frame: map
    child_frame: base
    translation: {x: 1}
  - frame: map
    child_frame: base
    translation: {x: 2}
`
	s, err := Load(strings.NewReader(scene))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := s.LookupTransform(context.Background(), "map", "base", time.Time{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Transform.Translation.X != 2 {
		t.Errorf("Translation.X = %v, want the later entry's 2", got.Transform.Translation.X)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(goodScene), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(s.Frames()) == 0 {
		t.Error("loaded source has no frames")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
