package static

import (
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/geomsg"
	"github.com/heinemichael/geometry2/msg"
)

type sceneFile struct {
	Transforms []sceneTransform `yaml:"transforms"`
}

type sceneTransform struct {
	Frame       string          `yaml:"frame"`
	ChildFrame  string          `yaml:"child_frame"`
	Translation msg.Vector3     `yaml:"translation"`
	Rotation    *msg.Quaternion `yaml:"rotation"`
	RPY         []float64       `yaml:"rpy"`
}

func (st sceneTransform) build() (msg.TransformStamped, error) {
	rotation := msg.IdentityQuaternion()
	switch {
	case st.Rotation != nil && len(st.RPY) > 0:
		return msg.TransformStamped{}, errors.InvalidInput(errors.PhaseSource, "rotation and rpy are mutually exclusive")
	case st.Rotation != nil:
		rotation = *st.Rotation
	case len(st.RPY) > 0:
		if len(st.RPY) != 3 {
			return msg.TransformStamped{}, errors.InvalidInput(errors.PhaseSource, "rpy needs exactly three angles")
		}
		rotation = geomsg.QuaternionFromRPY(st.RPY[0], st.RPY[1], st.RPY[2])
	}

	return msg.TransformStamped{
		Header:       msg.Header{FrameID: st.Frame},
		ChildFrameID: st.ChildFrame,
		Transform: msg.Transform{
			Translation: st.Translation,
			Rotation:    rotation,
		},
	}, nil
}

// Load builds a source from a YAML scene. The document must declare at
// least one transform; entries with a declared zero rotation or missing
// frame names are rejected. A pair declared twice keeps the later entry.
func Load(r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSource, errors.KindInvalidData, err, "reading scene")
	}

	var scene sceneFile
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, errors.Wrap(errors.PhaseSource, errors.KindInvalidData, err, "parsing scene yaml")
	}
	if len(scene.Transforms) == 0 {
		return nil, errors.InvalidData(errors.PhaseSource, "scene declares no transforms")
	}

	src := New()
	for i, st := range scene.Transforms {
		transform, err := st.build()
		if err == nil {
			err = src.Set(transform)
		}
		if err != nil {
			return nil, errors.New(errors.PhaseSource, errors.KindInvalidData).
				Cause(err).
				Detail("scene transform %d is invalid", i).
				Build()
		}
	}

	Logger().Info("scene loaded", zap.Int("transforms", len(scene.Transforms)))
	return src, nil
}

// LoadFile builds a source from a YAML scene file.
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
