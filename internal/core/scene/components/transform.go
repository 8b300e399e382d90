package components

import "github.com/zeusync/scenegraph/internal/core/scene"

// Transform places a node in space. One per node.
type Transform struct {
	scene.BaseComponent

	Position scene.Vec3
	Rotation scene.Vec3
	Scale    scene.Vec3
}

func NewTransform() *Transform {
	return &Transform{Scale: scene.Vec3{X: 1, Y: 1, Z: 1}}
}

func (t *Transform) TypeTag() string                  { return TransformTag }
func (t *Transform) Family() scene.FamilySet          { return scene.Families(scene.FamilySpatial) }
func (t *Transform) Multiplicity() scene.Multiplicity { return scene.Single }

func (t *Transform) EncodeFields(f scene.Fields) {
	f.SetVec3("position", t.Position)
	f.SetVec3("rotation", t.Rotation)
	f.SetVec3("scale", t.Scale)
}

func (t *Transform) DecodeFields(f scene.Fields) error {
	if err := f.Vec3("position", &t.Position); err != nil {
		return err
	}
	if err := f.Vec3("rotation", &t.Rotation); err != nil {
		return err
	}
	return f.Vec3("scale", &t.Scale)
}

func (t *Transform) Clone() scene.Component {
	return &Transform{Position: t.Position, Rotation: t.Rotation, Scale: t.Scale}
}
