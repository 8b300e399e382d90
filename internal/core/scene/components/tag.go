package components

import "github.com/zeusync/scenegraph/internal/core/scene"

// Tag is a free-form label. A node may carry any number of them.
type Tag struct {
	scene.BaseComponent

	Label string
}

func NewTag(label string) *Tag { return &Tag{Label: label} }

func (t *Tag) TypeTag() string { return TagTag }

func (t *Tag) Family() scene.FamilySet {
	return scene.Families(scene.FamilySpatial, scene.FamilyGameplay, scene.FamilyWorld, scene.FamilyStage)
}

func (t *Tag) Multiplicity() scene.Multiplicity { return scene.Multiple }

func (t *Tag) EncodeFields(f scene.Fields) { f["label"] = t.Label }

func (t *Tag) DecodeFields(f scene.Fields) error { return f.Text("label", &t.Label) }

func (t *Tag) Clone() scene.Component { return NewTag(t.Label) }
