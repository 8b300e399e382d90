package components

import (
	"math"

	"github.com/zeusync/scenegraph/internal/core/scene"
)

// Trigger is an axis-aligned gameplay volume. When something enters it the
// gameplay layer raises Event; the core only stores the geometry.
type Trigger struct {
	scene.BaseComponent

	Event   string
	Center  scene.Vec3
	Extents scene.Vec3 // half sizes
	Once    bool
}

func NewTrigger(event string, center, extents scene.Vec3) *Trigger {
	return &Trigger{Event: event, Center: center, Extents: extents}
}

func (t *Trigger) TypeTag() string { return TriggerTag }

func (t *Trigger) Family() scene.FamilySet {
	return scene.Families(scene.FamilyGameplay, scene.FamilyStage)
}

func (t *Trigger) Multiplicity() scene.Multiplicity { return scene.Multiple }

// Contains reports whether p lies inside the volume, borders included.
func (t *Trigger) Contains(p scene.Vec3) bool {
	return math.Abs(p.X-t.Center.X) <= t.Extents.X &&
		math.Abs(p.Y-t.Center.Y) <= t.Extents.Y &&
		math.Abs(p.Z-t.Center.Z) <= t.Extents.Z
}

func (t *Trigger) EncodeFields(f scene.Fields) {
	f["event"] = t.Event
	f["once"] = t.Once
	f.SetVec3("center", t.Center)
	f.SetVec3("extents", t.Extents)
}

func (t *Trigger) DecodeFields(f scene.Fields) error {
	if err := f.Text("event", &t.Event); err != nil {
		return err
	}
	if err := f.Bool("once", &t.Once); err != nil {
		return err
	}
	if err := f.Vec3("center", &t.Center); err != nil {
		return err
	}
	return f.Vec3("extents", &t.Extents)
}

func (t *Trigger) Clone() scene.Component {
	c := NewTrigger(t.Event, t.Center, t.Extents)
	c.Once = t.Once
	return c
}
