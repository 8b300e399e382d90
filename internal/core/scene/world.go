package scene

import (
	"github.com/zeusync/scenegraph/internal/core/events/bus"
	"github.com/zeusync/scenegraph/internal/core/observability/log"
)

// WorldTag is the type tag of World.
const WorldTag = "world"

// World record field keys.
const (
	FieldActiveStage   = "active_stage"
	FieldLoadPositions = "load_positions"
	FieldLoadDistance  = "load_distance"
)

// EventActiveStageChanged is published on the World's bus whenever the stored
// active stage selection changes, including when the active stage gets a new
// id through Copy or RegenerateID. Enabling or disabling a stage does not
// publish; ActiveStage re-resolves on every read. The event data is an
// ActiveStageChange.
const EventActiveStageChanged = "world.active_stage_changed"

// ActiveStageChange is the payload of EventActiveStageChanged. Empty ids mean
// "no stage", i.e. the World itself is the active scene root.
type ActiveStageChange struct {
	World    *World
	Previous string
	Current  string
}

// World is the top-level node. It partitions its content into Stage children
// and keeps one of them active. LoadPositions and LoadDistance are opaque
// payload for an external streaming collaborator.
//
// The active stage is held by id and resolved against the current children on
// every read, so reordering or removing children can never leave it dangling.
type World struct {
	Entity

	LoadPositions []Vec3
	LoadDistance  float64

	activeStageID string
	bus           bus.EventBus
}

func NewWorld(name string) *World {
	w := &World{}
	w.Init(w, name)
	return w
}

func (w *World) AsWorld() *World { return w }

func (w *World) TypeTag() string { return WorldTag }

func (w *World) ComponentFamily() FamilySet {
	return Families(FamilyWorld)
}

// SetEventBus installs the bus active stage changes are published on. Nil disables publishing.
func (w *World) SetEventBus(b bus.EventBus) { w.bus = b }

// ActiveStage returns the active Stage child, or the World itself when no
// enabled Stage child is selected.
func (w *World) ActiveStage() Node {
	if n := w.activeStageNode(); n != nil {
		return n
	}
	return w
}

// ActiveStageID returns the id of the resolved active stage, or "".
func (w *World) ActiveStageID() string {
	if n := w.activeStageNode(); n != nil {
		return n.Base().id
	}
	return ""
}

// SetActiveStage selects stage when it is an enabled Stage child of w and
// clears the selection otherwise. It reports whether stage became active.
func (w *World) SetActiveStage(stage Node) bool {
	if stage == nil || !w.isSelectable(stage) {
		w.setActive("")
		return false
	}
	w.setActive(stage.Base().id)
	return true
}

// Stages returns the Stage children in child order.
func (w *World) Stages() []Node {
	var out []Node
	for _, c := range w.children {
		if _, ok := asStage(c); ok {
			out = append(out, c)
		}
	}
	return out
}

// StageAt returns the first enabled Stage child whose range contains progress.
func (w *World) StageAt(progress float64) (Node, bool) {
	for _, c := range w.children {
		s, ok := asStage(c)
		if ok && s.enabled && s.Contains(progress) {
			return c, true
		}
	}
	return nil, false
}

// ChildrenAdded selects the first enabled Stage child when nothing is active
// and the batch brought in at least one Stage.
func (w *World) ChildrenAdded(added []Node) {
	if w.activeStageNode() != nil {
		return
	}
	brought := false
	for _, n := range added {
		if _, ok := asStage(n); ok {
			brought = true
			break
		}
	}
	if !brought {
		return
	}
	if first := w.firstSelectable(); first != nil {
		w.setActive(first.Base().id)
	}
}

// childIDChanged keeps the selection on a stage whose id was regenerated.
func (w *World) childIDChanged(previous, current string) {
	if previous != "" && previous == w.activeStageID {
		w.setActive(current)
	}
}

// ChildRemoved clears the selection when the active stage leaves the World.
func (w *World) ChildRemoved(child Node) {
	if w.activeStageID != "" && child.Base().id == w.activeStageID {
		w.setActive("")
	}
}

func (w *World) Encode() Record {
	rec := w.Entity.Encode()
	rec.Fields[FieldActiveStage] = w.ActiveStageID()
	rec.Fields.SetVec3List(FieldLoadPositions, w.LoadPositions)
	rec.Fields[FieldLoadDistance] = w.LoadDistance
	return rec
}

// Decode restores the base node and stages first, then overlays the world
// fields. A persisted active stage that does not resolve leaves the selection
// cleared.
func (w *World) Decode(d *Decoder, rec Record) error {
	if err := w.Entity.Decode(d, rec); err != nil {
		return err
	}
	f := rec.Fields
	if err := f.Vec3List(FieldLoadPositions, &w.LoadPositions); err != nil {
		return err
	}
	if err := f.Float(FieldLoadDistance, &w.LoadDistance); err != nil {
		return err
	}
	if !f.Has(FieldActiveStage) {
		return nil
	}
	var persisted string
	if err := f.Text(FieldActiveStage, &persisted); err != nil {
		return err
	}
	if persisted == "" {
		w.setActive("")
		return nil
	}
	id, ok := d.ResolveID(persisted)
	if !ok {
		id = persisted
	}
	w.SetActiveStage(w.childByID(id))
	return nil
}

// Copy publishes at most one EventActiveStageChanged, from the selection held
// before the copy to the one held after it.
func (w *World) Copy(src Node, recursive bool, opts ...CopyOption) Node {
	b, previous := w.bus, w.activeStageID
	w.bus = nil
	w.Entity.copyFrom(src, recursive, opts)
	if other, ok := asWorld(src); ok {
		w.LoadPositions = append([]Vec3(nil), other.LoadPositions...)
		w.LoadDistance = other.LoadDistance
		if recursive {
			// children were cloned in order, so the active stage keeps its index
			idx := other.IndexOf(other.activeStageNode())
			w.SetActiveStage(w.ChildAt(idx))
		}
	}
	w.bus = b
	if current := w.activeStageID; current != previous {
		w.activeStageID = previous
		w.setActive(current)
	}
	return w
}

func (w *World) Clone(recursive bool, opts ...CopyOption) Node {
	return NewWorld("").Copy(w, recursive, opts...)
}

func (w *World) activeStageNode() Node {
	if w.activeStageID == "" {
		return nil
	}
	n := w.childByID(w.activeStageID)
	if n == nil || !w.isSelectable(n) {
		return nil
	}
	return n
}

func (w *World) isSelectable(n Node) bool {
	s, ok := asStage(n)
	return ok && s.enabled && s.parent == &w.Entity
}

func (w *World) firstSelectable() Node {
	for _, c := range w.children {
		if w.isSelectable(c) {
			return c
		}
	}
	return nil
}

func (w *World) childByID(id string) Node {
	for _, c := range w.children {
		if c.Base().id == id {
			return c
		}
	}
	return nil
}

func (w *World) setActive(id string) {
	previous := w.activeStageID
	w.activeStageID = id
	if previous == id || w.bus == nil {
		return
	}
	change := ActiveStageChange{World: w, Previous: previous, Current: id}
	if err := w.bus.Publish(bus.NewEvent(EventActiveStageChanged, w.id, change)); err != nil {
		log.Provide().Warn("active stage handler failed",
			log.String("world", w.id),
			log.String("stage", id),
			log.Error(err))
	}
}

func asWorld(n Node) (*World, bool) {
	wn, ok := n.(interface{ AsWorld() *World })
	if !ok {
		return nil, false
	}
	return wn.AsWorld(), true
}
