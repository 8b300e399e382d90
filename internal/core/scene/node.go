package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// EntityTag is the type tag of the plain Entity node.
const EntityTag = "entity"

// Node is the polymorphic handle of every scene-graph element.
//
// Variants embed Entity, call Init with themselves as self, and override the
// methods below that concern them. Encode, Decode, Copy and Clone of a variant
// must call the embedded parent's version first and then handle their own
// fields; Entity reaches the variant's overrides through the self handle.
type Node interface {
	// Base returns the shared node state.
	Base() *Entity
	TypeTag() string
	// ComponentFamily lists the component families this variant accepts.
	ComponentFamily() FamilySet

	Encode() Record
	Decode(d *Decoder, rec Record) error
	// Copy overwrites the receiver with src and returns the receiver.
	Copy(src Node, recursive bool, opts ...CopyOption) Node
	// Clone returns a new node of the receiver's concrete type copied from it.
	Clone(recursive bool, opts ...CopyOption) Node

	// ChildrenAdded runs after AddChildren attached at least one node.
	ChildrenAdded(added []Node)
	// ChildRemoved runs after a child was detached, before it is disposed.
	ChildRemoved(child Node)
}

// Entity is the base node. It owns its children and components; parent is a
// non-owning back reference that is only used for ancestor queries.
//
// Entity is not safe for concurrent use.
type Entity struct {
	self Node

	id      string
	name    string
	enabled bool
	locked  bool

	parent   *Entity
	children []Node

	components     map[string][]Component
	componentOrder []string

	disposed bool
}

// NewID returns a fresh globally unique node id.
func NewID() string {
	return uuid.NewString()
}

// NewEntity creates a plain node that accepts no components.
func NewEntity(name string) *Entity {
	e := &Entity{}
	e.Init(e, name)
	return e
}

// Init prepares the embedded Entity of a variant; self is the outer node.
func (e *Entity) Init(self Node, name string) {
	e.self = self
	e.id = NewID()
	e.name = name
	e.enabled = true
	e.components = make(map[string][]Component)
}

func (e *Entity) node() Node {
	if e.self == nil {
		return e
	}
	return e.self
}

func (e *Entity) Base() *Entity { return e }

func (e *Entity) TypeTag() string { return EntityTag }

// ComponentFamily of the plain Entity is empty.
func (e *Entity) ComponentFamily() FamilySet { return nil }

func (e *Entity) ChildrenAdded([]Node) {}

func (e *Entity) ChildRemoved(Node) {}

func (e *Entity) Clone(recursive bool, opts ...CopyOption) Node {
	return NewEntity("").Copy(e.node(), recursive, opts...)
}

// Self returns the outermost node this Entity is embedded in.
func (e *Entity) Self() Node { return e.node() }

func (e *Entity) ID() string { return e.id }

// RegenerateID assigns a fresh id to this node only.
func (e *Entity) RegenerateID() string {
	e.setID(NewID())
	return e.id
}

// childIDTracker is implemented by nodes that keep references to children by id.
type childIDTracker interface {
	childIDChanged(previous, current string)
}

func (e *Entity) setID(id string) {
	previous := e.id
	e.id = id
	if e.parent == nil || previous == id {
		return
	}
	if t, ok := e.parent.node().(childIDTracker); ok {
		t.childIDChanged(previous, id)
	}
}

func (e *Entity) Name() string        { return e.name }
func (e *Entity) SetName(name string) { e.name = name }
func (e *Entity) Enabled() bool       { return e.enabled }
func (e *Entity) SetEnabled(v bool)   { e.enabled = v }

// Locked marks a node as protected from deletion. The flag is advisory.
func (e *Entity) Locked() bool     { return e.locked }
func (e *Entity) SetLocked(v bool) { e.locked = v }

func (e *Entity) IsDisposed() bool { return e.disposed }

// Parent returns the attached parent or nil.
func (e *Entity) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent.node()
}

// Children returns the child list. The returned slice must not be mutated.
func (e *Entity) Children() []Node { return e.children }

func (e *Entity) NumChildren() int { return len(e.children) }

// ChildAt returns the child at index, or nil when out of range.
func (e *Entity) ChildAt(index int) Node {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// IndexOf returns the position of n among the children, or -1.
func (e *Entity) IndexOf(n Node) int {
	if n == nil {
		return -1
	}
	nb := n.Base()
	for i, c := range e.children {
		if c.Base() == nb {
			return i
		}
	}
	return -1
}

// Root returns the top of the tree this node is attached to.
func (e *Entity) Root() Node {
	return e.rootBase().node()
}

// IsAncestorOf reports whether this node is a strict ancestor of n.
func (e *Entity) IsAncestorOf(n Node) bool {
	if n == nil {
		return false
	}
	for p := n.Base().parent; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}

// AddChildren attaches every node in order. A node already attached elsewhere is
// moved; a node already under e is moved to the end.
//
// Each node is checked on its own: nil, disposed, cycle-forming (the node is e
// or one of e's ancestors) and id-colliding nodes are rejected and left
// untouched while the others are attached. The returned error joins one entry
// per rejected node (*CycleError, *DuplicateIDError, ErrNilNode, ErrDisposed).
func (e *Entity) AddChildren(nodes ...Node) error {
	if e.disposed {
		return ErrDisposed
	}
	var errs []error
	added := make([]Node, 0, len(nodes))
	for i, n := range nodes {
		if n == nil {
			errs = append(errs, fmt.Errorf("%w: argument %d", ErrNilNode, i))
			continue
		}
		if err := e.attach(n); err != nil {
			errs = append(errs, err)
			continue
		}
		added = append(added, n)
	}
	if len(added) > 0 {
		e.node().ChildrenAdded(added)
	}
	return errors.Join(errs...)
}

func (e *Entity) attach(n Node) error {
	c := n.Base()
	if c.disposed {
		return fmt.Errorf("%w: %s", ErrDisposed, describe(n))
	}
	for p := e; p != nil; p = p.parent {
		if p == c {
			return &CycleError{Parent: e.node(), Child: n}
		}
	}
	if c.rootBase() != e.rootBase() {
		if id, ok := firstSharedID(c, e.rootBase()); ok {
			return &DuplicateIDError{ID: id, Parent: e.node(), Child: n}
		}
	}

	if old := c.parent; old != nil {
		old.removeChildByPtr(c)
		c.parent = nil
		if old != e {
			old.node().ChildRemoved(n)
		}
	}
	c.parent = e
	e.children = append(e.children, n)
	return nil
}

// RemoveChild detaches n and, when dispose is set, disposes its subtree.
func (e *Entity) RemoveChild(n Node, dispose bool) error {
	if n == nil {
		return ErrNilNode
	}
	c := n.Base()
	if c.parent != e {
		return fmt.Errorf("%w: %s", ErrNotChild, describe(n))
	}
	e.removeChildByPtr(c)
	c.parent = nil
	e.node().ChildRemoved(n)
	if dispose {
		c.dispose()
	}
	return nil
}

// RemoveFromParent detaches this node without disposing it. No-op when detached.
func (e *Entity) RemoveFromParent() {
	if e.parent == nil {
		return
	}
	_ = e.parent.RemoveChild(e.node(), false)
}

// Dispose detaches this node, then recursively disposes its children and
// components. Parent/child links are severed before the subtree is released.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Entity) dispose() {
	e.disposed = true
	children := e.children
	e.children = nil
	for _, child := range children {
		cb := child.Base()
		cb.parent = nil
		cb.dispose()
	}
	e.disposeComponents()
	e.parent = nil
}

func (e *Entity) rootBase() *Entity {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// removeChildByPtr removes c from e.children without clearing c.parent.
func (e *Entity) removeChildByPtr(c *Entity) {
	for i, n := range e.children {
		if n.Base() == c {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// firstSharedID returns an id present in both the subtree of a and the tree rooted at b.
func firstSharedID(a, b *Entity) (string, bool) {
	ids := make(map[string]struct{})
	walkBase(a, func(n *Entity) bool {
		ids[n.id] = struct{}{}
		return false
	})
	var dup string
	walkBase(b, func(n *Entity) bool {
		if _, ok := ids[n.id]; ok {
			dup = n.id
			return true
		}
		return false
	})
	return dup, dup != ""
}

// walkBase visits n and its descendants pre-order until fn returns true.
func walkBase(n *Entity, fn func(*Entity) bool) bool {
	if fn(n) {
		return true
	}
	for _, c := range n.children {
		if walkBase(c.Base(), fn) {
			return true
		}
	}
	return false
}
