package scene

// Component is a typed data unit attachable to at most one node at a time.
//
// Concrete components embed BaseComponent, which carries the owner
// back-reference, and implement the rest. DecodeFields must follow the
// "if defined" policy: absent keys keep constructor defaults.
type Component interface {
	Base() *BaseComponent
	TypeTag() string
	Family() FamilySet
	Multiplicity() Multiplicity

	EncodeFields(f Fields)
	DecodeFields(f Fields) error
	// Clone returns a detached copy with the same field values.
	Clone() Component
	// Dispose releases whatever the component stands for. It runs before the
	// owning node finishes a detach.
	Dispose()
}

// BaseComponent is embedded by every component.
type BaseComponent struct {
	owner    Node
	disposed bool
}

func (b *BaseComponent) Base() *BaseComponent { return b }

// Owner returns the node the component is attached to, or nil.
func (b *BaseComponent) Owner() Node { return b.owner }

func (b *BaseComponent) Dispose() { b.disposed = true }

func (b *BaseComponent) IsDisposed() bool { return b.disposed }

// EncodeComponent captures c as a record.
func EncodeComponent(c Component) ComponentRecord {
	f := make(Fields)
	c.EncodeFields(f)
	return ComponentRecord{Type: c.TypeTag(), Fields: f}
}

// AddComponent attaches c. The node's ComponentFamily must intersect c.Family()
// and a Single component may not join an occupied slot. Rejections leave the
// node unchanged.
func (e *Entity) AddComponent(c Component) error {
	if c == nil {
		return ErrNilComponent
	}
	if e.disposed {
		return ErrDisposed
	}
	cb := c.Base()
	if cb.owner != nil {
		return ErrComponentOwned
	}
	self := e.node()
	accepted := self.ComponentFamily()
	if !c.Family().Intersects(accepted) {
		return &FamilyMismatchError{
			Component: c.TypeTag(),
			Node:      describe(self),
			Offered:   c.Family(),
			Accepted:  accepted,
		}
	}
	tag := c.TypeTag()
	slot := e.components[tag]
	if len(slot) > 0 && (c.Multiplicity() == Single || slot[0].Multiplicity() == Single) {
		return &MultiplicityError{Component: tag, Node: describe(self)}
	}
	if e.components == nil {
		e.components = make(map[string][]Component)
	}
	if len(slot) == 0 {
		e.componentOrder = append(e.componentOrder, tag)
	}
	e.components[tag] = append(slot, c)
	cb.owner = self
	return nil
}

// RemoveComponent detaches c, disposing it before returning.
func (e *Entity) RemoveComponent(c Component) error {
	if c == nil {
		return ErrNilComponent
	}
	tag := c.TypeTag()
	slot := e.components[tag]
	for i, cur := range slot {
		if cur != c {
			continue
		}
		c.Dispose()
		c.Base().owner = nil
		slot = append(slot[:i:i], slot[i+1:]...)
		if len(slot) == 0 {
			e.dropSlot(tag)
		} else {
			e.components[tag] = slot
		}
		return nil
	}
	return ErrComponentNotFound
}

// RemoveComponents detaches and disposes every component in the tag slot.
// It returns the number removed.
func (e *Entity) RemoveComponents(tag string) int {
	slot := e.components[tag]
	for _, c := range slot {
		c.Dispose()
		c.Base().owner = nil
	}
	if len(slot) > 0 {
		e.dropSlot(tag)
	}
	return len(slot)
}

// Component returns the first component in the tag slot.
func (e *Entity) Component(tag string) (Component, bool) {
	slot := e.components[tag]
	if len(slot) == 0 {
		return nil, false
	}
	return slot[0], true
}

// ComponentsOf returns a copy of the tag slot.
func (e *Entity) ComponentsOf(tag string) []Component {
	return append([]Component(nil), e.components[tag]...)
}

func (e *Entity) HasComponent(tag string) bool {
	return len(e.components[tag]) > 0
}

// Components returns every attached component, grouped by slot in first-attach order.
func (e *Entity) Components() []Component {
	var out []Component
	for _, tag := range e.componentOrder {
		out = append(out, e.components[tag]...)
	}
	return out
}

func (e *Entity) NumComponents() int {
	n := 0
	for _, slot := range e.components {
		n += len(slot)
	}
	return n
}

func (e *Entity) dropSlot(tag string) {
	delete(e.components, tag)
	for i, t := range e.componentOrder {
		if t == tag {
			e.componentOrder = append(e.componentOrder[:i:i], e.componentOrder[i+1:]...)
			return
		}
	}
}

func (e *Entity) disposeComponents() {
	for _, c := range e.Components() {
		c.Dispose()
		c.Base().owner = nil
	}
	e.components = nil
	e.componentOrder = nil
}
