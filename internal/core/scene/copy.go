package scene

// CopyOption tunes Copy and Clone.
type CopyOption func(*copyConfig)

type copyConfig struct {
	preserveIDs bool
}

// PreserveIDs keeps source ids on the copies. Meant for in-place refresh of a
// node from a reloaded version of itself. When the receiver sits in a tree
// that would end up holding a source id twice, fresh ids are used instead.
func PreserveIDs() CopyOption {
	return func(c *copyConfig) { c.preserveIDs = true }
}

func freshIDs() CopyOption {
	return func(c *copyConfig) { c.preserveIDs = false }
}

func newCopyConfig(opts []CopyOption) copyConfig {
	var c copyConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Copy overwrites name, enabled and locked with those of src. With recursive,
// the current children and components are disposed and replaced by deep copies
// of src's. The id is regenerated unless PreserveIDs is given.
func (e *Entity) Copy(src Node, recursive bool, opts ...CopyOption) Node {
	e.copyFrom(src, recursive, opts)
	return e.node()
}

func (e *Entity) copyFrom(src Node, recursive bool, opts []CopyOption) {
	if src == nil {
		return
	}
	s := src.Base()
	if s == e {
		return
	}
	cfg := newCopyConfig(opts)
	if cfg.preserveIDs && e.wouldDuplicate(s, recursive) {
		cfg.preserveIDs = false
		opts = append(opts[:len(opts):len(opts)], freshIDs())
	}

	if cfg.preserveIDs {
		e.setID(s.id)
	} else {
		e.setID(NewID())
	}
	e.name = s.name
	e.enabled = s.enabled
	e.locked = s.locked

	if !recursive {
		return
	}

	// clone before releasing the old content, src may live inside it
	comps := s.Components()
	compClones := make([]Component, 0, len(comps))
	for _, c := range comps {
		compClones = append(compClones, c.Clone())
	}
	clones := make([]Node, 0, len(s.children))
	for _, child := range s.children {
		clones = append(clones, child.Clone(true, opts...))
	}

	for _, child := range e.children {
		cb := child.Base()
		cb.parent = nil
		cb.dispose()
	}
	e.children = nil
	e.disposeComponents()

	for _, c := range compClones {
		// components the receiver's family rejects are dropped
		if err := e.AddComponent(c); err != nil {
			c.Dispose()
		}
	}
	for _, clone := range clones {
		clone.Base().parent = e
	}
	e.children = clones
	if len(clones) > 0 {
		e.node().ChildrenAdded(clones)
	}
}

// wouldDuplicate reports whether copying s onto e with preserved ids would
// leave an id of s twice in e's tree. e's own id is replaced, and with
// recursive so is its whole subtree.
func (e *Entity) wouldDuplicate(s *Entity, recursive bool) bool {
	incoming := map[string]struct{}{s.id: {}}
	if recursive {
		walkBase(s, func(n *Entity) bool {
			incoming[n.id] = struct{}{}
			return false
		})
	}
	var visit func(n *Entity) bool
	visit = func(n *Entity) bool {
		if n == e {
			if recursive {
				return false
			}
		} else if _, ok := incoming[n.id]; ok {
			return true
		}
		for _, c := range n.children {
			if visit(c.Base()) {
				return true
			}
		}
		return false
	}
	return visit(e.rootBase())
}
