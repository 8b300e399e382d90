package scene

// Traverse walks this node and its descendants depth-first, pre-order.
//
// Returning true from visit skips the visited node's subtree; siblings are
// still visited. With recursive false only this node and its direct children
// are visited. visit must not add or remove children anywhere in the subtree
// being walked; collect nodes first and mutate afterwards.
func (e *Entity) Traverse(visit func(Node) bool, recursive bool) {
	if visit == nil {
		return
	}
	traverse(e.node(), visit, recursive, 0)
}

func traverse(n Node, visit func(Node) bool, recursive bool, depth int) {
	if visit(n) {
		return
	}
	if !recursive && depth > 0 {
		return
	}
	for _, child := range n.Base().children {
		traverse(child, visit, recursive, depth+1)
	}
}

// FindBy returns the first node, this one included, in pre-order matching pred.
//
// There is no index: every lookup is a linear scan, O(size of subtree).
func (e *Entity) FindBy(pred func(Node) bool) (Node, bool) {
	if pred == nil {
		return nil, false
	}
	var found Node
	walkBase(e, func(b *Entity) bool {
		if n := b.node(); pred(n) {
			found = n
			return true
		}
		return false
	})
	return found, found != nil
}

// FindAllBy returns every node, this one included, in pre-order matching pred.
func (e *Entity) FindAllBy(pred func(Node) bool) []Node {
	if pred == nil {
		return nil
	}
	var out []Node
	walkBase(e, func(b *Entity) bool {
		if n := b.node(); pred(n) {
			out = append(out, n)
		}
		return false
	})
	return out
}

func (e *Entity) FindByID(id string) (Node, bool) {
	return e.FindBy(func(n Node) bool { return n.Base().id == id })
}

// FindByName returns the first node with the given name. Names are not unique.
func (e *Entity) FindByName(name string) (Node, bool) {
	return e.FindBy(func(n Node) bool { return n.Base().name == name })
}

// Count returns the number of nodes in the subtree, this one included.
func (e *Entity) Count() int {
	n := 0
	walkBase(e, func(*Entity) bool {
		n++
		return false
	})
	return n
}
